package gintrace

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Plugin instruments a gin engine with per-request tracing. It is created by
// New, registered on an engine with Register, and immutable afterwards.
//
// Plugins registered on separate engines are fully independent: the only
// state a Plugin holds is its resolved configuration and the tracer handle,
// both read-only after construction.
type Plugin struct {
	tracer           trace.Tracer
	propagator       contextPropagator
	lifecycle        spanLifecycle
	ignore           func(path, method string) bool
	wrap             func(path, method string) bool
	disableAPI       bool
	propagateToReply bool
	logger           Logger
}

// New validates the configuration and builds a plugin from it.
//
// Route matchers and attribute formatters are resolved here, once; the
// tracer is obtained once for the configured service identity. Defaults for
// an unset TracerProvider or Propagator are the process-wide otel globals.
//
// Returns ErrMissingServiceName when Config.ServiceName is empty.
func New(cfg Config) (*Plugin, error) {
	if cfg.ServiceName == "" {
		return nil, ErrMissingServiceName
	}

	provider := cfg.TracerProvider
	if provider == nil {
		provider = otel.GetTracerProvider()
	}
	prop := cfg.Propagator
	if prop == nil {
		prop = otel.GetTextMapPropagator()
	}

	tracer := provider.Tracer(cfg.ServiceName)
	propagator := contextPropagator{prop: prop}

	return &Plugin{
		tracer:     tracer,
		propagator: propagator,
		lifecycle: spanLifecycle{
			tracer: tracer,
			fmts:   cfg.FormatSpanAttributes.resolve(),
		},
		ignore:           cfg.IgnoreRoutes.resolve(),
		wrap:             cfg.WrapRoutes.resolve(),
		disableAPI:       cfg.DisableAPI,
		propagateToReply: cfg.PropagateToReply,
		logger:           cfg.Logger,
	}, nil
}

// Register installs the tracing middleware on the engine. Registering
// against a nil engine fails immediately with ErrInvalidHost rather than on
// the first request.
func (p *Plugin) Register(engine *gin.Engine) error {
	if engine == nil {
		return ErrInvalidHost
	}
	engine.Use(p.Middleware())
	if p.logger != nil {
		p.logger.Debug("request tracing registered", nil)
	}
	return nil
}
