package tracer

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
)

// Provider owns the process-wide OpenTelemetry tracer provider. It is
// created once at startup by NewProvider, shared read-only afterwards, and
// shut down on application stop to flush pending spans.
type Provider struct {
	tp *sdktrace.TracerProvider
}

// NewProvider builds an SDK tracer provider from the configuration and
// installs it as the global provider, together with a composite W3C
// TraceContext and Baggage propagator.
//
// When export is enabled an OTLP HTTP exporter is attached through a batch
// processor. The provider's resource carries the service name and deployment
// environment from the configuration.
//
// Example:
//
//	provider, err := tracer.NewProvider(tracer.Config{
//	    ServiceName:  "user-service",
//	    AppEnv:       "production",
//	    EnableExport: true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Shutdown(context.Background())
func NewProvider(cfg Config) (*Provider, error) {
	var options []sdktrace.TracerProviderOption

	if cfg.EnableExport {
		client := otlptracehttp.NewClient()
		exporter, err := otlptrace.New(context.Background(), client)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize OTLP exporter: %w", err)
		}
		options = append(options, sdktrace.WithBatcher(exporter))
	}

	options = append(options, sdktrace.WithResource(resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.DeploymentEnvironment(cfg.AppEnv),
		attribute.String("environment", cfg.AppEnv),
	)))

	tp := sdktrace.NewTracerProvider(options...)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return &Provider{tp: tp}, nil
}

// TracerProvider exposes the underlying provider for consumers that accept
// the OpenTelemetry interface, such as the gintrace plugin configuration.
func (p *Provider) TracerProvider() trace.TracerProvider {
	return p.tp
}

// Shutdown flushes pending spans and releases the provider's resources.
// Call it once when the application stops; the FX module wires this
// automatically.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil || p.tp == nil {
		return nil
	}
	return p.tp.Shutdown(ctx)
}
