package gintrace

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// requestTracingKey is the gin context key the accessor is attached under.
const requestTracingKey = "helixobs/std/gintrace"

// RequestTracing is the per-request tracing accessor. One instance is
// created at request start, owned exclusively by that request, and released
// with it; instances are never shared across requests.
//
// Retrieve it inside handlers with FromContext.
type RequestTracing struct {
	c      *gin.Context
	req    *http.Request
	ctx    context.Context
	tracer trace.Tracer
	prop   contextPropagator
}

// Context returns the request's current trace context. When the request was
// rebound after the accessor was attached, by route wrapping or by a handler
// installing a child span, the live request context is returned; otherwise
// the context resolved at span start. The request recorded at attach time is
// what distinguishes a rebinding from a context the request already carried,
// such as one installed by an outer instrumentation layer.
//
// On a route excluded from tracing this is the parent context the request
// arrived with.
func (rt *RequestTracing) Context() context.Context {
	if rt.c.Request != rt.req {
		return rt.c.Request.Context()
	}
	return rt.ctx
}

// ActiveSpan returns the span current in Context at the time of the call.
// The result is computed per call, never cached, so spans started by the
// handler itself are reflected. On a route excluded from tracing the
// returned span is a no-op span with an invalid SpanContext.
func (rt *RequestTracing) ActiveSpan() trace.Span {
	return trace.SpanFromContext(rt.Context())
}

// Tracer returns the tracer obtained once for the plugin's service identity.
// Handlers can use it to start child spans of the request span.
func (rt *RequestTracing) Tracer() trace.Tracer {
	return rt.tracer
}

// Extract reads trace context from an arbitrary carrier into a child of ctx.
// This is a convenience binding of the plugin's propagator for carriers
// other than the original request, such as message headers read by the
// handler.
func (rt *RequestTracing) Extract(ctx context.Context, carrier propagation.TextMapCarrier) context.Context {
	return rt.prop.extract(ctx, carrier)
}

// Inject writes the trace context of ctx into an arbitrary carrier, such as
// the headers of an outbound request made by the handler.
func (rt *RequestTracing) Inject(ctx context.Context, carrier propagation.TextMapCarrier) {
	rt.prop.inject(ctx, carrier)
}

// FromContext returns the tracing accessor attached to the request, or nil
// when the plugin is not registered on the engine or the accessor is
// disabled via Config.DisableAPI.
func FromContext(c *gin.Context) *RequestTracing {
	v, ok := c.Get(requestTracingKey)
	if !ok {
		return nil
	}
	rt, ok := v.(*RequestTracing)
	if !ok {
		return nil
	}
	return rt
}
