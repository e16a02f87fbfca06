package gintrace

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// contextPropagator resolves the inbound trace context for a request and
// provides bound extract/inject operations for arbitrary carriers.
type contextPropagator struct {
	prop propagation.TextMapPropagator
}

// resolveInbound determines the context the request span is started from.
//
// When the request context already carries a valid span context, for example
// because an outer instrumentation layer ran first, that context is reused
// and header extraction is skipped entirely. Otherwise the inbound headers
// are extracted against the request context; malformed headers degrade to
// the parent context unchanged, no additional validation is applied here.
func (p contextPropagator) resolveInbound(ctx context.Context, header http.Header) context.Context {
	if trace.SpanContextFromContext(ctx).IsValid() {
		return ctx
	}
	return p.prop.Extract(ctx, propagation.HeaderCarrier(header))
}

// extract reads trace context from carrier into a child of ctx.
func (p contextPropagator) extract(ctx context.Context, carrier propagation.TextMapCarrier) context.Context {
	return p.prop.Extract(ctx, carrier)
}

// inject writes the trace context of ctx into carrier.
func (p contextPropagator) inject(ctx context.Context, carrier propagation.TextMapCarrier) {
	p.prop.Inject(ctx, carrier)
}
