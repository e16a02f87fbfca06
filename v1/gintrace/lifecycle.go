package gintrace

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// spanLifecycle orchestrates the start/attribute/status/end sequence of the
// request span. The attribute application order is a contract consumers rely
// on: request-phase at start, then on failure error-phase before reply-phase,
// then status, then end.
type spanLifecycle struct {
	tracer trace.Tracer
	fmts   formatters
}

// spanName derives the span name from the method and the matched route
// pattern. A request the router matched no pattern for is named by its
// method alone, never by the raw path, to keep span cardinality bounded.
func spanName(c *gin.Context) string {
	if pattern := c.FullPath(); pattern != "" {
		return c.Request.Method + " " + pattern
	}
	return c.Request.Method
}

// start begins the request span as a child of ctx and applies the
// request-phase attributes. The returned context carries the new span.
func (l spanLifecycle) start(ctx context.Context, c *gin.Context) (context.Context, trace.Span) {
	ctx, span := l.tracer.Start(ctx, spanName(c), trace.WithSpanKind(trace.SpanKindServer))
	span.SetAttributes(l.fmts.request(c)...)
	return ctx, span
}

// finish applies the completion attributes, sets the span status, and ends
// the span. Status is always set before End. finish must be called exactly
// once per started span; the middleware's once-guard enforces that.
func (l spanLifecycle) finish(c *gin.Context, span trace.Span, err error) {
	if err != nil {
		span.SetAttributes(l.fmts.err(err)...)
		span.SetAttributes(l.fmts.reply(c)...)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetAttributes(l.fmts.reply(c)...)
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
