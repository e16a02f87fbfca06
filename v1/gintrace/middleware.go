package gintrace

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/propagation"
)

// requestState tracks the per-request span lifecycle. A traced request moves
// ACTIVE -> (OK | ERRORED) -> ENDED and reaches ENDED exactly once; filtered
// requests bypass tracing before the machine starts and never enter it.
type requestState uint8

const (
	stateActive requestState = iota
	stateOK
	stateErrored
	stateEnded
)

// Middleware returns the gin handler implementing the request tracing
// lifecycle. It is installed by Register; use it directly only when the
// engine's middleware chain is assembled by hand.
//
// All mutable state lives in per-invocation locals and on the request's gin
// context, so concurrent requests never interact.
func (p *Plugin) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		if p.ignore != nil && p.ignore(path, method) {
			// Filtered out: no tracer, propagation, or attribute calls. The
			// accessor is still attached and reports the parent context.
			if !p.disableAPI {
				c.Set(requestTracingKey, &RequestTracing{
					c:      c,
					req:    c.Request,
					ctx:    c.Request.Context(),
					tracer: p.tracer,
					prop:   p.propagator,
				})
			}
			c.Next()
			return
		}

		ctx := p.propagator.resolveInbound(c.Request.Context(), c.Request.Header)
		ctx, span := p.lifecycle.start(ctx, c)
		state := stateActive

		if !p.disableAPI {
			c.Set(requestTracingKey, &RequestTracing{
				c:      c,
				req:    c.Request,
				ctx:    ctx,
				tracer: p.tracer,
				prop:   p.propagator,
			})
		}

		if p.propagateToReply {
			// Reply headers must carry the context before the handler phase
			// starts writing the response.
			p.propagator.inject(ctx, propagation.HeaderCarrier(c.Writer.Header()))
		}

		if p.wrap != nil && p.wrap(path, method) {
			// Rebind the request so ambient SpanFromContext lookups in the
			// handler chain observe the request span. The swap changes
			// nothing about the chain's arguments, results, or ordering.
			c.Request = c.Request.WithContext(ctx)
		}

		finalize := func(err error) {
			// A request leaves ACTIVE at most once, so the span cannot end
			// twice even when both the panic path and the regular path run.
			if state != stateActive {
				return
			}
			if err != nil {
				state = stateErrored
			} else {
				state = stateOK
			}
			defer func() { state = stateEnded }()
			p.lifecycle.finish(c, span, err)
		}

		defer func() {
			if r := recover(); r != nil {
				// The handler chain unwound before the post phase. Finalize
				// the span, then let the host own the failure response.
				finalize(recoveredError(r))
				panic(r)
			}
		}()

		c.Next()

		var err error
		if last := c.Errors.Last(); last != nil {
			err = last.Err
		}
		finalize(err)

		if p.logger != nil {
			fields := map[string]interface{}{
				"span.name":        spanName(c),
				"reply.statusCode": c.Writer.Status(),
			}
			if err != nil {
				p.logger.Error("request span ended with error", err, fields)
			} else {
				p.logger.Debug("request span ended", nil, fields)
			}
		}
	}
}

// recoveredError converts a recovered panic value into the error finalized
// onto the span.
func recoveredError(r interface{}) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("panic: %v", r)
}
