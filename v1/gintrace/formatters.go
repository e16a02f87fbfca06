package gintrace

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// Formatters holds the per-phase span attribute formatters. Each phase is a
// pure function from the request, reply, or error to an ordered attribute
// list; the slice order is the order in which attributes reach the span.
//
// A nil field keeps the built-in default for that phase. A non-nil field
// fully replaces the default; defaults and overrides are never merged.
type Formatters struct {
	// Request derives attributes applied when the span starts.
	// Default: req.method, req.url.
	Request func(c *gin.Context) []attribute.KeyValue

	// Reply derives attributes applied when the request completes.
	// Default: reply.statusCode.
	Reply func(c *gin.Context) []attribute.KeyValue

	// Error derives attributes applied before the reply-phase attributes
	// when the request completes with an error.
	// Default: error.name, error.message, error.stack.
	Error func(err error) []attribute.KeyValue
}

// formatters is the resolved, fully-populated form used per request.
type formatters struct {
	request func(c *gin.Context) []attribute.KeyValue
	reply   func(c *gin.Context) []attribute.KeyValue
	err     func(err error) []attribute.KeyValue
}

// resolve fills unset phases with the built-in defaults. Resolution happens
// once at plugin construction, never per request.
func (f Formatters) resolve() formatters {
	out := formatters{
		request: defaultRequestAttributes,
		reply:   defaultReplyAttributes,
		err:     defaultErrorAttributes,
	}
	if f.Request != nil {
		out.request = f.Request
	}
	if f.Reply != nil {
		out.reply = f.Reply
	}
	if f.Error != nil {
		out.err = f.Error
	}
	return out
}

func defaultRequestAttributes(c *gin.Context) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("req.method", c.Request.Method),
		attribute.String("req.url", c.Request.URL.RequestURI()),
	}
}

func defaultReplyAttributes(c *gin.Context) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int("reply.statusCode", c.Writer.Status()),
	}
}

// defaultErrorAttributes records the error's concrete type, message, and its
// "%+v" rendering, which carries a stack trace for error values that capture
// one.
func defaultErrorAttributes(err error) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("error.name", fmt.Sprintf("%T", err)),
		attribute.String("error.message", err.Error()),
		attribute.String("error.stack", fmt.Sprintf("%+v", err)),
	}
}
