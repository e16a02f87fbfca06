package gintrace

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

func newFormatterTestContext(t *testing.T, method, target string) *gin.Context {
	t.Helper()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(method, target, nil)
	return c
}

func TestDefaultRequestAttributes(t *testing.T) {
	t.Parallel()
	c := newFormatterTestContext(t, "GET", "http://example.com/test?q=1")

	attrs := defaultRequestAttributes(c)

	assert.Equal(t, []attribute.KeyValue{
		attribute.String("req.method", "GET"),
		attribute.String("req.url", "/test?q=1"),
	}, attrs)
}

func TestDefaultReplyAttributes(t *testing.T) {
	t.Parallel()
	c := newFormatterTestContext(t, "GET", "http://example.com/test")
	c.Status(204)

	attrs := defaultReplyAttributes(c)

	assert.Equal(t, []attribute.KeyValue{
		attribute.Int("reply.statusCode", 204),
	}, attrs)
}

func TestDefaultErrorAttributes(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")

	attrs := defaultErrorAttributes(err)

	assert.Len(t, attrs, 3)
	assert.Equal(t, attribute.String("error.name", "*errors.errorString"), attrs[0])
	assert.Equal(t, attribute.String("error.message", "boom"), attrs[1])
	assert.Equal(t, attribute.Key("error.stack"), attrs[2].Key)
}

func TestFormattersResolve_DefaultsWhenUnset(t *testing.T) {
	t.Parallel()
	resolved := Formatters{}.resolve()

	assert.NotNil(t, resolved.request)
	assert.NotNil(t, resolved.reply)
	assert.NotNil(t, resolved.err)
}

func TestFormattersResolve_SuppliedPhaseReplacesDefault(t *testing.T) {
	t.Parallel()
	custom := []attribute.KeyValue{attribute.Bool("custom", true)}
	resolved := Formatters{
		Request: func(*gin.Context) []attribute.KeyValue { return custom },
	}.resolve()

	c := newFormatterTestContext(t, "GET", "http://example.com/test")

	// The supplied formatter's output is used verbatim, never merged with
	// the default's.
	assert.Equal(t, custom, resolved.request(c))
	// Other phases keep their defaults.
	assert.Equal(t, defaultReplyAttributes(c), resolved.reply(c))
}
