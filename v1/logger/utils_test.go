package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func testSpanContext() trace.SpanContext {
	return trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10},
		SpanID:     trace.SpanID{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08},
		TraceFlags: trace.FlagsSampled,
	})
}

func TestNewLoggerClient(t *testing.T) {
	log := NewLoggerClient(Config{Level: Debug, ServiceName: "test-service", EnableTracing: true})

	require.NotNil(t, log)
	require.NotNil(t, log.Zap)
	assert.True(t, log.tracingEnabled)
}

func TestConvertToZapFields(t *testing.T) {
	log := NewLoggerClient(Config{Level: Info, ServiceName: "test-service"})

	fields := log.convertToZapFields(errors.New("boom"), map[string]interface{}{
		"user_id": "123",
	})

	// zap.Error plus one field from the map
	assert.Len(t, fields, 2)
}

func TestConvertToZapFields_NoErrorNoFields(t *testing.T) {
	log := NewLoggerClient(Config{Level: Info, ServiceName: "test-service"})

	assert.Empty(t, log.convertToZapFields(nil))
}

func TestTraceFields_ValidSpanContext(t *testing.T) {
	log := NewLoggerClient(Config{Level: Info, ServiceName: "test-service", EnableTracing: true})

	ctx := trace.ContextWithSpanContext(context.Background(), testSpanContext())
	fields := log.traceFields(ctx)

	require.Len(t, fields, 2)
	assert.Equal(t, "trace_id", fields[0].Key)
	assert.Equal(t, "span_id", fields[1].Key)
}

func TestTraceFields_NoSpanInContext(t *testing.T) {
	log := NewLoggerClient(Config{Level: Info, ServiceName: "test-service", EnableTracing: true})

	assert.Empty(t, log.traceFields(context.Background()))
}

func TestTraceFields_TracingDisabled(t *testing.T) {
	log := NewLoggerClient(Config{Level: Info, ServiceName: "test-service", EnableTracing: false})

	ctx := trace.ContextWithSpanContext(context.Background(), testSpanContext())
	assert.Empty(t, log.traceFields(ctx))
}

func TestContextAwareLoggingDoesNotPanic(t *testing.T) {
	log := NewLoggerClient(Config{Level: Debug, ServiceName: "test-service", EnableTracing: true})
	ctx := trace.ContextWithSpanContext(context.Background(), testSpanContext())

	assert.NotPanics(t, func() {
		log.DebugCtx(ctx, "debug entry", nil)
		log.InfoCtx(ctx, "info entry", nil, map[string]interface{}{"k": "v"})
		log.WarnCtx(ctx, "warn entry", nil)
		log.ErrorCtx(ctx, "error entry", errors.New("boom"))
	})
}
