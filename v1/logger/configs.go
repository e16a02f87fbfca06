package logger

// Log levels accepted by Config.Level.
const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Config defines the configuration for the logger.
type Config struct {
	// Level sets the minimum level that is written. One of the level
	// constants above; anything else falls back to Info.
	Level string

	// ServiceName is attached to every log entry as the "service" field.
	ServiceName string

	// EnableTracing turns on trace correlation. When true, the context-aware
	// logging methods extract the current OpenTelemetry span from the
	// context and attach "trace_id" and "span_id" fields to the entry,
	// linking logs to the request's trace.
	EnableTracing bool
}
