package tracer

// Config defines the configuration for the OpenTelemetry tracer provider.
// It controls service identification, environment settings, and whether
// traces should be exported to an observability backend.
type Config struct {
	// ServiceName specifies the name of the service emitting spans. This
	// field is required and appears on every span's resource to identify the
	// service in your system architecture.
	//
	// Example values: "user-service", "payment-processor"
	ServiceName string

	// AppEnv indicates the deployment environment where the service is
	// running, separating traces of different environments in the backend.
	// Common values include "development", "staging", "production".
	AppEnv string

	// EnableExport controls whether spans are exported to an observability
	// backend. When true, an OTLP HTTP exporter sends spans to the collector
	// configured through the standard OTEL_EXPORTER_OTLP_* environment
	// variables. When false spans are created but never leave the process,
	// which keeps context propagation working without backend traffic, a
	// common setting for local development and tests.
	EnableExport bool
}
