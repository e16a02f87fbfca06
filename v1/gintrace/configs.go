package gintrace

import (
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// Config defines the configuration for the gin tracing plugin.
// It is read once by New and never mutated afterwards; a single Config may
// therefore be shared freely across concurrent requests and plugin instances.
type Config struct {
	// ServiceName identifies the service producing the spans. It is used as
	// the tracer instrumentation name and is required.
	//
	// Example values: "user-service", "payment-processor"
	ServiceName string

	// DisableAPI turns off the per-request tracing accessor. By default the
	// accessor is attached to every request's gin context and can be
	// retrieved with FromContext; set this to true when handlers never need
	// direct access to the request's tracing state.
	DisableAPI bool

	// WrapRoutes controls whether the request context is rebound to the span
	// context before the route chain runs, so that ambient
	// trace.SpanFromContext lookups inside handlers observe the request span.
	//
	// Use AllRoutes() to wrap every non-ignored route, Routes("/a", "/b") to
	// wrap only the listed paths, or RouteFunc for a custom predicate.
	// The zero value wraps nothing.
	WrapRoutes RouteMatcher

	// IgnoreRoutes excludes routes from tracing entirely. Matching requests
	// produce no span, no header extraction, and no attribute calls.
	//
	// Use Routes("/healthz") for a fixed, method-agnostic path set or
	// RouteFunc for a predicate over (path, method). The zero value ignores
	// nothing.
	IgnoreRoutes RouteMatcher

	// FormatSpanAttributes overrides the per-phase span attribute formatters.
	// Each supplied formatter fully replaces the built-in default for its
	// phase; it is never merged with it.
	FormatSpanAttributes Formatters

	// PropagateToReply injects the request's trace context into the outgoing
	// reply headers, allowing clients to correlate responses with traces.
	PropagateToReply bool

	// TracerProvider supplies spans for this plugin. When nil the global
	// provider registered with otel.SetTracerProvider is used, typically the
	// one installed by the tracer package.
	TracerProvider trace.TracerProvider

	// Propagator translates trace context to and from carrier headers. When
	// nil the global propagator registered with otel.SetTextMapPropagator is
	// used.
	Propagator propagation.TextMapPropagator

	// Logger is an optional logger from std/v1/logger. When provided it is
	// used for registration and per-request debug logging.
	Logger Logger
}

// Logger is the minimal logging contract consumed by the plugin. It is
// satisfied by *logger.Logger from std/v1/logger.
type Logger interface {
	Debug(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}
