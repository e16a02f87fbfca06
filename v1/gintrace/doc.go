// Package gintrace instruments gin HTTP servers with OpenTelemetry spans.
//
// The package creates exactly one server span per inbound request, propagates
// W3C trace context between incoming headers, the request's context, and
// outgoing headers, and exposes a per-request accessor for handler code that
// needs direct access to the request's tracing state.
//
// # Architecture
//
// The package follows the "accept interfaces, return structs" Go idiom:
//   - Config struct: declarative plugin configuration, immutable after New
//   - Plugin struct: concrete plugin, registered on a gin engine
//   - RequestTracing struct: per-request tracing accessor for handlers
//
// Per request, the middleware runs three phases:
//
//  1. Pre-handler: the route filter decides participation, the inbound
//     context is resolved (ambient span reuse or header extraction), a span
//     named "<METHOD> <route pattern>" is started with request-phase
//     attributes, and the accessor is attached to the gin context.
//  2. Handler: the route chain runs. When route wrapping is active the
//     request context is rebound to the span context so ambient
//     trace.SpanFromContext lookups inside handlers and the libraries they
//     call observe the request span.
//  3. Post-handler: reply-phase (and, on failure, error-phase) attributes
//     are applied, the span status is set, and the span is ended. The span
//     ends exactly once even when the handler chain panics.
//
// # Basic Usage
//
//	import (
//		"github.com/gin-gonic/gin"
//		"github.com/helixobs/std/v1/gintrace"
//	)
//
//	plugin, err := gintrace.New(gintrace.Config{
//		ServiceName: "user-service",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	engine := gin.New()
//	if err := plugin.Register(engine); err != nil {
//		log.Fatal(err)
//	}
//
//	engine.GET("/users/:id", func(c *gin.Context) {
//		rt := gintrace.FromContext(c)
//		rt.ActiveSpan().AddEvent("lookup started")
//		// ...
//	})
//
// # Route Filtering and Wrapping
//
//	plugin, err := gintrace.New(gintrace.Config{
//		ServiceName:  "user-service",
//		IgnoreRoutes: gintrace.Routes("/healthz", "/metrics"),
//		WrapRoutes:   gintrace.AllRoutes(),
//	})
//
// Ignored routes bypass tracing entirely: no span is started, no headers are
// extracted, and the accessor (still attached) reports the parent context
// with no active span.
//
// # Attribute Formatters
//
// Span attributes are derived per phase by pure functions. A supplied
// formatter fully replaces the built-in default for its phase:
//
//	plugin, err := gintrace.New(gintrace.Config{
//		ServiceName: "user-service",
//		FormatSpanAttributes: gintrace.Formatters{
//			Request: func(c *gin.Context) []attribute.KeyValue {
//				return []attribute.KeyValue{
//					attribute.String("http.client_ip", c.ClientIP()),
//				}
//			},
//		},
//	})
//
// Attribute application order is a contract: request-phase attributes at span
// start, then on failure error-phase before reply-phase, then status, then
// end.
//
// # FX Module Integration
//
//	app := fx.New(
//		gintrace.FXModule,
//		fx.Provide(func() gintrace.Config {
//			return gintrace.Config{ServiceName: "user-service"}
//		}),
//		fx.Invoke(func(plugin *gintrace.Plugin, engine *gin.Engine) error {
//			return plugin.Register(engine)
//		}),
//	)
//	app.Run()
//
// # Thread Safety
//
// A Plugin is immutable after New and safe for concurrent use. All mutable
// per-request state lives on the request's gin context; concurrent requests
// never share tracing state.
package gintrace
