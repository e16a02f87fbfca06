package tracer

import (
	"context"
	"log"

	"go.uber.org/fx"
)

// FXModule provides a Uber FX module that configures distributed tracing for your application.
// This module registers the tracer provider with the dependency injection system and
// sets up proper lifecycle management to ensure graceful startup and shutdown.
//
// The module:
// 1. Provides the provider through the NewProvider constructor
// 2. Exposes it as a trace.TracerProvider for consumers of the interface
// 3. Registers shutdown hooks to flush spans on application termination
//
// Usage:
//
//	app := fx.New(
//	    tracer.FXModule,
//	    // other modules...
//	)
//	app.Run()
//
// Dependencies required by this module:
// - A tracer.Config instance must be available in the dependency injection container
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewProvider,
		(*Provider).TracerProvider,
	),
	fx.Invoke(RegisterProviderLifecycle),
)

// RegisterProviderLifecycle registers shutdown hooks for the provider with
// the FX lifecycle, ensuring pending spans are flushed to exporters when the
// application terminates.
//
// This function is automatically invoked by the FXModule and normally doesn't
// need to be called directly.
func RegisterProviderLifecycle(lc fx.Lifecycle, provider *Provider) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Println("INFO: shutting down tracer provider...")
			return provider.Shutdown(ctx)
		},
	})
}
