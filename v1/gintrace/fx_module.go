package gintrace

import (
	"go.uber.org/fx"
)

// FXModule provides a Uber FX module for the gin tracing plugin.
// This module registers the plugin with the dependency injection system so
// applications can wire it alongside the tracer and logger modules.
//
// The module provides the *Plugin through the New constructor. Registration
// on the engine stays with the application, which owns engine construction:
//
//	app := fx.New(
//	    tracer.FXModule,
//	    gintrace.FXModule,
//	    fx.Provide(
//	        gin.New,
//	        func() gintrace.Config {
//	            return gintrace.Config{ServiceName: "user-service"}
//	        },
//	    ),
//	    fx.Invoke(func(plugin *gintrace.Plugin, engine *gin.Engine) error {
//	        return plugin.Register(engine)
//	    }),
//	)
//	app.Run()
//
// Dependencies required by this module:
// - A gintrace.Config instance must be available in the dependency injection container
var FXModule = fx.Module("gintrace",
	fx.Provide(
		New,
	),
)
