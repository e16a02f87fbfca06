// Package tracer bootstraps the process-wide OpenTelemetry tracer provider.
//
// The package configures an SDK tracer provider from a small Config,
// optionally attaches an OTLP HTTP exporter, installs the provider and a
// composite W3C TraceContext/Baggage propagator globally, and manages the
// provider's shutdown. Instrumentation packages such as std/v1/gintrace pick
// up the installed globals by default.
//
// # Direct Usage
//
//	import "github.com/helixobs/std/v1/tracer"
//
//	provider, err := tracer.NewProvider(tracer.Config{
//		ServiceName:  "user-service",
//		AppEnv:       "development",
//		EnableExport: false,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer provider.Shutdown(context.Background())
//
// # FX Module Integration
//
//	app := fx.New(
//		tracer.FXModule,
//		fx.Provide(func() tracer.Config {
//			return tracer.Config{
//				ServiceName:  "user-service",
//				AppEnv:       "production",
//				EnableExport: true,
//			}
//		}),
//	)
//	app.Run()
//
// The module flushes pending spans on application shutdown.
//
// # Thread Safety
//
// The Provider is immutable after construction and safe for concurrent use.
package tracer
