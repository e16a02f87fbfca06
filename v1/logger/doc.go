// Package logger provides structured logging with optional trace correlation.
//
// The package wraps Uber's Zap logger behind a small API with log levels,
// structured fields, and context-aware methods that attach the current
// OpenTelemetry trace and span IDs to each entry, linking log lines to the
// request trace produced by std/v1/gintrace.
//
// # Direct Usage
//
//	import "github.com/helixobs/std/v1/logger"
//
//	log := logger.NewLoggerClient(logger.Config{
//		Level:         logger.Info,
//		ServiceName:   "user-service",
//		EnableTracing: true,
//	})
//
//	log.Info("User logged in", nil, map[string]interface{}{
//		"user_id": "12345",
//	})
//
// Inside a traced request, use the context-aware variants so the entry
// carries trace_id and span_id fields:
//
//	rt := gintrace.FromContext(c)
//	log.InfoCtx(rt.Context(), "user updated", nil, map[string]interface{}{
//		"user_id": id,
//	})
//
// # FX Module Integration
//
//	app := fx.New(
//		logger.FXModule,
//		fx.Provide(func() logger.Config {
//			return logger.Config{Level: logger.Info, ServiceName: "user-service"}
//		}),
//	)
//
// The module syncs buffered entries on application shutdown.
//
// # Thread Safety
//
// All methods are safe for concurrent use by multiple goroutines.
package logger
