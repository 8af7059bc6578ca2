// Package logger provides a structured logging facility based on Zap.
//
// New builds a development or production logger from Config, and WithRayID
// attaches the request's ray id (set by core/middleware/rayid) so every log
// line for a request can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	app.Use(logger.Middleware(log))
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
