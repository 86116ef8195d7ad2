// Package logger provides structured logging on top of zerolog.
//
// Loggers write JSON or a colored console format, carry a service name, and
// can be narrowed with WithComponent, WithFields or WithContext (which picks
// up the trace and span IDs of an active OpenTelemetry span).
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//	  output: "stderr"
//
// # Usage
//
//	log := logger.Get("runner")
//	log.Info("run finished", logger.Fields(logger.FieldSteps, 42))
package logger
