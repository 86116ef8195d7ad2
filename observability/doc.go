// Package observability sets up OpenTelemetry tracing and metrics for
// pipeline runs.
//
// Setup installs OTLP HTTP exporters when an endpoint is configured. The
// runner opens one SpanRun span per run and reports it through Metrics.RecordRun.
//
//	shutdown, err := observability.Setup(ctx, cfg.Telemetry)
//	defer shutdown(context.Background())
//
//	metrics, err := observability.DefaultMetrics()
package observability
