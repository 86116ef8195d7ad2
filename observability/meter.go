package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/conduit/logger"
)

const defaultMeterName = "github.com/kbukum/conduit/observability"

// InitMeter installs a global meter provider that exports over OTLP HTTP on
// a fixed interval. The caller shuts the returned provider down on exit.
func InitMeter(ctx context.Context, cfg Config) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(cfg.ServiceName, cfg.ServiceVersion, cfg.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	var readerOpts []sdkmetric.PeriodicReaderOption
	if cfg.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(cfg.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)

	logger.Get("observability").Info("meter initialized", logger.Fields(
		"endpoint", cfg.Endpoint,
		"interval", cfg.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds the instruments recorded for every pipeline run.
type Metrics struct {
	runTotal    metric.Int64Counter
	runDuration metric.Float64Histogram
	steps       metric.Int64Counter
	elements    metric.Int64Counter
	errorTotal  metric.Int64Counter
}

// NewMetrics creates the run instruments on meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	runTotal, err := meter.Int64Counter("conduit.run.total",
		metric.WithDescription("Total number of pipeline runs"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating conduit.run.total counter: %w", err)
	}

	runDuration, err := meter.Float64Histogram("conduit.run.duration",
		metric.WithDescription("Duration of pipeline runs in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating conduit.run.duration histogram: %w", err)
	}

	steps, err := meter.Int64Counter("conduit.steps",
		metric.WithDescription("Driving steps taken across runs"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating conduit.steps counter: %w", err)
	}

	elements, err := meter.Int64Counter("conduit.elements",
		metric.WithDescription("Elements handed from source to sink"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating conduit.elements counter: %w", err)
	}

	errorTotal, err := meter.Int64Counter("conduit.run.errors",
		metric.WithDescription("Failed runs by error code"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating conduit.run.errors counter: %w", err)
	}

	return &Metrics{
		runTotal:    runTotal,
		runDuration: runDuration,
		steps:       steps,
		elements:    elements,
		errorTotal:  errorTotal,
	}, nil
}

// DefaultMetrics creates the run instruments on the global meter provider.
func DefaultMetrics() (*Metrics, error) {
	return NewMetrics(Meter(defaultMeterName))
}

// RunRecord is what a finished run reports.
type RunRecord struct {
	Pipeline  string
	Steps     int64
	Elements  int64
	Duration  time.Duration
	ErrorCode string // empty on success
}

// RecordRun records one finished run.
func (m *Metrics) RecordRun(ctx context.Context, r RunRecord) {
	status := "ok"
	if r.ErrorCode != "" {
		status = "error"
	}
	pipeline := attribute.String(AttrPipeline, r.Pipeline)

	m.runTotal.Add(ctx, 1, metric.WithAttributes(pipeline, attribute.String(AttrStatus, status)))
	m.runDuration.Record(ctx, r.Duration.Seconds(), metric.WithAttributes(pipeline))
	m.steps.Add(ctx, r.Steps, metric.WithAttributes(pipeline))
	m.elements.Add(ctx, r.Elements, metric.WithAttributes(pipeline))
	if r.ErrorCode != "" {
		m.errorTotal.Add(ctx, 1, metric.WithAttributes(pipeline, attribute.String(AttrErrorCode, r.ErrorCode)))
	}
}
