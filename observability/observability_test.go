package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("conduit")
	if cfg.ServiceName != "conduit" {
		t.Errorf("got service name %q, want conduit", cfg.ServiceName)
	}
	if cfg.Enabled() {
		t.Error("export should be disabled without an endpoint")
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("got sample rate %f, want 1.0", cfg.SampleRate)
	}
	if cfg.Interval != 15*time.Second {
		t.Errorf("got interval %v, want 15s", cfg.Interval)
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{ServiceName: "x", Endpoint: "localhost:4318", SampleRate: 0.5}
	cfg.ApplyDefaults()
	if cfg.SampleRate != 0.5 {
		t.Errorf("explicit sample rate overwritten: %f", cfg.SampleRate)
	}
	if cfg.Environment != "development" || cfg.ServiceVersion != "dev" {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if !cfg.Enabled() {
		t.Error("expected Enabled with an endpoint")
	}
}

func TestSetupDisabled(t *testing.T) {
	shutdown, err := Setup(context.Background(), DefaultConfig("conduit"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("no-op shutdown returned %v", err)
	}
}

func TestSampler(t *testing.T) {
	tests := []struct {
		rate float64
		want string
	}{
		{1.0, "AlwaysOnSampler"},
		{2.0, "AlwaysOnSampler"},
		{0, "AlwaysOffSampler"},
		{0.25, "TraceIDRatioBased{0.25}"},
	}
	for _, tc := range tests {
		if got := sampler(tc.rate).Description(); got != tc.want {
			t.Errorf("sampler(%v) = %q, want %q", tc.rate, got, tc.want)
		}
	}
}

func TestNewResource(t *testing.T) {
	res, err := newResource("conduit", "1.2.3", "staging")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[attribute.Key]string{
		AttrServiceName:    "conduit",
		AttrServiceVersion: "1.2.3",
		AttrEnvironment:    "staging",
	}
	got := map[attribute.Key]string{}
	for _, kv := range res.Attributes() {
		got[kv.Key] = kv.Value.Emit()
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("attribute %s: got %q, want %q", k, got[k], v)
		}
	}
}

func TestStartSpanAndSetSpanError(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	defer otel.SetTracerProvider(prev)

	_, span := StartSpan(context.Background(), SpanRun)
	SetSpanError(span, nil)
	SetSpanError(span, errors.New("boom"))
	span.End()

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Name() != SpanRun {
		t.Errorf("got span %q, want %q", spans[0].Name(), SpanRun)
	}
	if spans[0].Status().Code != codes.Error {
		t.Errorf("got status %v, want Error", spans[0].Status().Code)
	}
	if n := len(spans[0].Events()); n != 1 {
		t.Errorf("expected 1 recorded error event, got %d", n)
	}
}

func TestNewMetricsNoop(t *testing.T) {
	m, err := NewMetrics(noop.NewMeterProvider().Meter("test"))
	if err != nil {
		t.Fatalf("unexpected error creating metrics: %v", err)
	}
	m.RecordRun(context.Background(), RunRecord{Pipeline: "p", Steps: 1})
}

func TestRecordRun(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	m, err := NewMetrics(mp.Meter("test"))
	if err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	m.RecordRun(ctx, RunRecord{Pipeline: "wc", Steps: 10, Elements: 4, Duration: time.Second})
	m.RecordRun(ctx, RunRecord{Pipeline: "wc", Steps: 5, Elements: 2, ErrorCode: "CANCELED"})

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatal(err)
	}
	sums := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, md := range sm.Metrics {
			if data, ok := md.Data.(metricdata.Sum[int64]); ok {
				for _, dp := range data.DataPoints {
					sums[md.Name] += dp.Value
				}
			}
		}
	}
	want := map[string]int64{
		"conduit.run.total":  2,
		"conduit.steps":      15,
		"conduit.elements":   6,
		"conduit.run.errors": 1,
	}
	for name, v := range want {
		if sums[name] != v {
			t.Errorf("%s: got %d, want %d", name, sums[name], v)
		}
	}
}
