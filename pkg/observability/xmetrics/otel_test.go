package xmetrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func newTestObserver(t *testing.T) (Observer, *tracetest.InMemoryExporter, *sdkmetric.ManualReader) {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		_ = mp.Shutdown(context.Background())
	})

	obs, err := NewOTelObserver(
		WithInstrumentationName("macvendor-test"),
		WithTracerProvider(tp),
		WithMeterProvider(mp),
		nil,
	)
	require.NoError(t, err)
	return obs, exporter, reader
}

// counterByStatus 汇总 macvendor.operation.total 中各 status 的计数。
func counterByStatus(t *testing.T, reader *sdkmetric.ManualReader) map[string]int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := make(map[string]int64)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != metricOperationTotal {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, dp := range sum.DataPoints {
				status, _ := dp.Attributes.Value("status")
				out[status.AsString()] += dp.Value
			}
		}
	}
	return out
}

func TestNewOTelObserver_Defaults(t *testing.T) {
	obs, err := NewOTelObserver(WithInstrumentationName(""), WithTracerProvider(nil), WithMeterProvider(nil))
	require.NoError(t, err)
	_, span := obs.Start(context.Background(), SpanOptions{})
	span.End(Result{})
}

func TestOTelObserver_Span(t *testing.T) {
	obs, exporter, _ := newTestObserver(t)

	ctx, span := obs.Start(context.Background(), SpanOptions{
		Component: "xsource",
		Operation: "fetch",
		Kind:      KindClient,
		Attrs:     []Attr{String("url", "http://example.com/oui.csv"), {Key: "", Value: 1}},
	})
	assert.True(t, trace.SpanFromContext(ctx).SpanContext().IsValid())
	span.End(Result{Attrs: []Attr{Int("rows", 2), Bool("cached", false), {Key: "d", Value: time.Second}}})

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	got := spans[0]
	assert.Equal(t, "xsource.fetch", got.Name)
	assert.Equal(t, trace.SpanKindClient, got.SpanKind)
	assert.Equal(t, codes.Ok, got.Status.Code)
	assert.Contains(t, got.Attributes, attribute.String("component", "xsource"))
	assert.Contains(t, got.Attributes, attribute.Int("rows", 2))
	assert.Contains(t, got.Attributes, attribute.Int64("d", 1000))
}

func TestOTelObserver_ErrorStatus(t *testing.T) {
	obs, exporter, reader := newTestObserver(t)
	ctx := context.Background()

	_, span := obs.Start(ctx, SpanOptions{Component: "xtable", Operation: "update"})
	span.End(Result{Err: errors.New("source unavailable")})

	_, span = obs.Start(ctx, SpanOptions{Component: "xtable", Operation: "update"})
	span.End(Result{Status: StatusError})

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, codes.Error, spans[0].Status.Code)
	assert.Equal(t, "source unavailable", spans[0].Status.Description)
	assert.Len(t, spans[0].Events, 1, "error recorded as event")
	assert.Equal(t, "operation failed", spans[1].Status.Description)

	assert.Equal(t, map[string]int64{"error": 2}, counterByStatus(t, reader))
}

func TestOTelObserver_Metrics(t *testing.T) {
	obs, _, reader := newTestObserver(t)
	ctx := context.Background()

	for _, status := range []Status{StatusOK, StatusOK, StatusNotFound} {
		_, span := obs.Start(ctx, SpanOptions{Component: "xtable", Operation: "lookup"})
		span.End(Result{Status: status})
	}

	assert.Equal(t, map[string]int64{"ok": 2, "not_found": 1}, counterByStatus(t, reader))
}

func TestOTelSpan_EndOnce(t *testing.T) {
	obs, exporter, reader := newTestObserver(t)

	_, span := obs.Start(context.Background(), SpanOptions{Component: "xstore", Operation: "dump"})
	span.End(Result{})
	span.End(Result{Err: errors.New("again")})

	assert.Len(t, exporter.GetSpans(), 1)
	assert.Equal(t, map[string]int64{"ok": 1}, counterByStatus(t, reader))
}

func TestOTelObserver_CanceledContext(t *testing.T) {
	obs, _, reader := newTestObserver(t)

	ctx, cancel := context.WithCancel(context.Background())
	_, span := obs.Start(ctx, SpanOptions{Component: "xsource", Operation: "fetch"})
	cancel()
	span.End(Result{Err: context.Canceled})

	assert.Equal(t, map[string]int64{"error": 1}, counterByStatus(t, reader))
}

func TestOTelObserver_UnknownNames(t *testing.T) {
	obs, exporter, _ := newTestObserver(t)
	_, span := obs.Start(context.Background(), SpanOptions{})
	span.End(Result{})
	require.Len(t, exporter.GetSpans(), 1)
	assert.Equal(t, "unknown.unknown", exporter.GetSpans()[0].Name)
}
