package metrics_test

import (
	"context"
	"domainfinder/pkg/metrics"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Aggregation {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := map[string]metricdata.Aggregation{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m.Data
		}
	}

	return out
}

func TestMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	m, err := metrics.New(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))
	require.NoError(t, err)

	ctx := context.Background()
	m.ObserveFetch(ctx, "rdap", "found", 120*time.Millisecond)
	m.ObserveFetch(ctx, "rdap", "found", 80*time.Millisecond)
	m.ObserveFetch(ctx, "wayback", "unavailable", time.Second)
	m.ObserveDomain(ctx, metrics.OutcomeCreated)
	m.ObserveBatch(ctx, metrics.OutcomeSucceeded, time.Minute)
	m.ObserveAlert(ctx, "email", metrics.OutcomeSent)

	data := collect(t, reader)

	fetches, ok := data["domainfinder.source.fetches"].(metricdata.Sum[int64])
	require.True(t, ok)
	counts := map[attribute.Distinct]int64{}
	for _, dp := range fetches.DataPoints {
		counts[dp.Attributes.Equivalent()] = dp.Value
	}
	rdapFound := attribute.NewSet(attribute.String("source", "rdap"), attribute.String("status", "found"))
	require.Equal(t, int64(2), counts[rdapFound.Equivalent()])

	durations, ok := data["domainfinder.source.fetch.duration"].(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, durations.DataPoints, 2)

	for _, name := range []string{"domainfinder.domains.processed", "domainfinder.batches", "domainfinder.alerts"} {
		sum, ok := data[name].(metricdata.Sum[int64])
		require.True(t, ok, name)
		require.Len(t, sum.DataPoints, 1, name)
		require.Equal(t, int64(1), sum.DataPoints[0].Value, name)
	}
}

func TestNilMetrics(t *testing.T) {
	var m *metrics.Metrics
	require.NotPanics(t, func() {
		m.ObserveFetch(context.Background(), "rdap", "found", time.Second)
		m.ObserveDomain(context.Background(), metrics.OutcomeFailed)
		m.ObserveBatch(context.Background(), metrics.OutcomeAborted, time.Second)
		m.ObserveAlert(context.Background(), "webhook", metrics.OutcomeFailed)
	})
	require.NotNil(t, metrics.Noop())
}

func TestNewMeterProvider(t *testing.T) {
	reg := prometheus.NewRegistry()
	mp, err := metrics.NewMeterProvider(reg)
	require.NoError(t, err)
	defer func() { _ = mp.Shutdown(context.Background()) }()

	m, err := metrics.New(mp)
	require.NoError(t, err)
	m.ObserveDomain(context.Background(), metrics.OutcomeUpdated)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	require.Contains(t, names, "domainfinder_domains_processed_total")
}
