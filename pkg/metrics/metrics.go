// Package metrics defines the OpenTelemetry instruments of the valuation
// pipeline and the Prometheus bridge that exposes them.
package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// BatchBuckets covers whole batch runs, which take minutes.
var BatchBuckets = []float64{1, 5, 15, 30, 60, 120, 300, 600, 1200, 1800} //nolint: gochecknoglobals

const meterName = "domainfinder"

// Outcome labels.
const (
	OutcomeCreated   = "created"
	OutcomeUpdated   = "updated"
	OutcomeFailed    = "failed"
	OutcomeSkipped   = "skipped"
	OutcomeSucceeded = "succeeded"
	OutcomeAborted   = "aborted"
	OutcomeSent      = "sent"
)

// NewMeterProvider returns a MeterProvider whose instruments are exported to
// reg through the OpenTelemetry Prometheus exporter.
func NewMeterProvider(reg prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}

// Metrics records pipeline measurements. A nil *Metrics records nothing.
type Metrics struct {
	fetches       metric.Int64Counter
	fetchDuration metric.Float64Histogram
	domains       metric.Int64Counter
	batches       metric.Int64Counter
	batchDuration metric.Float64Histogram
	alerts        metric.Int64Counter
}

// New creates the instruments on mp.
func New(mp metric.MeterProvider) (*Metrics, error) {
	meter := mp.Meter(meterName)
	m := &Metrics{}

	var err error
	if m.fetches, err = meter.Int64Counter("domainfinder.source.fetches",
		metric.WithDescription("Source fetches by source and result status.")); err != nil {
		return nil, fmt.Errorf("could not create fetches counter: %w", err)
	}
	if m.fetchDuration, err = meter.Float64Histogram("domainfinder.source.fetch.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Source fetch latency."),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...)); err != nil {
		return nil, fmt.Errorf("could not create fetch duration histogram: %w", err)
	}
	if m.domains, err = meter.Int64Counter("domainfinder.domains.processed",
		metric.WithDescription("Domains processed by outcome.")); err != nil {
		return nil, fmt.Errorf("could not create domains counter: %w", err)
	}
	if m.batches, err = meter.Int64Counter("domainfinder.batches",
		metric.WithDescription("Batch runs by outcome.")); err != nil {
		return nil, fmt.Errorf("could not create batches counter: %w", err)
	}
	if m.batchDuration, err = meter.Float64Histogram("domainfinder.batch.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Batch run duration."),
		metric.WithExplicitBucketBoundaries(BatchBuckets...)); err != nil {
		return nil, fmt.Errorf("could not create batch duration histogram: %w", err)
	}
	if m.alerts, err = meter.Int64Counter("domainfinder.alerts",
		metric.WithDescription("Alert deliveries by channel and outcome.")); err != nil {
		return nil, fmt.Errorf("could not create alerts counter: %w", err)
	}

	return m, nil
}

// Noop returns Metrics backed by a no-op provider.
func Noop() *Metrics {
	m, _ := New(noop.NewMeterProvider())

	return m
}

// ObserveFetch records one source fetch.
func (m *Metrics) ObserveFetch(ctx context.Context, source, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.fetches.Add(ctx, 1, metric.WithAttributes(
		attribute.String("source", source), attribute.String("status", status)))
	m.fetchDuration.Record(ctx, d.Seconds(), metric.WithAttributes(attribute.String("source", source)))
}

// ObserveDomain records the outcome of one domain in a batch.
func (m *Metrics) ObserveDomain(ctx context.Context, outcome string) {
	if m == nil {
		return
	}
	m.domains.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

// ObserveBatch records a finished batch run.
func (m *Metrics) ObserveBatch(ctx context.Context, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("outcome", outcome))
	m.batches.Add(ctx, 1, attrs)
	m.batchDuration.Record(ctx, d.Seconds(), attrs)
}

// ObserveAlert records one alert delivery attempt.
func (m *Metrics) ObserveAlert(ctx context.Context, channel, outcome string) {
	if m == nil {
		return
	}
	m.alerts.Add(ctx, 1, metric.WithAttributes(
		attribute.String("channel", channel), attribute.String("outcome", outcome)))
}
