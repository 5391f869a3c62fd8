package enrichment

import (
	"context"
	"domainfinder/pkg/domain"
	"domainfinder/pkg/logger"
	"domainfinder/pkg/metrics"
	"domainfinder/pkg/serrors"
	"domainfinder/pkg/source"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultTimeout bounds every single source call.
const DefaultTimeout = 10 * time.Second

// Enricher queries its fetchers concurrently for one domain at a time.
// Fetchers are given in priority order, highest first.
type Enricher struct {
	fetchers []source.Fetcher
	timeout  time.Duration
	metrics  *metrics.Metrics
}

// Option configures an Enricher.
type Option func(*Enricher)

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(e *Enricher) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// WithMetrics records every fetch on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Enricher) { e.metrics = m }
}

// New constructs an Enricher over fetchers, highest priority first.
func New(fetchers []source.Fetcher, opts ...Option) *Enricher {
	e := &Enricher{fetchers: fetchers, timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Fetch calls every fetcher for key in parallel, each under its own timeout,
// and returns the results in fetcher order. A slow or failing source never
// affects the others.
func (e *Enricher) Fetch(ctx context.Context, key domain.DomainKey) []source.Result {
	results := make([]source.Result, len(e.fetchers))

	var g errgroup.Group
	for i, f := range e.fetchers {
		g.Go(func() error {
			fctx, cancel := context.WithTimeout(ctx, e.timeout)
			defer cancel()

			start := time.Now()
			res := f.Fetch(fctx, key)
			if res.Source == "" {
				res.Source = f.Name()
			}
			e.metrics.ObserveFetch(ctx, res.Source, res.Status.String(), time.Since(start))
			if res.Status == source.StatusUnavailable {
				logger.Warn(ctx, "source unavailable",
					zap.String("source", res.Source),
					zap.NamedError("kind", serrors.KindOf(res.Err)),
					zap.Error(res.Err))
			}
			results[i] = res

			return nil
		})
	}
	_ = g.Wait()

	return results
}

// Enrich fetches every source for the candidate and merges the answers with
// the candidate's listing values as the last resort.
func (e *Enricher) Enrich(ctx context.Context, c domain.Candidate) domain.EnrichmentResult {
	results := append(e.Fetch(ctx, c.Key), ListingResult(c))

	return Merge(results...)
}
