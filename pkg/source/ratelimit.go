package source

import (
	"context"
	"domainfinder/pkg/domain"
	"domainfinder/pkg/serrors"

	"golang.org/x/time/rate"
)

type limited struct {
	Fetcher
	limiter *rate.Limiter
}

// RateLimited wraps f so every Fetch first waits for limiter. When the wait
// cannot complete before ctx ends the fetch is reported as unavailable
// without calling f.
func RateLimited(f Fetcher, limiter *rate.Limiter) Fetcher {
	if limiter == nil {
		return f
	}

	return &limited{Fetcher: f, limiter: limiter}
}

// NewLimiter returns a limiter allowing perSecond requests with a burst of the
// same size. A non-positive rate disables limiting.
func NewLimiter(perSecond float64) *rate.Limiter {
	if perSecond <= 0 {
		return nil
	}

	return rate.NewLimiter(rate.Limit(perSecond), max(1, int(perSecond)))
}

func (l *limited) Fetch(ctx context.Context, key domain.DomainKey) Result {
	if err := l.limiter.Wait(ctx); err != nil {
		return Unavailable(l.Name(), serrors.Wrap(serrors.ErrRateLimited, err, "rate limit wait"))
	}

	return l.Fetcher.Fetch(ctx, key)
}
