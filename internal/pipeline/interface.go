package pipeline

import "context"

//go:generate mockgen -package mockpipeline -source=interface.go -destination=mock/mockpipeline.go *
type Runner interface {
	// Run executes one batch: listing fetch, per-domain enrichment, scoring,
	// valuation and persistence, then alert dispatch. It returns
	// serrors.ErrConflict when another batch is already running in this
	// process and serrors.ErrUnavailable when the listing cannot be fetched.
	Run(ctx context.Context, req Request) (*Summary, error)
}
