package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs, e.g. a batch run triggered from the
// CLI. opts customizes insertion (queue, uniqueness, schedule).
//
// Example:
//
//	inserted, err := storage.AddJob(ctx, worker.BatchArgs{Limit: 50}, nil)
//	if err != nil { /* handle error */ }
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments. It is atomic with
	// respect to any surrounding transaction. The returned bool is false when
	// the job was skipped as a duplicate of a unique job.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
