package worker

import (
	"context"
	"domainfinder/internal/pipeline"
	"domainfinder/pkg/domain"
	"domainfinder/pkg/logger"
	"domainfinder/pkg/serrors"
	"errors"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"go.uber.org/zap"
)

// timeoutMargin lets the pipeline hit its own deadline, and report, before
// river cancels the job.
const timeoutMargin = time.Minute

// BatchArgs are the arguments of a batch job. Zero values fall back to the
// configured listing parameters.
type BatchArgs struct {
	Limit     int    `json:"limit,omitempty"`
	SortBy    string `json:"sortBy,omitempty"`
	SortOrder string `json:"sortOrder,omitempty"`
}

func (BatchArgs) Kind() string { return "domain_batch" }

// InsertOpts makes batches unique while one is queued or running and never
// retries them; the next scheduled run picks up whatever failed.
func (BatchArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}

// BatchWorker runs one pipeline batch per job.
type BatchWorker struct {
	river.WorkerDefaults[BatchArgs]

	runner  pipeline.Runner
	timeout time.Duration
}

// NewBatchWorker creates a worker bounded by batchTimeout. A non-positive
// batchTimeout disables the job timeout.
func NewBatchWorker(runner pipeline.Runner, batchTimeout time.Duration) *BatchWorker {
	return &BatchWorker{
		runner:  runner,
		timeout: batchTimeout,
	}
}

func (w *BatchWorker) Timeout(*river.Job[BatchArgs]) time.Duration {
	if w.timeout <= 0 {
		return -1
	}

	return w.timeout + timeoutMargin
}

// Work runs the batch. An overlapping batch cancels the job instead of
// failing it.
func (w *BatchWorker) Work(ctx context.Context, job *river.Job[BatchArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID))

	summary, err := w.runner.Run(ctx, pipeline.Request{
		Limit: job.Args.Limit,
		Sort:  domain.SortCriteria{By: job.Args.SortBy, Order: job.Args.SortOrder},
	})
	if err != nil {
		if errors.Is(err, serrors.ErrConflict) {
			logger.Warn(ctx, "batch skipped, another one is running")

			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "batch failed", zap.Error(err))

		return fmt.Errorf("could not run batch: %w", err)
	}

	logger.Info(ctx, "batch job done",
		zap.String("runID", summary.RunID),
		zap.Int("processed", summary.Processed),
		zap.Int("failed", summary.Failed),
		zap.Int("emailsSent", summary.Alerts.EmailSent),
		zap.Int("webhooksSent", summary.Alerts.WebhookSent))

	return nil
}
