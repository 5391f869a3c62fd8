package worker

import (
	"context"
	"domainfinder/internal/config"
	"domainfinder/internal/pipeline"
	"domainfinder/pkg/logger"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
)

type Options struct {
	// MaxWorkers is the concurrency of the default queue.
	MaxWorkers int
	// Interval schedules a batch periodically. Zero disables the schedule.
	Interval time.Duration
	// RunOnStart enqueues a batch as soon as the client starts.
	RunOnStart bool
	// BatchTimeout bounds a batch job.
	BatchTimeout time.Duration
}

func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers:   cfg.Worker.MaxWorkers,
		Interval:     cfg.Pipeline.Interval,
		RunOnStart:   cfg.Pipeline.RunOnStart,
		BatchTimeout: cfg.Pipeline.BatchTimeout,
	}
}

// periodicJobs returns the scheduled batch, if any.
func periodicJobs(options Options) []*river.PeriodicJob {
	if options.Interval <= 0 {
		return nil
	}

	return []*river.PeriodicJob{
		river.NewPeriodicJob(
			river.PeriodicInterval(options.Interval),
			func() (river.JobArgs, *river.InsertOpts) { return BatchArgs{}, nil },
			&river.PeriodicJobOpts{RunOnStart: options.RunOnStart},
		),
	}
}

func Start(ctx context.Context, dbPool *pgxpool.Pool, runner pipeline.Runner, options Options) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewBatchWorker(runner, options.BatchTimeout))

	maxWorkers := options.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = 1
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers:      workers,
		PeriodicJobs: periodicJobs(options),
		Logger:       slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	logger.Info(ctx, "worker started",
		zap.Int("maxWorkers", maxWorkers),
		zap.Duration("interval", options.Interval),
		zap.Bool("runOnStart", options.RunOnStart))

	return riverClient, nil
}
