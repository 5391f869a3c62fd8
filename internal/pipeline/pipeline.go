// Package pipeline runs discrete valuation batches: one listing fetch, a
// bounded fan-out over candidates and a final alert dispatch.
package pipeline

import (
	"context"
	"domainfinder/internal/alert"
	"domainfinder/internal/config"
	"domainfinder/internal/enrichment"
	"domainfinder/internal/scoring"
	"domainfinder/internal/valuation"
	"domainfinder/pkg/domain"
	"domainfinder/pkg/listing"
	"domainfinder/pkg/logger"
	"domainfinder/pkg/metrics"
	"domainfinder/pkg/serrors"
	"domainfinder/pkg/storage"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const tracerName = "domainfinder/pipeline"

// DefaultConcurrency is used when Options.Concurrency is not positive.
const DefaultConcurrency = 8

// Request overrides the configured listing parameters of one run.
type Request struct {
	// Limit is the number of candidates requested; zero uses Options.ListingLimit.
	Limit int
	// Sort is the listing order; zero uses Options.Sort.
	Sort domain.SortCriteria
}

// Failure is a domain that could not be persisted.
type Failure struct {
	Key domain.DomainKey
	Err error
}

// Summary reports one batch run.
type Summary struct {
	RunID      string
	Candidates int
	Processed  int
	Failed     int
	// Skipped counts candidates not persisted because the run was cancelled
	// before their enrichment finished.
	Skipped    int
	Created    int
	Updated    int
	Failures   []Failure
	Records    []domain.DomainRecord
	Alerts     alert.Summary
	StartedAt  time.Time
	FinishedAt time.Time
}

type Options struct {
	// Concurrency bounds the number of domains processed at once.
	Concurrency int
	// BatchTimeout bounds the whole run. Zero disables it.
	BatchTimeout time.Duration
	// ListingLimit and Sort are the default listing parameters.
	ListingLimit int
	Sort         domain.SortCriteria
	// DefaultPurchasePrice is used for ROI when a candidate has no price.
	DefaultPurchasePrice float64
}

func NewOptions(cfg *config.Config) Options {
	return Options{
		Concurrency:  cfg.Pipeline.Concurrency,
		BatchTimeout: cfg.Pipeline.BatchTimeout,
		ListingLimit: cfg.Pipeline.ListingLimit,
		Sort: domain.SortCriteria{
			By:    cfg.Pipeline.SortBy,
			Order: cfg.Pipeline.SortOrder,
		},
		DefaultPurchasePrice: cfg.Pipeline.DefaultPurchasePrice,
	}
}

// Deps are the collaborators of a pipeline. Metrics, Tracer and Clock are
// optional.
type Deps struct {
	Storage  storage.Storage
	Listing  listing.Provider
	Enricher *enrichment.Enricher
	Alerts   alert.Dispatcher
	Metrics  *metrics.Metrics
	Tracer   trace.Tracer
	Clock    func() time.Time
}

type pipeline struct {
	options   Options
	deps      Deps
	estimator *valuation.Estimator
	running   atomic.Bool
}

func New(deps Deps, options Options) Runner {
	if options.Concurrency <= 0 {
		options.Concurrency = DefaultConcurrency
	}
	if deps.Tracer == nil {
		deps.Tracer = otel.Tracer(tracerName)
	}
	if deps.Clock == nil {
		deps.Clock = time.Now
	}

	return &pipeline{
		options:   options,
		deps:      deps,
		estimator: valuation.NewEstimator(options.DefaultPurchasePrice),
	}
}

func (p *pipeline) Run(ctx context.Context, req Request) (*Summary, error) {
	if !p.running.CompareAndSwap(false, true) {
		return nil, serrors.With(serrors.ErrConflict, "a batch is already running")
	}
	defer p.running.Store(false)

	// the in-process flag only covers this runner, other processes sharing
	// the database are kept out by the storage lock
	release, err := p.deps.Storage.TryLockBatch(ctx)
	if err != nil {
		if errors.Is(err, serrors.ErrConflict) {
			return nil, err
		}

		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not take batch lock")
	}

	summary := &Summary{RunID: uuid.NewString(), StartedAt: p.deps.Clock().UTC()}
	ctx = logger.WithFields(ctx, zap.String("runID", summary.RunID))
	defer func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			logger.Warn(ctx, "could not release batch lock", zap.Error(err))
		}
	}()
	ctx, span := p.deps.Tracer.Start(ctx, "pipeline.Run", trace.WithAttributes(attribute.String("runID", summary.RunID)))
	defer span.End()

	if p.options.BatchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.options.BatchTimeout)
		defer cancel()
	}

	start := time.Now()
	outcome := metrics.OutcomeSucceeded
	defer func() { p.deps.Metrics.ObserveBatch(ctx, outcome, time.Since(start)) }()

	limit := req.Limit
	if limit <= 0 {
		limit = p.options.ListingLimit
	}
	sort := req.Sort
	if sort.By == "" {
		sort.By = p.options.Sort.By
	}
	if sort.Order == "" {
		sort.Order = p.options.Sort.Order
	}

	logger.Info(ctx, "batch started", zap.Int("limit", limit), zap.String("sortBy", sort.By))

	candidates, err := p.deps.Listing.Fetch(ctx, listing.ClampLimit(limit), sort)
	if err != nil {
		outcome = metrics.OutcomeAborted
		span.RecordError(err)
		span.SetStatus(codes.Error, "listing unavailable")
		logger.Error(ctx, "could not fetch listing, batch aborted", zap.Error(err))

		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not fetch listing")
	}
	candidates = dedupe(candidates)
	summary.Candidates = len(candidates)

	p.processAll(ctx, candidates, summary)

	if len(summary.Records) > 0 && p.deps.Alerts != nil {
		if ctx.Err() != nil {
			logger.Warn(ctx, "batch cancelled, alerts not sent", zap.Error(ctx.Err()))
		} else {
			subs, err := p.deps.Storage.ActiveSubscriptions(ctx)
			if err != nil {
				logger.Error(ctx, "could not load subscriptions", zap.Error(err))
				summary.Alerts.Errors = append(summary.Alerts.Errors, fmt.Errorf("could not load subscriptions: %w", err))
			} else {
				summary.Alerts = p.deps.Alerts.Dispatch(ctx, subs, summary.Records)
			}
		}
	}

	summary.FinishedAt = p.deps.Clock().UTC()
	if summary.Failed > 0 {
		span.SetStatus(codes.Error, "some domains failed")
	}
	span.SetAttributes(
		attribute.Int("candidates", summary.Candidates),
		attribute.Int("processed", summary.Processed),
		attribute.Int("failed", summary.Failed))

	logger.Info(ctx, "batch finished",
		zap.Int("candidates", summary.Candidates),
		zap.Int("processed", summary.Processed),
		zap.Int("failed", summary.Failed),
		zap.Int("skipped", summary.Skipped),
		zap.Int("created", summary.Created),
		zap.Int("updated", summary.Updated),
		zap.Duration("took", time.Since(start)))

	return summary, nil
}

// dedupe drops zero keys and repeated keys, keeping the first occurrence.
func dedupe(candidates []domain.Candidate) []domain.Candidate {
	seen := make(map[domain.DomainKey]struct{}, len(candidates))
	out := candidates[:0:0]
	for _, c := range candidates {
		if c.Key.Name == "" || c.Key.TLD == "" {
			continue
		}
		if _, ok := seen[c.Key]; ok {
			continue
		}
		seen[c.Key] = struct{}{}
		out = append(out, c)
	}

	return out
}

func (p *pipeline) processAll(ctx context.Context, candidates []domain.Candidate, summary *Summary) {
	var mu sync.Mutex

	g := &errgroup.Group{}
	g.SetLimit(p.options.Concurrency)

	for i, c := range candidates {
		if ctx.Err() != nil {
			mu.Lock()
			summary.Skipped += len(candidates) - i
			mu.Unlock()

			break
		}

		// Go may block on a full pool, the run can be cancelled in between
		g.Go(func() error {
			var (
				rec     *domain.DomainRecord
				created bool
				err     = ctx.Err()
			)
			if err == nil {
				rec, created, err = p.processDomain(ctx, c)
			}

			mu.Lock()
			defer mu.Unlock()
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				summary.Skipped++

				return nil
			}
			if err != nil {
				summary.Failed++
				summary.Failures = append(summary.Failures, Failure{Key: c.Key, Err: err})

				return nil
			}
			summary.Processed++
			if created {
				summary.Created++
			} else {
				summary.Updated++
			}
			summary.Records = append(summary.Records, *rec)

			return nil
		})
	}
	_ = g.Wait()
}

// processDomain enriches, scores, values and persists one candidate. Errors
// are contained here so one domain never aborts the batch.
func (p *pipeline) processDomain(ctx context.Context, c domain.Candidate) (*domain.DomainRecord, bool, error) {
	ctx = logger.WithFields(ctx, zap.String("domain", c.Key.String()))
	ctx, span := p.deps.Tracer.Start(ctx, "pipeline.processDomain",
		trace.WithAttributes(attribute.String("domain", c.Key.String())))
	defer span.End()

	enriched := p.deps.Enricher.Enrich(ctx, c)
	if err := ctx.Err(); err != nil {
		// sources cut short report nothing, writing that would overwrite a good record
		p.deps.Metrics.ObserveDomain(ctx, metrics.OutcomeSkipped)
		logger.Warn(ctx, "batch cancelled, domain not persisted", zap.Error(err))

		return nil, false, err
	}
	score := scoring.Score(c.Key, enriched)
	estimate := p.estimator.Estimate(score.TotalScore, c.Price)

	rec := domain.DomainRecord{
		Key:         c.Key,
		Enrichment:  enriched,
		Score:       score,
		Valuation:   estimate,
		LastChecked: p.deps.Clock().UTC(),
	}

	// a write that started finishes even when the batch is cancelled
	stored, created, err := p.persist(context.WithoutCancel(ctx), rec)
	if err != nil {
		p.deps.Metrics.ObserveDomain(ctx, metrics.OutcomeFailed)
		span.RecordError(err)
		span.SetStatus(codes.Error, "could not persist domain")
		logger.Error(ctx, "could not persist domain", zap.Error(err))

		return nil, false, err
	}

	outcome := metrics.OutcomeUpdated
	if created {
		outcome = metrics.OutcomeCreated
	}
	p.deps.Metrics.ObserveDomain(ctx, outcome)
	logger.Info(ctx, "domain scored",
		zap.Float64("score", domain.Round2(score.TotalScore)),
		zap.String("grade", string(estimate.Grade)),
		zap.Int("backlinks", enriched.BacklinkCount),
		zap.Int("ageDays", enriched.AgeDays),
		zap.Bool("created", created))

	return stored, created, nil
}

// persist upserts rec and appends its history entry in one transaction
// holding the domain's lock. A conflict is retried once.
func (p *pipeline) persist(ctx context.Context, rec domain.DomainRecord) (*domain.DomainRecord, bool, error) {
	var (
		stored  *domain.DomainRecord
		created bool
	)
	write := func() error {
		return p.deps.Storage.WithTx(ctx, func(tx storage.AllStorage) error {
			if err := tx.LockDomain(ctx, rec.Key); err != nil {
				return fmt.Errorf("could not lock domain: %w", err)
			}

			s, c, err := tx.UpsertDomain(ctx, rec)
			if err != nil {
				return fmt.Errorf("could not upsert domain: %w", err)
			}
			if _, err := tx.AppendHistory(ctx, rec.Key, rec.Score, rec.LastChecked); err != nil {
				return fmt.Errorf("could not append score history: %w", err)
			}
			stored, created = s, c

			return nil
		})
	}

	err := write()
	if errors.Is(err, serrors.ErrConflict) {
		logger.Warn(ctx, "write conflict, retrying once", zap.Error(err))
		err = write()
	}
	if err != nil {
		return nil, false, err
	}

	return stored, created, nil
}
