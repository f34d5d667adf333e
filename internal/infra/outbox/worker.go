package outbox

import (
	"context"
	"log/slog"
	"sync"
	"time"

	sqlc "ootd-commerce/internal/infra/sqlc/generated"
	"ootd-commerce/internal/pkg/clock"
	"ootd-commerce/internal/pkg/config"
	"ootd-commerce/internal/pkg/metrics"
	"ootd-commerce/internal/usecase/shared"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultPollInterval   = time.Second
	defaultBatchSize      = 50
	defaultMaxAttempts    = 5
	defaultRetryBaseDelay = 200 * time.Millisecond
	maxRetryDelay         = 10 * time.Minute
	sweepInterval         = time.Minute
)

type JobStore interface {
	ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int) ([]shared.OutboxJob, error)
	MarkSent(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID) error
	Reschedule(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, runAt time.Time, lastError string) error
	MarkFailed(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, lastError string) error
}

type BacklogCounter interface {
	CountQueued(ctx context.Context) (int64, error)
}

// KeySweeper removes idempotency keys past their expiry.
type KeySweeper interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

type Publisher interface {
	Publish(job shared.OutboxJob) error
}

type Options struct {
	PollInterval   time.Duration
	BatchSize      int
	MaxAttempts    int
	RetryBaseDelay time.Duration
}

func OptionsFromConfig(cfg config.OutboxConfig) Options {
	return Options{
		PollInterval:   cfg.PollInterval,
		BatchSize:      int(cfg.BatchSize),
		MaxAttempts:    int(cfg.MaxAttempts),
		RetryBaseDelay: cfg.RetryBaseDelay,
	}
}

// Worker drains notification_jobs to the broker. Jobs are claimed with
// SKIP LOCKED inside one transaction per batch, so several workers may run.
type Worker struct {
	uow       shared.UnitOfWork
	jobs      JobStore
	backlog   BacklogCounter
	sweeper   KeySweeper
	publisher Publisher
	clock     clock.Clock
	metrics   *metrics.Metrics
	logger    *slog.Logger
	opts      Options

	lastSweep time.Time
	cancel    context.CancelFunc
	wg        sync.WaitGroup
}

func NewWorker(
	uow shared.UnitOfWork,
	jobs JobStore,
	backlog BacklogCounter,
	sweeper KeySweeper,
	publisher Publisher,
	clk clock.Clock,
	m *metrics.Metrics,
	logger *slog.Logger,
	opts Options,
) *Worker {
	if opts.PollInterval <= 0 {
		opts.PollInterval = defaultPollInterval
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = defaultBatchSize
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = defaultMaxAttempts
	}
	if opts.RetryBaseDelay < 0 {
		opts.RetryBaseDelay = defaultRetryBaseDelay
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Worker{
		uow:       uow,
		jobs:      jobs,
		backlog:   backlog,
		sweeper:   sweeper,
		publisher: publisher,
		clock:     clk,
		metrics:   m,
		logger:    logger.With("component", "outbox-worker"),
		opts:      opts,
	}
}

// Register ties the worker to the fx lifecycle.
func Register(lc fx.Lifecycle, w *Worker) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			w.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return w.Stop(ctx)
		},
	})
}

func (w *Worker) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.Run(ctx)
	}()
}

func (w *Worker) Stop(ctx context.Context) error {
	if w.cancel == nil {
		return nil
	}
	w.cancel()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *Worker) Run(ctx context.Context) {
	if w.publisher == nil {
		w.logger.Warn("outbox worker is disabled: no publisher configured, jobs stay queued")
		return
	}

	ticker := time.NewTicker(w.opts.PollInterval)
	defer ticker.Stop()

	w.ProcessOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.ProcessOnce(ctx)
		}
	}
}

// ProcessOnce publishes one batch of due jobs. Failed publishes are
// rescheduled with exponential backoff until MaxAttempts is reached.
func (w *Worker) ProcessOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	err := w.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := w.clock.Now()
		jobs, err := w.jobs.ClaimDue(ctx, tx.DB(), now, w.opts.BatchSize)
		if err != nil {
			return err
		}
		for _, job := range jobs {
			if err := w.handle(ctx, tx.DB(), job, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil && ctx.Err() == nil {
		w.logger.Warn("failed to process outbox batch", "error", err)
	}

	w.refreshBacklog(ctx)
	w.sweepExpiredKeys(ctx)
}

func (w *Worker) handle(ctx context.Context, db sqlc.DBTX, job shared.OutboxJob, now time.Time) error {
	publishErr := w.publisher.Publish(job)
	if publishErr == nil {
		w.metrics.RecordOutboxPublish(metrics.OutboxPublished)
		return w.jobs.MarkSent(ctx, db, job.ID)
	}

	attempt := job.Attempts + 1
	if attempt >= w.opts.MaxAttempts {
		w.logger.Error("outbox publish failed, giving up",
			"job_id", job.ID, "kind", job.Kind, "attempts", attempt, "error", publishErr)
		w.metrics.RecordOutboxPublish(metrics.OutboxFailed)
		return w.jobs.MarkFailed(ctx, db, job.ID, publishErr.Error())
	}

	w.logger.Warn("outbox publish failed, rescheduling",
		"job_id", job.ID, "kind", job.Kind, "attempts", attempt, "error", publishErr)
	w.metrics.RecordOutboxPublish(metrics.OutboxRetried)
	return w.jobs.Reschedule(ctx, db, job.ID, now.Add(RetryBackoff(w.opts.RetryBaseDelay, attempt)), publishErr.Error())
}

func (w *Worker) refreshBacklog(ctx context.Context) {
	if w.backlog == nil {
		return
	}
	n, err := w.backlog.CountQueued(ctx)
	if err != nil {
		w.logger.Warn("failed to count outbox backlog", "error", err)
		return
	}
	w.metrics.SetOutboxBacklog(int(n))
}

func (w *Worker) sweepExpiredKeys(ctx context.Context) {
	if w.sweeper == nil {
		return
	}
	now := w.clock.Now()
	if !w.lastSweep.IsZero() && now.Sub(w.lastSweep) < sweepInterval {
		return
	}
	w.lastSweep = now

	n, err := w.sweeper.DeleteExpired(ctx)
	if err != nil {
		w.logger.Warn("failed to sweep expired idempotency keys", "error", err)
		return
	}
	if n > 0 {
		w.logger.Info("expired idempotency keys removed", "count", n)
	}
}

// RetryBackoff doubles base for every attempt after the first, capped at ten minutes.
func RetryBackoff(base time.Duration, attempt int) time.Duration {
	if base <= 0 {
		return 0
	}
	delay := base
	for i := 1; i < attempt; i++ {
		if delay >= maxRetryDelay/2 {
			return maxRetryDelay
		}
		delay *= 2
	}
	return min(delay, maxRetryDelay)
}
