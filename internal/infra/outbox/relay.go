package outbox

import (
	"context"
	"log/slog"
	"time"

	sqlc "pet-scheduler/internal/infra/sqlc/generated"
	"pet-scheduler/internal/pkg/clock"
	"pet-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	statusQueued = "queued"
	statusFailed = "failed"

	maxBackoff = 5 * time.Minute
)

type JobStore interface {
	ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int) ([]sqlc.NotificationJobs, error)
	MarkSent(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, now time.Time) error
	MarkRetry(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, status string, lastError string, runAt, now time.Time) error
}

type RelayConfig struct {
	PollEvery   time.Duration
	BatchSize   int
	MaxAttempts int
}

// Relay drains queued notification jobs into a Publisher. Several relays may
// run against one database; claimed rows are skipped by the others.
type Relay struct {
	db        shared.TxBeginner
	jobs      JobStore
	publisher Publisher
	clock     clock.Clock
	logger    *slog.Logger
	cfg       RelayConfig
}

func NewRelay(db shared.TxBeginner, jobs JobStore, publisher Publisher, clk clock.Clock, logger *slog.Logger, cfg RelayConfig) *Relay {
	if cfg.PollEvery <= 0 {
		cfg.PollEvery = 2 * time.Second
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 5
	}
	return &Relay{
		db:        db,
		jobs:      jobs,
		publisher: publisher,
		clock:     clk,
		logger:    logger,
		cfg:       cfg,
	}
}

// Run polls until ctx is canceled.
func (r *Relay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.cfg.PollEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := r.RelayOnce(ctx); err != nil && ctx.Err() == nil {
				r.logger.Error("outbox relay failed", "error", err)
			}
		}
	}
}

// RelayOnce publishes one batch and returns how many jobs were delivered.
// A broker failure is recorded on the job; only database errors abort the batch.
func (r *Relay) RelayOnce(ctx context.Context) (int, error) {
	return shared.WithDefaultRetry(ctx, r.db, func(tx sqlc.DBTX) (int, error) {
		now := r.clock.Now()

		jobs, err := r.jobs.ClaimDue(ctx, tx, now, r.cfg.BatchSize)
		if err != nil {
			return 0, err
		}

		sent := 0
		for _, job := range jobs {
			msg := Message{ID: job.ID, Topic: job.Topic, Key: job.MsgKey, Payload: job.Payload}

			if pubErr := r.publisher.Publish(ctx, msg); pubErr != nil {
				status, runAt := r.nextAttempt(job.Attempts+1, now)
				r.logger.Warn("notification delivery failed",
					"job_id", job.ID.String(),
					"topic", job.Topic,
					"attempt", job.Attempts+1,
					"status", status,
					"error", pubErr)
				if err := r.jobs.MarkRetry(ctx, tx, job.ID, status, pubErr.Error(), runAt, now); err != nil {
					return sent, err
				}
				continue
			}

			if err := r.jobs.MarkSent(ctx, tx, job.ID, now); err != nil {
				return sent, err
			}
			sent++
		}
		return sent, nil
	})
}

// nextAttempt doubles the wait per attempt and gives up after MaxAttempts.
func (r *Relay) nextAttempt(attempts int32, now time.Time) (string, time.Time) {
	if int(attempts) >= r.cfg.MaxAttempts {
		return statusFailed, now
	}
	wait := r.cfg.PollEvery << min(attempts, 16)
	if wait > maxBackoff || wait <= 0 {
		wait = maxBackoff
	}
	return statusQueued, now.Add(wait)
}
