package outbox

import (
	"context"
	"log/slog"
	"time"
)

type ExpiredKeyStore interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

// Janitor removes idempotency keys past their expiry.
type Janitor struct {
	keys   ExpiredKeyStore
	every  time.Duration
	logger *slog.Logger
}

func NewJanitor(keys ExpiredKeyStore, every time.Duration, logger *slog.Logger) *Janitor {
	if every <= 0 {
		every = time.Hour
	}
	return &Janitor{keys: keys, every: every, logger: logger}
}

func (j *Janitor) Run(ctx context.Context) {
	ticker := time.NewTicker(j.every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := j.keys.DeleteExpired(ctx)
			if err != nil {
				if ctx.Err() == nil {
					j.logger.Error("idempotency cleanup failed", "error", err)
				}
				continue
			}
			if n > 0 {
				j.logger.Info("expired idempotency keys removed", "count", n)
			}
		}
	}
}
