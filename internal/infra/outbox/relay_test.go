//go:build unit

package outbox

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	sqlc "pet-scheduler/internal/infra/sqlc/generated"
	"pet-scheduler/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTx only supports commit and rollback; the job store never touches it.
type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit(context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(context.Context) error {
	if t.committed {
		return pgx.ErrTxClosed
	}
	t.rolledBack = true
	return nil
}

type fakeDB struct{ txs []*fakeTx }

func (d *fakeDB) Begin(context.Context) (pgx.Tx, error) {
	tx := &fakeTx{}
	d.txs = append(d.txs, tx)
	return tx, nil
}

type retryCall struct {
	id     uuid.UUID
	status string
	runAt  time.Time
}

type fakeJobs struct {
	due     []sqlc.NotificationJobs
	sent    []uuid.UUID
	retries []retryCall
	failOn  string
}

func (j *fakeJobs) ClaimDue(_ context.Context, _ sqlc.DBTX, _ time.Time, limit int) ([]sqlc.NotificationJobs, error) {
	if j.failOn == "claim" {
		return nil, errors.New("db down")
	}
	return j.due[:min(limit, len(j.due))], nil
}

func (j *fakeJobs) MarkSent(_ context.Context, _ sqlc.DBTX, id uuid.UUID, _ time.Time) error {
	j.sent = append(j.sent, id)
	return nil
}

func (j *fakeJobs) MarkRetry(_ context.Context, _ sqlc.DBTX, id uuid.UUID, status, _ string, runAt, _ time.Time) error {
	j.retries = append(j.retries, retryCall{id, status, runAt})
	return nil
}

type fakePublisher struct {
	published []Message
	failTopic string
}

func (p *fakePublisher) Publish(_ context.Context, msg Message) error {
	if msg.Topic == p.failTopic {
		return errors.New("broker unavailable")
	}
	p.published = append(p.published, msg)
	return nil
}

func (p *fakePublisher) Close() error { return nil }

func job(topic string, attempts int32) sqlc.NotificationJobs {
	return sqlc.NotificationJobs{ID: uuid.New(), Topic: topic, MsgKey: "appointment-1", Payload: []byte(`{}`), Attempts: attempts}
}

func newTestRelay(db *fakeDB, jobs *fakeJobs, pub *fakePublisher, now time.Time) *Relay {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRelay(db, jobs, pub, clock.NewMockClock(now), logger, RelayConfig{PollEvery: time.Second, BatchSize: 10, MaxAttempts: 3})
}

func TestRelay_RelayOnce(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 8, 20, 12, 0, 0, 0, time.UTC)

	t.Run("publishes and marks every due job", func(t *testing.T) {
		db := &fakeDB{}
		jobs := &fakeJobs{due: []sqlc.NotificationJobs{job("appointment.confirmed", 0), job("appointment.status_changed", 0)}}
		pub := &fakePublisher{}

		n, err := newTestRelay(db, jobs, pub, now).RelayOnce(ctx)
		require.NoError(t, err)

		assert.Equal(t, 2, n)
		assert.Len(t, pub.published, 2)
		assert.Equal(t, "appointment-1", pub.published[0].Key)
		assert.Equal(t, []uuid.UUID{jobs.due[0].ID, jobs.due[1].ID}, jobs.sent)
		require.Len(t, db.txs, 1)
		assert.True(t, db.txs[0].committed)
	})

	t.Run("a broker failure schedules a retry and keeps going", func(t *testing.T) {
		db := &fakeDB{}
		failing := job("appointment.status_changed", 1)
		jobs := &fakeJobs{due: []sqlc.NotificationJobs{failing, job("appointment.confirmed", 0)}}
		pub := &fakePublisher{failTopic: "appointment.status_changed"}

		n, err := newTestRelay(db, jobs, pub, now).RelayOnce(ctx)
		require.NoError(t, err)

		assert.Equal(t, 1, n)
		require.Len(t, jobs.retries, 1)
		assert.Equal(t, failing.ID, jobs.retries[0].id)
		assert.Equal(t, statusQueued, jobs.retries[0].status)
		assert.Equal(t, now.Add(4*time.Second), jobs.retries[0].runAt)
		assert.True(t, db.txs[0].committed)
	})

	t.Run("a database failure rolls back", func(t *testing.T) {
		db := &fakeDB{}
		jobs := &fakeJobs{failOn: "claim"}

		_, err := newTestRelay(db, jobs, &fakePublisher{}, now).RelayOnce(ctx)
		require.Error(t, err)
		assert.True(t, db.txs[0].rolledBack)
	})
}

func TestRelay_NextAttempt(t *testing.T) {
	now := time.Date(2024, 8, 20, 12, 0, 0, 0, time.UTC)
	r := newTestRelay(&fakeDB{}, &fakeJobs{}, &fakePublisher{}, now)

	status, at := r.nextAttempt(1, now)
	assert.Equal(t, statusQueued, status)
	assert.Equal(t, now.Add(2*time.Second), at)

	status, at = r.nextAttempt(2, now)
	assert.Equal(t, statusQueued, status)
	assert.Equal(t, now.Add(4*time.Second), at)

	status, _ = r.nextAttempt(3, now)
	assert.Equal(t, statusFailed, status)

	r.cfg.MaxAttempts = 100
	_, at = r.nextAttempt(40, now)
	assert.Equal(t, now.Add(maxBackoff), at)
}
