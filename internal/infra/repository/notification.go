package repository

import (
	"context"
	"time"

	"pet-scheduler/internal/infra"
	sqlc "pet-scheduler/internal/infra/sqlc/generated"
	"pet-scheduler/internal/pkg/pgconv"
	"pet-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error
	ClaimDueNotificationJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimDueNotificationJobsParams) ([]sqlc.NotificationJobs, error)
	MarkNotificationJobSent(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkNotificationJobSentParams) error
	MarkNotificationJobRetry(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkNotificationJobRetryParams) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
	db      sqlc.DBTX
}

func NewNotificationRepository(queries NotificationWriteQueries, db sqlc.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx sqlc.DBTX, job shared.NotificationJob) error {
	params := sqlc.CreateNotificationJobParams{
		Kind:    job.Kind,
		Topic:   job.Topic,
		MsgKey:  job.Key,
		Payload: job.Payload,
		RunAt:   pgtype.Timestamptz{Time: job.RunAt, Valid: true},
	}

	err := r.queries.CreateNotificationJob(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}

	return nil
}

// ClaimDue locks up to limit queued jobs; rows held by another relay are skipped.
func (r *NotificationRepository) ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int) ([]sqlc.NotificationJobs, error) {
	params := sqlc.ClaimDueNotificationJobsParams{
		RunAt: pgconv.TimeToPgtype(now),
		Limit: pgconv.IntToInt32(limit),
	}

	rows, err := r.queries.ClaimDueNotificationJobs(ctx, tx, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}
	return rows, nil
}

func (r *NotificationRepository) MarkSent(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, now time.Time) error {
	params := sqlc.MarkNotificationJobSentParams{
		ID:        jobID,
		UpdatedAt: pgconv.TimeToPgtype(now),
	}

	if err := r.queries.MarkNotificationJobSent(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to mark notification job sent", err)
	}
	return nil
}

// MarkRetry records a failed delivery. status is "queued" to try again at
// runAt, or "failed" once attempts are exhausted.
func (r *NotificationRepository) MarkRetry(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, status string, lastError string, runAt, now time.Time) error {
	params := sqlc.MarkNotificationJobRetryParams{
		ID:        jobID,
		Status:    status,
		LastError: pgconv.StringToPgtype(lastError),
		RunAt:     pgconv.TimeToPgtype(runAt),
		UpdatedAt: pgconv.TimeToPgtype(now),
	}

	if err := r.queries.MarkNotificationJobRetry(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to record notification job failure", err)
	}
	return nil
}
