package repository

import (
	"context"

	"pet-scheduler/internal/domain/appointment"
	"pet-scheduler/internal/infra"
	"pet-scheduler/internal/infra/repository/converter"
	sqlc "pet-scheduler/internal/infra/sqlc/generated"
	"pet-scheduler/internal/pkg/pgconv"
)

type AppointmentWriteQueries interface {
	CreateAppointment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateAppointmentParams) (int64, error)
	GetAppointmentForUpdate(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Appointments, error)
	UpdateAppointmentStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateAppointmentStatusParams) (int64, error)
}

type AppointmentRepository struct {
	queries AppointmentWriteQueries
	db      sqlc.DBTX
}

func NewAppointmentRepository(queries *sqlc.Queries, db sqlc.DBTX) *AppointmentRepository {
	return &AppointmentRepository{
		queries: queries,
		db:      db,
	}
}

// Create inserts a. An overlapping active booking on the same resource
// surfaces as KindConflict from the exclusion constraint.
func (r *AppointmentRepository) Create(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment) (int64, error) {
	id, err := r.queries.CreateAppointment(ctx, tx, converter.AppointmentToCreateParams(a))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create appointment", err)
	}
	return id, nil
}

func (r *AppointmentRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id int64) (*appointment.Appointment, error) {
	row, err := r.queries.GetAppointmentForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock appointment", err)
	}
	return converter.AppointmentFromRow(row), nil
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment) error {
	params := sqlc.UpdateAppointmentStatusParams{
		ID:        a.ID(),
		Status:    a.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(a.UpdatedAt()),
	}

	n, err := r.queries.UpdateAppointmentStatus(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update appointment status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}
	return nil
}
