package readstore

import (
	"context"

	"pet-scheduler/internal/domain/appointment"
	"pet-scheduler/internal/domain/schedule"
	"pet-scheduler/internal/infra"
	"pet-scheduler/internal/infra/repository/converter"
	sqlc "pet-scheduler/internal/infra/sqlc/generated"
	"pet-scheduler/internal/pkg/pgconv"
	"pet-scheduler/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type AppointmentViewQueries interface {
	GetAppointmentView(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetAppointmentViewRow, error)
	ListAppointmentViews(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAppointmentViewsParams) ([]sqlc.ListAppointmentViewsRow, error)
	ListActiveIntervals(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActiveIntervalsParams) ([]sqlc.ListActiveIntervalsRow, error)
}

type AppointmentReadStore struct {
	queries AppointmentViewQueries
	db      sqlc.DBTX
}

func NewAppointmentReadStore(queries *sqlc.Queries, db sqlc.DBTX) *AppointmentReadStore {
	return &AppointmentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AppointmentReadStore) FindByID(ctx context.Context, id int64) (*queries.AppointmentView, error) {
	row, err := r.queries.GetAppointmentView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment by ID", err)
	}

	return toAppointmentView(sqlc.ListAppointmentViewsRow(row)), nil
}

func (r *AppointmentReadStore) List(ctx context.Context, filter queries.AppointmentFilter) ([]*queries.AppointmentView, error) {
	params := sqlc.ListAppointmentViewsParams{
		DateLocal:  pgtype.Date{Valid: false},
		ResourceID: pgconv.Int64PtrToPgtype(filter.ResourceID),
	}
	if filter.Date != nil {
		params.DateLocal = converter.LocalDateToPgtype(*filter.Date)
	}

	rows, err := r.queries.ListAppointmentViews(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments", err)
	}

	result := make([]*queries.AppointmentView, len(rows))
	for i, row := range rows {
		result[i] = toAppointmentView(row)
	}
	return result, nil
}

// ActiveIntervals returns the non-canceled bookings on date for resourceID,
// ordered by start. Rows are selected by date_local, so a booking that runs
// past midnight is invisible to the next day's lookup; appointments_no_overlap
// still rejects that overlap at insert time.
func (r *AppointmentReadStore) ActiveIntervals(ctx context.Context, date schedule.LocalDate, resourceID int64) ([]schedule.Busy, error) {
	params := sqlc.ListActiveIntervalsParams{
		DateLocal:  converter.LocalDateToPgtype(date),
		ResourceID: resourceID,
	}

	rows, err := r.queries.ListActiveIntervals(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active intervals", err)
	}

	busy := make([]schedule.Busy, len(rows))
	for i, row := range rows {
		busy[i] = schedule.Busy{
			AppointmentID: row.ID,
			ResourceID:    row.ResourceID,
			Interval: schedule.Interval{
				Start: pgconv.TimeFromPgtype(row.StartUtc).UTC(),
				End:   pgconv.TimeFromPgtype(row.EndUtc).UTC(),
			},
			Canceled: row.Status == appointment.StatusCanceled.String(),
		}
	}
	return busy, nil
}

func toAppointmentView(row sqlc.ListAppointmentViewsRow) *queries.AppointmentView {
	v := &queries.AppointmentView{
		ID:         row.ID,
		ClientName: row.ClientName,
		Phone:      row.Phone,
		Date:       converter.LocalDateFromPgtype(row.DateLocal).String(),
		StartUTC:   pgconv.TimeFromPgtype(row.StartUtc).UTC(),
		EndUTC:     pgconv.TimeFromPgtype(row.EndUtc).UTC(),
		Status:     row.Status,
		Notes:      pgconv.StringPtrFromPgtype(row.Notes),
		Service: queries.ServiceSummary{
			ID:              row.ServiceID,
			Name:            row.ServiceName,
			PriceCents:      row.ServicePriceCents,
			DurationMinutes: int(row.ServiceDurationMinutes),
		},
		Resource: queries.ResourceSummary{
			ID:   row.ResourceID,
			Name: row.ResourceName,
		},
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
	if row.PetID.Valid {
		v.Pet = &queries.PetSummary{
			ID:    row.PetID.Int64,
			Name:  row.PetName.String,
			Breed: row.PetBreed.String,
		}
	}
	return v
}
