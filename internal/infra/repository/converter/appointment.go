package converter

import (
	"pet-scheduler/internal/domain/appointment"
	"pet-scheduler/internal/domain/schedule"
	sqlc "pet-scheduler/internal/infra/sqlc/generated"
	"pet-scheduler/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func AppointmentToCreateParams(a *appointment.Appointment) sqlc.CreateAppointmentParams {
	return sqlc.CreateAppointmentParams{
		ClientName: a.ClientName(),
		Phone:      a.Phone(),
		StartUtc:   pgconv.TimeToPgtype(a.StartUTC()),
		EndUtc:     pgconv.TimeToPgtype(a.EndUTC()),
		DateLocal:  LocalDateToPgtype(a.DateLocal()),
		ServiceID:  a.ServiceID(),
		PetID:      pgconv.Int64PtrToPgtype(a.PetID()),
		ResourceID: a.ResourceID(),
		Status:     a.Status().String(),
		Notes:      pgconv.StringPtrToPgtype(a.Notes()),
		CreatedAt:  pgconv.TimeToPgtype(a.CreatedAt()),
	}
}

func AppointmentFromRow(row sqlc.Appointments) *appointment.Appointment {
	return appointment.ReconstructAppointment(
		row.ID,
		row.ClientName,
		row.Phone,
		schedule.Interval{
			Start: pgconv.TimeFromPgtype(row.StartUtc).UTC(),
			End:   pgconv.TimeFromPgtype(row.EndUtc).UTC(),
		},
		LocalDateFromPgtype(row.DateLocal),
		row.ServiceID,
		pgconv.Int64PtrFromPgtype(row.PetID),
		row.ResourceID,
		appointment.Status(row.Status),
		pgconv.StringPtrFromPgtype(row.Notes),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func LocalDateToPgtype(d schedule.LocalDate) pgtype.Date {
	return pgconv.DateToPgtype(d.Midnight())
}

func LocalDateFromPgtype(pd pgtype.Date) schedule.LocalDate {
	t := pgconv.DateFromPgtype(pd)
	return schedule.NewLocalDate(t.Year(), t.Month(), t.Day())
}
