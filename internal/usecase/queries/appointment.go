package queries

import (
	"context"
	"time"

	"pet-scheduler/internal/domain/schedule"
	"pet-scheduler/internal/infra"
	"pet-scheduler/internal/pkg/errs"
)

// AppointmentView is an appointment joined with its service, resource and pet.
// Date and Time are local to the business zone.
type AppointmentView struct {
	ID         int64           `json:"id"`
	ClientName string          `json:"client_name"`
	Phone      string          `json:"phone"`
	Date       string          `json:"date"`
	Time       string          `json:"time"`
	StartUTC   time.Time       `json:"start_utc"`
	EndUTC     time.Time       `json:"end_utc"`
	Status     string          `json:"status"`
	Notes      *string         `json:"notes,omitempty"`
	Service    ServiceSummary  `json:"service"`
	Resource   ResourceSummary `json:"resource"`
	Pet        *PetSummary     `json:"pet,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// AppointmentFilter narrows a listing; nil fields match everything.
type AppointmentFilter struct {
	Date       *schedule.LocalDate
	ResourceID *int64
}

type AppointmentReadStore interface {
	FindByID(ctx context.Context, id int64) (*AppointmentView, error)
	List(ctx context.Context, filter AppointmentFilter) ([]*AppointmentView, error)
}

type AppointmentQueries interface {
	GetByID(ctx context.Context, id int64) (*AppointmentView, error)
	List(ctx context.Context, filter AppointmentFilter) ([]*AppointmentView, error)
}

type appointmentQueriesImpl struct {
	repo AppointmentReadStore
	zone schedule.Zone
}

func NewAppointmentQueries(repo AppointmentReadStore, cfg schedule.Config) AppointmentQueries {
	return &appointmentQueriesImpl{repo: repo, zone: cfg.Zone()}
}

func (q *appointmentQueriesImpl) GetByID(ctx context.Context, id int64) (*AppointmentView, error) {
	v, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrAppointmentNotFound
		}
		return nil, err
	}
	q.localize(v)
	return v, nil
}

func (q *appointmentQueriesImpl) List(ctx context.Context, filter AppointmentFilter) ([]*AppointmentView, error) {
	rows, err := q.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	for _, v := range rows {
		q.localize(v)
	}
	return rows, nil
}

func (q *appointmentQueriesImpl) localize(v *AppointmentView) {
	v.Time = q.zone.ClockTime(v.StartUTC).String()
	if v.Date == "" {
		v.Date = q.zone.CalendarDate(v.StartUTC).String()
	}
}
