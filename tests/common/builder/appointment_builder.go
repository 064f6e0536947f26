//go:build unit || e2e

package builder

import (
	"time"

	"pet-scheduler/internal/domain/appointment"
	"pet-scheduler/internal/domain/schedule"
	reqdto "pet-scheduler/internal/handler/dto/request"
	"pet-scheduler/internal/usecase/commands"
	"pet-scheduler/internal/usecase/queries"
)

const (
	DefaultZone = "America/Sao_Paulo"
	DefaultDate = "2024-08-20"
)

type AppointmentBuilder struct {
	ID              int64
	ClientName      string
	Phone           string
	Date            string
	Time            string
	Zone            string
	DurationMinutes int
	ServiceID       int64
	PetID           *int64
	ResourceID      int64
	Status          appointment.Status
	Notes           *string
	Now             time.Time
}

func NewAppointmentBuilder() *AppointmentBuilder {
	return &AppointmentBuilder{
		ID:              1,
		ClientName:      "Maria Silva",
		Phone:           "11999990000",
		Date:            DefaultDate,
		Time:            "10:00",
		Zone:            DefaultZone,
		DurationMinutes: 60,
		ServiceID:       1,
		ResourceID:      1,
		Status:          appointment.StatusConfirmed,
		Now:             time.Date(2024, 8, 19, 12, 0, 0, 0, time.UTC),
	}
}

func (b *AppointmentBuilder) With(mutate func(*AppointmentBuilder)) *AppointmentBuilder {
	mutate(b)
	return b
}

func (b *AppointmentBuilder) WithStatus(s appointment.Status) *AppointmentBuilder {
	b.Status = s
	return b
}

func (b *AppointmentBuilder) zone() schedule.Zone {
	return schedule.MustLoadZone(b.Zone)
}

func (b *AppointmentBuilder) interval() (schedule.Interval, error) {
	start, err := b.zone().Resolve(b.Date, b.Time)
	if err != nil {
		return schedule.Interval{}, err
	}
	return schedule.NewInterval(start, b.DurationMinutes)
}

func (b *AppointmentBuilder) draft() appointment.Draft {
	return appointment.Draft{
		ClientName: b.ClientName,
		Phone:      b.Phone,
		ServiceID:  b.ServiceID,
		PetID:      b.PetID,
		ResourceID: b.ResourceID,
		Notes:      b.Notes,
	}
}

// Build methods
func (b *AppointmentBuilder) BuildDomain() (*appointment.Appointment, error) {
	iv, err := b.interval()
	if err != nil {
		return nil, err
	}
	return appointment.NewAppointment(b.draft(), iv, b.zone(), b.Now)
}

// BuildReconstructed skips validation and panics on a malformed date or time.
func (b *AppointmentBuilder) BuildReconstructed() *appointment.Appointment {
	iv, err := b.interval()
	if err != nil {
		panic(err)
	}
	return appointment.ReconstructAppointment(
		b.ID,
		b.ClientName,
		b.Phone,
		schedule.Interval{Start: iv.Start.UTC(), End: iv.End.UTC()},
		b.zone().CalendarDate(iv.Start),
		b.ServiceID,
		b.PetID,
		b.ResourceID,
		b.Status,
		b.Notes,
		b.Now,
		b.Now,
	)
}

func (b *AppointmentBuilder) BuildBusy() schedule.Busy {
	return b.BuildReconstructed().AsBusy()
}

func (b *AppointmentBuilder) BuildCreateRequestDTO() reqdto.CreateAppointmentRequest {
	resourceID := b.ResourceID
	return reqdto.CreateAppointmentRequest{
		ClientName: b.ClientName,
		Phone:      b.Phone,
		Date:       b.Date,
		Time:       b.Time,
		ServiceID:  b.ServiceID,
		PetID:      b.PetID,
		ResourceID: &resourceID,
		Notes:      b.Notes,
	}
}

func (b *AppointmentBuilder) BuildInput() commands.CreateAppointmentInput {
	return b.BuildCreateRequestDTO().ToInput(nil)
}

func (b *AppointmentBuilder) BuildView() *queries.AppointmentView {
	iv, err := b.interval()
	if err != nil {
		panic(err)
	}
	v := &queries.AppointmentView{
		ID:         b.ID,
		ClientName: b.ClientName,
		Phone:      b.Phone,
		Date:       b.Date,
		Time:       b.Time,
		StartUTC:   iv.Start.UTC(),
		EndUTC:     iv.End.UTC(),
		Status:     string(b.Status),
		Notes:      b.Notes,
		Service: queries.ServiceSummary{
			ID:              b.ServiceID,
			Name:            "Banho e Tosa",
			PriceCents:      9000,
			DurationMinutes: b.DurationMinutes,
		},
		Resource:  queries.ResourceSummary{ID: b.ResourceID, Name: "Geral"},
		CreatedAt: b.Now,
		UpdatedAt: b.Now,
	}
	if b.PetID != nil {
		v.Pet = &queries.PetSummary{ID: *b.PetID, Name: "Rex", Breed: "Poodle"}
	}
	return v
}
