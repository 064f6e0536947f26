package appointment

import (
	"fmt"
	"strings"
	"time"

	"pet-scheduler/internal/domain/schedule"
	"pet-scheduler/internal/pkg/errs"
)

const (
	MinPhoneLength = 6
	MaxNotesLength = 2000
)

var (
	ErrEmptyClientName = errs.Invalidf("client name cannot be empty")
	ErrPhoneTooShort   = errs.Invalidf("phone must have at least 6 characters")
	ErrNotesTooLong    = errs.Invalidf("notes are too long (max 2000 characters)")
	ErrInvalidResource = errs.Invalidf("resource id must be positive")
)

// Draft is the caller-supplied part of a new appointment.
type Draft struct {
	ClientName string
	Phone      string
	ServiceID  int64
	PetID      *int64
	ResourceID int64
	Notes      *string
}

func (d Draft) Validate() error {
	if strings.TrimSpace(d.ClientName) == "" {
		return ErrEmptyClientName
	}
	if len(strings.TrimSpace(d.Phone)) < MinPhoneLength {
		return ErrPhoneTooShort
	}
	if d.ResourceID <= 0 {
		return ErrInvalidResource
	}
	if d.Notes != nil && len(*d.Notes) > MaxNotesLength {
		return ErrNotesTooLong
	}
	return nil
}

type Appointment struct {
	id         int64
	clientName string
	phone      string
	interval   schedule.Interval
	dateLocal  schedule.LocalDate
	serviceID  int64
	petID      *int64
	resourceID int64
	status     Status
	notes      *string
	createdAt  time.Time
	updatedAt  time.Time
}

// NewAppointment builds a CONFIRMED appointment for an interval that has
// already passed validation. The local date is derived from the start.
func NewAppointment(d Draft, iv schedule.Interval, zone schedule.Zone, now time.Time) (*Appointment, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if !iv.End.After(iv.Start) {
		return nil, errs.Invalidf("appointment must end after it starts")
	}

	return &Appointment{
		clientName: strings.TrimSpace(d.ClientName),
		phone:      strings.TrimSpace(d.Phone),
		interval:   schedule.Interval{Start: iv.Start.UTC(), End: iv.End.UTC()},
		dateLocal:  zone.CalendarDate(iv.Start),
		serviceID:  d.ServiceID,
		petID:      d.PetID,
		resourceID: d.ResourceID,
		status:     StatusConfirmed,
		notes:      d.Notes,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructAppointment(
	id int64,
	clientName, phone string,
	interval schedule.Interval,
	dateLocal schedule.LocalDate,
	serviceID int64,
	petID *int64,
	resourceID int64,
	status Status,
	notes *string,
	createdAt, updatedAt time.Time,
) *Appointment {
	return &Appointment{
		id:         id,
		clientName: clientName,
		phone:      phone,
		interval:   interval,
		dateLocal:  dateLocal,
		serviceID:  serviceID,
		petID:      petID,
		resourceID: resourceID,
		status:     status,
		notes:      notes,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// ChangeStatus moves the appointment to next under policy.
func (a *Appointment) ChangeStatus(next Status, policy TransitionPolicy, now time.Time) error {
	if !next.IsValid() {
		return errs.Invalidf("unknown status %q", next)
	}
	if !policy.Allow(a.status, next) {
		return fmt.Errorf("%w: %s -> %s", errs.ErrInvalidTransition, a.status, next)
	}
	a.status = next
	a.updatedAt = now
	return nil
}

// Reoccupies reports whether moving to next makes a canceled appointment
// claim its interval again, which requires a fresh conflict check.
func (a *Appointment) Reoccupies(next Status) bool {
	return !a.status.Occupies() && next.Occupies()
}

func (a *Appointment) AsBusy() schedule.Busy {
	return schedule.Busy{
		AppointmentID: a.id,
		ResourceID:    a.resourceID,
		Interval:      a.interval,
		Canceled:      !a.status.Occupies(),
	}
}

func (a *Appointment) ID() int64                     { return a.id }
func (a *Appointment) ClientName() string            { return a.clientName }
func (a *Appointment) Phone() string                 { return a.phone }
func (a *Appointment) Interval() schedule.Interval   { return a.interval }
func (a *Appointment) StartUTC() time.Time           { return a.interval.Start }
func (a *Appointment) EndUTC() time.Time             { return a.interval.End }
func (a *Appointment) DateLocal() schedule.LocalDate { return a.dateLocal }
func (a *Appointment) ServiceID() int64              { return a.serviceID }
func (a *Appointment) PetID() *int64                 { return a.petID }
func (a *Appointment) ResourceID() int64             { return a.resourceID }
func (a *Appointment) Status() Status                { return a.status }
func (a *Appointment) Notes() *string                { return a.notes }
func (a *Appointment) CreatedAt() time.Time          { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time          { return a.updatedAt }
