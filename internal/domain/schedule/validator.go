package schedule

import (
	"time"

	"pet-scheduler/internal/pkg/clock"
	"pet-scheduler/internal/pkg/errs"
)

// PastGrace tolerates clock skew between client and server.
const PastGrace = time.Minute

// ServiceSpec is the slice of a service the validator needs.
type ServiceSpec struct {
	ID              int64
	DurationMinutes int
	Active          bool
}

type BookingRequest struct {
	Date       LocalDate
	Time       LocalTime
	ResourceID int64
}

type Validator struct {
	cfg   Config
	clock clock.Clock
}

func NewValidator(cfg Config, clk clock.Clock) *Validator {
	return &Validator{cfg: cfg, clock: clk}
}

// Validate runs the booking rules in order: service, past, conflict.
// service is nil when the referenced service does not exist. existing must
// hold the bookings on req.Date for req.ResourceID; canceled rows are skipped.
func (v *Validator) Validate(req BookingRequest, service *ServiceSpec, existing []Busy) (Interval, error) {
	if service == nil || !service.Active || service.DurationMinutes <= 0 {
		return Interval{}, errs.ErrInvalidService
	}

	start := v.cfg.zone.ToAbsolute(req.Date, req.Time)
	if err := v.CheckNotPast(start); err != nil {
		return Interval{}, err
	}

	iv := Interval{Start: start, End: AddMinutes(start, service.DurationMinutes)}
	if err := CheckConflict(iv, req.ResourceID, existing, 0); err != nil {
		return Interval{}, err
	}
	return iv, nil
}

func (v *Validator) CheckNotPast(start time.Time) error {
	if start.Before(v.clock.Now().Add(-PastGrace)) {
		return errs.ErrPastBooking
	}
	return nil
}

// CheckConflict fails with ErrConflict when iv intersects a live booking on
// resourceID other than skipID.
func CheckConflict(iv Interval, resourceID int64, existing []Busy, skipID int64) error {
	if b := firstBlocking(existing, resourceID, iv, skipID); b != nil {
		return errs.WithDetailf(errs.ErrConflict, "blocked by appointment %d", b.AppointmentID)
	}
	return nil
}
