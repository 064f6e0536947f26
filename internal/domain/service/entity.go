package service

import (
	"strings"
	"time"
	"unicode/utf8"

	"pet-scheduler/internal/domain/schedule"
	"pet-scheduler/internal/pkg/errs"
	"pet-scheduler/internal/pkg/patch"
)

const (
	MinNameLength = 2
	MaxNameLength = 120
)

var (
	ErrNameTooShort    = errs.Invalidf("service name must have at least 2 characters")
	ErrNameTooLong     = errs.Invalidf("service name is too long (max 120 characters)")
	ErrNegativePrice   = errs.Invalidf("price cannot be negative")
	ErrInvalidDuration = errs.Invalidf("duration must be a positive number of minutes")
)

// Service is a bookable offering. Price is in minor currency units.
type Service struct {
	id              int64
	name            string
	priceCents      int64
	durationMinutes int
	active          bool
	createdAt       time.Time
	updatedAt       time.Time
}

func NewService(name string, priceCents int64, durationMinutes int, now time.Time) (*Service, error) {
	s := &Service{
		name:            strings.TrimSpace(name),
		priceCents:      priceCents,
		durationMinutes: durationMinutes,
		active:          true,
		createdAt:       now,
		updatedAt:       now,
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func ReconstructService(
	id int64,
	name string,
	priceCents int64,
	durationMinutes int,
	active bool,
	createdAt, updatedAt time.Time,
) *Service {
	return &Service{
		id:              id,
		name:            name,
		priceCents:      priceCents,
		durationMinutes: durationMinutes,
		active:          active,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Patch carries an admin edit; nil fields are left untouched.
type Patch struct {
	Name            *string
	PriceCents      *int64
	DurationMinutes *int
	Active          *bool
}

// Apply edits s in place. Existing appointments keep their stored end
// instants, but displayed prices follow the current value.
func (s *Service) Apply(p Patch, now time.Time) (bool, error) {
	var name *string
	if p.Name != nil {
		trimmed := strings.TrimSpace(*p.Name)
		name = &trimmed
	}
	changed := patch.Changed(name, s.name) ||
		patch.Changed(p.PriceCents, s.priceCents) ||
		patch.Changed(p.DurationMinutes, s.durationMinutes) ||
		patch.Changed(p.Active, s.active)
	if !changed {
		return false, nil
	}

	next := *s
	next.name = patch.Coalesce(name, s.name)
	next.priceCents = patch.Coalesce(p.PriceCents, s.priceCents)
	next.durationMinutes = patch.Coalesce(p.DurationMinutes, s.durationMinutes)
	next.active = patch.Coalesce(p.Active, s.active)
	if err := next.validate(); err != nil {
		return false, err
	}
	next.updatedAt = now
	*s = next
	return true, nil
}

func (s *Service) validate() error {
	n := utf8.RuneCountInString(s.name)
	if n < MinNameLength {
		return ErrNameTooShort
	}
	if n > MaxNameLength {
		return ErrNameTooLong
	}
	if s.priceCents < 0 {
		return ErrNegativePrice
	}
	if s.durationMinutes <= 0 {
		return ErrInvalidDuration
	}
	return nil
}

func (s *Service) Spec() schedule.ServiceSpec {
	return schedule.ServiceSpec{ID: s.id, DurationMinutes: s.durationMinutes, Active: s.active}
}

func (s *Service) ID() int64            { return s.id }
func (s *Service) Name() string         { return s.name }
func (s *Service) PriceCents() int64    { return s.priceCents }
func (s *Service) DurationMinutes() int { return s.durationMinutes }
func (s *Service) Active() bool         { return s.active }
func (s *Service) CreatedAt() time.Time { return s.createdAt }
func (s *Service) UpdatedAt() time.Time { return s.updatedAt }
