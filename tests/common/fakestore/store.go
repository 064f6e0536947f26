//go:build unit

// Package fakestore is an in-memory UnitOfWork for use case tests. Within
// holds one lock for the whole callback and restores the previous state when
// the callback fails, so it behaves like a serializable transaction.
package fakestore

import (
	"context"
	"maps"
	"sync"
	"time"

	"pet-scheduler/internal/domain/appointment"
	"pet-scheduler/internal/domain/pet"
	"pet-scheduler/internal/domain/resource"
	"pet-scheduler/internal/domain/schedule"
	"pet-scheduler/internal/domain/service"
	"pet-scheduler/internal/infra"
	"pet-scheduler/internal/usecase/queries"
	"pet-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

type idemKey struct {
	key      uuid.UUID
	endpoint string
}

type state struct {
	services     map[int64]*service.Service
	resources    map[int64]*resource.Resource
	pets         map[int64]*pet.Pet
	appointments map[int64]*appointment.Appointment
	idempotency  map[idemKey]shared.IdempotencyRecord
	jobs         []shared.NotificationJob
	nextID       int64
}

func (s state) clone() state {
	c := s
	c.services = maps.Clone(s.services)
	c.resources = maps.Clone(s.resources)
	c.pets = maps.Clone(s.pets)
	c.appointments = make(map[int64]*appointment.Appointment, len(s.appointments))
	for id, a := range s.appointments {
		c.appointments[id] = copyAppointment(a)
	}
	c.idempotency = maps.Clone(s.idempotency)
	c.jobs = append([]shared.NotificationJob(nil), s.jobs...)
	return c
}

type Store struct {
	mu sync.Mutex
	st state
}

// New seeds resource 1 and the given services.
func New(now time.Time, services ...*service.Service) *Store {
	s := &Store{st: state{
		services:     map[int64]*service.Service{},
		resources:    map[int64]*resource.Resource{},
		pets:         map[int64]*pet.Pet{},
		appointments: map[int64]*appointment.Appointment{},
		idempotency:  map[idemKey]shared.IdempotencyRecord{},
		nextID:       100,
	}}
	s.st.resources[resource.DefaultID] = resource.ReconstructResource(resource.DefaultID, "Geral", now, now)
	for _, svc := range services {
		s.st.services[svc.ID()] = svc
	}
	return s
}

func (s *Store) AddPet(p *pet.Pet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.pets[p.ID()] = p
}

func (s *Store) AddResource(r *resource.Resource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.resources[r.ID()] = r
}

// Put stores a pre-built appointment as is.
func (s *Store) Put(a *appointment.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.appointments[a.ID()] = copyAppointment(a)
}

func (s *Store) Appointment(id int64) *appointment.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.st.appointments[id]
	if !ok {
		return nil
	}
	return copyAppointment(a)
}

func (s *Store) AppointmentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.st.appointments)
}

func (s *Store) Jobs() []shared.NotificationJob {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]shared.NotificationJob(nil), s.st.jobs...)
}

func (s *Store) Idempotency(key uuid.UUID, endpoint string) (shared.IdempotencyRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.st.idempotency[idemKey{key, endpoint}]
	return rec, ok
}

// SetIdempotency overwrites a key record, e.g. to simulate a crashed request.
func (s *Store) SetIdempotency(rec shared.IdempotencyRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.idempotency[idemKey{rec.Key, rec.Endpoint}] = rec
}

// UnitOfWork

var _ shared.UnitOfWork = (*Store)(nil)

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := s.st.clone()
	if err := fn(ctx, &tx{st: &s.st}); err != nil {
		s.st = saved
		return err
	}
	return nil
}

// Read stores for the query side

var (
	_ queries.AppointmentReadStore = (*Store)(nil)
	_ queries.IntervalReadStore    = (*Store)(nil)
)

func (s *Store) FindByID(_ context.Context, id int64) (*queries.AppointmentView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.st.appointments[id]
	if !ok {
		return nil, infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}
	return s.view(a), nil
}

func (s *Store) List(_ context.Context, filter queries.AppointmentFilter) ([]*queries.AppointmentView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*queries.AppointmentView
	for _, a := range s.st.appointments {
		if filter.Date != nil && !a.DateLocal().Equal(*filter.Date) {
			continue
		}
		if filter.ResourceID != nil && a.ResourceID() != *filter.ResourceID {
			continue
		}
		out = append(out, s.view(a))
	}
	return out, nil
}

func (s *Store) ActiveIntervals(ctx context.Context, date schedule.LocalDate, resourceID int64) ([]schedule.Busy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return reads{&s.st}.ActiveIntervals(ctx, date, resourceID)
}

func (s *Store) view(a *appointment.Appointment) *queries.AppointmentView {
	v := &queries.AppointmentView{
		ID:         a.ID(),
		ClientName: a.ClientName(),
		Phone:      a.Phone(),
		Date:       a.DateLocal().String(),
		StartUTC:   a.StartUTC(),
		EndUTC:     a.EndUTC(),
		Status:     a.Status().String(),
		Notes:      a.Notes(),
		Resource:   queries.ResourceSummary{ID: a.ResourceID()},
		CreatedAt:  a.CreatedAt(),
		UpdatedAt:  a.UpdatedAt(),
	}
	if svc, ok := s.st.services[a.ServiceID()]; ok {
		v.Service = queries.ServiceSummary{
			ID:              svc.ID(),
			Name:            svc.Name(),
			PriceCents:      svc.PriceCents(),
			DurationMinutes: svc.DurationMinutes(),
		}
	}
	if r, ok := s.st.resources[a.ResourceID()]; ok {
		v.Resource.Name = r.Name()
	}
	if a.PetID() != nil {
		if p, ok := s.st.pets[*a.PetID()]; ok {
			v.Pet = &queries.PetSummary{ID: p.ID(), Name: p.Name(), Breed: p.Breed()}
		}
	}
	return v
}

func copyAppointment(a *appointment.Appointment) *appointment.Appointment {
	return appointment.ReconstructAppointment(
		a.ID(), a.ClientName(), a.Phone(), a.Interval(), a.DateLocal(),
		a.ServiceID(), a.PetID(), a.ResourceID(), a.Status(), a.Notes(),
		a.CreatedAt(), a.UpdatedAt(),
	)
}
