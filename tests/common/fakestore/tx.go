//go:build unit

package fakestore

import (
	"context"
	"slices"
	"time"

	"pet-scheduler/internal/domain/appointment"
	"pet-scheduler/internal/domain/pet"
	"pet-scheduler/internal/domain/resource"
	"pet-scheduler/internal/domain/schedule"
	"pet-scheduler/internal/domain/service"
	"pet-scheduler/internal/infra"
	sqlc "pet-scheduler/internal/infra/sqlc/generated"
	"pet-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

func notFound(what string) error {
	return infra.WrapRepoErr(what+" not found", nil, infra.KindNotFound)
}

type tx struct {
	st *state
}

func (t *tx) Appointments() shared.AppointmentRepository   { return appointments{t.st} }
func (t *tx) Services() shared.ServiceRepository           { return services{t.st} }
func (t *tx) Resources() shared.ResourceRepository         { return resources{t.st} }
func (t *tx) Pets() shared.PetRepository                   { return pets{t.st} }
func (t *tx) Idempotency() shared.IdempotencyRepository    { return idempotency{t.st} }
func (t *tx) Notifications() shared.NotificationRepository { return notifications{t.st} }
func (t *tx) Reads() shared.CommandReads                   { return reads{t.st} }
func (t *tx) DB() sqlc.DBTX                                { return nil }

func (st *state) newID() int64 {
	st.nextID++
	return st.nextID
}

type appointments struct{ st *state }

// Create enforces the same no-overlap rule as the database exclusion constraint.
func (r appointments) Create(_ context.Context, _ sqlc.DBTX, a *appointment.Appointment) (int64, error) {
	for _, other := range r.st.appointments {
		if other.Status().Occupies() && other.ResourceID() == a.ResourceID() && other.Interval().Overlaps(a.Interval()) {
			return 0, infra.WrapRepoErr("appointments_no_overlap", nil, infra.KindConflict)
		}
	}
	if _, ok := r.st.services[a.ServiceID()]; !ok {
		return 0, infra.WrapRepoErr("service fk", nil, infra.KindForeignKeyViolated)
	}
	id := r.st.newID()
	r.st.appointments[id] = appointment.ReconstructAppointment(
		id, a.ClientName(), a.Phone(), a.Interval(), a.DateLocal(),
		a.ServiceID(), a.PetID(), a.ResourceID(), a.Status(), a.Notes(),
		a.CreatedAt(), a.UpdatedAt(),
	)
	return id, nil
}

func (r appointments) FindForUpdate(_ context.Context, _ sqlc.DBTX, id int64) (*appointment.Appointment, error) {
	a, ok := r.st.appointments[id]
	if !ok {
		return nil, notFound("appointment")
	}
	return copyAppointment(a), nil
}

func (r appointments) UpdateStatus(_ context.Context, _ sqlc.DBTX, a *appointment.Appointment) error {
	if _, ok := r.st.appointments[a.ID()]; !ok {
		return notFound("appointment")
	}
	if a.Status().Occupies() {
		for id, other := range r.st.appointments {
			if id != a.ID() && other.Status().Occupies() && other.ResourceID() == a.ResourceID() && other.Interval().Overlaps(a.Interval()) {
				return infra.WrapRepoErr("appointments_no_overlap", nil, infra.KindConflict)
			}
		}
	}
	r.st.appointments[a.ID()] = copyAppointment(a)
	return nil
}

type services struct{ st *state }

func (r services) Create(_ context.Context, _ sqlc.DBTX, s *service.Service) (int64, error) {
	for _, other := range r.st.services {
		if other.Name() == s.Name() {
			return 0, infra.WrapRepoErr("services_name_key", nil, infra.KindDuplicateKey)
		}
	}
	id := r.st.newID()
	r.st.services[id] = service.ReconstructService(id, s.Name(), s.PriceCents(), s.DurationMinutes(), s.Active(), s.CreatedAt(), s.UpdatedAt())
	return id, nil
}

func (r services) FindForUpdate(_ context.Context, _ sqlc.DBTX, id int64) (*service.Service, error) {
	s, ok := r.st.services[id]
	if !ok {
		return nil, notFound("service")
	}
	return service.ReconstructService(s.ID(), s.Name(), s.PriceCents(), s.DurationMinutes(), s.Active(), s.CreatedAt(), s.UpdatedAt()), nil
}

func (r services) Update(_ context.Context, _ sqlc.DBTX, s *service.Service) error {
	if _, ok := r.st.services[s.ID()]; !ok {
		return notFound("service")
	}
	for id, other := range r.st.services {
		if id != s.ID() && other.Name() == s.Name() {
			return infra.WrapRepoErr("services_name_key", nil, infra.KindDuplicateKey)
		}
	}
	r.st.services[s.ID()] = s
	return nil
}

type resources struct{ st *state }

func (r resources) Create(_ context.Context, _ sqlc.DBTX, res *resource.Resource) (int64, error) {
	id := r.st.newID()
	r.st.resources[id] = resource.ReconstructResource(id, res.Name(), res.CreatedAt(), res.UpdatedAt())
	return id, nil
}

func (r resources) Lock(_ context.Context, _ sqlc.DBTX, id int64) error {
	if _, ok := r.st.resources[id]; !ok {
		return notFound("resource")
	}
	return nil
}

type pets struct{ st *state }

func (r pets) Create(_ context.Context, _ sqlc.DBTX, p *pet.Pet) (int64, error) {
	id := r.st.newID()
	r.st.pets[id] = pet.ReconstructPet(id, p.Name(), p.Breed(), p.OwnerName(), p.Phone(), p.Details(), p.CreatedAt())
	return id, nil
}

type idempotency struct{ st *state }

func (r idempotency) TryInsert(_ context.Context, _ sqlc.DBTX, key uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	k := idemKey{key, endpoint}
	if _, ok := r.st.idempotency[k]; ok {
		return false, nil
	}
	r.st.idempotency[k] = shared.IdempotencyRecord{
		Key:         key,
		Endpoint:    endpoint,
		Status:      shared.IdempotencyProcessing,
		RequestHash: requestHash,
		ExpiresAt:   expiresAt,
	}
	return true, nil
}

func (r idempotency) ClaimExpired(_ context.Context, _ sqlc.DBTX, key uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	k := idemKey{key, endpoint}
	rec, ok := r.st.idempotency[k]
	if !ok {
		return false, nil
	}
	rec.Status = shared.IdempotencyProcessing
	rec.RequestHash = requestHash
	rec.ResultAppointmentID = nil
	rec.ExpiresAt = expiresAt
	r.st.idempotency[k] = rec
	return true, nil
}

func (r idempotency) Complete(_ context.Context, _ sqlc.DBTX, key uuid.UUID, endpoint string, appointmentID int64) error {
	k := idemKey{key, endpoint}
	rec, ok := r.st.idempotency[k]
	if !ok {
		return notFound("idempotency key")
	}
	rec.Status = shared.IdempotencyCompleted
	rec.ResultAppointmentID = &appointmentID
	r.st.idempotency[k] = rec
	return nil
}

func (r idempotency) DeleteExpired(context.Context) (int64, error) {
	return 0, nil
}

type notifications struct{ st *state }

func (r notifications) CreateJob(_ context.Context, _ sqlc.DBTX, job shared.NotificationJob) error {
	r.st.jobs = append(r.st.jobs, job)
	return nil
}

type reads struct{ st *state }

func (r reads) ServiceByID(_ context.Context, id int64) (*shared.ServiceSnapshot, error) {
	s, ok := r.st.services[id]
	if !ok {
		return nil, notFound("service")
	}
	return &shared.ServiceSnapshot{ID: s.ID(), Name: s.Name(), DurationMinutes: s.DurationMinutes(), Active: s.Active()}, nil
}

func (r reads) PetByID(_ context.Context, id int64) (*shared.PetSnapshot, error) {
	p, ok := r.st.pets[id]
	if !ok {
		return nil, notFound("pet")
	}
	return &shared.PetSnapshot{ID: p.ID(), Name: p.Name()}, nil
}

func (r reads) ActiveIntervals(_ context.Context, date schedule.LocalDate, resourceID int64) ([]schedule.Busy, error) {
	var out []schedule.Busy
	for _, a := range r.st.appointments {
		if a.ResourceID() == resourceID && a.DateLocal().Equal(date) && a.Status().Occupies() {
			out = append(out, a.AsBusy())
		}
	}
	slices.SortFunc(out, func(a, b schedule.Busy) int {
		return a.Interval.Start.Compare(b.Interval.Start)
	})
	return out, nil
}

func (r reads) IdempotencyByKey(_ context.Context, key uuid.UUID, endpoint string) (*shared.IdempotencyRecord, error) {
	rec, ok := r.st.idempotency[idemKey{key, endpoint}]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}
