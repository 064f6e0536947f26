package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"pet-scheduler/internal/domain/appointment"
	"pet-scheduler/internal/domain/resource"
	"pet-scheduler/internal/domain/schedule"
	"pet-scheduler/internal/infra"
	"pet-scheduler/internal/pkg/clock"
	"pet-scheduler/internal/pkg/errs"
	"pet-scheduler/internal/usecase/queries"
	"pet-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	createAppointmentEndpoint = "POST /api/appointments"
	idempotencyTTL            = 24 * time.Hour
)

type CreateAppointmentInput struct {
	ClientName string  `json:"client_name"`
	Phone      string  `json:"phone"`
	Date       string  `json:"date"`
	Time       string  `json:"time"`
	ServiceID  int64   `json:"service_id"`
	PetID      *int64  `json:"pet_id"`
	ResourceID int64   `json:"resource_id"`
	Notes      *string `json:"notes"`

	IdempotencyKey *uuid.UUID `json:"-"`
}

type CreateAppointmentResult struct {
	Appointment *queries.AppointmentView
	IsReplayed  bool
}

type AppointmentCommands interface {
	// Create books an appointment. Validation, the resource lock, the conflict
	// check and the insert share one transaction.
	Create(ctx context.Context, in CreateAppointmentInput) (*CreateAppointmentResult, error)
	ChangeStatus(ctx context.Context, id int64, status string) (*queries.AppointmentView, error)
}

type appointmentUseCaseImpl struct {
	uow                shared.UnitOfWork
	validator          *schedule.Validator
	zone               schedule.Zone
	policy             appointment.TransitionPolicy
	appointmentQueries queries.AppointmentQueries
	cache              shared.AvailabilityCache
	clock              clock.Clock
}

func NewAppointmentCommands(
	uow shared.UnitOfWork,
	validator *schedule.Validator,
	cfg schedule.Config,
	policy appointment.TransitionPolicy,
	appointmentQueries queries.AppointmentQueries,
	cache shared.AvailabilityCache,
	clk clock.Clock,
) AppointmentCommands {
	return &appointmentUseCaseImpl{
		uow:                uow,
		validator:          validator,
		zone:               cfg.Zone(),
		policy:             policy,
		appointmentQueries: appointmentQueries,
		cache:              cache,
		clock:              clk,
	}
}

func (uc *appointmentUseCaseImpl) Create(ctx context.Context, in CreateAppointmentInput) (*CreateAppointmentResult, error) {
	if in.ResourceID == 0 {
		in.ResourceID = resource.DefaultID
	}

	date, err := schedule.ParseDate(in.Date)
	if err != nil {
		return nil, err
	}
	tm, err := schedule.ParseTime(in.Time)
	if err != nil {
		return nil, err
	}

	draft := appointment.Draft{
		ClientName: in.ClientName,
		Phone:      in.Phone,
		ServiceID:  in.ServiceID,
		PetID:      in.PetID,
		ResourceID: in.ResourceID,
		Notes:      in.Notes,
	}
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	req := schedule.BookingRequest{Date: date, Time: tm, ResourceID: in.ResourceID}
	requestHash := calculateRequestHash(in)

	var (
		appointmentID int64
		replayed      bool
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		replayed = false
		if in.IdempotencyKey != nil {
			id, done, derr := uc.claimIdempotencyKey(ctx, tx, *in.IdempotencyKey, requestHash)
			if derr != nil {
				return derr
			}
			if done {
				appointmentID, replayed = id, true
				return nil
			}
		}

		id, derr := uc.book(ctx, tx, draft, req)
		if derr != nil {
			return derr
		}
		appointmentID = id

		if in.IdempotencyKey != nil {
			if derr = tx.Idempotency().Complete(ctx, tx.DB(), *in.IdempotencyKey, createAppointmentEndpoint, id); derr != nil {
				return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !replayed {
		uc.cache.Invalidate(ctx, in.ResourceID, date)
	}

	// Read-after-write: the view carries service, resource and pet details
	view, err := uc.appointmentQueries.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return &CreateAppointmentResult{Appointment: view, IsReplayed: replayed}, nil
}

func (uc *appointmentUseCaseImpl) book(ctx context.Context, tx shared.Tx, draft appointment.Draft, req schedule.BookingRequest) (int64, error) {
	svc, err := tx.Reads().ServiceByID(ctx, draft.ServiceID)
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// service and past checks need no lock
	iv, err := uc.validator.Validate(req, svc.Spec(), nil)
	if err != nil {
		return 0, err
	}

	if err := tx.Resources().Lock(ctx, tx.DB(), req.ResourceID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return 0, errs.ErrResourceNotFound
		}
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if draft.PetID != nil {
		if _, err := tx.Reads().PetByID(ctx, *draft.PetID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return 0, errs.ErrPetNotFound
			}
			return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	busy, err := tx.Reads().ActiveIntervals(ctx, req.Date, req.ResourceID)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if err := schedule.CheckConflict(iv, req.ResourceID, busy, 0); err != nil {
		return 0, err
	}

	now := uc.clock.Now()
	a, err := appointment.NewAppointment(draft, iv, uc.zone, now)
	if err != nil {
		return 0, err
	}

	id, err := tx.Appointments().Create(ctx, tx.DB(), a)
	if err != nil {
		switch {
		// overlaps the date-scoped pre-check cannot see, e.g. across midnight
		case infra.IsKind(err, infra.KindConflict):
			return 0, errs.ErrConflict
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return 0, errs.ErrInvalidService
		default:
			return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	event := newAppointmentEvent(id, a, uc.zone, "", now)
	if err := uc.enqueue(ctx, tx, TopicAppointmentConfirmed, event); err != nil {
		return 0, err
	}
	return id, nil
}

// claimIdempotencyKey returns done=true with the stored appointment when the
// key already completed for the same request.
func (uc *appointmentUseCaseImpl) claimIdempotencyKey(ctx context.Context, tx shared.Tx, key uuid.UUID, requestHash string) (int64, bool, error) {
	now := uc.clock.Now()
	expiresAt := now.Add(idempotencyTTL)

	inserted, err := tx.Idempotency().TryInsert(ctx, tx.DB(), key, createAppointmentEndpoint, requestHash, expiresAt)
	if err != nil {
		return 0, false, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}
	if inserted {
		return 0, false, nil
	}

	existing, err := tx.Reads().IdempotencyByKey(ctx, key, createAppointmentEndpoint)
	if err != nil {
		return 0, false, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}
	if existing == nil {
		return 0, false, errs.ErrIdempotencyInProgress
	}

	if existing.ExpiresAt.Before(now) {
		claimed, err := tx.Idempotency().ClaimExpired(ctx, tx.DB(), key, createAppointmentEndpoint, requestHash, expiresAt)
		if err != nil {
			return 0, false, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
		}
		if claimed {
			return 0, false, nil
		}
		return 0, false, errs.ErrIdempotencyInProgress
	}

	if existing.RequestHash != requestHash {
		return 0, false, errs.ErrIdempotencyKeyReused
	}

	switch existing.Status {
	case shared.IdempotencyCompleted:
		if existing.ResultAppointmentID == nil {
			return 0, false, errs.New("completed request missing result appointment ID")
		}
		return *existing.ResultAppointmentID, true, nil
	case shared.IdempotencyProcessing:
		return 0, false, errs.ErrIdempotencyInProgress
	default:
		return 0, false, errs.Newf("invalid idempotency key status %q", existing.Status)
	}
}

func (uc *appointmentUseCaseImpl) ChangeStatus(ctx context.Context, id int64, status string) (*queries.AppointmentView, error) {
	next, err := appointment.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	var (
		resourceID int64
		date       schedule.LocalDate
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		a, derr := tx.Appointments().FindForUpdate(ctx, tx.DB(), id)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.ErrAppointmentNotFound
			}
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		resourceID, date = a.ResourceID(), a.DateLocal()

		prev := a.Status()
		reoccupies := a.Reoccupies(next)
		now := uc.clock.Now()
		if derr = a.ChangeStatus(next, uc.policy, now); derr != nil {
			return derr
		}

		if reoccupies {
			if derr = tx.Resources().Lock(ctx, tx.DB(), a.ResourceID()); derr != nil {
				return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
			}
			busy, derr := tx.Reads().ActiveIntervals(ctx, a.DateLocal(), a.ResourceID())
			if derr != nil {
				return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
			}
			if derr = schedule.CheckConflict(a.Interval(), a.ResourceID(), busy, a.ID()); derr != nil {
				return derr
			}
		}

		if derr = tx.Appointments().UpdateStatus(ctx, tx.DB(), a); derr != nil {
			if infra.IsKind(derr, infra.KindConflict) {
				return errs.ErrConflict
			}
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}

		if prev == next {
			return nil
		}
		return uc.enqueue(ctx, tx, TopicAppointmentStatusChanged, newAppointmentEvent(a.ID(), a, uc.zone, prev, now))
	})
	if err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, resourceID, date)

	view, err := uc.appointmentQueries.GetByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (uc *appointmentUseCaseImpl) enqueue(ctx context.Context, tx shared.Tx, topic string, event AppointmentEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "failed to encode appointment event")
	}

	job := shared.NotificationJob{
		Kind:    notificationKind,
		Topic:   topic,
		Key:     messageKey(event.AppointmentID),
		Payload: payload,
		RunAt:   event.OccurredAt,
	}
	if err := tx.Notifications().CreateJob(ctx, tx.DB(), job); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func calculateRequestHash(in CreateAppointmentInput) string {
	data, _ := json.Marshal(in)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
