package shared

import (
	"context"
	"time"

	"pet-scheduler/internal/domain/appointment"
	"pet-scheduler/internal/domain/pet"
	"pet-scheduler/internal/domain/resource"
	"pet-scheduler/internal/domain/schedule"
	"pet-scheduler/internal/domain/service"
	sqlc "pet-scheduler/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

// UnitOfWork runs fn in one write transaction, retried on serialization
// failures and deadlocks.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Appointments() AppointmentRepository
	Services() ServiceRepository
	Resources() ResourceRepository
	Pets() PetRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	ServiceByID(ctx context.Context, id int64) (*ServiceSnapshot, error)
	PetByID(ctx context.Context, id int64) (*PetSnapshot, error)
	// ActiveIntervals lists the non-canceled bookings of one resource on one local date.
	ActiveIntervals(ctx context.Context, date schedule.LocalDate, resourceID int64) ([]schedule.Busy, error)
	IdempotencyByKey(ctx context.Context, key uuid.UUID, endpoint string) (*IdempotencyRecord, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment) (int64, error)
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id int64) (*appointment.Appointment, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment) error
}

type ServiceRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, s *service.Service) (int64, error)
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id int64) (*service.Service, error)
	Update(ctx context.Context, tx sqlc.DBTX, s *service.Service) error
}

type ResourceRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, r *resource.Resource) (int64, error)
	// Lock takes the row lock that serializes bookings on one resource.
	Lock(ctx context.Context, tx sqlc.DBTX, id int64) error
}

type PetRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, p *pet.Pet) (int64, error)
}

type IdempotencyRepository interface {
	TryInsert(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	ClaimExpired(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	Complete(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, endpoint string, appointmentID int64) error
	DeleteExpired(ctx context.Context) (int64, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, job NotificationJob) error
}
