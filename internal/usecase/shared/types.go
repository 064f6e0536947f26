package shared

import (
	"time"

	"pet-scheduler/internal/domain/schedule"

	"github.com/google/uuid"
)

const (
	IdempotencyProcessing = "processing"
	IdempotencyCompleted  = "completed"
)

type ServiceSnapshot struct {
	ID              int64
	Name            string
	DurationMinutes int
	Active          bool
}

func (s *ServiceSnapshot) Spec() *schedule.ServiceSpec {
	if s == nil {
		return nil
	}
	return &schedule.ServiceSpec{ID: s.ID, DurationMinutes: s.DurationMinutes, Active: s.Active}
}

type PetSnapshot struct {
	ID   int64
	Name string
}

type IdempotencyRecord struct {
	Key                 uuid.UUID
	Endpoint            string
	Status              string
	RequestHash         string
	ResultAppointmentID *int64
	ExpiresAt           time.Time
}

// NotificationJob is an outbox row; Key becomes the broker message key.
type NotificationJob struct {
	Kind    string
	Topic   string
	Key     string
	Payload []byte
	RunAt   time.Time
}
