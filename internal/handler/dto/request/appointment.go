package request

import (
	"pet-scheduler/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	ClientName string  `json:"clientName" binding:"required"`
	Phone      string  `json:"phone" binding:"required"`
	Date       string  `json:"date" binding:"required"`
	Time       string  `json:"time" binding:"required"`
	ServiceID  int64   `json:"serviceId" binding:"required,gt=0"`
	PetID      *int64  `json:"petId,omitempty" binding:"omitempty,gt=0"`
	ResourceID *int64  `json:"resourceId,omitempty" binding:"omitempty,gt=0"`
	Notes      *string `json:"notes,omitempty"`
}

// ToInput leaves ResourceID zero when omitted; the command applies the default resource.
func (r CreateAppointmentRequest) ToInput(key *uuid.UUID) commands.CreateAppointmentInput {
	in := commands.CreateAppointmentInput{
		ClientName:     r.ClientName,
		Phone:          r.Phone,
		Date:           r.Date,
		Time:           r.Time,
		ServiceID:      r.ServiceID,
		PetID:          r.PetID,
		Notes:          r.Notes,
		IdempotencyKey: key,
	}
	if r.ResourceID != nil {
		in.ResourceID = *r.ResourceID
	}
	return in
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
