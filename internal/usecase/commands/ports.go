package commands

import (
	"strconv"
	"time"

	"pet-scheduler/internal/domain/appointment"
	"pet-scheduler/internal/domain/schedule"
)

const (
	TopicAppointmentConfirmed     = "appointment.confirmed"
	TopicAppointmentStatusChanged = "appointment.status_changed"

	notificationKind = "appointment"
)

// AppointmentEvent is the outbox payload published for appointment changes.
type AppointmentEvent struct {
	AppointmentID  int64     `json:"appointment_id"`
	ResourceID     int64     `json:"resource_id"`
	ServiceID      int64     `json:"service_id"`
	PetID          *int64    `json:"pet_id,omitempty"`
	ClientName     string    `json:"client_name"`
	Phone          string    `json:"phone"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	StartUTC       time.Time `json:"start_utc"`
	EndUTC         time.Time `json:"end_utc"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

func newAppointmentEvent(id int64, a *appointment.Appointment, zone schedule.Zone, prev appointment.Status, now time.Time) AppointmentEvent {
	return AppointmentEvent{
		AppointmentID:  id,
		ResourceID:     a.ResourceID(),
		ServiceID:      a.ServiceID(),
		PetID:          a.PetID(),
		ClientName:     a.ClientName(),
		Phone:          a.Phone(),
		Date:           a.DateLocal().String(),
		Time:           zone.ClockTime(a.StartUTC()).String(),
		StartUTC:       a.StartUTC(),
		EndUTC:         a.EndUTC(),
		Status:         a.Status().String(),
		PreviousStatus: prev.String(),
		OccurredAt:     now.UTC(),
	}
}

// messageKey keeps every event of one appointment on the same partition.
func messageKey(id int64) string {
	return "appointment-" + strconv.FormatInt(id, 10)
}
