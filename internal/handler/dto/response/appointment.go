package response

import (
	"time"

	"pet-scheduler/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ServiceSummaryResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	PriceCents      int64  `json:"priceCents"`
	DurationMinutes int    `json:"durationMinutes"`
}

type ResourceSummaryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type PetSummaryResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Breed string `json:"breed"`
}

type AppointmentResponse struct {
	ID         int64                   `json:"id"`
	ClientName string                  `json:"clientName"`
	Phone      string                  `json:"phone"`
	Date       string                  `json:"date"`
	Time       string                  `json:"time"`
	StartUTC   time.Time               `json:"startUtc"`
	EndUTC     time.Time               `json:"endUtc"`
	Status     string                  `json:"status"`
	Notes      *string                 `json:"notes,omitempty"`
	Service    ServiceSummaryResponse  `json:"service"`
	Resource   ResourceSummaryResponse `json:"resource"`
	Pet        *PetSummaryResponse     `json:"pet,omitempty"`
	CreatedAt  time.Time               `json:"createdAt"`
	UpdatedAt  time.Time               `json:"updatedAt"`
}

func FromAppointmentView(v *queries.AppointmentView) *AppointmentResponse {
	res := &AppointmentResponse{}
	_ = copier.CopyWithOption(res, v, copier.Option{DeepCopy: true})
	return res
}

func FromAppointmentViews(vs []*queries.AppointmentView) []*AppointmentResponse {
	res := make([]*AppointmentResponse, len(vs))
	for i, v := range vs {
		res[i] = FromAppointmentView(v)
	}
	return res
}
