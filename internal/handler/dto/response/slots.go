package response

import (
	"pet-scheduler/internal/usecase/queries"
)

type SlotResponse struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

type SlotsResponse struct {
	Date               string         `json:"date"`
	ResourceID         int64          `json:"resourceId"`
	ServiceID          *int64         `json:"serviceId"`
	SlotWidth          int            `json:"slotWidth"`
	DurationConsidered int            `json:"durationConsidered"`
	Slots              []SlotResponse `json:"slots"`
}

func FromSlotsView(v *queries.SlotsView) *SlotsResponse {
	slots := make([]SlotResponse, len(v.Slots))
	for i, s := range v.Slots {
		slots[i] = SlotResponse{Time: s.Time, Available: s.Available}
	}
	return &SlotsResponse{
		Date:               v.Date,
		ResourceID:         v.ResourceID,
		ServiceID:          v.ServiceID,
		SlotWidth:          v.SlotWidth,
		DurationConsidered: v.DurationConsidered,
		Slots:              slots,
	}
}
