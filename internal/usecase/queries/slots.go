package queries

import (
	"context"

	"pet-scheduler/internal/domain/schedule"
	"pet-scheduler/internal/infra"
	"pet-scheduler/internal/pkg/errs"
	"pet-scheduler/internal/usecase/shared"
)

type SlotView struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

type SlotsView struct {
	Date               string     `json:"date"`
	ResourceID         int64      `json:"resource_id"`
	ServiceID          *int64     `json:"service_id,omitempty"`
	SlotWidth          int        `json:"slot_width"`
	DurationConsidered int        `json:"duration_considered"`
	Slots              []SlotView `json:"slots"`
}

type SlotQuery struct {
	Date       string
	ResourceID int64
	ServiceID  *int64
}

type IntervalReadStore interface {
	ActiveIntervals(ctx context.Context, date schedule.LocalDate, resourceID int64) ([]schedule.Busy, error)
}

type SlotQueries interface {
	// GetSlots lists every slot of the day with its availability for the
	// requested service duration. The answer is advisory; booking re-validates.
	GetSlots(ctx context.Context, q SlotQuery) (*SlotsView, error)
}

type slotQueriesImpl struct {
	intervals IntervalReadStore
	services  ServiceReadStore
	resources ResourceReadStore
	engine    *schedule.Engine
	cache     shared.AvailabilityCache
}

func NewSlotQueries(
	intervals IntervalReadStore,
	services ServiceReadStore,
	resources ResourceReadStore,
	engine *schedule.Engine,
	cache shared.AvailabilityCache,
) SlotQueries {
	return &slotQueriesImpl{
		intervals: intervals,
		services:  services,
		resources: resources,
		engine:    engine,
		cache:     cache,
	}
}

func (q *slotQueriesImpl) GetSlots(ctx context.Context, sq SlotQuery) (*SlotsView, error) {
	date, err := schedule.ParseDate(sq.Date)
	if err != nil {
		return nil, err
	}

	if _, err := q.resources.FindByID(ctx, sq.ResourceID); err != nil {
		return nil, mapNotFound(err, errs.ErrResourceNotFound)
	}

	duration := 0
	if sq.ServiceID != nil {
		svc, err := q.services.FindByID(ctx, *sq.ServiceID)
		if err != nil && !infra.IsKind(err, infra.KindNotFound) {
			return nil, err
		}
		if svc == nil || !svc.Active {
			return nil, errs.ErrInvalidService
		}
		duration = svc.DurationMinutes
	}
	duration = q.engine.EffectiveDuration(duration)

	slots, ok := q.cache.Get(ctx, sq.ResourceID, date, duration)
	if !ok {
		busy, err := q.intervals.ActiveIntervals(ctx, date, sq.ResourceID)
		if err != nil {
			return nil, err
		}
		slots = q.engine.ComputeAvailability(date, sq.ResourceID, duration, busy)
		q.cache.Set(ctx, sq.ResourceID, date, duration, slots)
	}

	view := &SlotsView{
		Date:               date.String(),
		ResourceID:         sq.ResourceID,
		ServiceID:          sq.ServiceID,
		SlotWidth:          q.engine.Config().SlotMinutes(),
		DurationConsidered: duration,
		Slots:              make([]SlotView, len(slots)),
	}
	for i, s := range slots {
		view.Slots[i] = SlotView{Time: s.Time.String(), Available: s.Available}
	}
	return view, nil
}
