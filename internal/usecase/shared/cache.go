package shared

import (
	"context"

	"pet-scheduler/internal/domain/schedule"
)

// AvailabilityCache memoizes computed slot grids per (resource, date, duration).
// Implementations log their own failures; a miss is always safe.
type AvailabilityCache interface {
	Get(ctx context.Context, resourceID int64, date schedule.LocalDate, durationMinutes int) ([]schedule.SlotAvailability, bool)
	Set(ctx context.Context, resourceID int64, date schedule.LocalDate, durationMinutes int, slots []schedule.SlotAvailability)
	// Invalidate drops every duration cached for the resource and date.
	Invalidate(ctx context.Context, resourceID int64, date schedule.LocalDate)
}

type NopAvailabilityCache struct{}

func (NopAvailabilityCache) Get(context.Context, int64, schedule.LocalDate, int) ([]schedule.SlotAvailability, bool) {
	return nil, false
}

func (NopAvailabilityCache) Set(context.Context, int64, schedule.LocalDate, int, []schedule.SlotAvailability) {}

func (NopAvailabilityCache) Invalidate(context.Context, int64, schedule.LocalDate) {}
