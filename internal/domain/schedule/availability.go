package schedule

type SlotAvailability struct {
	Time      LocalTime
	Available bool
}

type Engine struct {
	cfg Config
}

func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

func (e *Engine) Config() Config {
	return e.cfg
}

// EffectiveDuration falls back to the slot width when no service duration applies.
func (e *Engine) EffectiveDuration(durationMinutes int) int {
	if durationMinutes <= 0 {
		return e.cfg.slotMinutes
	}
	return durationMinutes
}

// ComputeAvailability marks each generated slot on date as free when
// [slot, slot+duration) does not intersect a live booking on resourceID.
// Canceled bookings and bookings on other resources never block.
func (e *Engine) ComputeAvailability(date LocalDate, resourceID int64, durationMinutes int, existing []Busy) []SlotAvailability {
	dur := e.EffectiveDuration(durationMinutes)
	out := make([]SlotAvailability, 0, len(existing)+16)
	for t := range Slots(e.cfg.businessStart, e.cfg.businessEnd, e.cfg.slotMinutes) {
		start := e.cfg.zone.ToAbsolute(date, t)
		iv := Interval{Start: start, End: AddMinutes(start, dur)}
		out = append(out, SlotAvailability{Time: t, Available: firstBlocking(existing, resourceID, iv, 0) == nil})
	}
	return out
}

// firstBlocking returns the first live booking on resourceID overlapping iv,
// ignoring the appointment with id skipID (0 skips nothing).
func firstBlocking(existing []Busy, resourceID int64, iv Interval, skipID int64) *Busy {
	for i := range existing {
		if skipID != 0 && existing[i].AppointmentID == skipID {
			continue
		}
		if existing[i].blocks(resourceID, iv) {
			return &existing[i]
		}
	}
	return nil
}
