package schedule

import (
	"pet-scheduler/internal/pkg/errs"
)

// Config is the immutable scheduling window. Build it once at startup.
type Config struct {
	businessStart LocalTime
	businessEnd   LocalTime
	slotMinutes   int
	zone          Zone
}

func NewConfig(start, end string, slotMinutes int, timezone string) (Config, error) {
	s, err := ParseTime(start)
	if err != nil {
		return Config{}, errs.Wrap(err, "business start")
	}
	e, err := ParseTime(end)
	if err != nil {
		return Config{}, errs.Wrap(err, "business end")
	}
	if !s.Before(e) {
		return Config{}, errs.Invalidf("business start %s must be before end %s", s, e)
	}
	if slotMinutes <= 0 {
		return Config{}, errs.Invalidf("slot width must be positive, got %d", slotMinutes)
	}
	z, err := LoadZone(timezone)
	if err != nil {
		return Config{}, err
	}
	return Config{businessStart: s, businessEnd: e, slotMinutes: slotMinutes, zone: z}, nil
}

func MustConfig(start, end string, slotMinutes int, timezone string) Config {
	c, err := NewConfig(start, end, slotMinutes, timezone)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Config) BusinessStart() LocalTime {
	return c.businessStart
}

func (c Config) BusinessEnd() LocalTime {
	return c.businessEnd
}

func (c Config) SlotMinutes() int {
	return c.slotMinutes
}

func (c Config) Zone() Zone {
	return c.zone
}

func (c Config) Slots() []LocalTime {
	return GenerateSlots(c.businessStart, c.businessEnd, c.slotMinutes)
}
