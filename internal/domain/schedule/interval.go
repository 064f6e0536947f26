package schedule

import (
	"fmt"
	"time"
)

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) intersect.
// Intervals that only touch at an endpoint do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// Interval is a half-open span of absolute time.
type Interval struct {
	Start time.Time
	End   time.Time
}

func NewInterval(start time.Time, minutes int) (Interval, error) {
	if minutes <= 0 {
		return Interval{}, fmt.Errorf("duration must be positive, got %d minutes", minutes)
	}
	return Interval{Start: start, End: AddMinutes(start, minutes)}, nil
}

func (i Interval) Overlaps(o Interval) bool {
	return Overlaps(i.Start, i.End, o.Start, o.End)
}

func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Busy is an existing booking as seen by the engine.
type Busy struct {
	AppointmentID int64
	ResourceID    int64
	Interval      Interval
	Canceled      bool
}

// blocks reports whether b occupies time on resourceID that intersects iv.
func (b Busy) blocks(resourceID int64, iv Interval) bool {
	return !b.Canceled && b.ResourceID == resourceID && b.Interval.Overlaps(iv)
}
