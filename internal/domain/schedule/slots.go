package schedule

import (
	"iter"
	"slices"
)

// Slots yields each start t with start <= t and t+width <= end, stepping by width.
// The sequence is pure and can be ranged over any number of times.
func Slots(start, end LocalTime, widthMinutes int) iter.Seq[LocalTime] {
	return func(yield func(LocalTime) bool) {
		if widthMinutes <= 0 {
			return
		}
		for m := start.minutes; m+widthMinutes <= end.minutes; m += widthMinutes {
			if !yield(LocalTime{minutes: m}) {
				return
			}
		}
	}
}

func GenerateSlots(start, end LocalTime, widthMinutes int) []LocalTime {
	return slices.Collect(Slots(start, end, widthMinutes))
}
