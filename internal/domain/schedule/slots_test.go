//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"pet-scheduler/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlots(t *testing.T) {
	t.Run("full business day", func(t *testing.T) {
		slots := schedule.GenerateSlots(schedule.MustParseTime("09:00"), schedule.MustParseTime("17:00"), 30)

		require.Len(t, slots, 16)
		assert.Equal(t, "09:00", slots[0].String())
		assert.Equal(t, "09:30", slots[1].String())
		assert.Equal(t, "16:30", slots[15].String())
	})

	t.Run("width wider than window", func(t *testing.T) {
		slots := schedule.GenerateSlots(schedule.MustParseTime("09:00"), schedule.MustParseTime("09:20"), 30)

		assert.Empty(t, slots)
	})

	t.Run("last slot must fit entirely", func(t *testing.T) {
		slots := schedule.GenerateSlots(schedule.MustParseTime("09:00"), schedule.MustParseTime("10:15"), 30)

		require.Len(t, slots, 2)
		assert.Equal(t, "09:30", slots[1].String())
	})

	t.Run("non-positive width", func(t *testing.T) {
		assert.Empty(t, schedule.GenerateSlots(schedule.MustParseTime("09:00"), schedule.MustParseTime("17:00"), 0))
		assert.Empty(t, schedule.GenerateSlots(schedule.MustParseTime("09:00"), schedule.MustParseTime("17:00"), -30))
	})

	t.Run("sequence is restartable", func(t *testing.T) {
		seq := schedule.Slots(schedule.MustParseTime("09:00"), schedule.MustParseTime("11:00"), 60)

		var first, second []string
		for s := range seq {
			first = append(first, s.String())
		}
		for s := range seq {
			second = append(second, s.String())
		}
		assert.Equal(t, []string{"09:00", "10:00"}, first)
		assert.Equal(t, first, second)
	})

	t.Run("early break", func(t *testing.T) {
		n := 0
		for range schedule.Slots(schedule.MustParseTime("09:00"), schedule.MustParseTime("17:00"), 30) {
			n++
			if n == 3 {
				break
			}
		}
		assert.Equal(t, 3, n)
	})
}

func TestOverlaps(t *testing.T) {
	at := func(h, m int) time.Time { return time.Date(2024, 8, 20, h, m, 0, 0, time.UTC) }

	cases := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{"identical", at(9, 0), at(10, 0), at(9, 0), at(10, 0), true},
		{"partial overlap", at(9, 0), at(10, 30), at(9, 30), at(10, 30), true},
		{"contained", at(9, 0), at(12, 0), at(10, 0), at(10, 30), true},
		{"back to back", at(9, 0), at(9, 30), at(9, 30), at(10, 0), false},
		{"back to back reversed", at(9, 30), at(10, 0), at(9, 0), at(9, 30), false},
		{"disjoint", at(9, 0), at(9, 30), at(11, 0), at(12, 0), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, schedule.Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd))
			assert.Equal(t, tc.want, schedule.Overlaps(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd), "symmetric")
		})
	}
}

func TestNewInterval(t *testing.T) {
	start := time.Date(2024, 8, 20, 12, 0, 0, 0, time.UTC)

	iv, err := schedule.NewInterval(start, 45)
	require.NoError(t, err)
	assert.Equal(t, 45*time.Minute, iv.Duration())
	assert.Equal(t, start.Add(45*time.Minute), iv.End)

	_, err = schedule.NewInterval(start, 0)
	assert.Error(t, err)
}
