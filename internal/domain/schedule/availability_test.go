//go:build unit

package schedule_test

import (
	"errors"
	"testing"
	"time"

	"pet-scheduler/internal/domain/schedule"
	"pet-scheduler/internal/pkg/clock"
	"pet-scheduler/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testCfg  = schedule.MustConfig("09:00", "17:00", 30, "America/Sao_Paulo")
	testDate = schedule.MustParseDate("2024-08-20")
)

func busy(id, resourceID int64, from, to string, canceled bool) schedule.Busy {
	z := testCfg.Zone()
	return schedule.Busy{
		AppointmentID: id,
		ResourceID:    resourceID,
		Interval: schedule.Interval{
			Start: z.ToAbsolute(testDate, schedule.MustParseTime(from)),
			End:   z.ToAbsolute(testDate, schedule.MustParseTime(to)),
		},
		Canceled: canceled,
	}
}

func availableAt(t *testing.T, got []schedule.SlotAvailability, hhmm string) bool {
	t.Helper()
	for _, s := range got {
		if s.Time.String() == hhmm {
			return s.Available
		}
	}
	t.Fatalf("slot %s not generated", hhmm)
	return false
}

func TestEngine_ComputeAvailability(t *testing.T) {
	engine := schedule.NewEngine(testCfg)

	t.Run("empty day is fully available in generation order", func(t *testing.T) {
		got := engine.ComputeAvailability(testDate, 1, 0, nil)

		require.Len(t, got, 16)
		for i, s := range got {
			assert.True(t, s.Available)
			if i > 0 {
				assert.True(t, got[i-1].Time.Before(s.Time))
			}
		}
	})

	t.Run("service duration widens the window", func(t *testing.T) {
		existing := []schedule.Busy{busy(1, 1, "09:30", "10:30", false)}

		with90 := engine.ComputeAvailability(testDate, 1, 90, existing)
		bare := engine.ComputeAvailability(testDate, 1, 0, existing)

		assert.False(t, availableAt(t, with90, "09:00"))
		assert.True(t, availableAt(t, bare, "09:00"))
		assert.False(t, availableAt(t, bare, "09:30"))
		assert.False(t, availableAt(t, bare, "10:00"))
		assert.True(t, availableAt(t, bare, "10:30"))
	})

	t.Run("back to back boundary stays free", func(t *testing.T) {
		existing := []schedule.Busy{busy(1, 1, "10:00", "10:30", false)}

		got := engine.ComputeAvailability(testDate, 1, 30, existing)

		assert.True(t, availableAt(t, got, "09:30"))
		assert.False(t, availableAt(t, got, "10:00"))
		assert.True(t, availableAt(t, got, "10:30"))
	})

	t.Run("canceled bookings do not block", func(t *testing.T) {
		existing := []schedule.Busy{busy(1, 1, "09:00", "12:00", true)}

		got := engine.ComputeAvailability(testDate, 1, 0, existing)

		for _, s := range got {
			assert.True(t, s.Available, s.Time.String())
		}
	})

	t.Run("other resources do not block", func(t *testing.T) {
		existing := []schedule.Busy{busy(1, 2, "09:00", "12:00", false)}

		got := engine.ComputeAvailability(testDate, 1, 0, existing)

		assert.True(t, availableAt(t, got, "09:00"))
	})

	t.Run("duration falls back to slot width", func(t *testing.T) {
		assert.Equal(t, 30, engine.EffectiveDuration(0))
		assert.Equal(t, 30, engine.EffectiveDuration(-5))
		assert.Equal(t, 45, engine.EffectiveDuration(45))
	})
}

func TestValidator_Validate(t *testing.T) {
	// 2024-08-20 08:00 in Sao Paulo
	now := time.Date(2024, 8, 20, 11, 0, 0, 0, time.UTC)
	activeSvc := &schedule.ServiceSpec{ID: 1, DurationMinutes: 60, Active: true}

	req := func(hhmm string) schedule.BookingRequest {
		return schedule.BookingRequest{Date: testDate, Time: schedule.MustParseTime(hhmm), ResourceID: 1}
	}

	cases := []struct {
		name     string
		req      schedule.BookingRequest
		svc      *schedule.ServiceSpec
		existing []schedule.Busy
		errIs    error
	}{
		{name: "success", req: req("10:00"), svc: activeSvc},
		{name: "unknown service", req: req("10:00"), svc: nil, errIs: errs.ErrInvalidService},
		{name: "inactive service", req: req("10:00"), svc: &schedule.ServiceSpec{ID: 1, DurationMinutes: 60}, errIs: errs.ErrInvalidService},
		{name: "past start", req: req("07:00"), svc: activeSvc, errIs: errs.ErrPastBooking},
		{name: "exactly now", req: req("08:00"), svc: activeSvc},
		{name: "conflict", req: req("10:00"), svc: activeSvc, existing: []schedule.Busy{busy(9, 1, "10:30", "11:30", false)}, errIs: errs.ErrConflict},
		{name: "back to back", req: req("10:00"), svc: activeSvc, existing: []schedule.Busy{busy(9, 1, "11:00", "11:30", false), busy(8, 1, "09:30", "10:00", false)}},
		{name: "canceled overlap", req: req("10:00"), svc: activeSvc, existing: []schedule.Busy{busy(9, 1, "10:00", "11:00", true)}},
		{name: "service checked before past", req: req("07:00"), svc: nil, errIs: errs.ErrInvalidService},
		{name: "past checked before conflict", req: req("07:00"), svc: activeSvc, existing: []schedule.Busy{busy(9, 1, "07:00", "08:00", false)}, errIs: errs.ErrPastBooking},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := schedule.NewValidator(testCfg, clock.NewMockClock(now))

			iv, err := v.Validate(tc.req, tc.svc, tc.existing)

			if tc.errIs != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tc.errIs), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, time.Duration(tc.svc.DurationMinutes)*time.Minute, iv.Duration())
			assert.Equal(t, testCfg.Zone().ToAbsolute(tc.req.Date, tc.req.Time), iv.Start)
		})
	}

	t.Run("grace minute", func(t *testing.T) {
		clk := clock.NewMockClock(now.Add(59 * time.Second))
		v := schedule.NewValidator(testCfg, clk)

		_, err := v.Validate(req("08:00"), activeSvc, nil)
		require.NoError(t, err)

		clk.Add(2 * time.Second)
		_, err = v.Validate(req("08:00"), activeSvc, nil)
		assert.True(t, errors.Is(err, errs.ErrPastBooking))
	})
}

func TestCheckConflict_SkipsSelf(t *testing.T) {
	existing := []schedule.Busy{busy(7, 1, "10:00", "11:00", false)}
	iv := existing[0].Interval

	assert.NoError(t, schedule.CheckConflict(iv, 1, existing, 7))
	assert.True(t, errors.Is(schedule.CheckConflict(iv, 1, existing, 0), errs.ErrConflict))
}

func TestCheckConflict_KeepsRowIDOutOfMessage(t *testing.T) {
	existing := []schedule.Busy{busy(42, 1, "10:00", "11:00", false)}

	err := schedule.CheckConflict(existing[0].Interval, 1, existing, 0)
	require.Error(t, err)
	assert.Equal(t, errs.ErrConflict.Error(), err.Error())
	assert.NotContains(t, err.Error(), "42")
	assert.Contains(t, errs.Details(err), "blocked by appointment 42")
}

func TestNewConfig(t *testing.T) {
	_, err := schedule.NewConfig("17:00", "09:00", 30, "UTC")
	assert.True(t, errs.Is(err, errs.ErrInvalidInput))

	_, err = schedule.NewConfig("09:00", "17:00", 0, "UTC")
	assert.True(t, errs.Is(err, errs.ErrInvalidInput))

	_, err = schedule.NewConfig("9h", "17:00", 30, "UTC")
	assert.True(t, errors.Is(err, errs.ErrInvalidTime))

	cfg, err := schedule.NewConfig("08:00", "12:00", 60, "UTC")
	require.NoError(t, err)
	assert.Len(t, cfg.Slots(), 4)
}
