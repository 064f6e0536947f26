//go:build e2e

package appointment_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"testing"
	"time"

	"pet-scheduler/internal/handler/api"
	resdto "pet-scheduler/internal/handler/dto/response"
	"pet-scheduler/internal/handler/httperr"
	"pet-scheduler/internal/handler/middleware"
	"pet-scheduler/internal/infra/outbox"
	"pet-scheduler/internal/pkg/clock"
	"pet-scheduler/internal/usecase/commands"
	"pet-scheduler/tests/common/builder"
	"pet-scheduler/tests/common/dbtest"
	"pet-scheduler/tests/common/httptest"
	"pet-scheduler/tests/common/testutil"
	"pet-scheduler/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	appointmentsURL = "/api/appointments"
	slotsURL        = "/api/slots?date=%s"

	// ids after reseeding the starter catalog
	serviceBanhoETosa    int64 = 1
	serviceTosaHigienica int64 = 3
)

type AppointmentSuite struct {
	e2e.SharedSuite
	date string
	zone *time.Location
}

func (s *AppointmentSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()

	loc, err := time.LoadLocation(s.Config.Business.TimeZone)
	s.Require().NoError(err)
	s.zone = loc
	s.date = time.Now().In(loc).AddDate(0, 0, 14).Format(time.DateOnly)
}

func (s *AppointmentSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestAppointmentSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AppointmentSuite))
}

func (s *AppointmentSuite) request(mutate ...func(*builder.AppointmentBuilder)) map[string]any {
	b := builder.NewAppointmentBuilder().With(func(b *builder.AppointmentBuilder) {
		b.Date = s.date
		b.ServiceID = serviceTosaHigienica
	})
	for _, m := range mutate {
		b.With(m)
	}
	return testutil.DtoMap(s.T(), b.BuildCreateRequestDTO())
}

func at(hhmm string) func(*builder.AppointmentBuilder) {
	return func(b *builder.AppointmentBuilder) { b.Time = hhmm }
}

func (s *AppointmentSuite) book(body map[string]any, headers map[string]string) *resdto.AppointmentResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, body, headers)
	var res resdto.AppointmentResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
	return &res
}

func (s *AppointmentSuite) slots(query string) resdto.SlotsResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(slotsURL, s.date)+query, nil, nil)
	var res resdto.SlotsResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
	return res
}

func unavailable(res resdto.SlotsResponse) []string {
	var out []string
	for _, slot := range res.Slots {
		if !slot.Available {
			out = append(out, slot.Time)
		}
	}
	return out
}

// =============================================================================
// Booking
// =============================================================================

func (s *AppointmentSuite) TestCreateAppointment() {
	s.Run("Normal case: booking is confirmed on the default resource", func() {
		t := s.T()

		body := s.request()
		testutil.Field("resourceId", nil)(body)
		res := s.book(body, nil)

		require.Equal(t, "CONFIRMED", res.Status)
		require.Equal(t, s.date, res.Date)
		require.Equal(t, "10:00", res.Time)
		require.Equal(t, api.DefaultResourceID, res.Resource.ID)
		require.Equal(t, 30*time.Minute, res.EndUTC.Sub(res.StartUTC))

		local := res.StartUTC.In(s.zone)
		require.Equal(t, 10, local.Hour())
	})

	s.Run("Normal case: the booked interval disappears from the slot grid", func() {
		t := s.T()

		s.book(s.request(), nil)

		plain := s.slots("")
		require.Len(t, plain.Slots, 16)
		if diff := cmp.Diff([]string{"10:00"}, unavailable(plain)); diff != "" {
			t.Errorf("slot grid mismatch (-want +got):\n%s", diff)
		}

		// a 90 minute service starting 09:00 or 09:30 would run into 10:00
		long := s.slots(fmt.Sprintf("&serviceId=%d", serviceBanhoETosa))
		require.Equal(t, 90, long.DurationConsidered)
		if diff := cmp.Diff([]string{"09:00", "09:30", "10:00"}, unavailable(long)); diff != "" {
			t.Errorf("90 minute grid mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Error case: overlapping booking is a conflict, the adjacent one is not", func() {
		t := s.T()

		s.book(s.request(func(b *builder.AppointmentBuilder) { b.ServiceID = serviceBanhoETosa }), nil)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, s.request(at("11:00")), nil)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, httperr.CodeConflict)

		s.book(s.request(at("11:30")), nil)
		require.Equal(t, 2, dbtest.CountRows(t, s.DB, "appointments", ""))
	})

	s.Run("Error case: validation order and messages", func() {
		t := s.T()
		yesterday := time.Now().In(s.zone).AddDate(0, 0, -1).Format(time.DateOnly)

		cases := []struct {
			name   string
			body   map[string]any
			status int
			code   string
		}{
			{
				name:   "unknown service wins over past date",
				body:   s.request(func(b *builder.AppointmentBuilder) { b.ServiceID = 999; b.Date = yesterday }),
				status: http.StatusBadRequest,
				code:   httperr.CodeInvalidService,
			},
			{
				name:   "past date",
				body:   s.request(func(b *builder.AppointmentBuilder) { b.Date = yesterday }),
				status: http.StatusBadRequest,
				code:   httperr.CodePastBooking,
			},
			{
				name:   "malformed time",
				body:   s.request(at("9h30")),
				status: http.StatusBadRequest,
				code:   httperr.CodeInvalidTime,
			},
			{
				name:   "unknown resource",
				body:   s.request(func(b *builder.AppointmentBuilder) { b.ResourceID = 42 }),
				status: http.StatusNotFound,
				code:   httperr.CodeResourceNotFound,
			},
		}
		for _, tc := range cases {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, tc.body, nil)
			httptest.AssertErrorResponse(t, w, tc.status, tc.code)
		}
		require.Zero(t, dbtest.CountRows(t, s.DB, "appointments", ""))
	})

	s.Run("Normal case: inactive services are refused", func() {
		t := s.T()
		id := dbtest.CreateTestService(t, s.DB, "Hidratação", 30, false)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL,
			s.request(func(b *builder.AppointmentBuilder) { b.ServiceID = id }), nil)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, httperr.CodeInvalidService)
	})
}

// =============================================================================
// Concurrency and the database guard
// =============================================================================

func (s *AppointmentSuite) TestConcurrentBooking() {
	s.Run("Concurrency: exactly one of many overlapping requests wins", func() {
		t := s.T()

		const n = 10
		codes := make([]int, n)
		var wg sync.WaitGroup
		for i := range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				hhmm := "10:00"
				if i%2 == 1 {
					hhmm = "10:15"
				}
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, s.request(at(hhmm)), nil)
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		created, conflicts := 0, 0
		for _, c := range codes {
			switch c {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicts++
			}
		}
		require.Equal(t, 1, created, "codes: %v", codes)
		require.Equal(t, n-1, conflicts, "codes: %v", codes)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "appointments", "status <> 'CANCELED'"))
	})

	s.Run("Database: the exclusion constraint rejects a raw overlapping insert", func() {
		t := s.T()

		start := time.Date(2030, 1, 15, 13, 0, 0, 0, time.UTC)
		dbtest.CreateTestAppointment(t, s.DB, 1, serviceTosaHigienica, start, start.Add(30*time.Minute), "2030-01-15", "CONFIRMED")

		_, err := s.DB.Exec(context.Background(), `
			INSERT INTO appointments (client_name, phone, start_utc, end_utc, date_local, service_id, resource_id)
			VALUES ('Raw', '11999990000', $1, $2, '2030-01-15', $3, 1)`,
			start.Add(15*time.Minute), start.Add(45*time.Minute), serviceTosaHigienica)

		var pgErr *pgconn.PgError
		require.True(t, errors.As(err, &pgErr), "expected a postgres error, got %v", err)
		require.Equal(t, "23P01", pgErr.Code)

		// canceled rows do not take part in the constraint
		dbtest.CreateTestAppointment(t, s.DB, 1, serviceTosaHigienica, start, start.Add(30*time.Minute), "2030-01-15", "CANCELED")
	})
}

func (s *AppointmentSuite) TestCrossMidnightOverlap() {
	s.Run("Database: a booking running past midnight blocks the next morning", func() {
		t := s.T()

		day, err := time.ParseInLocation(time.DateOnly, s.date, s.zone)
		require.NoError(t, err)
		start := day.Add(23*time.Hour + 30*time.Minute)
		dbtest.CreateTestAppointment(t, s.DB, 1, serviceTosaHigienica, start.UTC(), start.Add(2*time.Hour).UTC(), s.date, "CONFIRMED")

		next := day.AddDate(0, 0, 1).Format(time.DateOnly)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL,
			s.request(func(b *builder.AppointmentBuilder) { b.Date = next; b.Time = "00:30" }), nil)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, httperr.CodeConflict)

		s.book(s.request(func(b *builder.AppointmentBuilder) { b.Date = next; b.Time = "01:30" }), nil)
		require.Equal(t, 2, dbtest.CountRows(t, s.DB, "appointments", ""))
	})
}

// =============================================================================
// Status changes
// =============================================================================

func (s *AppointmentSuite) TestChangeStatus() {
	s.Run("Normal case: canceling frees the slot", func() {
		t := s.T()

		first := s.book(s.request(), nil)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf("%s/%d/status", appointmentsURL, first.ID), map[string]any{"status": "CANCELED"}, nil)
		var canceled resdto.AppointmentResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &canceled)
		require.Equal(t, "CANCELED", canceled.Status)

		require.Empty(t, unavailable(s.slots("")))
		s.book(s.request(), nil)
	})

	s.Run("Error case: reactivating into a taken slot conflicts", func() {
		t := s.T()

		first := s.book(s.request(), nil)
		url := fmt.Sprintf("%s/%d/status", appointmentsURL, first.ID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, url, map[string]any{"status": "CANCELED"}, nil)
		require.Equal(t, http.StatusOK, w.Code)
		s.book(s.request(), nil)

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, url, map[string]any{"status": "CONFIRMED"}, nil)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, httperr.CodeConflict)
	})

	s.Run("Error case: unknown status and appointment", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, appointmentsURL+"/999/status", map[string]any{"status": "DONE"}, nil)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, httperr.CodeAppointmentNotFound)

		first := s.book(s.request(), nil)
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf("%s/%d/status", appointmentsURL, first.ID), map[string]any{"status": "LOST"}, nil)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, httperr.CodeInvalidInput)
	})
}

// =============================================================================
// Idempotency
// =============================================================================

func (s *AppointmentSuite) TestIdempotency() {
	s.Run("Normal case: a retried request replays the original booking", func() {
		t := s.T()
		headers := map[string]string{middleware.HeaderIdempotencyKey: uuid.NewString()}

		first := s.book(s.request(), headers)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, s.request(), headers)
		var replay resdto.AppointmentResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &replay)
		httptest.AssertHeaders(t, w, map[string]string{api.HeaderIdempotentReplayed: "true"})

		require.Equal(t, first.ID, replay.ID)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "appointments", ""))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "notification_jobs", ""))
	})

	s.Run("Error case: the same key with another body is rejected", func() {
		t := s.T()
		headers := map[string]string{middleware.HeaderIdempotencyKey: uuid.NewString()}

		s.book(s.request(), headers)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, s.request(at("15:00")), headers)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, httperr.CodeIdempotencyKeyReused)
	})
}

// =============================================================================
// Outbox
// =============================================================================

type recordingPublisher struct {
	mu   sync.Mutex
	msgs []outbox.Message
}

func (p *recordingPublisher) Publish(_ context.Context, msg outbox.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.msgs = append(p.msgs, msg)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (s *AppointmentSuite) TestOutboxRelay() {
	s.Run("Normal case: booking and cancel events are delivered once", func() {
		t := s.T()

		res := s.book(s.request(), nil)
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf("%s/%d/status", appointmentsURL, res.ID), map[string]any{"status": "CANCELED"}, nil)
		require.Equal(t, http.StatusOK, w.Code)

		pub := &recordingPublisher{}
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		relay := outbox.NewRelay(s.Tx, s.Jobs, pub, clock.NewRealClock(), logger, outbox.RelayConfig{})

		n, err := relay.RelayOnce(context.Background())
		require.NoError(t, err)
		require.Equal(t, 2, n)

		require.Len(t, pub.msgs, 2)
		topics := []string{pub.msgs[0].Topic, pub.msgs[1].Topic}
		require.ElementsMatch(t, []string{commands.TopicAppointmentConfirmed, commands.TopicAppointmentStatusChanged}, topics)
		require.Equal(t, pub.msgs[0].Key, pub.msgs[1].Key)

		require.Equal(t, 2, dbtest.CountRows(t, s.DB, "notification_jobs", "status = 'sent'"))

		n, err = relay.RelayOnce(context.Background())
		require.NoError(t, err)
		require.Zero(t, n)
	})
}
