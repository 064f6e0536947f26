//go:build unit

package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"pet-scheduler/internal/domain/appointment"
	"pet-scheduler/internal/handler/api"
	resdto "pet-scheduler/internal/handler/dto/response"
	"pet-scheduler/internal/handler/httperr"
	"pet-scheduler/internal/handler/middleware"
	"pet-scheduler/internal/pkg/errs"
	"pet-scheduler/internal/usecase/commands"
	"pet-scheduler/internal/usecase/queries"
	"pet-scheduler/tests/common/builder"
	"pet-scheduler/tests/common/httptest"
	"pet-scheduler/tests/common/testutil"
	commandsmock "pet-scheduler/tests/mock/commands"
	queriesmock "pet-scheduler/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AppointmentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAppointmentCommands
	mockQueries  *queriesmock.MockAppointmentQueries
	handler      *api.AppointmentHandler
}

func (s *AppointmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAppointmentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAppointmentQueries(s.mockCtrl)
	s.handler = api.NewAppointmentHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/appointments", middleware.RequireJSON(), s.handler.Create)
	s.router.GET("/appointments", s.handler.List)
	s.router.GET("/appointments/:id", s.handler.Get)
	s.router.PATCH("/appointments/:id/status", middleware.RequireJSON(), s.handler.ChangeStatus)
}

func (s *AppointmentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAppointmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AppointmentHandlerTestSuite))
}

type testCaseAppointment struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestCreate() {
	url := "/appointments"

	reqBody := builder.NewAppointmentBuilder().BuildCreateRequestDTO()
	view := builder.NewAppointmentBuilder().BuildView()
	created := &commands.CreateAppointmentResult{Appointment: view}

	missing := []testCaseAppointment{
		{name: "missing field: clientName", mutate: testutil.Field("clientName", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: phone", mutate: testutil.Field("phone", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: date", mutate: testutil.Field("date", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: time", mutate: testutil.Field("time", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: serviceId", mutate: testutil.Field("serviceId", nil), expectCode: http.StatusBadRequest},
	}
	bound := []testCaseAppointment{
		{name: "serviceId zero", mutate: testutil.Field("serviceId", 0), expectCode: http.StatusBadRequest},
		{name: "resourceId zero", mutate: testutil.Field("resourceId", 0), expectCode: http.StatusBadRequest},
		{name: "petId negative", mutate: testutil.Field("petId", -3), expectCode: http.StatusBadRequest},
		{name: "serviceId as string", mutate: testutil.Field("serviceId", "1"), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 201 Created with Location", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody.ToInput(nil)).Return(created, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, nil)

		var body resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID, body.ID)
		s.Equal("2024-08-20", body.Date)
		s.Equal("10:00", body.Time)
		s.Equal(string(appointment.StatusConfirmed), body.Status)
		s.Equal(view.Service.Name, body.Service.Name)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/appointments/1"})
	})

	s.Run("success: omitted resourceId leaves the default to the command", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("resourceId", nil))
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in commands.CreateAppointmentInput) (*commands.CreateAppointmentResult, error) {
				s.Zero(in.ResourceID)
				return created, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, nil)
		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("success: idempotency key is forwarded and replays answer 200", func() {
		key := uuid.New()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in commands.CreateAppointmentInput) (*commands.CreateAppointmentResult, error) {
				s.Require().NotNil(in.IdempotencyKey)
				s.Equal(key, *in.IdempotencyKey)
				return &commands.CreateAppointmentResult{Appointment: view, IsReplayed: true}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody,
			map[string]string{middleware.HeaderIdempotencyKey: key.String()})

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		httptest.AssertHeaders(s.T(), rec, map[string]string{api.HeaderIdempotentReplayed: "true"})
	})

	s.Run("error: 400 when the idempotency key is not a UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody,
			map[string]string{middleware.HeaderIdempotencyKey: "not-a-uuid"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, httperr.CodeInvalidInput)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, group := range [][]testCaseAppointment{missing, bound} {
			for _, tc := range group {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, nil)
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, httperr.CodeInvalidInput)
				})
			}
		}
	})

	s.Run("error: 400 on malformed JSON", func() {
		rec := httptest.PerformRaw(s.T(), s.router, http.MethodPost, url, "application/json", []byte(`{"clientName":`))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, httperr.CodeInvalidInput)
	})

	s.Run("error: 415 without a JSON content type", func() {
		rec := httptest.PerformRaw(s.T(), s.router, http.MethodPost, url, "text/plain", []byte(`{}`))
		s.Equal(http.StatusUnsupportedMediaType, rec.Code)
	})

	s.Run("error: use case failures map onto status and code", func() {
		cases := []struct {
			name   string
			err    error
			status int
			code   string
		}{
			{"invalid time", fmt.Errorf("%w: time \"25:00\"", errs.ErrInvalidTime), http.StatusBadRequest, httperr.CodeInvalidTime},
			{"invalid service", errs.ErrInvalidService, http.StatusBadRequest, httperr.CodeInvalidService},
			{"past booking", errs.ErrPastBooking, http.StatusBadRequest, httperr.CodePastBooking},
			{"conflict", errs.ErrConflict, http.StatusConflict, httperr.CodeConflict},
			{"key in flight", errs.ErrIdempotencyInProgress, http.StatusConflict, httperr.CodeIdempotencyInProgress},
			{"key reused", errs.ErrIdempotencyKeyReused, http.StatusUnprocessableEntity, httperr.CodeIdempotencyKeyReused},
			{"unknown resource", errs.ErrResourceNotFound, http.StatusNotFound, httperr.CodeResourceNotFound},
			{"unknown pet", errs.ErrPetNotFound, http.StatusNotFound, httperr.CodePetNotFound},
			{"database down", errors.New("connection refused"), http.StatusInternalServerError, httperr.CodeInternal},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, nil)
				httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.code)
				if tc.status == http.StatusInternalServerError {
					s.NotContains(rec.Body.String(), "connection refused")
				}
			})
		}
	})
}

// ================================================================================
// TestGet / TestList
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestGet() {
	view := builder.NewAppointmentBuilder().BuildView()

	s.Run("success: returns the appointment", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(1)).Return(view, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments/1", nil, nil)

		var body resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ClientName, body.ClientName)
		s.Equal(view.StartUTC, body.StartUTC)
	})

	s.Run("error: 404 for an unknown id", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, errs.ErrAppointmentNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments/99", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, httperr.CodeAppointmentNotFound)
	})

	s.Run("error: 400 for a non-numeric id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments/abc", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, httperr.CodeInvalidInput)
	})
}

func (s *AppointmentHandlerTestSuite) TestList() {
	views := []*queries.AppointmentView{
		builder.NewAppointmentBuilder().BuildView(),
		builder.NewAppointmentBuilder().With(func(b *builder.AppointmentBuilder) {
			b.ID = 2
			b.Time = "14:00"
		}).BuildView(),
	}

	s.Run("success: filters are parsed", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, f queries.AppointmentFilter) ([]*queries.AppointmentView, error) {
				s.Require().NotNil(f.Date)
				s.Equal("2024-08-20", f.Date.String())
				s.Require().NotNil(f.ResourceID)
				s.Equal(int64(1), *f.ResourceID)
				return views, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments?date=2024-08-20&resourceId=1", nil, nil)

		var body []resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
		s.Equal("14:00", body[1].Time)
	})

	s.Run("success: no filters", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), queries.AppointmentFilter{}).Return(nil, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments", nil, nil)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("error: 400 on a malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments?date=20-08-2024", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, httperr.CodeInvalidTime)
	})
}

// ================================================================================
// TestChangeStatus
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestChangeStatus() {
	url := "/appointments/1/status"
	canceled := builder.NewAppointmentBuilder().WithStatus(appointment.StatusCanceled).BuildView()

	s.Run("success: returns the updated appointment", func() {
		s.mockCommands.EXPECT().ChangeStatus(gomock.Any(), int64(1), "CANCELED").Return(canceled, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "CANCELED"}, nil)

		var body resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("CANCELED", body.Status)
	})

	s.Run("error: 400 when status is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{}, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, httperr.CodeInvalidInput)
	})

	s.Run("error: 409 when reactivation collides", func() {
		blocked := errs.WithDetailf(errs.ErrConflict, "blocked by appointment %d", 77)
		s.mockCommands.EXPECT().ChangeStatus(gomock.Any(), int64(1), "CONFIRMED").Return(nil, blocked).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "CONFIRMED"}, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, httperr.CodeConflict)
		s.NotContains(rec.Body.String(), "blocked by appointment")
	})

	s.Run("error: 409 when the policy refuses", func() {
		s.mockCommands.EXPECT().ChangeStatus(gomock.Any(), int64(1), "DONE").Return(nil, errs.ErrInvalidTransition).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "DONE"}, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, httperr.CodeInvalidTransition)
	})
}
