//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"pet-scheduler/internal/handler/api"
	resdto "pet-scheduler/internal/handler/dto/response"
	"pet-scheduler/internal/handler/httperr"
	"pet-scheduler/internal/pkg/errs"
	"pet-scheduler/internal/usecase/queries"
	"pet-scheduler/tests/common/httptest"
	queriesmock "pet-scheduler/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SlotHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockSlotQueries
}

func (s *SlotHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockSlotQueries(s.mockCtrl)
	s.router.GET("/slots", api.NewSlotHandler(s.mockQueries).GetSlots)
}

func (s *SlotHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSlotHandlerSuite(t *testing.T) {
	suite.Run(t, new(SlotHandlerTestSuite))
}

func slotsView(q queries.SlotQuery) *queries.SlotsView {
	return &queries.SlotsView{
		Date:               q.Date,
		ResourceID:         q.ResourceID,
		ServiceID:          q.ServiceID,
		SlotWidth:          30,
		DurationConsidered: 30,
		Slots: []queries.SlotView{
			{Time: "09:00", Available: true},
			{Time: "09:30", Available: false},
		},
	}
}

func (s *SlotHandlerTestSuite) TestGetSlots() {
	s.Run("success: resource defaults to 1", func() {
		want := queries.SlotQuery{Date: "2024-08-20", ResourceID: api.DefaultResourceID}
		s.mockQueries.EXPECT().GetSlots(gomock.Any(), want).Return(slotsView(want), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/slots?date=2024-08-20", nil, nil)

		var body resdto.SlotsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(1), body.ResourceID)
		s.Nil(body.ServiceID)
		s.Len(body.Slots, 2)
		s.True(body.Slots[0].Available)
		s.False(body.Slots[1].Available)
	})

	s.Run("success: explicit resource and service", func() {
		s.mockQueries.EXPECT().GetSlots(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, q queries.SlotQuery) (*queries.SlotsView, error) {
				s.Equal(int64(2), q.ResourceID)
				s.Require().NotNil(q.ServiceID)
				s.Equal(int64(4), *q.ServiceID)
				return slotsView(q), nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/slots?date=2024-08-20&resourceId=2&serviceId=4", nil, nil)

		var body resdto.SlotsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().NotNil(body.ServiceID)
		s.Equal(int64(4), *body.ServiceID)
	})

	s.Run("error: 400 without date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/slots", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, httperr.CodeInvalidInput)
	})

	s.Run("error: 400 on a bad resourceId", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/slots?date=2024-08-20&resourceId=x", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, httperr.CodeInvalidInput)
	})

	s.Run("error: use case failures", func() {
		cases := []struct {
			name   string
			err    error
			status int
			code   string
		}{
			{"malformed date", errs.ErrInvalidTime, http.StatusBadRequest, httperr.CodeInvalidTime},
			{"inactive service", errs.ErrInvalidService, http.StatusBadRequest, httperr.CodeInvalidService},
			{"unknown resource", errs.ErrResourceNotFound, http.StatusNotFound, httperr.CodeResourceNotFound},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().GetSlots(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/slots?date=2024-08-20", nil, nil)
				httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.code)
			})
		}
	})
}
