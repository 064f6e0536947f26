//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"pet-scheduler/internal/domain/service"
	"pet-scheduler/internal/handler/api"
	resdto "pet-scheduler/internal/handler/dto/response"
	"pet-scheduler/internal/handler/httperr"
	"pet-scheduler/internal/pkg/errs"
	"pet-scheduler/internal/usecase/queries"
	"pet-scheduler/tests/common/builder"
	"pet-scheduler/tests/common/httptest"
	"pet-scheduler/tests/common/testutil"
	commandsmock "pet-scheduler/tests/mock/commands"
	queriesmock "pet-scheduler/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCatalogCommands
	mockQueries  *queriesmock.MockCatalogQueries
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCatalogCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	h := api.NewCatalogHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/services", h.ListServices)
	s.router.GET("/services/:id", h.GetService)
	s.router.POST("/services", h.CreateService)
	s.router.PATCH("/services/:id", h.UpdateService)
	s.router.GET("/pets", h.ListPets)
	s.router.GET("/pets/:id", h.GetPet)
	s.router.POST("/pets", h.CreatePet)
	s.router.GET("/resources", h.ListResources)
	s.router.POST("/resources", h.CreateResource)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) TestServices() {
	view := builder.NewServiceBuilder().BuildView()

	s.Run("success: list", func() {
		s.mockQueries.EXPECT().ListServices(gomock.Any()).Return([]*queries.ServiceView{view}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/services", nil, nil)

		var body []resdto.ServiceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("Banho e Tosa", body[0].Name)
		s.Equal(90, body[0].DurationMinutes)
	})

	s.Run("error: 404 on unknown service", func() {
		s.mockQueries.EXPECT().GetService(gomock.Any(), int64(42)).Return(nil, errs.ErrServiceNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/services/42", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, httperr.CodeServiceNotFound)
	})

	s.Run("success: create", func() {
		req := builder.NewServiceBuilder().BuildCreateRequestDTO()
		s.mockCommands.EXPECT().CreateService(gomock.Any(), req.ToInput()).Return(view, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/services", req, nil)

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/services/1"})
	})

	s.Run("error: create validation", func() {
		req := builder.NewServiceBuilder().BuildCreateRequestDTO()
		for _, mutate := range []func(map[string]any){
			testutil.Field("name", nil),
			testutil.Field("durationMinutes", nil),
		} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/services", testutil.DtoMap(s.T(), req, mutate), nil)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, httperr.CodeInvalidInput)
		}
	})

	s.Run("error: 409 on duplicate name", func() {
		s.mockCommands.EXPECT().CreateService(gomock.Any(), gomock.Any()).Return(nil, errs.ErrServiceNameTaken).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/services",
			builder.NewServiceBuilder().BuildCreateRequestDTO(), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, httperr.CodeServiceNameTaken)
	})

	s.Run("success: partial update only carries sent fields", func() {
		s.mockCommands.EXPECT().UpdateService(gomock.Any(), int64(1), gomock.Any()).
			DoAndReturn(func(_ any, _ int64, p service.Patch) (*queries.ServiceView, error) {
				s.Nil(p.Name)
				s.Nil(p.PriceCents)
				s.Require().NotNil(p.DurationMinutes)
				s.Equal(60, *p.DurationMinutes)
				s.Require().NotNil(p.Active)
				s.False(*p.Active)
				return view, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/services/1",
			map[string]any{"durationMinutes": 60, "active": false}, nil)
		s.Equal(http.StatusOK, rec.Code)
	})
}

func (s *CatalogHandlerTestSuite) TestPets() {
	birth := time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)
	view := builder.NewPetBuilder().BuildView()
	view.BirthDate = &birth

	s.Run("success: get formats the birth date", func() {
		s.mockQueries.EXPECT().GetPet(gomock.Any(), int64(1)).Return(view, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/pets/1", nil, nil)

		var body resdto.PetResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Rex", body.Name)
		s.Require().NotNil(body.BirthDate)
		s.Equal("2020-03-01", *body.BirthDate)
	})

	s.Run("success: create", func() {
		req := builder.NewPetBuilder().BuildCreateRequestDTO()
		s.mockCommands.EXPECT().CreatePet(gomock.Any(), req.ToInput()).Return(view, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/pets", req, nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/pets/1"})
	})

	s.Run("error: 400 from domain validation", func() {
		s.mockCommands.EXPECT().CreatePet(gomock.Any(), gomock.Any()).
			Return(nil, errs.Invalidf("phone must have at least 6 characters")).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/pets",
			builder.NewPetBuilder().BuildCreateRequestDTO(), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, httperr.CodeInvalidInput)
	})

	s.Run("success: empty list", func() {
		s.mockQueries.EXPECT().ListPets(gomock.Any()).Return(nil, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/pets", nil, nil)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})
}

func (s *CatalogHandlerTestSuite) TestResources() {
	view := &queries.ResourceView{ID: 2, Name: "Mesa 2"}

	s.Run("success: create", func() {
		s.mockCommands.EXPECT().CreateResource(gomock.Any(), "Mesa 2").Return(view, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/resources", map[string]any{"name": "Mesa 2"}, nil)

		var body resdto.ResourceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(int64(2), body.ID)
	})

	s.Run("success: list", func() {
		s.mockQueries.EXPECT().ListResources(gomock.Any()).
			Return([]*queries.ResourceView{{ID: 1, Name: "Geral"}, view}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resources", nil, nil)

		var body []resdto.ResourceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
	})
}
