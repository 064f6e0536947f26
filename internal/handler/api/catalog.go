package api

import (
	"net/http"
	"strconv"

	reqdto "pet-scheduler/internal/handler/dto/request"
	resdto "pet-scheduler/internal/handler/dto/response"
	"pet-scheduler/internal/handler/httperr"
	"pet-scheduler/internal/usecase/commands"
	"pet-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	cmds commands.CatalogCommands
	q    queries.CatalogQueries
}

func NewCatalogHandler(cmds commands.CatalogCommands, q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{cmds: cmds, q: q}
}

// @Summary List services
// @Description Active services ordered by name
// @Tags services
// @Produce json
// @Success 200 {array} resdto.ServiceResponse
// @Router /api/services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	views, err := h.q.ListServices(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceViews(views))
}

// @Summary Get service
// @Tags services
// @Produce json
// @Param id path int true "Service ID"
// @Success 200 {object} resdto.ServiceResponse
// @Failure 404 {object} httperr.Response
// @Router /api/services/{id} [get]
func (h *CatalogHandler) GetService(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.GetService(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceView(view))
}

// @Summary Create service
// @Tags services
// @Accept json
// @Produce json
// @Param request body reqdto.CreateServiceRequest true "Service"
// @Success 201 {object} resdto.ServiceResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/services [post]
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req reqdto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	view, err := h.cmds.CreateService(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/api/services/"+strconv.FormatInt(view.ID, 10))
	c.JSON(http.StatusCreated, resdto.FromServiceView(view))
}

// @Summary Edit service
// @Description Partial update. Existing appointments keep their stored times.
// @Tags services
// @Accept json
// @Produce json
// @Param id path int true "Service ID"
// @Param request body reqdto.UpdateServiceRequest true "Fields to change"
// @Success 200 {object} resdto.ServiceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/services/{id} [patch]
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	view, err := h.cmds.UpdateService(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceView(view))
}

// @Summary List pets
// @Tags pets
// @Produce json
// @Success 200 {array} resdto.PetResponse
// @Router /api/pets [get]
func (h *CatalogHandler) ListPets(c *gin.Context) {
	views, err := h.q.ListPets(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPetViews(views))
}

// @Summary Get pet
// @Tags pets
// @Produce json
// @Param id path int true "Pet ID"
// @Success 200 {object} resdto.PetResponse
// @Failure 404 {object} httperr.Response
// @Router /api/pets/{id} [get]
func (h *CatalogHandler) GetPet(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.GetPet(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPetView(view))
}

// @Summary Register pet
// @Tags pets
// @Accept json
// @Produce json
// @Param request body reqdto.CreatePetRequest true "Pet"
// @Success 201 {object} resdto.PetResponse
// @Failure 400 {object} httperr.Response
// @Router /api/pets [post]
func (h *CatalogHandler) CreatePet(c *gin.Context) {
	var req reqdto.CreatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	view, err := h.cmds.CreatePet(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/api/pets/"+strconv.FormatInt(view.ID, 10))
	c.JSON(http.StatusCreated, resdto.FromPetView(view))
}

// @Summary List resources
// @Tags resources
// @Produce json
// @Success 200 {array} resdto.ResourceResponse
// @Router /api/resources [get]
func (h *CatalogHandler) ListResources(c *gin.Context) {
	views, err := h.q.ListResources(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromResourceViews(views))
}

// @Summary Create resource
// @Tags resources
// @Accept json
// @Produce json
// @Param request body reqdto.CreateResourceRequest true "Resource"
// @Success 201 {object} resdto.ResourceResponse
// @Failure 400 {object} httperr.Response
// @Router /api/resources [post]
func (h *CatalogHandler) CreateResource(c *gin.Context) {
	var req reqdto.CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	view, err := h.cmds.CreateResource(c.Request.Context(), req.Name)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromResourceView(view))
}
