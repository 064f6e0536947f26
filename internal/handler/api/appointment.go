package api

import (
	"net/http"
	"strconv"

	"pet-scheduler/internal/domain/schedule"
	reqdto "pet-scheduler/internal/handler/dto/request"
	resdto "pet-scheduler/internal/handler/dto/response"
	"pet-scheduler/internal/handler/httperr"
	"pet-scheduler/internal/handler/middleware"
	"pet-scheduler/internal/pkg/errs"
	"pet-scheduler/internal/usecase/commands"
	"pet-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const HeaderIdempotentReplayed = "Idempotent-Replayed"

type AppointmentHandler struct {
	cmds commands.AppointmentCommands
	q    queries.AppointmentQueries
}

func NewAppointmentHandler(cmds commands.AppointmentCommands, q queries.AppointmentQueries) *AppointmentHandler {
	return &AppointmentHandler{cmds: cmds, q: q}
}

// @Summary Book appointment
// @Description Books an appointment. A repeated Idempotency-Key with the same body replays the first result.
// @Tags appointments
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "UUID for duplicate prevention"
// @Param request body reqdto.CreateAppointmentRequest true "Appointment"
// @Success 201 {object} resdto.AppointmentResponse
// @Success 200 {object} resdto.AppointmentResponse "Replayed"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/appointments [post]
func (h *AppointmentHandler) Create(c *gin.Context) {
	key, ok := idempotencyKey(c)
	if !ok {
		return
	}

	var req reqdto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), req.ToInput(key))
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	res := resdto.FromAppointmentView(result.Appointment)
	if result.IsReplayed {
		c.Header(HeaderIdempotentReplayed, "true")
		c.JSON(http.StatusOK, res)
		return
	}
	c.Header("Location", "/api/appointments/"+strconv.FormatInt(res.ID, 10))
	c.JSON(http.StatusCreated, res)
}

// @Summary Get appointment
// @Tags appointments
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/appointments/{id} [get]
func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

// @Summary List appointments
// @Description Ordered by date, then start time.
// @Tags appointments
// @Produce json
// @Param date query string false "Local date (YYYY-MM-DD)"
// @Param resourceId query int false "Resource ID"
// @Success 200 {array} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Router /api/appointments [get]
func (h *AppointmentHandler) List(c *gin.Context) {
	var filter queries.AppointmentFilter

	if raw := c.Query("date"); raw != "" {
		date, err := schedule.ParseDate(raw)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		filter.Date = &date
	}
	resourceID, ok := optionalQueryID(c, "resourceId")
	if !ok {
		return
	}
	filter.ResourceID = resourceID

	views, err := h.q.List(c.Request.Context(), filter)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentViews(views))
}

// @Summary Change appointment status
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path int true "Appointment ID"
// @Param request body reqdto.ChangeStatusRequest true "New status"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/appointments/{id}/status [patch]
func (h *AppointmentHandler) ChangeStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	view, err := h.cmds.ChangeStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

func idempotencyKey(c *gin.Context) (*uuid.UUID, bool) {
	raw := c.GetHeader(middleware.HeaderIdempotencyKey)
	if raw == "" {
		return nil, true
	}
	key, err := uuid.Parse(raw)
	if err != nil {
		httperr.BadRequest(c, errs.Invalidf("invalid idempotency key"), "Idempotency-Key must be a UUID", nil)
		return nil, false
	}
	return &key, true
}
