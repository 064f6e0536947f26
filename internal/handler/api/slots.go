package api

import (
	"net/http"

	resdto "pet-scheduler/internal/handler/dto/response"
	"pet-scheduler/internal/handler/httperr"
	"pet-scheduler/internal/pkg/errs"
	"pet-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SlotHandler struct {
	q queries.SlotQueries
}

func NewSlotHandler(q queries.SlotQueries) *SlotHandler {
	return &SlotHandler{q: q}
}

// @Summary List slots
// @Description Every slot of the business day with its availability. With serviceId the service duration is checked, otherwise the slot width.
// @Tags slots
// @Produce json
// @Param date query string true "Local date (YYYY-MM-DD)"
// @Param resourceId query int false "Resource ID (default 1)"
// @Param serviceId query int false "Service ID"
// @Success 200 {object} resdto.SlotsResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/slots [get]
func (h *SlotHandler) GetSlots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, errs.Invalidf("date is required"), "date is required", nil)
		return
	}
	resourceID, ok := optionalQueryID(c, "resourceId")
	if !ok {
		return
	}
	serviceID, ok := optionalQueryID(c, "serviceId")
	if !ok {
		return
	}

	q := queries.SlotQuery{Date: date, ResourceID: DefaultResourceID, ServiceID: serviceID}
	if resourceID != nil {
		q.ResourceID = *resourceID
	}

	view, err := h.q.GetSlots(c.Request.Context(), q)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotsView(view))
}
