package api

import (
	"strconv"

	"pet-scheduler/internal/handler/httperr"
	"pet-scheduler/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// DefaultResourceID is the resource used when a request names none.
const DefaultResourceID int64 = 1

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		httperr.BadRequest(c, errs.Invalidf("invalid id %q", c.Param("id")), "Invalid id", nil)
		return 0, false
	}
	return id, true
}

// optionalQueryID returns nil when the parameter is absent.
func optionalQueryID(c *gin.Context, name string) (*int64, bool) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		httperr.BadRequest(c, errs.Invalidf("invalid %s %q", name, raw), "Invalid "+name, nil)
		return nil, false
	}
	return &id, true
}

func bindError(c *gin.Context, err error) {
	httperr.BadRequest(c, errs.Mark(err, errs.ErrInvalidInput), "Invalid request", err.Error())
}
