package httperr

import (
	"net/http"

	"pet-scheduler/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

const (
	CodeInvalidInput          = "INVALID_INPUT"
	CodeInvalidTime           = "INVALID_TIME"
	CodeInvalidService        = "INVALID_SERVICE"
	CodePastBooking           = "PAST_BOOKING"
	CodeConflict              = "CONFLICT"
	CodeInvalidTransition     = "INVALID_TRANSITION"
	CodeServiceNameTaken      = "SERVICE_NAME_TAKEN"
	CodeIdempotencyInProgress = "IDEMPOTENCY_IN_PROGRESS"
	CodeIdempotencyKeyReused  = "IDEMPOTENCY_KEY_REUSED"
	CodeAppointmentNotFound   = "APPOINTMENT_NOT_FOUND"
	CodeServiceNotFound       = "SERVICE_NOT_FOUND"
	CodeResourceNotFound      = "RESOURCE_NOT_FOUND"
	CodePetNotFound           = "PET_NOT_FOUND"
	CodeNotFound              = "NOT_FOUND"
	CodeInternal              = "INTERNAL"
)

type rule struct {
	target error
	status int
	code   string
}

// First match wins. ErrInvalidInput sits last among the 400s because
// several domain errors carry it as a secondary mark.
var rules = []rule{
	{errs.ErrInvalidTime, http.StatusBadRequest, CodeInvalidTime},
	{errs.ErrInvalidService, http.StatusBadRequest, CodeInvalidService},
	{errs.ErrPastBooking, http.StatusBadRequest, CodePastBooking},
	{errs.ErrInvalidInput, http.StatusBadRequest, CodeInvalidInput},
	{errs.ErrConflict, http.StatusConflict, CodeConflict},
	{errs.ErrInvalidTransition, http.StatusConflict, CodeInvalidTransition},
	{errs.ErrServiceNameTaken, http.StatusConflict, CodeServiceNameTaken},
	{errs.ErrIdempotencyInProgress, http.StatusConflict, CodeIdempotencyInProgress},
	{errs.ErrIdempotencyKeyReused, http.StatusUnprocessableEntity, CodeIdempotencyKeyReused},
	{errs.ErrAppointmentNotFound, http.StatusNotFound, CodeAppointmentNotFound},
	{errs.ErrServiceNotFound, http.StatusNotFound, CodeServiceNotFound},
	{errs.ErrResourceNotFound, http.StatusNotFound, CodeResourceNotFound},
	{errs.ErrPetNotFound, http.StatusNotFound, CodePetNotFound},
}

// Classify maps a use case error onto an HTTP status and error code.
// Anything unrecognised is a 500.
func Classify(err error) (int, string) {
	for _, r := range rules {
		if errs.Is(err, r.target) {
			return r.status, r.code
		}
	}
	return http.StatusInternalServerError, CodeInternal
}

// Abort answers with the status Classify picks. Client errors expose the
// error text; server errors never do.
func Abort(c *gin.Context, err error) {
	status, code := Classify(err)
	msg := "Internal server error"
	if status < http.StatusInternalServerError {
		msg = err.Error()
	}
	AbortWithError(c, status, code, err, msg, nil)
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, code string, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Error.Code = code
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// BadRequest reports malformed input that never reached a use case.
func BadRequest(c *gin.Context, err error, msg string, detail any) {
	AbortWithError(c, http.StatusBadRequest, CodeInvalidInput, err, msg, detail)
}
