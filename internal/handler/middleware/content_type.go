package middleware

import (
	"mime"
	"net/http"

	"pet-scheduler/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// RequireJSON rejects write requests whose body is not application/json.
func RequireJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		mediaType, _, err := mime.ParseMediaType(c.GetHeader("Content-Type"))
		if err != nil || mediaType != gin.MIMEJSON {
			resp := httperr.Response{Status: http.StatusUnsupportedMediaType}
			resp.Error.Message = "Content-Type must be application/json"
			resp.Error.Code = httperr.CodeInvalidInput
			c.AbortWithStatusJSON(http.StatusUnsupportedMediaType, resp)
			return
		}
		c.Next()
	}
}
