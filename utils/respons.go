package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the wire shape of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondError writes a user-facing error message with the given status.
func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// RespondInternal logs the cause and answers with a generic message so
// storage and transport details never leak to the caller.
func RespondInternal(c *gin.Context, err error) {
	ErrorLogger.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
}
