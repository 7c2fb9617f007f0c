package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the JSON error envelope. Details carries per-field validation
// messages when present. Internal error detail (SQL text, stacks) never
// crosses this boundary.
type ErrorBody struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

// Err writes a user-safe error with the given status.
func Err(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorBody{Error: message})
}

// ErrWithDetails writes a user-safe error with field-level details.
func ErrWithDetails(c *gin.Context, status int, message string, details map[string]string) {
	c.JSON(status, ErrorBody{Error: message, Details: details})
}

// AbortErr aborts the chain with an error body; used from middleware.
func AbortErr(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorBody{Error: message})
}
