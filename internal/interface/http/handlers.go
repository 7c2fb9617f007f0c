package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/EliyatMagar/websathi-new/pkg/response"
)

// parseID validates that the :id path parameter is a positive integer.
// Writes BadRequest and returns false otherwise.
func parseID(c *gin.Context, label string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Err(c, http.StatusBadRequest, "Invalid "+label+" ID")
		return 0, false
	}
	return id, true
}

// adminScoped reports whether the request asks for the admin variant of a
// listing (?admin=true), which returns unpublished rows too.
func adminScoped(c *gin.Context) bool {
	return c.Query("admin") != ""
}
