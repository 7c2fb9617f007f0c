package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/EliyatMagar/websathi-new/pkg/helpers"
)

const (
	dashboardPrefix = "/dashboard"
	loginPath       = "/auth/login"
)

// RouteGuard redirects browsers at the edge: dashboard pages require a
// session cookie, and the login page bounces already-signed-in users back to
// the dashboard. This check is cookie-presence only; an expired cookie passes
// here and is rejected by the API once the page calls /api/auth/me.
func RouteGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		tok, err := c.Cookie(helpers.SessionCookieName)
		hasCookie := err == nil && tok != ""

		if strings.HasPrefix(path, dashboardPrefix) && !hasCookie {
			c.Redirect(http.StatusTemporaryRedirect, loginPath)
			c.Abort()
			return
		}
		if path == loginPath && hasCookie {
			c.Redirect(http.StatusTemporaryRedirect, dashboardPrefix)
			c.Abort()
			return
		}
		c.Next()
	}
}
