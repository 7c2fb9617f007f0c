package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/EliyatMagar/websathi-new/pkg/helpers"
)

func guardTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RouteGuard())
	ok := func(c *gin.Context) { c.String(http.StatusOK, "ok") }
	r.GET("/dashboard", ok)
	r.GET("/dashboard/posts", ok)
	r.GET("/auth/login", ok)
	r.GET("/about", ok)
	return r
}

func TestRouteGuardRedirectsDashboardWithoutCookie(t *testing.T) {
	r := guardTestRouter()

	for _, path := range []string{"/dashboard", "/dashboard/posts"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusTemporaryRedirect, w.Code, "path %s", path)
		assert.Equal(t, "/auth/login", w.Header().Get("Location"))
	}
}

func TestRouteGuardRedirectsLoginWithCookie(t *testing.T) {
	r := guardTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/auth/login", nil)
	req.AddCookie(&http.Cookie{Name: helpers.SessionCookieName, Value: "anything"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
}

func TestRouteGuardChecksPresenceOnly(t *testing.T) {
	r := guardTestRouter()

	// an expired or garbage cookie still passes the edge; the API rejects it
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: helpers.SessionCookieName, Value: "expired-garbage"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouteGuardIgnoresOtherPages(t *testing.T) {
	r := guardTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/about", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/login", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
