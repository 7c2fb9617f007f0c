package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/EliyatMagar/websathi-new/internal/container"
	handlers "github.com/EliyatMagar/websathi-new/internal/interface/http"
	"github.com/EliyatMagar/websathi-new/internal/interface/middleware"
)

type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Credential endpoints carry tight per-IP limits
	registerLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/auth/register", registerLimiter, m.Handler.Register)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)
	// both verbs; the dashboard uses POST, plain links use GET
	rg.POST("/auth/logout", m.Handler.Logout)
	rg.GET("/auth/logout", m.Handler.Logout)

	// Me never rejects; it answers {user:null} for anonymous callers so the
	// dashboard can probe session state without error handling.
	rg.GET("/auth/me", m.Handler.Me)
}
