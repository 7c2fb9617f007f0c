package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/EliyatMagar/websathi-new/internal/container"
	handlers "github.com/EliyatMagar/websathi-new/internal/interface/http"
	"github.com/EliyatMagar/websathi-new/internal/interface/middleware"
)

type ContactModule struct {
	Handler *handlers.ContactHandler
}

func NewContactModule(h *handlers.ContactHandler) *ContactModule {
	return &ContactModule{Handler: h}
}

func (m *ContactModule) Register(rg *gin.RouterGroup) {
	// Public form; a low per-IP ceiling keeps the mailbox usable.
	limiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil)
	rg.POST("/contact", limiter, m.Handler.Submit)
}
