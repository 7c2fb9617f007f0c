package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/EliyatMagar/websathi-new/internal/container"
	handlers "github.com/EliyatMagar/websathi-new/internal/interface/http"
	"github.com/EliyatMagar/websathi-new/internal/interface/middleware"
)

type VideoModule struct {
	Handler *handlers.VideoHandler
}

func NewVideoModule(h *handlers.VideoHandler) *VideoModule {
	return &VideoModule{Handler: h}
}

func (m *VideoModule) Register(rg *gin.RouterGroup) {
	rg.GET("/videos", m.Handler.List)
	rg.GET("/videos/:id", m.Handler.Get)

	auth := rg.Group("/")
	auth.Use(middleware.RequireAuth())
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/videos", m.Handler.Create)
		auth.PUT("/videos/:id", m.Handler.Update)
		auth.DELETE("/videos/:id", m.Handler.Delete)
	}
}
