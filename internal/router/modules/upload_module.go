package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/EliyatMagar/websathi-new/internal/container"
	handlers "github.com/EliyatMagar/websathi-new/internal/interface/http"
	"github.com/EliyatMagar/websathi-new/internal/interface/middleware"
)

type UploadModule struct {
	Handler *handlers.UploadHandler
}

func NewUploadModule(h *handlers.UploadHandler) *UploadModule {
	return &UploadModule{Handler: h}
}

func (m *UploadModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.RequireAuth())
	auth.Use(middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/upload", m.Handler.Upload)
	}
}
