package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/EliyatMagar/websathi-new/internal/interface/http"
)

type HealthModule struct {
	Handler *handlers.HealthHandler
}

func NewHealthModule(h *handlers.HealthHandler) *HealthModule {
	return &HealthModule{Handler: h}
}

func (m *HealthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/db/health", m.Handler.Check)
}
