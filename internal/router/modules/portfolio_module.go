package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/EliyatMagar/websathi-new/internal/container"
	handlers "github.com/EliyatMagar/websathi-new/internal/interface/http"
	"github.com/EliyatMagar/websathi-new/internal/interface/middleware"
)

type PortfolioModule struct {
	Handler *handlers.PortfolioHandler
}

func NewPortfolioModule(h *handlers.PortfolioHandler) *PortfolioModule {
	return &PortfolioModule{Handler: h}
}

func (m *PortfolioModule) Register(rg *gin.RouterGroup) {
	rg.GET("/portfolio", m.Handler.List)
	rg.GET("/portfolio/:id", m.Handler.Get)

	auth := rg.Group("/")
	auth.Use(middleware.RequireAuth())
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/portfolio", m.Handler.Create)
		auth.PUT("/portfolio/:id", m.Handler.Update)
		auth.DELETE("/portfolio/:id", m.Handler.Delete)
	}
}
