package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/EliyatMagar/websathi-new/internal/container"
	handlers "github.com/EliyatMagar/websathi-new/internal/interface/http"
	"github.com/EliyatMagar/websathi-new/internal/interface/middleware"
)

type BlogModule struct {
	Handler *handlers.BlogHandler
}

func NewBlogModule(h *handlers.BlogHandler) *BlogModule {
	return &BlogModule{Handler: h}
}

func (m *BlogModule) Register(rg *gin.RouterGroup) {
	// Public reads. Search is limited per IP since it fans out to
	// Elasticsearch.
	searchLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.GET("/blog", m.Handler.List)
	rg.GET("/blog/search", searchLimiter, m.Handler.Search)
	rg.GET("/blog/:id", m.Handler.Get)

	// Writes require a session
	auth := rg.Group("/")
	auth.Use(middleware.RequireAuth())
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/blog", m.Handler.Create)
		auth.PUT("/blog/:id", m.Handler.Update)
		auth.DELETE("/blog/:id", m.Handler.Delete)
	}
}
