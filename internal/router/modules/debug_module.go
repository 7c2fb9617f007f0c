package modules

import (
	"expvar"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/EliyatMagar/websathi-new/internal/container"
	"github.com/EliyatMagar/websathi-new/internal/interface/middleware"
)

type DebugModule struct{}

func NewDebugModule() *DebugModule { return &DebugModule{} }

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	// Public metrics endpoint (expvar), rate-limited per IP. Private and
	// loopback addresses bypass the limit so internal scrapers are never cut.
	rl := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	rg.GET("/debug/vars", rl, gin.WrapH(expvar.Handler()))
}
