package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/EliyatMagar/websathi-new/internal/infrastructure/postgres"
)

type HealthHandler struct {
	Pool    *pgxpool.Pool
	Env     string
	started time.Time
}

func NewHealthHandler(pool *pgxpool.Pool, env string) *HealthHandler {
	return &HealthHandler{Pool: pool, Env: env, started: time.Now()}
}

// Check GET /api/db/health reports liveness and pool statistics;
// ?detailed=true additionally runs a round-trip diagnostic query.
func (h *HealthHandler) Check(c *gin.Context) {
	ctx := c.Request.Context()

	if c.Query("detailed") == "true" {
		diag, err := postgres.TestConnection(ctx, h.Pool)
		if err != nil {
			c.JSON(http.StatusOK, gin.H{
				"success":     false,
				"error":       err.Error(),
				"timestamp":   time.Now().UTC(),
				"environment": h.Env,
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":     true,
			"data":        diag,
			"timestamp":   time.Now().UTC(),
			"environment": h.Env,
		})
		return
	}

	health := postgres.HealthCheck(ctx, h.Pool)
	c.JSON(http.StatusOK, gin.H{
		"status":      health.Status,
		"database":    health.Database,
		"timestamp":   health.Timestamp,
		"pool":        health.Pool,
		"error":       health.Error,
		"uptime":      time.Since(h.started).Seconds(),
		"environment": h.Env,
	})
}
