package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PoolStats is the subset of pool statistics exposed by the health endpoint.
type PoolStats struct {
	Total   int32 `json:"total"`
	Idle    int32 `json:"idle"`
	Waiting int64 `json:"waiting"`
}

// Health is the liveness report for the database.
type Health struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
	Pool      PoolStats `json:"pool"`
	Error     string    `json:"error,omitempty"`
}

// Diagnostics is the detailed round-trip report.
type Diagnostics struct {
	ServerTime      time.Time `json:"serverTime"`
	PostgresVersion string    `json:"postgresVersion"`
	DatabaseName    string    `json:"databaseName"`
	CurrentUser     string    `json:"currentUser"`
	ConnectionTime  int64     `json:"connectionTimeMs"`
	Pool            PoolStats `json:"pool"`
}

func statsOf(pool *pgxpool.Pool) PoolStats {
	s := pool.Stat()
	return PoolStats{
		Total:   s.TotalConns(),
		Idle:    s.IdleConns(),
		Waiting: s.EmptyAcquireCount(),
	}
}

// HealthCheck runs a cheap parameterized probe and reports pool statistics.
// A failing probe yields an unhealthy report, not an error, so callers can
// always render something.
func HealthCheck(ctx context.Context, pool *pgxpool.Pool) Health {
	h := Health{Timestamp: time.Now().UTC(), Pool: statsOf(pool)}
	var status string
	if err := pool.QueryRow(ctx, `SELECT $1::text AS status`, "healthy").Scan(&status); err != nil {
		h.Status = "unhealthy"
		h.Error = err.Error()
		return h
	}
	h.Status = "healthy"
	if status == "healthy" {
		h.Database = "connected"
	} else {
		h.Database = "unknown"
	}
	return h
}

// TestConnection performs the detailed round-trip diagnostic query.
func TestConnection(ctx context.Context, pool *pgxpool.Pool) (*Diagnostics, error) {
	start := time.Now()
	d := &Diagnostics{}
	err := pool.QueryRow(ctx, `
		SELECT now() AS server_time,
		       version() AS postgres_version,
		       current_database() AS database_name,
		       current_user AS current_user
	`).Scan(&d.ServerTime, &d.PostgresVersion, &d.DatabaseName, &d.CurrentUser)
	if err != nil {
		return nil, err
	}
	d.ConnectionTime = time.Since(start).Milliseconds()
	d.Pool = statsOf(pool)
	return d, nil
}
