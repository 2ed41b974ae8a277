package database

import (
	"context"
	"database/sql"
	"time"
)

// PoolStats is the connection pool portion of a health report.
type PoolStats struct {
	Open         int   `json:"open"`
	InUse        int   `json:"in_use"`
	Idle         int   `json:"idle"`
	MaxOpen      int   `json:"max_open"`
	WaitCount    int64 `json:"wait_count"`
	WaitDuration int64 `json:"wait_duration_ms"`
}

// HealthStatus is the result of a database reachability probe, exposed on
// the health endpoint.
type HealthStatus struct {
	Status       string    `json:"status"`
	ResponseTime int64     `json:"response_time_ms"`
	Pool         PoolStats `json:"pool"`
}

// Health pings the database and reports latency plus pool statistics. On
// ping failure the returned status is "unhealthy" alongside the error so
// callers can still serialize the report.
func Health(ctx context.Context, db *sql.DB) (*HealthStatus, error) {
	start := time.Now()
	if err := db.PingContext(ctx); err != nil {
		return &HealthStatus{
			Status:       "unhealthy",
			ResponseTime: time.Since(start).Milliseconds(),
		}, err
	}

	s := db.Stats()
	return &HealthStatus{
		Status:       "healthy",
		ResponseTime: time.Since(start).Milliseconds(),
		Pool: PoolStats{
			Open:         s.OpenConnections,
			InUse:        s.InUse,
			Idle:         s.Idle,
			MaxOpen:      s.MaxOpenConnections,
			WaitCount:    s.WaitCount,
			WaitDuration: s.WaitDuration.Milliseconds(),
		},
	}, nil
}
