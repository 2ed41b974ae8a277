package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/maestro-run/maestro/pkg/monitor"
)

const defaultWindowHours = 24

// GetAgentPerformance handles GET /agents/:id/performance?window_hours=N.
func (s *Server) GetAgentPerformance(c *gin.Context) {
	window, ok := windowFromQuery(c)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), metricReadTimeout)
	defer cancel()

	report, err := s.monitor.GetAgentPerformance(ctx, c.Param("id"), window)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetSystemPerformance handles GET /system/performance.
func (s *Server) GetSystemPerformance(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), metricReadTimeout)
	defer cancel()

	report, err := s.monitor.GetSystemPerformance(ctx)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// ListAlerts handles GET /system/alerts?severity=&resolved=.
func (s *Server) ListAlerts(c *gin.Context) {
	filters := monitor.AlertFilters{Severity: c.Query("severity")}
	if v := c.Query("resolved"); v != "" {
		resolved, err := strconv.ParseBool(v)
		if err != nil {
			writeBadRequest(c, "resolved must be true or false")
			return
		}
		filters.Resolved = &resolved
	}
	alerts, err := s.monitor.ListAlerts(c.Request.Context(), filters)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"alerts": alerts, "count": len(alerts)})
}

// AcknowledgeAlert handles POST /system/alerts/:id/acknowledge.
func (s *Server) AcknowledgeAlert(c *gin.Context) {
	alert, err := s.monitor.AcknowledgeAlert(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, alert)
}

// ResolveAlert handles POST /system/alerts/:id/resolve.
func (s *Server) ResolveAlert(c *gin.Context) {
	alert, err := s.monitor.ResolveAlert(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, alert)
}

// ListManualTasks handles GET /system/manual-tasks.
func (s *Server) ListManualTasks(c *gin.Context) {
	open, err := s.manualTasks.ListOpen(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"manual_tasks": open, "count": len(open)})
}

// ResolveManualTask handles POST /system/manual-tasks/:id/resolve.
func (s *Server) ResolveManualTask(c *gin.Context) {
	mt, err := s.manualTasks.Resolve(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, mt)
}

// ListErrorLogs handles GET /system/errors?source=&limit=.
func (s *Server) ListErrorLogs(c *gin.Context) {
	limit := 100
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeBadRequest(c, "limit must be a non-negative integer")
			return
		}
		limit = n
	}
	rows, err := s.errorLogs.List(c.Request.Context(), c.Query("source"), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"errors": rows, "count": len(rows)})
}

// windowFromQuery parses window_hours, defaulting to 24.
func windowFromQuery(c *gin.Context) (time.Duration, bool) {
	hours := defaultWindowHours
	if v := c.Query("window_hours"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeBadRequest(c, "window_hours must be a positive integer")
			return 0, false
		}
		hours = n
	}
	return time.Duration(hours) * time.Hour, true
}
