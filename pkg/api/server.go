// Package api is the HTTP surface of the orchestration runtime: agent
// CRUD and lifecycle, task submission and status, performance reads,
// alert management, and worker endpoints.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/maestro-run/maestro/pkg/broker"
	"github.com/maestro-run/maestro/pkg/database"
	"github.com/maestro-run/maestro/pkg/distributed"
	"github.com/maestro-run/maestro/pkg/monitor"
	"github.com/maestro-run/maestro/pkg/registry"
	"github.com/maestro-run/maestro/pkg/services"
	"github.com/maestro-run/maestro/pkg/version"
)

// metricReadTimeout bounds every performance read endpoint.
const metricReadTimeout = 10 * time.Second

// Server wires the application services into HTTP handlers.
type Server struct {
	db          *database.Client
	broker      *broker.Client
	registry    *registry.Registry
	tasks       *services.TaskService
	monitor     *monitor.Monitor
	distributed *distributed.Service
	manualTasks *services.ManualTaskService
	errorLogs   *services.ErrorLogService
}

// NewServer creates the API server. broker may be nil when distributed
// execution is disabled.
func NewServer(db *database.Client, brokerClient *broker.Client, reg *registry.Registry, tasks *services.TaskService, mon *monitor.Monitor, dist *distributed.Service, manualTasks *services.ManualTaskService, errorLogs *services.ErrorLogService) *Server {
	return &Server{
		db:          db,
		broker:      brokerClient,
		registry:    reg,
		tasks:       tasks,
		monitor:     mon,
		distributed: dist,
		manualTasks: manualTasks,
		errorLogs:   errorLogs,
	}
}

// Router builds the gin engine with all routes and middleware attached.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestIDMiddleware(), securityHeaders())

	r.GET("/health", s.Health)

	r.POST("/agents", s.CreateAgent)
	r.GET("/agents", s.ListAgents)
	r.GET("/agents/:id", s.GetAgent)
	r.PUT("/agents/:id", s.UpdateAgent)
	r.DELETE("/agents/:id", s.DeleteAgent)
	r.POST("/agents/:id/start", s.StartAgent)
	r.POST("/agents/:id/stop", s.StopAgent)
	r.GET("/agents/:id/performance", s.GetAgentPerformance)

	r.POST("/tasks", s.SubmitTask)
	r.GET("/tasks", s.ListTasks)
	r.GET("/tasks/:id", s.GetTaskStatus)
	r.POST("/tasks/:id/cancel", s.CancelTask)

	r.GET("/system/performance", s.GetSystemPerformance)
	r.GET("/system/alerts", s.ListAlerts)
	r.POST("/system/alerts/:id/acknowledge", s.AcknowledgeAlert)
	r.POST("/system/alerts/:id/resolve", s.ResolveAlert)
	r.GET("/system/manual-tasks", s.ListManualTasks)
	r.POST("/system/manual-tasks/:id/resolve", s.ResolveManualTask)
	r.GET("/system/errors", s.ListErrorLogs)

	r.POST("/workers/register", s.RegisterWorker)
	r.POST("/workers/heartbeat", s.WorkerHeartbeat)
	r.POST("/workers/unregister", s.UnregisterWorker)
	r.GET("/workers", s.ListWorkers)

	return r
}

// Health reports process liveness plus database and broker reachability.
func (s *Server) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status := http.StatusOK
	body := gin.H{"status": "healthy", "version": version.Full()}

	dbHealth, err := database.Health(ctx, s.db.DB())
	body["database"] = dbHealth
	if err != nil {
		status = http.StatusServiceUnavailable
		body["status"] = "unhealthy"
		body["error"] = err.Error()
	}

	if s.broker != nil {
		if s.broker.Available(ctx) {
			body["broker"] = "up"
		} else {
			body["broker"] = "down"
			// Broker loss degrades to local execution, not an outage.
		}
	}

	c.JSON(status, body)
}
