package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maestro-run/maestro/pkg/models"
)

type heartbeatRequest struct {
	WorkerID    string `json:"worker_id" binding:"required"`
	ActiveTasks int    `json:"active_tasks"`
}

type unregisterRequest struct {
	WorkerID string `json:"worker_id" binding:"required"`
}

// RegisterWorker handles POST /workers/register.
func (s *Server) RegisterWorker(c *gin.Context) {
	var input models.RegisterWorkerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		writeBadRequest(c, err.Error())
		return
	}
	w, err := s.distributed.RegisterWorker(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, w)
}

// WorkerHeartbeat handles POST /workers/heartbeat.
func (s *Server) WorkerHeartbeat(c *gin.Context) {
	var req heartbeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, err.Error())
		return
	}
	if err := s.distributed.Heartbeat(c.Request.Context(), req.WorkerID, req.ActiveTasks); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"worker_id": req.WorkerID, "status": "ok"})
}

// UnregisterWorker handles POST /workers/unregister.
func (s *Server) UnregisterWorker(c *gin.Context) {
	var req unregisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, err.Error())
		return
	}
	if err := s.distributed.Unregister(c.Request.Context(), req.WorkerID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"worker_id": req.WorkerID, "status": "unregistered"})
}

// ListWorkers handles GET /workers.
func (s *Server) ListWorkers(c *gin.Context) {
	workers, err := s.distributed.ListWorkers(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"workers": workers, "count": len(workers)})
}
