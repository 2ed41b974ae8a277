package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/maestro-run/maestro/pkg/models"
)

// SubmitTask handles POST /tasks.
func (s *Server) SubmitTask(c *gin.Context) {
	var input models.SubmitTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		writeBadRequest(c, err.Error())
		return
	}
	created, err := s.tasks.Submit(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"task_id": created.ID, "status": created.Status})
}

// ListTasks handles GET /tasks with optional status/limit/offset.
func (s *Server) ListTasks(c *gin.Context) {
	filters := models.TaskFilters{Status: c.Query("status")}
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeBadRequest(c, "limit must be a non-negative integer")
			return
		}
		filters.Limit = n
	}
	if v := c.Query("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeBadRequest(c, "offset must be a non-negative integer")
			return
		}
		filters.Offset = n
	}
	tasks, err := s.tasks.List(c.Request.Context(), filters)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks, "count": len(tasks)})
}

// GetTaskStatus handles GET /tasks/:id.
func (s *Server) GetTaskStatus(c *gin.Context) {
	status, err := s.tasks.GetStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// CancelTask handles POST /tasks/:id/cancel.
func (s *Server) CancelTask(c *gin.Context) {
	if err := s.tasks.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"task_id": c.Param("id"), "status": "cancelling"})
}
