package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maestro-run/maestro/pkg/models"
)

// CreateAgent handles POST /agents.
func (s *Server) CreateAgent(c *gin.Context) {
	var def models.AgentDefinition
	if err := c.ShouldBindJSON(&def); err != nil {
		writeBadRequest(c, err.Error())
		return
	}
	created, err := s.registry.Create(c.Request.Context(), def)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListAgents handles GET /agents with optional kind/status/capability
// filters.
func (s *Server) ListAgents(c *gin.Context) {
	filters := models.AgentFilters{
		Kind:       c.Query("kind"),
		Status:     c.Query("status"),
		Capability: c.Query("capability"),
	}
	agents, err := s.registry.List(c.Request.Context(), filters)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"agents": agents, "count": len(agents)})
}

// GetAgent handles GET /agents/:id.
func (s *Server) GetAgent(c *gin.Context) {
	a, err := s.registry.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// UpdateAgent handles PUT /agents/:id.
func (s *Server) UpdateAgent(c *gin.Context) {
	var patch models.AgentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		writeBadRequest(c, err.Error())
		return
	}
	updated, err := s.registry.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteAgent handles DELETE /agents/:id.
func (s *Server) DeleteAgent(c *gin.Context) {
	if err := s.registry.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// StartAgent handles POST /agents/:id/start.
func (s *Server) StartAgent(c *gin.Context) {
	a, err := s.registry.Start(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// StopAgent handles POST /agents/:id/stop.
func (s *Server) StopAgent(c *gin.Context) {
	a, err := s.registry.Stop(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}
