package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/conductor/pkg/definition"
	"github.com/codeready-toolchain/conductor/pkg/models"
)

// CreateDefinitionRequest is the body of POST /api/v1/definitions.
type CreateDefinitionRequest struct {
	Name        string         `json:"name" binding:"required"`
	Description string         `json:"description"`
	Config      map[string]any `json:"config" binding:"required"`
	Tags        []string       `json:"tags"`
}

// listDefinitionsHandler handles GET /api/v1/definitions.
func (s *Server) listDefinitionsHandler(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	defs, err := s.definitions.ListDefinitions(c.Request.Context(), activeOnly)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"definitions": defs, "count": len(defs)})
}

// createDefinitionHandler handles POST /api/v1/definitions. The config is
// compiled during admission; invalid definitions never reach storage.
func (s *Server) createDefinitionHandler(c *gin.Context) {
	var req CreateDefinitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	def, err := s.definitions.CreateDefinition(c.Request.Context(), req.Name, req.Description, req.Config, req.Tags)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, def)
}

// getDefinitionHandler handles GET /api/v1/definitions/:name.
func (s *Server) getDefinitionHandler(c *gin.Context) {
	def, err := s.definitions.GetDefinitionByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, def)
}

// validateDefinitionHandler handles POST /api/v1/definitions/:name/validate.
// With a JSON body the posted config is validated; with an empty body the
// stored config is re-checked against the current handler registry. The
// verdict is always a 200; only transport problems produce error statuses.
func (s *Server) validateDefinitionHandler(c *gin.Context) {
	config, err := s.validationTarget(c)
	if err != nil {
		return // response already written
	}

	compiled, err := definition.Compile(config, s.registry)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"valid": false, "errors": definition.ErrorList(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid":   true,
		"version": compiled.Version,
		"nodes":   len(compiled.Nodes),
	})
}

// validationTarget picks the config to validate: the request body when one
// is supplied, otherwise the stored definition.
func (s *Server) validationTarget(c *gin.Context) (map[string]any, error) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, err
	}

	if len(body) > 0 {
		var config map[string]any
		if err := json.Unmarshal(body, &config); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return nil, err
		}
		return config, nil
	}

	def, err := s.definitions.GetDefinitionByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		mapServiceError(c, err)
		return nil, err
	}
	return def.Config, nil
}

// executeDefinitionHandler handles POST /api/v1/definitions/:name/execute.
// Synchronous by default, returning the full execution result; ?async=true
// queues the run for the worker pool instead.
func (s *Server) executeDefinitionHandler(c *gin.Context) {
	var req definition.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Payload) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "payload is required"})
		return
	}

	name := c.Param("name")
	def, err := s.definitions.GetDefinitionByName(c.Request.Context(), name)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if !def.IsActive {
		c.JSON(http.StatusConflict, gin.H{"error": "definition is not active"})
		return
	}

	compiled, err := definition.Compile(def.Config, s.registry)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	createReq := models.CreateRunRequest{
		Mode:           models.RunModeDefinition,
		DefinitionName: &def.Name,
		TraceID:        req.TraceID,
		Source:         req.Source,
		Environment:    req.Environment,
		Payload:        req.Payload,
	}
	createReq.DefinitionVersion = &def.Version
	if s.retry != nil {
		maxRetries := s.retry.MaxAttemptsPerRun
		createReq.MaxRetries = &maxRetries
	}

	run, err := s.runs.CreateRun(c.Request.Context(), createReq)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if req.IncidentID != "" {
		if err := s.runs.SetIncidentID(c.Request.Context(), run.ID, req.IncidentID); err != nil {
			mapServiceError(c, err)
			return
		}
	}

	if c.Query("async") == "true" || s.defOrch == nil {
		c.JSON(http.StatusAccepted, gin.H{
			"run_id":   run.ID,
			"trace_id": run.TraceID,
			"status":   run.Status,
		})
		return
	}

	if err := s.runs.MarkClaimed(c.Request.Context(), run.ID, s.podID); err != nil {
		mapServiceError(c, err)
		return
	}
	claimed, err := s.runs.GetRun(c.Request.Context(), run.ID, false)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	result, execErr := s.defOrch.Execute(c.Request.Context(), claimed, compiled)
	if result == nil {
		mapServiceError(c, execErr)
		return
	}

	c.JSON(http.StatusOK, result)
}
