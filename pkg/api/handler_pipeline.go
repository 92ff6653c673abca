package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/conductor/pkg/models"
)

// submitPipelineHandler handles POST /api/v1/pipeline. The body is the raw
// webhook payload; ?source= hints the normalizer driver. By default the run
// executes synchronously and the full run record is returned; with
// ?async=true the run is queued and only its identifiers come back.
func (s *Server) submitPipelineHandler(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(payload) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "payload is required"})
		return
	}

	req := models.CreateRunRequest{
		Mode:        models.RunModeFixed,
		Source:      c.Query("source"),
		Environment: c.Query("environment"),
		TraceID:     c.Query("trace_id"),
		Payload:     payload,
	}
	if s.retry != nil {
		maxRetries := s.retry.MaxAttemptsPerRun
		req.MaxRetries = &maxRetries
	}

	run, err := s.runs.CreateRun(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	if c.Query("async") == "true" || s.executor == nil {
		c.JSON(http.StatusAccepted, gin.H{
			"run_id":   run.ID,
			"trace_id": run.TraceID,
			"status":   run.Status,
		})
		return
	}

	// Claim the run before executing inline so a pool worker cannot pick
	// it up concurrently.
	if err := s.runs.MarkClaimed(c.Request.Context(), run.ID, s.podID); err != nil {
		mapServiceError(c, err)
		return
	}
	claimed, err := s.runs.GetRun(c.Request.Context(), run.ID, false)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	result := s.executor.Execute(c.Request.Context(), claimed)

	final, err := s.runs.GetRun(c.Request.Context(), run.ID, true)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	resp := gin.H{"run": final}
	if result != nil && result.Error != nil {
		resp["error"] = result.Error.Error()
	}
	c.JSON(http.StatusOK, resp)
}

// listRunsHandler handles GET /api/v1/pipelines.
func (s *Server) listRunsHandler(c *gin.Context) {
	var filter models.RunFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	runs, err := s.runs.ListRuns(c.Request.Context(), filter)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"runs": runs, "count": len(runs)})
}

// getRunHandler handles GET /api/v1/pipeline/:id, including stage executions.
func (s *Server) getRunHandler(c *gin.Context) {
	run, err := s.runs.GetRun(c.Request.Context(), c.Param("id"), true)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, run)
}

// resumeRunHandler handles POST /api/v1/pipeline/:id/resume. The run returns
// to the queue; succeeded stages keep their rows and are not re-executed.
func (s *Server) resumeRunHandler(c *gin.Context) {
	run, err := s.runs.Resume(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"run_id":   run.ID,
		"trace_id": run.TraceID,
		"status":   run.Status,
	})
}

// cancelRunHandler handles POST /api/v1/pipeline/:id/cancel. Cancellation
// only reaches runs executing on this instance; anything else is a conflict.
func (s *Server) cancelRunHandler(c *gin.Context) {
	runID := c.Param("id")

	if s.pool != nil && s.pool.CancelRun(runID) {
		c.JSON(http.StatusOK, gin.H{"run_id": runID, "status": "cancelling"})
		return
	}

	if _, err := s.runs.GetRun(c.Request.Context(), runID, false); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusConflict, gin.H{"error": "run is not executing on this instance"})
}
