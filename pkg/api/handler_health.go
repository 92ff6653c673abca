package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/conductor/pkg/database"
)

// healthHandler handles GET /health. Reports database connectivity and
// worker pool state; a degraded component flips the status to 503 so load
// balancers stop routing here.
func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	resp := gin.H{"service": "conductor", "status": "healthy"}
	healthy := true

	if s.db != nil {
		dbHealth, err := database.Health(ctx, s.db)
		resp["database"] = dbHealth
		if err != nil {
			healthy = false
		}
	}

	if s.pool != nil {
		poolHealth := s.pool.Health()
		resp["queue"] = poolHealth
		if !poolHealth.IsHealthy {
			healthy = false
		}
	}

	if !healthy {
		resp["status"] = "unhealthy"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}
