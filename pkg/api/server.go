// Package api exposes the HTTP surface of the platform: webhook submission,
// run queries, definition management and health.
package api

import (
	"database/sql"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/conductor/pkg/config"
	"github.com/codeready-toolchain/conductor/pkg/definition"
	"github.com/codeready-toolchain/conductor/pkg/nodes"
	"github.com/codeready-toolchain/conductor/pkg/queue"
	"github.com/codeready-toolchain/conductor/pkg/services"
)

// Server holds the handler dependencies. Handlers are thin: bind, validate,
// delegate to a service or orchestrator, map errors.
type Server struct {
	podID       string
	runs        *services.RunService
	definitions *services.DefinitionService
	registry    *nodes.Registry
	executor    queue.RunExecutor
	defOrch     *definition.Orchestrator
	pool        *queue.WorkerPool
	db          *sql.DB
	retry       *config.RetryConfig
}

// ServerConfig wires the server's collaborators.
type ServerConfig struct {
	PodID       string
	Runs        *services.RunService
	Definitions *services.DefinitionService
	Registry    *nodes.Registry
	Executor    queue.RunExecutor
	DefOrch     *definition.Orchestrator
	Pool        *queue.WorkerPool
	DB          *sql.DB
	Retry       *config.RetryConfig
}

// NewServer creates the API server.
func NewServer(cfg ServerConfig) *Server {
	return &Server{
		podID:       cfg.PodID,
		runs:        cfg.Runs,
		definitions: cfg.Definitions,
		registry:    cfg.Registry,
		executor:    cfg.Executor,
		defOrch:     cfg.DefOrch,
		pool:        cfg.Pool,
		db:          cfg.DB,
		retry:       cfg.Retry,
	}
}

// Router builds a gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	s.RegisterRoutes(r)
	return r
}

// RegisterRoutes attaches all handlers to the engine.
func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.Use(securityHeaders())

	r.GET("/health", s.healthHandler)

	v1 := r.Group("/api/v1")
	v1.POST("/pipeline", s.submitPipelineHandler)
	v1.GET("/pipelines", s.listRunsHandler)
	v1.GET("/pipeline/:id", s.getRunHandler)
	v1.POST("/pipeline/:id/resume", s.resumeRunHandler)
	v1.POST("/pipeline/:id/cancel", s.cancelRunHandler)

	v1.GET("/definitions", s.listDefinitionsHandler)
	v1.POST("/definitions", s.createDefinitionHandler)
	v1.GET("/definitions/:name", s.getDefinitionHandler)
	v1.POST("/definitions/:name/validate", s.validateDefinitionHandler)
	v1.POST("/definitions/:name/execute", s.executeDefinitionHandler)
}
