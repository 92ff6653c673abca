// Conductor server: exposes the HTTP API, runs the queue worker pool,
// and orchestrates alert-processing pipelines.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/codeready-toolchain/conductor/pkg/api"
	"github.com/codeready-toolchain/conductor/pkg/checks"
	"github.com/codeready-toolchain/conductor/pkg/config"
	"github.com/codeready-toolchain/conductor/pkg/database"
	"github.com/codeready-toolchain/conductor/pkg/definition"
	"github.com/codeready-toolchain/conductor/pkg/events"
	"github.com/codeready-toolchain/conductor/pkg/ingest"
	"github.com/codeready-toolchain/conductor/pkg/intel"
	"github.com/codeready-toolchain/conductor/pkg/nodes"
	"github.com/codeready-toolchain/conductor/pkg/notify"
	"github.com/codeready-toolchain/conductor/pkg/pipeline"
	"github.com/codeready-toolchain/conductor/pkg/queue"
	"github.com/codeready-toolchain/conductor/pkg/services"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting conductor",
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database (runs migrations and partial unique indexes)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. One-time startup orphan cleanup for runs this pod left in flight
	if err := queue.RequeueStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to requeue startup orphans", "error", err)
		// Non-fatal; the periodic scan will catch them
	}

	// 4. Domain services
	runService := services.NewRunService(dbClient.Client)
	stageService := services.NewStageExecutionService(dbClient.Client)
	eventPublisher := events.NewPublisher(dbClient.DB())

	// 5. Stage infrastructure: normalizer, checks, intelligence, notify
	normalizer := ingest.NewNormalizer(dbClient.Client, ingest.DefaultRegistry())

	checkRegistry := checks.DefaultRegistry(dbClient.DB())
	checkRunner := checks.NewRunner(checkRegistry, cfg.Checks, dbClient.Client)

	resolver := intel.NewResolver(dbClient.Client, cfg.Intel)
	analyzer := intel.NewAnalyzer(resolver, cfg.Intel, dbClient.Client)

	notifyRegistry := notify.NewRegistry()
	mustRegister(notifyRegistry.Register(notify.NewLogDriver()))
	mustRegister(notifyRegistry.Register(notify.NewWebhookDriver(http.DefaultClient)))
	mustRegister(notifyRegistry.Register(notify.NewPagerDutyDriver(http.DefaultClient)))
	if cfg.Slack.Enabled {
		token := os.Getenv(cfg.Slack.TokenEnv)
		if token == "" {
			slog.Error("Slack notifications enabled but token env is empty", "env", cfg.Slack.TokenEnv)
			os.Exit(1)
		}
		mustRegister(notifyRegistry.Register(notify.NewSlackDriver(token)))
		slog.Info("Slack notification driver registered")
	}
	dispatcher := notify.NewDispatcher(dbClient.Client, notifyRegistry, cfg.Notify)

	// 6. Fixed-topology orchestrator
	fixedOrch := pipeline.NewOrchestrator(runService, stageService, eventPublisher, cfg.Retry, []pipeline.Stage{
		pipeline.NewIngestStage(normalizer),
		pipeline.NewCheckStage(checkRunner),
		pipeline.NewAnalyzeStage(analyzer, dbClient.Client),
		pipeline.NewNotifyStage(dispatcher, dbClient.Client, cfg.System),
	})

	// 7. Node registry and definition orchestrator
	nodeRegistry := nodes.NewRegistry()
	mustRegister(nodeRegistry.Register(nodes.NewIngestNode(normalizer)))
	mustRegister(nodeRegistry.Register(nodes.NewContextNode(checkRegistry, cfg.Checks, dbClient.Client)))
	mustRegister(nodeRegistry.Register(nodes.NewIntelligenceNode(resolver, cfg.Intel, dbClient.Client)))
	mustRegister(nodeRegistry.Register(nodes.NewNotifyNode(dispatcher, cfg.System)))
	mustRegister(nodeRegistry.Register(nodes.NewTransformNode()))
	slog.Info("Node handlers registered", "types", nodeRegistry.Types())

	defOrch := definition.NewOrchestrator(runService, stageService, eventPublisher, cfg.Retry)
	definitionService := services.NewDefinitionService(dbClient.Client, definition.Validator(nodeRegistry))

	// 8. Worker pool
	executor := queue.NewExecutor(fixedOrch, defOrch, definitionService, nodeRegistry)
	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, executor)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 9. HTTP server
	apiServer := api.NewServer(api.ServerConfig{
		PodID:       podID,
		Runs:        runService,
		Definitions: definitionService,
		Registry:    nodeRegistry,
		Executor:    executor,
		DefOrch:     defOrch,
		Pool:        workerPool,
		DB:          dbClient.DB(),
		Retry:       cfg.Retry,
	})

	httpServer := &http.Server{
		Addr:    ":" + httpPort,
		Handler: apiServer.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Conductor started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown: workers finish their current runs first
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded, incomplete runs will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}

// mustRegister aborts startup on duplicate registry entries. Registrations
// are hardcoded above, so a failure is a programming error.
func mustRegister(err error) {
	if err != nil {
		slog.Error("Failed to register component", "error", err)
		os.Exit(1)
	}
}
