package checks

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/codeready-toolchain/conductor/pkg/database"
	"github.com/codeready-toolchain/conductor/pkg/models"
)

// DefaultRegistry returns a registry with the built-in checkers.
func DefaultRegistry(db *stdsql.DB) *Registry {
	r := NewRegistry()
	// Built-in names are unique by construction.
	_ = r.Register(&DatabaseChecker{db: db})
	_ = r.Register(&MemoryChecker{})
	_ = r.Register(&GoroutineChecker{})
	return r
}

// DatabaseChecker probes storage connectivity and pool saturation.
type DatabaseChecker struct {
	db *stdsql.DB
}

func (c *DatabaseChecker) Name() string { return "database" }

func (c *DatabaseChecker) Check(ctx context.Context) (models.CheckResult, error) {
	health, err := database.Health(ctx, c.db)
	if err != nil {
		return models.CheckResult{}, fmt.Errorf("database unreachable: %w", err)
	}

	status := models.CheckOK
	message := "database reachable"
	// A pool running at its limit degrades every stage; surface it early.
	if health.MaxOpenConns > 0 && health.InUse >= health.MaxOpenConns {
		status = models.CheckWarning
		message = "connection pool saturated"
	}

	return models.CheckResult{
		Hostname: hostname(),
		Status:   status,
		Message:  message,
		Metrics: map[string]any{
			"response_time_ms": health.ResponseTime,
			"open_connections": health.OpenConnections,
			"in_use":           health.InUse,
			"idle":             health.Idle,
			"wait_count":       health.WaitCount,
		},
		ExecutedAt: time.Now(),
	}, nil
}

// MemoryChecker reports process heap usage.
type MemoryChecker struct{}

func (c *MemoryChecker) Name() string { return "memory" }

func (c *MemoryChecker) Check(_ context.Context) (models.CheckResult, error) {
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)

	heapMB := stats.HeapAlloc / (1 << 20)
	status := models.CheckOK
	message := fmt.Sprintf("heap in use: %d MiB", heapMB)
	if heapMB > 1024 {
		status = models.CheckWarning
	}

	return models.CheckResult{
		Hostname: hostname(),
		Status:   status,
		Message:  message,
		Metrics: map[string]any{
			"heap_alloc_bytes": stats.HeapAlloc,
			"heap_sys_bytes":   stats.HeapSys,
			"num_gc":           stats.NumGC,
		},
		ExecutedAt: time.Now(),
	}, nil
}

// GoroutineChecker reports scheduler pressure. A runaway goroutine count is
// the usual first symptom of a stuck stage executor.
type GoroutineChecker struct{}

func (c *GoroutineChecker) Name() string { return "goroutines" }

func (c *GoroutineChecker) Check(_ context.Context) (models.CheckResult, error) {
	count := runtime.NumGoroutine()

	status := models.CheckOK
	if count > 5000 {
		status = models.CheckCritical
	} else if count > 1000 {
		status = models.CheckWarning
	}

	return models.CheckResult{
		Hostname:   hostname(),
		Status:     status,
		Message:    fmt.Sprintf("%d goroutines", count),
		Metrics:    map[string]any{"goroutines": count},
		ExecutedAt: time.Now(),
	}, nil
}

func hostname() string {
	h, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return h
}
