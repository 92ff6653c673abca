// Package queue provides the async execution backbone: a worker pool that
// claims pending pipeline runs from the database and drives them to a
// terminal status.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/codeready-toolchain/conductor/ent"
	"github.com/codeready-toolchain/conductor/ent/pipelinerun"
)

// Sentinel errors for queue operations.
var (
	// ErrNoRunsAvailable indicates no claimable runs are in the queue.
	ErrNoRunsAvailable = errors.New("no runs available")

	// ErrAtCapacity indicates the global concurrent run limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// RunExecutor drives one claimed run to a terminal status. The executor owns
// the whole run lifecycle: stage/node execution, retries, and the terminal
// status write. The worker only handles claiming, heartbeat, and cleanup.
type RunExecutor interface {
	Execute(ctx context.Context, run *ent.PipelineRun) *ExecutionResult
}

// ExecutionResult is the terminal state of one run. All intermediate state
// (StageExecutions, incident updates, events) was already written by the
// executor during processing.
type ExecutionResult struct {
	Status pipelinerun.Status
	Error  error
}

// inflightStatuses are the run statuses counted against the global
// concurrency limit.
var inflightStatuses = []pipelinerun.Status{
	pipelinerun.StatusIngested,
	pipelinerun.StatusChecked,
	pipelinerun.StatusAnalyzed,
	pipelinerun.StatusRetrying,
}

// terminalStatuses are the run statuses a worker never touches again.
var terminalStatuses = []pipelinerun.Status{
	pipelinerun.StatusNotified,
	pipelinerun.StatusCompleted,
	pipelinerun.StatusFailed,
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveRuns       int            `json:"active_runs"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentRunID  string    `json:"current_run_id,omitempty"`
	RunsProcessed int       `json:"runs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
