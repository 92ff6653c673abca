package checks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/conductor/ent"
	"github.com/codeready-toolchain/conductor/ent/checkrun"
	"github.com/codeready-toolchain/conductor/pkg/config"
	"github.com/codeready-toolchain/conductor/pkg/models"
)

// ErrNoCheckersRan indicates every checker in the resolved set failed to
// execute. A partially failed batch is not an error; an empty one is.
var ErrNoCheckersRan = errors.New("no checkers could run")

// Runner fans the enabled checker set out with bounded parallelism, records
// every result as a CheckRun row, and aggregates a summary.
type Runner struct {
	registry *Registry
	cfg      *config.ChecksConfig
	db       *ent.Client
}

// NewRunner creates a runner. db may be nil in unit tests; results are then
// aggregated without persistence.
func NewRunner(registry *Registry, cfg *config.ChecksConfig, db *ent.Client) *Runner {
	return &Runner{registry: registry, cfg: cfg, db: db}
}

// Run executes the enabled checkers and returns the aggregated summary.
// Individual checker failures become unknown-status results; Run itself only
// fails when the checker set is invalid or nothing at all could run.
func (r *Runner) Run(ctx context.Context, traceID, runID string) (models.CheckSummary, error) {
	checkers, err := r.registry.Enabled(r.cfg.Enabled)
	if err != nil {
		return models.CheckSummary{}, err
	}
	if len(checkers) == 0 {
		return models.CheckSummary{}, fmt.Errorf("%w: checker set is empty", ErrNoCheckersRan)
	}

	results := make([]models.CheckResult, len(checkers))
	sem := make(chan struct{}, r.cfg.Parallelism)
	var wg sync.WaitGroup

	for i, checker := range checkers {
		wg.Add(1)
		go func(i int, checker Checker) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			results[i] = r.runOne(ctx, checker)
		}(i, checker)
	}
	wg.Wait()

	ran := 0
	for i := range results {
		if results[i].Error == "" || results[i].Status != models.CheckUnknown {
			ran++
		}
		r.persist(ctx, traceID, runID, &results[i])
	}
	if ran == 0 {
		return models.CheckSummary{}, fmt.Errorf("%w: all %d checkers failed to execute", ErrNoCheckersRan, len(checkers))
	}

	summary := models.Summarize(results)
	slog.Info("Checker set completed",
		"trace_id", traceID,
		"checks_run", summary.ChecksRun,
		"passed", summary.ChecksPassed,
		"failed", summary.ChecksFailed)
	return summary, nil
}

// runOne executes a single checker under the per-checker timeout, converting
// execution failures and panics into unknown-status results.
func (r *Runner) runOne(ctx context.Context, checker Checker) (result models.CheckResult) {
	checkCtx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	defer func() {
		if rec := recover(); rec != nil {
			result = models.CheckResult{
				CheckerName: checker.Name(),
				Status:      models.CheckUnknown,
				Error:       fmt.Sprintf("checker panicked: %v", rec),
				ExecutedAt:  time.Now(),
			}
		}
	}()

	result, err := checker.Check(checkCtx)
	result.CheckerName = checker.Name()
	if result.ExecutedAt.IsZero() {
		result.ExecutedAt = time.Now()
	}
	if err != nil {
		slog.Warn("Checker failed to execute", "checker", checker.Name(), "error", err)
		result.Status = models.CheckUnknown
		result.Error = err.Error()
	}
	return result
}

// persist records one result as a CheckRun row. Persistence failures are
// logged, not fatal: the in-memory summary is the stage output of record.
func (r *Runner) persist(ctx context.Context, traceID, runID string, result *models.CheckResult) {
	if r.db == nil {
		return
	}
	create := r.db.CheckRun.Create().
		SetID(uuid.New().String()).
		SetCheckerName(result.CheckerName).
		SetStatus(checkrun.Status(result.Status)).
		SetTraceID(traceID).
		SetExecutedAt(result.ExecutedAt)
	if result.Hostname != "" {
		create.SetHostname(result.Hostname)
	}
	if result.Message != "" {
		create.SetMessage(result.Message)
	}
	if result.Metrics != nil {
		create.SetMetrics(result.Metrics)
	}
	if result.Error != "" {
		create.SetError(result.Error)
	}
	if runID != "" {
		create.SetPipelineRunID(runID)
	}
	if err := create.Exec(ctx); err != nil {
		slog.Warn("Failed to persist check result", "checker", result.CheckerName, "error", err)
	}
}
