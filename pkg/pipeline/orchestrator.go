package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/codeready-toolchain/conductor/ent"
	"github.com/codeready-toolchain/conductor/ent/pipelinerun"
	"github.com/codeready-toolchain/conductor/pkg/config"
	"github.com/codeready-toolchain/conductor/pkg/events"
	"github.com/codeready-toolchain/conductor/pkg/models"
	"github.com/codeready-toolchain/conductor/pkg/services"
)

// statusAfter maps each stage to the run status reached once it succeeds.
var statusAfter = map[string]pipelinerun.Status{
	models.StageIngest:  pipelinerun.StatusIngested,
	models.StageCheck:   pipelinerun.StatusChecked,
	models.StageAnalyze: pipelinerun.StatusAnalyzed,
	models.StageNotify:  pipelinerun.StatusNotified,
}

// Orchestrator drives the fixed topology over one run at a time. Stages
// execute strictly sequentially; every attempt is persisted before it runs,
// and succeeded stages are never recomputed on resume.
type Orchestrator struct {
	runs      *services.RunService
	stages    *services.StageExecutionService
	publisher *events.Publisher
	retry     *config.RetryConfig
	pipeline  []Stage
}

// NewOrchestrator wires the fixed-topology orchestrator. stages must be in
// execution order.
func NewOrchestrator(runs *services.RunService, stageExecs *services.StageExecutionService, publisher *events.Publisher, retry *config.RetryConfig, stages []Stage) *Orchestrator {
	return &Orchestrator{
		runs:      runs,
		stages:    stageExecs,
		publisher: publisher,
		retry:     retry,
		pipeline:  stages,
	}
}

// Execute runs (or resumes) one pipeline run to a terminal status. The
// returned error is the failure that terminated the run; a completed run
// returns nil.
func (o *Orchestrator) Execute(ctx context.Context, run *ent.PipelineRun) error {
	rc := &RunContext{
		RunID:       run.ID,
		TraceID:     run.TraceID,
		Source:      run.Source,
		Environment: run.Environment,
		Payload:     run.Payload,
		Outputs:     make(map[string]map[string]any),
	}
	if run.IncidentID != nil {
		rc.IncidentID = *run.IncidentID
	}

	for _, stage := range o.pipeline {
		// Cancellation check at the stage boundary.
		if err := ctx.Err(); err != nil {
			return o.failRun(run, rc, stage.Name(), &StageError{
				Stage: stage.Name(), Type: ErrorTypeCancelled, Err: err,
			})
		}

		// Resume: a stage with a succeeded row is re-read, not recomputed.
		// The status still advances so a fully restored run ends terminal.
		prior, err := o.stages.GetSucceeded(ctx, run.ID, stage.Name())
		restored := err == nil
		if restored {
			output, err := o.stages.ResolveOutput(ctx, prior)
			if err != nil {
				return fmt.Errorf("failed to restore stage output: %w", err)
			}
			rc.Outputs[stage.Name()] = output
			o.restoreIncidentID(rc, stage.Name(), output)
		} else {
			if !errors.Is(err, services.ErrNotFound) {
				return fmt.Errorf("failed to scan prior executions: %w", err)
			}
			if err := o.executeStage(ctx, run, rc, stage); err != nil {
				return o.failRun(run, rc, stage.Name(), err)
			}
		}

		if stage.Name() == models.StageIngest && rc.IncidentID != "" && run.IncidentID == nil {
			if err := o.runs.SetIncidentID(ctx, run.ID, rc.IncidentID); err != nil {
				slog.Warn("Failed to record incident on run", "run_id", run.ID, "error", err)
			}
		}

		if err := o.advance(ctx, run, rc, statusAfter[stage.Name()], stage.Name()); err != nil {
			return err
		}
	}

	slog.Info("Pipeline run completed", "run_id", run.ID, "trace_id", run.TraceID)
	return nil
}

// executeStage runs one stage with the retry loop. Attempt numbers continue
// from whatever a previous worker recorded.
func (o *Orchestrator) executeStage(ctx context.Context, run *ent.PipelineRun, rc *RunContext, stage Stage) error {
	name := stage.Name()

	if err := o.runs.SetCurrentStage(ctx, run.ID, name); err != nil {
		return fmt.Errorf("failed to set current stage: %w", err)
	}

	maxAttempt, err := o.stages.MaxAttempt(ctx, run.ID, name)
	if err != nil {
		return err
	}
	attempt := maxAttempt + 1

	budget := run.MaxRetries
	if o.retry.MaxAttemptsPerStage < budget {
		budget = o.retry.MaxAttemptsPerStage
	}
	if budget < 1 {
		budget = 1
	}

	for {
		exec, err := o.stages.CreatePending(ctx, run.ID, name, "", attempt)
		if errors.Is(err, services.ErrAlreadyExists) {
			// Another worker recorded this attempt; take the next number.
			attempt++
			continue
		}
		if err != nil {
			return err
		}

		if s, ok := stage.(skipper); ok {
			if skip, reason := s.ShouldSkip(rc); skip {
				if err := o.stages.MarkSkipped(ctx, exec.ID, reason); err != nil {
					return err
				}
				o.publishStage(ctx, run.ID, name, attempt, "skipped", "", 0)
				slog.Info("Stage skipped", "run_id", run.ID, "stage", name, "reason", reason)
				return nil
			}
		}

		if err := o.stages.MarkRunning(ctx, exec.ID); err != nil {
			return err
		}
		o.publishStage(ctx, run.ID, name, attempt, "running", "", 0)

		timeout := o.retry.StageTimeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}

		started := time.Now()
		stageCtx, cancelStage := context.WithTimeout(ctx, timeout)
		output, execErr := stage.Execute(stageCtx, rc)
		cancelStage()
		elapsed := time.Since(started)

		if execErr == nil {
			if err := o.stages.MarkSucceeded(ctx, exec.ID, output); err != nil {
				return err
			}
			rc.Outputs[name] = output
			o.publishStage(ctx, run.ID, name, attempt, "succeeded", "", elapsed.Milliseconds())
			return nil
		}

		errType, retryable := Classify(execErr)
		stageErr := &StageError{Stage: name, Attempt: attempt, Type: errType, Retryable: retryable, Err: execErr}

		if err := o.stages.MarkFailed(ctx, exec.ID, string(errType), execErr.Error(), "", retryable); err != nil {
			slog.Warn("Failed to record stage failure", "run_id", run.ID, "stage", name, "error", err)
		}
		if err := o.runs.RecordError(ctx, run.ID, string(errType), execErr.Error(), retryable); err != nil {
			slog.Warn("Failed to record run error", "run_id", run.ID, "error", err)
		}
		o.publishStage(ctx, run.ID, name, attempt, "failed", execErr.Error(), elapsed.Milliseconds())

		if !retryable || attempt >= budget {
			return stageErr
		}

		if err := o.runs.SetStatus(ctx, run.ID, pipelinerun.StatusRetrying); err != nil {
			return err
		}
		o.publishRun(ctx, run, rc, string(pipelinerun.StatusRetrying), name, execErr.Error())

		delay := Backoff(o.retry, attempt)
		slog.Info("Retrying stage after backoff",
			"run_id", run.ID, "stage", name, "attempt", attempt, "delay", delay, "error", execErr)

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return &StageError{Stage: name, Attempt: attempt, Type: ErrorTypeCancelled, Err: ctx.Err()}
		}
		attempt++
	}
}

// advance moves the run status forward after a stage succeeded or was
// restored on resume.
func (o *Orchestrator) advance(ctx context.Context, run *ent.PipelineRun, rc *RunContext, status pipelinerun.Status, stage string) error {
	if err := o.runs.SetStatus(ctx, run.ID, status); err != nil {
		return fmt.Errorf("failed to advance run status: %w", err)
	}
	o.publishRun(ctx, run, rc, string(status), stage, "")
	return nil
}

// failRun marks the run failed and reports the terminating error.
func (o *Orchestrator) failRun(run *ent.PipelineRun, rc *RunContext, stage string, cause error) error {
	// The worker's context may already be cancelled; finalization must
	// still land.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var stageErr *StageError
	if errors.As(cause, &stageErr) {
		_ = o.runs.RecordError(ctx, run.ID, string(stageErr.Type), stageErr.Err.Error(), stageErr.Retryable)
	}
	if err := o.runs.SetStatus(ctx, run.ID, pipelinerun.StatusFailed); err != nil {
		slog.Error("Failed to mark run failed", "run_id", run.ID, "error", err)
	}
	o.publishRun(ctx, run, rc, string(pipelinerun.StatusFailed), stage, cause.Error())

	slog.Error("Pipeline run failed",
		"run_id", run.ID, "trace_id", run.TraceID, "stage", stage, "error", cause)
	return cause
}

func (o *Orchestrator) publishRun(ctx context.Context, run *ent.PipelineRun, rc *RunContext, status, stage, errMsg string) {
	if o.publisher == nil {
		return
	}
	if err := o.publisher.PublishRunStatus(ctx, events.RunStatusPayload{
		RunID:      run.ID,
		TraceID:    run.TraceID,
		Status:     status,
		Stage:      stage,
		IncidentID: rc.IncidentID,
		Error:      errMsg,
	}); err != nil {
		slog.Warn("Failed to publish run status", "run_id", run.ID, "error", err)
	}
}

func (o *Orchestrator) publishStage(ctx context.Context, runID, stage string, attempt int, status, errMsg string, durationMs int64) {
	if o.publisher == nil {
		return
	}
	if err := o.publisher.PublishStageStatus(ctx, events.StageStatusPayload{
		RunID:      runID,
		Stage:      stage,
		Attempt:    attempt,
		Status:     status,
		Error:      errMsg,
		DurationMs: durationMs,
	}); err != nil {
		slog.Warn("Failed to publish stage status", "run_id", runID, "stage", stage, "error", err)
	}
}

// restoreIncidentID re-reads the incident reference from a restored ingest
// output so downstream stages see it on resume.
func (o *Orchestrator) restoreIncidentID(rc *RunContext, stage string, output map[string]any) {
	if stage != models.StageIngest || rc.IncidentID != "" {
		return
	}
	if id, ok := output["incident_id"].(string); ok && id != "" {
		rc.IncidentID = id
	}
}
