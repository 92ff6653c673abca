package definition

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
	"github.com/codeready-toolchain/conductor/pkg/nodes"
	"github.com/codeready-toolchain/conductor/pkg/pipeline"
	"github.com/codeready-toolchain/conductor/pkg/services"
)

// Orchestrator drives a compiled definition over one run. Nodes execute
// strictly sequentially in declared order; each attempt is persisted as a
// StageExecution row before it runs. Unlike the fixed topology, failed
// definition runs are not resumable.
type Orchestrator struct {
	runs      *services.RunService
	stages    *services.StageExecutionService
	publisher *events.Publisher
	retry     *config.RetryConfig
}

// NewOrchestrator wires the definition orchestrator.
func NewOrchestrator(runs *services.RunService, stageExecs *services.StageExecutionService, publisher *events.Publisher, retry *config.RetryConfig) *Orchestrator {
	return &Orchestrator{
		runs:      runs,
		stages:    stageExecs,
		publisher: publisher,
		retry:     retry,
	}
}

// Execute runs one definition-mode run to a terminal status. The returned
// result is always populated; the error reports the failure that terminated
// a failed run.
func (o *Orchestrator) Execute(ctx context.Context, run *ent.PipelineRun, compiled *CompiledPipeline) (*ExecutionResult, error) {
	started := time.Now()

	nc := &nodes.NodeContext{
		TraceID:         run.TraceID,
		RunID:           run.ID,
		Payload:         run.Payload,
		PreviousOutputs: make(map[string]map[string]any),
		Environment:     run.Environment,
		Source:          run.Source,
	}
	if run.IncidentID != nil {
		nc.IncidentID = *run.IncidentID
	}

	result := &ExecutionResult{
		RunID:         run.ID,
		TraceID:       run.TraceID,
		ExecutedNodes: []string{},
		SkippedNodes:  []string{},
		NodeResults:   make(map[string]NodeResult),
	}

	// nodeErrors feeds the skip predicates. Skipped nodes are not flagged;
	// only a node whose execution produced errors counts.
	nodeErrors := make(map[string]bool, len(compiled.Nodes))

	for _, node := range compiled.Nodes {
		// Cancellation check at the node boundary.
		if err := ctx.Err(); err != nil {
			cause := &pipeline.StageError{Stage: node.Stage, Type: pipeline.ErrorTypeCancelled, Err: err}
			return o.failRun(run, nc, result, started, node, cause), cause
		}

		// A requeued run may carry succeeded rows from a previous worker.
		// Those nodes are restored, never recomputed.
		if prior, err := o.stages.GetSucceededNode(ctx, run.ID, node.ID); err == nil {
			output, err := o.stages.ResolveOutput(ctx, prior)
			if err != nil {
				return result, fmt.Errorf("failed to restore node output: %w", err)
			}
			nc.PreviousOutputs[node.ID] = output
			o.hoistIncidentID(ctx, run, nc, output)
			result.ExecutedNodes = append(result.ExecutedNodes, node.ID)
			result.NodeResults[node.ID] = NodeResult{Output: output}
			continue
		} else if !errors.Is(err, services.ErrNotFound) {
			return result, fmt.Errorf("failed to scan prior node executions: %w", err)
		}

		if skip, reason := o.shouldSkip(node, nodeErrors); skip {
			if err := o.recordSkip(ctx, run.ID, node, reason); err != nil {
				return result, err
			}
			result.SkippedNodes = append(result.SkippedNodes, node.ID)
			result.NodeResults[node.ID] = NodeResult{Skipped: true, SkipReason: reason}
			slog.Info("Node skipped", "run_id", run.ID, "node_id", node.ID, "reason", reason)
			continue
		}

		output, durationMs, execErr := o.executeNode(ctx, run, compiled, node, nc)
		result.ExecutedNodes = append(result.ExecutedNodes, node.ID)

		if execErr != nil {
			nodeErrors[node.ID] = true
			result.NodeResults[node.ID] = NodeResult{
				Errors:     []string{execErr.Error()},
				DurationMs: durationMs,
			}
			if node.Required {
				return o.failRun(run, nc, result, started, node, execErr), execErr
			}
			slog.Warn("Optional node failed, continuing",
				"run_id", run.ID, "node_id", node.ID, "error", execErr)
			continue
		}

		nc.PreviousOutputs[node.ID] = output
		result.NodeResults[node.ID] = NodeResult{Output: output, DurationMs: durationMs}
		o.hoistIncidentID(ctx, run, nc, output)
	}

	if err := o.runs.SetStatus(ctx, run.ID, pipelinerun.StatusCompleted); err != nil {
		return result, fmt.Errorf("failed to complete run: %w", err)
	}
	result.Status = string(pipelinerun.StatusCompleted)
	result.DurationMs = time.Since(started).Milliseconds()
	o.publishRun(ctx, run, nc, string(pipelinerun.StatusCompleted), "", "")

	slog.Info("Definition run completed",
		"run_id", run.ID, "trace_id", run.TraceID,
		"executed", len(result.ExecutedNodes), "skipped", len(result.SkippedNodes))
	return result, nil
}

// executeNode runs one node with the retry loop. Attempt numbers continue
// from whatever a previous worker recorded for this node.
func (o *Orchestrator) executeNode(ctx context.Context, run *ent.PipelineRun, compiled *CompiledPipeline, node CompiledNode, nc *nodes.NodeContext) (map[string]any, int64, error) {
	if err := o.runs.SetCurrentStage(ctx, run.ID, node.Stage); err != nil {
		return nil, 0, fmt.Errorf("failed to set current stage: %w", err)
	}

	maxAttempt, err := o.stages.MaxNodeAttempt(ctx, run.ID, node.ID)
	if err != nil {
		return nil, 0, err
	}
	attempt := maxAttempt + 1

	budget := compiled.MaxRetries
	if run.MaxRetries < budget {
		budget = run.MaxRetries
	}
	if budget < 1 {
		budget = 1
	}

	for {
		exec, err := o.stages.CreatePending(ctx, run.ID, node.Stage, node.ID, attempt)
		if errors.Is(err, services.ErrAlreadyExists) {
			attempt++
			continue
		}
		if err != nil {
			return nil, 0, err
		}

		if err := o.stages.MarkRunning(ctx, exec.ID); err != nil {
			return nil, 0, err
		}
		o.publishStage(ctx, run.ID, node, attempt, "running", "", 0)

		nodeCtx, cancel := context.WithTimeout(ctx, compiled.Timeout)
		started := time.Now()
		output, execErr := node.Handler.Execute(nodeCtx, node.Config, nc)
		elapsed := time.Since(started)
		cancel()

		if execErr == nil {
			if err := o.stages.MarkSucceeded(ctx, exec.ID, output); err != nil {
				return nil, 0, err
			}
			o.publishStage(ctx, run.ID, node, attempt, "succeeded", "", elapsed.Milliseconds())
			return output, elapsed.Milliseconds(), nil
		}

		errType, retryable := pipeline.Classify(execErr)
		stageErr := &pipeline.StageError{Stage: node.Stage, Attempt: attempt, Type: errType, Retryable: retryable, Err: execErr}

		if err := o.stages.MarkFailed(ctx, exec.ID, string(errType), execErr.Error(), "", retryable); err != nil {
			slog.Warn("Failed to record node failure", "run_id", run.ID, "node_id", node.ID, "error", err)
		}
		if err := o.runs.RecordError(ctx, run.ID, string(errType), execErr.Error(), retryable); err != nil {
			slog.Warn("Failed to record run error", "run_id", run.ID, "error", err)
		}
		o.publishStage(ctx, run.ID, node, attempt, "failed", execErr.Error(), elapsed.Milliseconds())

		if !retryable || attempt >= budget {
			return nil, elapsed.Milliseconds(), stageErr
		}

		if err := o.runs.SetStatus(ctx, run.ID, pipelinerun.StatusRetrying); err != nil {
			return nil, 0, err
		}
		o.publishRun(ctx, run, nc, string(pipelinerun.StatusRetrying), node.ID, execErr.Error())

		delay := pipeline.Backoff(o.retry, attempt)
		slog.Info("Retrying node after backoff",
			"run_id", run.ID, "node_id", node.ID, "attempt", attempt, "delay", delay, "error", execErr)

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, elapsed.Milliseconds(), &pipeline.StageError{Stage: node.Stage, Attempt: attempt, Type: pipeline.ErrorTypeCancelled, Err: ctx.Err()}
		}
		attempt++
	}
}

// shouldSkip evaluates skip_if_errors and skip_if_condition against the
// error state accumulated so far.
func (o *Orchestrator) shouldSkip(node CompiledNode, nodeErrors map[string]bool) (bool, string) {
	for _, ref := range node.SkipIfErrors {
		if nodeErrors[ref] {
			return true, fmt.Sprintf("node %s has errors", ref)
		}
	}
	if node.SkipIfCondition != nil && node.SkipIfCondition.Evaluate(nodeErrors) {
		return true, fmt.Sprintf("condition on node %s", node.SkipIfCondition.NodeID)
	}
	return false, ""
}

// recordSkip persists the skip decision as a durable StageExecution row.
func (o *Orchestrator) recordSkip(ctx context.Context, runID string, node CompiledNode, reason string) error {
	maxAttempt, err := o.stages.MaxNodeAttempt(ctx, runID, node.ID)
	if err != nil {
		return err
	}
	exec, err := o.stages.CreatePending(ctx, runID, node.Stage, node.ID, maxAttempt+1)
	if err != nil {
		return err
	}
	if err := o.stages.MarkSkipped(ctx, exec.ID, reason); err != nil {
		return err
	}
	o.publishStage(ctx, runID, node, maxAttempt+1, "skipped", "", 0)
	return nil
}

// hoistIncidentID lifts an incident reference produced by a node into the
// shared context and onto the run, so downstream nodes and API readers see it.
func (o *Orchestrator) hoistIncidentID(ctx context.Context, run *ent.PipelineRun, nc *nodes.NodeContext, output map[string]any) {
	if nc.IncidentID != "" || output == nil {
		return
	}
	id, ok := output["incident_id"].(string)
	if !ok || id == "" {
		return
	}
	nc.IncidentID = id
	if err := o.runs.SetIncidentID(ctx, run.ID, id); err != nil {
		slog.Warn("Failed to record incident on run", "run_id", run.ID, "error", err)
	}
}

// failRun marks the run failed and finalizes the result.
func (o *Orchestrator) failRun(run *ent.PipelineRun, nc *nodes.NodeContext, result *ExecutionResult, started time.Time, node CompiledNode, cause error) *ExecutionResult {
	// The worker's context may already be cancelled; finalization must
	// still land.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := o.runs.SetStatus(ctx, run.ID, pipelinerun.StatusFailed); err != nil {
		slog.Error("Failed to mark run failed", "run_id", run.ID, "error", err)
	}
	result.Status = string(pipelinerun.StatusFailed)
	result.Error = cause.Error()
	result.DurationMs = time.Since(started).Milliseconds()
	o.publishRun(ctx, run, nc, string(pipelinerun.StatusFailed), node.ID, cause.Error())

	slog.Error("Definition run failed",
		"run_id", run.ID, "trace_id", run.TraceID, "node_id", node.ID, "error", cause)
	return result
}

func (o *Orchestrator) publishRun(ctx context.Context, run *ent.PipelineRun, nc *nodes.NodeContext, status, stage, errMsg string) {
	if o.publisher == nil {
		return
	}
	if err := o.publisher.PublishRunStatus(ctx, events.RunStatusPayload{
		RunID:      run.ID,
		TraceID:    run.TraceID,
		Status:     status,
		Stage:      stage,
		IncidentID: nc.IncidentID,
		Error:      errMsg,
	}); err != nil {
		slog.Warn("Failed to publish run status", "run_id", run.ID, "error", err)
	}
}

func (o *Orchestrator) publishStage(ctx context.Context, runID string, node CompiledNode, attempt int, status, errMsg string, durationMs int64) {
	if o.publisher == nil {
		return
	}
	if err := o.publisher.PublishStageStatus(ctx, events.StageStatusPayload{
		RunID:      runID,
		Stage:      node.Stage,
		NodeID:     node.ID,
		Attempt:    attempt,
		Status:     status,
		Error:      errMsg,
		DurationMs: durationMs,
	}); err != nil {
		slog.Warn("Failed to publish stage status", "run_id", runID, "node_id", node.ID, "error", err)
	}
}
