package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/conductor/ent"
	"github.com/codeready-toolchain/conductor/ent/stageexecution"
)

// IdempotencyKey derives the unique key for one stage attempt. Inserting a
// second row with the same key fails on the unique constraint, which is how
// double execution of an attempt is detected.
func IdempotencyKey(runID, stage string, attempt int) string {
	sum := sha256.Sum256(fmt.Appendf(nil, "%s|%s|%d", runID, stage, attempt))
	return hex.EncodeToString(sum[:])
}

// StageExecutionService manages per-stage attempt records
type StageExecutionService struct {
	client *ent.Client
}

// NewStageExecutionService creates a new StageExecutionService
func NewStageExecutionService(client *ent.Client) *StageExecutionService {
	return &StageExecutionService{client: client}
}

// CreatePending inserts the durable record for a stage attempt before the
// stage runs. nodeID is empty for fixed-topology stages; when set, it scopes
// the idempotency key so two definition nodes of the same type keep separate
// attempt sequences. A constraint violation means this attempt was already
// recorded and maps to ErrAlreadyExists
func (s *StageExecutionService) CreatePending(ctx context.Context, runID, stage, nodeID string, attempt int) (*ent.StageExecution, error) {
	if runID == "" {
		return nil, NewValidationError("pipeline_run_id", "required")
	}
	if stage == "" {
		return nil, NewValidationError("stage", "required")
	}
	if attempt < 1 {
		return nil, NewValidationError("attempt", "must be positive")
	}

	scope := stage
	if nodeID != "" {
		scope = nodeID
	}

	writeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	builder := s.client.StageExecution.Create().
		SetID(uuid.New().String()).
		SetPipelineRunID(runID).
		SetStage(stage).
		SetAttempt(attempt).
		SetIdempotencyKey(IdempotencyKey(runID, scope, attempt)).
		SetStatus(stageexecution.StatusPending)

	if nodeID != "" {
		builder.SetNodeID(nodeID)
	}

	exec, err := builder.Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: attempt %d of stage %s for run %s", ErrAlreadyExists, attempt, stage, runID)
		}
		return nil, fmt.Errorf("failed to create stage execution: %w", err)
	}

	return exec, nil
}

// MarkRunning transitions a pending attempt to running
func (s *StageExecutionService) MarkRunning(ctx context.Context, executionID string) error {
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := s.client.StageExecution.UpdateOneID(executionID).
		SetStatus(stageexecution.StatusRunning).
		SetStartedAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark stage execution running: %w", err)
	}
	return nil
}

// inlineOutputLimit is the encoded size above which a stage output moves to
// the stage_outputs table instead of the inline snapshot column.
const inlineOutputLimit = 8 * 1024

// MarkSucceeded records the stage output and closes the attempt. Small
// outputs are inlined on the row; anything above inlineOutputLimit is stored
// out of row and referenced through output_ref
func (s *StageExecutionService) MarkSucceeded(ctx context.Context, executionID string, output map[string]any) error {
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	exec, err := s.client.StageExecution.Get(writeCtx, executionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get stage execution: %w", err)
	}

	now := time.Now()
	update := s.client.StageExecution.UpdateOneID(executionID).
		SetStatus(stageexecution.StatusSucceeded).
		SetCompletedAt(now)

	if output != nil {
		encoded, err := json.Marshal(output)
		if err != nil {
			return fmt.Errorf("failed to encode stage output: %w", err)
		}
		if len(encoded) <= inlineOutputLimit {
			update = update.SetOutputSnapshot(output)
		} else {
			stored, err := s.client.StageOutput.Create().
				SetID(uuid.New().String()).
				SetPipelineRunID(exec.PipelineRunID).
				SetData(output).
				Save(writeCtx)
			if err != nil {
				return fmt.Errorf("failed to store stage output: %w", err)
			}
			update = update.SetOutputRef(stored.ID)
		}
	}
	if exec.StartedAt != nil {
		update = update.SetDurationMs(int(now.Sub(*exec.StartedAt).Milliseconds()))
	}

	return update.Exec(writeCtx)
}

// ResolveOutput returns the output of a succeeded attempt, loading it from
// the out-of-row store when the attempt carries an output_ref
func (s *StageExecutionService) ResolveOutput(ctx context.Context, exec *ent.StageExecution) (map[string]any, error) {
	if exec.OutputRef == "" {
		return exec.OutputSnapshot, nil
	}

	stored, err := s.client.StageOutput.Get(ctx, exec.OutputRef)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: stage output %s", ErrNotFound, exec.OutputRef)
		}
		return nil, fmt.Errorf("failed to load stage output: %w", err)
	}
	return stored.Data, nil
}

// MarkFailed records the failure classification on the attempt
func (s *StageExecutionService) MarkFailed(ctx context.Context, executionID, errorType, message, stack string, retryable bool) error {
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	exec, err := s.client.StageExecution.Get(writeCtx, executionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get stage execution: %w", err)
	}

	now := time.Now()
	update := s.client.StageExecution.UpdateOneID(executionID).
		SetStatus(stageexecution.StatusFailed).
		SetErrorType(errorType).
		SetErrorMessage(message).
		SetErrorRetryable(retryable).
		SetCompletedAt(now)

	if stack != "" {
		update = update.SetErrorStack(stack)
	}
	if exec.StartedAt != nil {
		update = update.SetDurationMs(int(now.Sub(*exec.StartedAt).Milliseconds()))
	}

	return update.Exec(writeCtx)
}

// MarkSkipped closes the attempt without executing it
func (s *StageExecutionService) MarkSkipped(ctx context.Context, executionID, reason string) error {
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := s.client.StageExecution.UpdateOneID(executionID).
		SetStatus(stageexecution.StatusSkipped).
		SetSkipReason(reason).
		SetCompletedAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark stage execution skipped: %w", err)
	}
	return nil
}

// GetSucceeded returns the succeeded attempt of a stage, if any. The partial
// unique index guarantees at most one exists
func (s *StageExecutionService) GetSucceeded(ctx context.Context, runID, stage string) (*ent.StageExecution, error) {
	exec, err := s.client.StageExecution.Query().
		Where(
			stageexecution.PipelineRunIDEQ(runID),
			stageexecution.StageEQ(stage),
			stageexecution.StatusEQ(stageexecution.StatusSucceeded),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get succeeded stage execution: %w", err)
	}

	return exec, nil
}

// GetSucceededNode returns the succeeded attempt of a definition node, if
// any. Used to avoid recomputing nodes when a requeued run is re-executed
func (s *StageExecutionService) GetSucceededNode(ctx context.Context, runID, nodeID string) (*ent.StageExecution, error) {
	exec, err := s.client.StageExecution.Query().
		Where(
			stageexecution.PipelineRunIDEQ(runID),
			stageexecution.NodeIDEQ(nodeID),
			stageexecution.StatusEQ(stageexecution.StatusSucceeded),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get succeeded node execution: %w", err)
	}

	return exec, nil
}

// MaxNodeAttempt returns the highest attempt number recorded for a
// definition node, or 0 when the node has never been attempted
func (s *StageExecutionService) MaxNodeAttempt(ctx context.Context, runID, nodeID string) (int, error) {
	execs, err := s.client.StageExecution.Query().
		Where(
			stageexecution.PipelineRunIDEQ(runID),
			stageexecution.NodeIDEQ(nodeID),
		).
		Order(ent.Desc(stageexecution.FieldAttempt)).
		Limit(1).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query node attempts: %w", err)
	}
	if len(execs) == 0 {
		return 0, nil
	}
	return execs[0].Attempt, nil
}

// MaxAttempt returns the highest attempt number recorded for a stage,
// or 0 when the stage has never been attempted
func (s *StageExecutionService) MaxAttempt(ctx context.Context, runID, stage string) (int, error) {
	execs, err := s.client.StageExecution.Query().
		Where(
			stageexecution.PipelineRunIDEQ(runID),
			stageexecution.StageEQ(stage),
		).
		Order(ent.Desc(stageexecution.FieldAttempt)).
		Limit(1).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query stage attempts: %w", err)
	}
	if len(execs) == 0 {
		return 0, nil
	}
	return execs[0].Attempt, nil
}

// ListByRun returns all attempts of a run in creation order
func (s *StageExecutionService) ListByRun(ctx context.Context, runID string) ([]*ent.StageExecution, error) {
	execs, err := s.client.StageExecution.Query().
		Where(stageexecution.PipelineRunIDEQ(runID)).
		Order(ent.Asc(stageexecution.FieldCreatedAt), ent.Asc(stageexecution.FieldAttempt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stage executions: %w", err)
	}

	return execs, nil
}
