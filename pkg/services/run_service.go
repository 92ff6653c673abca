package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/conductor/ent"
	"github.com/codeready-toolchain/conductor/ent/pipelinerun"
	"github.com/codeready-toolchain/conductor/ent/stageexecution"
	"github.com/codeready-toolchain/conductor/pkg/models"
)

// RunService manages pipeline run lifecycle
type RunService struct {
	client *ent.Client
}

// NewRunService creates a new RunService
func NewRunService(client *ent.Client) *RunService {
	return &RunService{client: client}
}

// CreateRun creates a new pipeline run in pending state
func (s *RunService) CreateRun(httpCtx context.Context, req models.CreateRunRequest) (*ent.PipelineRun, error) {
	// Validate input
	mode := req.Mode
	if mode == "" {
		mode = models.RunModeFixed
	}
	if mode != models.RunModeFixed && mode != models.RunModeDefinition {
		return nil, NewValidationError("mode", "invalid: must be 'fixed' or 'definition'")
	}
	if mode == models.RunModeDefinition && (req.DefinitionName == nil || *req.DefinitionName == "") {
		return nil, NewValidationError("definition_name", "required for definition runs")
	}
	if len(req.Payload) == 0 {
		return nil, NewValidationError("payload", "required")
	}

	traceID := req.TraceID
	if traceID == "" {
		traceID = uuid.New().String()
	}

	// Use timeout context derived from incoming context
	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	runID := uuid.New().String()
	builder := s.client.PipelineRun.Create().
		SetID(runID).
		SetTraceID(traceID).
		SetMode(pipelinerun.Mode(mode)).
		SetPayload(req.Payload).
		SetStatus(pipelinerun.StatusPending)

	if req.Source != "" {
		builder.SetSource(req.Source)
	}
	if req.Environment != "" {
		builder.SetEnvironment(req.Environment)
	}
	if req.DefinitionName != nil {
		builder.SetDefinitionName(*req.DefinitionName)
	}
	if req.DefinitionVersion != nil {
		builder.SetDefinitionVersion(*req.DefinitionVersion)
	}
	if req.MaxRetries != nil {
		if *req.MaxRetries < 0 {
			return nil, NewValidationError("max_retries", "must not be negative")
		}
		builder.SetMaxRetries(*req.MaxRetries)
	}

	run, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create pipeline run: %w", err)
	}

	return run, nil
}

// GetRun retrieves a run by ID with optional stage executions
func (s *RunService) GetRun(ctx context.Context, runID string, withStages bool) (*ent.PipelineRun, error) {
	query := s.client.PipelineRun.Query().Where(pipelinerun.IDEQ(runID))

	if withStages {
		query = query.WithStageExecutions(func(q *ent.StageExecutionQuery) {
			q.Order(ent.Asc(stageexecution.FieldCreatedAt))
		})
	}

	run, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	return run, nil
}

// ListRuns retrieves runs matching the filter, newest first
func (s *RunService) ListRuns(ctx context.Context, filter models.RunFilter) ([]*ent.PipelineRun, error) {
	query := s.client.PipelineRun.Query().
		Order(ent.Desc(pipelinerun.FieldCreatedAt))

	if filter.Status != "" {
		query = query.Where(pipelinerun.StatusEQ(pipelinerun.Status(filter.Status)))
	}
	if filter.Mode != "" {
		query = query.Where(pipelinerun.ModeEQ(pipelinerun.Mode(filter.Mode)))
	}
	limit := filter.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	query = query.Limit(limit)

	runs, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	return runs, nil
}

// MarkClaimed records that a worker picked up the run
func (s *RunService) MarkClaimed(ctx context.Context, runID, podID string) error {
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	run, err := s.client.PipelineRun.Get(writeCtx, runID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get run: %w", err)
	}

	update := s.client.PipelineRun.UpdateOneID(runID).
		SetPodID(podID).
		SetLastInteractionAt(time.Now())

	if run.StartedAt == nil {
		update = update.SetStartedAt(time.Now())
	}

	return update.Exec(writeCtx)
}

// Heartbeat refreshes the run's orphan-detection timestamp
func (s *RunService) Heartbeat(ctx context.Context, runID string) error {
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := s.client.PipelineRun.UpdateOneID(runID).
		SetLastInteractionAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to heartbeat run: %w", err)
	}
	return nil
}

// terminalStatuses are statuses after which a run never executes again.
var terminalStatuses = map[pipelinerun.Status]bool{
	pipelinerun.StatusNotified:  true,
	pipelinerun.StatusCompleted: true,
	pipelinerun.StatusFailed:    true,
}

// SetStatus updates the run status; terminal statuses also stamp
// completed_at and the total duration
func (s *RunService) SetStatus(ctx context.Context, runID string, status pipelinerun.Status) error {
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	run, err := s.client.PipelineRun.Get(writeCtx, runID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get run: %w", err)
	}

	// Terminal statuses are final; a late worker must not resurrect the run.
	if terminalStatuses[run.Status] {
		return fmt.Errorf("%w: run is already %s", ErrInvalidTransition, run.Status)
	}

	update := s.client.PipelineRun.UpdateOneID(runID).
		SetStatus(status).
		SetLastInteractionAt(time.Now())

	if terminalStatuses[status] {
		now := time.Now()
		update = update.SetCompletedAt(now)
		if run.StartedAt != nil {
			update = update.SetTotalDurationMs(int(now.Sub(*run.StartedAt).Milliseconds()))
		}
	}

	return update.Exec(writeCtx)
}

// SetCurrentStage records which stage the orchestrator is executing
func (s *RunService) SetCurrentStage(ctx context.Context, runID, stage string) error {
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := s.client.PipelineRun.UpdateOneID(runID).
		SetCurrentStage(stage).
		SetLastInteractionAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set current stage: %w", err)
	}
	return nil
}

// SetIncidentID attaches the incident the ingest stage produced
func (s *RunService) SetIncidentID(ctx context.Context, runID, incidentID string) error {
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := s.client.PipelineRun.UpdateOneID(runID).
		SetIncidentID(incidentID).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set incident id: %w", err)
	}
	return nil
}

// Resume returns a failed or retrying run to the queue. Succeeded stages
// keep their rows, so the next worker continues at the first stage without
// a succeeded attempt. Definition runs cannot be resumed
func (s *RunService) Resume(ctx context.Context, runID string) (*ent.PipelineRun, error) {
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	run, err := s.client.PipelineRun.Get(writeCtx, runID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	if run.Mode != pipelinerun.ModeFixed {
		return nil, NewValidationError("mode", "only fixed-topology runs can be resumed")
	}
	if run.Status != pipelinerun.StatusFailed && run.Status != pipelinerun.StatusRetrying {
		return nil, fmt.Errorf("%w: cannot resume a %s run", ErrInvalidTransition, run.Status)
	}

	updated, err := s.client.PipelineRun.UpdateOneID(runID).
		SetStatus(pipelinerun.StatusPending).
		ClearCompletedAt().
		ClearTotalDurationMs().
		ClearPodID().
		SetLastInteractionAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to resume run: %w", err)
	}

	return updated, nil
}

// RecordError stores the most recent failure on the run and bumps the
// attempt counter
func (s *RunService) RecordError(ctx context.Context, runID, errorType, message string, retryable bool) error {
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := s.client.PipelineRun.UpdateOneID(runID).
		SetLastErrorType(errorType).
		SetLastErrorMessage(message).
		SetLastErrorRetryable(retryable).
		AddTotalAttempts(1).
		SetLastInteractionAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to record run error: %w", err)
	}
	return nil
}
