package pipeline_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/conductor/ent"
	"github.com/codeready-toolchain/conductor/ent/pipelinerun"
	"github.com/codeready-toolchain/conductor/ent/stageexecution"
	"github.com/codeready-toolchain/conductor/pkg/config"
	"github.com/codeready-toolchain/conductor/pkg/events"
	"github.com/codeready-toolchain/conductor/pkg/ingest"
	"github.com/codeready-toolchain/conductor/pkg/models"
	"github.com/codeready-toolchain/conductor/pkg/pipeline"
	"github.com/codeready-toolchain/conductor/pkg/services"
	testdb "github.com/codeready-toolchain/conductor/test/database"
)

// fakeStage is a scriptable stage: errs[i] is the error of call i+1 (nil
// means success).
type fakeStage struct {
	name       string
	errs       []error
	output     map[string]any
	calls      int
	skip       bool
	skipReason string
}

func (s *fakeStage) Name() string { return s.name }

func (s *fakeStage) ShouldSkip(_ *pipeline.RunContext) (bool, string) {
	return s.skip, s.skipReason
}

func (s *fakeStage) Execute(_ context.Context, rc *pipeline.RunContext) (map[string]any, error) {
	s.calls++
	if s.calls <= len(s.errs) && s.errs[s.calls-1] != nil {
		return nil, s.errs[s.calls-1]
	}
	if s.output != nil {
		if id, ok := s.output["incident_id"].(string); ok && rc.IncidentID == "" {
			rc.IncidentID = id
		}
		return s.output, nil
	}
	return map[string]any{"stage": s.name}, nil
}

type orchestratorEnv struct {
	runs      *services.RunService
	stages    *services.StageExecutionService
	publisher *events.Publisher
	retry     *config.RetryConfig
	client    *ent.Client
}

func setupOrchestrator(t *testing.T) *orchestratorEnv {
	t.Helper()
	client := testdb.NewTestClient(t)
	return &orchestratorEnv{
		runs:      services.NewRunService(client.Client),
		stages:    services.NewStageExecutionService(client.Client),
		publisher: events.NewPublisher(client.DB()),
		retry: &config.RetryConfig{
			BaseDelay:           time.Millisecond,
			MaxDelay:            5 * time.Millisecond,
			MaxAttemptsPerStage: 3,
			MaxAttemptsPerRun:   3,
		},
		client: client.Client,
	}
}

func (env *orchestratorEnv) newRun(t *testing.T) *ent.PipelineRun {
	t.Helper()
	run, err := env.runs.CreateRun(context.Background(), models.CreateRunRequest{
		Source:  "alertmanager",
		Payload: map[string]any{"alertname": "HighLatency"},
	})
	require.NoError(t, err)
	return run
}

func (env *orchestratorEnv) orchestrator(stages ...pipeline.Stage) *pipeline.Orchestrator {
	return pipeline.NewOrchestrator(env.runs, env.stages, env.publisher, env.retry, stages)
}

func fourStages() (*fakeStage, *fakeStage, *fakeStage, *fakeStage) {
	return &fakeStage{name: models.StageIngest, output: map[string]any{"incident_id": "inc-1"}},
		&fakeStage{name: models.StageCheck},
		&fakeStage{name: models.StageAnalyze},
		&fakeStage{name: models.StageNotify}
}

func TestOrchestratorHappyPath(t *testing.T) {
	env := setupOrchestrator(t)
	ctx := context.Background()

	ing, chk, anl, ntf := fourStages()
	run := env.newRun(t)

	err := env.orchestrator(ing, chk, anl, ntf).Execute(ctx, run)
	require.NoError(t, err)

	got, err := env.runs.GetRun(ctx, run.ID, true)
	require.NoError(t, err)
	assert.Equal(t, pipelinerun.StatusNotified, got.Status)
	require.NotNil(t, got.IncidentID)
	assert.Equal(t, "inc-1", *got.IncidentID)
	assert.NotNil(t, got.CompletedAt)

	require.Len(t, got.Edges.StageExecutions, 4)
	for _, exec := range got.Edges.StageExecutions {
		assert.Equal(t, stageexecution.StatusSucceeded, exec.Status)
		assert.Equal(t, 1, exec.Attempt)
	}
}

func TestOrchestratorRetryThenSucceed(t *testing.T) {
	env := setupOrchestrator(t)
	ctx := context.Background()

	ing, chk, anl, ntf := fourStages()
	chk.errs = []error{errors.New("transient checker trouble")}
	run := env.newRun(t)

	err := env.orchestrator(ing, chk, anl, ntf).Execute(ctx, run)
	require.NoError(t, err)
	assert.Equal(t, 2, chk.calls)

	got, err := env.runs.GetRun(ctx, run.ID, false)
	require.NoError(t, err)
	assert.Equal(t, pipelinerun.StatusNotified, got.Status)
	assert.Equal(t, 1, got.TotalAttempts)

	execs, err := env.stages.ListByRun(ctx, run.ID)
	require.NoError(t, err)
	// ingest + 2 check attempts + analyze + notify
	assert.Len(t, execs, 5)

	succeeded, err := env.stages.GetSucceeded(ctx, run.ID, models.StageCheck)
	require.NoError(t, err)
	assert.Equal(t, 2, succeeded.Attempt)
}

func TestOrchestratorRetryBudgetExhausted(t *testing.T) {
	env := setupOrchestrator(t)
	ctx := context.Background()

	ing, chk, anl, ntf := fourStages()
	anl.errs = []error{
		errors.New("provider down"),
		errors.New("provider down"),
		errors.New("provider down"),
	}
	run := env.newRun(t)

	err := env.orchestrator(ing, chk, anl, ntf).Execute(ctx, run)
	require.Error(t, err)

	var stageErr *pipeline.StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, models.StageAnalyze, stageErr.Stage)
	assert.Equal(t, 3, stageErr.Attempt)

	got, err := env.runs.GetRun(ctx, run.ID, false)
	require.NoError(t, err)
	assert.Equal(t, pipelinerun.StatusFailed, got.Status)
	assert.Equal(t, 3, anl.calls)
	assert.Equal(t, 0, ntf.calls)
	require.NotNil(t, got.LastErrorType)
	assert.Equal(t, string(pipeline.ErrorTypeRetryable), *got.LastErrorType)
}

func TestOrchestratorFatalErrorFailsImmediately(t *testing.T) {
	env := setupOrchestrator(t)
	ctx := context.Background()

	ing, chk, anl, ntf := fourStages()
	ing.errs = []error{fmt.Errorf("%w: body is not JSON", ingest.ErrMalformedPayload)}
	ing.output = nil
	run := env.newRun(t)

	err := env.orchestrator(ing, chk, anl, ntf).Execute(ctx, run)
	require.Error(t, err)
	assert.Equal(t, 1, ing.calls)
	assert.Equal(t, 0, chk.calls)

	got, err := env.runs.GetRun(ctx, run.ID, false)
	require.NoError(t, err)
	assert.Equal(t, pipelinerun.StatusFailed, got.Status)
	require.NotNil(t, got.LastErrorType)
	assert.Equal(t, string(pipeline.ErrorTypeFatal), *got.LastErrorType)
	require.NotNil(t, got.LastErrorRetryable)
	assert.False(t, *got.LastErrorRetryable)
}

func TestOrchestratorResumeSkipsSucceededStages(t *testing.T) {
	env := setupOrchestrator(t)
	ctx := context.Background()

	ing, chk, anl, ntf := fourStages()
	anl.errs = []error{
		fmt.Errorf("%w: provider row vanished", services.ErrNotFound),
	}
	run := env.newRun(t)

	err := env.orchestrator(ing, chk, anl, ntf).Execute(ctx, run)
	require.Error(t, err)

	resumed, err := env.runs.Resume(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, pipelinerun.StatusPending, resumed.Status)

	err = env.orchestrator(ing, chk, anl, ntf).Execute(ctx, resumed)
	require.NoError(t, err)

	// Ingest and check were restored from their succeeded rows, not rerun.
	assert.Equal(t, 1, ing.calls)
	assert.Equal(t, 1, chk.calls)
	assert.Equal(t, 2, anl.calls)

	got, err := env.runs.GetRun(ctx, run.ID, false)
	require.NoError(t, err)
	assert.Equal(t, pipelinerun.StatusNotified, got.Status)
	require.NotNil(t, got.IncidentID)
	assert.Equal(t, "inc-1", *got.IncidentID)

	// The resumed attempt continued from the prior maximum.
	succeeded, err := env.stages.GetSucceeded(ctx, run.ID, models.StageAnalyze)
	require.NoError(t, err)
	assert.Equal(t, 2, succeeded.Attempt)
}

func TestOrchestratorResumeWithAllStagesSucceededFinishesRun(t *testing.T) {
	env := setupOrchestrator(t)
	ctx := context.Background()

	ing, chk, anl, ntf := fourStages()
	run := env.newRun(t)

	// A previous worker finished every stage but died before advancing the
	// run; only the succeeded rows remain.
	for _, stage := range []string{models.StageIngest, models.StageCheck, models.StageAnalyze, models.StageNotify} {
		exec, err := env.stages.CreatePending(ctx, run.ID, stage, "", 1)
		require.NoError(t, err)
		require.NoError(t, env.stages.MarkRunning(ctx, exec.ID))
		require.NoError(t, env.stages.MarkSucceeded(ctx, exec.ID, map[string]any{"incident_id": "inc-1"}))
	}

	err := env.orchestrator(ing, chk, anl, ntf).Execute(ctx, run)
	require.NoError(t, err)

	// Everything was restored; nothing recomputed.
	assert.Equal(t, 0, ing.calls)
	assert.Equal(t, 0, chk.calls)
	assert.Equal(t, 0, anl.calls)
	assert.Equal(t, 0, ntf.calls)

	got, err := env.runs.GetRun(ctx, run.ID, false)
	require.NoError(t, err)
	assert.Equal(t, pipelinerun.StatusNotified, got.Status)
	assert.NotNil(t, got.CompletedAt)
	require.NotNil(t, got.IncidentID)
	assert.Equal(t, "inc-1", *got.IncidentID)
}

func TestOrchestratorSkipsIngestWhenIncidentSupplied(t *testing.T) {
	env := setupOrchestrator(t)
	ctx := context.Background()

	ing, chk, anl, ntf := fourStages()
	ing.skip = true
	ing.skipReason = "incident supplied by caller"
	run := env.newRun(t)
	require.NoError(t, env.runs.SetIncidentID(ctx, run.ID, "inc-preset"))
	run, err := env.runs.GetRun(ctx, run.ID, false)
	require.NoError(t, err)

	err = env.orchestrator(ing, chk, anl, ntf).Execute(ctx, run)
	require.NoError(t, err)
	assert.Equal(t, 0, ing.calls)
	assert.Equal(t, 1, chk.calls)

	execs, err := env.stages.ListByRun(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, execs, 4)
	assert.Equal(t, stageexecution.StatusSkipped, execs[0].Status)
	require.NotNil(t, execs[0].SkipReason)
	assert.Equal(t, "incident supplied by caller", *execs[0].SkipReason)
}

func TestOrchestratorCancelledBeforeStage(t *testing.T) {
	env := setupOrchestrator(t)

	ing, chk, anl, ntf := fourStages()
	run := env.newRun(t)

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	err := env.orchestrator(ing, chk, anl, ntf).Execute(cancelled, run)
	require.Error(t, err)

	var stageErr *pipeline.StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, pipeline.ErrorTypeCancelled, stageErr.Type)

	got, err := env.runs.GetRun(context.Background(), run.ID, false)
	require.NoError(t, err)
	assert.Equal(t, pipelinerun.StatusFailed, got.Status)
	assert.Equal(t, 0, ing.calls)
}
