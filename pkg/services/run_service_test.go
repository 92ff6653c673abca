package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/conductor/ent"
	"github.com/codeready-toolchain/conductor/ent/pipelinerun"
	"github.com/codeready-toolchain/conductor/pkg/models"
	"github.com/codeready-toolchain/conductor/pkg/services"
	testdb "github.com/codeready-toolchain/conductor/test/database"
)

func createTestRun(t *testing.T, svc *services.RunService) *ent.PipelineRun {
	t.Helper()
	run, err := svc.CreateRun(context.Background(), models.CreateRunRequest{
		Source:  "alertmanager",
		Payload: map[string]any{"alerts": []any{}},
	})
	require.NoError(t, err)
	return run
}

func TestCreateRunDefaults(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewRunService(client.Client)

	run := createTestRun(t, svc)

	assert.NotEmpty(t, run.ID)
	assert.NotEmpty(t, run.TraceID)
	assert.Equal(t, pipelinerun.ModeFixed, run.Mode)
	assert.Equal(t, pipelinerun.StatusPending, run.Status)
	assert.Equal(t, 3, run.MaxRetries)
}

func TestCreateRunValidation(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewRunService(client.Client)
	ctx := context.Background()

	_, err := svc.CreateRun(ctx, models.CreateRunRequest{})
	require.Error(t, err)
	assert.True(t, services.IsValidationError(err))

	_, err = svc.CreateRun(ctx, models.CreateRunRequest{
		Mode:    models.RunModeDefinition,
		Payload: map[string]any{"x": 1},
	})
	require.Error(t, err)
	assert.True(t, services.IsValidationError(err))

	_, err = svc.CreateRun(ctx, models.CreateRunRequest{
		Mode:    "bogus",
		Payload: map[string]any{"x": 1},
	})
	require.Error(t, err)
	assert.True(t, services.IsValidationError(err))
}

func TestRunStatusProgression(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewRunService(client.Client)
	ctx := context.Background()

	run := createTestRun(t, svc)

	require.NoError(t, svc.MarkClaimed(ctx, run.ID, "pod-1"))
	require.NoError(t, svc.SetStatus(ctx, run.ID, pipelinerun.StatusIngested))
	require.NoError(t, svc.SetStatus(ctx, run.ID, pipelinerun.StatusNotified))

	got, err := svc.GetRun(ctx, run.ID, false)
	require.NoError(t, err)
	assert.Equal(t, pipelinerun.StatusNotified, got.Status)
	assert.NotNil(t, got.StartedAt)
	assert.NotNil(t, got.CompletedAt)
	assert.NotNil(t, got.TotalDurationMs)
}

func TestTerminalRunStatusIsFinal(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewRunService(client.Client)
	ctx := context.Background()

	run := createTestRun(t, svc)
	require.NoError(t, svc.SetStatus(ctx, run.ID, pipelinerun.StatusFailed))

	// A late worker must not resurrect a finished run.
	err := svc.SetStatus(ctx, run.ID, pipelinerun.StatusRetrying)
	assert.ErrorIs(t, err, services.ErrInvalidTransition)
}

func TestRecordRunError(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewRunService(client.Client)
	ctx := context.Background()

	run := createTestRun(t, svc)
	require.NoError(t, svc.RecordError(ctx, run.ID, "retryable", "connection reset", true))
	require.NoError(t, svc.RecordError(ctx, run.ID, "retryable", "connection reset again", true))

	got, err := svc.GetRun(ctx, run.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 2, got.TotalAttempts)
	require.NotNil(t, got.LastErrorMessage)
	assert.Equal(t, "connection reset again", *got.LastErrorMessage)
	require.NotNil(t, got.LastErrorRetryable)
	assert.True(t, *got.LastErrorRetryable)
}

func TestListRunsFilters(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewRunService(client.Client)
	ctx := context.Background()

	first := createTestRun(t, svc)
	createTestRun(t, svc)
	require.NoError(t, svc.SetStatus(ctx, first.ID, pipelinerun.StatusFailed))

	failed, err := svc.ListRuns(ctx, models.RunFilter{Status: "failed"})
	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.Equal(t, first.ID, failed[0].ID)

	all, err := svc.ListRuns(ctx, models.RunFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGetRunNotFound(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewRunService(client.Client)

	_, err := svc.GetRun(context.Background(), "nonexistent", false)
	assert.ErrorIs(t, err, services.ErrNotFound)
}
