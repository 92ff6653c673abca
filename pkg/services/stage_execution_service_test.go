package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/conductor/ent/stageexecution"
	"github.com/codeready-toolchain/conductor/pkg/models"
	"github.com/codeready-toolchain/conductor/pkg/services"
	testdb "github.com/codeready-toolchain/conductor/test/database"
)

func TestIdempotencyKeyDeterministic(t *testing.T) {
	k1 := services.IdempotencyKey("run-1", "ingest", 1)
	k2 := services.IdempotencyKey("run-1", "ingest", 1)
	assert.Equal(t, k1, k2)
	assert.Len(t, k1, 64)

	assert.NotEqual(t, k1, services.IdempotencyKey("run-1", "ingest", 2))
	assert.NotEqual(t, k1, services.IdempotencyKey("run-1", "check", 1))
	assert.NotEqual(t, k1, services.IdempotencyKey("run-2", "ingest", 1))
}

func TestDuplicateAttemptIsRejected(t *testing.T) {
	client := testdb.NewTestClient(t)
	runs := services.NewRunService(client.Client)
	stages := services.NewStageExecutionService(client.Client)
	ctx := context.Background()

	run := createTestRun(t, runs)

	_, err := stages.CreatePending(ctx, run.ID, models.StageIngest, "", 1)
	require.NoError(t, err)

	// Recording the same attempt twice must fail on the idempotency key.
	_, err = stages.CreatePending(ctx, run.ID, models.StageIngest, "", 1)
	assert.ErrorIs(t, err, services.ErrAlreadyExists)

	// The next attempt number is fine.
	_, err = stages.CreatePending(ctx, run.ID, models.StageIngest, "", 2)
	require.NoError(t, err)
}

func TestStageExecutionLifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	runs := services.NewRunService(client.Client)
	stages := services.NewStageExecutionService(client.Client)
	ctx := context.Background()

	run := createTestRun(t, runs)
	exec, err := stages.CreatePending(ctx, run.ID, models.StageCheck, "", 1)
	require.NoError(t, err)
	assert.Equal(t, stageexecution.StatusPending, exec.Status)

	require.NoError(t, stages.MarkRunning(ctx, exec.ID))
	require.NoError(t, stages.MarkSucceeded(ctx, exec.ID, map[string]any{"checks_run": 3}))

	got, err := stages.GetSucceeded(ctx, run.ID, models.StageCheck)
	require.NoError(t, err)
	assert.Equal(t, exec.ID, got.ID)
	assert.Equal(t, float64(3), got.OutputSnapshot["checks_run"])
	assert.NotNil(t, got.StartedAt)
	assert.NotNil(t, got.CompletedAt)
	assert.NotNil(t, got.DurationMs)
}

func TestMarkSucceededLargeOutputStoredByRef(t *testing.T) {
	client := testdb.NewTestClient(t)
	runs := services.NewRunService(client.Client)
	stages := services.NewStageExecutionService(client.Client)
	ctx := context.Background()

	run := createTestRun(t, runs)
	exec, err := stages.CreatePending(ctx, run.ID, models.StageAnalyze, "", 1)
	require.NoError(t, err)
	require.NoError(t, stages.MarkRunning(ctx, exec.ID))

	// Well above the 8KB inline limit.
	big := map[string]any{"report": strings.Repeat("x", 32*1024)}
	require.NoError(t, stages.MarkSucceeded(ctx, exec.ID, big))

	got, err := stages.GetSucceeded(ctx, run.ID, models.StageAnalyze)
	require.NoError(t, err)
	assert.Nil(t, got.OutputSnapshot, "oversized output must not be inlined")
	require.NotEmpty(t, got.OutputRef)

	restored, err := stages.ResolveOutput(ctx, got)
	require.NoError(t, err)
	assert.Equal(t, big["report"], restored["report"])
}

func TestResolveOutputInlineSnapshot(t *testing.T) {
	client := testdb.NewTestClient(t)
	runs := services.NewRunService(client.Client)
	stages := services.NewStageExecutionService(client.Client)
	ctx := context.Background()

	run := createTestRun(t, runs)
	exec, err := stages.CreatePending(ctx, run.ID, models.StageCheck, "", 1)
	require.NoError(t, err)
	require.NoError(t, stages.MarkSucceeded(ctx, exec.ID, map[string]any{"checks_run": float64(2)}))

	got, err := stages.GetSucceeded(ctx, run.ID, models.StageCheck)
	require.NoError(t, err)
	assert.Empty(t, got.OutputRef)

	restored, err := stages.ResolveOutput(ctx, got)
	require.NoError(t, err)
	assert.Equal(t, float64(2), restored["checks_run"])
}

func TestMarkFailedRecordsClassification(t *testing.T) {
	client := testdb.NewTestClient(t)
	runs := services.NewRunService(client.Client)
	stages := services.NewStageExecutionService(client.Client)
	ctx := context.Background()

	run := createTestRun(t, runs)
	exec, err := stages.CreatePending(ctx, run.ID, models.StageAnalyze, "", 1)
	require.NoError(t, err)

	require.NoError(t, stages.MarkRunning(ctx, exec.ID))
	require.NoError(t, stages.MarkFailed(ctx, exec.ID, "timeout", "provider deadline exceeded", "", true))

	_, err = stages.GetSucceeded(ctx, run.ID, models.StageAnalyze)
	assert.ErrorIs(t, err, services.ErrNotFound)

	all, err := stages.ListByRun(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, stageexecution.StatusFailed, all[0].Status)
	require.NotNil(t, all[0].ErrorType)
	assert.Equal(t, "timeout", *all[0].ErrorType)
	assert.True(t, all[0].ErrorRetryable)
}

func TestMaxAttempt(t *testing.T) {
	client := testdb.NewTestClient(t)
	runs := services.NewRunService(client.Client)
	stages := services.NewStageExecutionService(client.Client)
	ctx := context.Background()

	run := createTestRun(t, runs)

	max, err := stages.MaxAttempt(ctx, run.ID, models.StageNotify)
	require.NoError(t, err)
	assert.Equal(t, 0, max)

	for attempt := 1; attempt <= 3; attempt++ {
		_, err := stages.CreatePending(ctx, run.ID, models.StageNotify, "", attempt)
		require.NoError(t, err)
	}

	max, err = stages.MaxAttempt(ctx, run.ID, models.StageNotify)
	require.NoError(t, err)
	assert.Equal(t, 3, max)
}

func TestCreatePendingValidation(t *testing.T) {
	client := testdb.NewTestClient(t)
	stages := services.NewStageExecutionService(client.Client)
	ctx := context.Background()

	_, err := stages.CreatePending(ctx, "", models.StageIngest, "", 1)
	assert.True(t, services.IsValidationError(err))

	_, err = stages.CreatePending(ctx, "run-1", "", "", 1)
	assert.True(t, services.IsValidationError(err))

	_, err = stages.CreatePending(ctx, "run-1", models.StageIngest, "", 0)
	assert.True(t, services.IsValidationError(err))
}
