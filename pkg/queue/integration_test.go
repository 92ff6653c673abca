package queue

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/conductor/ent"
	"github.com/codeready-toolchain/conductor/ent/pipelinerun"
	"github.com/codeready-toolchain/conductor/pkg/models"
	"github.com/codeready-toolchain/conductor/pkg/services"
	testdb "github.com/codeready-toolchain/conductor/test/database"
)

// executorFunc adapts a function to the RunExecutor interface.
type executorFunc func(ctx context.Context, run *ent.PipelineRun) *ExecutionResult

func (f executorFunc) Execute(ctx context.Context, run *ent.PipelineRun) *ExecutionResult {
	return f(ctx, run)
}

// noopRegistry satisfies RunRegistry for workers driven directly in tests.
type noopRegistry struct{}

func (noopRegistry) RegisterRun(string, context.CancelFunc) {}
func (noopRegistry) UnregisterRun(string)                   {}

func createPendingRun(t *testing.T, client *ent.Client) *ent.PipelineRun {
	t.Helper()
	svc := services.NewRunService(client)
	run, err := svc.CreateRun(context.Background(), models.CreateRunRequest{
		Source:  "alertmanager",
		Payload: map[string]any{"alerts": []any{}},
	})
	require.NoError(t, err)
	return run
}

func TestClaimNextRunFIFO(t *testing.T) {
	client := testdb.NewTestClient(t)
	w := NewWorker("w-0", "pod-a", client.Client, testQueueConfig(), nil, noopRegistry{})
	ctx := context.Background()

	first := createPendingRun(t, client.Client)
	time.Sleep(10 * time.Millisecond) // distinct created_at ordering
	second := createPendingRun(t, client.Client)

	claimed, err := w.claimNextRun(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, claimed.ID)
	require.NotNil(t, claimed.PodID)
	assert.Equal(t, "pod-a", *claimed.PodID)
	assert.NotNil(t, claimed.StartedAt)
	assert.NotNil(t, claimed.LastInteractionAt)

	claimed, err = w.claimNextRun(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, claimed.ID)

	_, err = w.claimNextRun(ctx)
	assert.ErrorIs(t, err, ErrNoRunsAvailable)
}

func TestPollAndProcessCompletesRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	run := createPendingRun(t, client.Client)

	executor := executorFunc(func(ctx context.Context, claimed *ent.PipelineRun) *ExecutionResult {
		require.Equal(t, run.ID, claimed.ID)
		err := client.Client.PipelineRun.UpdateOneID(claimed.ID).
			SetStatus(pipelinerun.StatusCompleted).
			SetCompletedAt(time.Now()).
			Exec(ctx)
		require.NoError(t, err)
		return &ExecutionResult{Status: pipelinerun.StatusCompleted}
	})

	w := NewWorker("w-0", "pod-a", client.Client, testQueueConfig(), executor, noopRegistry{})
	require.NoError(t, w.pollAndProcess(ctx))

	updated, err := client.Client.PipelineRun.Get(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, pipelinerun.StatusCompleted, updated.Status)
	assert.Equal(t, 1, w.Health().RunsProcessed)
}

func TestPollAndProcessAtCapacity(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	// One run already in flight on another pod.
	inflight := createPendingRun(t, client.Client)
	require.NoError(t, client.Client.PipelineRun.UpdateOneID(inflight.ID).
		SetStatus(pipelinerun.StatusIngested).
		SetPodID("pod-b").
		Exec(ctx))
	createPendingRun(t, client.Client)

	cfg := testQueueConfig()
	cfg.MaxConcurrentRuns = 1
	w := NewWorker("w-0", "pod-a", client.Client, cfg, nil, noopRegistry{})

	err := w.pollAndProcess(ctx)
	assert.ErrorIs(t, err, ErrAtCapacity)
}

func TestEnsureTerminalStatusForcesFailed(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	run := createPendingRun(t, client.Client)

	// Executor that returns without writing a terminal status.
	executor := executorFunc(func(context.Context, *ent.PipelineRun) *ExecutionResult {
		return &ExecutionResult{Status: pipelinerun.StatusFailed, Error: fmt.Errorf("executor crashed mid-run")}
	})

	w := NewWorker("w-0", "pod-a", client.Client, testQueueConfig(), executor, noopRegistry{})
	require.NoError(t, w.pollAndProcess(ctx))

	updated, err := client.Client.PipelineRun.Get(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, pipelinerun.StatusFailed, updated.Status)
	assert.NotNil(t, updated.CompletedAt)
	require.NotNil(t, updated.LastErrorMessage)
	assert.Contains(t, *updated.LastErrorMessage, "executor crashed")
}

func TestOrphanDetectionRequeuesStaleRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	run := createPendingRun(t, client.Client)
	stale := time.Now().Add(-time.Hour)
	require.NoError(t, client.Client.PipelineRun.UpdateOneID(run.ID).
		SetStatus(pipelinerun.StatusChecked).
		SetPodID("dead-pod").
		SetLastInteractionAt(stale).
		Exec(ctx))

	// A healthy run on a live pod must not be touched.
	healthy := createPendingRun(t, client.Client)
	require.NoError(t, client.Client.PipelineRun.UpdateOneID(healthy.ID).
		SetStatus(pipelinerun.StatusChecked).
		SetPodID("live-pod").
		SetLastInteractionAt(time.Now()).
		Exec(ctx))

	pool := NewWorkerPool("pod-a", client.Client, testQueueConfig(), nil)
	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	requeued, err := client.Client.PipelineRun.Get(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, pipelinerun.StatusPending, requeued.Status)
	assert.Nil(t, requeued.PodID)
	require.NotNil(t, requeued.LastErrorMessage)
	assert.Contains(t, *requeued.LastErrorMessage, "dead-pod")

	untouched, err := client.Client.PipelineRun.Get(ctx, healthy.ID)
	require.NoError(t, err)
	assert.Equal(t, pipelinerun.StatusChecked, untouched.Status)

	health := pool.Health()
	assert.Equal(t, 1, health.OrphansRecovered)
}

func TestRequeueStartupOrphans(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	mine := createPendingRun(t, client.Client)
	require.NoError(t, client.Client.PipelineRun.UpdateOneID(mine.ID).
		SetStatus(pipelinerun.StatusAnalyzed).
		SetPodID("pod-a").
		Exec(ctx))

	other := createPendingRun(t, client.Client)
	require.NoError(t, client.Client.PipelineRun.UpdateOneID(other.ID).
		SetStatus(pipelinerun.StatusAnalyzed).
		SetPodID("pod-b").
		Exec(ctx))

	require.NoError(t, RequeueStartupOrphans(ctx, client.Client, "pod-a"))

	requeued, err := client.Client.PipelineRun.Get(ctx, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, pipelinerun.StatusPending, requeued.Status)
	assert.Nil(t, requeued.PodID)

	untouched, err := client.Client.PipelineRun.Get(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, pipelinerun.StatusAnalyzed, untouched.Status)
	require.NotNil(t, untouched.PodID)
	assert.Equal(t, "pod-b", *untouched.PodID)
}
