package definition_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/conductor/ent"
	"github.com/codeready-toolchain/conductor/ent/pipelinerun"
	"github.com/codeready-toolchain/conductor/ent/stageexecution"
	"github.com/codeready-toolchain/conductor/pkg/config"
	"github.com/codeready-toolchain/conductor/pkg/definition"
	"github.com/codeready-toolchain/conductor/pkg/models"
	"github.com/codeready-toolchain/conductor/pkg/nodes"
	"github.com/codeready-toolchain/conductor/pkg/services"
	testdb "github.com/codeready-toolchain/conductor/test/database"
)

// fakeNode fails with errs[i] on call i+1 and succeeds with output once the
// scripted errors run out.
type fakeNode struct {
	typ    string
	output map[string]any
	errs   []error
	calls  int
}

func (f *fakeNode) Type() string                  { return f.typ }
func (f *fakeNode) Validate(map[string]any) error { return nil }

func (f *fakeNode) Execute(_ context.Context, _ map[string]any, _ *nodes.NodeContext) (map[string]any, error) {
	f.calls++
	if f.calls <= len(f.errs) && f.errs[f.calls-1] != nil {
		return nil, f.errs[f.calls-1]
	}
	return f.output, nil
}

type definitionEnv struct {
	runs         *services.RunService
	stages       *services.StageExecutionService
	orchestrator *definition.Orchestrator
	registry     *nodes.Registry
}

func setupDefinitionEnv(t *testing.T, handlers ...nodes.Handler) *definitionEnv {
	t.Helper()
	client := testdb.NewTestClient(t)

	registry := nodes.NewRegistry()
	for _, h := range handlers {
		require.NoError(t, registry.Register(h))
	}

	retry := &config.RetryConfig{
		BaseDelay:           time.Millisecond,
		MaxDelay:            5 * time.Millisecond,
		MaxAttemptsPerStage: 3,
		MaxAttemptsPerRun:   10,
	}

	runs := services.NewRunService(client.Client)
	stages := services.NewStageExecutionService(client.Client)
	return &definitionEnv{
		runs:         runs,
		stages:       stages,
		orchestrator: definition.NewOrchestrator(runs, stages, nil, retry),
		registry:     registry,
	}
}

func (e *definitionEnv) compile(t *testing.T, config map[string]any) *definition.CompiledPipeline {
	t.Helper()
	compiled, err := definition.Compile(config, e.registry)
	require.NoError(t, err)
	return compiled
}

func (e *definitionEnv) createRun(t *testing.T) *ent.PipelineRun {
	t.Helper()
	name := "demo"
	run, err := e.runs.CreateRun(context.Background(), models.CreateRunRequest{
		Mode:           models.RunModeDefinition,
		DefinitionName: &name,
		Source:         "grafana",
		Payload:        map[string]any{"title": "disk pressure"},
	})
	require.NoError(t, err)
	return run
}

func definitionConfig(nodeSpecs ...map[string]any) map[string]any {
	list := make([]any, 0, len(nodeSpecs))
	for _, spec := range nodeSpecs {
		list = append(list, spec)
	}
	return map[string]any{"version": "1.0", "nodes": list}
}

func TestDefinitionRunHappyPath(t *testing.T) {
	n1 := &fakeNode{typ: "t1", output: map[string]any{"incident_id": "inc-9"}}
	n2 := &fakeNode{typ: "t2", output: map[string]any{"delivered": true}}
	env := setupDefinitionEnv(t, n1, n2)

	compiled := env.compile(t, definitionConfig(
		map[string]any{"id": "a", "type": "t1"},
		map[string]any{"id": "b", "type": "t2"},
	))
	run := env.createRun(t)
	ctx := context.Background()

	result, err := env.orchestrator.Execute(ctx, run, compiled)
	require.NoError(t, err)

	assert.Equal(t, string(pipelinerun.StatusCompleted), result.Status)
	assert.Equal(t, []string{"a", "b"}, result.ExecutedNodes)
	assert.Empty(t, result.SkippedNodes)
	assert.Equal(t, "inc-9", result.NodeResults["a"].Output["incident_id"])
	assert.Equal(t, true, result.NodeResults["b"].Output["delivered"])

	updated, err := env.runs.GetRun(ctx, run.ID, false)
	require.NoError(t, err)
	assert.Equal(t, pipelinerun.StatusCompleted, updated.Status)
	require.NotNil(t, updated.IncidentID)
	assert.Equal(t, "inc-9", *updated.IncidentID)

	execs, err := env.stages.ListByRun(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, execs, 2)
	assert.Equal(t, "t1", execs[0].Stage)
	assert.Equal(t, "a", execs[0].NodeID)
	assert.Equal(t, stageexecution.StatusSucceeded, execs[0].Status)
	assert.Equal(t, stageexecution.StatusSucceeded, execs[1].Status)
}

func TestOptionalNodeFailureContinuesRun(t *testing.T) {
	fatal := fmt.Errorf("%w: channel gone", services.ErrNotFound)
	n1 := &fakeNode{typ: "t1", output: map[string]any{"ok": true}}
	n2 := &fakeNode{typ: "t2", errs: []error{fatal, fatal, fatal}}
	env := setupDefinitionEnv(t, n1, n2)

	compiled := env.compile(t, definitionConfig(
		map[string]any{"id": "a", "type": "t1"},
		map[string]any{"id": "b", "type": "t2", "required": false},
	))
	run := env.createRun(t)
	ctx := context.Background()

	result, err := env.orchestrator.Execute(ctx, run, compiled)
	require.NoError(t, err)

	assert.Equal(t, string(pipelinerun.StatusCompleted), result.Status)
	assert.Equal(t, []string{"a", "b"}, result.ExecutedNodes)
	assert.NotEmpty(t, result.NodeResults["b"].Errors)

	updated, err := env.runs.GetRun(ctx, run.ID, false)
	require.NoError(t, err)
	assert.Equal(t, pipelinerun.StatusCompleted, updated.Status)
}

func TestRequiredNodeFailureFailsRun(t *testing.T) {
	fatal := fmt.Errorf("%w: no such incident", services.ErrNotFound)
	n1 := &fakeNode{typ: "t1", errs: []error{fatal}}
	n2 := &fakeNode{typ: "t2", output: map[string]any{}}
	env := setupDefinitionEnv(t, n1, n2)

	compiled := env.compile(t, definitionConfig(
		map[string]any{"id": "a", "type": "t1"},
		map[string]any{"id": "b", "type": "t2"},
	))
	run := env.createRun(t)
	ctx := context.Background()

	result, err := env.orchestrator.Execute(ctx, run, compiled)
	require.Error(t, err)

	assert.Equal(t, string(pipelinerun.StatusFailed), result.Status)
	assert.NotEmpty(t, result.Error)
	assert.Equal(t, []string{"a"}, result.ExecutedNodes)
	assert.Equal(t, 0, n2.calls)

	updated, err := env.runs.GetRun(ctx, run.ID, false)
	require.NoError(t, err)
	assert.Equal(t, pipelinerun.StatusFailed, updated.Status)
	require.NotNil(t, updated.LastErrorType)
	assert.Equal(t, "fatal", *updated.LastErrorType)
}

func TestSkipIfErrorsSkipsDownstreamNode(t *testing.T) {
	fatal := fmt.Errorf("%w: boom", services.ErrNotFound)
	n1 := &fakeNode{typ: "t1", errs: []error{fatal}}
	n2 := &fakeNode{typ: "t2", output: map[string]any{}}
	n3 := &fakeNode{typ: "t3", output: map[string]any{}}
	env := setupDefinitionEnv(t, n1, n2, n3)

	compiled := env.compile(t, definitionConfig(
		map[string]any{"id": "a", "type": "t1", "required": false},
		map[string]any{"id": "b", "type": "t2", "skip_if_errors": []any{"a"}},
		map[string]any{"id": "c", "type": "t3"},
	))
	run := env.createRun(t)
	ctx := context.Background()

	result, err := env.orchestrator.Execute(ctx, run, compiled)
	require.NoError(t, err)

	assert.Equal(t, string(pipelinerun.StatusCompleted), result.Status)
	assert.Equal(t, []string{"a", "c"}, result.ExecutedNodes)
	assert.Equal(t, []string{"b"}, result.SkippedNodes)
	assert.Equal(t, 0, n2.calls)
	assert.Equal(t, 1, n3.calls)

	skipped := result.NodeResults["b"]
	assert.True(t, skipped.Skipped)
	assert.Contains(t, skipped.SkipReason, "a has errors")

	execs, err := env.stages.ListByRun(ctx, run.ID)
	require.NoError(t, err)
	var skipRow *ent.StageExecution
	for _, exec := range execs {
		if exec.NodeID == "b" {
			skipRow = exec
		}
	}
	require.NotNil(t, skipRow)
	assert.Equal(t, stageexecution.StatusSkipped, skipRow.Status)
}

func TestSkipIfConditionNegation(t *testing.T) {
	n1 := &fakeNode{typ: "t1", output: map[string]any{}}
	n2 := &fakeNode{typ: "t2", output: map[string]any{}}
	n3 := &fakeNode{typ: "t3", output: map[string]any{}}
	env := setupDefinitionEnv(t, n1, n2, n3)

	compiled := env.compile(t, definitionConfig(
		map[string]any{"id": "a", "type": "t1"},
		// b runs only when a had errors; a succeeded, so b is skipped.
		map[string]any{"id": "b", "type": "t2", "skip_if_condition": "!a.has_errors"},
		// c is skipped only when a had errors; a succeeded, so c runs.
		map[string]any{"id": "c", "type": "t3", "skip_if_condition": "a.has_errors"},
	))
	run := env.createRun(t)

	result, err := env.orchestrator.Execute(context.Background(), run, compiled)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "c"}, result.ExecutedNodes)
	assert.Equal(t, []string{"b"}, result.SkippedNodes)
	assert.Equal(t, 0, n2.calls)
	assert.Equal(t, 1, n3.calls)
}

func TestNodeRetryThenSucceed(t *testing.T) {
	transient := fmt.Errorf("upstream hiccup")
	n1 := &fakeNode{typ: "t1", output: map[string]any{"ok": true}, errs: []error{transient}}
	env := setupDefinitionEnv(t, n1)

	compiled := env.compile(t, definitionConfig(
		map[string]any{"id": "a", "type": "t1"},
	))
	run := env.createRun(t)
	ctx := context.Background()

	result, err := env.orchestrator.Execute(ctx, run, compiled)
	require.NoError(t, err)

	assert.Equal(t, string(pipelinerun.StatusCompleted), result.Status)
	assert.Equal(t, 2, n1.calls)

	execs, err := env.stages.ListByRun(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, execs, 2)
	assert.Equal(t, stageexecution.StatusFailed, execs[0].Status)
	assert.Equal(t, 1, execs[0].Attempt)
	assert.Equal(t, stageexecution.StatusSucceeded, execs[1].Status)
	assert.Equal(t, 2, execs[1].Attempt)
}

func TestNodeRetryBudgetExhausted(t *testing.T) {
	transient := fmt.Errorf("still flaky")
	n1 := &fakeNode{typ: "t1", errs: []error{transient, transient, transient, transient}}
	env := setupDefinitionEnv(t, n1)

	config := definitionConfig(map[string]any{"id": "a", "type": "t1"})
	config["defaults"] = map[string]any{"max_retries": float64(2)}
	compiled := env.compile(t, config)
	run := env.createRun(t)
	ctx := context.Background()

	result, err := env.orchestrator.Execute(ctx, run, compiled)
	require.Error(t, err)

	assert.Equal(t, string(pipelinerun.StatusFailed), result.Status)
	assert.Equal(t, 2, n1.calls)

	updated, err := env.runs.GetRun(ctx, run.ID, false)
	require.NoError(t, err)
	assert.Equal(t, pipelinerun.StatusFailed, updated.Status)
	assert.Equal(t, 2, updated.TotalAttempts)
}
