package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/conductor/ent"
	"github.com/codeready-toolchain/conductor/ent/pipelinerun"
	"github.com/codeready-toolchain/conductor/pkg/config"
	"github.com/codeready-toolchain/conductor/pkg/definition"
	"github.com/codeready-toolchain/conductor/pkg/models"
	"github.com/codeready-toolchain/conductor/pkg/nodes"
	"github.com/codeready-toolchain/conductor/pkg/queue"
	"github.com/codeready-toolchain/conductor/pkg/services"
	testdb "github.com/codeready-toolchain/conductor/test/database"
)

// staticNode is a trivial handler for definition tests; it echoes its config
// message as output.
type staticNode struct{}

func (staticNode) Type() string                  { return "static" }
func (staticNode) Validate(map[string]any) error { return nil }
func (staticNode) Execute(_ context.Context, config map[string]any, _ *nodes.NodeContext) (map[string]any, error) {
	return map[string]any{"message": config["message"]}, nil
}

// completingExecutor simulates a run executor that drives the run to a
// terminal status, the way the real orchestrator does.
type completingExecutor struct {
	client *ent.Client
}

func (e *completingExecutor) Execute(ctx context.Context, run *ent.PipelineRun) *queue.ExecutionResult {
	err := e.client.PipelineRun.UpdateOneID(run.ID).
		SetStatus(pipelinerun.StatusCompleted).
		SetCompletedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return &queue.ExecutionResult{Status: pipelinerun.StatusFailed, Error: err}
	}
	return &queue.ExecutionResult{Status: pipelinerun.StatusCompleted}
}

type apiEnv struct {
	client *ent.Client
	server *Server
	router *gin.Engine
	runs   *services.RunService
	defs   *services.DefinitionService
}

func setupAPI(t *testing.T) *apiEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	client := testdb.NewTestClient(t)
	registry := nodes.NewRegistry()
	require.NoError(t, registry.Register(nodes.NewTransformNode()))
	require.NoError(t, registry.Register(staticNode{}))

	retry := config.DefaultRetryConfig()
	retry.BaseDelay = 1 * time.Millisecond
	retry.MaxDelay = 5 * time.Millisecond

	runs := services.NewRunService(client.Client)
	stageExecs := services.NewStageExecutionService(client.Client)
	defs := services.NewDefinitionService(client.Client, definition.Validator(registry))
	defOrch := definition.NewOrchestrator(runs, stageExecs, nil, retry)

	server := NewServer(ServerConfig{
		PodID:       "api-test-pod",
		Runs:        runs,
		Definitions: defs,
		Registry:    registry,
		DefOrch:     defOrch,
		Retry:       retry,
	})

	return &apiEnv{
		client: client.Client,
		server: server,
		router: server.Router(),
		runs:   runs,
		defs:   defs,
	}
}

func (env *apiEnv) doJSON(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func staticDefinitionConfig() map[string]any {
	return map[string]any{
		"version": "1",
		"nodes": []any{
			map[string]any{
				"id":     "emit",
				"type":   "static",
				"config": map[string]any{"message": "hello"},
			},
		},
	}
}

func TestSubmitPipelineAsync(t *testing.T) {
	env := setupAPI(t)

	w := env.doJSON(t, http.MethodPost, "/api/v1/pipeline?source=grafana&async=true",
		map[string]any{"title": "disk pressure", "severity": "critical"})
	require.Equal(t, http.StatusAccepted, w.Code)

	body := decodeBody(t, w)
	runID, _ := body["run_id"].(string)
	require.NotEmpty(t, runID)
	assert.NotEmpty(t, body["trace_id"])

	run, err := env.client.PipelineRun.Get(context.Background(), runID)
	require.NoError(t, err)
	assert.Equal(t, pipelinerun.StatusPending, run.Status)
	assert.Equal(t, "grafana", run.Source)
	assert.Equal(t, pipelinerun.ModeFixed, run.Mode)
}

func TestSubmitPipelineEmptyPayload(t *testing.T) {
	env := setupAPI(t)

	w := env.doJSON(t, http.MethodPost, "/api/v1/pipeline", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitPipelineSync(t *testing.T) {
	env := setupAPI(t)
	env.server.executor = &completingExecutor{client: env.client}

	w := env.doJSON(t, http.MethodPost, "/api/v1/pipeline?source=grafana",
		map[string]any{"title": "disk pressure"})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	run, ok := body["run"].(map[string]any)
	require.True(t, ok, "response should embed the run record")
	assert.Equal(t, "completed", run["status"])
	// Inline execution claims the run before the executor starts.
	assert.Equal(t, "api-test-pod", run["pod_id"])
}

func TestGetRunNotFound(t *testing.T) {
	env := setupAPI(t)

	w := env.doJSON(t, http.MethodGet, "/api/v1/pipeline/no-such-run", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListRunsStatusFilter(t *testing.T) {
	env := setupAPI(t)
	ctx := context.Background()

	first, err := env.runs.CreateRun(ctx, models.CreateRunRequest{
		Source:  "grafana",
		Payload: map[string]any{"title": "a"},
	})
	require.NoError(t, err)
	_, err = env.runs.CreateRun(ctx, models.CreateRunRequest{
		Source:  "grafana",
		Payload: map[string]any{"title": "b"},
	})
	require.NoError(t, err)

	require.NoError(t, env.client.PipelineRun.UpdateOneID(first.ID).
		SetStatus(pipelinerun.StatusCompleted).
		Exec(ctx))

	w := env.doJSON(t, http.MethodGet, "/api/v1/pipelines?status=completed", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(1), body["count"])
}

func TestResumeRun(t *testing.T) {
	env := setupAPI(t)
	ctx := context.Background()

	run, err := env.runs.CreateRun(ctx, models.CreateRunRequest{
		Source:  "grafana",
		Payload: map[string]any{"title": "a"},
	})
	require.NoError(t, err)
	require.NoError(t, env.client.PipelineRun.UpdateOneID(run.ID).
		SetStatus(pipelinerun.StatusFailed).
		SetPodID("dead-pod").
		Exec(ctx))

	w := env.doJSON(t, http.MethodPost, "/api/v1/pipeline/"+run.ID+"/resume", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "pending", body["status"])

	// A pending run cannot be resumed again.
	w = env.doJSON(t, http.MethodPost, "/api/v1/pipeline/"+run.ID+"/resume", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCancelRun(t *testing.T) {
	env := setupAPI(t)
	ctx := context.Background()

	// Unknown run is a 404.
	w := env.doJSON(t, http.MethodPost, "/api/v1/pipeline/no-such-run/cancel", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// A run that exists but is not executing here is a conflict.
	run, err := env.runs.CreateRun(ctx, models.CreateRunRequest{
		Source:  "grafana",
		Payload: map[string]any{"title": "a"},
	})
	require.NoError(t, err)
	w = env.doJSON(t, http.MethodPost, "/api/v1/pipeline/"+run.ID+"/cancel", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// A run registered with the pool gets cancelled.
	pool := queue.NewWorkerPool("api-test-pod", env.client, &config.QueueConfig{WorkerCount: 1, MaxConcurrentRuns: 1}, nil)
	env.server.pool = pool
	cancelCtx, cancel := context.WithCancel(ctx)
	pool.RegisterRun(run.ID, cancel)

	w = env.doJSON(t, http.MethodPost, "/api/v1/pipeline/"+run.ID+"/cancel", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Error(t, cancelCtx.Err())
}

func TestCreateDefinition(t *testing.T) {
	env := setupAPI(t)

	w := env.doJSON(t, http.MethodPost, "/api/v1/definitions", CreateDefinitionRequest{
		Name:   "demo",
		Config: staticDefinitionConfig(),
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Duplicate names conflict.
	w = env.doJSON(t, http.MethodPost, "/api/v1/definitions", CreateDefinitionRequest{
		Name:   "demo",
		Config: staticDefinitionConfig(),
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Invalid configs are rejected at admission.
	w = env.doJSON(t, http.MethodPost, "/api/v1/definitions", CreateDefinitionRequest{
		Name:   "broken",
		Config: map[string]any{"nodes": []any{}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetDefinition(t *testing.T) {
	env := setupAPI(t)
	ctx := context.Background()

	_, err := env.defs.CreateDefinition(ctx, "demo", "test definition", staticDefinitionConfig(), nil)
	require.NoError(t, err)

	w := env.doJSON(t, http.MethodGet, "/api/v1/definitions/demo", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "demo", body["name"])

	w = env.doJSON(t, http.MethodGet, "/api/v1/definitions/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListDefinitions(t *testing.T) {
	env := setupAPI(t)
	ctx := context.Background()

	first, err := env.defs.CreateDefinition(ctx, "alpha", "", staticDefinitionConfig(), nil)
	require.NoError(t, err)
	_, err = env.defs.CreateDefinition(ctx, "beta", "", staticDefinitionConfig(), nil)
	require.NoError(t, err)
	require.NoError(t, env.defs.SetActive(ctx, first.ID, false))

	w := env.doJSON(t, http.MethodGet, "/api/v1/definitions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), decodeBody(t, w)["count"])

	w = env.doJSON(t, http.MethodGet, "/api/v1/definitions?active=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decodeBody(t, w)["count"])
}

func TestValidateDefinition(t *testing.T) {
	env := setupAPI(t)
	ctx := context.Background()

	_, err := env.defs.CreateDefinition(ctx, "demo", "", staticDefinitionConfig(), nil)
	require.NoError(t, err)

	// Stored config re-validates cleanly.
	w := env.doJSON(t, http.MethodPost, "/api/v1/definitions/demo/validate", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["valid"])

	// A posted config is validated instead of the stored one, and every
	// problem comes back, not just the first.
	w = env.doJSON(t, http.MethodPost, "/api/v1/definitions/demo/validate", map[string]any{
		"nodes": []any{
			map[string]any{"id": "x", "type": "unknown-type", "config": map[string]any{}},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["valid"])

	errs, ok := body["errors"].([]any)
	require.True(t, ok)
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0], "version is required")
	assert.Contains(t, errs[1], "unknown-type")
}

func TestExecuteDefinitionAsync(t *testing.T) {
	env := setupAPI(t)
	ctx := context.Background()

	_, err := env.defs.CreateDefinition(ctx, "demo", "", staticDefinitionConfig(), nil)
	require.NoError(t, err)

	w := env.doJSON(t, http.MethodPost, "/api/v1/definitions/demo/execute?async=true",
		definition.ExecuteRequest{Payload: map[string]any{"title": "x"}})
	require.Equal(t, http.StatusAccepted, w.Code)

	runID, _ := decodeBody(t, w)["run_id"].(string)
	require.NotEmpty(t, runID)

	run, err := env.client.PipelineRun.Get(ctx, runID)
	require.NoError(t, err)
	assert.Equal(t, pipelinerun.ModeDefinition, run.Mode)
	require.NotNil(t, run.DefinitionName)
	assert.Equal(t, "demo", *run.DefinitionName)
}

func TestExecuteDefinitionSync(t *testing.T) {
	env := setupAPI(t)
	ctx := context.Background()

	_, err := env.defs.CreateDefinition(ctx, "demo", "", staticDefinitionConfig(), nil)
	require.NoError(t, err)

	w := env.doJSON(t, http.MethodPost, "/api/v1/definitions/demo/execute",
		definition.ExecuteRequest{Payload: map[string]any{"title": "x"}, Source: "api"})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "completed", body["status"])
	results, ok := body["node_results"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, results, "emit")

	runID, _ := body["run_id"].(string)
	run, err := env.client.PipelineRun.Get(ctx, runID)
	require.NoError(t, err)
	assert.Equal(t, pipelinerun.StatusCompleted, run.Status)
}

func TestExecuteDefinitionInactive(t *testing.T) {
	env := setupAPI(t)
	ctx := context.Background()

	def, err := env.defs.CreateDefinition(ctx, "demo", "", staticDefinitionConfig(), nil)
	require.NoError(t, err)
	require.NoError(t, env.defs.SetActive(ctx, def.ID, false))

	w := env.doJSON(t, http.MethodPost, "/api/v1/definitions/demo/execute",
		definition.ExecuteRequest{Payload: map[string]any{"title": "x"}})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHealthEndpoint(t *testing.T) {
	env := setupAPI(t)

	w := env.doJSON(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", decodeBody(t, w)["status"])
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}
