package nodes

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func transformContext() *NodeContext {
	return &NodeContext{
		RunID: "run-1",
		PreviousOutputs: map[string]map[string]any{
			"analysis": {
				"provider": "local",
				"recommendations": []any{
					map[string]any{"title": "Expand volume", "priority": "high"},
					map[string]any{"title": "Rotate logs", "priority": "medium"},
					map[string]any{"title": "Tune alert", "priority": "high"},
				},
			},
			"diagnostics": {
				"checks_run": float64(2),
				"results": map[string]any{
					"database": map[string]any{"status": "ok"},
				},
			},
		},
	}
}

func TestTransformValidate(t *testing.T) {
	n := NewTransformNode()

	assert.Error(t, n.Validate(map[string]any{}))
	assert.Error(t, n.Validate(map[string]any{"source_node": "a", "mapping": "not-an-object"}))
	assert.Error(t, n.Validate(map[string]any{"source_node": "a", "mapping": map[string]any{"x": 7}}))
	assert.NoError(t, n.Validate(map[string]any{"source_node": "a"}))
	assert.NoError(t, n.Validate(map[string]any{"source_node": "a", "mapping": map[string]any{"x": "y.z"}}))
}

func TestTransformExtractDottedPath(t *testing.T) {
	n := NewTransformNode()

	out, err := n.Execute(context.Background(), map[string]any{
		"source_node": "diagnostics",
		"extract":     "results.database",
	}, transformContext())
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"status": "ok"}, out)
}

func TestTransformFilterPriority(t *testing.T) {
	n := NewTransformNode()

	out, err := n.Execute(context.Background(), map[string]any{
		"source_node":     "analysis",
		"extract":         "recommendations",
		"filter_priority": "high",
	}, transformContext())
	require.NoError(t, err)

	items, ok := out["result"].([]any)
	require.True(t, ok)
	require.Len(t, items, 2)
	assert.Equal(t, "Expand volume", items[0].(map[string]any)["title"])
	assert.Equal(t, "Tune alert", items[1].(map[string]any)["title"])
}

func TestTransformMapping(t *testing.T) {
	n := NewTransformNode()

	out, err := n.Execute(context.Background(), map[string]any{
		"source_node": "diagnostics",
		"mapping": map[string]any{
			"db_status": "results.database.status",
			"total":     "checks_run",
		},
	}, transformContext())
	require.NoError(t, err)
	assert.Equal(t, "ok", out["db_status"])
	assert.Equal(t, float64(2), out["total"])
}

func TestTransformErrors(t *testing.T) {
	n := NewTransformNode()
	nc := transformContext()

	_, err := n.Execute(context.Background(), map[string]any{"source_node": "missing"}, nc)
	assert.ErrorContains(t, err, "has no output")

	_, err = n.Execute(context.Background(), map[string]any{
		"source_node": "diagnostics",
		"extract":     "results.nonexistent",
	}, nc)
	assert.ErrorContains(t, err, "has no key")

	_, err = n.Execute(context.Background(), map[string]any{
		"source_node": "diagnostics",
		"extract":     "checks_run.deeper",
	}, nc)
	assert.ErrorContains(t, err, "does not resolve to an object")
}
