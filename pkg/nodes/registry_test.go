package nodes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/conductor/pkg/checks"
	"github.com/codeready-toolchain/conductor/pkg/config"
)

func TestRegistryRegisterAndGet(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(NewTransformNode()))

	h, ok := r.Get("transform")
	require.True(t, ok)
	assert.Equal(t, "transform", h.Type())

	_, ok = r.Get("nonexistent")
	assert.False(t, ok)

	assert.Error(t, r.Register(NewTransformNode()))
	assert.Equal(t, []string{"transform"}, r.Types())
}

func TestIngestNodeValidate(t *testing.T) {
	n := NewIngestNode(nil)

	assert.NoError(t, n.Validate(map[string]any{}))
	assert.NoError(t, n.Validate(map[string]any{"source": "grafana"}))
	assert.Error(t, n.Validate(map[string]any{"source": 42}))
}

func TestContextNodeValidate(t *testing.T) {
	registry := checks.NewRegistry()
	n := NewContextNode(registry, config.DefaultChecksConfig(), nil)

	assert.NoError(t, n.Validate(map[string]any{}))
	assert.Error(t, n.Validate(map[string]any{"checkers": []any{"nonexistent"}}))
	assert.Error(t, n.Validate(map[string]any{"checkers": "not-a-list"}))
	assert.Error(t, n.Validate(map[string]any{"parallelism": float64(0)}))
	assert.NoError(t, n.Validate(map[string]any{"parallelism": float64(2)}))
}

func TestIntelligenceNodeValidate(t *testing.T) {
	n := NewIntelligenceNode(nil, config.DefaultIntelConfig(), nil)

	assert.NoError(t, n.Validate(map[string]any{}))
	assert.NoError(t, n.Validate(map[string]any{"provider": "local"}))
	assert.NoError(t, n.Validate(map[string]any{"provider": "anthropic"}))
	assert.Error(t, n.Validate(map[string]any{"provider": "watson"}))
}

func TestConfigHelpers(t *testing.T) {
	cfg := map[string]any{
		"name":  "x",
		"list":  []any{"a", "b"},
		"bad":   []any{"a", 1},
		"count": float64(3),
	}

	assert.Equal(t, "x", configString(cfg, "name"))
	assert.Equal(t, "", configString(cfg, "missing"))

	list, err := configStringSlice(cfg, "list")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, list)

	_, err = configStringSlice(cfg, "bad")
	assert.Error(t, err)

	missing, err := configStringSlice(cfg, "missing")
	require.NoError(t, err)
	assert.Nil(t, missing)

	count, ok := configInt(cfg, "count")
	require.True(t, ok)
	assert.Equal(t, 3, count)
}
