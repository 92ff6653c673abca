package definition

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/conductor/pkg/nodes"
)

type stubHandler struct {
	typ         string
	validateErr error
}

func (h *stubHandler) Type() string                  { return h.typ }
func (h *stubHandler) Validate(map[string]any) error { return h.validateErr }
func (h *stubHandler) Execute(context.Context, map[string]any, *nodes.NodeContext) (map[string]any, error) {
	return map[string]any{}, nil
}

func testRegistry(t *testing.T) *nodes.Registry {
	t.Helper()
	r := nodes.NewRegistry()
	require.NoError(t, r.Register(&stubHandler{typ: "context"}))
	require.NoError(t, r.Register(&stubHandler{typ: "notify"}))
	require.NoError(t, r.Register(&stubHandler{typ: "picky", validateErr: fmt.Errorf("missing field")}))
	require.NoError(t, r.Register(nodes.NewTransformNode()))
	return r
}

func validConfig() map[string]any {
	return map[string]any{
		"version": "1.0",
		"nodes": []any{
			map[string]any{"id": "a", "type": "context", "next": "b"},
			map[string]any{"id": "b", "type": "notify", "required": false},
		},
	}
}

func TestCompileValidDefinition(t *testing.T) {
	compiled, err := Compile(validConfig(), testRegistry(t))
	require.NoError(t, err)

	assert.Equal(t, "1.0", compiled.Version)
	assert.Equal(t, DefaultMaxRetries, compiled.MaxRetries)
	assert.Equal(t, time.Duration(DefaultTimeoutSeconds)*time.Second, compiled.Timeout)
	require.Len(t, compiled.Nodes, 2)
	assert.True(t, compiled.Nodes[0].Required)
	assert.False(t, compiled.Nodes[1].Required)
	assert.Equal(t, "context", compiled.Nodes[0].Stage)
	assert.NotNil(t, compiled.Nodes[0].Handler)
}

func TestCompileAppliesDefaults(t *testing.T) {
	config := validConfig()
	config["defaults"] = map[string]any{
		"max_retries":     float64(5),
		"timeout_seconds": float64(30),
	}

	compiled, err := Compile(config, testRegistry(t))
	require.NoError(t, err)
	assert.Equal(t, 5, compiled.MaxRetries)
	assert.Equal(t, 30*time.Second, compiled.Timeout)
}

func TestCompileValidationMatrix(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(config map[string]any)
		wantErr string
	}{
		{
			name:    "missing version",
			mutate:  func(c map[string]any) { delete(c, "version") },
			wantErr: "version is required",
		},
		{
			name:    "empty nodes",
			mutate:  func(c map[string]any) { c["nodes"] = []any{} },
			wantErr: "at least one node",
		},
		{
			name: "missing node id",
			mutate: func(c map[string]any) {
				c["nodes"] = []any{map[string]any{"type": "context"}}
			},
			wantErr: "requires an id",
		},
		{
			name: "duplicate node id",
			mutate: func(c map[string]any) {
				c["nodes"] = []any{
					map[string]any{"id": "a", "type": "context"},
					map[string]any{"id": "a", "type": "notify"},
				}
			},
			wantErr: "duplicate node id",
		},
		{
			name: "unknown node type",
			mutate: func(c map[string]any) {
				c["nodes"] = []any{map[string]any{"id": "a", "type": "teleport"}}
			},
			wantErr: "unknown node type",
		},
		{
			name: "next references unknown node",
			mutate: func(c map[string]any) {
				c["nodes"] = []any{map[string]any{"id": "a", "type": "context", "next": "zz"}}
			},
			wantErr: "next references unknown node",
		},
		{
			name: "node config rejected by handler",
			mutate: func(c map[string]any) {
				c["nodes"] = []any{map[string]any{"id": "a", "type": "picky"}}
			},
			wantErr: "missing field",
		},
		{
			name: "skip_if_errors references unknown node",
			mutate: func(c map[string]any) {
				c["nodes"] = []any{
					map[string]any{"id": "a", "type": "context"},
					map[string]any{"id": "b", "type": "notify", "skip_if_errors": []any{"zz"}},
				}
			},
			wantErr: "skip_if_errors references unknown node",
		},
		{
			name: "skip_if_errors references itself",
			mutate: func(c map[string]any) {
				c["nodes"] = []any{
					map[string]any{"id": "a", "type": "context", "skip_if_errors": []any{"a"}},
				}
			},
			wantErr: "references itself",
		},
		{
			name: "skip_if_condition bad grammar",
			mutate: func(c map[string]any) {
				c["nodes"] = []any{
					map[string]any{"id": "a", "type": "context"},
					map[string]any{"id": "b", "type": "notify", "skip_if_condition": "a.is_slow"},
				}
			},
			wantErr: "invalid skip_if_condition",
		},
		{
			name: "skip_if_condition references unknown node",
			mutate: func(c map[string]any) {
				c["nodes"] = []any{
					map[string]any{"id": "a", "type": "context", "skip_if_condition": "zz.has_errors"},
				}
			},
			wantErr: "references unknown node",
		},
		{
			name:    "zero max_retries",
			mutate:  func(c map[string]any) { c["defaults"] = map[string]any{"max_retries": float64(0)} },
			wantErr: "max_retries must be positive",
		},
		{
			name:    "zero timeout",
			mutate:  func(c map[string]any) { c["defaults"] = map[string]any{"timeout_seconds": float64(0)} },
			wantErr: "timeout_seconds must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validConfig()
			tt.mutate(config)
			_, err := Compile(config, testRegistry(t))
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestCompileCollectsAllErrors(t *testing.T) {
	config := map[string]any{
		"nodes": []any{
			map[string]any{"id": "a", "type": "teleport"},
			map[string]any{"id": "b", "type": "picky", "next": "zz"},
		},
	}

	_, err := Compile(config, testRegistry(t))
	require.Error(t, err)

	// One pass reports every problem, not just the first.
	msgs := ErrorList(err)
	require.Len(t, msgs, 4)
	assert.Contains(t, msgs[0], "version is required")
	assert.Contains(t, msgs[1], "unknown node type")
	assert.Contains(t, msgs[2], "missing field")
	assert.Contains(t, msgs[3], "next references unknown node")
}

func TestErrorListSingleError(t *testing.T) {
	assert.Nil(t, ErrorList(nil))
	assert.Equal(t, []string{"boom"}, ErrorList(fmt.Errorf("boom")))
}

func TestParseCondition(t *testing.T) {
	cond, err := parseCondition("a.has_errors")
	require.NoError(t, err)
	assert.Equal(t, "a", cond.NodeID)
	assert.False(t, cond.Negate)

	cond, err = parseCondition("!diagnostics.has_errors")
	require.NoError(t, err)
	assert.Equal(t, "diagnostics", cond.NodeID)
	assert.True(t, cond.Negate)

	for _, bad := range []string{"", "has_errors", ".has_errors", "a.b.has_errors", "a.has_errors && b.has_errors"} {
		_, err := parseCondition(bad)
		assert.Error(t, err, "expr %q", bad)
	}
}

func TestConditionEvaluate(t *testing.T) {
	errs := map[string]bool{"a": true}

	assert.True(t, (&Condition{NodeID: "a"}).Evaluate(errs))
	assert.False(t, (&Condition{NodeID: "b"}).Evaluate(errs))
	assert.False(t, (&Condition{NodeID: "a", Negate: true}).Evaluate(errs))
	assert.True(t, (&Condition{NodeID: "b", Negate: true}).Evaluate(errs))
}

func TestValidatorAdaptsCompile(t *testing.T) {
	validate := Validator(testRegistry(t))

	assert.NoError(t, validate(validConfig()))
	assert.Error(t, validate(map[string]any{"version": "1.0"}))
}
