// Package definition holds the declarative pipeline format: the JSON node
// graph stored on a PipelineDefinition, its static validation, the compiled
// executable form, and the orchestrator that runs it.
package definition

import (
	"time"

	"github.com/codeready-toolchain/conductor/pkg/nodes"
)

const (
	// DefaultMaxRetries is the per-node retry budget when the definition
	// declares none.
	DefaultMaxRetries = 3

	// DefaultTimeoutSeconds bounds a single node invocation when the
	// definition declares no timeout.
	DefaultTimeoutSeconds = 300
)

// Definition is the JSON shape of a PipelineDefinition config.
type Definition struct {
	Version     string    `json:"version"`
	Description string    `json:"description,omitempty"`
	Defaults    *Defaults `json:"defaults,omitempty"`
	Nodes       []Node    `json:"nodes"`
}

// Defaults are merged into every node of the definition.
type Defaults struct {
	MaxRetries     *int `json:"max_retries,omitempty"`
	TimeoutSeconds *int `json:"timeout_seconds,omitempty"`
}

// Node is one declared step of a definition.
type Node struct {
	ID     string         `json:"id"`
	Type   string         `json:"type"`
	Config map[string]any `json:"config,omitempty"`

	// Next is informational. Nodes execute in declared order; the link is
	// kept for documentation and future branching.
	Next string `json:"next,omitempty"`

	// Required defaults to true. A failed non-required node is recorded and
	// the run continues.
	Required *bool `json:"required,omitempty"`

	// SkipIfErrors skips this node when any listed node recorded errors.
	SkipIfErrors []string `json:"skip_if_errors,omitempty"`

	// SkipIfCondition is a minimal predicate over prior node results:
	// "<node_id>.has_errors" or "!<node_id>.has_errors".
	SkipIfCondition string `json:"skip_if_condition,omitempty"`
}

// NodeResult is the recorded outcome of one node in an execution.
type NodeResult struct {
	Output     map[string]any `json:"output,omitempty"`
	Errors     []string       `json:"errors,omitempty"`
	DurationMs int64          `json:"duration_ms"`
	Skipped    bool           `json:"skipped,omitempty"`
	SkipReason string         `json:"skip_reason,omitempty"`
}

// ExecutionResult is the full outcome of one definition run, returned to
// synchronous callers and recorded by the worker for async ones.
type ExecutionResult struct {
	RunID         string                `json:"run_id"`
	TraceID       string                `json:"trace_id"`
	Status        string                `json:"status"`
	ExecutedNodes []string              `json:"executed_nodes"`
	SkippedNodes  []string              `json:"skipped_nodes"`
	NodeResults   map[string]NodeResult `json:"node_results"`
	DurationMs    int64                 `json:"duration_ms"`
	Error         string                `json:"error,omitempty"`
}

// ExecuteRequest is the caller-supplied input of one definition execution.
type ExecuteRequest struct {
	Payload     map[string]any `json:"payload"`
	Source      string         `json:"source,omitempty"`
	TraceID     string         `json:"trace_id,omitempty"`
	Environment string         `json:"environment,omitempty"`
	IncidentID  string         `json:"incident_id,omitempty"`
}

// CompiledPipeline is the immutable executable form of a definition. Built
// once at admission by Compile; never mutated afterward.
type CompiledPipeline struct {
	Version    string
	MaxRetries int
	Timeout    time.Duration
	Nodes      []CompiledNode
}

// CompiledNode pairs a declared node with its resolved handler.
type CompiledNode struct {
	ID              string
	Type            string
	Stage           string
	Handler         nodes.Handler
	Config          map[string]any
	Required        bool
	SkipIfErrors    []string
	SkipIfCondition *Condition
}

// Condition is a parsed skip predicate.
type Condition struct {
	NodeID string
	Negate bool
}

// Evaluate reports whether the predicate holds given the per-node error
// state of the run so far.
func (c *Condition) Evaluate(nodeErrors map[string]bool) bool {
	hasErrors := nodeErrors[c.NodeID]
	if c.Negate {
		return !hasErrors
	}
	return hasErrors
}
