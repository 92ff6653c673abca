// Package nodes holds the handler registry for definition-based pipelines.
// Each handler implements one node type; definitions reference handlers by
// type and pass them an opaque per-node config that is validated statically
// before any run executes.
package nodes

import (
	"context"
	"fmt"
	"sort"
)

// NodeContext is the shared, append-only state of one definition run. A node
// may read any previously executed node's output but must not mutate it.
type NodeContext struct {
	TraceID         string
	RunID           string
	IncidentID      string
	Payload         map[string]any
	PreviousOutputs map[string]map[string]any
	Environment     string
	Source          string
}

// Handler implements one node type.
type Handler interface {
	// Type is the registry key referenced by definition nodes.
	Type() string

	// Validate statically checks a node config at admission time.
	Validate(config map[string]any) error

	// Execute runs the node. The returned map becomes the node's output in
	// PreviousOutputs and in the persisted snapshot.
	Execute(ctx context.Context, config map[string]any, nc *NodeContext) (map[string]any, error)
}

// Registry holds the process-wide handler set. Populated at startup and
// read-only afterward.
type Registry struct {
	byType map[string]Handler
}

// NewRegistry creates an empty node handler registry.
func NewRegistry() *Registry {
	return &Registry{byType: make(map[string]Handler)}
}

// Register adds a handler. Duplicate types are a programming error.
func (r *Registry) Register(h Handler) error {
	if _, exists := r.byType[h.Type()]; exists {
		return fmt.Errorf("node handler %q already registered", h.Type())
	}
	r.byType[h.Type()] = h
	return nil
}

// Get returns the handler registered for a node type.
func (r *Registry) Get(nodeType string) (Handler, bool) {
	h, ok := r.byType[nodeType]
	return h, ok
}

// Types returns the registered node types, sorted.
func (r *Registry) Types() []string {
	types := make([]string, 0, len(r.byType))
	for t := range r.byType {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// configString reads an optional string key from a node config.
func configString(config map[string]any, key string) string {
	if v, ok := config[key].(string); ok {
		return v
	}
	return ""
}

// configStringSlice reads an optional list-of-strings key from a node config.
// JSON decoding yields []any, so both shapes are accepted.
func configStringSlice(config map[string]any, key string) ([]string, error) {
	raw, ok := config[key]
	if !ok {
		return nil, nil
	}
	switch v := raw.(type) {
	case []string:
		return v, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("config key %q must be a list of strings", key)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("config key %q must be a list of strings", key)
	}
}

// configInt reads an optional integer key from a node config. JSON decoding
// yields float64.
func configInt(config map[string]any, key string) (int, bool) {
	switch v := config[key].(type) {
	case int:
		return v, true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}
