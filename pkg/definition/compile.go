package definition

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/codeready-toolchain/conductor/pkg/nodes"
	"github.com/codeready-toolchain/conductor/pkg/services"
)

// maxStageLen is the stage column width; node types longer than this are
// truncated when recorded as StageExecution rows.
const maxStageLen = 20

// Compile validates a raw definition config against the handler registry and
// returns its immutable executable form. All validation happens here, before
// any run is created; an executing pipeline never revalidates. Every problem
// in the config is collected, not just the first one found.
func Compile(config map[string]any, registry *nodes.Registry) (*CompiledPipeline, error) {
	def, err := decodeDefinition(config)
	if err != nil {
		return nil, err
	}

	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if def.Version == "" {
		fail("definition version is required")
	}
	if len(def.Nodes) == 0 {
		fail("definition must declare at least one node")
	}

	maxRetries := DefaultMaxRetries
	timeoutSeconds := DefaultTimeoutSeconds
	if def.Defaults != nil {
		if def.Defaults.MaxRetries != nil {
			if *def.Defaults.MaxRetries < 1 {
				fail("defaults.max_retries must be positive")
			} else {
				maxRetries = *def.Defaults.MaxRetries
			}
		}
		if def.Defaults.TimeoutSeconds != nil {
			if *def.Defaults.TimeoutSeconds < 1 {
				fail("defaults.timeout_seconds must be positive")
			} else {
				timeoutSeconds = *def.Defaults.TimeoutSeconds
			}
		}
	}

	ids := make(map[string]bool, len(def.Nodes))
	for _, node := range def.Nodes {
		if node.ID == "" {
			fail("every node requires an id")
			continue
		}
		if ids[node.ID] {
			fail("duplicate node id %q", node.ID)
		}
		ids[node.ID] = true
	}

	compiled := &CompiledPipeline{
		Version:    def.Version,
		MaxRetries: maxRetries,
		Timeout:    time.Duration(timeoutSeconds) * time.Second,
		Nodes:      make([]CompiledNode, 0, len(def.Nodes)),
	}

	for _, node := range def.Nodes {
		handler, ok := registry.Get(node.Type)
		if !ok {
			fail("node %q: unknown node type %q", node.ID, node.Type)
		} else if err := handler.Validate(node.Config); err != nil {
			fail("node %q: %w", node.ID, err)
		}
		if node.Next != "" && !ids[node.Next] {
			fail("node %q: next references unknown node %q", node.ID, node.Next)
		}
		for _, ref := range node.SkipIfErrors {
			if !ids[ref] {
				fail("node %q: skip_if_errors references unknown node %q", node.ID, ref)
			}
			if ref == node.ID {
				fail("node %q: skip_if_errors references itself", node.ID)
			}
		}

		var condition *Condition
		if node.SkipIfCondition != "" {
			condition, err = parseCondition(node.SkipIfCondition)
			if err != nil {
				fail("node %q: %w", node.ID, err)
			} else if !ids[condition.NodeID] {
				fail("node %q: skip_if_condition references unknown node %q", node.ID, condition.NodeID)
			}
		}

		if handler == nil {
			continue
		}

		required := true
		if node.Required != nil {
			required = *node.Required
		}

		compiled.Nodes = append(compiled.Nodes, CompiledNode{
			ID:              node.ID,
			Type:            node.Type,
			Stage:           truncateStage(node.Type),
			Handler:         handler,
			Config:          node.Config,
			Required:        required,
			SkipIfErrors:    node.SkipIfErrors,
			SkipIfCondition: condition,
		})
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return compiled, nil
}

// ErrorList flattens a compile error into its individual messages for API
// responses.
func ErrorList(err error) []string {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		flattened := joined.Unwrap()
		msgs := make([]string, 0, len(flattened))
		for _, e := range flattened {
			msgs = append(msgs, e.Error())
		}
		return msgs
	}
	return []string{err.Error()}
}

// Validator adapts Compile into the admission check the definition service
// runs before persisting a config.
func Validator(registry *nodes.Registry) services.DefinitionValidator {
	return func(config map[string]any) error {
		_, err := Compile(config, registry)
		return err
	}
}

// parseCondition parses the skip predicate grammar. Only
// "<node_id>.has_errors" and its negation are supported; anything else is a
// validation error.
func parseCondition(expr string) (*Condition, error) {
	trimmed := strings.TrimSpace(expr)

	negate := false
	if strings.HasPrefix(trimmed, "!") {
		negate = true
		trimmed = strings.TrimSpace(trimmed[1:])
	}

	nodeID, ok := strings.CutSuffix(trimmed, ".has_errors")
	if !ok || nodeID == "" || strings.ContainsAny(nodeID, " .!") {
		return nil, fmt.Errorf("invalid skip_if_condition %q: expected \"<node_id>.has_errors\" or \"!<node_id>.has_errors\"", expr)
	}

	return &Condition{NodeID: nodeID, Negate: negate}, nil
}

// decodeDefinition round-trips the stored config through JSON so the struct
// sees exactly what the database and the API see.
func decodeDefinition(config map[string]any) (*Definition, error) {
	raw, err := json.Marshal(config)
	if err != nil {
		return nil, fmt.Errorf("definition config is not serializable: %w", err)
	}
	var def Definition
	if err := json.Unmarshal(raw, &def); err != nil {
		return nil, fmt.Errorf("invalid definition config: %w", err)
	}
	return &def, nil
}

func truncateStage(nodeType string) string {
	if len(nodeType) > maxStageLen {
		return nodeType[:maxStageLen]
	}
	return nodeType
}
