package nodes

import (
	"context"
	"fmt"
	"strings"
)

// TransformNode is a pure projection over a source node's output. Config:
// source_node (required), extract (dotted path), filter_priority (keeps only
// recommendations with the given priority), mapping (target key -> dotted
// source path).
type TransformNode struct{}

// NewTransformNode creates the transform node handler.
func NewTransformNode() *TransformNode { return &TransformNode{} }

func (n *TransformNode) Type() string { return "transform" }

func (n *TransformNode) Validate(config map[string]any) error {
	if configString(config, "source_node") == "" {
		return fmt.Errorf("transform node: 'source_node' is required")
	}
	if raw, ok := config["mapping"]; ok {
		mapping, isMap := raw.(map[string]any)
		if !isMap {
			return fmt.Errorf("transform node: 'mapping' must be an object")
		}
		for target, source := range mapping {
			if _, isString := source.(string); !isString {
				return fmt.Errorf("transform node: mapping %q must name a dotted source path", target)
			}
		}
	}
	return nil
}

func (n *TransformNode) Execute(_ context.Context, config map[string]any, nc *NodeContext) (map[string]any, error) {
	sourceNode := configString(config, "source_node")
	source, ok := nc.PreviousOutputs[sourceNode]
	if !ok {
		return nil, fmt.Errorf("transform node: source node %q has no output", sourceNode)
	}

	var result any = source

	if path := configString(config, "extract"); path != "" {
		extracted, err := lookupPath(source, path)
		if err != nil {
			return nil, err
		}
		result = extracted
	}

	if priority := configString(config, "filter_priority"); priority != "" {
		result = filterByPriority(result, priority)
	}

	if raw, ok := config["mapping"]; ok {
		mapping := raw.(map[string]any)
		mapped := make(map[string]any, len(mapping))
		for target, sourcePath := range mapping {
			value, err := lookupPath(source, sourcePath.(string))
			if err != nil {
				return nil, err
			}
			mapped[target] = value
		}
		return mapped, nil
	}

	// Non-mapping results are wrapped so the output stays an object.
	if m, isMap := result.(map[string]any); isMap {
		return m, nil
	}
	return map[string]any{"result": result}, nil
}

// lookupPath resolves a dotted path (e.g. "results.database.status") inside
// a node output.
func lookupPath(source map[string]any, path string) (any, error) {
	var current any = source
	for _, segment := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("transform node: path %q does not resolve to an object at %q", path, segment)
		}
		current, ok = m[segment]
		if !ok {
			return nil, fmt.Errorf("transform node: path %q has no key %q", path, segment)
		}
	}
	return current, nil
}

// filterByPriority keeps only list items whose "priority" field matches.
// Non-list inputs pass through unchanged.
func filterByPriority(value any, priority string) any {
	items, ok := value.([]any)
	if !ok {
		return value
	}
	filtered := make([]any, 0, len(items))
	for _, item := range items {
		m, isMap := item.(map[string]any)
		if !isMap {
			continue
		}
		if p, _ := m["priority"].(string); p == priority {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
