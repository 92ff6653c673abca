// Package pipeline runs the fixed alert-processing topology:
// ingest -> check -> analyze -> notify. Every stage attempt is persisted as
// a StageExecution row before it runs, so a crashed or retried run can be
// resumed without recomputing finished stages.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
)

// RunContext is the mutable state threaded through the stages of one run.
// Outputs of finished stages are immutable once recorded.
type RunContext struct {
	RunID       string
	TraceID     string
	Source      string
	Environment string
	IncidentID  string
	Payload     map[string]any
	Outputs     map[string]map[string]any
}

// Stage executes one step of the fixed topology.
type Stage interface {
	// Name is the stage identifier persisted on StageExecution rows.
	Name() string

	// Execute runs the stage and returns its output snapshot. The run
	// context carries the payload and all prior stage outputs.
	Execute(ctx context.Context, rc *RunContext) (map[string]any, error)
}

// skipper is implemented by stages that can decide to sit a run out.
type skipper interface {
	ShouldSkip(rc *RunContext) (skip bool, reason string)
}

// toSnapshot converts a stage result into the JSON-shaped map persisted in
// output_snapshot. Going through JSON keeps the stored form identical to
// what a resume would read back.
func toSnapshot(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal stage output: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to shape stage output: %w", err)
	}
	return m, nil
}

// fromSnapshot decodes a persisted output snapshot back into a typed value.
func fromSnapshot(m map[string]any, out any) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return nil
}
