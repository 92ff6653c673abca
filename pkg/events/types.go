// Package events publishes run lifecycle events over PostgreSQL
// NOTIFY for cross-pod distribution. Persistent events are stored in the
// events table then broadcast in the same transaction, so a subscriber that
// missed a NOTIFY can catch up from the table.
package events

// Persistent event types (stored in DB + NOTIFY).
const (
	// Run lifecycle, one event type for all run status transitions.
	EventTypeRunStatus = "run.status"

	// Stage lifecycle, one event type for all stage attempt transitions.
	EventTypeStageStatus = "stage.status"

	// Incident lifecycle.
	EventTypeIncidentStatus = "incident.status"
)

// GlobalRunsChannel is the channel for run-level status events. Dashboards
// listing runs subscribe here.
const GlobalRunsChannel = "runs"

// RunChannel returns the channel name for a specific run's events.
// Format: "run:{run_id}"
func RunChannel(runID string) string {
	return "run:" + runID
}

// RunStatusPayload is the wire payload of a run.status event.
type RunStatusPayload struct {
	Type       string `json:"type"`
	RunID      string `json:"run_id"`
	TraceID    string `json:"trace_id,omitempty"`
	Status     string `json:"status"`
	Stage      string `json:"stage,omitempty"`
	IncidentID string `json:"incident_id,omitempty"`
	Error      string `json:"error,omitempty"`
}

// StageStatusPayload is the wire payload of a stage.status event.
type StageStatusPayload struct {
	Type       string `json:"type"`
	RunID      string `json:"run_id"`
	Stage      string `json:"stage"`
	NodeID     string `json:"node_id,omitempty"`
	Attempt    int    `json:"attempt"`
	Status     string `json:"status"`
	Error      string `json:"error,omitempty"`
	DurationMs int64  `json:"duration_ms,omitempty"`
}

// IncidentStatusPayload is the wire payload of an incident.status event.
type IncidentStatusPayload struct {
	Type       string `json:"type"`
	IncidentID string `json:"incident_id"`
	RunID      string `json:"run_id,omitempty"`
	Status     string `json:"status"`
	Severity   string `json:"severity,omitempty"`
}
