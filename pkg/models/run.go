package models

// RunMode selects which orchestrator executes a run.
type RunMode string

// Run modes.
const (
	RunModeFixed      RunMode = "fixed"
	RunModeDefinition RunMode = "definition"
)

// Fixed-topology stage names, in execution order.
const (
	StageIngest  = "ingest"
	StageCheck   = "check"
	StageAnalyze = "analyze"
	StageNotify  = "notify"
)

// FixedStageOrder is the authoritative stage sequence of the fixed topology.
var FixedStageOrder = []string{StageIngest, StageCheck, StageAnalyze, StageNotify}

// CreateRunRequest carries everything needed to enqueue a new pipeline run.
type CreateRunRequest struct {
	TraceID           string         `json:"trace_id,omitempty"` // generated when empty
	Mode              RunMode        `json:"mode,omitempty"`     // defaults to fixed
	Source            string         `json:"source,omitempty"`
	Environment       string         `json:"environment,omitempty"`
	DefinitionName    *string        `json:"definition_name,omitempty"`
	DefinitionVersion *int           `json:"definition_version,omitempty"`
	Payload           map[string]any `json:"payload"`
	MaxRetries        *int           `json:"max_retries,omitempty"`
}

// RunFilter narrows ListRuns results.
type RunFilter struct {
	Status string `form:"status"`
	Mode   string `form:"mode"`
	Limit  int    `form:"limit"`
}
