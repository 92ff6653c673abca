package models

import "time"

// CheckStatus is the outcome class of one checker execution.
type CheckStatus string

// Check status values.
const (
	CheckOK       CheckStatus = "ok"
	CheckWarning  CheckStatus = "warning"
	CheckCritical CheckStatus = "critical"
	CheckUnknown  CheckStatus = "unknown"
)

// CheckResult is the value a checker produces. Checkers are opaque to the
// orchestration core; this is the only contract they must satisfy.
type CheckResult struct {
	CheckerName string         `json:"checker_name"`
	Hostname    string         `json:"hostname"`
	Status      CheckStatus    `json:"status"`
	Message     string         `json:"message,omitempty"`
	Metrics     map[string]any `json:"metrics,omitempty"`
	Error       string         `json:"error,omitempty"`
	ExecutedAt  time.Time      `json:"executed_at"`
}

// CheckSummary aggregates a batch of check results for stage output.
type CheckSummary struct {
	ChecksRun    int                    `json:"checks_run"`
	ChecksPassed int                    `json:"checks_passed"`
	ChecksFailed int                    `json:"checks_failed"`
	Counts       map[CheckStatus]int    `json:"counts"`
	Results      map[string]CheckResult `json:"results"`
}

// Summarize builds a CheckSummary from raw checker results.
func Summarize(results []CheckResult) CheckSummary {
	summary := CheckSummary{
		Counts:  make(map[CheckStatus]int),
		Results: make(map[string]CheckResult, len(results)),
	}
	for _, r := range results {
		summary.ChecksRun++
		summary.Counts[r.Status]++
		summary.Results[r.CheckerName] = r
		if r.Status == CheckOK {
			summary.ChecksPassed++
		} else {
			summary.ChecksFailed++
		}
	}
	return summary
}
