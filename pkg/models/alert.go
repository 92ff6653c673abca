// Package models contains pure domain value types shared across packages.
// Persistence concerns live in ent; these types carry no storage behavior.
package models

import "time"

// Severity classifies how urgent an alert or incident is.
type Severity string

// Severity values, ordered from most to least urgent.
const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
	SeveritySuccess  Severity = "success"
)

// severityRank orders severities for max-severity aggregation.
// Higher rank = more urgent.
var severityRank = map[Severity]int{
	SeveritySuccess:  0,
	SeverityInfo:     1,
	SeverityWarning:  2,
	SeverityCritical: 3,
}

// Rank returns the ordering rank of the severity. Unknown severities rank
// below success so they never win a max aggregation.
func (s Severity) Rank() int {
	if r, ok := severityRank[s]; ok {
		return r
	}
	return -1
}

// MaxSeverity returns the most urgent of the given severities.
// Returns SeverityInfo when the slice is empty.
func MaxSeverity(severities ...Severity) Severity {
	max := SeverityInfo
	maxRank := -1
	for _, s := range severities {
		if r := s.Rank(); r > maxRank {
			max = s
			maxRank = r
		}
	}
	return max
}

// ParseSeverity maps common source spellings to a Severity.
// Unknown values map to warning (fail towards visibility, not silence).
func ParseSeverity(raw string) Severity {
	switch raw {
	case "critical", "crit", "disaster", "high", "P1", "p1", "error":
		return SeverityCritical
	case "warning", "warn", "average", "medium", "P2", "p2":
		return SeverityWarning
	case "info", "information", "low", "P3", "p3", "P4", "p4":
		return SeverityInfo
	case "success", "ok", "resolved":
		return SeveritySuccess
	default:
		return SeverityWarning
	}
}

// AlertStatus is the lifecycle state of a single alert.
type AlertStatus string

// Alert status values.
const (
	AlertFiring   AlertStatus = "firing"
	AlertResolved AlertStatus = "resolved"
)

// NormalizedAlert is the common shape every ingest driver produces from its
// native webhook payload. Fingerprint may be empty; the normalizer derives
// one from (source, name, labels) in that case.
type NormalizedAlert struct {
	Fingerprint string
	Source      string
	Name        string
	Severity    Severity
	Status      AlertStatus
	Labels      map[string]string
	Annotations map[string]string
	StartsAt    *time.Time
	EndsAt      *time.Time
	RawPayload  map[string]any
}

// IngestResult summarizes one normalizer invocation over a webhook payload.
type IngestResult struct {
	Source           string   `json:"source"`
	AlertsCreated    int      `json:"alerts_created"`
	AlertsUpdated    int      `json:"alerts_updated"`
	AlertsResolved   int      `json:"alerts_resolved"`
	IncidentsCreated int      `json:"incidents_created"`
	IncidentsUpdated int      `json:"incidents_updated"`
	IncidentID       string   `json:"incident_id,omitempty"`
	Errors           []string `json:"errors,omitempty"`
}
