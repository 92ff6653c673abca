package ingest

import (
	"fmt"

	"github.com/codeready-toolchain/conductor/pkg/models"
)

// NewRelicDriver handles New Relic workflow webhook payloads (issue-based
// notification format).
type NewRelicDriver struct{}

func (d *NewRelicDriver) Name() string  { return "newrelic" }
func (d *NewRelicDriver) Priority() int { return 50 }

func (d *NewRelicDriver) Probe(payload map[string]any) bool {
	if getString(payload, "issueUrl") != "" {
		return true
	}
	return getSlice(payload, "impactedEntities") != nil && getString(payload, "state") != ""
}

func (d *NewRelicDriver) Normalize(payload map[string]any) ([]models.NormalizedAlert, error) {
	name := getString(payload, "title")
	if name == "" {
		return nil, fmt.Errorf("%w: newrelic issue missing title", ErrMalformedPayload)
	}

	status := models.AlertFiring
	switch getString(payload, "state") {
	case "CLOSED", "closed":
		status = models.AlertResolved
	}

	labels := map[string]string{}
	for _, entity := range getSlice(payload, "impactedEntities") {
		if s, ok := entity.(string); ok {
			labels["entity:"+s] = "true"
		}
	}
	for _, cond := range getSlice(payload, "alertConditionNames") {
		if s, ok := cond.(string); ok {
			labels["condition"] = s
		}
	}

	annotations := map[string]string{}
	if url := getString(payload, "issueUrl"); url != "" {
		annotations["issue_url"] = url
	}

	return []models.NormalizedAlert{{
		Fingerprint: getString(payload, "id"),
		Source:      d.Name(),
		Name:        name,
		Severity:    models.ParseSeverity(getString(payload, "priority")),
		Status:      status,
		Labels:      labels,
		Annotations: annotations,
		RawPayload:  payload,
	}}, nil
}
