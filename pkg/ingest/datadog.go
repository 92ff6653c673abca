package ingest

import (
	"fmt"
	"strings"

	"github.com/codeready-toolchain/conductor/pkg/models"
)

// DatadogDriver handles Datadog monitor webhook payloads. Datadog sends flat
// key/value bodies with a comma-separated tags string.
type DatadogDriver struct{}

func (d *DatadogDriver) Name() string  { return "datadog" }
func (d *DatadogDriver) Priority() int { return 60 }

func (d *DatadogDriver) Probe(payload map[string]any) bool {
	if getString(payload, "alert_transition") != "" {
		return true
	}
	_, hasAlertID := payload["alert_id"]
	return hasAlertID && getString(payload, "event_type") != ""
}

func (d *DatadogDriver) Normalize(payload map[string]any) ([]models.NormalizedAlert, error) {
	name := firstString(payload, "alert_title", "title", "event_title")
	if name == "" {
		return nil, fmt.Errorf("%w: datadog payload missing alert title", ErrMalformedPayload)
	}

	status := models.AlertFiring
	switch getString(payload, "alert_transition") {
	case "Recovered", "recovered":
		status = models.AlertResolved
	}

	labels := map[string]string{}
	for _, tag := range strings.Split(getString(payload, "tags"), ",") {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if k, v, found := strings.Cut(tag, ":"); found {
			labels[k] = v
		} else {
			labels[tag] = "true"
		}
	}

	severity := models.ParseSeverity(getString(payload, "priority"))
	if getString(payload, "alert_type") == "error" {
		severity = models.SeverityCritical
	}

	return []models.NormalizedAlert{{
		Source:     d.Name(),
		Name:       name,
		Severity:   severity,
		Status:     status,
		Labels:     labels,
		RawPayload: payload,
	}}, nil
}
