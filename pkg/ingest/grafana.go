package ingest

import (
	"fmt"

	"github.com/codeready-toolchain/conductor/pkg/models"
)

// GrafanaDriver handles Grafana unified alerting webhook payloads. The shape
// mirrors Alertmanager's (Grafana embeds it) with Grafana-specific envelope
// fields like orgId and state.
type GrafanaDriver struct{}

func (d *GrafanaDriver) Name() string  { return "grafana" }
func (d *GrafanaDriver) Priority() int { return 90 }

func (d *GrafanaDriver) Probe(payload map[string]any) bool {
	if getSlice(payload, "alerts") == nil {
		return false
	}
	if _, ok := payload["orgId"]; ok {
		return true
	}
	// Legacy dashboard alerts carry state + ruleId instead.
	_, hasRule := payload["ruleId"]
	return getString(payload, "state") != "" && hasRule
}

func (d *GrafanaDriver) Normalize(payload map[string]any) ([]models.NormalizedAlert, error) {
	entries := getSlice(payload, "alerts")
	if entries == nil {
		return nil, fmt.Errorf("%w: grafana payload missing alerts array", ErrMalformedPayload)
	}

	alerts := make([]models.NormalizedAlert, 0, len(entries))
	for i, entry := range entries {
		raw, ok := entry.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: grafana alerts[%d] is not an object", ErrMalformedPayload, i)
		}

		labels := getStringMap(raw, "labels")
		name := labels["alertname"]
		if name == "" {
			name = getString(raw, "title")
		}
		if name == "" {
			return nil, fmt.Errorf("%w: grafana alerts[%d] missing alertname and title", ErrMalformedPayload, i)
		}

		status := models.AlertFiring
		switch getString(raw, "status") {
		case "resolved", "ok":
			status = models.AlertResolved
		}

		alerts = append(alerts, models.NormalizedAlert{
			Fingerprint: getString(raw, "fingerprint"),
			Source:      d.Name(),
			Name:        name,
			Severity:    models.ParseSeverity(labels["severity"]),
			Status:      status,
			Labels:      labels,
			Annotations: getStringMap(raw, "annotations"),
			StartsAt:    parseRFC3339(getString(raw, "startsAt")),
			EndsAt:      parseRFC3339(getString(raw, "endsAt")),
			RawPayload:  raw,
		})
	}
	return alerts, nil
}
