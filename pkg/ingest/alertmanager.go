package ingest

import (
	"fmt"
	"time"

	"github.com/codeready-toolchain/conductor/pkg/models"
)

// AlertmanagerDriver handles Prometheus Alertmanager webhook payloads
// (version 4 message format with a top-level alerts array).
type AlertmanagerDriver struct{}

func (d *AlertmanagerDriver) Name() string  { return "alertmanager" }
func (d *AlertmanagerDriver) Priority() int { return 100 }

func (d *AlertmanagerDriver) Probe(payload map[string]any) bool {
	entries := getSlice(payload, "alerts")
	if len(entries) == 0 {
		return false
	}
	if getString(payload, "receiver") != "" || getString(payload, "groupKey") != "" {
		return true
	}
	// Grafana wraps the same alerts array; its envelope keys discriminate.
	if _, ok := payload["orgId"]; ok {
		return false
	}
	if _, ok := payload["ruleId"]; ok {
		return false
	}
	first, ok := entries[0].(map[string]any)
	return ok && getMap(first, "labels") != nil
}

func (d *AlertmanagerDriver) Normalize(payload map[string]any) ([]models.NormalizedAlert, error) {
	entries := getSlice(payload, "alerts")
	if entries == nil {
		return nil, fmt.Errorf("%w: alertmanager payload missing alerts array", ErrMalformedPayload)
	}

	alerts := make([]models.NormalizedAlert, 0, len(entries))
	for i, entry := range entries {
		raw, ok := entry.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: alertmanager alerts[%d] is not an object", ErrMalformedPayload, i)
		}

		labels := getStringMap(raw, "labels")
		name := labels["alertname"]
		if name == "" {
			return nil, fmt.Errorf("%w: alertmanager alerts[%d] missing alertname label", ErrMalformedPayload, i)
		}

		status := models.AlertFiring
		if getString(raw, "status") == "resolved" {
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

// parseRFC3339 parses an RFC3339 timestamp, treating the zero timestamp
// Alertmanager sends for "not yet ended" as absent.
func parseRFC3339(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil || t.IsZero() {
		return nil
	}
	return &t
}
