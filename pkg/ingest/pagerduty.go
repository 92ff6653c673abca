package ingest

import (
	"fmt"

	"github.com/codeready-toolchain/conductor/pkg/models"
)

// PagerDutyDriver handles PagerDuty Events API v2 payloads. One payload is
// one event; dedup_key maps directly to the alert fingerprint.
type PagerDutyDriver struct{}

func (d *PagerDutyDriver) Name() string  { return "pagerduty" }
func (d *PagerDutyDriver) Priority() int { return 80 }

func (d *PagerDutyDriver) Probe(payload map[string]any) bool {
	if getString(payload, "routing_key") != "" {
		return true
	}
	return getString(payload, "event_action") != "" && getMap(payload, "payload") != nil
}

func (d *PagerDutyDriver) Normalize(payload map[string]any) ([]models.NormalizedAlert, error) {
	body := getMap(payload, "payload")
	if body == nil {
		return nil, fmt.Errorf("%w: pagerduty event missing payload object", ErrMalformedPayload)
	}

	name := getString(body, "summary")
	if name == "" {
		return nil, fmt.Errorf("%w: pagerduty payload missing summary", ErrMalformedPayload)
	}

	status := models.AlertFiring
	if getString(payload, "event_action") == "resolve" {
		status = models.AlertResolved
	}

	labels := map[string]string{}
	if src := getString(body, "source"); src != "" {
		labels["source"] = src
	}
	if comp := getString(body, "component"); comp != "" {
		labels["component"] = comp
	}
	if grp := getString(body, "group"); grp != "" {
		labels["group"] = grp
	}
	for k, v := range getStringMap(body, "custom_details") {
		labels[k] = v
	}

	return []models.NormalizedAlert{{
		Fingerprint: getString(payload, "dedup_key"),
		Source:      d.Name(),
		Name:        name,
		Severity:    models.ParseSeverity(getString(body, "severity")),
		Status:      status,
		Labels:      labels,
		StartsAt:    parseRFC3339(getString(body, "timestamp")),
		RawPayload:  payload,
	}}, nil
}
