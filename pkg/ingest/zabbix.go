package ingest

import (
	"fmt"

	"github.com/codeready-toolchain/conductor/pkg/models"
)

// ZabbixDriver handles Zabbix webhook media type payloads (trigger-based
// problem/recovery events).
type ZabbixDriver struct{}

func (d *ZabbixDriver) Name() string  { return "zabbix" }
func (d *ZabbixDriver) Priority() int { return 40 }

func (d *ZabbixDriver) Probe(payload map[string]any) bool {
	if getString(payload, "trigger_name") != "" {
		return true
	}
	return getString(payload, "event_id") != "" && getString(payload, "host") != ""
}

func (d *ZabbixDriver) Normalize(payload map[string]any) ([]models.NormalizedAlert, error) {
	name := firstString(payload, "trigger_name", "event_name")
	if name == "" {
		return nil, fmt.Errorf("%w: zabbix payload missing trigger_name", ErrMalformedPayload)
	}

	status := models.AlertFiring
	switch getString(payload, "status") {
	case "OK", "RESOLVED", "resolved":
		status = models.AlertResolved
	}

	labels := map[string]string{}
	if host := getString(payload, "host"); host != "" {
		labels["host"] = host
	}
	if eventID := getString(payload, "event_id"); eventID != "" {
		labels["event_id"] = eventID
	}

	return []models.NormalizedAlert{{
		Source:     d.Name(),
		Name:       name,
		Severity:   models.ParseSeverity(getString(payload, "severity")),
		Status:     status,
		Labels:     labels,
		RawPayload: payload,
	}}, nil
}
