package ingest

import (
	"fmt"

	"github.com/codeready-toolchain/conductor/pkg/models"
)

// OpsgenieDriver handles Opsgenie webhook integration payloads: an action
// verb plus a nested alert object.
type OpsgenieDriver struct{}

func (d *OpsgenieDriver) Name() string  { return "opsgenie" }
func (d *OpsgenieDriver) Priority() int { return 70 }

func (d *OpsgenieDriver) Probe(payload map[string]any) bool {
	alert := getMap(payload, "alert")
	return alert != nil && getString(alert, "alertId") != ""
}

func (d *OpsgenieDriver) Normalize(payload map[string]any) ([]models.NormalizedAlert, error) {
	alert := getMap(payload, "alert")
	if alert == nil {
		return nil, fmt.Errorf("%w: opsgenie payload missing alert object", ErrMalformedPayload)
	}

	name := getString(alert, "message")
	if name == "" {
		return nil, fmt.Errorf("%w: opsgenie alert missing message", ErrMalformedPayload)
	}

	status := models.AlertFiring
	switch getString(payload, "action") {
	case "Close", "close", "Delete":
		status = models.AlertResolved
	}

	labels := map[string]string{}
	if alias := getString(alert, "alias"); alias != "" {
		labels["alias"] = alias
	}
	if entity := getString(alert, "entity"); entity != "" {
		labels["entity"] = entity
	}
	for _, tag := range getSlice(alert, "tags") {
		if s, ok := tag.(string); ok {
			labels["tag:"+s] = "true"
		}
	}

	return []models.NormalizedAlert{{
		Fingerprint: getString(alert, "alertId"),
		Source:      d.Name(),
		Name:        name,
		Severity:    models.ParseSeverity(getString(alert, "priority")),
		Status:      status,
		Labels:      labels,
		Annotations: map[string]string{"description": getString(alert, "description")},
		RawPayload:  payload,
	}}, nil
}
