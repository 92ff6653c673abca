package ingest

import (
	"fmt"

	"github.com/codeready-toolchain/conductor/pkg/models"
)

// GenericDriver accepts any JSON object. It is the detection fallback of last
// resort and the driver behind explicit source=generic submissions.
type GenericDriver struct{}

func (d *GenericDriver) Name() string  { return "generic" }
func (d *GenericDriver) Priority() int { return 0 }

func (d *GenericDriver) Probe(map[string]any) bool { return true }

func (d *GenericDriver) Normalize(payload map[string]any) ([]models.NormalizedAlert, error) {
	name := firstString(payload, "name", "alertname", "title", "summary")
	if name == "" {
		return nil, fmt.Errorf("%w: generic payload needs one of name/alertname/title/summary", ErrMalformedPayload)
	}

	status := models.AlertFiring
	switch getString(payload, "status") {
	case "resolved", "ok", "closed":
		status = models.AlertResolved
	}

	return []models.NormalizedAlert{{
		Fingerprint: getString(payload, "fingerprint"),
		Source:      d.Name(),
		Name:        name,
		Severity:    models.ParseSeverity(getString(payload, "severity")),
		Status:      status,
		Labels:      getStringMap(payload, "labels"),
		Annotations: getStringMap(payload, "annotations"),
		RawPayload:  payload,
	}}, nil
}
