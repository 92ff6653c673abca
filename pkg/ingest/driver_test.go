package ingest

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/conductor/pkg/models"
)

func parsePayload(t *testing.T, body string) map[string]any {
	t.Helper()
	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	return payload
}

func TestFingerprintStable(t *testing.T) {
	a := Fingerprint("alertmanager", "HighCPU", map[string]string{"host": "node1", "env": "prod"})
	b := Fingerprint("alertmanager", "HighCPU", map[string]string{"env": "prod", "host": "node1"})
	assert.Equal(t, a, b, "label order must not change the fingerprint")

	c := Fingerprint("alertmanager", "HighCPU", map[string]string{"host": "node2", "env": "prod"})
	assert.NotEqual(t, a, c, "different labels must produce different fingerprints")

	d := Fingerprint("grafana", "HighCPU", map[string]string{"host": "node1", "env": "prod"})
	assert.NotEqual(t, a, d, "different sources must produce different fingerprints")
}

func TestRegistryDetection(t *testing.T) {
	registry := DefaultRegistry()

	tests := []struct {
		name    string
		payload string
		source  string
	}{
		{
			name:    "alertmanager",
			payload: `{"receiver": "team-x", "status": "firing", "alerts": [{"labels": {"alertname": "HighCPU"}}]}`,
			source:  "alertmanager",
		},
		{
			name:    "alertmanager without envelope fields",
			payload: `{"alerts": [{"status": "firing", "labels": {"alertname": "HighCPU", "severity": "critical"}}]}`,
			source:  "alertmanager",
		},
		{
			name:    "grafana",
			payload: `{"orgId": 1, "title": "[FIRING:1]", "alerts": [{"labels": {"alertname": "DiskFull"}}]}`,
			source:  "grafana",
		},
		{
			name:    "grafana legacy without orgId",
			payload: `{"ruleId": 7, "state": "alerting", "alerts": [{"labels": {"alertname": "DiskFull"}}]}`,
			source:  "grafana",
		},
		{
			name:    "pagerduty",
			payload: `{"routing_key": "abc", "event_action": "trigger", "payload": {"summary": "db down", "severity": "critical"}}`,
			source:  "pagerduty",
		},
		{
			name:    "opsgenie",
			payload: `{"action": "Create", "alert": {"alertId": "og-1", "message": "latency"}}`,
			source:  "opsgenie",
		},
		{
			name:    "datadog",
			payload: `{"alert_transition": "Triggered", "alert_title": "cpu spike", "tags": "host:web1,env:prod"}`,
			source:  "datadog",
		},
		{
			name:    "newrelic",
			payload: `{"issueUrl": "https://nr.example/i/1", "title": "error rate", "state": "ACTIVATED", "priority": "CRITICAL"}`,
			source:  "newrelic",
		},
		{
			name:    "zabbix",
			payload: `{"trigger_name": "Disk I/O overloaded", "severity": "High", "status": "PROBLEM", "host": "db01"}`,
			source:  "zabbix",
		},
		{
			name:    "unrecognized falls through to generic",
			payload: `{"name": "custom-alert", "severity": "warning"}`,
			source:  "generic",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			driver, err := registry.Detect(parsePayload(t, tt.payload))
			require.NoError(t, err)
			assert.Equal(t, tt.source, driver.Name())
		})
	}
}

func TestRegistryGetUnknownSource(t *testing.T) {
	registry := DefaultRegistry()

	_, err := registry.Get("nagios")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownSource)
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(&GenericDriver{}))
	assert.Error(t, registry.Register(&GenericDriver{}))
}

func TestAlertmanagerNormalize(t *testing.T) {
	payload := parsePayload(t, `{
		"receiver": "team-x",
		"alerts": [
			{
				"status": "firing",
				"fingerprint": "am-fp-1",
				"labels": {"alertname": "HighCPU", "severity": "critical", "host": "node1"},
				"annotations": {"summary": "CPU above 95%"},
				"startsAt": "2026-08-20T10:00:00Z",
				"endsAt": "0001-01-01T00:00:00Z"
			},
			{
				"status": "resolved",
				"labels": {"alertname": "DiskFull", "severity": "warning"},
				"endsAt": "2026-08-20T11:00:00Z"
			}
		]
	}`)

	driver := &AlertmanagerDriver{}
	alerts, err := driver.Normalize(payload)
	require.NoError(t, err)
	require.Len(t, alerts, 2)

	first := alerts[0]
	assert.Equal(t, "am-fp-1", first.Fingerprint)
	assert.Equal(t, "HighCPU", first.Name)
	assert.Equal(t, models.SeverityCritical, first.Severity)
	assert.Equal(t, models.AlertFiring, first.Status)
	assert.Equal(t, "CPU above 95%", first.Annotations["summary"])
	require.NotNil(t, first.StartsAt)
	assert.Nil(t, first.EndsAt, "zero endsAt must be treated as absent")

	second := alerts[1]
	assert.Empty(t, second.Fingerprint, "driver leaves fingerprint derivation to the normalizer")
	assert.Equal(t, models.AlertResolved, second.Status)
	require.NotNil(t, second.EndsAt)
}

func TestAlertmanagerNormalizeMissingAlertname(t *testing.T) {
	payload := parsePayload(t, `{"receiver": "x", "alerts": [{"labels": {"severity": "critical"}}]}`)

	_, err := (&AlertmanagerDriver{}).Normalize(payload)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedPayload)
}

func TestPagerDutyNormalize(t *testing.T) {
	payload := parsePayload(t, `{
		"routing_key": "rk",
		"event_action": "resolve",
		"dedup_key": "pd-dedup-7",
		"payload": {
			"summary": "Database replication lag",
			"severity": "warning",
			"source": "db-primary",
			"custom_details": {"region": "us-east-1"}
		}
	}`)

	alerts, err := (&PagerDutyDriver{}).Normalize(payload)
	require.NoError(t, err)
	require.Len(t, alerts, 1)

	a := alerts[0]
	assert.Equal(t, "pd-dedup-7", a.Fingerprint)
	assert.Equal(t, models.AlertResolved, a.Status)
	assert.Equal(t, models.SeverityWarning, a.Severity)
	assert.Equal(t, "db-primary", a.Labels["source"])
	assert.Equal(t, "us-east-1", a.Labels["region"])
}

func TestDatadogNormalizeTags(t *testing.T) {
	payload := parsePayload(t, `{
		"alert_transition": "Triggered",
		"alert_title": "cpu spike",
		"alert_type": "error",
		"tags": "host:web1, env:prod, monitored"
	}`)

	alerts, err := (&DatadogDriver{}).Normalize(payload)
	require.NoError(t, err)
	require.Len(t, alerts, 1)

	a := alerts[0]
	assert.Equal(t, models.SeverityCritical, a.Severity)
	assert.Equal(t, "web1", a.Labels["host"])
	assert.Equal(t, "prod", a.Labels["env"])
	assert.Equal(t, "true", a.Labels["monitored"])
}

func TestOpsgenieNormalizeClose(t *testing.T) {
	payload := parsePayload(t, `{
		"action": "Close",
		"alert": {"alertId": "og-42", "message": "API latency", "priority": "P1", "tags": ["api"]}
	}`)

	alerts, err := (&OpsgenieDriver{}).Normalize(payload)
	require.NoError(t, err)
	require.Len(t, alerts, 1)

	a := alerts[0]
	assert.Equal(t, "og-42", a.Fingerprint)
	assert.Equal(t, models.AlertResolved, a.Status)
	assert.Equal(t, models.SeverityCritical, a.Severity)
	assert.Equal(t, "true", a.Labels["tag:api"])
}

func TestGenericNormalizeRequiresName(t *testing.T) {
	_, err := (&GenericDriver{}).Normalize(parsePayload(t, `{"severity": "info"}`))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedPayload)
}

func TestSeverityParsing(t *testing.T) {
	assert.Equal(t, models.SeverityCritical, models.ParseSeverity("disaster"))
	assert.Equal(t, models.SeverityCritical, models.ParseSeverity("P1"))
	assert.Equal(t, models.SeverityWarning, models.ParseSeverity("average"))
	assert.Equal(t, models.SeverityInfo, models.ParseSeverity("low"))
	assert.Equal(t, models.SeveritySuccess, models.ParseSeverity("ok"))
	assert.Equal(t, models.SeverityWarning, models.ParseSeverity("something-new"), "unknown severities fail towards visibility")
}
