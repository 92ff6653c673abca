package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/codeready-toolchain/conductor/pkg/models"
)

const pagerDutyEventsURL = "https://events.pagerduty.com/v2/enqueue"

// PagerDutyDriver triggers incidents via the PagerDuty Events API v2.
// Channel config keys: routing_key (required), endpoint (optional override,
// used by tests).
type PagerDutyDriver struct {
	client *http.Client
}

// NewPagerDutyDriver creates a PagerDuty driver. client may be nil to use
// http.DefaultClient.
func NewPagerDutyDriver(client *http.Client) *PagerDutyDriver {
	if client == nil {
		client = http.DefaultClient
	}
	return &PagerDutyDriver{client: client}
}

func (d *PagerDutyDriver) Name() string { return "pagerduty" }

// pdSeverity maps our severities onto PagerDuty's accepted set.
func pdSeverity(s models.Severity) string {
	switch s {
	case models.SeverityCritical:
		return "critical"
	case models.SeverityWarning:
		return "warning"
	default:
		return "info"
	}
}

func (d *PagerDutyDriver) Send(ctx context.Context, msg models.NotificationMessage, channelConfig map[string]any) error {
	routingKey := configString(channelConfig, "routing_key")
	if routingKey == "" {
		return Permanent(fmt.Errorf("pagerduty channel config missing 'routing_key'"))
	}
	endpoint := configString(channelConfig, "endpoint")
	if endpoint == "" {
		endpoint = pagerDutyEventsURL
	}

	event := map[string]any{
		"routing_key":  routingKey,
		"event_action": "trigger",
		"dedup_key":    msg.DedupKey,
		"payload": map[string]any{
			"summary":  msg.Title,
			"source":   msg.Environment,
			"severity": pdSeverity(msg.Severity),
			"custom_details": map[string]any{
				"body":        msg.Body,
				"run_id":      msg.RunID,
				"trace_id":    msg.TraceID,
				"incident_id": msg.IncidentID,
			},
		},
	}
	body, err := json.Marshal(event)
	if err != nil {
		return Permanent(fmt.Errorf("failed to marshal event: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return Permanent(fmt.Errorf("failed to build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("pagerduty request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusBadRequest:
		return Permanent(fmt.Errorf("pagerduty rejected event: %d", resp.StatusCode))
	default:
		return fmt.Errorf("pagerduty returned %d", resp.StatusCode)
	}
}
