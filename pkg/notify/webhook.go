package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/codeready-toolchain/conductor/pkg/models"
)

// WebhookDriver POSTs the message as JSON to a configured URL. Channel
// config keys: url (required), headers (optional map of extra headers).
type WebhookDriver struct {
	client *http.Client
}

// NewWebhookDriver creates a webhook driver. client may be nil to use
// http.DefaultClient; per-delivery deadlines come from ctx.
func NewWebhookDriver(client *http.Client) *WebhookDriver {
	if client == nil {
		client = http.DefaultClient
	}
	return &WebhookDriver{client: client}
}

func (d *WebhookDriver) Name() string { return "webhook" }

func (d *WebhookDriver) Send(ctx context.Context, msg models.NotificationMessage, channelConfig map[string]any) error {
	url := configString(channelConfig, "url")
	if url == "" {
		return Permanent(fmt.Errorf("webhook channel config missing 'url'"))
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return Permanent(fmt.Errorf("webhook url %q is not http(s)", url))
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return Permanent(fmt.Errorf("failed to marshal message: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Permanent(fmt.Errorf("failed to build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	if headers, ok := channelConfig["headers"].(map[string]any); ok {
		for k, v := range headers {
			if s, ok := v.(string); ok {
				req.Header.Set(k, s)
			}
		}
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests:
		// The receiver rejected the payload; replaying it cannot help.
		return Permanent(fmt.Errorf("webhook returned %d", resp.StatusCode))
	default:
		return fmt.Errorf("webhook returned %d", resp.StatusCode)
	}
}
