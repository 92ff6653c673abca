package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/conductor/pkg/models"
)

func sampleMessage() models.NotificationMessage {
	return models.NotificationMessage{
		Title:        "Disk usage above 90%",
		Body:         "Filesystem /var on node-7 is at 93% capacity.",
		Severity:     models.SeverityCritical,
		IncidentID:   "inc-1",
		TraceID:      "trace-1",
		RunID:        "run-1",
		Environment:  "production",
		DashboardURL: "https://conductor.example.com",
		DedupKey:     "dedup-1",
		Checks: &models.CheckSummary{
			ChecksRun:    3,
			ChecksPassed: 2,
			ChecksFailed: 1,
		},
		Analysis: []models.Recommendation{
			{Title: "Expand the /var volume", Priority: "high"},
			{Title: "Rotate application logs", Priority: "medium"},
		},
	}
}

func TestRenderBody(t *testing.T) {
	body := RenderBody(sampleMessage())

	assert.Contains(t, body, "[CRITICAL] Disk usage above 90% (production)")
	assert.Contains(t, body, "Filesystem /var on node-7 is at 93% capacity.")
	assert.Contains(t, body, "Checks: 3 run, 2 passed, 1 failed")
	assert.Contains(t, body, "1. Expand the /var volume [high]")
	assert.Contains(t, body, "2. Rotate application logs [medium]")
	assert.Contains(t, body, "https://conductor.example.com/runs/run-1")
}

func TestRenderBodyMinimal(t *testing.T) {
	body := RenderBody(models.NotificationMessage{
		Title:    "Something happened",
		Severity: models.SeverityInfo,
	})

	assert.Equal(t, "[INFO] Something happened\n", body)
}

func TestPermanentWrapping(t *testing.T) {
	base := errors.New("bad config")

	assert.True(t, IsPermanent(Permanent(base)))
	assert.True(t, IsPermanent(fmt.Errorf("wrapped: %w", Permanent(base))))
	assert.False(t, IsPermanent(base))
	assert.False(t, IsPermanent(nil))
	assert.NoError(t, Permanent(nil))
	assert.ErrorIs(t, Permanent(base), base)
}

func TestWebhookDriverDelivers(t *testing.T) {
	var received models.NotificationMessage
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	driver := NewWebhookDriver(server.Client())
	err := driver.Send(context.Background(), sampleMessage(), map[string]any{
		"url":     server.URL,
		"headers": map[string]any{"Authorization": "Bearer secret"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "Disk usage above 90%", received.Title)
	assert.Equal(t, models.SeverityCritical, received.Severity)
	assert.Equal(t, "dedup-1", received.DedupKey)
}

func TestWebhookDriverErrorClassification(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		permanent bool
	}{
		{name: "bad request is permanent", status: http.StatusBadRequest, permanent: true},
		{name: "not found is permanent", status: http.StatusNotFound, permanent: true},
		{name: "rate limit is retryable", status: http.StatusTooManyRequests, permanent: false},
		{name: "server error is retryable", status: http.StatusInternalServerError, permanent: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			driver := NewWebhookDriver(server.Client())
			err := driver.Send(context.Background(), sampleMessage(), map[string]any{"url": server.URL})

			require.Error(t, err)
			assert.Equal(t, tt.permanent, IsPermanent(err))
		})
	}
}

func TestWebhookDriverRejectsBadConfig(t *testing.T) {
	driver := NewWebhookDriver(nil)

	err := driver.Send(context.Background(), sampleMessage(), map[string]any{})
	require.Error(t, err)
	assert.True(t, IsPermanent(err))

	err = driver.Send(context.Background(), sampleMessage(), map[string]any{"url": "ftp://example.com"})
	require.Error(t, err)
	assert.True(t, IsPermanent(err))
}

func TestPagerDutyDriverSendsEvent(t *testing.T) {
	var event map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&event))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	driver := NewPagerDutyDriver(server.Client())
	err := driver.Send(context.Background(), sampleMessage(), map[string]any{
		"routing_key": "rk-123",
		"endpoint":    server.URL,
	})

	require.NoError(t, err)
	assert.Equal(t, "rk-123", event["routing_key"])
	assert.Equal(t, "trigger", event["event_action"])
	assert.Equal(t, "dedup-1", event["dedup_key"])

	payload, ok := event["payload"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Disk usage above 90%", payload["summary"])
	assert.Equal(t, "critical", payload["severity"])
}

func TestPagerDutyDriverMissingRoutingKey(t *testing.T) {
	driver := NewPagerDutyDriver(nil)

	err := driver.Send(context.Background(), sampleMessage(), map[string]any{})
	require.Error(t, err)
	assert.True(t, IsPermanent(err))
}

func TestPagerDutyDriverRejectedEventIsPermanent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	driver := NewPagerDutyDriver(server.Client())
	err := driver.Send(context.Background(), sampleMessage(), map[string]any{
		"routing_key": "rk-123",
		"endpoint":    server.URL,
	})

	require.Error(t, err)
	assert.True(t, IsPermanent(err))
}

func TestPdSeverityMapping(t *testing.T) {
	assert.Equal(t, "critical", pdSeverity(models.SeverityCritical))
	assert.Equal(t, "warning", pdSeverity(models.SeverityWarning))
	assert.Equal(t, "info", pdSeverity(models.SeverityInfo))
	assert.Equal(t, "info", pdSeverity(models.SeveritySuccess))
}

func TestSlackDriverPostsBlocks(t *testing.T) {
	var form map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		form = r.Form
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"channel":"C123","ts":"1234.5678"}`))
	}))
	defer server.Close()

	driver := NewSlackDriverWithAPIURL("xoxb-system", server.URL+"/")
	err := driver.Send(context.Background(), sampleMessage(), map[string]any{"channel": "C123"})

	require.NoError(t, err)
	require.NotNil(t, form)
	assert.Equal(t, "C123", form["channel"][0])
	assert.Contains(t, form["blocks"][0], "Disk usage above 90%")
	assert.Contains(t, form["blocks"][0], "Expand the /var volume")
}

func TestSlackDriverChannelTokenOverridesSystemToken(t *testing.T) {
	var gotToken string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	driver := NewSlackDriverWithAPIURL("xoxb-system", server.URL+"/")
	err := driver.Send(context.Background(), sampleMessage(), map[string]any{
		"channel": "C123",
		"token":   "xoxb-channel",
	})

	require.NoError(t, err)
	assert.Equal(t, "Bearer xoxb-channel", gotToken)
}

func TestSlackDriverRejectsBadConfig(t *testing.T) {
	noToken := NewSlackDriver("")
	err := noToken.Send(context.Background(), sampleMessage(), map[string]any{"channel": "C123"})
	require.Error(t, err)
	assert.True(t, IsPermanent(err))

	noChannel := NewSlackDriver("xoxb-system")
	err = noChannel.Send(context.Background(), sampleMessage(), map[string]any{})
	require.Error(t, err)
	assert.True(t, IsPermanent(err))
}

func TestTruncateForSlack(t *testing.T) {
	short := "short text"
	assert.Equal(t, short, truncateForSlack(short))

	long := make([]byte, maxBlockTextLength+100)
	for i := range long {
		long[i] = 'a'
	}
	truncated := truncateForSlack(string(long))
	assert.Less(t, len(truncated), len(long))
	assert.Contains(t, truncated, "truncated")
}
