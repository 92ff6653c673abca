package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunChannel(t *testing.T) {
	assert.Equal(t, "run:abc-123", RunChannel("abc-123"))
}

func TestInjectDBEventID(t *testing.T) {
	payload, err := json.Marshal(RunStatusPayload{
		Type:   EventTypeRunStatus,
		RunID:  "run-1",
		Status: "ingested",
	})
	require.NoError(t, err)

	enriched, err := injectDBEventIDAndTruncate(payload, 42)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(enriched), &m))
	assert.Equal(t, float64(42), m["db_event_id"])
	assert.Equal(t, "run-1", m["run_id"])
	assert.Equal(t, EventTypeRunStatus, m["type"])
}

func TestTruncateIfNeededPassthrough(t *testing.T) {
	small := `{"type":"run.status","run_id":"run-1"}`
	out, err := truncateIfNeeded(small)
	require.NoError(t, err)
	assert.Equal(t, small, out)
}

func TestTruncateIfNeededOversizedPayload(t *testing.T) {
	big := map[string]any{
		"type":   EventTypeStageStatus,
		"run_id": "run-1",
		"error":  strings.Repeat("x", 9000),
	}
	bigJSON, err := json.Marshal(big)
	require.NoError(t, err)

	out, err := truncateIfNeeded(string(bigJSON))
	require.NoError(t, err)
	assert.LessOrEqual(t, len(out), 7900)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, true, m["truncated"])
	assert.Equal(t, "run-1", m["run_id"])
	assert.Equal(t, EventTypeStageStatus, m["type"])
	assert.NotContains(t, m, "error")
}

func TestTruncateKeepsDBEventID(t *testing.T) {
	big := map[string]any{
		"type":   EventTypeStageStatus,
		"run_id": "run-1",
		"error":  strings.Repeat("x", 9000),
	}
	bigJSON, err := json.Marshal(big)
	require.NoError(t, err)

	out, err := injectDBEventIDAndTruncate(bigJSON, 7)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, true, m["truncated"])
	assert.Equal(t, float64(7), m["db_event_id"])
}
