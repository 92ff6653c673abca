package events_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/conductor/pkg/events"
	testdb "github.com/codeready-toolchain/conductor/test/database"
)

func TestPublishStageStatusPersistsEvent(t *testing.T) {
	client := testdb.NewTestClient(t)
	publisher := events.NewPublisher(client.DB())
	ctx := context.Background()

	err := publisher.PublishStageStatus(ctx, events.StageStatusPayload{
		RunID:   "run-1",
		Stage:   "check",
		Attempt: 1,
		Status:  "succeeded",
	})
	require.NoError(t, err)

	var channel string
	var payload []byte
	err = client.DB().QueryRowContext(ctx,
		`SELECT channel, payload FROM events WHERE run_id = $1`, "run-1",
	).Scan(&channel, &payload)
	require.NoError(t, err)
	assert.Equal(t, "run:run-1", channel)

	var m map[string]any
	require.NoError(t, json.Unmarshal(payload, &m))
	assert.Equal(t, events.EventTypeStageStatus, m["type"])
	assert.Equal(t, "check", m["stage"])
	assert.Equal(t, "succeeded", m["status"])
}

func TestPublishRunStatusPersistsAndBroadcasts(t *testing.T) {
	client := testdb.NewTestClient(t)
	publisher := events.NewPublisher(client.DB())
	ctx := context.Background()

	err := publisher.PublishRunStatus(ctx, events.RunStatusPayload{
		RunID:  "run-2",
		Status: "notified",
	})
	require.NoError(t, err)

	// The persistent copy lands on the run channel; the global broadcast is
	// transient and leaves no row.
	var count int
	err = client.DB().QueryRowContext(ctx,
		`SELECT count(*) FROM events WHERE run_id = $1`, "run-2",
	).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
