package nodes

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/conductor/pkg/config"
	"github.com/codeready-toolchain/conductor/pkg/database"
	"github.com/codeready-toolchain/conductor/pkg/models"
	"github.com/codeready-toolchain/conductor/pkg/notify"
	testdb "github.com/codeready-toolchain/conductor/test/database"
)

type stubDriver struct {
	name  string
	err   error
	calls int
}

func (d *stubDriver) Name() string { return d.name }

func (d *stubDriver) Send(_ context.Context, _ models.NotificationMessage, _ map[string]any) error {
	d.calls++
	return d.err
}

func notifyNodeEnv(t *testing.T, drivers ...notify.Driver) (*NotifyNode, *database.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)

	registry := notify.NewRegistry()
	for _, d := range drivers {
		require.NoError(t, registry.Register(d))
	}

	dispatcher := notify.NewDispatcher(client.Client, registry, config.DefaultNotifyConfig())
	return NewNotifyNode(dispatcher, &config.SystemConfig{Environment: "test"}), client
}

func activateChannel(t *testing.T, client *database.Client, name, driver string) {
	t.Helper()
	_, err := client.Client.NotificationChannel.Create().
		SetID(uuid.New().String()).
		SetName(name).
		SetDriver(driver).
		SetConfig(map[string]any{}).
		SetIsActive(true).
		Save(context.Background())
	require.NoError(t, err)
}

func TestNotifyNodeValidateDrivers(t *testing.T) {
	n := NewNotifyNode(nil, &config.SystemConfig{})

	assert.NoError(t, n.Validate(map[string]any{}))
	assert.NoError(t, n.Validate(map[string]any{"drivers": []any{"slack"}}))
	assert.Error(t, n.Validate(map[string]any{"drivers": "slack"}))
	assert.Error(t, n.Validate(map[string]any{"drivers": []any{"slack", 1}}))
}

func TestNotifyNodeDriverSetRestrictsDelivery(t *testing.T) {
	slack := &stubDriver{name: "slack"}
	pagerduty := &stubDriver{name: "pagerduty"}
	node, client := notifyNodeEnv(t, slack, pagerduty)

	activateChannel(t, client, "ops-slack", "slack")
	activateChannel(t, client, "ops-pd", "pagerduty")

	nc := &NodeContext{
		RunID:   uuid.New().String(),
		Payload: map[string]any{"title": "disk pressure"},
	}
	output, err := node.Execute(context.Background(), map[string]any{"drivers": []any{"slack"}}, nc)
	require.NoError(t, err)

	assert.Equal(t, float64(1), output["attempted"])
	assert.Equal(t, float64(1), output["succeeded"])
	assert.Nil(t, output["errors"])
	assert.Equal(t, 1, slack.calls)
	assert.Zero(t, pagerduty.calls, "channels outside the driver set must not be touched")
}

func TestNotifyNodeUnknownDriverFailsPermanently(t *testing.T) {
	good := &stubDriver{name: "good"}
	node, client := notifyNodeEnv(t, good)

	activateChannel(t, client, "ops", "good")

	nc := &NodeContext{
		RunID:   uuid.New().String(),
		Payload: map[string]any{"title": "disk pressure"},
	}
	_, err := node.Execute(context.Background(), map[string]any{"drivers": []any{"broken"}}, nc)

	// Nothing was delivered and another attempt cannot fix a missing
	// driver, so the node reports a permanent failure.
	require.Error(t, err)
	assert.True(t, notify.IsPermanent(err))
	assert.Contains(t, err.Error(), "not registered")
	assert.Zero(t, good.calls)
}
