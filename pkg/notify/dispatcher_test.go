package notify_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/conductor/ent"
	"github.com/codeready-toolchain/conductor/pkg/config"
	"github.com/codeready-toolchain/conductor/pkg/models"
	"github.com/codeready-toolchain/conductor/pkg/notify"
	testdb "github.com/codeready-toolchain/conductor/test/database"
)

// fakeDriver is a scriptable notification driver for dispatcher tests.
type fakeDriver struct {
	name  string
	err   error
	calls atomic.Int64
}

func (d *fakeDriver) Name() string { return d.name }

func (d *fakeDriver) Send(_ context.Context, _ models.NotificationMessage, _ map[string]any) error {
	d.calls.Add(1)
	return d.err
}

func newDispatcherConfig() *config.NotifyConfig {
	return &config.NotifyConfig{
		Timeout:       5 * time.Second,
		MinSeverity:   "info",
		FallbackToLog: true,
	}
}

func createChannel(t *testing.T, client *ent.Client, name, driver string, active bool) *ent.NotificationChannel {
	t.Helper()
	ch, err := client.NotificationChannel.Create().
		SetID(uuid.New().String()).
		SetName(name).
		SetDriver(driver).
		SetConfig(map[string]any{"channel": "#alerts"}).
		SetIsActive(active).
		Save(context.Background())
	require.NoError(t, err)
	return ch
}

func TestDispatchPartialSuccessIsNotAnError(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	good := &fakeDriver{name: "good"}
	bad := &fakeDriver{name: "bad", err: errors.New("connection reset")}
	registry := notify.NewRegistry()
	require.NoError(t, registry.Register(good))
	require.NoError(t, registry.Register(bad))

	createChannel(t, client.Client, "ops-good", "good", true)
	createChannel(t, client.Client, "ops-bad", "bad", true)

	dispatcher := notify.NewDispatcher(client.Client, registry, newDispatcherConfig())
	results, err := dispatcher.Dispatch(ctx, models.NotificationMessage{
		Title:    "partial delivery",
		Severity: models.SeverityWarning,
		RunID:    uuid.New().String(),
	}, nil)

	require.NoError(t, err)
	require.Len(t, results, 2)

	byDriver := map[string]models.DeliveryResult{}
	for _, r := range results {
		byDriver[r.Driver] = r
	}
	assert.True(t, byDriver["good"].Succeeded)
	assert.False(t, byDriver["bad"].Succeeded)
	assert.True(t, byDriver["bad"].Retryable)
	assert.Contains(t, byDriver["bad"].Error, "connection reset")
}

func TestDispatchAllRetryableFailuresIsAnError(t *testing.T) {
	client := testdb.NewTestClient(t)

	bad := &fakeDriver{name: "bad", err: errors.New("upstream timeout")}
	registry := notify.NewRegistry()
	require.NoError(t, registry.Register(bad))

	createChannel(t, client.Client, "ops", "bad", true)

	dispatcher := notify.NewDispatcher(client.Client, registry, newDispatcherConfig())
	results, err := dispatcher.Dispatch(context.Background(), models.NotificationMessage{
		Title:    "total failure",
		Severity: models.SeverityCritical,
	}, nil)

	require.ErrorIs(t, err, notify.ErrAllDeliveriesFailed)
	require.Len(t, results, 1)
	assert.True(t, results[0].Retryable)
}

func TestDispatchAllPermanentFailuresIsNotRetried(t *testing.T) {
	client := testdb.NewTestClient(t)

	bad := &fakeDriver{name: "bad", err: notify.Permanent(errors.New("missing token"))}
	registry := notify.NewRegistry()
	require.NoError(t, registry.Register(bad))

	createChannel(t, client.Client, "ops", "bad", true)

	dispatcher := notify.NewDispatcher(client.Client, registry, newDispatcherConfig())
	results, err := dispatcher.Dispatch(context.Background(), models.NotificationMessage{
		Title:    "misconfigured channel",
		Severity: models.SeverityCritical,
	}, nil)

	// Nothing was delivered, but a retry cannot fix bad channel config.
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].Succeeded)
	assert.False(t, results[0].Retryable)
}

func TestDispatchSeverityGate(t *testing.T) {
	client := testdb.NewTestClient(t)

	driver := &fakeDriver{name: "good"}
	registry := notify.NewRegistry()
	require.NoError(t, registry.Register(driver))

	createChannel(t, client.Client, "ops", "good", true)

	cfg := newDispatcherConfig()
	cfg.MinSeverity = "warning"
	dispatcher := notify.NewDispatcher(client.Client, registry, cfg)

	results, err := dispatcher.Dispatch(context.Background(), models.NotificationMessage{
		Title:    "below threshold",
		Severity: models.SeverityInfo,
	}, nil)

	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Zero(t, driver.calls.Load())
}

func TestDispatchSkipsInactiveChannels(t *testing.T) {
	client := testdb.NewTestClient(t)

	driver := &fakeDriver{name: "good"}
	registry := notify.NewRegistry()
	require.NoError(t, registry.Register(driver))

	createChannel(t, client.Client, "retired", "good", false)

	dispatcher := notify.NewDispatcher(client.Client, registry, newDispatcherConfig())
	results, err := dispatcher.Dispatch(context.Background(), models.NotificationMessage{
		Title:    "no active targets",
		Severity: models.SeverityWarning,
	}, nil)

	require.NoError(t, err)
	assert.Zero(t, driver.calls.Load())

	// With no active channels the message falls back to the log driver
	// rather than vanishing.
	require.Len(t, results, 1)
	assert.Equal(t, "log", results[0].Driver)
	assert.True(t, results[0].Succeeded)
}

func TestDispatchFallbackDisabled(t *testing.T) {
	client := testdb.NewTestClient(t)

	cfg := newDispatcherConfig()
	cfg.FallbackToLog = false
	dispatcher := notify.NewDispatcher(client.Client, notify.NewRegistry(), cfg)

	results, err := dispatcher.Dispatch(context.Background(), models.NotificationMessage{
		Title:    "nowhere to go",
		Severity: models.SeverityWarning,
	}, nil)

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestDispatchDriverSetFiltersChannels(t *testing.T) {
	client := testdb.NewTestClient(t)

	slack := &fakeDriver{name: "slack"}
	pagerduty := &fakeDriver{name: "pagerduty"}
	registry := notify.NewRegistry()
	require.NoError(t, registry.Register(slack))
	require.NoError(t, registry.Register(pagerduty))

	createChannel(t, client.Client, "ops-slack", "slack", true)
	createChannel(t, client.Client, "ops-pd", "pagerduty", true)

	dispatcher := notify.NewDispatcher(client.Client, registry, newDispatcherConfig())
	results, err := dispatcher.Dispatch(context.Background(), models.NotificationMessage{
		Title:    "slack only",
		Severity: models.SeverityWarning,
	}, []string{"slack"})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "slack", results[0].Driver)
	assert.True(t, results[0].Succeeded)
	assert.Equal(t, int64(1), slack.calls.Load())
	assert.Zero(t, pagerduty.calls.Load(), "channels outside the driver set must not be touched")
}

func TestDispatchDriverSetUnknownNameIsReported(t *testing.T) {
	client := testdb.NewTestClient(t)

	good := &fakeDriver{name: "good"}
	registry := notify.NewRegistry()
	require.NoError(t, registry.Register(good))

	createChannel(t, client.Client, "ops", "good", true)

	dispatcher := notify.NewDispatcher(client.Client, registry, newDispatcherConfig())
	results, err := dispatcher.Dispatch(context.Background(), models.NotificationMessage{
		Title:    "misconfigured driver set",
		Severity: models.SeverityCritical,
	}, []string{"broken"})

	// The unknown name comes back as a failed entry instead of a silent
	// log fallback.
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "broken", results[0].Driver)
	assert.False(t, results[0].Succeeded)
	assert.False(t, results[0].Retryable)
	assert.Contains(t, results[0].Error, "not registered")
	assert.Zero(t, good.calls.Load())
}

func TestDispatchUnregisteredDriverIsNotRetryable(t *testing.T) {
	client := testdb.NewTestClient(t)

	createChannel(t, client.Client, "ops", "nonexistent", true)

	dispatcher := notify.NewDispatcher(client.Client, notify.NewRegistry(), newDispatcherConfig())
	results, err := dispatcher.Dispatch(context.Background(), models.NotificationMessage{
		Title:    "driver missing",
		Severity: models.SeverityCritical,
	}, nil)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].Succeeded)
	assert.False(t, results[0].Retryable)
	assert.Contains(t, results[0].Error, "not registered")
}
