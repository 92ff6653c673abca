package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configDir := t.TempDir()
	err := os.WriteFile(filepath.Join(configDir, "conductor.yaml"), []byte(content), 0644)
	require.NoError(t, err)
	return configDir
}

func TestInitializeDefaults(t *testing.T) {
	// No conductor.yaml at all: built-in defaults apply.
	ctx := context.Background()
	cfg, err := Initialize(ctx, t.TempDir())

	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 5, cfg.Queue.WorkerCount)
	assert.Equal(t, 3, cfg.Retry.MaxAttemptsPerStage)
	assert.Equal(t, 1*time.Second, cfg.Retry.BaseDelay)
	assert.Equal(t, 60*time.Second, cfg.Retry.MaxDelay)
	assert.Equal(t, 4, cfg.Checks.Parallelism)
	assert.True(t, cfg.Notify.FallbackToLog)
	assert.Equal(t, "development", cfg.System.Environment)
	assert.False(t, cfg.Slack.Enabled)
}

func TestInitializeOverrides(t *testing.T) {
	configDir := writeConfig(t, `
system:
  environment: production
  dashboard_url: https://conductor.example.com
  slack:
    enabled: true
    channel: "#alerts"
defaults:
  max_retries: 5
queue:
  worker_count: 10
  max_concurrent_runs: 20
retry:
  base_delay: 2s
  max_attempts_per_stage: 2
checks:
  enabled: [disk_space, memory]
  parallelism: 8
notify:
  min_severity: warning
`)

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)

	assert.Equal(t, "production", cfg.System.Environment)
	assert.Equal(t, "https://conductor.example.com", cfg.System.DashboardURL)
	assert.True(t, cfg.Slack.Enabled)
	assert.Equal(t, "#alerts", cfg.Slack.Channel)
	assert.Equal(t, 5, cfg.Defaults.MaxRetries)
	assert.Equal(t, 10, cfg.Queue.WorkerCount)
	assert.Equal(t, 20, cfg.Queue.MaxConcurrentRuns)
	assert.Equal(t, 2*time.Second, cfg.Retry.BaseDelay)
	assert.Equal(t, 2, cfg.Retry.MaxAttemptsPerStage)
	assert.Equal(t, []string{"disk_space", "memory"}, cfg.Checks.Enabled)
	assert.Equal(t, 8, cfg.Checks.Parallelism)
	assert.Equal(t, "warning", cfg.Notify.MinSeverity)

	// Unset values keep their defaults.
	assert.Equal(t, 60*time.Second, cfg.Retry.MaxDelay)
	assert.Equal(t, 1*time.Second, cfg.Queue.PollInterval)
}

func TestInitializeEnvironmentFallsBackToSystem(t *testing.T) {
	configDir := writeConfig(t, `
system:
  environment: staging
`)

	cfg, err := Initialize(context.Background(), configDir)
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Defaults.Environment)
}

func TestInitializeEnvExpansion(t *testing.T) {
	t.Setenv("CONDUCTOR_ENV", "production")

	configDir := writeConfig(t, `
system:
  environment: "{{.CONDUCTOR_ENV}}"
`)

	cfg, err := Initialize(context.Background(), configDir)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.System.Environment)
}

func TestInitializeInvalidYAML(t *testing.T) {
	configDir := writeConfig(t, `queue: [not: a: map`)

	_, err := Initialize(context.Background(), configDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestInitializeValidationFailure(t *testing.T) {
	tests := []struct {
		name   string
		yaml   string
		errSub string
	}{
		{
			name:   "zero workers",
			yaml:   "queue:\n  worker_count: -1\n",
			errSub: "worker_count",
		},
		{
			name:   "heartbeat longer than orphan threshold",
			yaml:   "queue:\n  heartbeat_interval: 10m\n  orphan_threshold: 5m\n",
			errSub: "heartbeat_interval",
		},
		{
			name:   "max delay below base delay",
			yaml:   "retry:\n  base_delay: 90s\n  max_delay: 60s\n",
			errSub: "base_delay",
		},
		{
			name:   "bad min severity",
			yaml:   "notify:\n  min_severity: urgent\n",
			errSub: "min_severity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configDir := writeConfig(t, tt.yaml)

			_, err := Initialize(context.Background(), configDir)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "validation failed")
			assert.Contains(t, err.Error(), tt.errSub)
		})
	}
}
