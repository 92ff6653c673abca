package checks

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/conductor/pkg/config"
	"github.com/codeready-toolchain/conductor/pkg/models"
)

// fakeChecker is a scriptable checker for runner tests.
type fakeChecker struct {
	name    string
	status  models.CheckStatus
	err     error
	sleep   time.Duration
	panics  bool
	running *atomic.Int32 // tracks peak concurrency when set
	peak    *atomic.Int32
}

func (f *fakeChecker) Name() string { return f.name }

func (f *fakeChecker) Check(ctx context.Context) (models.CheckResult, error) {
	if f.running != nil {
		cur := f.running.Add(1)
		for {
			p := f.peak.Load()
			if cur <= p || f.peak.CompareAndSwap(p, cur) {
				break
			}
		}
		defer f.running.Add(-1)
	}
	if f.panics {
		panic("checker exploded")
	}
	if f.sleep > 0 {
		select {
		case <-time.After(f.sleep):
		case <-ctx.Done():
			return models.CheckResult{}, ctx.Err()
		}
	}
	if f.err != nil {
		return models.CheckResult{}, f.err
	}
	return models.CheckResult{Status: f.status, Message: "done"}, nil
}

func testConfig() *config.ChecksConfig {
	return &config.ChecksConfig{Parallelism: 2, Timeout: 200 * time.Millisecond}
}

func TestRunnerAggregatesResults(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(&fakeChecker{name: "a", status: models.CheckOK}))
	require.NoError(t, registry.Register(&fakeChecker{name: "b", status: models.CheckWarning}))
	require.NoError(t, registry.Register(&fakeChecker{name: "c", status: models.CheckCritical}))

	runner := NewRunner(registry, testConfig(), nil)
	summary, err := runner.Run(context.Background(), "trace-1", "run-1")
	require.NoError(t, err)

	assert.Equal(t, 3, summary.ChecksRun)
	assert.Equal(t, 1, summary.ChecksPassed)
	assert.Equal(t, 2, summary.ChecksFailed)
	assert.Equal(t, 1, summary.Counts[models.CheckOK])
	assert.Equal(t, 1, summary.Counts[models.CheckWarning])
	assert.Equal(t, 1, summary.Counts[models.CheckCritical])
	assert.Equal(t, models.CheckWarning, summary.Results["b"].Status)
}

func TestRunnerIndividualFailureDoesNotFailBatch(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(&fakeChecker{name: "good", status: models.CheckOK}))
	require.NoError(t, registry.Register(&fakeChecker{name: "broken", err: errors.New("probe exec failed")}))
	require.NoError(t, registry.Register(&fakeChecker{name: "explosive", panics: true}))

	runner := NewRunner(registry, testConfig(), nil)
	summary, err := runner.Run(context.Background(), "trace-1", "run-1")
	require.NoError(t, err)

	assert.Equal(t, 3, summary.ChecksRun)
	assert.Equal(t, models.CheckUnknown, summary.Results["broken"].Status)
	assert.Contains(t, summary.Results["broken"].Error, "probe exec failed")
	assert.Equal(t, models.CheckUnknown, summary.Results["explosive"].Status)
	assert.Contains(t, summary.Results["explosive"].Error, "panicked")
}

func TestRunnerFailsWhenNothingRan(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(&fakeChecker{name: "broken", err: errors.New("down")}))

	runner := NewRunner(registry, testConfig(), nil)
	_, err := runner.Run(context.Background(), "trace-1", "run-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoCheckersRan)
}

func TestRunnerUnknownCheckerName(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(&fakeChecker{name: "real", status: models.CheckOK}))

	cfg := testConfig()
	cfg.Enabled = []string{"real", "imaginary"}
	runner := NewRunner(registry, cfg, nil)

	_, err := runner.Run(context.Background(), "trace-1", "run-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "imaginary")
}

func TestRunnerTimeoutBecomesUnknown(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(&fakeChecker{name: "slow", sleep: time.Second, status: models.CheckOK}))
	require.NoError(t, registry.Register(&fakeChecker{name: "fast", status: models.CheckOK}))

	runner := NewRunner(registry, testConfig(), nil)
	summary, err := runner.Run(context.Background(), "trace-1", "run-1")
	require.NoError(t, err)

	assert.Equal(t, models.CheckUnknown, summary.Results["slow"].Status)
	assert.Equal(t, models.CheckOK, summary.Results["fast"].Status)
}

func TestRunnerBoundedParallelism(t *testing.T) {
	var running, peak atomic.Int32
	registry := NewRegistry()
	for _, name := range []string{"c1", "c2", "c3", "c4", "c5", "c6"} {
		require.NoError(t, registry.Register(&fakeChecker{
			name:    name,
			status:  models.CheckOK,
			sleep:   20 * time.Millisecond,
			running: &running,
			peak:    &peak,
		}))
	}

	runner := NewRunner(registry, testConfig(), nil)
	_, err := runner.Run(context.Background(), "trace-1", "run-1")
	require.NoError(t, err)

	assert.LessOrEqual(t, peak.Load(), int32(2), "parallelism must respect the configured bound")
}
