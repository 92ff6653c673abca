package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/codeready-toolchain/conductor/pkg/config"
)

func TestBackoffStaysWithinJitterBounds(t *testing.T) {
	cfg := &config.RetryConfig{
		BaseDelay: time.Second,
		MaxDelay:  60 * time.Second,
	}

	tests := []struct {
		attempt int
		min     time.Duration
		max     time.Duration
	}{
		{attempt: 1, min: 500 * time.Millisecond, max: 1500 * time.Millisecond},
		{attempt: 2, min: time.Second, max: 3 * time.Second},
		{attempt: 3, min: 2 * time.Second, max: 6 * time.Second},
		{attempt: 4, min: 4 * time.Second, max: 12 * time.Second},
	}
	for _, tt := range tests {
		for i := 0; i < 50; i++ {
			d := Backoff(cfg, tt.attempt)
			assert.GreaterOrEqual(t, d, tt.min, "attempt %d", tt.attempt)
			assert.LessOrEqual(t, d, tt.max, "attempt %d", tt.attempt)
		}
	}
}

func TestBackoffCapsAtMaxDelay(t *testing.T) {
	cfg := &config.RetryConfig{
		BaseDelay: time.Second,
		MaxDelay:  60 * time.Second,
	}

	for i := 0; i < 50; i++ {
		assert.LessOrEqual(t, Backoff(cfg, 10), 60*time.Second)
		assert.LessOrEqual(t, Backoff(cfg, 100), 60*time.Second)
	}
}

func TestBackoffClampsBadAttempt(t *testing.T) {
	cfg := &config.RetryConfig{
		BaseDelay: time.Second,
		MaxDelay:  60 * time.Second,
	}

	d := Backoff(cfg, 0)
	assert.GreaterOrEqual(t, d, 500*time.Millisecond)
	assert.LessOrEqual(t, d, 1500*time.Millisecond)
}
