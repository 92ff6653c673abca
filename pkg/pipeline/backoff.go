package pipeline

import (
	"math/rand/v2"
	"time"

	"github.com/codeready-toolchain/conductor/pkg/config"
)

// Backoff returns the delay before retrying the given attempt:
// base * 2^(attempt-1) * (0.5 + rand()), capped at the configured maximum.
// The jitter spreads replicas retrying the same upstream failure.
func Backoff(cfg *config.RetryConfig, attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	// Beyond 2^20 the uncapped delay dwarfs any sane MaxDelay anyway.
	exp := attempt - 1
	if exp > 20 {
		exp = 20
	}

	delay := cfg.BaseDelay * time.Duration(1<<exp)
	if delay > cfg.MaxDelay || delay < 0 {
		delay = cfg.MaxDelay
	}

	jittered := time.Duration(float64(delay) * (0.5 + rand.Float64()))
	if jittered > cfg.MaxDelay {
		jittered = cfg.MaxDelay
	}
	return jittered
}
