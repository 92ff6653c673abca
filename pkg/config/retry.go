package config

import "time"

// RetryConfig controls retry budgets and backoff for failed stage executions.
type RetryConfig struct {
	// BaseDelay is the backoff starting point for attempt 1.
	BaseDelay time.Duration `yaml:"base_delay"`

	// MaxDelay caps the computed backoff delay.
	MaxDelay time.Duration `yaml:"max_delay"`

	// MaxAttemptsPerStage is the per-stage retry budget.
	MaxAttemptsPerStage int `yaml:"max_attempts_per_stage"`

	// MaxAttemptsPerRun is the run-wide retry budget. The effective budget
	// for a stage is the smaller of the two.
	MaxAttemptsPerRun int `yaml:"max_attempts_per_run"`

	// StageTimeout bounds a single stage attempt. Zero means the 30s default.
	StageTimeout time.Duration `yaml:"stage_timeout"`
}

// DefaultRetryConfig returns the built-in retry defaults.
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		BaseDelay:           1 * time.Second,
		MaxDelay:            60 * time.Second,
		MaxAttemptsPerStage: 3,
		MaxAttemptsPerRun:   3,
		StageTimeout:        30 * time.Second,
	}
}
