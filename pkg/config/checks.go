package config

import "time"

// ChecksConfig controls the diagnostic checker set run during the checks stage.
type ChecksConfig struct {
	// Enabled restricts the checker set to the named checkers.
	// Empty means every registered checker runs.
	Enabled []string `yaml:"enabled"`

	// Parallelism bounds how many checkers run concurrently.
	Parallelism int `yaml:"parallelism"`

	// Timeout applies to each individual checker.
	Timeout time.Duration `yaml:"timeout"`
}

// DefaultChecksConfig returns the built-in checks defaults.
func DefaultChecksConfig() *ChecksConfig {
	return &ChecksConfig{
		Parallelism: 4,
		Timeout:     30 * time.Second,
	}
}
