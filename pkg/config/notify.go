package config

import "time"

// NotifyConfig controls the notification stage.
type NotifyConfig struct {
	// Timeout applies to each individual channel delivery.
	Timeout time.Duration `yaml:"timeout"`

	// MinSeverity drops notifications below this severity ("info" keeps all).
	MinSeverity string `yaml:"min_severity"`

	// FallbackToLog delivers through the log driver when no active channel
	// matches, so a notification is never silently lost.
	FallbackToLog bool `yaml:"fallback_to_log"`
}

// DefaultNotifyConfig returns the built-in notification defaults.
func DefaultNotifyConfig() *NotifyConfig {
	return &NotifyConfig{
		Timeout:       15 * time.Second,
		MinSeverity:   "info",
		FallbackToLog: true,
	}
}
