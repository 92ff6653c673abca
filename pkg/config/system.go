package config

// SystemConfig groups system-wide infrastructure settings.
type SystemConfig struct {
	// Environment tags runs and notifications (e.g. "production", "staging").
	Environment string

	// DashboardURL is the base URL used to build links in notifications.
	DashboardURL string
}

// SlackConfig holds resolved Slack notification settings.
type SlackConfig struct {
	Enabled  bool
	TokenEnv string // Environment variable holding the bot token
	Channel  string // Default channel for channels without an explicit one
}
