package config

// Config is the umbrella configuration object returned by Initialize()
// and used throughout the application.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// System-wide settings
	System *SystemConfig
	Slack  *SlackConfig

	// Pipeline defaults
	Defaults *Defaults

	// Queue and worker pool configuration
	Queue *QueueConfig

	// Stage configuration
	Retry  *RetryConfig
	Checks *ChecksConfig
	Intel  *IntelConfig
	Notify *NotifyConfig
}

// Initialize is defined in loader.go

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// Default returns a Config populated entirely from built-in defaults.
// Used by tests and by deployments that run without a conductor.yaml.
func Default() *Config {
	return &Config{
		System:   &SystemConfig{Environment: "development", DashboardURL: "http://localhost:5173"},
		Slack:    &SlackConfig{Enabled: false, TokenEnv: "SLACK_BOT_TOKEN"},
		Defaults: DefaultDefaults(),
		Queue:    DefaultQueueConfig(),
		Retry:    DefaultRetryConfig(),
		Checks:   DefaultChecksConfig(),
		Intel:    DefaultIntelConfig(),
		Notify:   DefaultNotifyConfig(),
	}
}
