package config

// Defaults holds fallback values applied to submissions that omit them.
type Defaults struct {
	// Source is assumed for payloads whose origin cannot be probed.
	Source string `yaml:"source"`

	// Environment tags runs that do not carry one.
	Environment string `yaml:"environment"`

	// MaxRetries is the run-level retry budget recorded on new runs.
	MaxRetries int `yaml:"max_retries"`
}

// DefaultDefaults returns the built-in submission defaults.
func DefaultDefaults() *Defaults {
	return &Defaults{
		Source:      "generic",
		Environment: "development",
		MaxRetries:  3,
	}
}
