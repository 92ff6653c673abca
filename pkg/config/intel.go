package config

import "time"

// IntelConfig controls the intelligence (analysis) stage.
type IntelConfig struct {
	// Timeout applies to a single provider invocation. When the active
	// provider exceeds it the stage falls back to the local rule engine.
	Timeout time.Duration `yaml:"timeout"`

	// MaxRecommendations caps how many recommendations a provider result keeps.
	MaxRecommendations int `yaml:"max_recommendations"`

	// ProviderCacheTTL bounds how long the active provider snapshot is reused
	// before re-reading it from the database.
	ProviderCacheTTL time.Duration `yaml:"provider_cache_ttl"`
}

// DefaultIntelConfig returns the built-in intelligence defaults.
func DefaultIntelConfig() *IntelConfig {
	return &IntelConfig{
		Timeout:            60 * time.Second,
		MaxRecommendations: 10,
		ProviderCacheTTL:   30 * time.Second,
	}
}
