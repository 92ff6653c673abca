package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// ConductorYAMLConfig represents the complete conductor.yaml file structure
type ConductorYAMLConfig struct {
	System   *SystemYAMLConfig `yaml:"system"`
	Defaults *Defaults         `yaml:"defaults"`
	Queue    *QueueConfig      `yaml:"queue"`
	Retry    *RetryConfig      `yaml:"retry"`
	Checks   *ChecksConfig     `yaml:"checks"`
	Intel    *IntelConfig      `yaml:"intel"`
	Notify   *NotifyConfig     `yaml:"notify"`
}

// SystemYAMLConfig groups system-wide infrastructure settings.
type SystemYAMLConfig struct {
	Environment  string           `yaml:"environment"`
	DashboardURL string           `yaml:"dashboard_url"`
	Slack        *SlackYAMLConfig `yaml:"slack"`
}

// SlackYAMLConfig holds Slack notification settings from YAML.
type SlackYAMLConfig struct {
	Enabled  *bool  `yaml:"enabled,omitempty"`
	TokenEnv string `yaml:"token_env,omitempty"`
	Channel  string `yaml:"channel,omitempty"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load conductor.yaml from configDir (optional; defaults apply without it)
//  2. Expand environment variables
//  3. Merge user-provided values over built-in defaults
//  4. Validate the result
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"environment", cfg.System.Environment,
		"workers", cfg.Queue.WorkerCount,
		"max_retries", cfg.Defaults.MaxRetries)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{configDir: configDir}

	yamlCfg, err := loader.loadConductorYAML()
	if err != nil {
		return nil, NewLoadError("conductor.yaml", err)
	}

	cfg := Default()
	cfg.configDir = configDir

	if yamlCfg.Defaults != nil {
		if err := mergo.Merge(cfg.Defaults, yamlCfg.Defaults, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge defaults: %w", err)
		}
	}
	if yamlCfg.Queue != nil {
		if err := mergo.Merge(cfg.Queue, yamlCfg.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}
	if yamlCfg.Retry != nil {
		if err := mergo.Merge(cfg.Retry, yamlCfg.Retry, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge retry config: %w", err)
		}
	}
	if yamlCfg.Checks != nil {
		if err := mergo.Merge(cfg.Checks, yamlCfg.Checks, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge checks config: %w", err)
		}
	}
	if yamlCfg.Intel != nil {
		if err := mergo.Merge(cfg.Intel, yamlCfg.Intel, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge intel config: %w", err)
		}
	}
	if yamlCfg.Notify != nil {
		if err := mergo.Merge(cfg.Notify, yamlCfg.Notify, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge notify config: %w", err)
		}
	}

	cfg.System = resolveSystemConfig(yamlCfg.System)
	cfg.Slack = resolveSlackConfig(yamlCfg.System)

	// Submission defaults fall back to the system environment when unset.
	if cfg.Defaults.Environment == "" || cfg.Defaults.Environment == "development" {
		cfg.Defaults.Environment = cfg.System.Environment
	}

	return cfg, nil
}

// validate performs sanity checks on loaded configuration
func validate(cfg *Config) error {
	if cfg.Queue.WorkerCount < 1 {
		return NewValidationError("queue", "queue", "worker_count", ErrInvalidValue)
	}
	if cfg.Queue.MaxConcurrentRuns < 1 {
		return NewValidationError("queue", "queue", "max_concurrent_runs", ErrInvalidValue)
	}
	if cfg.Queue.HeartbeatInterval >= cfg.Queue.OrphanThreshold {
		return NewValidationError("queue", "queue", "heartbeat_interval",
			fmt.Errorf("%w: must be shorter than orphan_threshold", ErrInvalidValue))
	}
	if cfg.Retry.BaseDelay <= 0 || cfg.Retry.MaxDelay < cfg.Retry.BaseDelay {
		return NewValidationError("retry", "retry", "base_delay", ErrInvalidValue)
	}
	if cfg.Retry.MaxAttemptsPerStage < 1 || cfg.Retry.MaxAttemptsPerRun < 1 {
		return NewValidationError("retry", "retry", "max_attempts_per_stage", ErrInvalidValue)
	}
	if cfg.Checks.Parallelism < 1 {
		return NewValidationError("checks", "checks", "parallelism", ErrInvalidValue)
	}
	if cfg.Checks.Timeout <= 0 {
		return NewValidationError("checks", "checks", "timeout", ErrInvalidValue)
	}
	if cfg.Intel.Timeout <= 0 {
		return NewValidationError("intel", "intel", "timeout", ErrInvalidValue)
	}
	if cfg.Notify.Timeout <= 0 {
		return NewValidationError("notify", "notify", "timeout", ErrInvalidValue)
	}
	switch cfg.Notify.MinSeverity {
	case "info", "warning", "critical", "success":
	default:
		return NewValidationError("notify", "notify", "min_severity", ErrInvalidValue)
	}
	if cfg.Defaults.MaxRetries < 0 {
		return NewValidationError("defaults", "defaults", "max_retries", ErrInvalidValue)
	}
	return nil
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadConductorYAML() (*ConductorYAMLConfig, error) {
	var config ConductorYAMLConfig

	if err := l.loadYAML("conductor.yaml", &config); err != nil {
		// A missing file is fine: everything has a built-in default.
		if errors.Is(err, ErrConfigNotFound) {
			slog.Info("No conductor.yaml found, using built-in defaults")
			return &config, nil
		}
		return nil, err
	}

	return &config, nil
}

// resolveSystemConfig resolves system configuration from YAML, applying defaults.
func resolveSystemConfig(sys *SystemYAMLConfig) *SystemConfig {
	cfg := &SystemConfig{
		Environment:  "development",
		DashboardURL: "http://localhost:5173",
	}

	if sys == nil {
		return cfg
	}
	if sys.Environment != "" {
		cfg.Environment = sys.Environment
	}
	if sys.DashboardURL != "" {
		cfg.DashboardURL = sys.DashboardURL
	}

	return cfg
}

// resolveSlackConfig resolves Slack configuration from YAML, applying defaults.
func resolveSlackConfig(sys *SystemYAMLConfig) *SlackConfig {
	cfg := &SlackConfig{
		Enabled:  false,
		TokenEnv: "SLACK_BOT_TOKEN",
	}

	if sys == nil || sys.Slack == nil {
		return cfg
	}

	s := sys.Slack
	if s.Enabled != nil {
		cfg.Enabled = *s.Enabled
	}
	if s.TokenEnv != "" {
		cfg.TokenEnv = s.TokenEnv
	}
	if s.Channel != "" {
		cfg.Channel = s.Channel
	}

	return cfg
}

// ParseDurationOrDefault parses a duration string, returning def on failure.
func ParseDurationOrDefault(value string, def time.Duration) time.Duration {
	if value == "" {
		return def
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		slog.Warn("Invalid duration in config, using default", "value", value, "default", def, "error", err)
		return def
	}
	return d
}
