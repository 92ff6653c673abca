// Package intel runs the analysis stage: it selects the active intelligence
// provider, invokes it with a deadline, and guarantees a result by falling
// back to the local rule engine when the provider fails. The local engine is
// always available and never fails to instantiate.
package intel

import (
	"context"
	"fmt"
	"os"

	"github.com/codeready-toolchain/conductor/pkg/models"
)

// AnalysisRequest carries everything a provider may use to produce
// recommendations. Checks is nil when the check stage was skipped.
type AnalysisRequest struct {
	IncidentID    string
	IncidentTitle string
	Description   string
	Severity      models.Severity
	Environment   string
	Source        string
	Checks        *models.CheckSummary
}

// Provider produces remediation recommendations for an incident.
type Provider interface {
	// Name identifies the provider in AnalysisRun rows and recommendations.
	Name() string

	// Analyze produces recommendations. Implementations must honor ctx; the
	// analyzer supplies the deadline.
	Analyze(ctx context.Context, req AnalysisRequest) (models.AnalysisResult, error)
}

// NewProviderFromConfig instantiates a provider from an IntelligenceProvider
// row's type and config. Supported keys: api_key (literal), api_key_env
// (environment variable name), model.
func NewProviderFromConfig(providerType string, cfg map[string]any) (Provider, error) {
	switch providerType {
	case "local":
		return NewLocalProvider(), nil
	case "openai":
		key, err := resolveAPIKey(cfg)
		if err != nil {
			return nil, fmt.Errorf("openai provider: %w", err)
		}
		return NewOpenAIProvider(key, configString(cfg, "model")), nil
	case "anthropic":
		key, err := resolveAPIKey(cfg)
		if err != nil {
			return nil, fmt.Errorf("anthropic provider: %w", err)
		}
		return NewAnthropicProvider(key, configString(cfg, "model")), nil
	default:
		return nil, fmt.Errorf("unknown provider type %q", providerType)
	}
}

func resolveAPIKey(cfg map[string]any) (string, error) {
	if key := configString(cfg, "api_key"); key != "" {
		return key, nil
	}
	if envName := configString(cfg, "api_key_env"); envName != "" {
		if key := os.Getenv(envName); key != "" {
			return key, nil
		}
		return "", fmt.Errorf("environment variable %s is empty", envName)
	}
	return "", fmt.Errorf("config needs api_key or api_key_env")
}

func configString(cfg map[string]any, key string) string {
	if v, ok := cfg[key].(string); ok {
		return v
	}
	return ""
}
