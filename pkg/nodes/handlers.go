package nodes

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/codeready-toolchain/conductor/ent"
	"github.com/codeready-toolchain/conductor/pkg/checks"
	"github.com/codeready-toolchain/conductor/pkg/config"
	"github.com/codeready-toolchain/conductor/pkg/ingest"
	"github.com/codeready-toolchain/conductor/pkg/intel"
	"github.com/codeready-toolchain/conductor/pkg/models"
	"github.com/codeready-toolchain/conductor/pkg/notify"
)

// IngestNode wraps the alert normalizer. Its output carries the incident_id
// the orchestrator hoists into the shared context.
type IngestNode struct {
	normalizer *ingest.Normalizer
}

// NewIngestNode creates the ingest node handler.
func NewIngestNode(normalizer *ingest.Normalizer) *IngestNode {
	return &IngestNode{normalizer: normalizer}
}

func (n *IngestNode) Type() string { return "ingest" }

func (n *IngestNode) Validate(config map[string]any) error {
	if raw, ok := config["source"]; ok {
		if _, isString := raw.(string); !isString {
			return fmt.Errorf("ingest node: 'source' must be a string")
		}
	}
	return nil
}

func (n *IngestNode) Execute(ctx context.Context, config map[string]any, nc *NodeContext) (map[string]any, error) {
	raw, err := json.Marshal(nc.Payload)
	if err != nil {
		return nil, fmt.Errorf("%w: payload is not serializable: %v", ingest.ErrMalformedPayload, err)
	}

	source := configString(config, "source")
	if source == "" {
		source = nc.Source
	}

	result, err := n.normalizer.Ingest(ctx, raw, source)
	if err != nil {
		return nil, err
	}
	return snapshot(result)
}

// ContextNode resolves a checker set and executes it, enriching the run with
// diagnostic context. Individual checker failures do not fail the node.
type ContextNode struct {
	registry *checks.Registry
	defaults *config.ChecksConfig
	db       *ent.Client
}

// NewContextNode creates the context node handler. defaults supplies the
// checker set and limits when the node config does not override them.
func NewContextNode(registry *checks.Registry, defaults *config.ChecksConfig, db *ent.Client) *ContextNode {
	return &ContextNode{registry: registry, defaults: defaults, db: db}
}

func (n *ContextNode) Type() string { return "context" }

func (n *ContextNode) Validate(config map[string]any) error {
	checkers, err := configStringSlice(config, "checkers")
	if err != nil {
		return fmt.Errorf("context node: %w", err)
	}
	for _, name := range checkers {
		if _, ok := n.registry.Get(name); !ok {
			return fmt.Errorf("context node: unknown checker %q", name)
		}
	}
	if v, ok := configInt(config, "parallelism"); ok && v < 1 {
		return fmt.Errorf("context node: 'parallelism' must be positive")
	}
	return nil
}

func (n *ContextNode) Execute(ctx context.Context, config map[string]any, nc *NodeContext) (map[string]any, error) {
	cfg := *n.defaults
	if checkers, err := configStringSlice(config, "checkers"); err == nil && checkers != nil {
		cfg.Enabled = checkers
	}
	if v, ok := configInt(config, "parallelism"); ok && v > 0 {
		cfg.Parallelism = v
	}

	runner := checks.NewRunner(n.registry, &cfg, n.db)
	summary, err := runner.Run(ctx, nc.TraceID, nc.RunID)
	if err != nil {
		return nil, err
	}
	return snapshot(summary)
}

// IntelligenceNode produces remediation recommendations. The provider comes
// from the node config, from the database's active provider, or from the
// local rule engine as the fallback of last resort.
type IntelligenceNode struct {
	resolver *intel.Resolver
	local    *intel.LocalProvider
	cfg      *config.IntelConfig
	db       *ent.Client
}

// NewIntelligenceNode creates the intelligence node handler.
func NewIntelligenceNode(resolver *intel.Resolver, cfg *config.IntelConfig, db *ent.Client) *IntelligenceNode {
	return &IntelligenceNode{
		resolver: resolver,
		local:    intel.NewLocalProvider(),
		cfg:      cfg,
		db:       db,
	}
}

func (n *IntelligenceNode) Type() string { return "intelligence" }

func (n *IntelligenceNode) Validate(config map[string]any) error {
	provider := configString(config, "provider")
	switch provider {
	case "", "local", "openai", "anthropic":
		return nil
	default:
		return fmt.Errorf("intelligence node: unknown provider %q", provider)
	}
}

func (n *IntelligenceNode) Execute(ctx context.Context, config map[string]any, nc *NodeContext) (map[string]any, error) {
	provider := n.resolveProvider(config)

	req := intel.AnalysisRequest{
		IncidentID:  nc.IncidentID,
		Environment: nc.Environment,
		Source:      nc.Source,
		Severity:    models.SeverityWarning,
	}
	if nc.IncidentID != "" {
		inc, err := n.db.Incident.Get(ctx, nc.IncidentID)
		if err == nil {
			req.IncidentTitle = inc.Title
			req.Description = inc.Description
			req.Severity = models.Severity(inc.Severity)
		} else if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("failed to load incident: %w", err)
		}
	}
	if summary := latestCheckSummary(nc); summary != nil {
		req.Checks = summary
	}

	callCtx, cancel := context.WithTimeout(ctx, n.cfg.Timeout)
	defer cancel()

	result, err := provider.Analyze(callCtx, req)
	if err != nil {
		// The local rule engine is always available and never fails.
		slog.Warn("Intelligence provider failed, falling back to local rules",
			"run_id", nc.RunID, "provider", provider.Name(), "error", err)
		result, _ = n.local.Analyze(ctx, req)
		result.Provider = provider.Name()
		result.Status = models.AnalysisFallback
		result.Error = err.Error()
	}
	return snapshot(result)
}

func (n *IntelligenceNode) resolveProvider(config map[string]any) intel.Provider {
	providerType := configString(config, "provider")
	if providerType == "" {
		return n.resolver.Active(context.Background())
	}

	providerCfg, _ := config["provider_config"].(map[string]any)
	provider, err := intel.NewProviderFromConfig(providerType, providerCfg)
	if err != nil {
		slog.Warn("Failed to build configured provider, using local rules",
			"provider", providerType, "error", err)
		return n.local
	}
	return provider
}

// NotifyNode dispatches a message built from the preceding node outputs.
type NotifyNode struct {
	dispatcher *notify.Dispatcher
	system     *config.SystemConfig
}

// NewNotifyNode creates the notify node handler.
func NewNotifyNode(dispatcher *notify.Dispatcher, system *config.SystemConfig) *NotifyNode {
	return &NotifyNode{dispatcher: dispatcher, system: system}
}

func (n *NotifyNode) Type() string { return "notify" }

func (n *NotifyNode) Validate(config map[string]any) error {
	if raw, ok := config["title"]; ok {
		if _, isString := raw.(string); !isString {
			return fmt.Errorf("notify node: 'title' must be a string")
		}
	}
	if _, err := configStringSlice(config, "drivers"); err != nil {
		return fmt.Errorf("notify node: %w", err)
	}
	return nil
}

func (n *NotifyNode) Execute(ctx context.Context, config map[string]any, nc *NodeContext) (map[string]any, error) {
	msg := models.NotificationMessage{
		Title:        configString(config, "title"),
		Severity:     models.SeverityInfo,
		IncidentID:   nc.IncidentID,
		TraceID:      nc.TraceID,
		RunID:        nc.RunID,
		Environment:  nc.Environment,
		DashboardURL: n.system.DashboardURL,
		DedupKey:     nc.RunID,
	}
	if msg.Title == "" {
		msg.Title = payloadTitle(nc.Payload)
	}

	if summary := latestCheckSummary(nc); summary != nil {
		msg.Checks = summary
		if summary.Counts[models.CheckCritical] > 0 {
			msg.Severity = models.SeverityCritical
		} else if summary.ChecksFailed > 0 {
			msg.Severity = models.SeverityWarning
		}
	}
	if analysis := latestAnalysis(nc); analysis != nil {
		msg.Analysis = analysis.Recommendations
	}

	drivers, err := configStringSlice(config, "drivers")
	if err != nil {
		return nil, fmt.Errorf("notify node: %w", err)
	}

	results, err := n.dispatcher.Dispatch(ctx, msg, drivers)
	if err != nil {
		return nil, err
	}

	succeeded := 0
	var deliveryErrors []string
	for _, r := range results {
		if r.Succeeded {
			succeeded++
		} else if r.Error != "" {
			deliveryErrors = append(deliveryErrors, r.Error)
		}
	}
	if succeeded == 0 && len(deliveryErrors) > 0 {
		// Dispatch already surfaced retryable failures; what is left
		// cannot be fixed by another attempt.
		return nil, notify.Permanent(fmt.Errorf("notify node: no delivery succeeded: %s",
			strings.Join(deliveryErrors, "; ")))
	}

	out := map[string]any{
		"deliveries": results,
		"succeeded":  succeeded,
		"attempted":  len(results),
	}
	if len(deliveryErrors) > 0 {
		out["errors"] = deliveryErrors
	}
	return snapshot(out)
}

// latestCheckSummary scans previous outputs for the most recent context node
// result.
func latestCheckSummary(nc *NodeContext) *models.CheckSummary {
	for _, output := range nc.PreviousOutputs {
		if _, ok := output["checks_run"]; !ok {
			continue
		}
		var summary models.CheckSummary
		if err := decode(output, &summary); err == nil {
			return &summary
		}
	}
	return nil
}

// latestAnalysis scans previous outputs for an intelligence node result.
func latestAnalysis(nc *NodeContext) *models.AnalysisResult {
	for _, output := range nc.PreviousOutputs {
		if _, ok := output["recommendations"]; !ok {
			continue
		}
		var result models.AnalysisResult
		if err := decode(output, &result); err == nil {
			return &result
		}
	}
	return nil
}

// payloadTitle digs a human-readable title out of a raw payload.
func payloadTitle(payload map[string]any) string {
	for _, key := range []string{"name", "alertname", "title", "summary"} {
		if v, ok := payload[key].(string); ok && v != "" {
			return v
		}
	}
	return "Pipeline notification"
}

// snapshot converts a node result into its JSON-shaped output map.
func snapshot(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal node output: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to shape node output: %w", err)
	}
	return m, nil
}

// decode converts an output map back into a typed value.
func decode(m map[string]any, out any) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}
