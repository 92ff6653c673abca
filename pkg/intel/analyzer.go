package intel

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/conductor/ent"
	"github.com/codeready-toolchain/conductor/ent/analysisrun"
	"github.com/codeready-toolchain/conductor/pkg/config"
	"github.com/codeready-toolchain/conductor/pkg/models"
)

// providerResolver lets tests inject a provider without a database.
type providerResolver interface {
	Active(ctx context.Context) Provider
}

// Analyzer runs the analysis stage: active provider under a deadline, local
// rule engine as fallback, one AnalysisRun row per invocation. It fails only
// when the local fallback itself fails, which the local engine never does.
type Analyzer struct {
	resolver providerResolver
	local    Provider
	cfg      *config.IntelConfig
	db       *ent.Client
}

// NewAnalyzer creates an analyzer. db may be nil in unit tests; AnalysisRun
// persistence is then skipped.
func NewAnalyzer(resolver providerResolver, cfg *config.IntelConfig, db *ent.Client) *Analyzer {
	return &Analyzer{
		resolver: resolver,
		local:    NewLocalProvider(),
		cfg:      cfg,
		db:       db,
	}
}

// Analyze invokes the active provider and guarantees a result.
func (a *Analyzer) Analyze(ctx context.Context, traceID, runID string, req AnalysisRequest) (models.AnalysisResult, error) {
	provider := a.resolver.Active(ctx)

	callCtx, cancel := context.WithTimeout(ctx, a.cfg.Timeout)
	result, err := provider.Analyze(callCtx, req)
	cancel()

	if err != nil {
		slog.Warn("Provider analysis failed, falling back to local rule engine",
			"provider", provider.Name(), "trace_id", traceID, "error", err)

		fallback, localErr := a.local.Analyze(ctx, req)
		if localErr != nil {
			return models.AnalysisResult{}, fmt.Errorf("analysis failed and local fallback failed too: %w", localErr)
		}
		result = fallback
		result.Provider = provider.Name()
		result.Status = models.AnalysisFallback
		result.Error = err.Error()
	}

	if len(result.Recommendations) > a.cfg.MaxRecommendations {
		result.Recommendations = result.Recommendations[:a.cfg.MaxRecommendations]
	}

	a.persist(ctx, traceID, runID, req.IncidentID, &result)
	return result, nil
}

// persist records the invocation. Persistence failures are logged, not
// fatal: the in-memory result is the stage output of record.
func (a *Analyzer) persist(ctx context.Context, traceID, runID, incidentID string, result *models.AnalysisResult) {
	if a.db == nil {
		return
	}
	create := a.db.AnalysisRun.Create().
		SetID(uuid.New().String()).
		SetTraceID(traceID).
		SetProvider(result.Provider).
		SetStatus(analysisrun.Status(result.Status)).
		SetRecommendations(result.Recommendations)
	if runID != "" {
		create.SetPipelineRunID(runID)
	}
	if incidentID != "" {
		create.SetIncidentID(incidentID)
	}
	if result.TotalTokens > 0 {
		create.SetTotalTokens(result.TotalTokens)
	}
	if result.Error != "" {
		create.SetError(result.Error)
	}
	if err := create.Exec(ctx); err != nil {
		slog.Warn("Failed to persist analysis run", "trace_id", traceID, "error", err)
	}
}
