package intel

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/conductor/pkg/config"
	"github.com/codeready-toolchain/conductor/pkg/models"
)

// fakeProvider is a scriptable provider for analyzer tests.
type fakeProvider struct {
	name   string
	result models.AnalysisResult
	err    error
	sleep  time.Duration
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Analyze(ctx context.Context, _ AnalysisRequest) (models.AnalysisResult, error) {
	if f.sleep > 0 {
		select {
		case <-time.After(f.sleep):
		case <-ctx.Done():
			return models.AnalysisResult{}, ctx.Err()
		}
	}
	return f.result, f.err
}

type staticResolver struct{ provider Provider }

func (s *staticResolver) Active(context.Context) Provider { return s.provider }

func intelConfig() *config.IntelConfig {
	return &config.IntelConfig{Timeout: 100 * time.Millisecond, MaxRecommendations: 3}
}

func criticalRequest() AnalysisRequest {
	return AnalysisRequest{
		IncidentTitle: "HighCPU",
		Severity:      models.SeverityCritical,
		Environment:   "production",
	}
}

func TestAnalyzerUsesActiveProvider(t *testing.T) {
	provider := &fakeProvider{
		name: "openai",
		result: models.AnalysisResult{
			Provider: "openai",
			Status:   models.AnalysisSucceeded,
			Recommendations: []models.Recommendation{
				{Title: "Scale up", Source: "openai"},
			},
			TotalTokens: 321,
		},
	}
	analyzer := NewAnalyzer(&staticResolver{provider}, intelConfig(), nil)

	result, err := analyzer.Analyze(context.Background(), "trace-1", "run-1", criticalRequest())
	require.NoError(t, err)

	assert.Equal(t, "openai", result.Provider)
	assert.Equal(t, models.AnalysisSucceeded, result.Status)
	assert.Equal(t, 321, result.TotalTokens)
	require.Len(t, result.Recommendations, 1)
}

func TestAnalyzerFallsBackOnProviderError(t *testing.T) {
	provider := &fakeProvider{name: "openai", err: errors.New("upstream 503")}
	analyzer := NewAnalyzer(&staticResolver{provider}, intelConfig(), nil)

	result, err := analyzer.Analyze(context.Background(), "trace-1", "run-1", criticalRequest())
	require.NoError(t, err, "fallback must not fail the analysis")

	assert.Equal(t, models.AnalysisFallback, result.Status)
	assert.Equal(t, "openai", result.Provider, "result is attributed to the provider that failed")
	assert.Contains(t, result.Error, "upstream 503")
	require.NotEmpty(t, result.Recommendations, "local rule engine always produces something")
	assert.Equal(t, "local", result.Recommendations[0].Source)
}

func TestAnalyzerFallsBackOnTimeout(t *testing.T) {
	provider := &fakeProvider{name: "anthropic", sleep: time.Second}
	analyzer := NewAnalyzer(&staticResolver{provider}, intelConfig(), nil)

	result, err := analyzer.Analyze(context.Background(), "trace-1", "run-1", criticalRequest())
	require.NoError(t, err)

	assert.Equal(t, models.AnalysisFallback, result.Status)
	assert.Contains(t, result.Error, "context deadline exceeded")
}

func TestAnalyzerCapsRecommendations(t *testing.T) {
	many := make([]models.Recommendation, 10)
	for i := range many {
		many[i] = models.Recommendation{Title: "r", Source: "openai"}
	}
	provider := &fakeProvider{
		name:   "openai",
		result: models.AnalysisResult{Provider: "openai", Status: models.AnalysisSucceeded, Recommendations: many},
	}
	analyzer := NewAnalyzer(&staticResolver{provider}, intelConfig(), nil)

	result, err := analyzer.Analyze(context.Background(), "trace-1", "run-1", criticalRequest())
	require.NoError(t, err)

	assert.Len(t, result.Recommendations, 3)
}

func TestLocalProviderRules(t *testing.T) {
	local := NewLocalProvider()

	summary := models.Summarize([]models.CheckResult{
		{CheckerName: "database", Status: models.CheckCritical, Message: "unreachable"},
		{CheckerName: "memory", Status: models.CheckWarning, Message: "heap high"},
		{CheckerName: "goroutines", Status: models.CheckOK},
	})
	req := criticalRequest()
	req.Checks = &summary

	result, err := local.Analyze(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, models.AnalysisSucceeded, result.Status)

	var titles []string
	for _, r := range result.Recommendations {
		titles = append(titles, r.Title)
	}
	assert.Contains(t, titles, "Investigate critical check: database")
	assert.Contains(t, titles, "Review degraded check: memory")
	assert.Contains(t, titles, "Page the on-call engineer")
}

func TestLocalProviderAlwaysRecommendsSomething(t *testing.T) {
	local := NewLocalProvider()

	result, err := local.Analyze(context.Background(), AnalysisRequest{
		IncidentTitle: "quiet",
		Severity:      models.SeverityInfo,
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.Recommendations)
}

func TestParseRecommendations(t *testing.T) {
	jsonBody := `[{"title": "Restart service", "detail": "x", "priority": "high", "confidence": 0.9}]`

	t.Run("bare array", func(t *testing.T) {
		recs := parseRecommendations(jsonBody, "openai")
		require.Len(t, recs, 1)
		assert.Equal(t, "Restart service", recs[0].Title)
		assert.Equal(t, "openai", recs[0].Source)
	})

	t.Run("fenced array", func(t *testing.T) {
		recs := parseRecommendations("```json\n"+jsonBody+"\n```", "anthropic")
		require.Len(t, recs, 1)
		assert.Equal(t, "anthropic", recs[0].Source)
	})

	t.Run("prose falls back to single recommendation", func(t *testing.T) {
		recs := parseRecommendations("You should restart the service.", "openai")
		require.Len(t, recs, 1)
		assert.Equal(t, "Provider analysis", recs[0].Title)
		assert.Contains(t, recs[0].Detail, "restart the service")
	})
}
