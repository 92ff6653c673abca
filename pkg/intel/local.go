package intel

import (
	"context"
	"fmt"

	"github.com/codeready-toolchain/conductor/pkg/models"
)

// LocalProvider is a deterministic rule engine over the check summary and
// incident severity. It needs no credentials, no network, and no
// configuration, which is what makes it a safe fallback: analysis can always
// produce something.
type LocalProvider struct{}

// NewLocalProvider creates the local rule engine.
func NewLocalProvider() *LocalProvider { return &LocalProvider{} }

func (p *LocalProvider) Name() string { return "local" }

// Analyze applies the built-in rules. It never returns an error.
func (p *LocalProvider) Analyze(_ context.Context, req AnalysisRequest) (models.AnalysisResult, error) {
	var recs []models.Recommendation

	if req.Checks != nil {
		recs = append(recs, p.checkRules(req.Checks)...)
	}
	recs = append(recs, p.severityRules(req)...)

	if len(recs) == 0 {
		recs = append(recs, models.Recommendation{
			Title:      "No anomalies detected",
			Detail:     "All diagnostics passed; monitor the incident and close it if the alert does not re-fire.",
			Priority:   "low",
			Confidence: 0.5,
			Source:     p.Name(),
		})
	}

	return models.AnalysisResult{
		Provider:        p.Name(),
		Status:          models.AnalysisSucceeded,
		Recommendations: recs,
	}, nil
}

func (p *LocalProvider) checkRules(summary *models.CheckSummary) []models.Recommendation {
	var recs []models.Recommendation

	for name, result := range summary.Results {
		switch result.Status {
		case models.CheckCritical:
			recs = append(recs, models.Recommendation{
				Title:      fmt.Sprintf("Investigate critical check: %s", name),
				Detail:     fmt.Sprintf("Checker %q reported critical: %s", name, result.Message),
				Priority:   "high",
				Confidence: 0.9,
				Source:     p.Name(),
			})
		case models.CheckWarning:
			recs = append(recs, models.Recommendation{
				Title:      fmt.Sprintf("Review degraded check: %s", name),
				Detail:     fmt.Sprintf("Checker %q reported warning: %s", name, result.Message),
				Priority:   "medium",
				Confidence: 0.7,
				Source:     p.Name(),
			})
		case models.CheckUnknown:
			recs = append(recs, models.Recommendation{
				Title:      fmt.Sprintf("Checker %s could not run", name),
				Detail:     fmt.Sprintf("Fix the checker before trusting this analysis: %s", result.Error),
				Priority:   "low",
				Confidence: 0.6,
				Source:     p.Name(),
			})
		}
	}
	return recs
}

func (p *LocalProvider) severityRules(req AnalysisRequest) []models.Recommendation {
	if req.Severity != models.SeverityCritical {
		return nil
	}
	return []models.Recommendation{{
		Title:      "Page the on-call engineer",
		Detail:     fmt.Sprintf("Incident %q is critical in %s; automated diagnostics alone are not sufficient.", req.IncidentTitle, req.Environment),
		Priority:   "high",
		Confidence: 0.8,
		Source:     p.Name(),
	}}
}
