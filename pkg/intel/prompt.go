package intel

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/codeready-toolchain/conductor/pkg/models"
)

const systemPrompt = `You are an SRE assistant. Given an incident summary and
diagnostic check results, respond with a JSON array of remediation
recommendations. Each element: {"title": string, "detail": string,
"priority": "high"|"medium"|"low", "confidence": number between 0 and 1}.
Respond with the JSON array only, no prose.`

// buildPrompt renders the analysis request as the user message both remote
// providers send.
func buildPrompt(req AnalysisRequest) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Incident: %s\n", req.IncidentTitle)
	if req.Description != "" {
		fmt.Fprintf(&sb, "Description: %s\n", req.Description)
	}
	fmt.Fprintf(&sb, "Severity: %s\n", req.Severity)
	fmt.Fprintf(&sb, "Environment: %s\n", req.Environment)
	if req.Source != "" {
		fmt.Fprintf(&sb, "Source: %s\n", req.Source)
	}

	if req.Checks != nil {
		fmt.Fprintf(&sb, "\nDiagnostics (%d run, %d passed, %d failed):\n",
			req.Checks.ChecksRun, req.Checks.ChecksPassed, req.Checks.ChecksFailed)
		for name, result := range req.Checks.Results {
			fmt.Fprintf(&sb, "- %s: %s", name, result.Status)
			if result.Message != "" {
				fmt.Fprintf(&sb, " (%s)", result.Message)
			}
			if result.Error != "" {
				fmt.Fprintf(&sb, " [error: %s]", result.Error)
			}
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// parseRecommendations extracts recommendations from a model completion.
// Providers are asked for a bare JSON array but routinely wrap it in a
// markdown fence; a completion that parses as neither becomes a single
// free-text recommendation rather than a failed analysis.
func parseRecommendations(completion, providerName string) []models.Recommendation {
	text := strings.TrimSpace(completion)
	if after, found := strings.CutPrefix(text, "```json"); found {
		text = after
	} else if after, found := strings.CutPrefix(text, "```"); found {
		text = after
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	text = strings.TrimSpace(text)

	var recs []models.Recommendation
	if err := json.Unmarshal([]byte(text), &recs); err != nil || len(recs) == 0 {
		return []models.Recommendation{{
			Title:      "Provider analysis",
			Detail:     strings.TrimSpace(completion),
			Priority:   "medium",
			Confidence: 0.5,
			Source:     providerName,
		}}
	}
	for i := range recs {
		recs[i].Source = providerName
	}
	return recs
}
