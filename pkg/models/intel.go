package models

// Recommendation is one remediation suggestion from an intelligence provider.
type Recommendation struct {
	Title      string  `json:"title"`
	Detail     string  `json:"detail,omitempty"`
	Priority   string  `json:"priority,omitempty"` // high, medium, low
	Confidence float64 `json:"confidence,omitempty"`
	Source     string  `json:"source"` // provider name that produced it
}

// AnalysisStatus is the outcome class of one provider invocation.
type AnalysisStatus string

// Analysis status values. "fallback" means the configured provider failed
// and the local rule engine supplied the recommendations instead.
const (
	AnalysisSucceeded AnalysisStatus = "succeeded"
	AnalysisFailed    AnalysisStatus = "failed"
	AnalysisFallback  AnalysisStatus = "fallback"
)

// AnalysisResult is the value the analyze stage persists per provider call.
type AnalysisResult struct {
	Provider        string           `json:"provider"`
	Status          AnalysisStatus   `json:"status"`
	Recommendations []Recommendation `json:"recommendations"`
	TotalTokens     int              `json:"total_tokens,omitempty"`
	Error           string           `json:"error,omitempty"`
}
