package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/codeready-toolchain/conductor/ent"
	"github.com/codeready-toolchain/conductor/pkg/checks"
	"github.com/codeready-toolchain/conductor/pkg/config"
	"github.com/codeready-toolchain/conductor/pkg/ingest"
	"github.com/codeready-toolchain/conductor/pkg/intel"
	"github.com/codeready-toolchain/conductor/pkg/models"
	"github.com/codeready-toolchain/conductor/pkg/notify"
)

// IngestStage feeds the raw payload through the alert normalizer and lifts
// the resulting incident onto the run.
type IngestStage struct {
	normalizer *ingest.Normalizer
}

// NewIngestStage creates the ingest stage.
func NewIngestStage(normalizer *ingest.Normalizer) *IngestStage {
	return &IngestStage{normalizer: normalizer}
}

func (s *IngestStage) Name() string { return models.StageIngest }

// ShouldSkip skips normalization when the caller already attached an
// incident to the run.
func (s *IngestStage) ShouldSkip(rc *RunContext) (bool, string) {
	if rc.IncidentID != "" {
		return true, "incident supplied by caller"
	}
	return false, ""
}

func (s *IngestStage) Execute(ctx context.Context, rc *RunContext) (map[string]any, error) {
	raw, err := json.Marshal(rc.Payload)
	if err != nil {
		return nil, fmt.Errorf("%w: payload is not serializable: %v", ingest.ErrMalformedPayload, err)
	}

	result, err := s.normalizer.Ingest(ctx, raw, rc.Source)
	if err != nil {
		return nil, err
	}

	if result.Source != "" {
		rc.Source = result.Source
	}
	if result.IncidentID != "" {
		rc.IncidentID = result.IncidentID
	}

	return toSnapshot(result)
}

// CheckStage runs the enabled diagnostic checkers in bounded parallel.
type CheckStage struct {
	runner *checks.Runner
}

// NewCheckStage creates the check stage.
func NewCheckStage(runner *checks.Runner) *CheckStage {
	return &CheckStage{runner: runner}
}

func (s *CheckStage) Name() string { return models.StageCheck }

func (s *CheckStage) Execute(ctx context.Context, rc *RunContext) (map[string]any, error) {
	summary, err := s.runner.Run(ctx, rc.TraceID, rc.RunID)
	if err != nil {
		return nil, err
	}
	return toSnapshot(summary)
}

// AnalyzeStage asks the active intelligence provider for recommendations,
// feeding it the incident and the check results.
type AnalyzeStage struct {
	analyzer *intel.Analyzer
	db       *ent.Client
}

// NewAnalyzeStage creates the analyze stage.
func NewAnalyzeStage(analyzer *intel.Analyzer, db *ent.Client) *AnalyzeStage {
	return &AnalyzeStage{analyzer: analyzer, db: db}
}

func (s *AnalyzeStage) Name() string { return models.StageAnalyze }

func (s *AnalyzeStage) Execute(ctx context.Context, rc *RunContext) (map[string]any, error) {
	req := intel.AnalysisRequest{
		IncidentID:  rc.IncidentID,
		Environment: rc.Environment,
		Source:      rc.Source,
		Severity:    models.SeverityWarning,
	}

	if rc.IncidentID != "" {
		inc, err := s.db.Incident.Get(ctx, rc.IncidentID)
		if err != nil {
			if !ent.IsNotFound(err) {
				return nil, fmt.Errorf("failed to load incident: %w", err)
			}
		} else {
			req.IncidentTitle = inc.Title
			req.Description = inc.Description
			req.Severity = models.Severity(inc.Severity)
		}
	}
	if req.IncidentTitle == "" {
		req.IncidentTitle = payloadTitle(rc.Payload)
	}

	if checkOutput, ok := rc.Outputs[models.StageCheck]; ok {
		var summary models.CheckSummary
		if err := fromSnapshot(checkOutput, &summary); err == nil {
			req.Checks = &summary
		}
	}

	result, err := s.analyzer.Analyze(ctx, rc.TraceID, rc.RunID, req)
	if err != nil {
		return nil, err
	}
	return toSnapshot(result)
}

// NotifyStage builds one message from prior stage outputs and fans it out to
// the active channels.
type NotifyStage struct {
	dispatcher *notify.Dispatcher
	db         *ent.Client
	system     *config.SystemConfig
}

// NewNotifyStage creates the notify stage.
func NewNotifyStage(dispatcher *notify.Dispatcher, db *ent.Client, system *config.SystemConfig) *NotifyStage {
	return &NotifyStage{dispatcher: dispatcher, db: db, system: system}
}

func (s *NotifyStage) Name() string { return models.StageNotify }

func (s *NotifyStage) Execute(ctx context.Context, rc *RunContext) (map[string]any, error) {
	msg := models.NotificationMessage{
		Title:        payloadTitle(rc.Payload),
		Severity:     models.SeverityInfo,
		IncidentID:   rc.IncidentID,
		TraceID:      rc.TraceID,
		RunID:        rc.RunID,
		Environment:  rc.Environment,
		DashboardURL: s.system.DashboardURL,
		DedupKey:     rc.RunID,
	}

	if rc.IncidentID != "" {
		inc, err := s.db.Incident.Get(ctx, rc.IncidentID)
		if err == nil {
			msg.Title = inc.Title
			msg.Severity = models.Severity(inc.Severity)
		} else if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("failed to load incident: %w", err)
		}
	}

	var bodyParts []string
	if rc.Source != "" {
		bodyParts = append(bodyParts, fmt.Sprintf("Source: %s", rc.Source))
	}

	if checkOutput, ok := rc.Outputs[models.StageCheck]; ok {
		var summary models.CheckSummary
		if err := fromSnapshot(checkOutput, &summary); err == nil {
			msg.Checks = &summary
			// Diagnostics escalate the message severity above the incident's.
			msg.Severity = models.MaxSeverity(msg.Severity, checkSeverity(&summary))
		}
	}

	if analyzeOutput, ok := rc.Outputs[models.StageAnalyze]; ok {
		var analysis models.AnalysisResult
		if err := fromSnapshot(analyzeOutput, &analysis); err == nil {
			msg.Analysis = analysis.Recommendations
			if analysis.Provider != "" {
				bodyParts = append(bodyParts, fmt.Sprintf("Analysis by %s (%s)", analysis.Provider, analysis.Status))
			}
		}
	}
	msg.Body = strings.Join(bodyParts, "\n")

	results, err := s.dispatcher.Dispatch(ctx, msg, nil)
	if err != nil {
		return nil, err
	}

	succeeded := 0
	for _, r := range results {
		if r.Succeeded {
			succeeded++
		}
	}
	return toSnapshot(map[string]any{
		"deliveries": results,
		"succeeded":  succeeded,
		"attempted":  len(results),
	})
}

// checkSeverity maps the worst observed check status onto a message severity.
func checkSeverity(summary *models.CheckSummary) models.Severity {
	if summary.Counts[models.CheckCritical] > 0 {
		return models.SeverityCritical
	}
	if summary.Counts[models.CheckWarning] > 0 || summary.Counts[models.CheckUnknown] > 0 {
		return models.SeverityWarning
	}
	return models.SeverityInfo
}

// payloadTitle digs a human-readable title out of a raw alert payload.
func payloadTitle(payload map[string]any) string {
	for _, key := range []string{"name", "alertname", "title", "summary"} {
		if v, ok := payload[key].(string); ok && v != "" {
			return v
		}
	}
	return "Alert pipeline run"
}
