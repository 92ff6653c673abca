package notify

import (
	"context"
	"log/slog"

	"github.com/codeready-toolchain/conductor/pkg/models"
)

// LogDriver writes the notification to the structured log. It never fails,
// which makes it the delivery of last resort when no channel matched.
type LogDriver struct{}

// NewLogDriver creates a log driver.
func NewLogDriver() *LogDriver { return &LogDriver{} }

func (d *LogDriver) Name() string { return "log" }

func (d *LogDriver) Send(_ context.Context, msg models.NotificationMessage, _ map[string]any) error {
	slog.Info("Notification",
		"title", msg.Title,
		"severity", msg.Severity,
		"run_id", msg.RunID,
		"trace_id", msg.TraceID,
		"incident_id", msg.IncidentID,
		"body", RenderBody(msg))
	return nil
}
