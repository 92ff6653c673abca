package notify

import (
	"fmt"
	"strings"

	"github.com/codeready-toolchain/conductor/pkg/models"
)

var severityEmoji = map[models.Severity]string{
	models.SeverityCritical: ":rotating_light:",
	models.SeverityWarning:  ":warning:",
	models.SeverityInfo:     ":information_source:",
	models.SeveritySuccess:  ":white_check_mark:",
}

// RenderBody produces the plain-text rendering of a message used by the
// webhook and log drivers, and as the Slack fallback text.
func RenderBody(msg models.NotificationMessage) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%s] %s", strings.ToUpper(string(msg.Severity)), msg.Title)
	if msg.Environment != "" {
		fmt.Fprintf(&sb, " (%s)", msg.Environment)
	}
	sb.WriteByte('\n')

	if msg.Body != "" {
		sb.WriteString(msg.Body)
		sb.WriteByte('\n')
	}

	if msg.Checks != nil {
		fmt.Fprintf(&sb, "Checks: %d run, %d passed, %d failed\n",
			msg.Checks.ChecksRun, msg.Checks.ChecksPassed, msg.Checks.ChecksFailed)
	}

	for i, rec := range msg.Analysis {
		fmt.Fprintf(&sb, "%d. %s", i+1, rec.Title)
		if rec.Priority != "" {
			fmt.Fprintf(&sb, " [%s]", rec.Priority)
		}
		sb.WriteByte('\n')
	}

	if msg.DashboardURL != "" && msg.RunID != "" {
		fmt.Fprintf(&sb, "%s/runs/%s\n", msg.DashboardURL, msg.RunID)
	}
	return sb.String()
}

func emojiFor(severity models.Severity) string {
	if e, ok := severityEmoji[severity]; ok {
		return e
	}
	return ":question:"
}
