package notify

import (
	"context"
	"fmt"

	goslack "github.com/slack-go/slack"

	"github.com/codeready-toolchain/conductor/pkg/models"
)

const maxBlockTextLength = 2900

// SlackDriver delivers messages as Block Kit posts. Channel config keys:
// token (falls back to the system token), channel (required).
type SlackDriver struct {
	// systemToken is used when a channel row carries no token of its own.
	systemToken string
	// apiURL overrides the Slack API endpoint; used by tests.
	apiURL string
}

// NewSlackDriver creates a Slack driver with the system-wide bot token.
func NewSlackDriver(systemToken string) *SlackDriver {
	return &SlackDriver{systemToken: systemToken}
}

// NewSlackDriverWithAPIURL creates a Slack driver targeting a custom API URL.
// Useful for testing with a mock server.
func NewSlackDriverWithAPIURL(systemToken, apiURL string) *SlackDriver {
	return &SlackDriver{systemToken: systemToken, apiURL: apiURL}
}

func (d *SlackDriver) Name() string { return "slack" }

func (d *SlackDriver) Send(ctx context.Context, msg models.NotificationMessage, channelConfig map[string]any) error {
	token := configString(channelConfig, "token")
	if token == "" {
		token = d.systemToken
	}
	if token == "" {
		return Permanent(fmt.Errorf("slack channel has no token and no system token is configured"))
	}
	channel := configString(channelConfig, "channel")
	if channel == "" {
		return Permanent(fmt.Errorf("slack channel config missing 'channel'"))
	}

	opts := []goslack.Option{}
	if d.apiURL != "" {
		opts = append(opts, goslack.OptionAPIURL(d.apiURL))
	}
	api := goslack.New(token, opts...)

	_, _, err := api.PostMessageContext(ctx, channel,
		goslack.MsgOptionBlocks(buildBlocks(msg)...),
		goslack.MsgOptionText(RenderBody(msg), false),
	)
	if err != nil {
		return fmt.Errorf("chat.postMessage failed: %w", err)
	}
	return nil
}

// buildBlocks creates Block Kit blocks for a notification message.
func buildBlocks(msg models.NotificationMessage) []goslack.Block {
	headerText := fmt.Sprintf("%s *%s*", emojiFor(msg.Severity), msg.Title)
	if msg.Environment != "" {
		headerText += fmt.Sprintf(" (`%s`)", msg.Environment)
	}

	blocks := []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, headerText, false, false),
			nil, nil,
		),
	}

	if msg.Body != "" {
		blocks = append(blocks, goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, truncateForSlack(msg.Body), false, false),
			nil, nil,
		))
	}

	if msg.Checks != nil {
		checksText := fmt.Sprintf("*Diagnostics:* %d run, %d passed, %d failed",
			msg.Checks.ChecksRun, msg.Checks.ChecksPassed, msg.Checks.ChecksFailed)
		blocks = append(blocks, goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, checksText, false, false),
			nil, nil,
		))
	}

	if len(msg.Analysis) > 0 {
		var recsText string
		for i, rec := range msg.Analysis {
			recsText += fmt.Sprintf("%d. *%s*", i+1, rec.Title)
			if rec.Priority != "" {
				recsText += fmt.Sprintf(" _[%s]_", rec.Priority)
			}
			recsText += "\n"
		}
		blocks = append(blocks, goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, truncateForSlack(recsText), false, false),
			nil, nil,
		))
	}

	if msg.DashboardURL != "" && msg.RunID != "" {
		btn := goslack.NewButtonBlockElement("", "",
			goslack.NewTextBlockObject(goslack.PlainTextType, "View Run", false, false))
		btn.URL = fmt.Sprintf("%s/runs/%s", msg.DashboardURL, msg.RunID)
		blocks = append(blocks, goslack.NewActionBlock("", btn))
	}

	return blocks
}

func truncateForSlack(text string) string {
	if len(text) <= maxBlockTextLength {
		return text
	}
	return text[:maxBlockTextLength] + "\n\n_... (truncated; view full run in dashboard)_"
}

func configString(cfg map[string]any, key string) string {
	if v, ok := cfg[key].(string); ok {
		return v
	}
	return ""
}
