package intel

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/codeready-toolchain/conductor/pkg/models"
)

const (
	defaultAnthropicModel    = string(sdk.ModelClaudeSonnet4_0)
	anthropicMaxOutputTokens = 2048
)

// AnthropicProvider produces recommendations via the Anthropic Messages API.
type AnthropicProvider struct {
	client sdk.Client
	model  string
}

// NewAnthropicProvider creates an Anthropic-backed provider. model may be
// empty to use the default.
func NewAnthropicProvider(apiKey, model string) *AnthropicProvider {
	if model == "" {
		model = defaultAnthropicModel
	}
	return &AnthropicProvider{
		client: sdk.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

func (p *AnthropicProvider) Name() string { return "anthropic" }

func (p *AnthropicProvider) Analyze(ctx context.Context, req AnalysisRequest) (models.AnalysisResult, error) {
	msg, err := p.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:     sdk.Model(p.model),
		MaxTokens: anthropicMaxOutputTokens,
		System:    []sdk.TextBlockParam{{Text: systemPrompt}},
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(buildPrompt(req))),
		},
	})
	if err != nil {
		return models.AnalysisResult{}, fmt.Errorf("anthropic messages.new: %w", err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return models.AnalysisResult{}, errors.New("anthropic returned no text content")
	}

	return models.AnalysisResult{
		Provider:        p.Name(),
		Status:          models.AnalysisSucceeded,
		Recommendations: parseRecommendations(sb.String(), p.Name()),
		TotalTokens:     int(msg.Usage.InputTokens + msg.Usage.OutputTokens),
	}, nil
}
