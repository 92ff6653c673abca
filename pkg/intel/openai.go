package intel

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/codeready-toolchain/conductor/pkg/models"
)

const defaultOpenAIModel = "gpt-4o"

// OpenAIProvider produces recommendations via the OpenAI chat completions API.
type OpenAIProvider struct {
	client openai.Client
	model  string
}

// NewOpenAIProvider creates an OpenAI-backed provider. model may be empty to
// use the default.
func NewOpenAIProvider(apiKey, model string) *OpenAIProvider {
	if model == "" {
		model = defaultOpenAIModel
	}
	return &OpenAIProvider{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

func (p *OpenAIProvider) Name() string { return "openai" }

func (p *OpenAIProvider) Analyze(ctx context.Context, req AnalysisRequest) (models.AnalysisResult, error) {
	completion, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(buildPrompt(req)),
		},
	})
	if err != nil {
		return models.AnalysisResult{}, fmt.Errorf("openai chat completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return models.AnalysisResult{}, errors.New("openai returned no choices")
	}

	return models.AnalysisResult{
		Provider:        p.Name(),
		Status:          models.AnalysisSucceeded,
		Recommendations: parseRecommendations(completion.Choices[0].Message.Content, p.Name()),
		TotalTokens:     int(completion.Usage.TotalTokens),
	}, nil
}
