package llm

import (
	"context"

	"github.com/sashabaranov/go-openai"

	"github.com/Moonbreeze/aiAdvent/internal/config"
	"github.com/Moonbreeze/aiAdvent/internal/domain"
)

const deepSeekBaseURL = "https://api.deepseek.com"

// DeepSeekClient talks to the DeepSeek chat completions API, which is
// OpenAI-compatible. Both tiers map to the same model for now.
type DeepSeekClient struct {
	client *openai.Client
}

func NewDeepSeekClient(apiKey string) *DeepSeekClient {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = deepSeekBaseURL
	return &DeepSeekClient{client: openai.NewClientWithConfig(cfg)}
}

func (c *DeepSeekClient) model(Tier) string {
	return "deepseek-chat"
}

func (c *DeepSeekClient) Complete(ctx context.Context, messages []domain.Message, tier Tier, opts *CompletionOptions) Result {
	options := DefaultOptions
	if opts != nil {
		options = *opts
	}

	ctx, cancel := context.WithTimeout(ctx, config.RequestTimeout)
	defer cancel()

	chatMessages := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		chatMessages = append(chatMessages, openai.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Text,
		})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model(tier),
		Messages:    chatMessages,
		Temperature: float32(options.Temperature),
		MaxTokens:   options.MaxTokens,
	})
	if err != nil {
		return failure("deepseek request: %v", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return failure("no content in response")
	}

	return success(resp.Choices[0].Message.Content)
}
