package service

import (
	"context"
	"log/slog"

	"github.com/Moonbreeze/aiAdvent/internal/domain"
	"github.com/Moonbreeze/aiAdvent/internal/llm"
)

// LlmService runs agents against one provider client. It owns the two-stage
// generate-then-structure pipeline.
type LlmService struct {
	client llm.Client
}

func NewLlmService(client llm.Client) *LlmService {
	return &LlmService{client: client}
}

// Complete prepends the agent's system prompt to the history and sends the
// request to the provider.
func (s *LlmService) Complete(ctx context.Context, agent AgentDefinition, messages []domain.Message) llm.Result {
	full := make([]domain.Message, 0, len(messages)+1)
	full = append(full, domain.Message{Role: domain.RoleSystem, Text: agent.SystemPrompt})
	full = append(full, messages...)
	return s.client.Complete(ctx, full, agent.Tier, &agent.Options)
}

// CompleteAndParse runs the main agent, then feeds its raw output to the
// parser agent as a single user turn with no prior conversation. When the
// second stage fails or returns nothing, the first stage's raw result is
// returned instead: a successful main generation must always reach the user.
func (s *LlmService) CompleteAndParse(ctx context.Context, agent AgentDefinition, messages []domain.Message) llm.Result {
	mainResult := s.Complete(ctx, agent, messages)
	if !mainResult.Success || mainResult.Content == "" {
		return mainResult
	}

	parseResult := s.Complete(ctx, parserAgent(), []domain.Message{
		{Role: domain.RoleUser, Text: mainResult.Content},
	})

	if !parseResult.Success || parseResult.Content == "" {
		slog.Warn("parser agent failed, using raw response", "error", parseResult.Error)
		return mainResult
	}

	return parseResult
}
