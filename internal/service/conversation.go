package service

import (
	"context"
	"log/slog"

	"github.com/Moonbreeze/aiAdvent/internal/config"
	"github.com/Moonbreeze/aiAdvent/internal/domain"
	"github.com/Moonbreeze/aiAdvent/internal/llm"
	tg "github.com/Moonbreeze/aiAdvent/internal/telegram"
)

// ConversationResult is the outcome of processing one user turn.
type ConversationResult struct {
	Success bool
	Message tg.FormattedMessage
	Error   string
}

// ConversationService orchestrates a user turn: record it, run the two-stage
// completion against the session's provider and agent, record the reply, and
// render it for delivery.
type ConversationService struct {
	sessions  *SessionService
	newClient func(config.LlmConfig) (llm.Client, error)
}

func NewConversationService(sessions *SessionService) *ConversationService {
	return &ConversationService{
		sessions:  sessions,
		newClient: llm.New,
	}
}

// ProcessUserMessage handles a free-form user message within a session.
func (s *ConversationService) ProcessUserMessage(ctx context.Context, userID int64, text string, cfg config.LlmConfig) ConversationResult {
	return s.processTurn(ctx, userID, text, cfg)
}

// ProcessUserAnswer handles an answer submitted through a question keyboard.
// The answer is treated as a regular user turn of the same conversation.
func (s *ConversationService) ProcessUserAnswer(ctx context.Context, userID int64, answer string, cfg config.LlmConfig) ConversationResult {
	return s.processTurn(ctx, userID, answer, cfg)
}

func (s *ConversationService) processTurn(ctx context.Context, userID int64, text string, cfg config.LlmConfig) ConversationResult {
	client, err := s.newClient(cfg)
	if err != nil {
		return ConversationResult{Error: err.Error()}
	}
	llmService := NewLlmService(client)

	s.sessions.AddMessage(userID, domain.Message{Role: domain.RoleUser, Text: text})

	agent := BuildAgent(s.sessions.AgentConfig(userID))
	result := llmService.CompleteAndParse(ctx, agent, s.sessions.Messages(userID))

	if !result.Success || result.Content == "" {
		errText := result.Error
		if errText == "" {
			errText = "no response from LLM"
		}
		return ConversationResult{Error: errText}
	}

	s.sessions.AddMessage(userID, domain.Message{Role: domain.RoleAssistant, Text: result.Content})
	slog.Info("conversation turn",
		"user_id", userID,
		"provider", cfg.Provider,
		"request_len", len(text),
		"response_len", len(result.Content),
	)

	return ConversationResult{
		Success: true,
		Message: tg.FormatResponse(result.Content, s.sessions.OutputMode(userID)),
	}
}
