package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Moonbreeze/aiAdvent/internal/config"
	"github.com/Moonbreeze/aiAdvent/internal/domain"
	"github.com/Moonbreeze/aiAdvent/internal/llm"
)

func newTestConversation(t *testing.T, client llm.Client) (*ConversationService, *SessionService) {
	t.Helper()
	sessions := NewSessionService()
	conv := NewConversationService(sessions)
	conv.newClient = func(config.LlmConfig) (llm.Client, error) {
		return client, nil
	}
	return conv, sessions
}

func TestProcessUserMessage_AppendsBothTurns(t *testing.T) {
	structured := `{"title":"T","tags":["a"],"response":{"text":"hello"}}`
	client := &fakeClient{results: []llm.Result{
		{Success: true, Content: "raw"},
		{Success: true, Content: structured},
	}}
	conv, sessions := newTestConversation(t, client)
	sessions.Start(1, domain.ProviderYandex, domain.AgentConfig{Role: domain.AgentChat})

	result := conv.ProcessUserMessage(context.Background(), 1, "hi there", config.LlmConfig{Provider: domain.ProviderYandex})

	require.True(t, result.Success)
	assert.Contains(t, result.Message.Text, "*T*")
	assert.Contains(t, result.Message.Text, "hello")
	assert.Nil(t, result.Message.Question)

	messages := sessions.Messages(1)
	require.Len(t, messages, 2)
	assert.Equal(t, domain.Message{Role: domain.RoleUser, Text: "hi there"}, messages[0])
	assert.Equal(t, domain.RoleAssistant, messages[1].Role)
	assert.Equal(t, structured, messages[1].Text)
}

func TestProcessUserMessage_BackendFailure(t *testing.T) {
	client := &fakeClient{results: []llm.Result{
		{Success: false, Error: "backend down"},
	}}
	conv, sessions := newTestConversation(t, client)
	sessions.Start(1, domain.ProviderYandex, domain.AgentConfig{Role: domain.AgentChat})

	result := conv.ProcessUserMessage(context.Background(), 1, "hi", config.LlmConfig{Provider: domain.ProviderYandex})

	assert.False(t, result.Success)
	assert.Equal(t, "backend down", result.Error)

	// The failed exchange leaves only the user's turn in history.
	messages := sessions.Messages(1)
	require.Len(t, messages, 1)
	assert.Equal(t, domain.RoleUser, messages[0].Role)
}

func TestProcessUserMessage_ClientFactoryError(t *testing.T) {
	sessions := NewSessionService()
	conv := NewConversationService(sessions)

	result := conv.ProcessUserMessage(context.Background(), 1, "hi", config.LlmConfig{Provider: domain.ProviderClaude})

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "not implemented")
	assert.Empty(t, sessions.Messages(1))
}

func TestProcessUserAnswer_QuestionReplyCarriesKeyboard(t *testing.T) {
	structured := `{"title":"Q","tags":[],"response":{"text":"pick one","options":["A","B"],"multiSelect":false}}`
	client := &fakeClient{results: []llm.Result{
		{Success: true, Content: "raw"},
		{Success: true, Content: structured},
	}}
	conv, sessions := newTestConversation(t, client)
	sessions.Start(1, domain.ProviderDeepSeek, domain.AgentConfig{Role: domain.AgentInterview, Goal: "goal"})

	result := conv.ProcessUserAnswer(context.Background(), 1, "my answer", config.LlmConfig{Provider: domain.ProviderDeepSeek})

	require.True(t, result.Success)
	require.NotNil(t, result.Message.Question)
	assert.Equal(t, []string{"A", "B"}, result.Message.Question.Options)
	assert.False(t, result.Message.Question.IsMultiSelect)
	require.NotNil(t, result.Message.Keyboard)
	assert.Len(t, result.Message.Keyboard.InlineKeyboard, 2)
}

func TestProcessUserMessage_JSONOutputMode(t *testing.T) {
	structured := `{"title":"T","tags":[],"response":{"text":"hello"}}`
	client := &fakeClient{results: []llm.Result{
		{Success: true, Content: "raw"},
		{Success: true, Content: structured},
	}}
	conv, sessions := newTestConversation(t, client)
	sessions.Start(1, domain.ProviderYandex, domain.AgentConfig{Role: domain.AgentChat})
	sessions.SetOutputMode(1, domain.OutputJSON)

	result := conv.ProcessUserMessage(context.Background(), 1, "hi", config.LlmConfig{Provider: domain.ProviderYandex})

	require.True(t, result.Success)
	assert.Contains(t, result.Message.Text, "<pre><code")
	assert.Contains(t, result.Message.Text, `"title":"T"`)
}
