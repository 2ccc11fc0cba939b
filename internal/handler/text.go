package handler

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/Moonbreeze/aiAdvent/internal/config"
	"github.com/Moonbreeze/aiAdvent/internal/service"
	tg "github.com/Moonbreeze/aiAdvent/internal/telegram"
)

// HandleText processes free-form text messages. Outside a session the user
// is pointed at /chat; inside one the message becomes the next conversation
// turn.
func (h *Handler) HandleText(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	text := update.Message.Text
	if text == "" || strings.HasPrefix(text, "/") {
		return
	}

	userID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	if !h.sessions.Has(userID) {
		tg.SendText(ctx, b, chatID, "Чтобы общаться со мной, сначала начните чат командой /chat.")
		return
	}

	h.runConversationTurn(ctx, b, userID, chatID, text, h.conv.ProcessUserMessage)
}

// runConversationTurn posts the "thinking" placeholder, runs one user turn
// through the conversation service, and replaces the placeholder with the
// result. Shared by text messages and question answers.
func (h *Handler) runConversationTurn(
	ctx context.Context,
	b *bot.Bot,
	userID, chatID int64,
	text string,
	process func(context.Context, int64, string, config.LlmConfig) service.ConversationResult,
) {
	provider, ok := h.sessions.Provider(userID)
	if !ok {
		tg.SendText(ctx, b, chatID, "Сессия не найдена. Начните новый чат с /chat.")
		return
	}

	llmCfg, err := h.cfg.LlmConfig(provider)
	if err != nil {
		tg.SendText(ctx, b, chatID, "Провайдер не настроен. Используйте /switch для выбора другого.")
		return
	}

	thinking, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   "Думаю...",
	})
	if err != nil {
		return
	}

	result := process(ctx, userID, text, llmCfg)

	if !result.Success {
		errText := result.Error
		if errText == "" {
			errText = "Произошла ошибка при обращении к LLM."
		}
		b.EditMessageText(ctx, &bot.EditMessageTextParams{
			ChatID:    chatID,
			MessageID: thinking.ID,
			Text:      errText,
		})
		return
	}

	if result.Message.Question != nil {
		h.questions.Set(userID, *result.Message.Question)
	}

	// Long replies do not fit into a single edited message, so the
	// placeholder is dropped and the reply goes out in parts.
	if len([]rune(result.Message.Text)) > config.MaxTelegramMessageLen {
		b.DeleteMessage(ctx, &bot.DeleteMessageParams{
			ChatID:    chatID,
			MessageID: thinking.ID,
		})
		tg.SendFormatted(ctx, b, chatID, result.Message)
		return
	}

	tg.EditFormatted(ctx, b, chatID, thinking.ID, result.Message)
}
