package handler

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/Moonbreeze/aiAdvent/internal/domain"
	tg "github.com/Moonbreeze/aiAdvent/internal/telegram"
)

func (h *Handler) handleChat(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	userID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	if h.sessions.Has(userID) {
		tg.SendText(ctx, b, chatID,
			"У вас уже есть активный чат. Отправляйте сообщения или используйте /close для завершения.")
		return
	}

	provider := domain.Provider(h.cfg.DefaultProvider)
	if _, err := h.cfg.LlmConfig(provider); err != nil {
		available := h.cfg.AvailableProviders()
		if len(available) == 0 {
			tg.SendText(ctx, b, chatID, "Нет доступных провайдеров. Проверьте конфигурацию.")
			return
		}
		provider = available[0]
	}

	h.sessions.Start(userID, provider, domain.AgentConfig{Role: domain.AgentChat})
	tg.SendText(ctx, b, chatID,
		"Чат начат! Отправляйте мне сообщения, и я отвечу.\n\nИспользуйте /close для завершения.")
}

func (h *Handler) handleClose(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	userID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	h.questions.Clear(userID)

	if h.sessions.End(userID) {
		tg.SendText(ctx, b, chatID, "Чат завершён. Используйте /chat, чтобы начать новый.")
	} else {
		tg.SendText(ctx, b, chatID, "У вас нет активного чата.")
	}
}
