package handler

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/Moonbreeze/aiAdvent/internal/domain"
	tg "github.com/Moonbreeze/aiAdvent/internal/telegram"
)

func (h *Handler) handleSwitch(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	userID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	if !h.sessions.Has(userID) {
		tg.SendText(ctx, b, chatID, "У вас нет активного чата. Начните чат с /chat.")
		return
	}

	if _, ok := h.sessions.FirstUserMessage(userID); !ok {
		tg.SendText(ctx, b, chatID, "В текущем чате нет сообщений для переключения.")
		return
	}

	current, _ := h.sessions.Provider(userID)

	var others []domain.Provider
	for _, p := range h.cfg.AvailableProviders() {
		if p != current {
			others = append(others, p)
		}
	}
	if len(others) == 0 {
		tg.SendText(ctx, b, chatID, "Нет других доступных провайдеров для переключения.")
		return
	}

	text := "Текущий провайдер: *" + current.DisplayName() + "*\n\n" +
		"Выберите провайдер для переключения.\n" +
		"Ваше первое сообщение будет отправлено новому провайдеру:"

	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ParseMode:   models.ParseModeMarkdownV1,
		ReplyMarkup: tg.ProviderKeyboard(others, tg.CallbackSwitchPrefix),
	})
	if err != nil {
		tg.SendText(ctx, b, chatID, "Не удалось показать выбор провайдера.")
	}
}

// handleSwitchPick replaces the session with a fresh one on the chosen
// provider, carrying over the first user message and the agent config so the
// new backend is primed with the same opening goal.
func (h *Handler) handleSwitchPick(ctx context.Context, b *bot.Bot, update *models.Update) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{CallbackQueryID: update.CallbackQuery.ID})

	userID := update.CallbackQuery.From.ID
	msg := update.CallbackQuery.Message.Message
	if msg == nil {
		return
	}
	chatID := msg.Chat.ID

	name := strings.TrimPrefix(update.CallbackQuery.Data, tg.CallbackSwitchPrefix)
	if !domain.IsProvider(name) {
		tg.SendText(ctx, b, chatID, "Неизвестный провайдер.")
		return
	}
	provider := domain.Provider(name)

	firstMessage, ok := h.sessions.FirstUserMessage(userID)
	if !ok {
		tg.SendText(ctx, b, chatID, "Сессия не найдена. Начните новый чат с /chat.")
		return
	}
	agent := h.sessions.AgentConfig(userID)

	// The old conversation is discarded; only the opening message survives.
	h.questions.Clear(userID)
	h.sessions.Start(userID, provider, agent)

	tg.SendText(ctx, b, chatID, "Переключено на "+provider.DisplayName()+".")
	h.runConversationTurn(ctx, b, userID, chatID, firstMessage, h.conv.ProcessUserMessage)
}
