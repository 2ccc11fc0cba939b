package handler

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/Moonbreeze/aiAdvent/internal/domain"
	tg "github.com/Moonbreeze/aiAdvent/internal/telegram"
)

const interviewUsage = "📋 *Режим интервью*\n\n" +
	"Используйте: /interview <ваша цель>\n\n" +
	"Например:\n" +
	"• /interview Я собираюсь в поход. Как мне подготовиться?\n" +
	"• /interview Помоги составить план тренировок для марафона\n" +
	"• /interview Что нужно учесть при планировании свадьбы?\n\n" +
	"Агент задаст уточняющие вопросы и соберёт всю необходимую информацию для достижения вашей цели."

func (h *Handler) handleInterview(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	userID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	if h.sessions.Has(userID) {
		tg.SendText(ctx, b, chatID, "У вас уже есть активная сессия. Используйте /close для завершения.")
		return
	}

	parts := strings.SplitN(update.Message.Text, " ", 2)
	goal := ""
	if len(parts) > 1 {
		goal = strings.TrimSpace(parts[1])
	}
	if goal == "" {
		tg.SendMarkdown(ctx, b, chatID, interviewUsage)
		return
	}

	providers := h.cfg.AvailableProviders()
	if len(providers) == 0 {
		tg.SendText(ctx, b, chatID, "Нет доступных провайдеров. Проверьте конфигурацию.")
		return
	}

	if len(providers) == 1 {
		h.startInterview(ctx, b, userID, chatID, providers[0], goal)
		return
	}

	h.questions.SetPendingGoal(userID, goal)
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        "Выберите модель для интервью:",
		ReplyMarkup: tg.ProviderKeyboard(providers, tg.CallbackProviderPrefix),
	})
	if err != nil {
		tg.SendText(ctx, b, chatID, "Не удалось показать выбор провайдера.")
	}
}

// startInterview creates the interview session and sends the goal as the
// opening message.
func (h *Handler) startInterview(ctx context.Context, b *bot.Bot, userID, chatID int64, provider domain.Provider, goal string) {
	h.sessions.Start(userID, provider, domain.AgentConfig{Role: domain.AgentInterview, Goal: goal})

	tg.SendText(ctx, b, chatID, "Интервью с "+provider.DisplayName()+" начато.")
	h.runConversationTurn(ctx, b, userID, chatID, goal, h.conv.ProcessUserMessage)
}

// handleProviderPick finishes /interview when the user had to choose between
// several configured providers.
func (h *Handler) handleProviderPick(ctx context.Context, b *bot.Bot, update *models.Update) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{CallbackQueryID: update.CallbackQuery.ID})

	userID := update.CallbackQuery.From.ID
	msg := update.CallbackQuery.Message.Message
	if msg == nil {
		return
	}
	chatID := msg.Chat.ID

	name := strings.TrimPrefix(update.CallbackQuery.Data, tg.CallbackProviderPrefix)
	if !domain.IsProvider(name) {
		tg.SendText(ctx, b, chatID, "Неизвестный провайдер.")
		return
	}

	goal, ok := h.questions.TakePendingGoal(userID)
	if !ok {
		tg.SendText(ctx, b, chatID, "Цель интервью не найдена. Используйте /interview <цель>.")
		return
	}

	h.startInterview(ctx, b, userID, chatID, domain.Provider(name), goal)
}
