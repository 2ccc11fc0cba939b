package handler

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	tg "github.com/Moonbreeze/aiAdvent/internal/telegram"
)

func (h *Handler) handleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	text := "👋 Привет! Я — бот-ассистент с поддержкой нескольких LLM.\n\n" +
		"📋 *Команды:*\n" +
		"/chat — Начать чат с ИИ\n" +
		"/interview <цель> — Режим интервью\n" +
		"/switch — Сменить провайдера\n" +
		"/mode — Режим вывода (text/json)\n" +
		"/close — Завершить сессию\n" +
		"/help — Справка"

	tg.SendMarkdown(ctx, b, update.Message.Chat.ID, text)
}

func (h *Handler) handleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	text := "Доступные команды:\n\n" +
		"/start — Запустить бота\n" +
		"/help — Показать это сообщение\n" +
		"/chat — Начать чат с ИИ\n" +
		"/interview <цель> — Интервью: агент задаёт уточняющие вопросы и собирает информацию по цели\n" +
		"/switch — Переключить LLM-провайдера, сохранив первое сообщение\n" +
		"/mode <text|json> — Переключить режим вывода\n" +
		"/close — Завершить текущую сессию"

	tg.SendText(ctx, b, update.Message.Chat.ID, text)
}
