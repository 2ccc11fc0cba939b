package handler

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/Moonbreeze/aiAdvent/internal/domain"
	tg "github.com/Moonbreeze/aiAdvent/internal/telegram"
)

func (h *Handler) handleMode(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	userID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	args := strings.Fields(update.Message.Text)[1:]
	if len(args) == 0 {
		current := h.sessions.OutputMode(userID)
		tg.SendMarkdown(ctx, b, chatID,
			"Текущий режим вывода: *"+string(current)+"*\n\n"+
				"Использование: /mode <text|json>\n"+
				"• text — форматированный текст с заголовком и тегами\n"+
				"• json — чистый JSON-ответ от агента")
		return
	}

	requested := strings.ToLower(args[0])
	if !domain.IsOutputMode(requested) {
		tg.SendText(ctx, b, chatID, "Неизвестный режим: "+requested+"\n\nДоступные режимы: text, json")
		return
	}

	h.sessions.SetOutputMode(userID, domain.OutputMode(requested))
	tg.SendMarkdown(ctx, b, chatID, "Режим вывода изменён на: *"+requested+"*")
}
