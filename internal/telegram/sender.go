package telegram

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/Moonbreeze/aiAdvent/internal/config"
)

// SendFormatted sends a formatted reply, splitting it when it exceeds the
// Telegram message limit. The keyboard is attached to the last part. Falls
// back to plain text if parse-mode rendering fails.
func SendFormatted(ctx context.Context, b *bot.Bot, chatID int64, fm FormattedMessage) error {
	parts := SplitMessage(FixMarkdown(fm.Text), config.MaxTelegramMessageLen)

	for i, part := range parts {
		params := &bot.SendMessageParams{
			ChatID:    chatID,
			Text:      part,
			ParseMode: fm.ParseMode,
		}
		if i == len(parts)-1 && fm.Keyboard != nil {
			params.ReplyMarkup = fm.Keyboard
		}

		if _, err := b.SendMessage(ctx, params); err != nil {
			slog.Warn("formatted send failed, falling back to plain text", "error", err)
			params.ParseMode = ""
			if _, err := b.SendMessage(ctx, params); err != nil {
				return fmt.Errorf("send message: %w", err)
			}
		}
	}

	return nil
}

// EditFormatted replaces a previously sent message (the "thinking"
// placeholder) with the formatted reply, truncating to the Telegram limit.
// Falls back to plain text if parse-mode rendering fails.
func EditFormatted(ctx context.Context, b *bot.Bot, chatID int64, messageID int, fm FormattedMessage) error {
	text := FixMarkdown(fm.Text)
	if runes := []rune(text); len(runes) > config.MaxTelegramMessageLen {
		text = string(runes[:config.MaxTelegramMessageLen-3]) + "..."
	}

	params := &bot.EditMessageTextParams{
		ChatID:    chatID,
		MessageID: messageID,
		Text:      text,
		ParseMode: fm.ParseMode,
	}
	if fm.Keyboard != nil {
		params.ReplyMarkup = fm.Keyboard
	}

	if _, err := b.EditMessageText(ctx, params); err != nil {
		slog.Warn("formatted edit failed, falling back to plain text", "error", err)
		params.ParseMode = ""
		if _, err := b.EditMessageText(ctx, params); err != nil {
			return fmt.Errorf("edit message: %w", err)
		}
	}

	return nil
}

// SendText sends a plain text message.
func SendText(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
	if err != nil {
		slog.Error("send message", "error", err, "chat_id", chatID)
	}
}

// SendMarkdown sends a Markdown-formatted message, falling back to plain text.
func SendMarkdown(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      text,
		ParseMode: models.ParseModeMarkdownV1,
	})
	if err != nil {
		slog.Warn("markdown send failed, falling back to plain text", "error", err)
		SendText(ctx, b, chatID, text)
	}
}
