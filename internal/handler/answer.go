package handler

import (
	"context"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	tg "github.com/Moonbreeze/aiAdvent/internal/telegram"
)

// handleAnswer processes a single-select answer button. The chosen option is
// submitted immediately as the user's next turn.
func (h *Handler) handleAnswer(ctx context.Context, b *bot.Bot, update *models.Update) {
	userID := update.CallbackQuery.From.ID
	msg := update.CallbackQuery.Message.Message
	if msg == nil {
		return
	}

	index, err := strconv.Atoi(strings.TrimPrefix(update.CallbackQuery.Data, tg.CallbackAnswerPrefix))
	state, ok := h.questions.Get(userID)
	if err != nil || !ok || index < 0 || index >= len(state.Options) {
		b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
			CallbackQueryID: update.CallbackQuery.ID,
			Text:            "Некорректный ответ. Пожалуйста, начните новый чат.",
			ShowAlert:       true,
		})
		return
	}

	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{CallbackQueryID: update.CallbackQuery.ID})

	h.submitAnswer(ctx, b, userID, msg, state.QuestionText, state.Options[index])
}

// handleToggle flips one checkbox of a multi-select question and redraws the
// keyboard in place.
func (h *Handler) handleToggle(ctx context.Context, b *bot.Bot, update *models.Update) {
	userID := update.CallbackQuery.From.ID
	msg := update.CallbackQuery.Message.Message
	if msg == nil {
		return
	}

	state, ok := h.questions.Get(userID)
	if !ok || !state.IsMultiSelect {
		b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
			CallbackQueryID: update.CallbackQuery.ID,
			Text:            "Сессия не найдена или вопрос не в режиме множественного выбора.",
			ShowAlert:       true,
		})
		return
	}

	index, err := strconv.Atoi(strings.TrimPrefix(update.CallbackQuery.Data, tg.CallbackTogglePrefix))
	if err != nil || index < 0 || index >= len(state.Options) {
		b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
			CallbackQueryID: update.CallbackQuery.ID,
			Text:            "Некорректный индекс опции.",
			ShowAlert:       true,
		})
		return
	}

	h.questions.ToggleOption(userID, index)
	selected := h.questions.SelectedOptions(userID)

	b.EditMessageReplyMarkup(ctx, &bot.EditMessageReplyMarkupParams{
		ChatID:      msg.Chat.ID,
		MessageID:   msg.ID,
		ReplyMarkup: tg.MultiSelectKeyboard(state.Options, selected),
	})
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{CallbackQueryID: update.CallbackQuery.ID})
}

// handleSubmit finishes a multi-select question: the selected options are
// joined into a single answer and submitted as the user's next turn.
func (h *Handler) handleSubmit(ctx context.Context, b *bot.Bot, update *models.Update) {
	userID := update.CallbackQuery.From.ID
	msg := update.CallbackQuery.Message.Message
	if msg == nil {
		return
	}

	state, ok := h.questions.Get(userID)
	if !ok || !state.IsMultiSelect {
		b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
			CallbackQueryID: update.CallbackQuery.ID,
			Text:            "Сессия не найдена или вопрос не в режиме множественного выбора.",
			ShowAlert:       true,
		})
		return
	}

	selected := h.questions.SelectedOptions(userID)
	if len(selected) == 0 {
		b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
			CallbackQueryID: update.CallbackQuery.ID,
			Text:            "Пожалуйста, выберите хотя бы один вариант.",
			ShowAlert:       true,
		})
		return
	}

	options := make([]string, 0, len(selected))
	for _, i := range selected {
		options = append(options, state.Options[i])
	}
	answer := strings.Join(options, ", ")

	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{CallbackQueryID: update.CallbackQuery.ID})

	h.submitAnswer(ctx, b, userID, msg, state.QuestionText, answer)
}

// submitAnswer rewrites the question message to show the chosen answer,
// clears the pending question, and continues the conversation with the
// answer as the next user turn.
func (h *Handler) submitAnswer(ctx context.Context, b *bot.Bot, userID int64, msg *models.Message, questionText, answer string) {
	chatID := msg.Chat.ID

	updated := questionText + "\n\n👤 *Ваш ответ:* " + answer
	b.EditMessageText(ctx, &bot.EditMessageTextParams{
		ChatID:    chatID,
		MessageID: msg.ID,
		Text:      updated,
		ParseMode: models.ParseModeMarkdownV1,
	})

	h.questions.Clear(userID)

	h.runConversationTurn(ctx, b, userID, chatID, answer, h.conv.ProcessUserAnswer)
}
