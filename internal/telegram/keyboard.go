package telegram

import (
	"fmt"
	"slices"

	"github.com/go-telegram/bot/models"

	"github.com/Moonbreeze/aiAdvent/internal/domain"
)

// Callback data prefixes for question answers and provider selection.
const (
	CallbackAnswerPrefix   = "ans:"
	CallbackTogglePrefix   = "toggle:"
	CallbackSubmit         = "submit"
	CallbackProviderPrefix = "prov:"
	CallbackSwitchPrefix   = "switch:"
)

// InlineButton creates a single inline keyboard button.
func InlineButton(text, callbackData string) models.InlineKeyboardButton {
	return models.InlineKeyboardButton{
		Text:         text,
		CallbackData: callbackData,
	}
}

// InlineKeyboard creates an inline keyboard from rows of buttons.
func InlineKeyboard(rows ...[]models.InlineKeyboardButton) *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: rows,
	}
}

// ButtonRow creates a row of inline buttons.
func ButtonRow(buttons ...models.InlineKeyboardButton) []models.InlineKeyboardButton {
	return buttons
}

// SingleSelectKeyboard builds answer buttons for a single-select question,
// one option per row. Pressing a button submits that option immediately.
func SingleSelectKeyboard(options []string) *models.InlineKeyboardMarkup {
	rows := make([][]models.InlineKeyboardButton, 0, len(options))
	for i, option := range options {
		rows = append(rows, ButtonRow(InlineButton(option, fmt.Sprintf("%s%d", CallbackAnswerPrefix, i))))
	}
	return InlineKeyboard(rows...)
}

// MultiSelectKeyboard builds checkbox buttons for a multi-select question
// plus a submit row. The submit label shows the current selection count.
func MultiSelectKeyboard(options []string, selectedIndices []int) *models.InlineKeyboardMarkup {
	rows := make([][]models.InlineKeyboardButton, 0, len(options)+1)
	for i, option := range options {
		checkbox := "☐"
		if slices.Contains(selectedIndices, i) {
			checkbox = "☑️"
		}
		rows = append(rows, ButtonRow(InlineButton(
			fmt.Sprintf("%s %s", checkbox, option),
			fmt.Sprintf("%s%d", CallbackTogglePrefix, i),
		)))
	}

	submitText := "⚪️ Выберите варианты"
	if count := len(selectedIndices); count > 0 {
		submitText = fmt.Sprintf("✅ Готово (%d)", count)
	}
	rows = append(rows, ButtonRow(InlineButton(submitText, CallbackSubmit)))

	return InlineKeyboard(rows...)
}

// ProviderKeyboard builds provider-selection buttons with the given callback
// prefix, one provider per row.
func ProviderKeyboard(providers []domain.Provider, prefix string) *models.InlineKeyboardMarkup {
	rows := make([][]models.InlineKeyboardButton, 0, len(providers))
	for _, p := range providers {
		rows = append(rows, ButtonRow(InlineButton(p.DisplayName(), prefix+string(p))))
	}
	return InlineKeyboard(rows...)
}
