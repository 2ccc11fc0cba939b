package handler

import (
	"github.com/go-telegram/bot"

	tg "github.com/Moonbreeze/aiAdvent/internal/telegram"
)

// Register registers all command and callback handlers.
func (h *Handler) Register() {
	// Commands
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypePrefix, h.handleStart)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypePrefix, h.handleHelp)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/chat", bot.MatchTypePrefix, h.handleChat)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/close", bot.MatchTypePrefix, h.handleClose)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/interview", bot.MatchTypePrefix, h.handleInterview)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/switch", bot.MatchTypePrefix, h.handleSwitch)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/mode", bot.MatchTypePrefix, h.handleMode)

	// Question keyboards
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, tg.CallbackAnswerPrefix, bot.MatchTypePrefix, h.handleAnswer)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, tg.CallbackTogglePrefix, bot.MatchTypePrefix, h.handleToggle)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, tg.CallbackSubmit, bot.MatchTypeExact, h.handleSubmit)

	// Provider selection
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, tg.CallbackProviderPrefix, bot.MatchTypePrefix, h.handleProviderPick)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, tg.CallbackSwitchPrefix, bot.MatchTypePrefix, h.handleSwitchPick)
}
