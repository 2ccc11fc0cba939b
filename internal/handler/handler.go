package handler

import (
	"github.com/go-telegram/bot"

	"github.com/Moonbreeze/aiAdvent/internal/config"
	"github.com/Moonbreeze/aiAdvent/internal/service"
)

// Handler holds all dependencies needed by command and callback handlers.
type Handler struct {
	bot       *bot.Bot
	cfg       *config.Config
	sessions  *service.SessionService
	questions *service.QuestionService
	conv      *service.ConversationService
}

// Deps contains all dependencies required to construct a Handler.
type Deps struct {
	Bot       *bot.Bot
	Cfg       *config.Config
	Sessions  *service.SessionService
	Questions *service.QuestionService
	Conv      *service.ConversationService
}

// New creates a new Handler from the provided dependencies.
func New(deps Deps) *Handler {
	return &Handler{
		bot:       deps.Bot,
		cfg:       deps.Cfg,
		sessions:  deps.Sessions,
		questions: deps.Questions,
		conv:      deps.Conv,
	}
}
