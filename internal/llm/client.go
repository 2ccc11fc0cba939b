// Package llm contains the provider transport layer: per-backend adapters
// that turn a provider-agnostic message list into a wire request, plus the
// parser that normalizes raw model output into a structured response.
package llm

import (
	"context"
	"fmt"

	"github.com/Moonbreeze/aiAdvent/internal/config"
	"github.com/Moonbreeze/aiAdvent/internal/domain"
)

// Tier is a cost/capability class of model selected per agent.
type Tier string

const (
	TierMain Tier = "main"
	TierLite Tier = "lite"
)

// CompletionOptions tunes a single generation request.
type CompletionOptions struct {
	Temperature float64
	MaxTokens   int
}

// DefaultOptions are used when an agent does not override generation tuning.
var DefaultOptions = CompletionOptions{
	Temperature: config.DefaultTemperature,
	MaxTokens:   config.DefaultMaxTokens,
}

// Result is the outcome of a completion call. Transport and backend failures
// are carried as data, not Go errors: the caller decides what to surface.
type Result struct {
	Success bool
	Content string
	Error   string
}

func failure(format string, args ...any) Result {
	return Result{Success: false, Error: fmt.Sprintf(format, args...)}
}

func success(content string) Result {
	return Result{Success: true, Content: content}
}

// Client is a pure transport to one LLM backend. The system prompt must
// already be included in the message list. Implementations never retry;
// retry policy, if any, belongs to the caller.
type Client interface {
	Complete(ctx context.Context, messages []domain.Message, tier Tier, opts *CompletionOptions) Result
}

// New creates a provider client from resolved configuration. Providers that
// are declared but not yet implemented fail closed here instead of degrading
// silently at call time.
func New(cfg config.LlmConfig) (Client, error) {
	switch cfg.Provider {
	case domain.ProviderYandex:
		return NewYandexClient(cfg.APIKey, cfg.FolderID), nil
	case domain.ProviderDeepSeek:
		return NewDeepSeekClient(cfg.APIKey), nil
	case domain.ProviderOpenAI, domain.ProviderClaude:
		return nil, fmt.Errorf("%s: %w", cfg.Provider, domain.ErrProviderNotImplemented)
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}
