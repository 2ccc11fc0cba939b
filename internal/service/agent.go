package service

import (
	"github.com/Moonbreeze/aiAdvent/internal/config"
	"github.com/Moonbreeze/aiAdvent/internal/domain"
	"github.com/Moonbreeze/aiAdvent/internal/llm"
)

// AgentDefinition is the resolved runtime form of an agent: the system prompt
// to prepend plus generation parameters. It is recomputed from the session's
// AgentConfig on every call and never persisted.
type AgentDefinition struct {
	SystemPrompt string
	Options      llm.CompletionOptions
	Tier         llm.Tier
}

// BuildAgent maps a session-level agent config to its runtime definition.
// This is the single dispatch point over agent roles.
func BuildAgent(cfg domain.AgentConfig) AgentDefinition {
	switch cfg.Role {
	case domain.AgentInterview:
		return AgentDefinition{
			SystemPrompt: interviewSystemPrompt,
			Options:      llm.DefaultOptions,
			Tier:         llm.TierMain,
		}
	default:
		return AgentDefinition{
			SystemPrompt: chatSystemPrompt,
			Options:      llm.DefaultOptions,
			Tier:         llm.TierMain,
		}
	}
}

// parserAgent is the internal agent that coerces free text into the
// structured response schema. Low temperature, lite tier, no history.
func parserAgent() AgentDefinition {
	return AgentDefinition{
		SystemPrompt: parserSystemPrompt,
		Options: llm.CompletionOptions{
			Temperature: config.ParserTemperature,
			MaxTokens:   config.DefaultMaxTokens,
		},
		Tier: llm.TierLite,
	}
}
