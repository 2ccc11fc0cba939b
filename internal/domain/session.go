package domain

import (
	"time"
)

// Provider identifies an LLM backend.
type Provider string

const (
	ProviderYandex   Provider = "yandex"
	ProviderDeepSeek Provider = "deepseek"
	ProviderOpenAI   Provider = "openai"
	ProviderClaude   Provider = "claude"
)

// IsProvider reports whether s names a known provider.
func IsProvider(s string) bool {
	switch Provider(s) {
	case ProviderYandex, ProviderDeepSeek, ProviderOpenAI, ProviderClaude:
		return true
	}
	return false
}

// DisplayName returns the user-facing provider name.
func (p Provider) DisplayName() string {
	switch p {
	case ProviderYandex:
		return "YandexGPT"
	case ProviderDeepSeek:
		return "DeepSeek"
	case ProviderOpenAI:
		return "OpenAI"
	case ProviderClaude:
		return "Claude"
	}
	return string(p)
}

// OutputMode controls how assistant replies are rendered.
type OutputMode string

const (
	OutputText OutputMode = "text"
	OutputJSON OutputMode = "json"
)

// IsOutputMode reports whether s names a known output mode.
func IsOutputMode(s string) bool {
	return OutputMode(s) == OutputText || OutputMode(s) == OutputJSON
}

// AgentRole selects the conversational persona of a session.
type AgentRole string

const (
	AgentChat      AgentRole = "chat"
	AgentInterview AgentRole = "interview"
	// AgentParser is internal only and never user-selectable.
	AgentParser AgentRole = "parser"
)

// AgentConfig is the session-level agent selection. Role is the
// discriminator; Goal is set only for the interview role.
type AgentConfig struct {
	Role AgentRole
	Goal string
}

// ChatSession is the live conversation state for one user. At most one
// session exists per user; its presence means the user is "in conversation".
type ChatSession struct {
	ID        string
	Messages  []Message
	StartedAt time.Time
	Provider  Provider
	Agent     AgentConfig
}
