package config

import "time"

const (
	// LLM request timeout
	RequestTimeout = 90 * time.Second

	// Async operation polling
	PollMaxAttempts = 30
	PollInterval    = 1 * time.Second

	// Generation defaults
	DefaultTemperature = 0.6
	ParserTemperature  = 0.1
	DefaultMaxTokens   = 2000

	// Telegram limits
	MaxTelegramMessageLen = 4096
)
