package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/Moonbreeze/aiAdvent/internal/domain"
)

type Config struct {
	// Core
	BotToken string `env:"BOT_TOKEN,required"`

	// Providers
	YandexAPIKey   string `env:"YANDEX_API_KEY"`
	YandexFolderID string `env:"YANDEX_FOLDER_ID"`
	DeepSeekAPIKey string `env:"DEEPSEEK_API_KEY"`

	// Default provider for new chat sessions
	DefaultProvider string `env:"DEFAULT_PROVIDER" envDefault:"yandex"`

	// Bot behavior
	DropPendingUpdates bool `env:"BOT_DROP_PENDING_UPDATES" envDefault:"false"`
}

// LlmConfig is a resolved per-provider configuration handed to the LLM layer.
// Provider is the discriminator; which credential fields are set depends on it.
type LlmConfig struct {
	Provider domain.Provider
	APIKey   string
	FolderID string
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if !domain.IsProvider(cfg.DefaultProvider) {
		return nil, fmt.Errorf("unknown DEFAULT_PROVIDER: %q", cfg.DefaultProvider)
	}
	return cfg, nil
}

// LlmConfig resolves credentials for the given provider.
func (c *Config) LlmConfig(p domain.Provider) (LlmConfig, error) {
	switch p {
	case domain.ProviderYandex:
		if c.YandexAPIKey == "" || c.YandexFolderID == "" {
			return LlmConfig{}, fmt.Errorf("yandex: %w", domain.ErrProviderNotConfigured)
		}
		return LlmConfig{Provider: p, APIKey: c.YandexAPIKey, FolderID: c.YandexFolderID}, nil
	case domain.ProviderDeepSeek:
		if c.DeepSeekAPIKey == "" {
			return LlmConfig{}, fmt.Errorf("deepseek: %w", domain.ErrProviderNotConfigured)
		}
		return LlmConfig{Provider: p, APIKey: c.DeepSeekAPIKey}, nil
	default:
		return LlmConfig{}, fmt.Errorf("%s: %w", p, domain.ErrProviderNotImplemented)
	}
}

// AvailableProviders lists providers that have credentials configured.
func (c *Config) AvailableProviders() []domain.Provider {
	var providers []domain.Provider
	if c.YandexAPIKey != "" && c.YandexFolderID != "" {
		providers = append(providers, domain.ProviderYandex)
	}
	if c.DeepSeekAPIKey != "" {
		providers = append(providers, domain.ProviderDeepSeek)
	}
	return providers
}
