package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Moonbreeze/aiAdvent/internal/domain"
)

func TestLoad(t *testing.T) {
	t.Setenv("BOT_TOKEN", "token")
	t.Setenv("YANDEX_API_KEY", "yk")
	t.Setenv("YANDEX_FOLDER_ID", "folder")
	t.Setenv("DEEPSEEK_API_KEY", "dk")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "token", cfg.BotToken)
	assert.Equal(t, "yandex", cfg.DefaultProvider)
	assert.Equal(t, []domain.Provider{domain.ProviderYandex, domain.ProviderDeepSeek}, cfg.AvailableProviders())
}

func TestLoad_RejectsUnknownDefaultProvider(t *testing.T) {
	t.Setenv("BOT_TOKEN", "token")
	t.Setenv("DEFAULT_PROVIDER", "skynet")

	_, err := Load()
	assert.Error(t, err)
}

func TestLlmConfig_ResolvesCredentials(t *testing.T) {
	cfg := &Config{
		YandexAPIKey:   "yk",
		YandexFolderID: "folder",
		DeepSeekAPIKey: "dk",
	}

	yandex, err := cfg.LlmConfig(domain.ProviderYandex)
	require.NoError(t, err)
	assert.Equal(t, LlmConfig{Provider: domain.ProviderYandex, APIKey: "yk", FolderID: "folder"}, yandex)

	deepseek, err := cfg.LlmConfig(domain.ProviderDeepSeek)
	require.NoError(t, err)
	assert.Equal(t, "dk", deepseek.APIKey)
}

func TestLlmConfig_MissingCredentials(t *testing.T) {
	cfg := &Config{DeepSeekAPIKey: "dk"}

	_, err := cfg.LlmConfig(domain.ProviderYandex)
	assert.ErrorIs(t, err, domain.ErrProviderNotConfigured)
}

func TestLlmConfig_NotImplementedProviders(t *testing.T) {
	cfg := &Config{}

	for _, p := range []domain.Provider{domain.ProviderOpenAI, domain.ProviderClaude} {
		_, err := cfg.LlmConfig(p)
		assert.ErrorIs(t, err, domain.ErrProviderNotImplemented)
	}
}
