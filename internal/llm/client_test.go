package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Moonbreeze/aiAdvent/internal/config"
	"github.com/Moonbreeze/aiAdvent/internal/domain"
)

func TestNew_KnownProviders(t *testing.T) {
	client, err := New(config.LlmConfig{Provider: domain.ProviderYandex, APIKey: "k", FolderID: "f"})
	require.NoError(t, err)
	assert.IsType(t, &YandexClient{}, client)

	client, err = New(config.LlmConfig{Provider: domain.ProviderDeepSeek, APIKey: "k"})
	require.NoError(t, err)
	assert.IsType(t, &DeepSeekClient{}, client)
}

func TestNew_DeclaredButNotImplemented(t *testing.T) {
	for _, p := range []domain.Provider{domain.ProviderOpenAI, domain.ProviderClaude} {
		_, err := New(config.LlmConfig{Provider: p, APIKey: "k"})
		assert.ErrorIs(t, err, domain.ErrProviderNotImplemented)
	}
}

func TestNew_UnknownProvider(t *testing.T) {
	_, err := New(config.LlmConfig{Provider: "mystery"})
	assert.Error(t, err)
}
