package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, ProviderGemini, config.Provider)
	assert.Equal(t, "gemini-2.5-flash-lite", config.GetModel(TierLite))
	assert.Equal(t, "gemini-2.5-flash", config.GetModel(TierStandard))
	assert.Equal(t, "gemini-2.5-pro", config.GetModel(TierAdvanced))
}

func TestConfigFor(t *testing.T) {
	tests := []struct {
		provider Provider
		standard string
		baseURL  string
	}{
		{provider: ProviderGemini, standard: "gemini-2.5-flash"},
		{provider: ProviderOpenAI, standard: "gpt-4o-mini"},
		{provider: ProviderOllama, standard: "mistral", baseURL: DefaultOllamaBaseURL},
		{provider: ProviderAnthropic, standard: "claude-sonnet-4-0"},
	}

	for _, tt := range tests {
		t.Run(string(tt.provider), func(t *testing.T) {
			config := ConfigFor(tt.provider)
			assert.Equal(t, tt.provider, config.Provider)
			assert.Equal(t, tt.standard, config.GetModel(TierStandard))
			assert.Equal(t, tt.baseURL, config.BaseURL)
		})
	}
}

func TestParseProvider(t *testing.T) {
	p, err := ParseProvider(" Ollama ")
	require.NoError(t, err)
	assert.Equal(t, ProviderOllama, p)

	p, err = ParseProvider("")
	require.NoError(t, err)
	assert.Equal(t, ProviderGemini, p)

	_, err = ParseProvider("watson")
	assert.Error(t, err)
}

func TestGetModel_Fallback(t *testing.T) {
	config := &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite: "fallback-model",
		},
	}

	// Unknown tier should fallback to TierStandard, then TierLite
	assert.Equal(t, "fallback-model", config.GetModel("unknown"))
}

func TestGetModel_EmptyConfig(t *testing.T) {
	config := &Config{
		Provider: ProviderGemini,
		Models:   map[ModelTier]string{},
	}

	assert.Equal(t, "", config.GetModel(TierAdvanced))
}

func TestWithModel(t *testing.T) {
	config := DefaultConfig()
	newConfig := config.WithModel(TierAdvanced, "custom-model")

	// Original should be unchanged
	assert.Equal(t, "gemini-2.5-pro", config.GetModel(TierAdvanced))
	assert.Equal(t, "custom-model", newConfig.GetModel(TierAdvanced))
	assert.Equal(t, "gemini-2.5-flash-lite", newConfig.GetModel(TierLite))
	assert.Equal(t, config.MaxTokens, newConfig.MaxTokens)
}

func TestWithAllModels(t *testing.T) {
	config := DefaultOllamaConfig().WithAllModels("llama3")

	assert.Equal(t, "llama3", config.GetModel(TierLite))
	assert.Equal(t, "llama3", config.GetModel(TierStandard))
	assert.Equal(t, "llama3", config.GetModel(TierAdvanced))
	assert.Equal(t, DefaultOllamaBaseURL, config.BaseURL)
	assert.Equal(t, "mistral", DefaultOllamaConfig().GetModel(TierStandard))
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	for _, provider := range []Provider{ProviderGemini, ProviderOpenAI, ProviderAnthropic} {
		_, err := NewClient(t.Context(), ConfigFor(provider), "")
		assert.Error(t, err, "provider %s", provider)
	}
}

func TestNewClient_OllamaNeedsNoKey(t *testing.T) {
	client, err := NewClient(t.Context(), DefaultOllamaConfig(), "")
	require.NoError(t, err)
	assert.Equal(t, "mistral", client.GetModel(TierStandard))
	assert.NoError(t, client.Close())
}

func TestNewClient_UnknownProvider(t *testing.T) {
	_, err := NewClient(t.Context(), &Config{Provider: "watson"}, "key")
	assert.Error(t, err)
}
