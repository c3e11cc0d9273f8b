// Package llm provides centralized LLM configuration and client abstractions.
// A Client hides the provider SDK behind tiered text and JSON generation.
package llm

import (
	"fmt"
	"strings"
)

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierLite is for simple tasks: transcription, short classification
	TierLite ModelTier = "lite"
	// TierStandard is for question generation and answer evaluation
	TierStandard ModelTier = "standard"
	// TierAdvanced is for long, reasoning-heavy prompts
	TierAdvanced ModelTier = "advanced"
)

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderOpenAI is the OpenAI provider
	ProviderOpenAI Provider = "openai"
	// ProviderOllama is a local Ollama server reached through its OpenAI-compatible API
	ProviderOllama Provider = "ollama"
	// ProviderAnthropic is the Anthropic/Claude provider
	ProviderAnthropic Provider = "anthropic"
)

// DefaultOllamaBaseURL is where a local Ollama serves its OpenAI-compatible API
const DefaultOllamaBaseURL = "http://localhost:11434/v1/"

const defaultMaxTokens = 1024

// Config holds the model configuration for the application
type Config struct {
	Provider  Provider
	Models    map[ModelTier]string
	BaseURL   string // Optional custom endpoint
	MaxTokens int
}

// ParseProvider validates a provider name.
func ParseProvider(name string) (Provider, error) {
	switch p := Provider(strings.ToLower(strings.TrimSpace(name))); p {
	case ProviderGemini, ProviderOpenAI, ProviderOllama, ProviderAnthropic:
		return p, nil
	case "":
		return ProviderGemini, nil
	default:
		return "", fmt.Errorf("unknown LLM provider %q", name)
	}
}

// DefaultConfig returns the default configuration (Gemini)
func DefaultConfig() *Config {
	return DefaultGeminiConfig()
}

// ConfigFor returns the default configuration of a provider
func ConfigFor(provider Provider) *Config {
	switch provider {
	case ProviderOpenAI:
		return DefaultOpenAIConfig()
	case ProviderOllama:
		return DefaultOllamaConfig()
	case ProviderAnthropic:
		return DefaultAnthropicConfig()
	default:
		return DefaultGeminiConfig()
	}
}

// DefaultGeminiConfig returns the default Gemini configuration
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
		MaxTokens: defaultMaxTokens,
	}
}

// DefaultOpenAIConfig returns the default OpenAI configuration
func DefaultOpenAIConfig() *Config {
	return &Config{
		Provider: ProviderOpenAI,
		Models: map[ModelTier]string{
			TierLite:     "gpt-4o-mini",
			TierStandard: "gpt-4o-mini",
			TierAdvanced: "gpt-4o",
		},
		MaxTokens: defaultMaxTokens,
	}
}

// DefaultOllamaConfig returns the default Ollama configuration. Every tier runs mistral.
func DefaultOllamaConfig() *Config {
	return &Config{
		Provider: ProviderOllama,
		Models: map[ModelTier]string{
			TierLite:     "mistral",
			TierStandard: "mistral",
			TierAdvanced: "mistral",
		},
		BaseURL:   DefaultOllamaBaseURL,
		MaxTokens: defaultMaxTokens,
	}
}

// DefaultAnthropicConfig returns the default Anthropic configuration
func DefaultAnthropicConfig() *Config {
	return &Config{
		Provider: ProviderAnthropic,
		Models: map[ModelTier]string{
			TierLite:     "claude-3-5-haiku-latest",
			TierStandard: "claude-sonnet-4-0",
			TierAdvanced: "claude-sonnet-4-0",
		},
		MaxTokens: defaultMaxTokens,
	}
}

// GetModel returns the model name for a given tier
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	// Fallback chain: try standard, then lite
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return "" // No model configured
}

// WithModel returns a new Config with a specific model for a tier
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	newConfig := &Config{
		Provider:  c.Provider,
		Models:    make(map[ModelTier]string),
		BaseURL:   c.BaseURL,
		MaxTokens: c.MaxTokens,
	}
	for k, v := range c.Models {
		newConfig.Models[k] = v
	}
	newConfig.Models[tier] = model
	return newConfig
}

// WithAllModels returns a new Config that uses one model for every tier
func (c *Config) WithAllModels(model string) *Config {
	out := c
	for _, tier := range []ModelTier{TierLite, TierStandard, TierAdvanced} {
		out = out.WithModel(tier, model)
	}
	return out
}

func (c *Config) maxTokens() int64 {
	if c.MaxTokens <= 0 {
		return defaultMaxTokens
	}
	return int64(c.MaxTokens)
}
