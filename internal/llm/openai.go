package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// ollamaAPIKey is sent to Ollama, which ignores it but the SDK requires one
const ollamaAPIKey = "ollama"

// OpenAIClient implements Client for OpenAI and OpenAI-compatible servers such as Ollama
type OpenAIClient struct {
	client *openai.Client
	config *Config
}

// NewOpenAIClient creates a client for the OpenAI chat completions API
func NewOpenAIClient(config *Config, apiKey string, extra ...option.RequestOption) (*OpenAIClient, error) {
	if apiKey == "" {
		if config.Provider != ProviderOllama {
			return nil, fmt.Errorf("API key is required")
		}
		apiKey = ollamaAPIKey
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}
	opts = append(opts, extra...)

	client := openai.NewClient(opts...)
	return &OpenAIClient{client: &client, config: config}, nil
}

// GenerateContent generates text content using the specified model tier
func (c *OpenAIClient) GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	modelName := c.config.GetModel(tier)
	if modelName == "" {
		return "", fmt.Errorf("no model configured for tier %s", tier)
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       shared.ChatModel(modelName),
		Messages:    []openai.ChatCompletionMessageParamUnion{openai.UserMessage(prompt)},
		Temperature: openai.Float(defaultTemperature),
		MaxTokens:   openai.Int(c.config.maxTokens()),
	})
	if err != nil {
		return "", &APICallError{Provider: c.config.Provider, Model: modelName, Cause: err}
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}
	return resp.Choices[0].Message.Content, nil
}

// Transcribe sends audio to the transcription endpoint with the given model
func (c *OpenAIClient) Transcribe(ctx context.Context, params openai.AudioTranscriptionNewParams) (string, error) {
	resp, err := c.client.Audio.Transcriptions.New(ctx, params)
	if err != nil {
		return "", &APICallError{Provider: c.config.Provider, Model: string(params.Model), Cause: err}
	}
	return resp.Text, nil
}

// GetModel returns the model name for a tier
func (c *OpenAIClient) GetModel(tier ModelTier) string {
	return c.config.GetModel(tier)
}

// Close is a no-op; the SDK holds no resources
func (c *OpenAIClient) Close() error {
	return nil
}
