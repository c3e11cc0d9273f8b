package speech

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/jonathan/mockmate/internal/llm"
	"github.com/jonathan/mockmate/internal/prompts"
	"github.com/openai/openai-go"
)

// Speech providers
const (
	ProviderGemini  = "gemini"
	ProviderWhisper = "whisper"
)

// unintelligibleMarker is what the Gemini prompt asks for when no speech is heard
const unintelligibleMarker = "[unintelligible]"

// Config selects and configures a speech provider
type Config struct {
	Provider string
	APIKey   string
	BaseURL  string
	Model    string
	Language string
}

// New builds the transcriber named by config.Provider
func New(ctx context.Context, config Config) (Transcriber, error) {
	switch strings.ToLower(config.Provider) {
	case "", ProviderGemini:
		llmConfig := llm.DefaultGeminiConfig()
		if config.Model != "" {
			llmConfig = llmConfig.WithModel(llm.TierLite, config.Model)
		}
		client, err := llm.NewGeminiClient(ctx, llmConfig, config.APIKey)
		if err != nil {
			return nil, err
		}
		return &GeminiTranscriber{client: client}, nil
	case ProviderWhisper:
		llmConfig := llm.DefaultOpenAIConfig()
		llmConfig.BaseURL = config.BaseURL
		client, err := llm.NewOpenAIClient(llmConfig, config.APIKey)
		if err != nil {
			return nil, err
		}
		return NewWhisperTranscriber(client, config.Model, config.Language), nil
	default:
		return nil, fmt.Errorf("unknown speech provider %q", config.Provider)
	}
}

// GeminiTranscriber sends the recording inline to a Gemini model
type GeminiTranscriber struct {
	client *llm.GeminiClient
}

// NewGeminiTranscriber wraps an existing Gemini client
func NewGeminiTranscriber(client *llm.GeminiClient) *GeminiTranscriber {
	return &GeminiTranscriber{client: client}
}

// Transcribe implements Transcriber
func (g *GeminiTranscriber) Transcribe(ctx context.Context, sample Sample) (string, error) {
	instruction, err := prompts.Render(prompts.TranscribeAudio, map[string]string{"Unintelligible": unintelligibleMarker})
	if err != nil {
		return "", err
	}

	text, err := g.client.GenerateFromParts(ctx, llm.TierLite,
		genai.Blob{MIMEType: sample.MIMEType, Data: sample.Data},
		genai.Text(instruction),
	)
	if err != nil {
		return "", &TranscriptionError{Provider: ProviderGemini, Cause: err}
	}

	text = strings.TrimSpace(text)
	if text == "" || strings.EqualFold(text, unintelligibleMarker) {
		return "", ErrUnintelligible
	}
	return text, nil
}

// WhisperTranscriber uses the OpenAI audio transcription endpoint
type WhisperTranscriber struct {
	client   *llm.OpenAIClient
	model    string
	language string
}

// NewWhisperTranscriber wraps an OpenAI client. Empty model and language default to whisper-1 and en.
func NewWhisperTranscriber(client *llm.OpenAIClient, model, language string) *WhisperTranscriber {
	if model == "" {
		model = string(openai.AudioModelWhisper1)
	}
	if language == "" {
		language = "en"
	}
	return &WhisperTranscriber{client: client, model: model, language: language}
}

// Transcribe implements Transcriber
func (w *WhisperTranscriber) Transcribe(ctx context.Context, sample Sample) (string, error) {
	text, err := w.client.Transcribe(ctx, openai.AudioTranscriptionNewParams{
		File:     openai.File(bytes.NewReader(sample.Data), sample.Filename, sample.MIMEType),
		Model:    openai.AudioModel(w.model),
		Language: openai.String(w.language),
	})
	if err != nil {
		return "", &TranscriptionError{Provider: ProviderWhisper, Cause: err}
	}

	if strings.TrimSpace(text) == "" {
		return "", ErrUnintelligible
	}
	return text, nil
}
