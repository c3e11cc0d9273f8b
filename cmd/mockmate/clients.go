package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/mockmate/internal/config"
	"github.com/jonathan/mockmate/internal/ingestion"
	"github.com/jonathan/mockmate/internal/interview"
	"github.com/jonathan/mockmate/internal/llm"
	"github.com/jonathan/mockmate/internal/observability"
	"github.com/jonathan/mockmate/internal/parsing"
	"github.com/jonathan/mockmate/internal/speech"
	"github.com/jonathan/mockmate/internal/types"
	"github.com/spf13/cobra"
)

// providerFlags are the model overrides shared by every command that calls a language model
type providerFlags struct {
	provider string
	model    string
	apiKey   string
}

func (f *providerFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.provider, "provider", "", "LLM provider override (gemini, openai, anthropic, ollama)")
	cmd.Flags().StringVar(&f.model, "model", "", "Model override for every tier")
	cmd.Flags().StringVar(&f.apiKey, "api-key", "", "API key (overrides config and provider env var)")
}

// apply copies set flags onto cfg and revalidates it
func (f *providerFlags) apply(cfg *config.Config) error {
	if f.provider != "" {
		cfg.Provider = f.provider
	}
	if f.model != "" {
		cfg.Model = f.model
	}
	if f.apiKey != "" {
		cfg.APIKey = f.apiKey
	}
	return cfg.Validate()
}

// newLLMClient builds the configured language model client
func newLLMClient(ctx context.Context, cfg *config.Config) (llm.Client, error) {
	llmConfig, err := cfg.LLMConfig()
	if err != nil {
		return nil, err
	}

	apiKey := cfg.ResolveAPIKey()
	if apiKey == "" && llmConfig.Provider != llm.ProviderOllama {
		return nil, fmt.Errorf("API key is required for %s (set api_key in config, the provider env var, or use --api-key)", llmConfig.Provider)
	}

	client, err := llm.NewClient(ctx, llmConfig, apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return client, nil
}

// newTranscriber builds the configured speech transcriber, or nil when speech is disabled
func newTranscriber(ctx context.Context, cfg *config.Config) (speech.Transcriber, error) {
	if !cfg.SpeechEnabled() {
		return nil, nil
	}
	transcriber, err := speech.New(ctx, cfg.SpeechConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create transcriber: %w", err)
	}
	return transcriber, nil
}

// newInterviewer wires the language model and optional transcriber from cfg
func newInterviewer(ctx context.Context, cfg *config.Config, client llm.Client) (*interview.Interviewer, error) {
	opts := []interview.Option{
		interview.WithQuestionCounts(cfg.TechnicalQuestions, cfg.BehavioralQuestions),
	}

	transcriber, err := newTranscriber(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if transcriber != nil {
		opts = append(opts, interview.WithTranscriber(transcriber))
	}

	return interview.NewInterviewer(client, opts...), nil
}

// loadProfile reads a résumé document and extracts its profile
func loadProfile(path string) (*ingestion.Document, *types.ResumeProfile, error) {
	doc, err := ingestion.ReadDocument(path)
	if err != nil {
		return nil, nil, err
	}

	profile := parsing.ParseResume(doc.Text, doc.Links)
	if verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintDocument(doc)
		printer.PrintProfile(profile)
	}
	return doc, profile, nil
}

// readAudio loads a recorded answer from disk
func readAudio(path string) (speech.Sample, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return speech.Sample{}, fmt.Errorf("failed to read audio file: %w", err)
	}
	return speech.NewSample(data, filepath.Base(path), ""), nil
}
