package main

import (
	"fmt"

	"github.com/jonathan/mockmate/internal/speech"
	"github.com/spf13/cobra"
)

var transcribeCmd = &cobra.Command{
	Use:   "transcribe",
	Short: "Transcribe a recorded answer",
	Long:  "Sends an audio recording to the configured speech provider and prints the transcript, or the fixed failure message when recognition fails.",
	RunE:  runTranscribe,
}

var (
	transcribeInput    string
	transcribeProvider string
	transcribeLanguage string
)

func init() {
	transcribeCmd.Flags().StringVarP(&transcribeInput, "audio", "a", "", "Path to the audio file (required)")
	transcribeCmd.Flags().StringVar(&transcribeProvider, "speech-provider", "", "Speech provider override (gemini, whisper)")
	transcribeCmd.Flags().StringVar(&transcribeLanguage, "language", "", "Spoken language hint, e.g. en or hi")

	if err := transcribeCmd.MarkFlagRequired("audio"); err != nil {
		panic(fmt.Sprintf("failed to mark audio flag as required: %v", err))
	}

	rootCmd.AddCommand(transcribeCmd)
}

func runTranscribe(cmd *cobra.Command, _ []string) error {
	if transcribeProvider != "" {
		appConfig.SpeechProvider = transcribeProvider
	}
	if transcribeLanguage != "" {
		appConfig.SpeechLanguage = transcribeLanguage
	}
	if err := appConfig.Validate(); err != nil {
		return err
	}
	if !appConfig.SpeechEnabled() {
		return fmt.Errorf("speech recognition is disabled (speech_provider is %q)", appConfig.SpeechProvider)
	}

	sample, err := readAudio(transcribeInput)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	transcriber, err := newTranscriber(ctx, appConfig)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), speech.Recognize(ctx, transcriber, sample))
	return nil
}
