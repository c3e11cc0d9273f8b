// Package speech turns recorded interview answers into text.
package speech

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/jonathan/mockmate/internal/logger"
)

// Fixed texts recorded as the answer when recognition fails
const (
	UnintelligibleMessage = "❌ Could not understand the audio."
	ServiceErrorMessage   = "⚠️ Error connecting to the speech recognition service."
)

// ErrUnintelligible means the service was reached but heard no usable speech
var ErrUnintelligible = errors.New("speech could not be understood")

// Sample is one recorded answer
type Sample struct {
	Data     []byte
	MIMEType string
	Filename string
}

// NewSample wraps recorded audio, detecting its MIME type from the content
// when mimeType is empty.
func NewSample(data []byte, filename, mimeType string) Sample {
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = mimetype.Detect(data).String()
	}
	if filename == "" {
		filename = "answer" + mimetype.Detect(data).Extension()
	}
	return Sample{Data: data, MIMEType: mimeType, Filename: filename}
}

// Transcriber converts a recorded answer into text
type Transcriber interface {
	Transcribe(ctx context.Context, sample Sample) (string, error)
}

// TranscriptionError wraps a failed call to a speech service
type TranscriptionError struct {
	Provider string
	Cause    error
}

func (e *TranscriptionError) Error() string {
	return fmt.Sprintf("%s transcription failed: %v", e.Provider, e.Cause)
}

func (e *TranscriptionError) Unwrap() error {
	return e.Cause
}

// Recognize transcribes a sample and never fails: an unintelligible recording
// yields UnintelligibleMessage and any other failure yields ServiceErrorMessage.
func Recognize(ctx context.Context, t Transcriber, sample Sample) string {
	if len(sample.Data) == 0 {
		return UnintelligibleMessage
	}

	text, err := t.Transcribe(ctx, sample)
	if err == nil && strings.TrimSpace(text) == "" {
		err = ErrUnintelligible
	}

	switch {
	case err == nil:
		return strings.TrimSpace(text)
	case errors.Is(err, ErrUnintelligible):
		logger.Ctx(ctx).Info().Str("filename", sample.Filename).Msg("audio not understood")
		return UnintelligibleMessage
	default:
		logger.Ctx(ctx).Warn().Err(err).Str("filename", sample.Filename).Msg("speech recognition failed")
		return ServiceErrorMessage
	}
}
