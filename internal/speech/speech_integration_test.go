//go:build integration
// +build integration

package speech

import (
	"context"
	"encoding/binary"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// silentWAV returns one second of 16 kHz mono silence
func silentWAV() []byte {
	const samples = 16000
	buf := wavHeader()
	binary.LittleEndian.PutUint32(buf[4:], uint32(36+samples*2))
	binary.LittleEndian.PutUint32(buf[40:], samples*2)
	return append(buf[:44], make([]byte, samples*2)...)
}

func integrationConfigs(t *testing.T) []Config {
	var configs []Config
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		configs = append(configs, Config{Provider: ProviderGemini, APIKey: key})
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		configs = append(configs, Config{Provider: ProviderWhisper, APIKey: key, Language: "en"})
	}
	if len(configs) == 0 {
		t.Skip("GEMINI_API_KEY and OPENAI_API_KEY not set, skipping integration test")
	}
	return configs
}

func TestTranscribers_Integration_Silence(t *testing.T) {
	ctx := context.Background()

	for _, config := range integrationConfigs(t) {
		t.Run(config.Provider, func(t *testing.T) {
			transcriber, err := New(ctx, config)
			require.NoError(t, err)

			_, err = transcriber.Transcribe(ctx, NewSample(silentWAV(), "silence.wav", ""))

			// Silence may come back as filler words or as ErrUnintelligible.
			var serviceErr *TranscriptionError
			assert.False(t, errors.As(err, &serviceErr), "unexpected service failure: %v", err)
		})
	}
}

func TestTranscribers_Integration_Recording(t *testing.T) {
	path := os.Getenv("MOCKMATE_SAMPLE_AUDIO")
	if path == "" {
		t.Skip("MOCKMATE_SAMPLE_AUDIO not set, skipping integration test")
	}
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	ctx := context.Background()
	for _, config := range integrationConfigs(t) {
		t.Run(config.Provider, func(t *testing.T) {
			transcriber, err := New(ctx, config)
			require.NoError(t, err)

			text := Recognize(ctx, transcriber, NewSample(data, path, ""))
			assert.NotEqual(t, ServiceErrorMessage, text)
			assert.NotEqual(t, UnintelligibleMessage, text)
			assert.NotEmpty(t, text)
		})
	}
}
