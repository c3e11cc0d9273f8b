package llm

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	anthropicoption "github.com/anthropics/anthropic-sdk-go/option"
	openaioption "github.com/openai/openai-go/option"
)

func TestOpenAIClient_GenerateContent(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/chat/completions"))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotBody)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","created":1,"model":"gpt-4o-mini",
			"choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"` + "```json\\n[1]\\n```" + `"}}]}`))
	}))
	defer server.Close()

	config := DefaultOpenAIConfig()
	config.BaseURL = server.URL
	client, err := NewOpenAIClient(config, "test-key", openaioption.WithMaxRetries(0))
	require.NoError(t, err)

	text, err := client.GenerateContent(t.Context(), "hello", TierStandard)
	require.NoError(t, err)
	assert.Equal(t, "```json\n[1]\n```", text)
	assert.Equal(t, "gpt-4o-mini", gotBody["model"])
}

func TestOpenAIClient_ErrorIsAPICallError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"bad request","type":"invalid_request_error"}}`))
	}))
	defer server.Close()

	config := DefaultOllamaConfig()
	config.BaseURL = server.URL
	client, err := NewOpenAIClient(config, "", openaioption.WithMaxRetries(0))
	require.NoError(t, err)

	_, err = client.GenerateContent(t.Context(), "hello", TierLite)
	require.Error(t, err)

	var apiErr *APICallError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, ProviderOllama, apiErr.Provider)
	assert.Equal(t, "mistral", apiErr.Model)
}

func TestAnthropicClient_GenerateContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/v1/messages"))
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"m1","type":"message","role":"assistant","model":"claude-sonnet-4-0",
			"content":[{"type":"text","text":"Score: 7/10"},{"type":"text","text":"\nFeedback: good"}],
			"stop_reason":"end_turn","usage":{"input_tokens":3,"output_tokens":5}}`))
	}))
	defer server.Close()

	config := DefaultAnthropicConfig()
	config.BaseURL = server.URL
	client, err := NewAnthropicClient(config, "test-key", anthropicoption.WithMaxRetries(0))
	require.NoError(t, err)

	text, err := client.GenerateContent(t.Context(), "evaluate", TierStandard)
	require.NoError(t, err)
	assert.Equal(t, "Score: 7/10\nFeedback: good", text)
}

func TestAPICallError(t *testing.T) {
	cause := errors.New("timeout")
	err := &APICallError{Provider: ProviderGemini, Model: "gemini-2.5-flash", Cause: cause}

	assert.Equal(t, "gemini request to gemini-2.5-flash failed: timeout", err.Error())
	assert.ErrorIs(t, err, cause)
}
