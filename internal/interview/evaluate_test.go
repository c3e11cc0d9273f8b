package interview

import (
	"context"
	"errors"
	"testing"

	"github.com/jonathan/mockmate/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScore(t *testing.T) {
	tests := []struct {
		name string
		text string
		want *int
	}{
		{name: "plain", text: "Score: 7/10\nFeedback: ok", want: intPtr(7)},
		{name: "no space", text: "Score:9/10", want: intPtr(9)},
		{name: "ten", text: "Score: 10/10", want: intPtr(10)},
		{name: "first wins", text: "Score: 4/10 then Score: 8/10", want: intPtr(4)},
		{name: "missing", text: "Feedback: no score here", want: nil},
		{name: "other scale", text: "Score: 4/5", want: nil},
		{name: "sentinel feedback", text: FeedbackErrorPrefix + "timeout", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseScore(tt.text))
		})
	}
}

func TestParseEvaluation(t *testing.T) {
	eval := ParseEvaluation("  Score: 6/10\nFeedback: Mention trade-offs.\nAlso give numbers.  ")

	require.NotNil(t, eval.Score)
	assert.Equal(t, 6, *eval.Score)
	assert.Equal(t, "Mention trade-offs.\nAlso give numbers.", eval.Feedback)
	assert.Equal(t, "Score: 6/10\nFeedback: Mention trade-offs.\nAlso give numbers.", eval.Raw)
}

func TestParseEvaluation_Unstructured(t *testing.T) {
	eval := ParseEvaluation("Good answer overall.")

	assert.Nil(t, eval.Score)
	assert.Empty(t, eval.Feedback)
	assert.Equal(t, "Good answer overall.", eval.Raw)
}

func TestEvaluateAnswer(t *testing.T) {
	client := &MockLLMClient{
		GenerateContentFunc: func(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
			assert.Contains(t, prompt, "Question: What is a goroutine?")
			assert.Contains(t, prompt, "Answer: A lightweight thread.")
			assert.Contains(t, prompt, "Score: <number>/10")
			return "Score: 8/10\nFeedback: Solid.", nil
		},
	}

	eval, err := EvaluateAnswer(t.Context(), client, "  What is a goroutine? ", "A lightweight thread.")
	require.NoError(t, err)
	require.NotNil(t, eval.Score)
	assert.Equal(t, 8, *eval.Score)
	assert.Equal(t, "Solid.", eval.Feedback)
}

func TestEvaluateAnswer_ClientError(t *testing.T) {
	client := &MockLLMClient{
		GenerateContentFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return "", errors.New("rate limited")
		},
	}

	eval, err := EvaluateAnswer(t.Context(), client, "Q", "A")
	assert.Nil(t, eval)
	require.Error(t, err)
	assert.Equal(t, FeedbackErrorPrefix+"failed to evaluate answer: rate limited", FailedFeedback(err))
}

func intPtr(v int) *int {
	return &v
}
