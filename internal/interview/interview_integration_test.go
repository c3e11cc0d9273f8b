//go:build integration
// +build integration

package interview

import (
	"context"
	"os"
	"testing"

	"github.com/jonathan/mockmate/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterview_Integration(t *testing.T) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		t.Skip("GEMINI_API_KEY not set, skipping integration test")
	}

	ctx := context.Background()
	client, err := llm.NewGeminiClient(ctx, llm.DefaultGeminiConfig(), apiKey)
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	questions, err := GenerateQuestions(ctx, client, QuestionRequest{
		Profile:         testProfile(),
		TechnicalCount:  2,
		BehavioralCount: 1,
	})
	require.NoError(t, err, "should generate questions")
	require.NotEmpty(t, questions)

	eval, err := EvaluateAnswer(ctx, client, questions[0], "I tuned tree depth and learning rate with cross-validated grid search.")
	require.NoError(t, err, "should evaluate the answer")
	require.NotNil(t, eval.Score, "feedback should carry a Score: n/10 line")
	assert.GreaterOrEqual(t, *eval.Score, 0)
	assert.LessOrEqual(t, *eval.Score, 10)
	assert.NotEmpty(t, eval.Feedback)
}
