package interview

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/jonathan/mockmate/internal/llm"
	"github.com/jonathan/mockmate/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateBatch(t *testing.T) {
	var inFlight, peak atomic.Int32
	client := &MockLLMClient{
		GenerateContentFunc: func(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
			n := inFlight.Add(1)
			defer inFlight.Add(-1)
			for {
				old := peak.Load()
				if n <= old || peak.CompareAndSwap(old, n) {
					break
				}
			}
			if strings.Contains(prompt, "fail me") {
				return "", errors.New("upstream timeout")
			}
			return "Score: 7/10\nFeedback: Fine.", nil
		},
	}

	reqs := []types.EvaluateRequest{
		{Question: "Q1", Answer: "A1"},
		{Question: "Q2", Answer: "fail me"},
		{Question: "Q3", Answer: "A3"},
		{Question: "Q4", Answer: "A4"},
	}

	var done atomic.Int32
	records, err := EvaluateBatch(t.Context(), client, reqs, 2, func() { done.Add(1) })
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, int32(4), done.Load())
	assert.LessOrEqual(t, peak.Load(), int32(2))
	for i, record := range records {
		assert.Equal(t, reqs[i].Question, record.Question)
		assert.Equal(t, reqs[i].Answer, record.Answer)
	}
	assert.Equal(t, "Score: 7/10\nFeedback: Fine.", records[0].Feedback)
	assert.True(t, strings.HasPrefix(records[1].Feedback, FeedbackErrorPrefix))
	assert.Contains(t, records[1].Feedback, "upstream timeout")
}

func TestEvaluateBatch_InvalidEntry(t *testing.T) {
	client := &MockLLMClient{}

	_, err := EvaluateBatch(t.Context(), client, []types.EvaluateRequest{{Question: "Q1", Answer: "A"}, {Question: "Q2"}}, 1, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid entry 2")
	assert.Empty(t, client.Prompts())
}

func TestEvaluateBatch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := EvaluateBatch(ctx, &MockLLMClient{}, []types.EvaluateRequest{{Question: "Q", Answer: "A"}}, 1, nil)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestEvaluateBatch_Empty(t *testing.T) {
	records, err := EvaluateBatch(t.Context(), &MockLLMClient{}, nil, 0, nil)

	require.NoError(t, err)
	assert.Empty(t, records)
}
