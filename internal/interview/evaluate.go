package interview

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/mockmate/internal/llm"
	"github.com/jonathan/mockmate/internal/prompts"
	"github.com/jonathan/mockmate/internal/types"
)

// FeedbackErrorPrefix starts the feedback recorded when evaluation fails
const FeedbackErrorPrefix = "⚠️ Could not generate feedback: "

var (
	scorePattern    = regexp.MustCompile(`Score:\s*(\d+)/10`)
	feedbackPattern = regexp.MustCompile(`(?s)Feedback:\s*(.*)`)
)

// BuildEvaluationPrompt renders the evaluation prompt for one answer
func BuildEvaluationPrompt(question, answer string) (string, error) {
	return prompts.Render(prompts.EvaluateAnswer, map[string]string{
		"Question": strings.TrimSpace(question),
		"Answer":   answer,
	})
}

// EvaluateAnswer asks the model to score an answer out of 10 and comment on it
func EvaluateAnswer(ctx context.Context, client llm.Client, question, answer string) (*types.Evaluation, error) {
	prompt, err := BuildEvaluationPrompt(question, answer)
	if err != nil {
		return nil, err
	}

	raw, err := client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate answer: %w", err)
	}

	return ParseEvaluation(raw), nil
}

// ParseEvaluation reads the score and feedback message out of a raw evaluation
func ParseEvaluation(raw string) *types.Evaluation {
	raw = strings.TrimSpace(raw)
	eval := &types.Evaluation{Raw: raw, Score: ParseScore(raw)}
	if groups := feedbackPattern.FindStringSubmatch(raw); groups != nil {
		eval.Feedback = strings.TrimSpace(groups[1])
	}
	return eval
}

// ParseScore returns the first "Score: n/10" value in text, or nil
func ParseScore(text string) *int {
	groups := scorePattern.FindStringSubmatch(text)
	if groups == nil {
		return nil
	}
	score, err := strconv.Atoi(groups[1])
	if err != nil {
		return nil
	}
	return &score
}

// FailedFeedback is the feedback text recorded when evaluation fails
func FailedFeedback(err error) string {
	return FeedbackErrorPrefix + err.Error()
}
