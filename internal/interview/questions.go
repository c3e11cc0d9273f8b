// Package interview runs a mock interview: question generation from a résumé
// profile, answer evaluation and session bookkeeping.
package interview

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/mockmate/internal/llm"
	"github.com/jonathan/mockmate/internal/prompts"
	"github.com/jonathan/mockmate/internal/types"
)

// Default question mix
const (
	DefaultTechnicalQuestions  = 5
	DefaultBehavioralQuestions = 3
)

// ErrNoQuestions is returned when the model response holds no usable question lines
var ErrNoQuestions = errors.New("no interview questions in response")

// QuestionRequest describes the questions to generate for one candidate
type QuestionRequest struct {
	Profile         *types.ResumeProfile
	TechnicalCount  int
	BehavioralCount int
	Tier            llm.ModelTier
}

func (r QuestionRequest) withDefaults() QuestionRequest {
	if r.TechnicalCount <= 0 {
		r.TechnicalCount = DefaultTechnicalQuestions
	}
	if r.BehavioralCount <= 0 {
		r.BehavioralCount = DefaultBehavioralQuestions
	}
	if r.Tier == "" {
		r.Tier = llm.TierStandard
	}
	return r
}

// BuildQuestionPrompt renders the question prompt for a profile
func BuildQuestionPrompt(req QuestionRequest) (string, error) {
	if req.Profile == nil {
		return "", fmt.Errorf("profile is required")
	}
	req = req.withDefaults()

	return prompts.Render(prompts.GenerateQuestions, map[string]string{
		"Name":            req.Profile.Name,
		"Skills":          strings.Join(req.Profile.Skills, ", "),
		"Projects":        req.Profile.ProjectsText(),
		"Experience":      req.Profile.ExperienceText(),
		"TechnicalCount":  strconv.Itoa(req.TechnicalCount),
		"BehavioralCount": strconv.Itoa(req.BehavioralCount),
	})
}

// GenerateQuestions asks the model for interview questions tailored to the profile
func GenerateQuestions(ctx context.Context, client llm.Client, req QuestionRequest) ([]string, error) {
	prompt, err := BuildQuestionPrompt(req)
	if err != nil {
		return nil, err
	}

	response, err := client.GenerateContent(ctx, prompt, req.withDefaults().Tier)
	if err != nil {
		return nil, fmt.Errorf("failed to generate questions: %w", err)
	}

	questions := ParseQuestions(response)
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	return questions, nil
}

// ParseQuestions splits a model response into trimmed, non-empty lines and drops
// group headers such as "Technical Questions:".
func ParseQuestions(response string) []string {
	var questions []string
	for _, line := range strings.Split(strings.TrimSpace(response), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasSuffix(strings.ToLower(line), "questions:") {
			continue
		}
		questions = append(questions, line)
	}
	return questions
}
