package interview

import (
	"context"
	"sync"

	"github.com/jonathan/mockmate/internal/llm"
	"github.com/jonathan/mockmate/internal/speech"
	"github.com/jonathan/mockmate/internal/types"
)

// MockLLMClient implements llm.Client for testing
type MockLLMClient struct {
	GenerateContentFunc func(ctx context.Context, prompt string, tier llm.ModelTier) (string, error)
	GetModelFunc        func(tier llm.ModelTier) string
	CloseFunc           func() error

	mu      sync.Mutex
	prompts []string
}

func (m *MockLLMClient) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()
	if m.GenerateContentFunc != nil {
		return m.GenerateContentFunc(ctx, prompt, tier)
	}
	return "", nil
}

func (m *MockLLMClient) GetModel(tier llm.ModelTier) string {
	if m.GetModelFunc != nil {
		return m.GetModelFunc(tier)
	}
	return "mock-model"
}

func (m *MockLLMClient) Close() error {
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

func (m *MockLLMClient) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.prompts...)
}

// MockTranscriber implements speech.Transcriber for testing
type MockTranscriber struct {
	TranscribeFunc func(ctx context.Context, sample speech.Sample) (string, error)
}

func (m *MockTranscriber) Transcribe(ctx context.Context, sample speech.Sample) (string, error) {
	if m.TranscribeFunc != nil {
		return m.TranscribeFunc(ctx, sample)
	}
	return "", nil
}

func testProfile() *types.ResumeProfile {
	return &types.ResumeProfile{
		Readable: true,
		Name:     "Aarav Mehta",
		Skills:   types.SkillSet{"python", "sql", "machine learning"},
		Sections: types.SectionMap{
			types.SectionExperience: {"Data Intern at Acme", "Built ETL jobs in Python"},
		},
		Projects: []string{"Churn Predictor | Python, scikit-learn | GitHub\n- Trained gradient boosting models"},
	}
}

const questionResponse = `Technical Questions:
1. How did you tune the churn model?
2. Explain SQL window functions.

Behavioral Questions:
3. Tell me about a conflict in a team.
`
