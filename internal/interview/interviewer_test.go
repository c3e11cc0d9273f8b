package interview

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jonathan/mockmate/internal/llm"
	"github.com/jonathan/mockmate/internal/speech"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedClient answers question prompts with questionResponse and evaluation
// prompts with the given evaluation text or error.
func scriptedClient(evaluation string, evalErr error) *MockLLMClient {
	return &MockLLMClient{
		GenerateContentFunc: func(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
			if strings.Contains(prompt, "Evaluate the following answer") {
				return evaluation, evalErr
			}
			return questionResponse, nil
		},
	}
}

func TestInterviewer_Flow(t *testing.T) {
	client := scriptedClient("Score: 9/10\nFeedback: Great.", nil)
	interviewer := NewInterviewer(client, WithQuestionCounts(2, 1))
	session := NewStore().Create(testProfile(), "")

	questions, err := interviewer.Prepare(t.Context(), session)
	require.NoError(t, err)
	require.Len(t, questions, 3)
	assert.Contains(t, client.Prompts()[0], "generate 2 technical and 1 behavioral")

	record, err := interviewer.AnswerText(t.Context(), session, 2, "ROW_NUMBER over partitions")
	require.NoError(t, err)
	assert.Equal(t, "2. Explain SQL window functions.", record.Question)
	assert.Equal(t, "Score: 9/10\nFeedback: Great.", record.Feedback)

	_, err = interviewer.AnswerText(t.Context(), session, 2, "again")
	assert.ErrorIs(t, err, ErrAlreadyAnswered)
	assert.Len(t, client.Prompts(), 2)

	summary := session.Summary()
	assert.Equal(t, 1, summary.Answered)
	assert.InDelta(t, 9.0, summary.AverageScore, 1e-9)
}

func TestInterviewer_EvaluationFailureRecorded(t *testing.T) {
	interviewer := NewInterviewer(scriptedClient("", errors.New("503 unavailable")))
	session := NewSession("s1", testProfile(), "")
	_, err := interviewer.Prepare(t.Context(), session)
	require.NoError(t, err)

	record, err := interviewer.AnswerText(t.Context(), session, 1, "answer")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(record.Feedback, FeedbackErrorPrefix))
	assert.Contains(t, record.Feedback, "503 unavailable")
	assert.True(t, session.IsAnswered(1))
}

func TestInterviewer_AnswerBeforePrepare(t *testing.T) {
	client := scriptedClient("Score: 5/10", nil)
	interviewer := NewInterviewer(client)
	session := NewSession("s1", testProfile(), "")

	_, err := interviewer.AnswerText(t.Context(), session, 1, "answer")
	assert.ErrorIs(t, err, ErrNoQuestionsYet)
	assert.Empty(t, client.Prompts())
}

func TestInterviewer_AnswerAudio(t *testing.T) {
	client := scriptedClient("Score: 6/10\nFeedback: Fine.", nil)
	transcriber := &MockTranscriber{
		TranscribeFunc: func(_ context.Context, sample speech.Sample) (string, error) {
			assert.Equal(t, "audio/wav", sample.MIMEType)
			return "I tuned the learning rate.", nil
		},
	}
	interviewer := NewInterviewer(client, WithTranscriber(transcriber))
	session := NewSession("s1", testProfile(), "")
	_, err := interviewer.Prepare(t.Context(), session)
	require.NoError(t, err)

	record, err := interviewer.AnswerAudio(t.Context(), session, 1, speech.Sample{Data: []byte{1, 2}, MIMEType: "audio/wav"})
	require.NoError(t, err)
	assert.Equal(t, "I tuned the learning rate.", record.Answer)
	assert.Contains(t, client.Prompts()[1], "Answer: I tuned the learning rate.")
}

func TestInterviewer_AnswerAudio_Unintelligible(t *testing.T) {
	client := scriptedClient("Score: 1/10\nFeedback: No answer.", nil)
	transcriber := &MockTranscriber{
		TranscribeFunc: func(_ context.Context, _ speech.Sample) (string, error) {
			return "", speech.ErrUnintelligible
		},
	}
	interviewer := NewInterviewer(client, WithTranscriber(transcriber))
	session := NewSession("s1", testProfile(), "")
	_, err := interviewer.Prepare(t.Context(), session)
	require.NoError(t, err)

	record, err := interviewer.AnswerAudio(t.Context(), session, 1, speech.Sample{Data: []byte{1}})
	require.NoError(t, err)
	assert.Equal(t, speech.UnintelligibleMessage, record.Answer)
	assert.Contains(t, client.Prompts()[1], speech.UnintelligibleMessage)
}

func TestInterviewer_AnswerAudio_NoTranscriber(t *testing.T) {
	interviewer := NewInterviewer(scriptedClient("", nil))
	assert.False(t, interviewer.CanTranscribe())

	_, err := interviewer.AnswerAudio(t.Context(), NewSession("s1", testProfile(), ""), 1, speech.Sample{Data: []byte{1}})
	assert.ErrorIs(t, err, ErrNoTranscriber)
}

func TestInterviewer_PrepareResetsAnswers(t *testing.T) {
	interviewer := NewInterviewer(scriptedClient("Score: 4/10", nil))
	session := NewSession("s1", testProfile(), "")
	_, err := interviewer.Prepare(t.Context(), session)
	require.NoError(t, err)
	_, err = interviewer.AnswerText(t.Context(), session, 1, "a")
	require.NoError(t, err)

	_, err = interviewer.Prepare(t.Context(), session)
	require.NoError(t, err)
	assert.Empty(t, session.Records())
}
