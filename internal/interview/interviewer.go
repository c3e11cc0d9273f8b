package interview

import (
	"context"
	"errors"

	"github.com/jonathan/mockmate/internal/llm"
	"github.com/jonathan/mockmate/internal/logger"
	"github.com/jonathan/mockmate/internal/speech"
	"github.com/jonathan/mockmate/internal/types"
)

// ErrNoTranscriber is returned for audio answers when no transcriber is configured
var ErrNoTranscriber = errors.New("audio answers are not enabled")

// Interviewer drives sessions against a language model and an optional transcriber
type Interviewer struct {
	client          llm.Client
	transcriber     speech.Transcriber
	technicalCount  int
	behavioralCount int
	tier            llm.ModelTier
}

// Option configures an Interviewer
type Option func(*Interviewer)

// WithTranscriber enables audio answers
func WithTranscriber(t speech.Transcriber) Option {
	return func(i *Interviewer) { i.transcriber = t }
}

// WithQuestionCounts overrides the default question mix
func WithQuestionCounts(technical, behavioral int) Option {
	return func(i *Interviewer) {
		i.technicalCount = technical
		i.behavioralCount = behavioral
	}
}

// WithTier selects the model tier used for question generation
func WithTier(tier llm.ModelTier) Option {
	return func(i *Interviewer) { i.tier = tier }
}

// NewInterviewer creates an Interviewer
func NewInterviewer(client llm.Client, opts ...Option) *Interviewer {
	i := &Interviewer{
		client:          client,
		technicalCount:  DefaultTechnicalQuestions,
		behavioralCount: DefaultBehavioralQuestions,
		tier:            llm.TierStandard,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// CanTranscribe reports whether audio answers are supported
func (i *Interviewer) CanTranscribe() bool {
	return i.transcriber != nil
}

// Prepare generates questions for the session profile and resets its answers
func (i *Interviewer) Prepare(ctx context.Context, session *Session) ([]string, error) {
	questions, err := GenerateQuestions(ctx, i.client, QuestionRequest{
		Profile:         session.Profile(),
		TechnicalCount:  i.technicalCount,
		BehavioralCount: i.behavioralCount,
		Tier:            i.tier,
	})
	if err != nil {
		return nil, err
	}

	session.SetQuestions(questions)
	logger.Ctx(ctx).Info().Str("session", session.ID).Int("questions", len(questions)).Msg("questions generated")
	return questions, nil
}

// AnswerText evaluates a typed answer and records it. A failed evaluation is
// recorded with the error as feedback rather than returned.
func (i *Interviewer) AnswerText(ctx context.Context, session *Session, index int, answer string) (types.AnswerRecord, error) {
	question, err := session.CheckAnswerable(index)
	if err != nil {
		return types.AnswerRecord{}, err
	}

	var feedback string
	eval, err := EvaluateAnswer(ctx, i.client, question, answer)
	if err != nil {
		logger.Ctx(ctx).Warn().Err(err).Str("session", session.ID).Int("question", index).Msg("evaluation failed")
		feedback = FailedFeedback(err)
	} else {
		feedback = eval.Raw
	}

	return session.RecordAnswer(index, question, answer, feedback)
}

// AnswerAudio transcribes a recorded answer and evaluates the transcript. A
// recognition failure becomes the recorded answer text.
func (i *Interviewer) AnswerAudio(ctx context.Context, session *Session, index int, sample speech.Sample) (types.AnswerRecord, error) {
	if i.transcriber == nil {
		return types.AnswerRecord{}, ErrNoTranscriber
	}
	if _, err := session.CheckAnswerable(index); err != nil {
		return types.AnswerRecord{}, err
	}

	answer := speech.Recognize(ctx, i.transcriber, sample)
	return i.AnswerText(ctx, session, index, answer)
}
