package interview

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jonathan/mockmate/internal/types"
)

// Session errors
var (
	ErrNoQuestionsYet     = errors.New("questions have not been generated")
	ErrQuestionOutOfRange = errors.New("question index out of range")
	ErrAlreadyAnswered    = errors.New("question already answered")
	ErrStaleQuestion      = errors.New("question no longer matches the session")
)

// QuestionError ties a session error to the 1-based question index it concerns
type QuestionError struct {
	Index int
	Cause error
}

func (e *QuestionError) Error() string {
	return fmt.Sprintf("question %d: %v", e.Index, e.Cause)
}

func (e *QuestionError) Unwrap() error {
	return e.Cause
}

// Session is the in-memory state of one mock interview. Questions are
// addressed by 1-based index. It is safe for concurrent use.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu        sync.RWMutex
	profile   *types.ResumeProfile
	document  string
	questions []string
	records   []types.AnswerRecord
	answered  map[int]bool
}

// Snapshot is a point-in-time view of a session
type Snapshot struct {
	ID        string               `json:"id"`
	CreatedAt time.Time            `json:"created_at"`
	Document  string               `json:"document,omitempty"`
	Profile   *types.ResumeProfile `json:"profile"`
	Questions []string             `json:"questions"`
	Answered  []int                `json:"answered"`
	Records   []types.AnswerRecord `json:"records"`
}

// NewSession starts a session for an extracted profile
func NewSession(id string, profile *types.ResumeProfile, document string) *Session {
	return &Session{
		ID:        id,
		CreatedAt: time.Now().UTC(),
		profile:   profile,
		document:  document,
		answered:  make(map[int]bool),
	}
}

// Profile returns the profile the session was created from
func (s *Session) Profile() *types.ResumeProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// SetQuestions replaces the question list and clears every recorded answer
func (s *Session) SetQuestions(questions []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.questions = append([]string(nil), questions...)
	s.records = nil
	s.answered = make(map[int]bool)
}

// Questions returns a copy of the current questions
func (s *Session) Questions() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.questions...)
}

// Question returns the question at a 1-based index
func (s *Session) Question(index int) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkIndexLocked(index); err != nil {
		return "", err
	}
	return s.questions[index-1], nil
}

// IsAnswered reports whether the question at index has a recorded answer
func (s *Session) IsAnswered(index int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.answered[index]
}

// CheckAnswerable returns the question at index when it can still be answered
func (s *Session) CheckAnswerable(index int) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkIndexLocked(index); err != nil {
		return "", err
	}
	if s.answered[index] {
		return "", &QuestionError{Index: index, Cause: ErrAlreadyAnswered}
	}
	return s.questions[index-1], nil
}

// RecordAnswer stores the answer and feedback for the question at index.
// question must match the current text at that index, so an answer evaluated
// before the questions were regenerated is rejected.
func (s *Session) RecordAnswer(index int, question, answer, feedback string) (types.AnswerRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkIndexLocked(index); err != nil {
		return types.AnswerRecord{}, err
	}
	if s.questions[index-1] != question {
		return types.AnswerRecord{}, &QuestionError{Index: index, Cause: ErrStaleQuestion}
	}
	if s.answered[index] {
		return types.AnswerRecord{}, &QuestionError{Index: index, Cause: ErrAlreadyAnswered}
	}

	record := types.AnswerRecord{
		Question: strings.TrimSpace(question),
		Answer:   answer,
		Feedback: feedback,
	}
	s.records = append(s.records, record)
	s.answered[index] = true
	return record, nil
}

// Records returns the answered questions in answer order
func (s *Session) Records() []types.AnswerRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]types.AnswerRecord(nil), s.records...)
}

// Summary aggregates the answers recorded so far
func (s *Session) Summary() types.Summary {
	return Summarize(s.Records())
}

// Snapshot copies the session state
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	answered := make([]int, 0, len(s.answered))
	for index := range s.answered {
		answered = append(answered, index)
	}
	sort.Ints(answered)

	return Snapshot{
		ID:        s.ID,
		CreatedAt: s.CreatedAt,
		Document:  s.document,
		Profile:   s.profile,
		Questions: append([]string{}, s.questions...),
		Answered:  answered,
		Records:   append([]types.AnswerRecord{}, s.records...),
	}
}

func (s *Session) checkIndexLocked(index int) error {
	if len(s.questions) == 0 {
		return ErrNoQuestionsYet
	}
	if index < 1 || index > len(s.questions) {
		return &QuestionError{Index: index, Cause: ErrQuestionOutOfRange}
	}
	return nil
}
