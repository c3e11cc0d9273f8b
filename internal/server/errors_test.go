package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jonathan/mockmate/internal/ingestion"
	"github.com/jonathan/mockmate/internal/interview"
	"github.com/jonathan/mockmate/internal/llm"
	"github.com/stretchr/testify/assert"
)

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "answer", Message: "answer is required"}
	assert.Equal(t, "validation error: answer - answer is required", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "unsupported file", err: &ingestion.UnsupportedFileTypeError{Filename: "a.exe"}, want: http.StatusUnsupportedMediaType},
		{name: "too large", err: fmt.Errorf("read: %w", &http.MaxBytesError{Limit: 10}), want: http.StatusRequestEntityTooLarge},
		{name: "session not found", err: interview.ErrSessionNotFound, want: http.StatusNotFound},
		{name: "out of range", err: &interview.QuestionError{Index: 9, Cause: interview.ErrQuestionOutOfRange}, want: http.StatusBadRequest},
		{name: "already answered", err: &interview.QuestionError{Index: 1, Cause: interview.ErrAlreadyAnswered}, want: http.StatusConflict},
		{name: "stale question", err: &interview.QuestionError{Index: 1, Cause: interview.ErrStaleQuestion}, want: http.StatusConflict},
		{name: "no questions yet", err: interview.ErrNoQuestionsYet, want: http.StatusConflict},
		{name: "no transcriber", err: interview.ErrNoTranscriber, want: http.StatusNotImplemented},
		{name: "provider failure", err: fmt.Errorf("failed to generate questions: %w", &llm.APICallError{Cause: errors.New("x")}), want: http.StatusBadGateway},
		{name: "empty question list", err: interview.ErrNoQuestions, want: http.StatusBadGateway},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "Unsupported file type", ErrorMessage(fmt.Errorf("upload: %w", &ingestion.UnsupportedFileTypeError{Filename: "a.exe"})))
	assert.Equal(t, "internal server error", ErrorMessage(errors.New("disk full")))
	assert.Equal(t, interview.ErrSessionNotFound.Error(), ErrorMessage(interview.ErrSessionNotFound))
}
