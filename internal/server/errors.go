package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/mockmate/internal/ingestion"
	"github.com/jonathan/mockmate/internal/interview"
	"github.com/jonathan/mockmate/internal/llm"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		unsupported *ingestion.UnsupportedFileTypeError
		validation  *ErrValidation
		apiErr      *llm.APICallError
		tooLarge    *http.MaxBytesError
	)

	switch {
	case errors.As(err, &unsupported):
		return http.StatusUnsupportedMediaType
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &validation), errors.Is(err, interview.ErrQuestionOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, interview.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, interview.ErrAlreadyAnswered),
		errors.Is(err, interview.ErrStaleQuestion),
		errors.Is(err, interview.ErrNoQuestionsYet):
		return http.StatusConflict
	case errors.Is(err, interview.ErrNoTranscriber):
		return http.StatusNotImplemented
	case errors.As(err, &apiErr), errors.Is(err, interview.ErrNoQuestions):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// ErrorMessage returns the client-facing message for an error. Unsupported
// uploads always read "Unsupported file type"; internal failures are not echoed.
func ErrorMessage(err error) string {
	var unsupported *ingestion.UnsupportedFileTypeError
	if errors.As(err, &unsupported) {
		return unsupported.Error()
	}
	if HTTPStatus(err) == http.StatusInternalServerError {
		return "internal server error"
	}
	return err.Error()
}
