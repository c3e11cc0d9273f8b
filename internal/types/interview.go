package types

import "github.com/go-playground/validator/v10"

// AnswerRecord is one answered question in a mock interview, the unit of report export
type AnswerRecord struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer"`
	Feedback string `json:"feedback"`
}

// Evaluation is the language model's assessment of one answer
type Evaluation struct {
	Raw      string `json:"raw"`
	Score    *int   `json:"score,omitempty"` // nil when no "Score: n/10" line was found
	Feedback string `json:"feedback,omitempty"`
}

// Rating is the overall performance band of a finished interview
type Rating string

// Rating bands
const (
	RatingExcellent        Rating = "excellent"
	RatingDecent           Rating = "decent"
	RatingNeedsImprovement Rating = "needs_improvement"
	RatingUnscored         Rating = "unscored"
)

// Summary aggregates the answered questions of a session
type Summary struct {
	Answered     int     `json:"answered"`
	Scores       []int   `json:"scores"`
	AverageScore float64 `json:"average_score"`
	Rating       Rating  `json:"rating"`
	Message      string  `json:"message,omitempty"`
}

// AnswerRequest is the JSON body of a typed answer submission
type AnswerRequest struct {
	Answer string `json:"answer" validate:"required,min=1"`
}

// EvaluateRequest is one entry of a batch evaluation input file
type EvaluateRequest struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

// Validate validates the AnswerRequest using the validator.
func (r *AnswerRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the EvaluateRequest using the validator.
func (r *EvaluateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
