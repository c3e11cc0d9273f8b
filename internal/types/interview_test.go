package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerRequest_Validate(t *testing.T) {
	assert.NoError(t, (&AnswerRequest{Answer: "Channels synchronize goroutines."}).Validate())
	assert.Error(t, (&AnswerRequest{}).Validate())
}

func TestEvaluateRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     EvaluateRequest
		wantErr bool
	}{
		{name: "valid", req: EvaluateRequest{Question: "Q", Answer: "A"}},
		{name: "missing question", req: EvaluateRequest{Answer: "A"}, wantErr: true},
		{name: "missing answer", req: EvaluateRequest{Question: "Q"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAnswerRecord_JSONKeys(t *testing.T) {
	data, err := json.Marshal(AnswerRecord{Question: "Q", Answer: "A", Feedback: "F"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"question": "Q", "answer": "A", "feedback": "F"}`, string(data))
}

func TestSummary_JSONScoresNeverNull(t *testing.T) {
	data, err := json.Marshal(Summary{Scores: []int{}, Rating: RatingUnscored})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"scores":[]`)
}
