package interview

import (
	"math"

	"github.com/jonathan/mockmate/internal/types"
)

// Rating thresholds on the average score
const (
	excellentThreshold = 8.0
	decentThreshold    = 5.0
)

var ratingMessages = map[types.Rating]string{
	types.RatingExcellent:        "Excellent performance! You're well-prepared.",
	types.RatingDecent:           "Decent job. A bit more practice will help.",
	types.RatingNeedsImprovement: "Needs improvement. Try refining your answers.",
	types.RatingUnscored:         "No scored answers yet.",
}

// Summarize aggregates answered questions into scores, an average rounded to one
// decimal and a rating band. Answers without a parsable score count as answered
// but do not affect the average.
func Summarize(records []types.AnswerRecord) types.Summary {
	summary := types.Summary{
		Answered: len(records),
		Scores:   []int{},
		Rating:   types.RatingUnscored,
	}

	for _, record := range records {
		if score := ParseScore(record.Feedback); score != nil {
			summary.Scores = append(summary.Scores, *score)
		}
	}

	if len(summary.Scores) > 0 {
		total := 0
		for _, score := range summary.Scores {
			total += score
		}
		avg := float64(total) / float64(len(summary.Scores))
		summary.AverageScore = math.Round(avg*10) / 10
		summary.Rating = RatingFor(avg)
	}

	summary.Message = ratingMessages[summary.Rating]
	return summary
}

// RatingFor maps an average score to its band
func RatingFor(avg float64) types.Rating {
	switch {
	case avg >= excellentThreshold:
		return types.RatingExcellent
	case avg >= decentThreshold:
		return types.RatingDecent
	default:
		return types.RatingNeedsImprovement
	}
}
