package interview

import (
	"context"
	"fmt"

	"github.com/jonathan/mockmate/internal/llm"
	"github.com/jonathan/mockmate/internal/logger"
	"github.com/jonathan/mockmate/internal/types"
	"golang.org/x/sync/errgroup"
)

// DefaultBatchConcurrency caps in-flight evaluation requests
const DefaultBatchConcurrency = 4

// EvaluateBatch evaluates many question/answer pairs concurrently and returns
// one record per request, in input order. Like a live session, a failed
// evaluation is recorded as sentinel feedback rather than aborting the batch;
// only invalid input or a cancelled context returns an error. onDone, when
// set, is called once per finished request.
func EvaluateBatch(ctx context.Context, client llm.Client, reqs []types.EvaluateRequest, concurrency int, onDone func()) ([]types.AnswerRecord, error) {
	for i := range reqs {
		if err := reqs[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid entry %d: %w", i+1, err)
		}
	}
	if concurrency <= 0 {
		concurrency = DefaultBatchConcurrency
	}

	records := make([]types.AnswerRecord, len(reqs))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, req := range reqs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			record := types.AnswerRecord{Question: req.Question, Answer: req.Answer}
			eval, err := EvaluateAnswer(gCtx, client, req.Question, req.Answer)
			if err != nil {
				logger.Ctx(ctx).Warn().Err(err).Int("entry", i+1).Msg("evaluation failed")
				record.Feedback = FailedFeedback(err)
			} else {
				record.Feedback = eval.Raw
			}

			records[i] = record
			if onDone != nil {
				onDone()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}
