package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jonathan/mockmate/internal/interview"
	"github.com/jonathan/mockmate/internal/observability"
	"github.com/jonathan/mockmate/internal/report"
	"github.com/jonathan/mockmate/internal/types"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Score interview answers",
	Long: "Evaluates a single --question/--answer pair, or a --batch JSON file of " +
		`[{"question": ..., "answer": ...}] entries concurrently, and prints or writes the scored records.`,
	RunE: runEvaluate,
}

var (
	evaluateQuestion    string
	evaluateAnswer      string
	evaluateBatchFile   string
	evaluateOutput      string
	evaluateConcurrency int
	evaluateProvider    providerFlags
)

func init() {
	evaluateCmd.Flags().StringVarP(&evaluateQuestion, "question", "q", "", "Interview question")
	evaluateCmd.Flags().StringVarP(&evaluateAnswer, "answer", "a", "", "Candidate answer")
	evaluateCmd.Flags().StringVarP(&evaluateBatchFile, "batch", "b", "", "Path to a JSON array of question/answer pairs")
	evaluateCmd.Flags().StringVarP(&evaluateOutput, "out", "o", "", "Write records as .json or .pdf instead of printing")
	evaluateCmd.Flags().IntVar(&evaluateConcurrency, "concurrency", interview.DefaultBatchConcurrency, "Parallel evaluations in batch mode")
	evaluateProvider.register(evaluateCmd)

	evaluateCmd.MarkFlagsMutuallyExclusive("batch", "question")
	evaluateCmd.MarkFlagsMutuallyExclusive("batch", "answer")
	evaluateCmd.MarkFlagsRequiredTogether("question", "answer")
	evaluateCmd.MarkFlagsOneRequired("batch", "question")

	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, _ []string) error {
	reqs, err := evaluationRequests()
	if err != nil {
		return err
	}

	if err := evaluateProvider.apply(appConfig); err != nil {
		return err
	}

	ctx := cmd.Context()
	client, err := newLLMClient(ctx, appConfig)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	var onDone func()
	if len(reqs) > 1 {
		bar := progressbar.NewOptions(len(reqs),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("Evaluating answers"),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
			progressbar.OptionSetItsString("answers/s"),
			progressbar.OptionThrottle(65*time.Millisecond),
			progressbar.OptionShowElapsedTimeOnFinish(),
			progressbar.OptionOnCompletion(func() {
				_, _ = fmt.Fprintln(os.Stderr)
			}),
		)
		onDone = func() { _ = bar.Add(1) }
	}

	records, err := interview.EvaluateBatch(ctx, client, reqs, evaluateConcurrency, onDone)
	if err != nil {
		return err
	}

	if evaluateOutput != "" {
		if err := report.WriteFile(evaluateOutput, records); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Evaluated %d answers\n", len(records))
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", evaluateOutput)
		return nil
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	for i, record := range records {
		printer.PrintEvaluation(i+1, record)
	}
	if len(records) > 1 {
		printer.PrintSummary(interview.Summarize(records))
	}
	return nil
}

// evaluationRequests reads the batch file, or wraps the single question/answer flags
func evaluationRequests() ([]types.EvaluateRequest, error) {
	if evaluateBatchFile == "" {
		return []types.EvaluateRequest{{Question: evaluateQuestion, Answer: evaluateAnswer}}, nil
	}

	content, err := os.ReadFile(evaluateBatchFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var reqs []types.EvaluateRequest
	if err := json.Unmarshal(content, &reqs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal batch JSON: %w", err)
	}
	if len(reqs) == 0 {
		return nil, fmt.Errorf("batch file %s has no entries", evaluateBatchFile)
	}
	return reqs, nil
}
