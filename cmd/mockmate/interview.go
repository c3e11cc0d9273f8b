package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/jonathan/mockmate/internal/interview"
	"github.com/jonathan/mockmate/internal/observability"
	"github.com/jonathan/mockmate/internal/report"
	"github.com/jonathan/mockmate/internal/types"
	"github.com/spf13/cobra"
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Run an interactive mock interview",
	Long: "Generates questions from the résumé and reads one answer per question from stdin. " +
		"Type the answer, give @path/to/answer.wav to submit a recording, or leave the line empty to skip. " +
		"The answered questions are written to a PDF (or JSON) report at the end.",
	RunE: runInterview,
}

var (
	interviewInput    string
	interviewOutput   string
	interviewProvider providerFlags
)

func init() {
	interviewCmd.Flags().StringVarP(&interviewInput, "file", "f", "", "Path to the résumé document (required)")
	interviewCmd.Flags().StringVarP(&interviewOutput, "out", "o", report.DefaultPDFName, "Report path (.pdf or .json)")
	interviewProvider.register(interviewCmd)

	if err := interviewCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}

	rootCmd.AddCommand(interviewCmd)
}

func runInterview(cmd *cobra.Command, _ []string) error {
	if err := interviewProvider.apply(appConfig); err != nil {
		return err
	}

	_, profile, err := loadProfile(interviewInput)
	if err != nil {
		return err
	}
	if !profile.Readable {
		return fmt.Errorf("no readable text in %s", interviewInput)
	}

	ctx := cmd.Context()
	client, err := newLLMClient(ctx, appConfig)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	interviewer, err := newInterviewer(ctx, appConfig, client)
	if err != nil {
		return err
	}

	session := interview.NewStore().Create(profile, filepath.Base(interviewInput))
	summary, err := conductInterview(ctx, interviewer, session, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return err
	}

	if summary.Answered == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No answers recorded; skipping report.")
		return nil
	}
	if err := report.WriteFile(interviewOutput, session.Records()); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Report: %s\n", interviewOutput)
	return nil
}

// conductInterview prepares the session, then asks each question in turn and
// evaluates the answer read from in. It stops early at end of input.
func conductInterview(ctx context.Context, interviewer *interview.Interviewer, session *interview.Session, in io.Reader, out io.Writer) (types.Summary, error) {
	questions, err := interviewer.Prepare(ctx, session)
	if err != nil {
		return types.Summary{}, err
	}

	printer := observability.NewPrinter(out)
	printer.PrintQuestions(questions)

	scanner := bufio.NewScanner(in)
	for i, question := range questions {
		index := i + 1
		_, _ = fmt.Fprintf(out, "\n%s\n> ", question)
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			_, _ = fmt.Fprintln(out, "(skipped)")
			continue
		}

		record, err := answer(ctx, interviewer, session, index, line)
		if errors.Is(err, interview.ErrNoTranscriber) {
			_, _ = fmt.Fprintln(out, "Audio answers are disabled; type the answer instead.")
			continue
		}
		if err != nil {
			return types.Summary{}, err
		}
		printer.PrintEvaluation(index, record)
	}
	if err := scanner.Err(); err != nil {
		return types.Summary{}, fmt.Errorf("failed to read answers: %w", err)
	}

	summary := session.Summary()
	printer.PrintSummary(summary)
	return summary, nil
}

// answer submits one input line: "@path" is a recorded answer, anything else is typed
func answer(ctx context.Context, interviewer *interview.Interviewer, session *interview.Session, index int, line string) (types.AnswerRecord, error) {
	path, isAudio := strings.CutPrefix(line, "@")
	if !isAudio {
		return interviewer.AnswerText(ctx, session, index, line)
	}
	if !interviewer.CanTranscribe() {
		return types.AnswerRecord{}, interview.ErrNoTranscriber
	}

	sample, err := readAudio(strings.TrimSpace(path))
	if err != nil {
		return types.AnswerRecord{}, err
	}
	return interviewer.AnswerAudio(ctx, session, index, sample)
}
