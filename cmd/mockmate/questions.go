package main

import (
	"fmt"
	"os"

	"github.com/jonathan/mockmate/internal/interview"
	"github.com/jonathan/mockmate/internal/observability"
	"github.com/spf13/cobra"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Generate interview questions for a résumé",
	Long:  "Extracts a profile from the résumé and asks the language model for technical and behavioral questions tailored to its skills, projects and experience.",
	RunE:  runQuestions,
}

var (
	questionsInput      string
	questionsTechnical  int
	questionsBehavioral int
	questionsProvider   providerFlags
)

func init() {
	questionsCmd.Flags().StringVarP(&questionsInput, "file", "f", "", "Path to the résumé document (required)")
	questionsCmd.Flags().IntVar(&questionsTechnical, "technical", 0, "Number of technical questions (default from config)")
	questionsCmd.Flags().IntVar(&questionsBehavioral, "behavioral", 0, "Number of behavioral questions (default from config)")
	questionsProvider.register(questionsCmd)

	if err := questionsCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}

	rootCmd.AddCommand(questionsCmd)
}

func runQuestions(cmd *cobra.Command, _ []string) error {
	if err := questionsProvider.apply(appConfig); err != nil {
		return err
	}

	_, profile, err := loadProfile(questionsInput)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	client, err := newLLMClient(ctx, appConfig)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	req := interview.QuestionRequest{
		Profile:         profile,
		TechnicalCount:  appConfig.TechnicalQuestions,
		BehavioralCount: appConfig.BehavioralQuestions,
	}
	if questionsTechnical > 0 {
		req.TechnicalCount = questionsTechnical
	}
	if questionsBehavioral > 0 {
		req.BehavioralCount = questionsBehavioral
	}

	questions, err := interview.GenerateQuestions(ctx, client, req)
	if err != nil {
		return err
	}

	if verbose {
		observability.NewPrinter(os.Stderr).PrintQuestions(questions)
	}
	for _, question := range questions {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), question)
	}
	return nil
}
