package main

import (
	"fmt"
	"os"

	"github.com/jonathan/mockmate/internal/interview"
	"github.com/jonathan/mockmate/internal/observability"
	"github.com/jonathan/mockmate/internal/report"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Convert answer records to a PDF or JSON report",
	Long:  "Reads a JSON array of {question, answer, feedback} records and writes it as a PDF or JSON report chosen by the output extension.",
	RunE:  runReport,
}

var (
	reportInput  string
	reportOutput string
)

func init() {
	reportCmd.Flags().StringVarP(&reportInput, "in", "i", "", "Path to the records JSON file (required)")
	reportCmd.Flags().StringVarP(&reportOutput, "out", "o", report.DefaultPDFName, "Report path (.pdf or .json)")

	if err := reportCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, _ []string) error {
	f, err := os.Open(reportInput)
	if err != nil {
		return fmt.Errorf("failed to open records file: %w", err)
	}
	defer func() { _ = f.Close() }()

	records, err := report.ReadJSON(f)
	if err != nil {
		return err
	}

	if err := report.WriteFile(reportOutput, records); err != nil {
		return err
	}

	if verbose {
		observability.NewPrinter(os.Stderr).PrintSummary(interview.Summarize(records))
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d records\n", len(records))
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", reportOutput)
	return nil
}
