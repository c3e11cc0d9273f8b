package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/mockmate/internal/ingestion"
	"github.com/jonathan/mockmate/internal/schemas"
	schemafiles "github.com/jonathan/mockmate/schemas"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract a structured profile from a résumé",
	Long: "Reads a PDF, DOCX, HTML or text résumé and writes the extracted profile " +
		"(name, contact, links, skills, sections, projects) as JSON validated against the resume_profile schema.",
	RunE: runExtract,
}

var (
	extractInput   string
	extractOutput  string
	extractTextDir string
)

func init() {
	extractCmd.Flags().StringVarP(&extractInput, "file", "f", "", "Path to the résumé document (required)")
	extractCmd.Flags().StringVarP(&extractOutput, "out", "o", "", "Path to output profile JSON (default stdout)")
	extractCmd.Flags().StringVar(&extractTextDir, "text-dir", "", "Also write the cleaned text and document metadata to this directory")

	if err := extractCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, _ []string) error {
	doc, profile, err := loadProfile(extractInput)
	if err != nil {
		return err
	}
	if extractTextDir != "" {
		if err := ingestion.WriteOutput(extractTextDir, doc); err != nil {
			return err
		}
	}

	jsonOutput, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profile to JSON: %w", err)
	}

	if err := schemas.Validate(schemafiles.ResumeProfile, jsonOutput); err != nil {
		return fmt.Errorf("extracted profile does not validate against schema: %w", err)
	}

	if extractOutput == "" {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(jsonOutput))
		return nil
	}

	if err := os.WriteFile(extractOutput, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Extracted profile for %s\n", profile.Name)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", extractOutput)
	return nil
}
