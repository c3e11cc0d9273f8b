// Package report exports the answered questions of an interview as JSON or PDF.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/jonathan/mockmate/internal/schemas"
	"github.com/jonathan/mockmate/internal/types"
	schemafiles "github.com/jonathan/mockmate/schemas"
)

// Default export file names
const (
	DefaultPDFName  = "mock_interview_answers.pdf"
	DefaultJSONName = "answers.json"
)

// Format is an export format
type Format string

// Export formats
const (
	FormatJSON Format = "json"
	FormatPDF  Format = "pdf"
)

// ParseFormat resolves a format name or a file extension such as ".pdf"
func ParseFormat(s string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(s), ".") {
	case "json":
		return FormatJSON, nil
	case "pdf":
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("unknown report format %q", s)
	}
}

// ContentType returns the MIME type of a format
func (f Format) ContentType() string {
	if f == FormatPDF {
		return "application/pdf"
	}
	return "application/json"
}

// ExportError wraps a failed export
type ExportError struct {
	Format Format
	Cause  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("failed to export %s report: %v", e.Format, e.Cause)
}

func (e *ExportError) Unwrap() error {
	return e.Cause
}

// Write exports records in the given format
func Write(w io.Writer, format Format, records []types.AnswerRecord) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, records)
	case FormatPDF:
		return WritePDF(w, records)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

// WriteJSON writes records as an indented JSON array of question, answer and
// feedback objects. The output is validated against the report schema first.
func WriteJSON(w io.Writer, records []types.AnswerRecord) error {
	if records == nil {
		records = []types.AnswerRecord{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return &ExportError{Format: FormatJSON, Cause: err}
	}
	if err := schemas.Validate(schemafiles.InterviewReport, data); err != nil {
		return &ExportError{Format: FormatJSON, Cause: err}
	}

	if _, err := w.Write(data); err != nil {
		return &ExportError{Format: FormatJSON, Cause: err}
	}
	return nil
}

// WritePDF writes one paragraph per record in Arial 12. Characters outside
// code page 1252 are replaced.
func WritePDF(w io.Writer, records []types.AnswerRecord) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Mock Interview Report", true)
	pdf.AddPage()
	pdf.SetFont("Arial", "", 12)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, record := range records {
		pdf.MultiCell(0, 10, tr(paragraph(record)), "", "", false)
	}

	if err := pdf.Output(w); err != nil {
		return &ExportError{Format: FormatPDF, Cause: err}
	}
	return nil
}

func paragraph(record types.AnswerRecord) string {
	return fmt.Sprintf("Q: %s\nA: %s\nFeedback: %s\n", record.Question, record.Answer, record.Feedback)
}

// WriteFile exports records to path, choosing the format from its extension
func WriteFile(path string, records []types.AnswerRecord) error {
	format, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := Write(&buf, format, records); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// ReadJSON loads records previously written by WriteJSON
func ReadJSON(r io.Reader) ([]types.AnswerRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read report: %w", err)
	}
	if err := schemas.Validate(schemafiles.InterviewReport, data); err != nil {
		return nil, err
	}

	var records []types.AnswerRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse report: %w", err)
	}
	return records, nil
}
