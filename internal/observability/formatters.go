// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/mockmate/internal/ingestion"
	"github.com/jonathan/mockmate/internal/skills"
	"github.com/jonathan/mockmate/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
	notFound       = "(not found)"
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "..."
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}

// PrintDocument outputs what ingestion recovered from an uploaded file.
func (p *Printer) PrintDocument(doc *ingestion.Document) {
	if doc == nil || doc.Metadata == nil {
		return
	}

	var sb strings.Builder
	meta := doc.Metadata
	sb.WriteString(fmt.Sprintf("File:     %s\n", meta.Filename))
	sb.WriteString(fmt.Sprintf("Kind:     %s (%d bytes)\n", meta.Kind, meta.Size))
	sb.WriteString(fmt.Sprintf("Readable: %t\n", meta.Readable))
	sb.WriteString(fmt.Sprintf("Links:    %d\n", len(doc.Links)))
	for _, warning := range meta.Warnings {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", warning))
	}

	p.printBox("INGESTED DOCUMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintProfile outputs a human-readable summary of an extracted résumé profile.
func (p *Printer) PrintProfile(profile *types.ResumeProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", profile.Name))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", types.Deref(profile.Contact.Email, notFound)))
	sb.WriteString(fmt.Sprintf("Phone:    %s\n", types.Deref(profile.Contact.Phone, notFound)))
	if profile.Links.LinkedIn != nil {
		sb.WriteString(fmt.Sprintf("LinkedIn: %s\n", *profile.Links.LinkedIn))
	}
	if profile.Links.GitHub != nil {
		sb.WriteString(fmt.Sprintf("GitHub:   %s\n", *profile.Links.GitHub))
	}
	sb.WriteString("\n")

	if len(profile.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills (%d):\n", len(profile.Skills)))
		sb.WriteString(fmt.Sprintf("  %s\n\n", strings.Join(skills.DisplayNames(profile.Skills), ", ")))
	}

	var sections []string
	for _, label := range types.SectionLabels() {
		if lines, ok := profile.Sections[label]; ok {
			sections = append(sections, fmt.Sprintf("%s (%d)", label, len(lines)))
		}
	}
	if len(sections) > 0 {
		sb.WriteString("Sections:\n")
		for _, section := range sections {
			sb.WriteString(fmt.Sprintf("  • %s\n", section))
		}
		sb.WriteString("\n")
	}

	if len(profile.Projects) > 0 {
		sb.WriteString("Projects:\n")
		count := min(len(profile.Projects), maxItemsToShow)
		for i := 0; i < count; i++ {
			title, _, _ := strings.Cut(profile.Projects[i], "\n")
			sb.WriteString(fmt.Sprintf("  • %s\n", title))
		}
		if len(profile.Projects) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Projects)-maxItemsToShow))
		}
	}

	p.printBox("EXTRACTED PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintQuestions outputs the generated interview questions.
func (p *Printer) PrintQuestions(questions []string) {
	if len(questions) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Generated %d questions:\n\n", len(questions)))
	for i, question := range questions {
		sb.WriteString(fmt.Sprintf("%d) %s", i+1, question))
		if i < len(questions)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("INTERVIEW QUESTIONS", sb.String())
}

// PrintEvaluation outputs the feedback for one answered question.
func (p *Printer) PrintEvaluation(index int, record types.AnswerRecord) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Q: %s\n", record.Question))
	sb.WriteString(fmt.Sprintf("A: %s\n\n", record.Answer))
	sb.WriteString(record.Feedback)

	p.printBox(fmt.Sprintf("FEEDBACK FOR QUESTION %d", index), sb.String())
}

// PrintSummary outputs the overall interview result.
func (p *Printer) PrintSummary(summary types.Summary) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Answered: %d\n", summary.Answered))

	if len(summary.Scores) == 0 {
		sb.WriteString(summary.Message)
		p.printBox("INTERVIEW SUMMARY", sb.String())
		return
	}

	scores := make([]string, len(summary.Scores))
	for i, score := range summary.Scores {
		scores[i] = fmt.Sprintf("%d", score)
	}
	sb.WriteString(fmt.Sprintf("Scores:   %s\n", strings.Join(scores, ", ")))
	sb.WriteString(fmt.Sprintf("Average:  %.1f/10\n\n", summary.AverageScore))
	sb.WriteString(fmt.Sprintf("%s %s", ratingIcon(summary.Rating), summary.Message))

	p.printBox("INTERVIEW SUMMARY", sb.String())
}

func ratingIcon(rating types.Rating) string {
	switch rating {
	case types.RatingExcellent:
		return "✅"
	case types.RatingDecent:
		return "📝"
	default:
		return "🚧"
	}
}
