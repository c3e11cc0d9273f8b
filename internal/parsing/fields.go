// Package parsing turns résumé plain text into a structured ResumeProfile using
// regular expressions and keyword-driven line state machines.
package parsing

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/mockmate/internal/types"
)

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

	// Optional +91 country code, then two groups of five digits. Separators
	// are spaces and hyphens only, so a number never spans two lines.
	phonePattern = regexp.MustCompile(`(\+91[ -]*)?(\d{5}[ -]?\d{5})`)

	// Two or more capitalized words at the start of a line.
	namePattern = regexp.MustCompile(`(?m)^([A-Z][a-z]+(?: [A-Z][a-z]+)+)`)

	phoneSeparators = strings.NewReplacer(" ", "", "-", "")
)

const (
	nameFallbackLines = 10
	nameMinTokens     = 2
	nameMaxTokens     = 4
)

// ExtractEmail returns the first email address in text, or nil when there is none.
func ExtractEmail(text string) *string {
	if types.IsUnreadable(text) {
		return nil
	}
	match := emailPattern.FindString(text)
	if match == "" {
		return nil
	}
	return &match
}

// ExtractPhone returns the first Indian mobile number in text with separators
// stripped, or nil when there is none. The +91 prefix is not part of the result.
func ExtractPhone(text string) *string {
	if types.IsUnreadable(text) {
		return nil
	}
	groups := phonePattern.FindStringSubmatch(text)
	if groups == nil {
		return nil
	}
	phone := phoneSeparators.Replace(groups[2])
	return &phone
}

// ExtractName returns the candidate's name. It prefers the first line-leading run
// of capitalized words, then falls back to a short digit-free line among the first
// ten non-empty lines, and finally to types.NameNotFound.
func ExtractName(text string) string {
	if types.IsUnreadable(text) {
		return types.NameNotFound
	}

	if groups := namePattern.FindStringSubmatch(text); groups != nil {
		return strings.TrimSpace(groups[1])
	}

	lines := nonEmptyLines(text)
	if len(lines) > nameFallbackLines {
		lines = lines[:nameFallbackLines]
	}
	for _, line := range lines {
		tokens := len(strings.Fields(line))
		if !containsDigit(line) && tokens >= nameMinTokens && tokens <= nameMaxTokens {
			return line
		}
	}

	return types.NameNotFound
}

func containsDigit(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

// nonEmptyLines splits text on newlines and returns the trimmed, non-empty lines in order.
func nonEmptyLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
