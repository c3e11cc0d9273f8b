package skills

import (
	"strings"

	"github.com/jonathan/mockmate/internal/types"
)

// ExtractSkills returns the vocabulary entries that occur anywhere in text.
//
// Matching is a case-insensitive substring test, so "sql" also matches inside
// "mysql". Unreadable input yields an empty set.
func ExtractSkills(text string) types.SkillSet {
	found := types.SkillSet{}
	if types.IsUnreadable(text) {
		return found
	}

	lower := strings.ToLower(text)
	for _, skill := range vocabulary {
		if strings.Contains(lower, skill) {
			found = append(found, skill)
		}
	}
	return found
}
