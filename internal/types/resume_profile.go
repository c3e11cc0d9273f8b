// Package types provides type definitions for structured data used throughout the mockmate system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// UnreadablePrefix starts every sentinel text produced when a document has no extractable text.
const UnreadablePrefix = "⚠️ No readable text"

// NameNotFound is returned by name extraction when no candidate line qualifies.
const NameNotFound = "Name Not Found"

// IsUnreadable reports whether text carries no usable résumé content:
// it is blank or it is the unreadable-document sentinel.
func IsUnreadable(text string) bool {
	return strings.TrimSpace(text) == "" || strings.HasPrefix(text, UnreadablePrefix)
}

// UnreadableText builds the sentinel text for a document kind, e.g. "PDF".
func UnreadableText(kind string) string {
	return UnreadablePrefix + " extracted from " + kind + "."
}

// SectionLabel names one of the recognized résumé sections
type SectionLabel string

// Section labels in declaration order
const (
	SectionExperience      SectionLabel = "Experience"
	SectionProjects        SectionLabel = "Projects"
	SectionEducation       SectionLabel = "Education"
	SectionCertifications  SectionLabel = "Certifications"
	SectionTechnicalSkills SectionLabel = "Technical Skills"
	SectionLanguages       SectionLabel = "Languages"
	SectionSoftSkills      SectionLabel = "Soft Skills"
)

// SectionLabels returns every label in declaration order.
func SectionLabels() []SectionLabel {
	return []SectionLabel{
		SectionExperience,
		SectionProjects,
		SectionEducation,
		SectionCertifications,
		SectionTechnicalSkills,
		SectionLanguages,
		SectionSoftSkills,
	}
}

// SectionMap maps a section label to the lines captured under it.
// A label is present only when a heading for it was seen; its list may be empty.
type SectionMap map[SectionLabel][]string

// Lines returns the captured lines for a label, or nil when absent.
func (m SectionMap) Lines(label SectionLabel) []string {
	if m == nil {
		return nil
	}
	return m[label]
}

// Text joins the lines of a section with newlines.
func (m SectionMap) Text(label SectionLabel) string {
	return strings.Join(m.Lines(label), "\n")
}

// SkillSet is a deduplicated set of vocabulary skills, kept in vocabulary order
type SkillSet []string

// Contains reports whether the set holds the given skill.
func (s SkillSet) Contains(skill string) bool {
	for _, have := range s {
		if have == skill {
			return true
		}
	}
	return false
}

// ContactFields holds optional contact details. A nil pointer means "not found".
type ContactFields struct {
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// ProfileLinks holds profile URLs picked from document hyperlinks
type ProfileLinks struct {
	LinkedIn *string `json:"linkedin,omitempty"`
	GitHub   *string `json:"github,omitempty"`
}

// ResumeProfile is the structured record extracted from one résumé text
type ResumeProfile struct {
	Readable bool          `json:"readable"`
	Name     string        `json:"name"`
	Contact  ContactFields `json:"contact"`
	Links    ProfileLinks  `json:"links"`
	Skills   SkillSet      `json:"skills"`
	Sections SectionMap    `json:"sections"`
	Projects []string      `json:"projects"`
}

// ProjectsText joins every project block, as consumed by question prompts.
func (p *ResumeProfile) ProjectsText() string {
	return strings.Join(p.Projects, "\n")
}

// ExperienceText joins the Experience section lines, as consumed by question prompts.
func (p *ResumeProfile) ExperienceText() string {
	return p.Sections.Text(SectionExperience)
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}

// Deref returns the pointed-to string or fallback when nil.
func Deref(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
