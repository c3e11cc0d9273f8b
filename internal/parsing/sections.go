package parsing

import (
	"strings"

	"github.com/jonathan/mockmate/internal/types"
)

// SectionKeywords associates a section label with the lowercase keywords that open it
type SectionKeywords struct {
	Label    types.SectionLabel
	Keywords []string
}

// defaultSectionTable is consulted in declaration order; the first section whose
// keyword occurs in a line wins.
var defaultSectionTable = []SectionKeywords{
	{Label: types.SectionExperience, Keywords: []string{"experience", "work history", "tools", "libraries/frameworks"}},
	{Label: types.SectionProjects, Keywords: []string{"project", "jobguard", "ecovision", "eda", "stable diffusion", "text-to-image"}},
	{Label: types.SectionEducation, Keywords: []string{"education"}},
	{Label: types.SectionCertifications, Keywords: []string{"certification"}},
	{Label: types.SectionTechnicalSkills, Keywords: []string{"technical skills"}},
	{Label: types.SectionLanguages, Keywords: []string{"languages"}},
	{Label: types.SectionSoftSkills, Keywords: []string{"soft skills"}},
}

var defaultSegmenter = NewSectionSegmenter(defaultSectionTable, nil)

// DefaultSectionTable returns a copy of the built-in section keyword table.
func DefaultSectionTable() []SectionKeywords {
	return cloneTable(defaultSectionTable)
}

// ExtractSections partitions text into labelled sections using the default keyword table.
func ExtractSections(text string) types.SectionMap {
	return defaultSegmenter.Segment(text)
}

// segmentState names the states of the section machine
type segmentState int

const (
	stateIdle segmentState = iota
	stateInSection
)

// lineClass is how the section machine sees one line
type lineClass int

const (
	classContent lineClass = iota
	classHeading
	classBoundary
)

// segmentAction is the side effect of a transition
type segmentAction int

const (
	actionDrop segmentAction = iota
	actionOpen
	actionAppend
)

type segmentTransition struct {
	next   segmentState
	action segmentAction
}

// sectionTransitions is the complete transition table of the section machine.
var sectionTransitions = map[segmentState]map[lineClass]segmentTransition{
	stateIdle: {
		classHeading:  {next: stateInSection, action: actionOpen},
		classBoundary: {next: stateIdle, action: actionDrop},
		classContent:  {next: stateIdle, action: actionDrop},
	},
	stateInSection: {
		classHeading:  {next: stateInSection, action: actionOpen},
		classBoundary: {next: stateIdle, action: actionDrop},
		classContent:  {next: stateInSection, action: actionAppend},
	},
}

// SectionSegmenter assigns résumé lines to sections. It holds only immutable
// tables, so one value can be shared across goroutines.
type SectionSegmenter struct {
	table      []SectionKeywords
	boundaries []string
}

// NewSectionSegmenter builds a segmenter from a keyword table. Lines containing any
// boundary keyword close the current section; when boundaries is nil, every keyword
// of the table is pooled into the boundary vocabulary.
func NewSectionSegmenter(table []SectionKeywords, boundaries []string) *SectionSegmenter {
	table = cloneTable(table)
	if boundaries == nil {
		for _, entry := range table {
			boundaries = append(boundaries, entry.Keywords...)
		}
	} else {
		boundaries = append([]string(nil), boundaries...)
	}
	return &SectionSegmenter{table: table, boundaries: boundaries}
}

// Segment runs the section machine over the non-empty trimmed lines of text.
// Heading lines are never captured as content, and a repeated heading resets the
// lines collected for its label.
func (s *SectionSegmenter) Segment(text string) types.SectionMap {
	sections := types.SectionMap{}
	if types.IsUnreadable(text) {
		return sections
	}

	state := stateIdle
	var current types.SectionLabel

	for _, line := range nonEmptyLines(text) {
		class, label := s.classify(strings.ToLower(line))
		step := sectionTransitions[state][class]

		switch step.action {
		case actionOpen:
			current = label
			sections[current] = []string{}
		case actionAppend:
			sections[current] = append(sections[current], line)
		case actionDrop:
		}

		state = step.next
		if state == stateIdle {
			current = ""
		}
	}

	return sections
}

// classify reports the class of a lowercased line and, for headings, the section it opens.
func (s *SectionSegmenter) classify(lower string) (lineClass, types.SectionLabel) {
	for _, entry := range s.table {
		if containsAny(lower, entry.Keywords) {
			return classHeading, entry.Label
		}
	}
	if containsAny(lower, s.boundaries) {
		return classBoundary, ""
	}
	return classContent, ""
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func cloneTable(table []SectionKeywords) []SectionKeywords {
	out := make([]SectionKeywords, len(table))
	for i, entry := range table {
		out[i] = SectionKeywords{
			Label:    entry.Label,
			Keywords: append([]string(nil), entry.Keywords...),
		}
	}
	return out
}
