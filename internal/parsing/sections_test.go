package parsing

import (
	"testing"

	"github.com/jonathan/mockmate/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestExtractSections_Basic(t *testing.T) {
	text := "Experience\nIntern at X\nEducation\nB.Tech"

	sections := ExtractSections(text)

	assert.Equal(t, types.SectionMap{
		types.SectionExperience: {"Intern at X"},
		types.SectionEducation:  {"B.Tech"},
	}, sections)
}

func TestExtractSections_ContentBeforeFirstHeadingDropped(t *testing.T) {
	text := "John Smith\njohn@example.com\nTechnical Skills\nGo, Python"

	sections := ExtractSections(text)

	assert.Equal(t, []string{"Go, Python"}, sections[types.SectionTechnicalSkills])
	assert.Len(t, sections, 1)
}

func TestExtractSections_HeadingNeverCaptured(t *testing.T) {
	sections := ExtractSections("Projects\nJobGuard | GitHub\nBuilt a classifier")

	// A line naming a project keyword opens Projects again and is not content.
	assert.Equal(t, []string{"Built a classifier"}, sections[types.SectionProjects])
	for _, lines := range sections {
		assert.NotContains(t, lines, "Projects")
	}
}

func TestExtractSections_RepeatedHeadingResets(t *testing.T) {
	text := "Education\nOld School\nCertifications\nAWS\nEducation\nNew School"

	sections := ExtractSections(text)

	assert.Equal(t, []string{"New School"}, sections[types.SectionEducation])
	assert.Equal(t, []string{"AWS"}, sections[types.SectionCertifications])
}

func TestExtractSections_FirstDeclaredSectionWins(t *testing.T) {
	// "experience" is declared before "project".
	sections := ExtractSections("Project Experience\nBuilt things")

	assert.Equal(t, []string{"Built things"}, sections[types.SectionExperience])
	assert.NotContains(t, sections, types.SectionProjects)
}

func TestExtractSections_HeadingWithoutContent(t *testing.T) {
	sections := ExtractSections("Languages")

	lines, ok := sections[types.SectionLanguages]
	assert.True(t, ok)
	assert.Empty(t, lines)
}

func TestExtractSections_Unreadable(t *testing.T) {
	assert.Empty(t, ExtractSections(types.UnreadableText("PDF")))
	assert.Empty(t, ExtractSections(""))
}

func TestExtractSections_Idempotent(t *testing.T) {
	text := "Experience\nA\nB\nSoft Skills\nTeamwork"
	assert.Equal(t, ExtractSections(text), ExtractSections(text))
}

func TestSectionSegmenter_BoundaryClosesSection(t *testing.T) {
	segmenter := NewSectionSegmenter(
		[]SectionKeywords{{Label: types.SectionExperience, Keywords: []string{"experience"}}},
		[]string{"references"},
	)

	sections := segmenter.Segment("Experience\nAcme\nReferences\nAvailable on request\nExperience\nGlobex")

	assert.Equal(t, []string{"Globex"}, sections[types.SectionExperience])
}

func TestSectionSegmenter_BoundaryDiscardsUntilHeading(t *testing.T) {
	segmenter := NewSectionSegmenter(
		[]SectionKeywords{{Label: types.SectionEducation, Keywords: []string{"education"}}},
		[]string{"hobbies"},
	)

	sections := segmenter.Segment("Education\nB.Tech\nHobbies\nChess")

	assert.Equal(t, types.SectionMap{types.SectionEducation: {"B.Tech"}}, sections)
}

func TestDefaultSectionTable_IsCopy(t *testing.T) {
	table := DefaultSectionTable()
	table[0].Keywords[0] = "mutated"

	assert.Equal(t, "experience", DefaultSectionTable()[0].Keywords[0])
	assert.Equal(t, []string{"Intern"}, ExtractSections("Experience\nIntern")[types.SectionExperience])
}

func TestSectionTransitions_Complete(t *testing.T) {
	for _, state := range []segmentState{stateIdle, stateInSection} {
		for _, class := range []lineClass{classContent, classHeading, classBoundary} {
			_, ok := sectionTransitions[state][class]
			assert.True(t, ok, "missing transition for state %d class %d", state, class)
		}
	}
}
