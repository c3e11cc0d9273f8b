package parsing

import (
	"strings"

	"github.com/jonathan/mockmate/internal/types"
)

const (
	projectSeparator = "|"
	projectMarker    = "GitHub"
)

var (
	projectBullets     = []string{"–", "-", "•"}
	projectTerminators = []string{"skills", "certifications", "education", "languages"}
)

type projectState int

const (
	projectIdle projectState = iota
	projectCapturing
)

type projectLineClass int

const (
	projectText projectLineClass = iota
	projectStart
	projectBullet
	projectEnd
)

type projectAction int

const (
	projectDrop projectAction = iota
	projectBegin
	projectAppend
	projectFlush
)

type projectTransition struct {
	next   projectState
	action projectAction
}

// projectTransitions is the complete transition table of the project block machine.
var projectTransitions = map[projectState]map[projectLineClass]projectTransition{
	projectIdle: {
		projectStart:  {next: projectCapturing, action: projectBegin},
		projectBullet: {next: projectIdle, action: projectDrop},
		projectEnd:    {next: projectIdle, action: projectDrop},
		projectText:   {next: projectIdle, action: projectDrop},
	},
	projectCapturing: {
		projectStart:  {next: projectCapturing, action: projectBegin},
		projectBullet: {next: projectCapturing, action: projectAppend},
		projectEnd:    {next: projectIdle, action: projectFlush},
		projectText:   {next: projectCapturing, action: projectAppend},
	},
}

// ExtractProjects returns project blocks in document order. A block starts at a
// line containing both "|" and "GitHub" and runs until the next such line or a
// line naming a later résumé section (skills, certifications, education,
// languages); the terminating line itself is discarded.
func ExtractProjects(text string) []string {
	projects := []string{}
	if types.IsUnreadable(text) {
		return projects
	}

	state := projectIdle
	var block []string
	flush := func() {
		if len(block) > 0 {
			projects = append(projects, strings.Join(block, "\n"))
			block = nil
		}
	}

	for _, line := range nonEmptyLines(text) {
		step := projectTransitions[state][classifyProjectLine(line)]

		switch step.action {
		case projectBegin:
			flush()
			block = append(block, line)
		case projectAppend:
			block = append(block, line)
		case projectFlush:
			flush()
		case projectDrop:
		}

		state = step.next
	}
	flush()

	return projects
}

// classifyProjectLine checks the marker first, then bullets, so a bullet that
// mentions "skills" stays inside its block.
func classifyProjectLine(line string) projectLineClass {
	switch {
	case strings.Contains(line, projectSeparator) && strings.Contains(line, projectMarker):
		return projectStart
	case hasAnyPrefix(line, projectBullets):
		return projectBullet
	case containsAny(strings.ToLower(line), projectTerminators):
		return projectEnd
	default:
		return projectText
	}
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}
