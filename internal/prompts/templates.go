// Package prompts holds the interview prompt templates. They live in
// interview.json, are embedded at compile time and are checked on first use:
// every known template must be present and must reference exactly its
// declared placeholders.
package prompts

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"sync"
	"text/template"
)

//go:embed interview.json
var interviewJSON []byte

// Name identifies one template in interview.json
type Name string

// Interview templates
const (
	GenerateQuestions Name = "generate-questions"
	EvaluateAnswer    Name = "evaluate-answer"
	TranscribeAudio   Name = "transcribe-audio"
)

// Placeholders each template must reference
var required = map[Name][]string{
	GenerateQuestions: {"Name", "Skills", "Projects", "Experience", "TechnicalCount", "BehavioralCount"},
	EvaluateAnswer:    {"Question", "Answer"},
	TranscribeAudio:   {"Unintelligible"},
}

var placeholderPattern = regexp.MustCompile(`\{\{\s*\.(\w+)\s*\}\}`)

// Template is a parsed prompt ready to render
type Template struct {
	Name         Name
	Placeholders []string
	tmpl         *template.Template
}

// MissingValueError reports placeholders that Render had no value for
type MissingValueError struct {
	Template Name
	Keys     []string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("prompt %s: missing values for %s", e.Template, strings.Join(e.Keys, ", "))
}

// Render fills every placeholder from data. Extra keys are ignored.
func (t *Template) Render(data map[string]string) (string, error) {
	var missing []string
	for _, key := range t.Placeholders {
		if _, ok := data[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return "", &MissingValueError{Template: t.Name, Keys: missing}
	}

	var sb strings.Builder
	if err := t.tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("prompt %s: %w", t.Name, err)
	}
	return sb.String(), nil
}

var loadInterview = sync.OnceValues(func() (map[Name]*Template, error) {
	return parse(interviewJSON)
})

// Get returns a template from interview.json
func Get(name Name) (*Template, error) {
	templates, err := loadInterview()
	if err != nil {
		return nil, err
	}
	t, ok := templates[name]
	if !ok {
		return nil, fmt.Errorf("unknown prompt %q", name)
	}
	return t, nil
}

// Render is shorthand for Get followed by Template.Render
func Render(name Name, data map[string]string) (string, error) {
	t, err := Get(name)
	if err != nil {
		return "", err
	}
	return t.Render(data)
}

// Names lists the known templates in sorted order
func Names() []Name {
	names := make([]Name, 0, len(required))
	for name := range required {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func parse(data []byte) (map[Name]*Template, error) {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse interview prompts: %w", err)
	}

	for key := range raw {
		if _, ok := required[Name(key)]; !ok {
			return nil, fmt.Errorf("unexpected prompt %q", key)
		}
	}

	templates := make(map[Name]*Template, len(required))
	for name, want := range required {
		text, ok := raw[string(name)]
		if !ok {
			return nil, fmt.Errorf("prompt %q is missing", name)
		}

		got := placeholders(text)
		for _, key := range want {
			if !slices.Contains(got, key) {
				return nil, fmt.Errorf("prompt %q does not reference {{.%s}}", name, key)
			}
		}
		for _, key := range got {
			if !slices.Contains(want, key) {
				return nil, fmt.Errorf("prompt %q references unknown placeholder {{.%s}}", name, key)
			}
		}

		tmpl, err := template.New(string(name)).Option("missingkey=error").Parse(text)
		if err != nil {
			return nil, fmt.Errorf("prompt %q: %w", name, err)
		}
		templates[name] = &Template{Name: name, Placeholders: got, tmpl: tmpl}
	}
	return templates, nil
}

// placeholders returns the distinct {{.Key}} names in order of first use
func placeholders(text string) []string {
	var keys []string
	for _, m := range placeholderPattern.FindAllStringSubmatch(text, -1) {
		if !slices.Contains(keys, m[1]) {
			keys = append(keys, m[1])
		}
	}
	return keys
}
