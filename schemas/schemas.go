// Package schemas embeds the JSON Schemas for the artifacts mockmate writes.
package schemas

import (
	"embed"
	"fmt"
)

// Schema file names
const (
	ResumeProfile   = "resume_profile.schema.json"
	InterviewReport = "interview_report.schema.json"
)

//go:embed *.schema.json
var files embed.FS

// Get returns the raw content of an embedded schema
func Get(name string) ([]byte, error) {
	data, err := files.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("schema %q not embedded: %w", name, err)
	}
	return data, nil
}

// Names lists every embedded schema
func Names() []string {
	entries, err := files.ReadDir(".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}
