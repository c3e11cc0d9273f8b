package schemas

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/mockmate/internal/parsing"
	"github.com/jonathan/mockmate/internal/types"
	schemafiles "github.com/jonathan/mockmate/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
  "type": "object",
  "required": ["name", "score"],
  "properties": {
    "name": {"type": "string"},
    "score": {"type": "integer"}
  }
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidateJSON_ValidJSON(t *testing.T) {
	schemaPath := writeFile(t, "schema.json", testSchema)
	jsonPath := writeFile(t, "doc.json", `{"name": "a", "score": 3}`)

	assert.NoError(t, ValidateJSON(schemaPath, jsonPath))
}

func TestValidateJSON_InvalidJSON_MissingField(t *testing.T) {
	schemaPath := writeFile(t, "schema.json", testSchema)
	jsonPath := writeFile(t, "doc.json", `{"name": "a"}`)

	err := ValidateJSON(schemaPath, jsonPath)
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr), "error should be ValidationError type")
	require.Len(t, validationErr.Errors, 1)
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)
	assert.Contains(t, err.Error(), "schema.json")
}

func TestValidateJSON_InvalidJSON_WrongType(t *testing.T) {
	schemaPath := writeFile(t, "schema.json", testSchema)
	jsonPath := writeFile(t, "doc.json", `{"name": "a", "score": "high"}`)

	err := ValidateJSON(schemaPath, jsonPath)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "score", validationErr.Errors[0].Field)
}

func TestValidateJSON_NonExistentFiles(t *testing.T) {
	schemaPath := writeFile(t, "schema.json", testSchema)

	err := ValidateJSON(filepath.Join(t.TempDir(), "nope.json"), schemaPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	err = ValidateJSON(schemaPath, filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSONString_BadSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": 12}`, `{}`)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidate_InterviewReport(t *testing.T) {
	records := []types.AnswerRecord{
		{Question: "1. What is Go?", Answer: "A language.", Feedback: "Score: 6/10\nFeedback: Expand."},
	}
	data, err := json.Marshal(records)
	require.NoError(t, err)

	assert.NoError(t, Validate(schemafiles.InterviewReport, data))
	assert.NoError(t, Validate(schemafiles.InterviewReport, []byte(`[]`)))

	err = Validate(schemafiles.InterviewReport, []byte(`[{"question": "", "answer": "a"}]`))
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, schemafiles.InterviewReport, validationErr.Schema)
	assert.GreaterOrEqual(t, len(validationErr.Errors), 2)
}

func TestValidate_ResumeProfile(t *testing.T) {
	text := "Jane Doe\njane@doe.dev | 98765 43210\nExperience\nEngineer at Acme using Python\n"
	profile := parsing.ParseResume(text, []string{"https://github.com/jane"})
	data, err := json.Marshal(profile)
	require.NoError(t, err)

	assert.NoError(t, Validate(schemafiles.ResumeProfile, data))

	unreadable, err := json.Marshal(parsing.ParseResume(types.UnreadableText("PDF"), nil))
	require.NoError(t, err)
	assert.NoError(t, Validate(schemafiles.ResumeProfile, unreadable))
}

func TestValidate_ResumeProfile_AwkwardContacts(t *testing.T) {
	text := "Jane Doe\nPin 56001\n23456 Bangalore\nSkills\nGo, SQL\n"
	links := []string{"mailto:a", "mailto:jane@doe.dev?subject=Interview"}

	profile := parsing.ParseResume(text, links)
	data, err := json.Marshal(profile)
	require.NoError(t, err)

	assert.Nil(t, profile.Contact.Phone)
	assert.Equal(t, "jane@doe.dev", types.Deref(profile.Contact.Email, ""))
	assert.NoError(t, Validate(schemafiles.ResumeProfile, data))
}

func TestValidate_ResumeProfile_UnknownSection(t *testing.T) {
	doc := `{"readable": true, "name": "A", "contact": {}, "links": {}, "skills": [],
		"sections": {"Hobbies": []}, "projects": []}`

	err := Validate(schemafiles.ResumeProfile, []byte(doc))
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestValidate_UnknownSchema(t *testing.T) {
	err := Validate("missing.schema.json", []byte(`{}`))
	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateFile(t *testing.T) {
	path := writeFile(t, "report.json", `[{"question": "Q", "answer": "A", "feedback": "F"}]`)
	assert.NoError(t, ValidateFile(schemafiles.InterviewReport, path))

	assert.Error(t, ValidateFile(schemafiles.InterviewReport, filepath.Join(t.TempDir(), "nope.json")))
}
