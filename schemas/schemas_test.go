package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	names := Names()
	require.ElementsMatch(t, []string{ResumeProfile, InterviewReport}, names)

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			data, err := Get(name)
			require.NoError(t, err)

			var v map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &v), "schema file should be valid JSON: %s", name)
			assert.Contains(t, v, "title")
			assert.Contains(t, v, "type")
		})
	}
}

func TestGet_Unknown(t *testing.T) {
	_, err := Get("missing.schema.json")
	assert.Error(t, err)
}
