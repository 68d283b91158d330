package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jsonDoc = `{
	"content": {
		"basics": {"name": "Jane Doe", "email": "jane@example.com"},
		"education": [{"institution": "Example University", "startDate": "2015-09"}]
	}
}`

const yamlDoc = `content:
  basics:
    name: Jane Doe
    email: jane@example.com
  location:
    city: Berlin
    country: DE
  education:
    - institution: Example University
      startDate: "2015-09"
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadResume_JSON(t *testing.T) {
	r, err := LoadResume(writeTemp(t, "resume.json", jsonDoc))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", r.Content.Basics.Name)
	require.Len(t, r.Content.Education, 1)
	assert.Equal(t, "Example University", r.Content.Education[0].Institution)
}

func TestLoadResume_YAML(t *testing.T) {
	r, err := LoadResume(writeTemp(t, "resume.yaml", yamlDoc))
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", r.Content.Basics.Email)
	require.NotNil(t, r.Content.Location)
	assert.Equal(t, "DE", r.Content.Location.Country)
	assert.Equal(t, "2015-09", r.Content.Education[0].StartDate)
}

func TestLoadResume_YMLExtension(t *testing.T) {
	_, err := LoadResume(writeTemp(t, "resume.yml", yamlDoc))
	assert.NoError(t, err)
}

func TestLoadResume_UnsupportedExtension(t *testing.T) {
	path := writeTemp(t, "resume.toml", "name = \"Jane\"")
	_, err := LoadResume(path)
	require.Error(t, err)

	var formatErr *UnsupportedFormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, path, formatErr.Path)
}

func TestLoadResume_MissingFile(t *testing.T) {
	_, err := LoadResume(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestDecodeJSON_Malformed(t *testing.T) {
	_, err := DecodeJSON([]byte("{not json"))
	assert.Error(t, err)
}

func TestDecodeYAML_Malformed(t *testing.T) {
	_, err := DecodeYAML([]byte("content: [unclosed"))
	assert.Error(t, err)
}
