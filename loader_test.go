package tokendrift

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDocumentJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tokens.json")
	content := `{
  "colors": {
    "primary": "#0066cc",
    "palette": ["#ff0000", "#00ff00"]
  },
  "spacing": {"base": 4}
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	doc, err := LoadDocument(path)
	require.NoError(t, err)

	colors, ok := doc["colors"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "#0066cc", colors["primary"])

	palette, ok := colors["palette"].([]any)
	require.True(t, ok)
	assert.Len(t, palette, 2)

	spacing, ok := doc["spacing"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(4), spacing["base"])
}

func TestLoadDocumentYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tokens.yaml")
	content := `colors:
  primary: "#0066cc"
  background: "#ffffff"
typography:
  body:
    fontSize: 16
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	doc, err := LoadDocument(path)
	require.NoError(t, err)

	colors, ok := doc["colors"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "#0066cc", colors["primary"])

	typography, ok := doc["typography"].(map[string]any)
	require.True(t, ok)
	body, ok := typography["body"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 16, body["fontSize"])
}

func TestLoadDocumentMissingFile(t *testing.T) {
	_, err := LoadDocument(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read document")
}

func TestLoadDocumentInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadDocument(path)
	require.Error(t, err)
}

func TestParseYAMLDocumentTopLevelScalar(t *testing.T) {
	_, err := ParseYAMLDocument([]byte("just a string"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "top level must be a mapping")
}

func TestWriteDocumentRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "tokens.json")

	doc := map[string]any{
		"colors": map[string]any{"primary": "#336699"},
	}
	require.NoError(t, WriteDocument(path, doc))

	loaded, err := LoadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, doc, loaded)
}
