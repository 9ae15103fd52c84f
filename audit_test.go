package tokendrift

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokendrift/tokendrift/wcag"
)

func TestAuditDocumentPalette(t *testing.T) {
	doc := map[string]any{
		"colors": map[string]any{
			"background":  "#ffffff",
			"surfaceDark": "#111827",
			"textPrimary": "#000000",
			"textMuted":   "#767676",
		},
	}

	result := AuditDocument(doc, wcag.Thresholds{})

	// Sorted key order: background, surfaceDark, textMuted, textPrimary.
	assert.Equal(t, []string{"#ffffff", "#111827"}, result.Backgrounds)
	assert.Equal(t, []string{"#767676", "#000000"}, result.Texts)

	// Muted text fails AA on the dark surface and black barely registers
	// against it; muted-on-white passes AA but not AAA, which is only a
	// warning.
	assert.Len(t, result.Palette.Issues, 3)
	assert.Len(t, result.Palette.Passing, 1)
	assert.Equal(t, 2, result.ErrorCount)

	var warnings int
	for _, issue := range result.Issues {
		if issue.Severity == SeverityWarning {
			warnings++
		}
	}
	assert.Equal(t, 1, warnings)

	for _, issue := range result.Issues {
		assert.Equal(t, LinterContrast, issue.FromLinter)
		assert.Equal(t, "colors", issue.Path)
	}
}

func TestAuditDocumentFocusIndicators(t *testing.T) {
	doc := map[string]any{
		"colors": map[string]any{
			"background": "#ffffff",
		},
		"focusIndicators": map[string]any{
			"button": map[string]any{
				"outlineColor": "#0066cc",
				"outlineWidth": float64(2),
			},
			"link": map[string]any{
				"thickness": "1px",
			},
		},
	}

	result := AuditDocument(doc, wcag.Thresholds{})

	require.Len(t, result.Focus, 2)
	assert.True(t, result.Focus["button"].Passed)
	assert.False(t, result.Focus["link"].Passed)

	var focusIssues []Issue
	for _, issue := range result.Issues {
		if issue.FromLinter == LinterFocus {
			focusIssues = append(focusIssues, issue)
		}
	}
	require.Len(t, focusIssues, 2, "missing color error plus thin outline warning")
	for _, issue := range focusIssues {
		assert.Equal(t, "focusIndicators.link", issue.Path)
	}
}

func TestAuditDocumentEmptyDocument(t *testing.T) {
	result := AuditDocument(map[string]any{}, wcag.Thresholds{})

	assert.Empty(t, result.Backgrounds)
	assert.Empty(t, result.Texts)
	assert.Empty(t, result.Issues)
	assert.Empty(t, result.Focus)
	assert.Equal(t, 0, result.ErrorCount)
}

func TestCollectFocusIndicators(t *testing.T) {
	doc := map[string]any{
		"focusIndicators": map[string]any{
			"input": map[string]any{
				"borderColor": "#333333",
				"borderWidth": "3px",
				"boxShadow":   "0 0 0 2px #0066cc",
			},
			"skipped": "not a style map",
		},
	}

	indicators := CollectFocusIndicators(doc)
	require.Len(t, indicators, 1)

	ind := indicators["input"]
	assert.Equal(t, "#333333", ind.BorderColor)
	assert.InDelta(t, 3.0, ind.ThicknessPx, 1e-9)
	assert.True(t, ind.HasBoxShadow)
}

func TestAuditLoadsDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tokens.json")
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"colors": {"background": "#ffffff", "text": "#000000"}}`), 0o644))

	result, err := Audit(AuditConfig{DocumentPath: path})
	require.NoError(t, err)
	assert.Len(t, result.Palette.Passing, 1)
	assert.Empty(t, result.Issues)
}

func TestAuditMissingDocument(t *testing.T) {
	_, err := Audit(AuditConfig{DocumentPath: filepath.Join(t.TempDir(), "nope.json")})
	require.Error(t, err)
}
