package tokendrift

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokendrift/tokendrift/wcag"
)

func TestDetermineOutputFormat(t *testing.T) {
	tests := []struct {
		name       string
		formatFlag string
		quiet      bool
		expected   OutputFormat
	}{
		{
			name:       "explicit quiet flag",
			formatFlag: "full",
			quiet:      true,
			expected:   OutputIssues,
		},
		{
			name:       "explicit issues format",
			formatFlag: "issues",
			expected:   OutputIssues,
		},
		{
			name:       "explicit summary format",
			formatFlag: "summary",
			expected:   OutputSummary,
		},
		{
			name:       "explicit full format",
			formatFlag: "full",
			expected:   OutputFull,
		},
		{
			name:       "explicit json format",
			formatFlag: "json",
			expected:   OutputJSON,
		},
		{
			name:       "explicit markdown format",
			formatFlag: "markdown",
			expected:   OutputMarkdown,
		},
		{
			name:       "markdown shorthand (md)",
			formatFlag: "md",
			expected:   OutputMarkdown,
		},
		{
			name:       "unknown format falls back to issues",
			formatFlag: "xml",
			expected:   OutputIssues,
		},
		{
			name:     "empty format defaults to issues",
			expected: OutputIssues,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetermineOutputFormat(tt.formatFlag, tt.quiet))
		})
	}
}

func driftResult() *CompareResult {
	reference := map[string]any{
		"colors":  map[string]any{"primary": "#0066cc", "accent": "#ff0000"},
		"spacing": map[string]any{"base": float64(4)},
	}
	project := map[string]any{
		"colors":  map[string]any{"primary": "#0066cc", "accent": "#00ff00"},
		"spacing": map[string]any{"base": float64(8)},
	}
	return CompareDocuments(project, reference, CompareConfig{})
}

func TestWriteOutputIssuesFormat(t *testing.T) {
	var buf bytes.Buffer
	opts := ReportOptions{PrintLinterName: true}

	err := WriteOutput(&buf, driftResult(), OutputIssues, opts)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "colors.accent:")
	assert.Contains(t, out, "(drift)")
	assert.Contains(t, out, "1 issue")
}

func TestWriteOutputFullFormat(t *testing.T) {
	var buf bytes.Buffer

	err := WriteOutput(&buf, driftResult(), OutputFull, ReportOptions{})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Token Drift Statistics")
	assert.Contains(t, out, "Impact")
	assert.Contains(t, out, "Changes by Category")
	assert.Contains(t, out, "Color Drift")
}

func TestWriteJSONSchema(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, driftResult()))

	var decoded JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "1.0", decoded.Version)
	assert.NotEmpty(t, decoded.Timestamp)
	assert.Equal(t, 2, decoded.Summary.TotalChanges)
	assert.Equal(t, 2, decoded.Summary.Changed)
	assert.Equal(t, 1, decoded.Summary.Warnings)
	assert.Equal(t, 1, decoded.Categories["colors"])
	assert.Equal(t, 1, decoded.Categories["spacing"])
	require.Len(t, decoded.ColorChanges, 1)
	assert.Equal(t, "colors.accent", decoded.ColorChanges[0].Path)
}

func TestWriteJSONIncomparableColor(t *testing.T) {
	reference := map[string]any{"colors": map[string]any{"accent": "#0066cc"}}
	project := map[string]any{"colors": map[string]any{"accent": "oklch(0.7 0.1 200)"}}
	result := CompareDocuments(project, reference, CompareConfig{})

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, result))
	assert.Contains(t, buf.String(), `"deltaE": "incomparable"`)

	buf.Reset()
	require.NoError(t, WriteMarkdown(&buf, result))
	assert.Contains(t, buf.String(), "unparseable")
}

func TestWriteMarkdownReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, driftResult()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "# Design Token Report"))
	assert.Contains(t, out, "| Changed | 2 |")
	assert.Contains(t, out, "## Color Drift")
	assert.Contains(t, out, "`colors.accent`")
	assert.Contains(t, out, "## Issues")
}

func TestReporterSortsByPath(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf, ReportOptions{})

	reporter.PrintIssues([]Issue{
		{Path: "colors.zebra", Text: "second", FromLinter: LinterDrift, Severity: SeverityWarning},
		{Path: "colors.apple", Text: "first", FromLinter: LinterDrift, Severity: SeverityWarning},
	})

	out := buf.String()
	assert.Less(t, strings.Index(out, "colors.apple"), strings.Index(out, "colors.zebra"))
}

func TestReporterPrintsValues(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf, ReportOptions{PrintValues: true})

	reporter.PrintIssues([]Issue{
		{Path: "colors.accent", Text: "drifted", FromLinter: LinterDrift,
			Severity: SeverityWarning, Value: "#00ff00"},
	})

	assert.Contains(t, buf.String(), "\t#00ff00")
}

func TestReporterSummaryCounts(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf, ReportOptions{})

	reporter.PrintSummary([]Issue{
		{FromLinter: LinterDrift, Severity: SeverityWarning},
		{FromLinter: LinterContrast, Severity: SeverityError},
		{FromLinter: LinterContrast, Severity: SeverityError},
	})

	out := buf.String()
	assert.Contains(t, out, "3 issues")
	assert.Contains(t, out, "2 errors")
	assert.Contains(t, out, "1 warning")
	assert.Contains(t, out, "* contrast: 2")
	assert.Contains(t, out, "* drift: 1")
}

func TestWriteAuditOutputJSON(t *testing.T) {
	doc := map[string]any{
		"colors": map[string]any{
			"background": "#ffffff",
			"text":       "#000000",
		},
	}
	result := AuditDocument(doc, wcag.DefaultThresholds)

	var buf bytes.Buffer
	require.NoError(t, WriteAuditOutput(&buf, result, OutputJSON, ReportOptions{}))

	var decoded JSONAuditOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 1, decoded.Summary.Backgrounds)
	assert.Equal(t, 1, decoded.Summary.PassingPairs)
	assert.Equal(t, 0, decoded.Summary.TotalIssues)
}
