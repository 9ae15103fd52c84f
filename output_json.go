package tokendrift

import (
	"encoding/json"
	"io"
	"time"

	"github.com/tokendrift/tokendrift/structdiff"
	"github.com/tokendrift/tokendrift/wcag"
)

// JSONOutput represents the structured JSON export schema for comparisons
type JSONOutput struct {
	Version      string             `json:"version"`
	Timestamp    string             `json:"timestamp"`
	Summary      JSONSummary        `json:"summary"`
	Impact       structdiff.Impact  `json:"impact"`
	Categories   map[string]int     `json:"categories"`
	Changes      []structdiff.Entry `json:"changes"`
	ColorChanges []ColorChange      `json:"color_changes"`

	Focus  *wcag.FocusComparison `json:"focus,omitempty"`
	Issues []JSONIssue           `json:"issues"`
}

// JSONSummary contains high-level change and issue counts
type JSONSummary struct {
	TotalChanges int `json:"total_changes"`
	Added        int `json:"added"`
	Removed      int `json:"removed"`
	Changed      int `json:"changed"`
	TotalIssues  int `json:"total_issues"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
}

// JSONIssue represents a single reported issue
type JSONIssue struct {
	Path     string `json:"path"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Value    string `json:"value,omitempty"`
}

// JSONAuditOutput represents the structured JSON export schema for
// accessibility audits
type JSONAuditOutput struct {
	Version   string                     `json:"version"`
	Timestamp string                     `json:"timestamp"`
	Summary   JSONAuditSummary           `json:"summary"`
	Palette   wcag.PaletteAudit          `json:"palette"`
	Focus     map[string]wcag.FocusAudit `json:"focus"`
	Issues    []JSONIssue                `json:"issues"`
}

// JSONAuditSummary contains high-level audit counts
type JSONAuditSummary struct {
	Backgrounds  int `json:"backgrounds"`
	Texts        int `json:"texts"`
	PassingPairs int `json:"passing_pairs"`
	TotalIssues  int `json:"total_issues"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
}

// WriteJSON writes the comparison result as JSON
func WriteJSON(w io.Writer, result *CompareResult) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts CompareResult to JSONOutput
func buildJSONOutput(result *CompareResult) JSONOutput {
	errors, warnings := countSeverities(result.Issues)

	categories := make(map[string]int, len(result.Categories))
	for category, entries := range result.Categories {
		categories[string(category)] = len(entries)
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalChanges: result.TotalChanges,
			Added:        result.AddedCount,
			Removed:      result.RemovedCount,
			Changed:      result.ChangedCount,
			TotalIssues:  len(result.Issues),
			Errors:       errors,
			Warnings:     warnings,
		},
		Impact:       result.Impact,
		Categories:   categories,
		Changes:      result.Entries,
		ColorChanges: result.ColorChanges,
		Focus:        result.Focus,
		Issues:       buildJSONIssues(result.Issues),
	}
}

// WriteAuditJSON writes the audit result as JSON
func WriteAuditJSON(w io.Writer, result *AuditResult) error {
	errors, warnings := countSeverities(result.Issues)

	output := JSONAuditOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONAuditSummary{
			Backgrounds:  len(result.Backgrounds),
			Texts:        len(result.Texts),
			PassingPairs: len(result.Palette.Passing),
			TotalIssues:  len(result.Issues),
			Errors:       errors,
			Warnings:     warnings,
		},
		Palette: result.Palette,
		Focus:   result.Focus,
		Issues:  buildJSONIssues(result.Issues),
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func buildJSONIssues(issues []Issue) []JSONIssue {
	jsonIssues := make([]JSONIssue, len(issues))
	for i, issue := range issues {
		jsonIssues[i] = JSONIssue{
			Path:     issue.Path,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
			Value:    issue.Value,
		}
	}
	return jsonIssues
}

func countSeverities(issues []Issue) (errors, warnings int) {
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}
	return errors, warnings
}
