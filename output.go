package tokendrift

import (
	"io"

	"github.com/tokendrift/tokendrift/internal/termstyle"
)

// OutputFormat represents the comparison output format
type OutputFormat string

const (
	// OutputIssues shows only errors/warnings in golangci-lint format (CI-friendly)
	OutputIssues OutputFormat = "issues"
	// OutputSummary shows statistics, categories, and impact only (weekly reports)
	OutputSummary OutputFormat = "summary"
	// OutputFull shows issues + statistics + color drift detail (interactive development)
	OutputFull OutputFormat = "full"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
	// OutputMarkdown generates a Markdown report (PR bodies, shareable reports)
	OutputMarkdown OutputFormat = "markdown"
)

// ReportOptions controls reporter presentation.
type ReportOptions struct {
	UseColors       bool // Enable color output (default: auto-detect)
	PrintValues     bool // Show token values with issues (default: true)
	PrintLinterName bool // Show (drift) suffix (default: true)
}

// DetermineOutputFormat selects the appropriate output format based on flags
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	// Explicit --quiet flag wins (exit code only)
	if quiet {
		return OutputIssues // Issues only, suppressed by the caller
	}

	switch formatFlag {
	case "issues":
		return OutputIssues
	case "summary":
		return OutputSummary
	case "full":
		return OutputFull
	case "json":
		return OutputJSON
	case "markdown", "md":
		return OutputMarkdown
	}

	// Default: issues only (clean, fast, consistent everywhere)
	return OutputIssues
}

// WriteOutput writes the comparison result in the specified format
func WriteOutput(w io.Writer, result *CompareResult, format OutputFormat, opts ReportOptions) error {
	useColors := termstyle.ShouldUseColors(opts.UseColors)

	switch format {
	case OutputSummary:
		verbose := NewVerboseReporter(w, useColors)
		verbose.PrintStatistics(result)
		verbose.PrintImpact(result)
		verbose.PrintCategories(result)

	case OutputFull:
		reporter := NewReporter(w, opts)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(result.Issues)

		verbose := NewVerboseReporter(w, useColors)
		verbose.PrintStatistics(result)
		verbose.PrintImpact(result)
		verbose.PrintCategories(result)
		verbose.PrintColorChanges(result)
		verbose.PrintFocusComparison(result)

	case OutputJSON:
		return WriteJSON(w, result)

	case OutputMarkdown:
		return WriteMarkdown(w, result)

	default: // OutputIssues
		reporter := NewReporter(w, opts)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(result.Issues)
	}

	return nil
}

// WriteAuditOutput writes an accessibility audit result.
func WriteAuditOutput(w io.Writer, result *AuditResult, format OutputFormat, opts ReportOptions) error {
	useColors := termstyle.ShouldUseColors(opts.UseColors)

	switch format {
	case OutputJSON:
		return WriteAuditJSON(w, result)

	case OutputSummary, OutputFull:
		reporter := NewReporter(w, opts)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(result.Issues)

		verbose := NewVerboseReporter(w, useColors)
		verbose.PrintPalette(result)
		verbose.PrintFocus(result)

	default: // OutputIssues
		reporter := NewReporter(w, opts)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(result.Issues)
	}

	return nil
}
