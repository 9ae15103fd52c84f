package tokendrift

import (
	"fmt"
	"io"
	"sort"

	"github.com/tokendrift/tokendrift/internal/termstyle"
)

// Reporter prints issues in golangci-lint style, addressed by token path.
type Reporter struct {
	w               io.Writer
	useColors       bool
	printValues     bool
	printLinterName bool
}

// NewReporter creates a reporter with the given presentation options.
func NewReporter(w io.Writer, opts ReportOptions) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       termstyle.ShouldUseColors(opts.UseColors),
		printValues:     opts.PrintValues,
		printLinterName: opts.PrintLinterName,
	}
}

// PrintIssues outputs issues sorted by path, then severity.
func (r *Reporter) PrintIssues(issues []Issue) {
	sorted := make([]Issue, len(issues))
	copy(sorted, issues)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Path != sorted[j].Path {
			return sorted[i].Path < sorted[j].Path
		}
		return sorted[i].Severity < sorted[j].Severity
	})

	for _, issue := range sorted {
		r.printIssue(issue)
	}
}

// printIssue formats a single issue: path: message (linter)
func (r *Reporter) printIssue(issue Issue) {
	location := issue.Path + ":"

	linterSuffix := ""
	if r.printLinterName {
		linterSuffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		termstyle.Render(termstyle.Cyan, location, r.useColors),
		issue.Text,
		termstyle.Render(termstyle.Gray, linterSuffix, r.useColors))

	if r.printValues && issue.Value != "" {
		fmt.Fprintf(r.w, "\t%s\n", issue.Value)
	}
}

// PrintSummary outputs the issue count summary grouped by linter.
func (r *Reporter) PrintSummary(issues []Issue) {
	var errors, warnings int
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}

	fmt.Fprintln(r.w, "")
	if errors > 0 && warnings > 0 {
		fmt.Fprintf(r.w, "%s (%s, %s):\n",
			pluralizeCount(len(issues), "issue", "issues"),
			pluralizeCount(errors, "error", "errors"),
			pluralizeCount(warnings, "warning", "warnings"))
	} else {
		fmt.Fprintf(r.w, "%s:\n", pluralizeCount(len(issues), "issue", "issues"))
	}

	linterCounts := make(map[string]int)
	for _, issue := range issues {
		linterCounts[issue.FromLinter]++
	}
	linters := make([]string, 0, len(linterCounts))
	for linter := range linterCounts {
		linters = append(linters, linter)
	}
	sort.Strings(linters)
	for _, linter := range linters {
		fmt.Fprintf(r.w, "* %s: %d\n", linter, linterCounts[linter])
	}

	if len(issues) > 0 {
		fmt.Fprintln(r.w, "")
		fmt.Fprintln(r.w, termstyle.Render(termstyle.Gray,
			"Hint: run with --output-format full for statistics and drift detail", r.useColors))
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
