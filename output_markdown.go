package tokendrift

import (
	"fmt"
	"io"
	"sort"

	"github.com/tokendrift/tokendrift/colorspace"
	"github.com/tokendrift/tokendrift/structdiff"
)

// impactEmoji maps impact levels to a report header marker
var impactEmoji = map[structdiff.ImpactLevel]string{
	structdiff.ImpactNone:     "✅",
	structdiff.ImpactLow:      "✅",
	structdiff.ImpactMedium:   "🟡",
	structdiff.ImpactHigh:     "🟠",
	structdiff.ImpactCritical: "🔴",
}

// WriteMarkdown writes the comparison result as a Markdown report suitable
// for PR bodies.
func WriteMarkdown(w io.Writer, result *CompareResult) error {
	fmt.Fprintln(w, "# Design Token Report")
	fmt.Fprintln(w, "")

	label := result.Impact.Label
	if label == "" {
		label = "no changes"
	}
	fmt.Fprintf(w, "%s **Impact: %s** (%s)\n", impactEmoji[result.Impact.Level],
		result.Impact.Level, label)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "## Summary")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "| Kind | Count |")
	fmt.Fprintln(w, "|------|-------|")
	fmt.Fprintf(w, "| Added | %d |\n", result.AddedCount)
	fmt.Fprintf(w, "| Removed | %d |\n", result.RemovedCount)
	fmt.Fprintf(w, "| Changed | %d |\n", result.ChangedCount)
	fmt.Fprintf(w, "| **Total** | **%d** |\n", result.TotalChanges)

	writeMarkdownCategories(w, result)
	writeMarkdownColorChanges(w, result)
	writeMarkdownFocus(w, result)
	writeMarkdownIssues(w, result)

	return nil
}

func writeMarkdownCategories(w io.Writer, result *CompareResult) {
	if len(result.Categories) == 0 {
		return
	}

	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "## Changes by Category")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "| Category | Changes |")
	fmt.Fprintln(w, "|----------|---------|")

	// Fixed category order keeps reports diffable across runs.
	for _, category := range structdiff.Categories {
		entries, ok := result.Categories[category]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "| %s | %d |\n", category, len(entries))
	}
}

func writeMarkdownColorChanges(w io.Writer, result *CompareResult) {
	if len(result.ColorChanges) == 0 {
		return
	}

	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "## Color Drift")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "| Token | Before | After | ΔE2000 | Verdict |")
	fmt.Fprintln(w, "|-------|--------|-------|--------|---------|")

	changes := make([]ColorChange, len(result.ColorChanges))
	copy(changes, result.ColorChanges)
	sort.Slice(changes, func(i, j int) bool {
		if changes[i].DeltaE != changes[j].DeltaE {
			return changes[i].DeltaE > changes[j].DeltaE
		}
		return changes[i].Path < changes[j].Path
	})

	for _, change := range changes {
		delta := fmt.Sprintf("%.2f", change.DeltaE)
		verdict := "similar"
		switch {
		case colorspace.IsIncomparable(change.DeltaE):
			delta = "—"
			verdict = "unparseable"
		case !change.Similar:
			verdict = "drifted"
		}
		fmt.Fprintf(w, "| `%s` | `%s` | `%s` | %s | %s |\n",
			change.Path, change.Before, change.After, delta, verdict)
	}
}

func writeMarkdownFocus(w io.Writer, result *CompareResult) {
	if result.Focus == nil {
		return
	}

	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "## Focus Indicators")
	fmt.Fprintln(w, "")
	fmt.Fprintf(w, "Score: **%d%%** (%d matched, %d drifted, %d missing)\n",
		result.Focus.Score, len(result.Focus.Matches),
		len(result.Focus.Differences), len(result.Focus.Missing))

	for _, diff := range result.Focus.Differences {
		fmt.Fprintf(w, "- `%s`: `%s` → `%s` (ΔE %.1f)\n",
			diff.Selector, diff.ReferenceColor, diff.ProjectColor, diff.DeltaE)
	}
	for _, missing := range result.Focus.Missing {
		fmt.Fprintf(w, "- `%s`: missing from project\n", missing)
	}
}

func writeMarkdownIssues(w io.Writer, result *CompareResult) {
	if len(result.Issues) == 0 {
		return
	}

	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "## Issues")
	fmt.Fprintln(w, "")

	issues := make([]Issue, len(result.Issues))
	copy(issues, result.Issues)
	sort.Slice(issues, func(i, j int) bool {
		if issues[i].Severity != issues[j].Severity {
			return issues[i].Severity < issues[j].Severity
		}
		return issues[i].Path < issues[j].Path
	})

	for _, issue := range issues {
		marker := "⚠️"
		if issue.Severity == SeverityError {
			marker = "❌"
		}
		fmt.Fprintf(w, "- %s `%s`: %s\n", marker, issue.Path, issue.Text)
	}
}
