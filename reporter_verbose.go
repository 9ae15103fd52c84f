package tokendrift

import (
	"fmt"
	"io"
	"sort"

	"github.com/tokendrift/tokendrift/colorspace"
	"github.com/tokendrift/tokendrift/internal/termstyle"
	"github.com/tokendrift/tokendrift/structdiff"
)

// VerboseReporter handles detailed statistics and drift breakdowns
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintStatistics outputs the change counts of a comparison
func (r *VerboseReporter) PrintStatistics(result *CompareResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, termstyle.Render(termstyle.Cyan, "Token Drift Statistics", r.useColors))
	fmt.Fprintln(r.w, "------------------------")

	fmt.Fprintf(r.w, "Total Changes:    %d\n", result.TotalChanges)
	fmt.Fprintf(r.w, "Added Tokens:     %d\n", result.AddedCount)
	fmt.Fprintf(r.w, "Removed Tokens:   %d\n", result.RemovedCount)
	fmt.Fprintf(r.w, "Changed Tokens:   %d\n", result.ChangedCount)
	fmt.Fprintf(r.w, "Color Changes:    %d\n", len(result.ColorChanges))
}

// PrintImpact shows the derived impact level and label
func (r *VerboseReporter) PrintImpact(result *CompareResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, termstyle.Render(termstyle.Cyan, "Impact", r.useColors))
	fmt.Fprintln(r.w, "--------")

	style := termstyle.Green
	switch result.Impact.Level {
	case structdiff.ImpactCritical, structdiff.ImpactHigh:
		style = termstyle.Red
	case structdiff.ImpactMedium:
		style = termstyle.Yellow
	}

	fmt.Fprintf(r.w, "Level: %s\n",
		termstyle.Render(style, string(result.Impact.Level), r.useColors))
	if result.Impact.Label != "" {
		fmt.Fprintf(r.w, "Label: %s\n", result.Impact.Label)
	}
}

// PrintCategories shows the change count per token category, most changed
// first
func (r *VerboseReporter) PrintCategories(result *CompareResult) {
	if len(result.Categories) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, termstyle.Render(termstyle.Cyan, "Changes by Category", r.useColors))
	fmt.Fprintln(r.w, "---------------------")

	categories := make([]structdiff.Category, 0, len(result.Categories))
	for category := range result.Categories {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		ci, cj := len(result.Categories[categories[i]]), len(result.Categories[categories[j]])
		if ci != cj {
			return ci > cj
		}
		return categories[i] < categories[j]
	})

	for _, category := range categories {
		fmt.Fprintf(r.w, "%-18s %d\n", category, len(result.Categories[category]))
	}
}

// PrintColorChanges shows every changed color token with its perceptual
// distance, largest drift first
func (r *VerboseReporter) PrintColorChanges(result *CompareResult) {
	if len(result.ColorChanges) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, termstyle.Render(termstyle.Cyan, "Color Drift", r.useColors))
	fmt.Fprintln(r.w, "-------------")

	changes := make([]ColorChange, len(result.ColorChanges))
	copy(changes, result.ColorChanges)
	sort.Slice(changes, func(i, j int) bool {
		if changes[i].DeltaE != changes[j].DeltaE {
			return changes[i].DeltaE > changes[j].DeltaE
		}
		return changes[i].Path < changes[j].Path
	})

	for _, change := range changes {
		style := termstyle.Green
		delta := fmt.Sprintf("ΔE %.1f", change.DeltaE)
		switch {
		case colorspace.IsIncomparable(change.DeltaE):
			style = termstyle.Red
			delta = "unparseable"
		case !change.Similar:
			style = termstyle.Yellow
		}
		fmt.Fprintf(r.w, "%s: %s → %s (%s)\n",
			change.Path, change.Before, change.After,
			termstyle.Render(style, delta, r.useColors))
	}
}

// PrintFocusComparison shows how the project's focus indicators track the
// reference set
func (r *VerboseReporter) PrintFocusComparison(result *CompareResult) {
	if result.Focus == nil {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, termstyle.Render(termstyle.Cyan, "Focus Indicator Drift", r.useColors))
	fmt.Fprintln(r.w, "-----------------------")

	scoreStyle := termstyle.Green
	if result.Focus.Score < 100 {
		scoreStyle = termstyle.Yellow
	}
	fmt.Fprintf(r.w, "Score: %s\n",
		termstyle.Render(scoreStyle, fmt.Sprintf("%d%%", result.Focus.Score), r.useColors))

	for _, match := range result.Focus.Matches {
		fmt.Fprintf(r.w, "%s %s (ΔE %.1f)\n",
			termstyle.Render(termstyle.Green, "✓", r.useColors), match.Selector, match.DeltaE)
	}
	for _, diff := range result.Focus.Differences {
		fmt.Fprintf(r.w, "%s %s: %s → %s (ΔE %.1f)\n",
			termstyle.Render(termstyle.Yellow, "~", r.useColors),
			diff.Selector, diff.ReferenceColor, diff.ProjectColor, diff.DeltaE)
	}
	for _, missing := range result.Focus.Missing {
		fmt.Fprintf(r.w, "%s %s (missing)\n",
			termstyle.Render(termstyle.Red, "✗", r.useColors), missing)
	}
}

// PrintPalette shows the contrast audit of the background/text cross product
func (r *VerboseReporter) PrintPalette(result *AuditResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, termstyle.Render(termstyle.Cyan, "Contrast Audit", r.useColors))
	fmt.Fprintln(r.w, "----------------")

	fmt.Fprintf(r.w, "Backgrounds: %d\n", len(result.Backgrounds))
	fmt.Fprintf(r.w, "Text Colors: %d\n", len(result.Texts))
	fmt.Fprintf(r.w, "Passing:     %d\n", len(result.Palette.Passing))
	fmt.Fprintf(r.w, "Failing:     %d\n", len(result.Palette.Issues))

	for _, pair := range result.Palette.Passing {
		fmt.Fprintf(r.w, "%s %s on %s (%.2f:1, %s)\n",
			termstyle.Render(termstyle.Green, "✓", r.useColors),
			pair.Foreground, pair.Background, pair.Ratio, pair.Level)
	}
}

// PrintFocus shows the focus-indicator audits, selectors sorted
func (r *VerboseReporter) PrintFocus(result *AuditResult) {
	if len(result.Focus) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, termstyle.Render(termstyle.Cyan, "Focus Indicators", r.useColors))
	fmt.Fprintln(r.w, "------------------")

	selectors := make([]string, 0, len(result.Focus))
	for sel := range result.Focus {
		selectors = append(selectors, sel)
	}
	sort.Strings(selectors)

	for _, sel := range selectors {
		audit := result.Focus[sel]
		mark := termstyle.Render(termstyle.Green, "✓", r.useColors)
		if !audit.Passed {
			mark = termstyle.Render(termstyle.Red, "✗", r.useColors)
		}
		fmt.Fprintf(r.w, "%s %s\n", mark, sel)
	}
}
