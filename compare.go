package tokendrift

import (
	"encoding/json"
	"fmt"

	"github.com/tokendrift/tokendrift/colorspace"
	"github.com/tokendrift/tokendrift/structdiff"
	"github.com/tokendrift/tokendrift/wcag"
)

// CompareConfig holds comparison configuration.
type CompareConfig struct {
	ProjectPath   string // Token document for the project under inspection
	ReferencePath string // Reference token document to compare against

	// SimilarityThreshold is the ΔE2000 distance above which a changed
	// color token is reported as drift. Zero means the default.
	SimilarityThreshold float64

	// Policy overrides the impact thresholds. Zero value means the default
	// policy.
	Policy structdiff.Policy

	Verbose bool
}

// ColorChange annotates a changed color token with its perceptual distance.
type ColorChange struct {
	Path    string  `json:"path"`
	Before  string  `json:"before"`
	After   string  `json:"after"`
	DeltaE  float64 `json:"deltaE"`
	Similar bool    `json:"similar"`
}

// MarshalJSON renders an incomparable distance as the string "incomparable";
// encoding/json cannot carry the +Inf sentinel.
func (c ColorChange) MarshalJSON() ([]byte, error) {
	type plain ColorChange
	if !colorspace.IsIncomparable(c.DeltaE) {
		return json.Marshal(plain(c))
	}
	return json.Marshal(struct {
		plain
		DeltaE string `json:"deltaE"`
	}{plain(c), "incomparable"})
}

// CompareResult contains the comparison analysis: the raw change list, its
// categorization and impact, per-color perceptual annotations, and issues in
// reporting shape.
type CompareResult struct {
	// Statistics
	TotalChanges int
	AddedCount   int
	RemovedCount int
	ChangedCount int

	Entries    []structdiff.Entry
	Categories map[structdiff.Category][]structdiff.Entry
	Impact     structdiff.Impact

	ColorChanges []ColorChange

	// Focus is set when either document declares focus indicators.
	Focus *wcag.FocusComparison

	Issues           []Issue
	IssuesByCategory map[string][]Issue // Grouped by severity for stats
	ErrorCount       int
}

// Compare loads the project and reference documents and diffs the project
// against the reference: added means present in the project but not the
// reference.
func Compare(config CompareConfig) (*CompareResult, error) {
	reference, err := LoadDocument(config.ReferencePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load reference document: %w", err)
	}

	project, err := LoadDocument(config.ProjectPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load project document: %w", err)
	}

	if config.Verbose {
		fmt.Printf("Comparing %s against %s\n", config.ProjectPath, config.ReferencePath)
	}

	return CompareDocuments(project, reference, config), nil
}

// CompareDocuments is the pure core of Compare, usable when the caller
// already holds both documents (watch mode, tests).
func CompareDocuments(project, reference map[string]any, config CompareConfig) *CompareResult {
	threshold := config.SimilarityThreshold
	if threshold <= 0 {
		threshold = colorspace.DefaultSimilarThreshold
	}
	policy := config.Policy
	if policy == (structdiff.Policy{}) {
		policy = structdiff.DefaultPolicy
	}

	entries := structdiff.Diff(reference, project)

	result := &CompareResult{
		TotalChanges: len(entries),
		Entries:      entries,
		Categories:   structdiff.Categorize(entries),
		Impact:       policy.Classify(entries),
	}

	for _, entry := range entries {
		switch entry.Kind {
		case structdiff.Added:
			result.AddedCount++
		case structdiff.Removed:
			result.RemovedCount++
		case structdiff.Changed:
			result.ChangedCount++
			result.annotateColorChange(entry, threshold)
		}
	}

	projectFocus := CollectFocusIndicators(project)
	referenceFocus := CollectFocusIndicators(reference)
	if len(projectFocus) > 0 || len(referenceFocus) > 0 {
		comparison := wcag.CompareFocusIndicators(projectFocus, referenceFocus)
		result.Focus = &comparison
		for _, missing := range comparison.Missing {
			result.Issues = append(result.Issues, Issue{
				FromLinter: LinterFocus,
				Text:       "focus indicator removed from project",
				Severity:   SeverityError,
				Path:       string(structdiff.CategoryFocusIndicators) + "." + missing,
			})
		}
	}

	result.IssuesByCategory = make(map[string][]Issue)
	for _, issue := range result.Issues {
		result.IssuesByCategory[issue.Severity] = append(result.IssuesByCategory[issue.Severity], issue)
		if issue.Severity == SeverityError {
			result.ErrorCount++
		}
	}

	return result
}

// annotateColorChange computes the perceptual distance for a changed entry
// whose sides look like colors, recording a ColorChange and, when the drift
// is visible, an issue.
func (r *CompareResult) annotateColorChange(entry structdiff.Entry, threshold float64) {
	before, beforeOK := asColorString(entry.Before)
	after, afterOK := asColorString(entry.After)
	if !beforeOK && !afterOK {
		return
	}

	delta := colorspace.DeltaE2000(before, after)
	change := ColorChange{
		Path:    entry.Path,
		Before:  before,
		After:   after,
		DeltaE:  delta,
		Similar: delta < threshold,
	}
	r.ColorChanges = append(r.ColorChanges, change)

	switch {
	case colorspace.IsIncomparable(delta):
		// One side stopped being a parseable color: worse than drift.
		broken := after
		if _, ok := colorspace.Normalize(after); ok {
			broken = before
		}
		r.Issues = append(r.Issues, Issue{
			FromLinter: LinterDrift,
			Text:       fmt.Sprintf(IssueParseFailure, broken),
			Severity:   SeverityError,
			Path:       entry.Path,
			Value:      broken,
		})
	case !change.Similar:
		r.Issues = append(r.Issues, Issue{
			FromLinter: LinterDrift,
			Text: fmt.Sprintf("color drifted from %s to %s (ΔE %.1f, threshold %.1f)",
				before, after, delta, threshold),
			Severity: SeverityWarning,
			Path:     entry.Path,
			Value:    after,
		})
	}
}

// asColorString reports whether a leaf value is a string that canonicalizes
// as a color, returning the raw string either way so incomparable pairs can
// still be reported.
func asColorString(v any) (string, bool) {
	s, isString := v.(string)
	if !isString {
		return "", false
	}
	_, ok := colorspace.Normalize(s)
	return s, ok
}
