package wcag

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"github.com/tokendrift/tokendrift/colorspace"
)

// FocusIndicator is a per-selector snapshot of focus styling: the visible
// outline or border color, its thickness, and whether a shadow ring is
// present.
type FocusIndicator struct {
	OutlineColor string  `json:"outlineColor,omitempty"`
	BorderColor  string  `json:"borderColor,omitempty"`
	ThicknessPx  float64 `json:"thicknessPx"`
	HasBoxShadow bool    `json:"hasBoxShadow"`
}

// Color returns the effective indicator color: the outline color when it
// canonicalizes, otherwise the border color. False means the indicator has
// no usable color at all.
func (f FocusIndicator) Color() (string, bool) {
	if hex, ok := colorspace.Normalize(f.OutlineColor); ok {
		return hex, true
	}
	if hex, ok := colorspace.Normalize(f.BorderColor); ok {
		return hex, true
	}
	return "", false
}

// FocusIssue is a single finding from a focus-indicator audit.
type FocusIssue struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// FocusAudit is the outcome of auditing one focus indicator.
type FocusAudit struct {
	Passed bool         `json:"passed"`
	Issues []FocusIssue `json:"issues"`
}

// AuditFocusIndicator checks a focus indicator against a background color.
// A missing outline/border color is an error regardless of other fields.
// Thickness under 1px is an error, 1px up to (but not including) 2px is a
// warning. Indicator contrast below the focus threshold is an error.
func (a *Auditor) AuditFocusIndicator(ind FocusIndicator, background string) FocusAudit {
	var audit FocusAudit

	color, hasColor := ind.Color()
	if !hasColor {
		audit.Issues = append(audit.Issues, FocusIssue{
			Severity: SeverityError,
			Message:  "focus indicator has no outline or border color",
		})
	}

	switch {
	case ind.ThicknessPx < 1:
		audit.Issues = append(audit.Issues, FocusIssue{
			Severity: SeverityError,
			Message:  fmt.Sprintf("focus indicator thickness %gpx is below the 1px minimum", ind.ThicknessPx),
		})
	case ind.ThicknessPx < 2:
		audit.Issues = append(audit.Issues, FocusIssue{
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("focus indicator thickness %gpx is thinner than the recommended 2px", ind.ThicknessPx),
		})
	}

	if hasColor {
		if ratio := ContrastRatio(color, background); ratio < a.thresholds.FocusIndicator {
			audit.Issues = append(audit.Issues, FocusIssue{
				Severity: SeverityError,
				Message: fmt.Sprintf("focus indicator contrast %.2f:1 against background is below %.1f:1",
					ratio, a.thresholds.FocusIndicator),
			})
		}
	}

	audit.Passed = hasColor && len(audit.Issues) == 0
	return audit
}

// AuditFocusIndicator audits with DefaultThresholds.
func AuditFocusIndicator(ind FocusIndicator, background string) FocusAudit {
	return defaultAuditor.AuditFocusIndicator(ind, background)
}

// FocusMatch records a selector whose indicator color matches the reference.
type FocusMatch struct {
	Selector string  `json:"selector"`
	DeltaE   float64 `json:"deltaE"`
}

// FocusDifference records a selector whose indicator color drifted from the
// reference.
type FocusDifference struct {
	Selector       string  `json:"selector"`
	ProjectColor   string  `json:"projectColor"`
	ReferenceColor string  `json:"referenceColor"`
	DeltaE         float64 `json:"deltaE"`
}

// MarshalJSON renders an incomparable distance as the string "incomparable";
// encoding/json cannot carry the +Inf sentinel.
func (d FocusDifference) MarshalJSON() ([]byte, error) {
	type plain FocusDifference
	if !colorspace.IsIncomparable(d.DeltaE) {
		return json.Marshal(plain(d))
	}
	return json.Marshal(struct {
		plain
		DeltaE string `json:"deltaE"`
	}{plain(d), "incomparable"})
}

// FocusComparison summarizes project focus indicators against a reference
// set. Score is the rounded percentage of reference selectors matched.
type FocusComparison struct {
	Matches     []FocusMatch      `json:"matches"`
	Differences []FocusDifference `json:"differences"`
	Missing     []string          `json:"missing"`
	Score       int               `json:"score"`
}

// CompareFocusIndicators walks every selector in the reference set. A
// selector absent from the project is missing; otherwise the indicator
// colors are compared with ΔE2000 and a distance below the similarity
// threshold counts as a match. An empty reference is vacuously compliant
// with score 100.
func (a *Auditor) CompareFocusIndicators(project, reference map[string]FocusIndicator) FocusComparison {
	comparison := FocusComparison{Score: 100}
	if len(reference) == 0 {
		return comparison
	}

	selectors := make([]string, 0, len(reference))
	for sel := range reference {
		selectors = append(selectors, sel)
	}
	sort.Strings(selectors)

	for _, sel := range selectors {
		projInd, ok := project[sel]
		if !ok {
			comparison.Missing = append(comparison.Missing, sel)
			continue
		}

		refColor, _ := reference[sel].Color()
		projColor, _ := projInd.Color()
		delta := colorspace.DeltaE2000(projColor, refColor)
		if delta < colorspace.DefaultSimilarThreshold {
			comparison.Matches = append(comparison.Matches, FocusMatch{Selector: sel, DeltaE: delta})
		} else {
			comparison.Differences = append(comparison.Differences, FocusDifference{
				Selector:       sel,
				ProjectColor:   projColor,
				ReferenceColor: refColor,
				DeltaE:         delta,
			})
		}
	}

	comparison.Score = int(math.Round(100 * float64(len(comparison.Matches)) / float64(len(reference))))
	return comparison
}

// CompareFocusIndicators compares with DefaultThresholds.
func CompareFocusIndicators(project, reference map[string]FocusIndicator) FocusComparison {
	return defaultAuditor.CompareFocusIndicators(project, reference)
}
