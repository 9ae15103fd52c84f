package wcag

import "fmt"

// Issue severities, matching the linter convention used by reporters.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// maxPairDimension caps the contrast cross product at 5 backgrounds by
// 5 texts. Large palettes would otherwise explode combinatorially; pairs
// beyond the cap are silently unaudited, a precision/cost trade-off rather
// than a correctness guarantee.
const maxPairDimension = 5

// ContrastIssue is a failing or borderline background/text pair.
type ContrastIssue struct {
	Severity   string  `json:"severity"`
	Background string  `json:"background"`
	Foreground string  `json:"foreground"`
	Ratio      float64 `json:"ratio"`
	Message    string  `json:"message"`
}

// ContrastPair is a background/text pair that passed AA.
type ContrastPair struct {
	Background string  `json:"background"`
	Foreground string  `json:"foreground"`
	Ratio      float64 `json:"ratio"`
	Level      Level   `json:"level"`
}

// PaletteAudit is the outcome of auditing a palette's cross product.
type PaletteAudit struct {
	Issues  []ContrastIssue `json:"issues"`
	Passing []ContrastPair  `json:"passing"`
}

// AuditPalette checks every background/text combination, capped at
// maxPairDimension per side. Failing AA normal text is an error; passing AA
// but failing AAA is a warning; everything else is recorded as passing.
func (a *Auditor) AuditPalette(backgrounds, texts []string) PaletteAudit {
	if len(backgrounds) > maxPairDimension {
		backgrounds = backgrounds[:maxPairDimension]
	}
	if len(texts) > maxPairDimension {
		texts = texts[:maxPairDimension]
	}

	var audit PaletteAudit
	for _, bg := range backgrounds {
		for _, fg := range texts {
			result := a.CheckWCAG(fg, bg)
			switch {
			case !result.AA.NormalText:
				audit.Issues = append(audit.Issues, ContrastIssue{
					Severity:   SeverityError,
					Background: bg,
					Foreground: fg,
					Ratio:      result.Ratio,
					Message: fmt.Sprintf("contrast %.2f:1 fails WCAG AA (needs %.1f:1)",
						result.Ratio, a.thresholds.AANormalText),
				})
			case !result.AAA.NormalText:
				audit.Issues = append(audit.Issues, ContrastIssue{
					Severity:   SeverityWarning,
					Background: bg,
					Foreground: fg,
					Ratio:      result.Ratio,
					Message: fmt.Sprintf("contrast %.2f:1 passes AA but fails AAA (needs %.1f:1)",
						result.Ratio, a.thresholds.AAANormalText),
				})
			default:
				audit.Passing = append(audit.Passing, ContrastPair{
					Background: bg,
					Foreground: fg,
					Ratio:      result.Ratio,
					Level:      a.ComplianceLevel(result.Ratio),
				})
			}
		}
	}
	return audit
}

// AuditPalette audits with DefaultThresholds.
func AuditPalette(backgrounds, texts []string) PaletteAudit {
	return defaultAuditor.AuditPalette(backgrounds, texts)
}
