// Package wcag audits color pairs and focus indicators against the Web
// Content Accessibility Guidelines.
//
// The package computes relative luminance and contrast ratios from any color
// encoding colorspace.Normalize accepts, grades ratios against the WCAG AA
// and AAA threshold tables, and audits focus-indicator styling for keyboard
// navigability. Thresholds live in a Thresholds value handed to an Auditor
// at construction, so a stricter policy can be swapped in without touching
// the formulas. All operations are pure and safe for concurrent use.
package wcag

import (
	"math"

	"github.com/tokendrift/tokendrift/colorspace"
)

// Thresholds is the contrast-ratio table an Auditor grades against.
type Thresholds struct {
	AANormalText   float64
	AALargeText    float64
	AAUIComponents float64
	AAANormalText  float64
	AAALargeText   float64
	FocusIndicator float64
}

// DefaultThresholds is the WCAG 2.1 table.
var DefaultThresholds = Thresholds{
	AANormalText:   4.5,
	AALargeText:    3.0,
	AAUIComponents: 3.0,
	AAANormalText:  7.0,
	AAALargeText:   4.5,
	FocusIndicator: 3.0,
}

// Level is a coarse compliance grade for a contrast ratio.
type Level string

// Compliance levels in descending order of strictness.
const (
	LevelAAA     Level = "AAA"
	LevelAA      Level = "AA"
	LevelAALarge Level = "AA-large"
	LevelFail    Level = "Fail"
)

// Result reports a contrast ratio against every threshold tier at once.
type Result struct {
	Ratio float64 `json:"ratio"`
	AA    TierAA  `json:"aa"`
	AAA   TierAAA `json:"aaa"`
}

// TierAA holds the AA pass/fail booleans.
type TierAA struct {
	NormalText   bool `json:"normalText"`
	LargeText    bool `json:"largeText"`
	UIComponents bool `json:"uiComponents"`
}

// TierAAA holds the AAA pass/fail booleans.
type TierAAA struct {
	NormalText bool `json:"normalText"`
	LargeText  bool `json:"largeText"`
}

// Auditor grades contrast and focus indicators against one threshold table.
type Auditor struct {
	thresholds Thresholds
}

// New returns an Auditor using the given thresholds.
func New(thresholds Thresholds) *Auditor {
	return &Auditor{thresholds: thresholds}
}

var defaultAuditor = New(DefaultThresholds)

// RelativeLuminance computes WCAG relative luminance in [0,1]: gamma-decode
// each sRGB channel, then weight by 0.2126/0.7152/0.0722.
//
// An unparseable color yields 0 (the blackest possible value) rather than
// an error, so audit pipelines stay total. This can understate contrast
// failures against dark backgrounds; callers that need to distinguish
// "black" from "broken" should run colorspace.Normalize first.
func RelativeLuminance(color string) float64 {
	hex, ok := colorspace.Normalize(color)
	if !ok {
		return 0
	}
	rgb, _ := colorspace.ToRGB(hex)

	r := wcagDecode(float64(rgb.R) / 255)
	g := wcagDecode(float64(rgb.G) / 255)
	b := wcagDecode(float64(rgb.B) / 255)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// wcagDecode linearizes a channel using the WCAG 2.x constants. The guide
// uses 0.03928 where the sRGB standard uses 0.04045; the discrepancy is
// specified behavior, not a typo.
func wcagDecode(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio computes (L_lighter + 0.05) / (L_darker + 0.05), which is
// symmetric in its arguments and ranges from 1 (identical) to 21
// (black on white).
func ContrastRatio(colorA, colorB string) float64 {
	la := RelativeLuminance(colorA)
	lb := RelativeLuminance(colorB)
	lighter := math.Max(la, lb)
	darker := math.Min(la, lb)
	return (lighter + 0.05) / (darker + 0.05)
}

// CheckWCAG computes the contrast ratio of a foreground/background pair once
// and compares it against every tier of the auditor's threshold table.
func (a *Auditor) CheckWCAG(fg, bg string) Result {
	ratio := ContrastRatio(fg, bg)
	return Result{
		Ratio: ratio,
		AA: TierAA{
			NormalText:   ratio >= a.thresholds.AANormalText,
			LargeText:    ratio >= a.thresholds.AALargeText,
			UIComponents: ratio >= a.thresholds.AAUIComponents,
		},
		AAA: TierAAA{
			NormalText: ratio >= a.thresholds.AAANormalText,
			LargeText:  ratio >= a.thresholds.AAALargeText,
		},
	}
}

// CheckWCAG grades a pair against DefaultThresholds.
func CheckWCAG(fg, bg string) Result {
	return defaultAuditor.CheckWCAG(fg, bg)
}

// ComplianceLevel returns the strictest tier the ratio satisfies,
// checking AAA, then AA, then AA-large.
func (a *Auditor) ComplianceLevel(ratio float64) Level {
	switch {
	case ratio >= a.thresholds.AAANormalText:
		return LevelAAA
	case ratio >= a.thresholds.AANormalText:
		return LevelAA
	case ratio >= a.thresholds.AALargeText:
		return LevelAALarge
	default:
		return LevelFail
	}
}

// ComplianceLevel grades a ratio against DefaultThresholds.
func ComplianceLevel(ratio float64) Level {
	return defaultAuditor.ComplianceLevel(ratio)
}
