package tokendrift

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/tokendrift/tokendrift/colorspace"
	"github.com/tokendrift/tokendrift/structdiff"
	"github.com/tokendrift/tokendrift/wcag"
)

// AuditConfig holds accessibility audit configuration.
type AuditConfig struct {
	DocumentPath string          // Token document to audit
	Thresholds   wcag.Thresholds // Zero value means wcag.DefaultThresholds
	Verbose      bool
}

// AuditResult contains the accessibility analysis of one token document.
type AuditResult struct {
	Backgrounds []string
	Texts       []string

	Palette wcag.PaletteAudit
	Focus   map[string]wcag.FocusAudit

	Issues           []Issue
	IssuesByCategory map[string][]Issue
	ErrorCount       int
}

// Audit loads a token document and runs the contrast and focus-indicator
// audits over it.
func Audit(config AuditConfig) (*AuditResult, error) {
	doc, err := LoadDocument(config.DocumentPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}

	if config.Verbose {
		fmt.Printf("Auditing %s\n", config.DocumentPath)
	}

	return AuditDocument(doc, config.Thresholds), nil
}

// AuditDocument is the pure core of Audit. Background and text colors are
// collected from the document's color leaves by key convention, focus
// indicators from the focusIndicators section.
func AuditDocument(doc map[string]any, thresholds wcag.Thresholds) *AuditResult {
	if thresholds == (wcag.Thresholds{}) {
		thresholds = wcag.DefaultThresholds
	}
	auditor := wcag.New(thresholds)

	backgrounds, texts := collectPaletteColors(doc)

	result := &AuditResult{
		Backgrounds: backgrounds,
		Texts:       texts,
		Palette:     auditor.AuditPalette(backgrounds, texts),
		Focus:       make(map[string]wcag.FocusAudit),
	}

	for _, issue := range result.Palette.Issues {
		result.Issues = append(result.Issues, Issue{
			FromLinter: LinterContrast,
			Text:       issue.Message,
			Severity:   issue.Severity,
			Path:       string(structdiff.CategoryColors),
			Value:      fmt.Sprintf("%s on %s", issue.Foreground, issue.Background),
		})
	}

	primaryBg := "#ffffff"
	if len(backgrounds) > 0 {
		primaryBg = backgrounds[0]
	}

	indicators := CollectFocusIndicators(doc)
	selectors := make([]string, 0, len(indicators))
	for sel := range indicators {
		selectors = append(selectors, sel)
	}
	sort.Strings(selectors)

	for _, sel := range selectors {
		audit := auditor.AuditFocusIndicator(indicators[sel], primaryBg)
		result.Focus[sel] = audit
		for _, issue := range audit.Issues {
			result.Issues = append(result.Issues, Issue{
				FromLinter: LinterFocus,
				Text:       issue.Message,
				Severity:   issue.Severity,
				Path:       string(structdiff.CategoryFocusIndicators) + "." + sel,
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

// backgroundKeyHints and textKeyHints classify color token keys into the
// two sides of the contrast cross product.
var (
	backgroundKeyHints = []string{"background", "bg", "surface", "canvas"}
	textKeyHints       = []string{"text", "foreground", "fg", "heading", "body"}
)

// collectPaletteColors walks the colors section and splits canonicalizable
// leaves into backgrounds and texts by key naming convention. Keys are
// visited in sorted order so results are deterministic.
func collectPaletteColors(doc map[string]any) (backgrounds, texts []string) {
	colorsSection, ok := doc[string(structdiff.CategoryColors)].(map[string]any)
	if !ok {
		return nil, nil
	}

	walkColorLeaves(colorsSection, "", func(key, hex string) {
		lower := strings.ToLower(key)
		switch {
		case matchesAnyHint(lower, backgroundKeyHints):
			backgrounds = append(backgrounds, hex)
		case matchesAnyHint(lower, textKeyHints):
			texts = append(texts, hex)
		}
	})
	return backgrounds, texts
}

func matchesAnyHint(key string, hints []string) bool {
	for _, hint := range hints {
		if strings.Contains(key, hint) {
			return true
		}
	}
	return false
}

// walkColorLeaves visits every canonicalizable string leaf under node in
// deterministic key order. The visitor receives the full dotted key and the
// canonical hex value.
func walkColorLeaves(node map[string]any, prefix string, visit func(key, hex string)) {
	keys := make([]string, 0, len(node))
	for k := range node {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch child := node[k].(type) {
		case map[string]any:
			walkColorLeaves(child, key, visit)
		case string:
			if hex, ok := colorspace.Normalize(child); ok {
				visit(key, hex)
			}
		}
	}
}

// CollectFocusIndicators builds focus descriptors from the document's
// focusIndicators section: a mapping of selector to style snapshot with
// outlineColor/borderColor/thickness/boxShadow keys.
func CollectFocusIndicators(doc map[string]any) map[string]wcag.FocusIndicator {
	section, ok := doc[string(structdiff.CategoryFocusIndicators)].(map[string]any)
	if !ok {
		return nil
	}

	indicators := make(map[string]wcag.FocusIndicator, len(section))
	for selector, raw := range section {
		style, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		indicators[selector] = wcag.FocusIndicator{
			OutlineColor: stringField(style, "outlineColor"),
			BorderColor:  stringField(style, "borderColor"),
			ThicknessPx:  thicknessField(style),
			HasBoxShadow: boolField(style, "boxShadow") || stringField(style, "boxShadow") != "",
		}
	}
	return indicators
}

func stringField(style map[string]any, key string) string {
	s, _ := style[key].(string)
	return s
}

func boolField(style map[string]any, key string) bool {
	b, _ := style[key].(bool)
	return b
}

// thicknessField reads outlineWidth/thickness as a number or a "2px" string.
func thicknessField(style map[string]any) float64 {
	for _, key := range []string{"outlineWidth", "thickness", "borderWidth"} {
		v, ok := style[key]
		if !ok {
			continue
		}
		switch n := v.(type) {
		case float64:
			return n
		case int:
			return float64(n)
		case string:
			trimmed := strings.TrimSuffix(strings.TrimSpace(n), "px")
			if f, err := strconv.ParseFloat(strings.TrimSpace(trimmed), 64); err == nil {
				return f
			}
		}
	}
	return 0
}
