// Package cssvars extracts design tokens from stylesheets. It scans local
// CSS files for custom property declarations and classifies each variable
// into a token document section by name and value.
package cssvars

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tokendrift/tokendrift/colorspace"
	"github.com/tokendrift/tokendrift/structdiff"
)

// Config controls stylesheet extraction
type Config struct {
	Paths      []string // Glob patterns, e.g. "styles/**/*.css"
	IgnoreFile string   // Gitignore-style exclusion file, default ".gitignore"
	Verbose    bool
}

// Variable is one custom property declaration
type Variable struct {
	Name       string // Without the leading "--"
	Value      string
	SourceFile string
}

// Result contains the extracted variables and the token document built
// from them
type Result struct {
	Variables []Variable
	Document  map[string]any
	Stats     ScanStats
}

// Extract scans the configured stylesheet paths and builds a token document
// from every custom property found.
func Extract(config Config) (*Result, error) {
	files, stats, err := scanStylesheets(config)
	if err != nil {
		return nil, fmt.Errorf("scan stylesheets: %w", err)
	}

	if config.Verbose {
		fmt.Printf("Scanned %d stylesheets (%d skipped)\n", stats.FilesScanned, stats.FilesSkipped)
	}

	var variables []Variable
	for _, file := range files {
		vars, err := parseStylesheetFile(file)
		if err != nil {
			// Unreadable files are skipped, not fatal
			continue
		}
		variables = append(variables, vars...)
	}

	return &Result{
		Variables: variables,
		Document:  BuildDocument(variables),
		Stats:     stats,
	}, nil
}

// BuildDocument groups variables into a nested token document keyed by
// category. Later declarations win, matching the cascade.
func BuildDocument(variables []Variable) map[string]any {
	doc := make(map[string]any)
	for _, v := range variables {
		category := string(ClassifyVariable(v.Name, v.Value))
		section, ok := doc[category].(map[string]any)
		if !ok {
			section = make(map[string]any)
			doc[category] = section
		}
		section[v.Name] = normalizeValue(v.Value)
	}
	return doc
}

// classifierHints maps categories to the name fragments that select them.
// Checked in classifierOrder; first hit wins.
var classifierHints = map[structdiff.Category][]string{
	structdiff.CategoryFocusIndicators:   {"focus", "ring"},
	structdiff.CategoryColors:            {"color", "palette"},
	structdiff.CategoryTypography:        {"font", "text", "letter", "line-height", "leading", "tracking"},
	structdiff.CategoryBorderRadius:      {"radius", "rounded"},
	structdiff.CategoryAnimations:        {"animation", "transition", "duration", "easing", "ease", "delay"},
	structdiff.CategoryEffects:           {"shadow", "blur", "opacity", "backdrop"},
	structdiff.CategoryInteractionStates: {"hover", "active", "pressed", "disabled"},
	structdiff.CategorySpacing:           {"space", "spacing", "gap", "margin", "padding", "inset"},
	structdiff.CategoryLayout:            {"width", "height", "breakpoint", "container", "z-index", "grid", "column"},
}

// classifierOrder fixes precedence: focus hints outrank color values, so
// --focus-ring-color lands with the other focus tokens, and state names
// outrank effect values, so --hover-opacity is an interaction state.
var classifierOrder = []structdiff.Category{
	structdiff.CategoryFocusIndicators,
	structdiff.CategoryColors,
	structdiff.CategoryTypography,
	structdiff.CategoryBorderRadius,
	structdiff.CategoryAnimations,
	structdiff.CategoryInteractionStates,
	structdiff.CategoryEffects,
	structdiff.CategorySpacing,
	structdiff.CategoryLayout,
}

// ClassifyVariable assigns a custom property to a token category by its
// name, falling back to the value for unnamed colors.
func ClassifyVariable(name, value string) structdiff.Category {
	lower := strings.ToLower(name)

	for _, category := range classifierOrder {
		for _, hint := range classifierHints[category] {
			if strings.Contains(lower, hint) {
				return category
			}
		}
		// A variable named nothing useful that holds a color is still a
		// color token.
		if category == structdiff.CategoryColors {
			if _, ok := colorspace.Normalize(value); ok {
				return structdiff.CategoryColors
			}
		}
	}
	return structdiff.CategoryOther
}

// normalizeValue canonicalizes color values so extracted documents diff
// cleanly against hand-written ones. Non-colors pass through trimmed.
func normalizeValue(value string) string {
	if hex, ok := colorspace.Normalize(value); ok {
		return hex
	}
	return strings.TrimSpace(value)
}

// SortedNames returns the variable names in a document section, sorted.
// Used by reporters for deterministic listings.
func SortedNames(section map[string]any) []string {
	names := make([]string, 0, len(section))
	for name := range section {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
