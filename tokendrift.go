// Package tokendrift compares, audits, and blends design token documents.
//
// tokendrift detects perceptual drift between two versions of a design token
// set (colors, typography, spacing, and friends), audits palettes and focus
// indicators against WCAG 2.1, and can interpolate between token documents
// for theme generation.
//
// # Comparison
//
// Compare a project token document against a reference:
//
//	config := tokendrift.CompareConfig{
//		ProjectPath:   "tokens/project.json",
//		ReferencePath: "tokens/reference.json",
//	}
//	result, err := tokendrift.Compare(config)
//
// # Auditing
//
// Audit a token document for contrast and focus-indicator accessibility:
//
//	audit, err := tokendrift.Audit(tokendrift.AuditConfig{
//		DocumentPath: "tokens/project.json",
//	})
//
// # CLI Tool
//
// tokendrift also provides a CLI tool. Install with:
//
//	go install github.com/tokendrift/tokendrift/cmd/tokendrift@latest
//
// See cmd/tokendrift/README.md for CLI documentation.
package tokendrift

// Public API is exported via compare.go, audit.go, and blend.go:
// - Compare(config CompareConfig) (*CompareResult, error)
// - Audit(config AuditConfig) (*AuditResult, error)
// - BlendDocuments(project, reference map[string]any, t float64) map[string]any
// - DetermineOutputFormat(requested string, quiet bool) OutputFormat
// - WriteOutput(w io.Writer, result *CompareResult, format OutputFormat, opts ReportOptions) error
