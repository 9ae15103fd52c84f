// Package termstyle holds the terminal styles shared by all reporters.
package termstyle

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Lipgloss automatically degrades colors based on terminal capabilities.
var (
	// Cyan is used for token paths, section headers, and statistics headers.
	Cyan = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	// Red is used for error sections and failed-audit messages.
	Red = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	// Yellow is used for warning sections and drift callouts.
	Yellow = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	// Green is used for passing pairs and success messages.
	Green = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	// Gray is used for linter names and hints.
	Gray = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Render applies a lipgloss style to text when colors are enabled.
// When useColors is false, the text is returned unmodified.
func Render(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}

// ShouldUseColors determines if colors should be enabled.
func ShouldUseColors(force bool) bool {
	// Explicit flag wins
	if force {
		return true
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// GitHub Actions supports colors
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, _ := os.Stdout.Stat(); (fileInfo.Mode() & os.ModeCharDevice) != 0 {
		return true
	}

	return false
}
