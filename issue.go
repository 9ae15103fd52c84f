package tokendrift

// Issue represents a single comparison or audit finding in golangci-lint
// format, addressed by token path rather than file position.
type Issue struct {
	FromLinter string `json:"FromLinter"` // "drift", "contrast", "focus"
	Text       string `json:"Text"`       // "color token drifted ΔE 12.4 from reference"
	Severity   string `json:"Severity"`   // "", "warning", "error"
	Path       string `json:"Path"`       // Token address, e.g. "colors.palette[2]"
	Value      string `json:"Value"`      // Offending value for context
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// Linter names attached to issues
const (
	LinterDrift    = "drift"
	LinterContrast = "contrast"
	LinterFocus    = "focus"
)

// IssueParseFailure is the message format for token values that cannot be
// canonicalized as colors.
const IssueParseFailure = "color token %q cannot be parsed; distance to reference is incomparable"
