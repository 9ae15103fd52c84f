package wcag

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hasSeverity(issues []FocusIssue, severity string) bool {
	for _, issue := range issues {
		if issue.Severity == severity {
			return true
		}
	}
	return false
}

func TestAuditFocusIndicator(t *testing.T) {
	tests := []struct {
		name       string
		ind        FocusIndicator
		background string
		passed     bool
		wantErr    bool
		wantWarn   bool
	}{
		{
			name:       "good indicator",
			ind:        FocusIndicator{OutlineColor: "#2563eb", ThicknessPx: 2},
			background: "#ffffff",
			passed:     true,
		},
		{
			name:       "no color always fails",
			ind:        FocusIndicator{ThicknessPx: 3, HasBoxShadow: true},
			background: "#ffffff",
			wantErr:    true,
		},
		{
			name:       "zero thickness fails",
			ind:        FocusIndicator{OutlineColor: "#2563eb", ThicknessPx: 0},
			background: "#ffffff",
			wantErr:    true,
		},
		{
			name:       "thin indicator warns",
			ind:        FocusIndicator{OutlineColor: "#2563eb", ThicknessPx: 1.5},
			background: "#ffffff",
			wantWarn:   true,
		},
		{
			name:       "exactly 2px never warns",
			ind:        FocusIndicator{OutlineColor: "#2563eb", ThicknessPx: 2},
			background: "#ffffff",
			passed:     true,
		},
		{
			name:       "low contrast fails",
			ind:        FocusIndicator{OutlineColor: "#eeeeee", ThicknessPx: 2},
			background: "#ffffff",
			wantErr:    true,
		},
		{
			name:       "border color used when outline missing",
			ind:        FocusIndicator{BorderColor: "#1d4ed8", ThicknessPx: 2},
			background: "#ffffff",
			passed:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			audit := AuditFocusIndicator(tt.ind, tt.background)
			assert.Equal(t, tt.passed, audit.Passed)
			assert.Equal(t, tt.wantErr, hasSeverity(audit.Issues, SeverityError), "errors: %v", audit.Issues)
			assert.Equal(t, tt.wantWarn, hasSeverity(audit.Issues, SeverityWarning), "warnings: %v", audit.Issues)
		})
	}
}

func TestAuditFocusIndicatorShadowAloneIsNotEnough(t *testing.T) {
	// A shadow ring without any outline/border color still fails: the
	// error is about having no color at all, regardless of other fields.
	audit := AuditFocusIndicator(FocusIndicator{HasBoxShadow: true, ThicknessPx: 2}, "#ffffff")
	require.False(t, audit.Passed)
	require.True(t, hasSeverity(audit.Issues, SeverityError))
}

func TestCompareFocusIndicators(t *testing.T) {
	reference := map[string]FocusIndicator{
		"button":    {OutlineColor: "#2563eb", ThicknessPx: 2},
		"a":         {OutlineColor: "#2563eb", ThicknessPx: 2},
		"input":     {OutlineColor: "#dc2626", ThicknessPx: 2},
		".dropdown": {OutlineColor: "#2563eb", ThicknessPx: 2},
	}
	project := map[string]FocusIndicator{
		"button": {OutlineColor: "#2563eb", ThicknessPx: 2}, // exact match
		"a":      {OutlineColor: "#2666ec", ThicknessPx: 2}, // imperceptibly off
		"input":  {OutlineColor: "#16a34a", ThicknessPx: 2}, // red -> green
		// .dropdown missing entirely
	}

	comparison := CompareFocusIndicators(project, reference)

	assert.Len(t, comparison.Matches, 2)
	assert.Len(t, comparison.Differences, 1)
	assert.Equal(t, []string{".dropdown"}, comparison.Missing)
	assert.Equal(t, 50, comparison.Score) // round(100 * 2/4)
	assert.Equal(t, "input", comparison.Differences[0].Selector)
}

func TestCompareFocusIndicatorsEmptyReference(t *testing.T) {
	comparison := CompareFocusIndicators(map[string]FocusIndicator{
		"button": {OutlineColor: "#000000", ThicknessPx: 2},
	}, nil)

	// Nothing to comply with: vacuously compliant.
	require.Equal(t, 100, comparison.Score)
	require.Empty(t, comparison.Missing)
	require.Empty(t, comparison.Differences)
}

func TestCompareFocusIndicatorsUnparseableColor(t *testing.T) {
	reference := map[string]FocusIndicator{
		"button": {OutlineColor: "#2563eb", ThicknessPx: 2},
	}
	project := map[string]FocusIndicator{
		"button": {OutlineColor: "currentColor", ThicknessPx: 2},
	}

	comparison := CompareFocusIndicators(project, reference)

	// Incomparable distance counts as a difference, not a match.
	require.Empty(t, comparison.Matches)
	require.Len(t, comparison.Differences, 1)
	require.Equal(t, 0, comparison.Score)
}

func TestFocusDifferenceJSONIncomparable(t *testing.T) {
	difference := FocusDifference{Selector: "button", DeltaE: math.Inf(1)}

	data, err := json.Marshal(difference)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"deltaE":"incomparable"`)

	finite, err := json.Marshal(FocusDifference{Selector: "a", DeltaE: 3.5})
	require.NoError(t, err)
	assert.Contains(t, string(finite), `"deltaE":3.5`)
}
