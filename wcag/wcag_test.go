package wcag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelativeLuminanceEndpoints(t *testing.T) {
	assert.InDelta(t, 1.0, RelativeLuminance("#ffffff"), 0.001)
	assert.InDelta(t, 0.0, RelativeLuminance("#000000"), 0.001)
}

func TestRelativeLuminancePrimaries(t *testing.T) {
	// Fully saturated primaries decode to exactly their channel weight.
	assert.InDelta(t, 0.2126, RelativeLuminance("#ff0000"), 0.0001)
	assert.InDelta(t, 0.7152, RelativeLuminance("#00ff00"), 0.0001)
	assert.InDelta(t, 0.0722, RelativeLuminance("#0000ff"), 0.0001)
}

func TestRelativeLuminanceUnparseable(t *testing.T) {
	// Documented compromise: broken input is treated as black.
	assert.Zero(t, RelativeLuminance("not-a-color"))
	assert.Zero(t, RelativeLuminance("transparent"))
}

func TestContrastRatioBounds(t *testing.T) {
	assert.InDelta(t, 21.0, ContrastRatio("#000000", "#ffffff"), 0.1)

	for _, c := range []string{"#000000", "#ffffff", "#3b82f6", "#808080"} {
		assert.InDelta(t, 1.0, ContrastRatio(c, c), 1e-9, "color %q", c)
	}
}

func TestContrastRatioSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"#000000", "#ffffff"},
		{"#3b82f6", "#111827"},
		{"#facc15", "#1f2937"},
	}
	for _, p := range pairs {
		assert.InDelta(t, ContrastRatio(p[0], p[1]), ContrastRatio(p[1], p[0]), 1e-9)
	}
}

func TestCheckWCAG(t *testing.T) {
	tests := []struct {
		name   string
		fg, bg string
		aa     TierAA
		aaa    TierAAA
	}{
		{
			name: "black on white passes everything",
			fg:   "#000000", bg: "#ffffff",
			aa:  TierAA{NormalText: true, LargeText: true, UIComponents: true},
			aaa: TierAAA{NormalText: true, LargeText: true},
		},
		{
			name: "white on white fails everything",
			fg:   "#ffffff", bg: "#ffffff",
			aa:  TierAA{},
			aaa: TierAAA{},
		},
		{
			name: "mid gray on white is large-text only",
			fg:   "#8a8a8a", bg: "#ffffff",
			aa:  TierAA{NormalText: false, LargeText: true, UIComponents: true},
			aaa: TierAAA{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CheckWCAG(tt.fg, tt.bg)
			assert.Equal(t, tt.aa, result.AA)
			assert.Equal(t, tt.aaa, result.AAA)
		})
	}
}

func TestComplianceLevel(t *testing.T) {
	tests := []struct {
		ratio float64
		want  Level
	}{
		{21, LevelAAA},
		{7.0, LevelAAA},
		{6.9, LevelAA},
		{4.5, LevelAA},
		{4.4, LevelAALarge},
		{3.0, LevelAALarge},
		{2.9, LevelFail},
		{1.0, LevelFail},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, ComplianceLevel(tt.ratio), "ratio %.1f", tt.ratio)
	}
}

func TestComplianceLevelCustomThresholds(t *testing.T) {
	strict := New(Thresholds{
		AANormalText:  7.0,
		AALargeText:   4.5,
		AAANormalText: 10.0,
		AAALargeText:  7.0,
	})

	require.Equal(t, LevelAA, strict.ComplianceLevel(7.5))
	require.Equal(t, LevelAALarge, strict.ComplianceLevel(5.0))
	require.Equal(t, LevelFail, strict.ComplianceLevel(4.0))
}

func TestAuditPalette(t *testing.T) {
	audit := AuditPalette(
		[]string{"#ffffff", "#111827"},
		[]string{"#000000", "#767676"},
	)

	// black on white: AAA pass; #767676 on white: ~4.54:1, AA pass but
	// AAA fail (warning); black on #111827: ~1.2:1 (error); #767676 on
	// #111827: ~3.9:1 (error).
	var errors, warnings int
	for _, issue := range audit.Issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}

	assert.Equal(t, 2, errors)
	assert.Equal(t, 1, warnings)
	assert.Len(t, audit.Passing, 1)
	assert.Equal(t, "#000000", audit.Passing[0].Foreground)
}

func TestAuditPaletteCaps(t *testing.T) {
	many := []string{"#000000", "#111111", "#222222", "#333333", "#444444", "#555555", "#666666"}
	audit := AuditPalette(many, many)

	// Capped at 5x5 combinations regardless of palette size.
	assert.LessOrEqual(t, len(audit.Issues)+len(audit.Passing), 25)
}
