package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokendrift/tokendrift"
	"github.com/tokendrift/tokendrift/structdiff"
)

func TestResolveFailOnLevel(t *testing.T) {
	tests := []struct {
		name    string
		failOn  string
		want    structdiff.ImpactLevel
		wantErr bool
	}{
		{name: "empty disables the gate", failOn: "", want: ""},
		{name: "low", failOn: "low", want: structdiff.ImpactLow},
		{name: "critical", failOn: "critical", want: structdiff.ImpactCritical},
		{name: "typo rejected", failOn: "hgih", wantErr: true},
		{name: "none rejected", failOn: "none", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetKoanf()
			if tt.failOn != "" {
				dir := t.TempDir()
				configPath := filepath.Join(dir, ".tokendrift.yaml")
				require.NoError(t, os.WriteFile(configPath,
					[]byte("compare:\n  fail-on: "+tt.failOn+"\n"), 0644))
				require.NoError(t, loadConfigFromPath(configPath))
			}

			level, err := resolveFailOnLevel()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, level)
		})
	}
}

func TestCompareExitCodeFailOn(t *testing.T) {
	resetKoanf()
	result := &tokendrift.CompareResult{
		Impact: structdiff.Impact{Level: structdiff.ImpactMedium, Label: "design-update"},
	}

	assert.Equal(t, 1, compareExitCode(result, true, structdiff.ImpactLow))
	assert.Equal(t, 1, compareExitCode(result, true, structdiff.ImpactMedium))
	assert.Equal(t, 0, compareExitCode(result, true, structdiff.ImpactHigh))
	// Without a gate, a warning-free result with no errors passes.
	assert.Equal(t, 0, compareExitCode(result, true, ""))
}
