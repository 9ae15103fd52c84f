package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tokendrift/tokendrift"
	"github.com/tokendrift/tokendrift/structdiff"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare a project token document against a reference",
	Long: `Diff two design token documents and report drift.
Changed colors are measured with the CIEDE2000 perceptual distance;
drift beyond the similarity threshold is reported as a warning, and
unparseable color values as errors.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return runCompare()
	},
}

func init() {
	f := compareCmd.Flags()
	f.String("project", "tokens/project.json", "Project token document")
	f.String("reference", "tokens/reference.json", "Reference token document")
	f.Float64("threshold", 0.0, "ΔE2000 similarity threshold (0 = default 5.0)")
	f.String("output-format", "", "Output format: issues|summary|full|json|markdown")
	f.String("fail-on", "", "Exit 1 when impact reaches this level: low|medium|high|critical")
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.Bool("print-values", true, "Show token values with issues")
	f.Bool("print-linter-name", true, "Show (drift) suffix on issues")
}

// runCompare is shared between `tokendrift compare`, the bare root command,
// and watch mode.
func runCompare() error {
	failOn, err := resolveFailOnLevel()
	if err != nil {
		return err
	}

	result, err := tokendrift.Compare(buildCompareConfig())
	if err != nil {
		return fmt.Errorf("compare failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "compare.output-format", "")
	format := tokendrift.DetermineOutputFormat(outputFormat, quiet)

	if !quiet {
		if err := tokendrift.WriteOutput(os.Stdout, result, format, buildReportOptions()); err != nil {
			return err
		}
	}

	os.Exit(compareExitCode(result, quiet, failOn))
	return nil
}

// resolveFailOnLevel validates the --fail-on flag. An empty value disables
// the gate; anything that is not a usable impact level is rejected rather
// than silently failing every run.
func resolveFailOnLevel() (structdiff.ImpactLevel, error) {
	failOn := getStringWithFallback("fail-on", "compare.fail-on", "")
	if failOn == "" {
		return "", nil
	}
	level, ok := structdiff.ParseImpactLevel(failOn)
	if !ok || level == structdiff.ImpactNone {
		return "", fmt.Errorf("invalid fail-on level %q (valid: low, medium, high, critical)", failOn)
	}
	return level, nil
}

// compareExitCode implements the "Soft Gate" policy: by default only errors
// fail the build; --strict fails on any issue; --fail-on fails when the
// impact classification reaches the given level.
func compareExitCode(result *tokendrift.CompareResult, quiet bool, failOn structdiff.ImpactLevel) int {
	strict := getBoolWithFallback("strict", "compare.strict", false)
	if strict && len(result.Issues) > 0 {
		return 1
	}

	if failOn != "" && result.Impact.Level.AtLeast(failOn) {
		if !quiet {
			fmt.Fprintf(os.Stderr, "\nImpact %s reaches fail-on level %s\n",
				result.Impact.Level, failOn)
		}
		return 1
	}

	if result.ErrorCount > 0 {
		return 1
	}
	return 0
}
