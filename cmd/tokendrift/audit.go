package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tokendrift/tokendrift"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Audit a token document for WCAG contrast and focus indicators",
	Long: `Check every background/text combination in the document's palette
against the WCAG 2.1 contrast thresholds and audit focus indicator
tokens for visibility.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return runAudit()
	},
}

func init() {
	f := auditCmd.Flags()
	f.String("document", "tokens/project.json", "Token document to audit")
	f.String("output-format", "", "Output format: issues|summary|full|json")
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.Bool("print-values", true, "Show color pairs with issues")
	f.Bool("print-linter-name", true, "Show (contrast)/(focus) suffix on issues")
}

func runAudit() error {
	result, err := tokendrift.Audit(buildAuditConfig())
	if err != nil {
		return fmt.Errorf("audit failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "audit.output-format", "")
	format := tokendrift.DetermineOutputFormat(outputFormat, quiet)

	if !quiet {
		if err := tokendrift.WriteAuditOutput(os.Stdout, result, format, buildReportOptions()); err != nil {
			return err
		}
	}

	// "Soft Gate": errors fail; --strict fails on any issue.
	strict := getBoolWithFallback("strict", "audit.strict", false)
	if strict && len(result.Issues) > 0 {
		os.Exit(1)
	}
	if result.ErrorCount > 0 {
		os.Exit(1)
	}
	return nil
}
