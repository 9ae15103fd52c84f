package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tokendrift/tokendrift"
	"github.com/tokendrift/tokendrift/cssvars"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract design tokens from local stylesheets",
	Long: `Scan stylesheets for custom property declarations and build a
token document from them. Variables are classified into token categories
by name and value; color values are canonicalized to hex.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return runExtract()
	},
}

func init() {
	f := extractCmd.Flags()
	f.StringSlice("paths", []string{"**/*.css"}, "Glob patterns for stylesheets to scan")
	f.String("out", "", "Write the token document to this file instead of stdout")
	f.String("ignore-file", ".gitignore", "Gitignore-style exclusion file")
}

func runExtract() error {
	result, err := cssvars.Extract(buildExtractConfig())
	if err != nil {
		return fmt.Errorf("extract failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	out := getStringWithFallback("out", "extract.out", "")

	if out != "" {
		if err := tokendrift.WriteDocument(out, result.Document); err != nil {
			return err
		}
		if !quiet {
			fmt.Printf("Extracted %d variables from %d stylesheets to %s\n",
				len(result.Variables), result.Stats.FilesScanned, out)
		}
		return nil
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result.Document)
}
