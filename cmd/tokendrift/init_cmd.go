package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .tokendrift.yaml config file",
	Long:  `Create a .tokendrift.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".tokendrift.yaml"); err == nil && !force {
			return fmt.Errorf(".tokendrift.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".tokendrift.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .tokendrift.yaml")
		return nil
	},
}

const defaultConfig = `# tokendrift configuration
# Docs: https://github.com/tokendrift/tokendrift

# Shared settings
verbose: false
color: false

# Comparison settings
compare:
  project: tokens/project.json
  reference: tokens/reference.json
  threshold: 0.0           # ΔE2000 similarity threshold, 0 = default 5.0
  output-format: issues    # issues | summary | full | json | markdown
  strict: false
  fail-on: ""              # low | medium | high | critical

# Audit settings
audit:
  document: tokens/project.json
  output-format: issues
  strict: false

# Extraction settings
extract:
  paths:
    - "**/*.css"
  ignore-file: .gitignore
  out: ""                  # empty = stdout

# Blend settings
blend:
  ratio: 0.5
  out: ""

# Output settings
output:
  print-values: true
  print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
