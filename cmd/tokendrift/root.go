package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tokendrift",
	Short: "Design token comparison and accessibility auditor",
	Long: `Detect perceptual drift between design token documents.
Colors are compared in Lab space with the CIEDE2000 distance, palettes
are audited against WCAG 2.1, and changes are classified by impact.`,
	// Default behavior: run compare when no subcommand is given.
	// We must call loadConfig here because PreRunE of compareCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runCompare()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".tokendrift.yaml", "Config file path")

	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(blendCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
