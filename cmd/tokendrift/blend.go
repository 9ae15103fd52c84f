package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tokendrift/tokendrift"
)

var blendCmd = &cobra.Command{
	Use:   "blend",
	Short: "Interpolate between two token documents",
	Long: `Produce a token document whose colors sit between the project and
reference values, blended in Lab space. Useful for staging a gradual
migration toward a reference set instead of a single breaking change.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return runBlend()
	},
}

func init() {
	f := blendCmd.Flags()
	f.String("project", "tokens/project.json", "Project token document")
	f.String("reference", "tokens/reference.json", "Reference token document")
	f.Float64("ratio", 0.5, "Blend ratio: 0 keeps project colors, 1 lands on the reference")
	f.String("out", "", "Write the blended document to this file instead of stdout")
}

func runBlend() error {
	config := buildCompareConfig()

	project, err := tokendrift.LoadDocument(config.ProjectPath)
	if err != nil {
		return fmt.Errorf("load project document: %w", err)
	}
	reference, err := tokendrift.LoadDocument(config.ReferencePath)
	if err != nil {
		return fmt.Errorf("load reference document: %w", err)
	}

	ratio := getFloat64WithFallback("ratio", "blend.ratio", 0.5)
	blended := tokendrift.BlendDocuments(project, reference, ratio)

	out := getStringWithFallback("out", "blend.out", "")
	if out != "" {
		if err := tokendrift.WriteDocument(out, blended); err != nil {
			return err
		}
		if !getBoolWithFallback("quiet", "quiet", false) {
			fmt.Printf("Wrote blended document (ratio %.2f) to %s\n", ratio, out)
		}
		return nil
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(blended)
}
