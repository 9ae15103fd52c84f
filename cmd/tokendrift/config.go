package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"

	"github.com/tokendrift/tokendrift"
	"github.com/tokendrift/tokendrift/cssvars"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".tokendrift.yaml"
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence — only flags that were explicitly set)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (TOKENDRIFT_* prefix)
	if err := k.Load(env.Provider("TOKENDRIFT_", ".", func(s string) string {
		// TOKENDRIFT_COMPARE_REFERENCE -> compare.reference
		// TOKENDRIFT_AUDIT_STRICT -> audit.strict
		// TOKENDRIFT_VERBOSE -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "TOKENDRIFT_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildCompareConfig constructs the library's CompareConfig from koanf state.
func buildCompareConfig() tokendrift.CompareConfig {
	return tokendrift.CompareConfig{
		ProjectPath:         getStringWithFallback("project", "compare.project", "tokens/project.json"),
		ReferencePath:       getStringWithFallback("reference", "compare.reference", "tokens/reference.json"),
		SimilarityThreshold: getFloat64WithFallback("threshold", "compare.threshold", 0.0),
		Verbose:             getBoolWithFallback("verbose", "verbose", false),
	}
}

// buildAuditConfig constructs the library's AuditConfig from koanf state.
func buildAuditConfig() tokendrift.AuditConfig {
	return tokendrift.AuditConfig{
		DocumentPath: getStringWithFallback("document", "audit.document", "tokens/project.json"),
		Verbose:      getBoolWithFallback("verbose", "verbose", false),
	}
}

// buildExtractConfig constructs the cssvars Config from koanf state.
func buildExtractConfig() cssvars.Config {
	var paths []string
	if p := k.Strings("paths"); len(p) > 0 {
		paths = p
	} else if p := k.Strings("extract.paths"); len(p) > 0 {
		paths = p
	} else {
		paths = []string{"**/*.css"}
	}

	return cssvars.Config{
		Paths:      paths,
		IgnoreFile: getStringWithFallback("ignore-file", "extract.ignore-file", ".gitignore"),
		Verbose:    getBoolWithFallback("verbose", "verbose", false),
	}
}

// buildReportOptions constructs shared reporter options from koanf state.
func buildReportOptions() tokendrift.ReportOptions {
	return tokendrift.ReportOptions{
		UseColors:       getBoolWithFallback("color", "color", false),
		PrintValues:     getBoolWithFallback("print-values", "output.print-values", true),
		PrintLinterName: getBoolWithFallback("print-linter-name", "output.print-linter-name", true),
	}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getFloat64WithFallback checks the flag key first, then the config file key, then returns the default.
func getFloat64WithFallback(flagKey, configKey string, defaultVal float64) float64 {
	if k.Exists(flagKey) {
		return k.Float64(flagKey)
	}
	if k.Exists(configKey) {
		return k.Float64(configKey)
	}
	return defaultVal
}
