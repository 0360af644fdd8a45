package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mpetrov/statuswatch/config"
)

// validateCmd validates a config file without starting the monitor.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a config file",
	Long: `Validate a statuswatch configuration file without running any checks.

This command parses the YAML, expands environment variables, and validates
all fields. It's useful for CI/CD pipelines or pre-deployment checks.

Exit codes:
  0 - Config is valid
  1 - Config is invalid (error details printed to stderr)

Example:
  statuswatch validate -c config.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringP("config", "c", "", "path to config file (required)")
	_ = validateCmd.MarkFlagRequired("config")
}

func runValidate(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	fmt.Printf("Config is valid!\n")
	fmt.Printf("  Check interval: %s\n", cfg.CheckInterval.Duration())
	fmt.Printf("  Check timeout:  %s\n", cfg.CheckTimeout.Duration())
	fmt.Printf("  Success range:  %d-%d\n", cfg.SuccessRange.Min, cfg.SuccessRange.Max)
	fmt.Printf("  Targets:        %d\n", len(cfg.Targets))

	return nil
}
