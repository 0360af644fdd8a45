// Package main is the entry point for the statuswatch CLI.
//
// statuswatch can be used as a library or as a standalone binary with
// YAML configuration. This CLI provides the standalone binary approach.
//
// Usage:
//
//	statuswatch watch -c config.yaml    # Run the terminal status board
//	statuswatch serve -c config.yaml    # Run with the HTTP status API
//	statuswatch validate -c config.yaml # Validate configuration
//	statuswatch version                 # Show version info
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set at build time via ldflags.
// Example: go build -ldflags "-X main.version=1.0.0"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCmd is the base command when called without subcommands.
// It just displays help - actual functionality is in subcommands.
var rootCmd = &cobra.Command{
	Use:   "statuswatch",
	Short: "A concurrent uptime probe with a terminal status board",
	Long: `statuswatch checks a fixed set of HTTP(S) targets on a fixed
interval, in parallel, and renders their latest status each tick.

Quick start:
  1. Create a config file (statuswatch.yaml)
  2. Run: statuswatch watch -c statuswatch.yaml

Example config:
  check_interval: 60s
  check_timeout: 10s
  targets:
    - https://example.com
    - name: API
      url: https://api.example.com/health
      timeout: 5s`,
	// No Run/RunE means this just shows help when called without subcommands
}

// Execute runs the root command.
// This is the main entry point called from main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error, just exit with code 1
		os.Exit(1)
	}
}

func main() {
	Execute()
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the version, commit hash, and build date of this statuswatch binary.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("statuswatch %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
