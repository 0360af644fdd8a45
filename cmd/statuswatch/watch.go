package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mpetrov/statuswatch"
	"github.com/mpetrov/statuswatch/config"
	"github.com/mpetrov/statuswatch/internal/logging"
	"github.com/mpetrov/statuswatch/render"
)

// watchCmd runs the monitor with the terminal status board.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the terminal status board",
	Long: `Run statuswatch with a live terminal status board.

Every target in the config is checked in parallel once per interval and
the board refreshes with the complete result set. Logs go to a rotating
file under log_dir so the board owns the terminal.

Runs until interrupted (Ctrl+C) or SIGTERM. Shutdown waits for an
in-flight tick to publish before exiting.

Example:
  statuswatch watch -c config.yaml`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringP("config", "c", "", "path to config file (required)")
	_ = watchCmd.MarkFlagRequired("config")
	watchCmd.Flags().Bool("no-color", false, "disable ANSI colors")
}

func runWatch(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("config")
	noColor, _ := cmd.Flags().GetBool("no-color")

	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.NewLogger(cfg.LogDir, zapcore.InfoLevel)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	opts, err := config.BuildOptions(cfg)
	if err != nil {
		return fmt.Errorf("failed to build targets: %w", err)
	}
	opts = append(opts,
		statuswatch.WithLogger(logger),
		statuswatch.WithRenderer(&render.Terminal{Out: os.Stdout, Clear: true, NoColor: noColor}),
	)

	m, err := statuswatch.New(opts...)
	if err != nil {
		return fmt.Errorf("failed to create monitor: %w", err)
	}

	logger.Info("config loaded",
		zap.String("file", configFile),
		zap.Int("targets", len(cfg.Targets)),
	)

	// cancel on SIGINT/SIGTERM; an in-flight tick still publishes
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return m.Start(ctx)
}
