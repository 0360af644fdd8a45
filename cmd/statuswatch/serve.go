package main

import (
	"context"
	"fmt"
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

// serveCmd runs the monitor with the HTTP status API instead of the
// terminal board.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the monitor with the HTTP status API",
	Long: `Run statuswatch headless, exposing the latest snapshot over HTTP.

Endpoints:
  GET /api/status  - current snapshot as JSON
  GET /api/events  - Server-Sent Events stream of snapshots

Each tick is also logged, one line per target. Runs until interrupted
(Ctrl+C) or SIGTERM.

Example:
  statuswatch serve -c config.yaml`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("config", "c", "", "path to config file (required)")
	_ = serveCmd.MarkFlagRequired("config")
}

func runServe(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("config")

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
		statuswatch.WithRenderer(&render.Log{Logger: logger}),
		statuswatch.WithAPIAddr(cfg.APIAddr),
	)

	m, err := statuswatch.New(opts...)
	if err != nil {
		return fmt.Errorf("failed to create monitor: %w", err)
	}

	logger.Info("serving status API",
		zap.String("addr", cfg.APIAddr),
		zap.Int("targets", len(cfg.Targets)),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return m.Start(ctx)
}
