package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/mpetrov/statuswatch"
	"github.com/mpetrov/statuswatch/render"
)

func main() {
	logger, _ := zap.NewDevelopment()
	defer func() { _ = logger.Sync() }()

	// start mock targets (see mock_server.go)
	go StartMockTargetServer(":9999", logger)
	time.Sleep(100 * time.Millisecond)

	healthy, err := statuswatch.NewTarget("Healthy", "http://localhost:9999/healthy")
	if err != nil {
		logger.Fatal("failed to create target", zap.Error(err))
	}
	flaky, err := statuswatch.NewTarget("Flaky", "http://localhost:9999/flaky")
	if err != nil {
		logger.Fatal("failed to create target", zap.Error(err))
	}
	// sleeps longer than its timeout, so it reports down with "timeout"
	slow, err := statuswatch.NewTarget("Slow", "http://localhost:9999/slow",
		statuswatch.WithTargetTimeout(2*time.Second),
	)
	if err != nil {
		logger.Fatal("failed to create target", zap.Error(err))
	}

	m, err := statuswatch.New(
		statuswatch.WithTargets(healthy, flaky, slow),
		statuswatch.WithInterval(5*time.Second),
		statuswatch.WithCheckTimeout(3*time.Second),
		statuswatch.WithRenderer(&render.Terminal{Out: os.Stdout, Clear: true}),
		statuswatch.WithLogger(zap.NewNop()), // the board owns the terminal
		statuswatch.WithAPIAddr(":8080"),
	)
	if err != nil {
		logger.Fatal("failed to create monitor", zap.Error(err))
	}

	fmt.Println()
	fmt.Println("  statuswatch demo")
	fmt.Println("  3 mock targets checked every 5s; JSON at http://localhost:8080/api/status")
	fmt.Println("  Press Ctrl+C to stop")
	fmt.Println()
	time.Sleep(2 * time.Second)

	// set up context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := m.Start(ctx); err != nil {
		logger.Fatal("monitor error", zap.Error(err))
	}
}
