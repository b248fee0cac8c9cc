package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/riskibarqy/baseball-stats/internal/platform/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := logging.NewConsole(logging.LevelInfo, os.Stderr)
	root := newRootCommand(logger, os.Stdout, buildImporter)
	if err := root.ExecuteContext(ctx); err != nil {
		_ = logger.Sync()
		stop()
		os.Exit(1)
	}
	_ = logger.Sync()
}
