package main

import (
	"context"
	"fmt"
	"io"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/baseball-stats/internal/app"
	"github.com/riskibarqy/baseball-stats/internal/config"
	"github.com/riskibarqy/baseball-stats/internal/observability"
	"github.com/riskibarqy/baseball-stats/internal/platform/logging"
	"github.com/riskibarqy/baseball-stats/internal/usecase"
	"github.com/spf13/cobra"
)

// importer is the part of usecase.ImportService the command drives.
type importer interface {
	Import(ctx context.Context, opts usecase.ImportOptions) (usecase.ImportResult, error)
}

// importerFactory builds an importer and a cleanup func for one run.
type importerFactory func(ctx context.Context, logger *logging.Logger) (importer, func(), error)

func newRootCommand(logger *logging.Logger, out io.Writer, build importerFactory) *cobra.Command {
	root := &cobra.Command{
		Use:           "importer",
		Short:         "Baseball statistics maintenance commands",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var fresh bool
	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Import player statistics from the upstream API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := build(ctx, logger)
			if err != nil {
				logger.Error("importer setup failed", "error", err)
				return err
			}
			defer cleanup()

			return runImport(ctx, svc, fresh, logger, out)
		},
	}
	importCmd.Flags().BoolVar(&fresh, "fresh", false, "delete all players, positions and statistics before importing")
	root.AddCommand(importCmd)

	return root
}

func runImport(ctx context.Context, svc importer, fresh bool, logger *logging.Logger, out io.Writer) error {
	logger.Info("starting player import", "fresh", fresh)

	result, err := svc.Import(ctx, usecase.ImportOptions{
		Fresh:      fresh,
		OnProgress: progressLogger(logger),
	})
	if err != nil {
		logger.Error("player import failed", "reason", failureReason(err), "error", err)
		for _, hint := range crerr.GetAllHints(err) {
			_, _ = fmt.Fprintf(out, "hint: %s\n", hint)
		}
		return err
	}

	_, _ = fmt.Fprintf(out, "Imported %d players.\n", result.ImportedCount)
	return nil
}

// progressLogger reports every tenth of the batch and the final record.
func progressLogger(logger *logging.Logger) func(processed, total int) {
	lastBucket := -1
	return func(processed, total int) {
		if total <= 0 {
			return
		}
		bucket := processed * 10 / total
		if bucket == lastBucket && processed != total {
			return
		}
		lastBucket = bucket
		logger.Info("import progress", "processed", processed, "total", total)
	}
}

func failureReason(err error) string {
	switch {
	case crerr.Is(err, usecase.ErrUpstreamFetch):
		return "upstream_fetch"
	case crerr.Is(err, usecase.ErrEmptyPayload):
		return "empty_payload"
	case crerr.Is(err, usecase.ErrImportTransaction):
		return "transaction"
	default:
		return "unknown"
	}
}

func buildImporter(ctx context.Context, logger *logging.Logger) (importer, func(), error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	shutdownTracing, err := observability.InitUptrace(cfg, observability.ComponentImporter, logger)
	if err != nil {
		return nil, nil, err
	}
	stopProfiling, err := observability.InitPyroscope(cfg, observability.ComponentImporter, logger)
	if err != nil {
		_ = shutdownTracing(context.Background())
		return nil, nil, err
	}
	stopTelemetry := func() {
		if err := stopProfiling(context.Background()); err != nil {
			logger.Warn("pyroscope shutdown failed", "error", err)
		}
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("uptrace shutdown failed", "error", err)
		}
	}

	db, err := app.OpenDB(ctx, cfg)
	if err != nil {
		stopTelemetry()
		return nil, nil, err
	}

	svc, err := app.NewImportService(cfg, db, logger)
	if err != nil {
		_ = db.Close()
		stopTelemetry()
		return nil, nil, err
	}

	cleanup := func() {
		_ = db.Close()
		stopTelemetry()
	}
	return svc, cleanup, nil
}
