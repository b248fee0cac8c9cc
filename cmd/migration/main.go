package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/riskibarqy/baseball-stats/internal/config"
	"github.com/riskibarqy/baseball-stats/internal/platform/logging"
	"github.com/spf13/cobra"
)

func main() {
	logger := logging.NewConsole(logging.LevelInfo, os.Stderr)
	defer func() { _ = logger.Sync() }()

	if err := newRootCommand(logger).Execute(); err != nil {
		logger.Error("migration failed", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

func newRootCommand(logger *logging.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "migration",
		Short:         "Apply and inspect database schema migrations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: withMigrator(logger, func(m *migrate.Migrate, _ []string) error {
				if err := ignoreNoChange(logger, m.Up()); err != nil {
					return err
				}
				logger.Info("migrations applied")
				return nil
			}),
		},
		&cobra.Command{
			Use:   "down [steps]",
			Short: "Roll back migrations (default 1 step)",
			Args:  cobra.MaximumNArgs(1),
			RunE: withMigrator(logger, func(m *migrate.Migrate, args []string) error {
				steps, err := parseSteps(args)
				if err != nil {
					return err
				}
				if err := ignoreNoChange(logger, m.Steps(-steps)); err != nil {
					return err
				}
				logger.Info("migrations rolled back", "steps", steps)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the current schema version",
			Args:  cobra.NoArgs,
			RunE: withMigrator(logger, func(m *migrate.Migrate, _ []string) error {
				version, dirty, err := m.Version()
				if errors.Is(err, migrate.ErrNilVersion) {
					fmt.Println("version: none")
					fmt.Println("dirty: false")
					return nil
				}
				if err != nil {
					return fmt.Errorf("read version: %w", err)
				}
				fmt.Printf("version: %d\n", version)
				fmt.Printf("dirty: %t\n", dirty)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "force <version>",
			Short: "Set the schema version without running migrations",
			Args:  cobra.ExactArgs(1),
			RunE: withMigrator(logger, func(m *migrate.Migrate, args []string) error {
				version, err := parseVersion(args[0])
				if err != nil {
					return err
				}
				if err := m.Force(version); err != nil {
					return fmt.Errorf("force version %d: %w", version, err)
				}
				logger.Info("forced schema version", "version", version)
				return nil
			}),
		},
		&cobra.Command{
			Use:     "goto <version>",
			Aliases: []string{"migrate"},
			Short:   "Migrate up or down to the given version",
			Args:    cobra.ExactArgs(1),
			RunE: withMigrator(logger, func(m *migrate.Migrate, args []string) error {
				target, err := parseTarget(args[0])
				if err != nil {
					return err
				}
				if err := ignoreNoChange(logger, m.Migrate(target)); err != nil {
					return err
				}
				logger.Info("migrated to version", "version", target)
				return nil
			}),
		},
	)

	return root
}

// withMigrator opens a migrator for the duration of one command.
func withMigrator(logger *logging.Logger, fn func(m *migrate.Migrate, args []string) error) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, args []string) error {
		if err := config.LoadDotEnv(); err != nil {
			return err
		}

		dbURL := strings.TrimSpace(os.Getenv("DB_URL"))
		if dbURL == "" {
			return errors.New("DB_URL is required")
		}

		migrationsDir, err := resolveMigrationsDir()
		if err != nil {
			return fmt.Errorf("resolve migrations dir: %w", err)
		}

		sourceURL := "file://" + filepath.ToSlash(migrationsDir)
		m, err := migrate.New(sourceURL, dbURL)
		if err != nil {
			return fmt.Errorf("create migrator: %w", err)
		}
		m.Log = migrateLogger{logger: logger}
		defer closeMigrator(logger, m)

		logger.Debug("migration source resolved", "source", sourceURL)
		return fn(m, args)
	}
}
