package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/baseball-stats/external/hirefraction"
	"github.com/riskibarqy/baseball-stats/internal/config"
	"github.com/riskibarqy/baseball-stats/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/baseball-stats/internal/interfaces/httpapi"
	"github.com/riskibarqy/baseball-stats/internal/platform/logging"
	"github.com/riskibarqy/baseball-stats/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

const dbPingTimeout = 5 * time.Second

// OpenDB connects to Postgres with query tracing enabled and verifies the
// connection.
func OpenDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBBinaryParameters)

	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxOpenConns)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: ping database: %v", usecase.ErrDependencyUnavailable, err)
	}

	return db, nil
}

func NewHTTPServer(cfg config.Config, db *sqlx.DB, logger *logging.Logger) (*http.Server, error) {
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	store := postgres.NewStore(db)
	playerSvc := usecase.NewPlayerService(store, cfg.ListingDefaultSort, logger)

	handler := httpapi.NewHandler(playerSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	return &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
	}, nil
}

// NewImportService wires the upstream client and the Postgres store.
func NewImportService(cfg config.Config, db *sqlx.DB, logger *logging.Logger) (*usecase.ImportService, error) {
	source, err := hirefraction.NewClient(hirefraction.ClientConfig{
		URL:          cfg.SourceURL,
		Timeout:      cfg.SourceTimeout,
		MaxBodyBytes: cfg.SourceMaxBodyBytes,
		Logger:       logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build upstream client: %w", err)
	}

	return usecase.NewImportService(postgres.NewStore(db), source, logger), nil
}
