package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/riskibarqy/baseball-stats/internal/domain/playerstats"
	"github.com/riskibarqy/baseball-stats/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "x-other=1, uptrace-dsn=\"https://token@api.uptrace.dev/1\"")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev/1" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("APP_SERVICE_NAME", "")
	t.Setenv("APP_HTTP_ADDR", "")
	t.Setenv("SOURCE_URL", "")
	t.Setenv("SOURCE_TIMEOUT", "")
	t.Setenv("SOURCE_MAX_BODY_BYTES", "")
	t.Setenv("LISTING_DEFAULT_SORT", "")
	t.Setenv("APP_LOG_LEVEL", "")
	t.Setenv("UPTRACE_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AppEnv != EnvDev {
		t.Fatalf("unexpected AppEnv: %q", cfg.AppEnv)
	}
	if cfg.ServiceName != "baseball-stats-api" {
		t.Fatalf("unexpected ServiceName: %q", cfg.ServiceName)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected HTTPAddr: %q", cfg.HTTPAddr)
	}
	if cfg.SourceURL != "https://api.hirefraction.com/api/test/baseball" {
		t.Fatalf("unexpected SourceURL: %q", cfg.SourceURL)
	}
	if cfg.SourceTimeout != 30*time.Second {
		t.Fatalf("unexpected SourceTimeout: %s", cfg.SourceTimeout)
	}
	if cfg.SourceMaxBodyBytes != 8<<20 {
		t.Fatalf("unexpected SourceMaxBodyBytes: %d", cfg.SourceMaxBodyBytes)
	}
	if cfg.ListingDefaultSort != playerstats.SortHits {
		t.Fatalf("unexpected ListingDefaultSort: %q", cfg.ListingDefaultSort)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected LogLevel: %s", cfg.LogLevel)
	}
}

func TestLoad_DefaultsByEnv(t *testing.T) {
	t.Run("prod disables swagger by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvProd)
		t.Setenv("UPTRACE_ENABLED", "false")
		t.Setenv("SWAGGER_ENABLED", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.SwaggerEnabled {
			t.Fatalf("expected SwaggerEnabled=false in prod by default")
		}
	})

	t.Run("dev enables swagger by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("UPTRACE_ENABLED", "false")
		t.Setenv("SWAGGER_ENABLED", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.SwaggerEnabled {
			t.Fatalf("expected SwaggerEnabled=true in dev by default")
		}
	})
}

func TestLoad_ListingDefaultSort(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("accepts allowed field", func(t *testing.T) {
		t.Setenv("LISTING_DEFAULT_SORT", " Home_Runs ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.ListingDefaultSort != playerstats.SortHomeRuns {
			t.Fatalf("unexpected ListingDefaultSort: %q", cfg.ListingDefaultSort)
		}
	})

	t.Run("rejects unknown field", func(t *testing.T) {
		t.Setenv("LISTING_DEFAULT_SORT", "description")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for unknown LISTING_DEFAULT_SORT")
		}
	})
}

func TestLoad_SourceValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("invalid timeout", func(t *testing.T) {
		t.Setenv("SOURCE_TIMEOUT", "soon")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid SOURCE_TIMEOUT")
		}
	})

	t.Run("non positive body limit", func(t *testing.T) {
		t.Setenv("SOURCE_MAX_BODY_BYTES", "0")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for SOURCE_MAX_BODY_BYTES=0")
		}
	})
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("APP_SERVICE_NAME", "baseball-stats-api-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "baseball-stats-api-test" {
		t.Fatalf("unexpected pyroscope app name: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_CORSOriginsDefaultAndParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("default wildcard", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
			t.Fatalf("unexpected default CORS origins: %+v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("comma separated parsing", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, http://localhost:5173 ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 2 {
			t.Fatalf("unexpected CORS origins length: %d", len(cfg.CORSAllowedOrigins))
		}
		if cfg.CORSAllowedOrigins[0] != "https://a.example.com" {
			t.Fatalf("unexpected first CORS origin: %s", cfg.CORSAllowedOrigins[0])
		}
		if cfg.CORSAllowedOrigins[1] != "http://localhost:5173" {
			t.Fatalf("unexpected second CORS origin: %s", cfg.CORSAllowedOrigins[1])
		}
	})
}

func TestLoad_DBSettings(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("default binary parameters on", func(t *testing.T) {
		t.Setenv("DB_BINARY_PARAMETERS", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.DBBinaryParameters {
			t.Fatalf("expected DBBinaryParameters=true by default")
		}
	})

	t.Run("invalid binary parameters value", func(t *testing.T) {
		t.Setenv("DB_BINARY_PARAMETERS", "not-bool")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid DB_BINARY_PARAMETERS")
		}
	})

	t.Run("max open conns must be positive", func(t *testing.T) {
		t.Setenv("DB_MAX_OPEN_CONNS", "0")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for DB_MAX_OPEN_CONNS=0")
		}
	})
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]logging.Level{
		"debug":   logging.LevelDebug,
		" WARN ":  logging.LevelWarn,
		"warning": logging.LevelWarn,
		"error":   logging.LevelError,
		"verbose": logging.LevelInfo,
	}
	for raw, want := range cases {
		if got := parseLogLevel(raw); got != want {
			t.Fatalf("parseLogLevel(%q) = %s, want %s", raw, got, want)
		}
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte("SOURCE_URL=http://dotenv.local/players\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("SOURCE_URL", "")
	os.Unsetenv("SOURCE_URL")

	if err := LoadDotEnv(filepath.Join(dir, "missing.env"), path); err != nil {
		t.Fatalf("load dotenv: %v", err)
	}
	if got := os.Getenv("SOURCE_URL"); got != "http://dotenv.local/players" {
		t.Fatalf("unexpected SOURCE_URL from dotenv: %q", got)
	}
}
