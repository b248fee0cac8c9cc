package observability

import (
	"context"

	"github.com/grafana/pyroscope-go"
	"github.com/riskibarqy/baseball-stats/internal/config"
	"github.com/riskibarqy/baseball-stats/internal/platform/logging"
)

// Components that report profiles. The importer is a short batch job, so it
// skips the in-use and goroutine profiles of the long-running API.
const (
	ComponentAPI      = "api"
	ComponentImporter = "importer"
)

func profileTypes(component string) []pyroscope.ProfileType {
	types := []pyroscope.ProfileType{
		pyroscope.ProfileCPU,
		pyroscope.ProfileAllocObjects,
		pyroscope.ProfileAllocSpace,
	}
	if component == ComponentImporter {
		return types
	}
	return append(types,
		pyroscope.ProfileInuseObjects,
		pyroscope.ProfileInuseSpace,
		pyroscope.ProfileGoroutines,
	)
}

// InitPyroscope starts continuous profiling when enabled. The returned
// Shutdown flushes pending profiles.
func InitPyroscope(cfg config.Config, component string, logger *logging.Logger) (Shutdown, error) {
	if logger == nil {
		logger = logging.Default()
	}

	if !cfg.PyroscopeEnabled {
		logger.Info("pyroscope disabled", "reason", "PYROSCOPE_ENABLED=false")
		return noopShutdown, nil
	}

	profiler, err := pyroscope.Start(pyroscope.Config{
		ApplicationName:   cfg.PyroscopeAppName,
		ServerAddress:     cfg.PyroscopeServerAddress,
		AuthToken:         cfg.PyroscopeAuthToken,
		BasicAuthUser:     cfg.PyroscopeBasicAuthUser,
		BasicAuthPassword: cfg.PyroscopeBasicAuthPassword,
		UploadRate:        cfg.PyroscopeUploadRate,
		Tags: map[string]string{
			"env":       cfg.AppEnv,
			"service":   cfg.ServiceName,
			"component": component,
		},
		ProfileTypes: profileTypes(component),
	})
	if err != nil {
		return nil, err
	}

	logger.Info("pyroscope enabled",
		"server_address", cfg.PyroscopeServerAddress,
		"application", cfg.PyroscopeAppName,
		"component", component,
	)

	return func(context.Context) error { return profiler.Stop() }, nil
}
