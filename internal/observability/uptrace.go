package observability

import (
	"github.com/uptrace/uptrace-go/uptrace"

	"github.com/riskibarqy/worldcup-analytics/internal/config"
	"github.com/riskibarqy/worldcup-analytics/internal/platform/logging"
)

// startUptrace installs the global otel providers. Without a DSN it stays
// off even when enabled.
func startUptrace(cfg config.Config, logger *logging.Logger) (stopFunc, error) {
	switch {
	case !cfg.UptraceEnabled:
		logger.Info("uptrace disabled", "reason", "UPTRACE_ENABLED=false")
		return nil, nil
	case cfg.UptraceDSN == "":
		logger.Warn("uptrace disabled", "reason", "no dsn")
		return nil, nil
	}

	uptrace.ConfigureOpentelemetry(
		uptrace.WithDSN(cfg.UptraceDSN),
		uptrace.WithServiceName(cfg.ServiceName),
		uptrace.WithServiceVersion(cfg.ServiceVersion),
		uptrace.WithDeploymentEnvironment(cfg.AppEnv),
		uptrace.WithLoggingEnabled(cfg.UptraceLogsEnabled),
	)
	logger.Info("uptrace enabled",
		"service", cfg.ServiceName,
		"version", cfg.ServiceVersion,
		"env", cfg.AppEnv,
		"logs", cfg.UptraceLogsEnabled,
	)
	return uptrace.Shutdown, nil
}
