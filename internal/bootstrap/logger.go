package bootstrap

import (
	"log/slog"

	"github.com/osse101/MineRewards_Go/internal/config"
	"github.com/osse101/MineRewards_Go/internal/logger"
)

// SetupLogger initializes the process logger from cfg and logs the startup banner.
// Source locations are only added in development.
func SetupLogger(cfg *config.Config) *slog.Logger {
	addSource := cfg.Environment == logger.EnvironmentDev

	l := logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	))

	l.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	l.Info(LogMsgStartingService,
		"environment", cfg.Environment,
		"version", cfg.Version)

	l.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"claim_store", cfg.ClaimStore,
		"batch_policy", cfg.BatchPolicy,
		"catalog_path", cfg.CatalogPath,
		"distribution_path", cfg.DistributionPath,
		"ledger_timeout", cfg.LedgerTimeout,
		"ledger_rps", cfg.LedgerRPS)

	return l
}
