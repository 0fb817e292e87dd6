package bootstrap

import "time"

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting MineRewards"
	LogMsgConfigurationLoaded = "Configuration loaded"
)

// Reward configuration messages
const (
	LogMsgLoadingRewards = "Loading reward catalog and power distribution"
	LogMsgRewardsLoaded  = "Reward configuration loaded"

	ErrMsgLedgerSelfCheck      = "ledger constants self-check failed"
	ErrMsgFailedLoadCatalog    = "failed to load reward catalog"
	ErrMsgFailedLoadDist       = "failed to load power distribution"
	ErrMsgFailedDialLedger     = "failed to connect to ledger"
	ErrMsgFailedOpenClaimStore = "failed to open claim store"
	ErrMsgFailedMigrate        = "failed to apply claim store migrations"
	ErrMsgInvalidContract      = "invalid contract address"
)

// Claim store messages
const (
	LogMsgClaimStorePostgres = "Using PostgreSQL claim store"
	LogMsgClaimStoreMemory   = "Using in-memory claim store, claims are lost on restart"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgClosingLedger        = "Closing ledger connection..."
	LogMsgClosingClaimStore    = "Closing claim store..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
)

const (
	// ShutdownTimeout bounds graceful shutdown of the HTTP server
	ShutdownTimeout = 15 * time.Second
)
