package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/MineRewards_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server     *server.Server
	Ledger     interface{ Close() }
	ClaimStore *ClaimStore
}

// GracefulShutdown stops components in dependency order:
// 1. HTTP server (stop accepting requests, drain in-flight settlements)
// 2. Ledger connection
// 3. Claim store pool
//
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)
	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Ledger != nil {
		slog.Info(LogMsgClosingLedger)
		components.Ledger.Close()
	}

	if components.ClaimStore != nil {
		slog.Info(LogMsgClosingClaimStore)
		components.ClaimStore.Close()
	}

	slog.Info(LogMsgServerStopped)
}
