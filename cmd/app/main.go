package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/osse101/MineRewards_Go/internal/attribute"
	"github.com/osse101/MineRewards_Go/internal/bootstrap"
	"github.com/osse101/MineRewards_Go/internal/burn"
	"github.com/osse101/MineRewards_Go/internal/claim"
	"github.com/osse101/MineRewards_Go/internal/config"
	"github.com/osse101/MineRewards_Go/internal/domain"
	"github.com/osse101/MineRewards_Go/internal/draw"
	"github.com/osse101/MineRewards_Go/internal/server"
	"github.com/osse101/MineRewards_Go/internal/settlement"
)

func main() {
	// Load .env before validating so file-provided values count
	_ = godotenv.Load()

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}
	for _, warning := range warnings {
		slog.Warn(warning)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	bootstrap.SetupLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rewards, err := bootstrap.LoadRewards(ctx, cfg.CatalogPath, cfg.DistributionPath)
	if err != nil {
		slog.Error("Reward configuration rejected", "error", err)
		os.Exit(1)
	}

	burnCfg, err := bootstrap.BurnConfig(cfg)
	if err != nil {
		slog.Error("Invalid burn configuration", "error", err)
		os.Exit(1)
	}

	ledgerClient, err := bootstrap.DialLedger(ctx, cfg)
	if err != nil {
		slog.Error("Ledger unavailable", "error", err)
		os.Exit(1)
	}

	store, err := bootstrap.InitializeClaimStore(ctx, cfg)
	if err != nil {
		ledgerClient.Close()
		slog.Error("Claim store unavailable", "error", err)
		os.Exit(1)
	}

	// BatchPolicy was validated by config.Load
	defaultPolicy := domain.DrawPolicy(cfg.BatchPolicy)
	engine := draw.NewEngine(rewards.Catalog)
	settler := settlement.NewService(burn.NewVerifier(ledgerClient, burnCfg), engine, defaultPolicy)
	claims := claim.NewService(store.Repository, settler, rewards.Catalog, claim.Config{
		CacheSize: cfg.ClaimCacheSize,
		CacheTTL:  cfg.ClaimCacheTTL,
	})

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		MaxBodyBytes:   cfg.MaxRequestBodyBytes,
	}, claims, engine, defaultPolicy, rewards.Catalog, rewards.Distribution, attribute.NewGenerator(rewards.Distribution, nil))

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:     srv,
		Ledger:     ledgerClient,
		ClaimStore: store,
	})
}
