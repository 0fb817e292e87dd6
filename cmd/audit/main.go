package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"

	"github.com/osse101/MineRewards_Go/internal/audit"
	"github.com/osse101/MineRewards_Go/internal/bootstrap"
	"github.com/osse101/MineRewards_Go/internal/burn"
	"github.com/osse101/MineRewards_Go/internal/config"
	"github.com/osse101/MineRewards_Go/internal/domain"
	"github.com/osse101/MineRewards_Go/internal/draw"
	"github.com/osse101/MineRewards_Go/internal/ledger"
	"github.com/osse101/MineRewards_Go/internal/logger"
	"github.com/osse101/MineRewards_Go/internal/settlement"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	txFlag := flag.StringArray("tx", nil, "burn transaction hash to audit (repeatable)")
	countFlag := flag.Int("count", 1, "number of draws to replay per transaction")
	policyFlag := flag.String("policy", "", "draw policy: weighted or diverse (or set BATCH_POLICY env var)")
	concurrencyFlag := flag.Int("concurrency", audit.DefaultConcurrency, "maximum transactions audited at once")

	verifyFlag := flag.Bool("verify", false, "also verify each burn against the ledger")
	walletFlag := flag.String("wallet", "", "claimant wallet, required with --verify")
	rpcFlag := flag.String("rpc", "", "ledger JSON-RPC URL (or set LEDGER_RPC_URL env var)")
	settlementFlag := flag.String("settlement-contract", "", "settlement contract address (or set SETTLEMENT_CONTRACT env var)")
	tokenFlag := flag.String("token-contract", "", "token contract address (or set TOKEN_CONTRACT env var)")
	retriesFlag := flag.Uint64("retries", audit.DefaultMaxRetries, "retries while the ledger is unavailable")
	timeoutFlag := flag.Duration("timeout", config.DefaultLedgerTimeout, "per-call ledger timeout")

	catalogFlag := flag.String("catalog", envOr("CATALOG_PATH", config.ConfigPathCatalog), "reward catalog path")
	distributionFlag := flag.String("distribution", envOr("DISTRIBUTION_PATH", config.ConfigPathDistribution), "power distribution path")
	verboseFlag := flag.Bool("verbose", false, "enable verbose (debug) logging")

	flag.Parse()

	envOverride(policyFlag, "BATCH_POLICY")
	envOverride(rpcFlag, "LEDGER_RPC_URL")
	envOverride(settlementFlag, "SETTLEMENT_CONTRACT")
	envOverride(tokenFlag, "TOKEN_CONTRACT")

	level := logger.LogLevelInfo
	if *verboseFlag {
		level = logger.LogLevelDebug
	}
	// Logs go to stderr so stdout stays machine-readable
	logger.InitLoggerWithWriter(logger.NewConfig(level, logger.LogFormatText, "mine-rewards-audit", "", logger.EnvironmentDev, false), os.Stderr)

	if len(*txFlag) == 0 {
		return fmt.Errorf("at least one --tx is required")
	}
	hashes := make([]common.Hash, 0, len(*txFlag))
	for _, raw := range *txFlag {
		h, err := ledger.ParseTxHash(raw)
		if err != nil {
			return fmt.Errorf("--tx %q: %w", raw, err)
		}
		hashes = append(hashes, h)
	}

	policy, err := domain.ParseDrawPolicy(*policyFlag, domain.PolicyWeighted)
	if err != nil {
		return fmt.Errorf("--policy: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rewards, err := bootstrap.LoadRewards(ctx, *catalogFlag, *distributionFlag)
	if err != nil {
		return err
	}
	engine := draw.NewEngine(rewards.Catalog)

	opts := audit.Options{
		Count:       *countFlag,
		Policy:      policy,
		Verify:      *verifyFlag,
		Concurrency: *concurrencyFlag,
	}

	var settler settlement.Service
	if *verifyFlag {
		if opts.Wallet, err = ledger.ParseAddress(*walletFlag); err != nil {
			return fmt.Errorf("--wallet is required with --verify: %w", err)
		}
		if *rpcFlag == "" {
			return fmt.Errorf("--rpc is required with --verify")
		}
		burnCfg, err := bootstrap.BurnConfig(&config.Config{
			SettlementContract:    *settlementFlag,
			TokenContract:         *tokenFlag,
			DiscountBurnSignature: envOr("DISCOUNT_BURN_SIGNATURE", config.DefaultDiscountBurnSignature),
		})
		if err != nil {
			return err
		}

		client, err := ledger.DialEth(ctx, ledger.EthConfig{URL: *rpcFlag, Timeout: *timeoutFlag, RPS: config.DefaultLedgerRPS})
		if err != nil {
			return err
		}
		defer client.Close()

		settler = settlement.NewService(burn.NewVerifier(client, burnCfg), engine, policy)
	}

	retry := audit.DefaultRetryConfig()
	retry.MaxRetries = *retriesFlag

	start := time.Now()
	reports, err := audit.NewAuditor(engine, settler, retry).Run(ctx, hashes, opts)
	if err != nil {
		return err
	}
	slog.Debug("Audit finished", "transactions", len(reports), "duration", time.Since(start))

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(reports)
}

func envOverride(flagValue *string, key string) {
	if *flagValue != "" {
		return
	}
	if v := os.Getenv(key); v != "" {
		*flagValue = v
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
