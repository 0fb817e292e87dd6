package bootstrap

import (
	"context"
	"fmt"

	"github.com/osse101/MineRewards_Go/internal/burn"
	"github.com/osse101/MineRewards_Go/internal/config"
	"github.com/osse101/MineRewards_Go/internal/ledger"
)

// BurnConfig resolves the contract addresses and discount selector from cfg.
func BurnConfig(cfg *config.Config) (burn.Config, error) {
	settlement, err := ledger.ParseAddress(cfg.SettlementContract)
	if err != nil {
		return burn.Config{}, fmt.Errorf("%s SETTLEMENT_CONTRACT: %w", ErrMsgInvalidContract, err)
	}
	token, err := ledger.ParseAddress(cfg.TokenContract)
	if err != nil {
		return burn.Config{}, fmt.Errorf("%s TOKEN_CONTRACT: %w", ErrMsgInvalidContract, err)
	}
	return burn.Config{
		SettlementContract: settlement,
		TokenContract:      token,
		DiscountSelector:   ledger.SelectorFor(cfg.DiscountBurnSignature),
	}, nil
}

// DialLedger connects the JSON-RPC ledger client described by cfg.
func DialLedger(ctx context.Context, cfg *config.Config) (*ledger.EthClient, error) {
	client, err := ledger.DialEth(ctx, ledger.EthConfig{
		URL:     cfg.LedgerRPCURL,
		Timeout: cfg.LedgerTimeout,
		RPS:     cfg.LedgerRPS,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedDialLedger, err)
	}
	return client, nil
}
