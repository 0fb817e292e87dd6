// Package audit replays draws for burn transactions so anyone can check a settlement.
package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/errgroup"

	"github.com/osse101/MineRewards_Go/internal/domain"
	"github.com/osse101/MineRewards_Go/internal/draw"
	"github.com/osse101/MineRewards_Go/internal/logger"
	"github.com/osse101/MineRewards_Go/internal/settlement"
)

// Options selects what is replayed for each hash.
type Options struct {
	Count  int
	Policy domain.DrawPolicy
	// Verify re-checks the burn against the ledger. Wallet is required with it.
	Verify bool
	Wallet common.Address
	// Concurrency caps hashes audited at once. Zero means DefaultConcurrency.
	Concurrency int
}

// Report is the audit of one transaction hash.
type Report struct {
	TxHash    string              `json:"tx_hash"`
	Seed      uint32              `json:"seed"`
	HashValue int                 `json:"hash_value"`
	TieBit    int                 `json:"tie_bit"`
	Policy    domain.DrawPolicy   `json:"policy"`
	Results   []domain.DrawResult `json:"results"`
	// Settlement is set only when the burn was verified.
	Settlement *settlement.Result `json:"settlement,omitempty"`
	Attempts   int                `json:"attempts,omitempty"`
}

// RetryConfig shapes the exponential backoff used while the ledger is unavailable.
type RetryConfig struct {
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// DefaultRetryConfig is used by NewAuditor when no retry config is given.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:      DefaultMaxRetries,
		InitialInterval: DefaultInitialInterval,
		MaxInterval:     DefaultMaxInterval,
	}
}

// Auditor recomputes draws and optionally re-verifies burns.
type Auditor struct {
	drawer  settlement.Drawer
	settler settlement.Service
	retry   RetryConfig
}

// NewAuditor creates an auditor. settler may be nil when burns are never verified.
func NewAuditor(drawer settlement.Drawer, settler settlement.Service, retry RetryConfig) *Auditor {
	return &Auditor{drawer: drawer, settler: settler, retry: retry}
}

// Run audits every hash and returns reports in input order.
// The first hard error cancels the remaining work.
func (a *Auditor) Run(ctx context.Context, hashes []common.Hash, opts Options) ([]Report, error) {
	if opts.Count < 1 {
		return nil, fmt.Errorf("%w: got %d", domain.ErrInvalidDrawCount, opts.Count)
	}
	if opts.Verify && a.settler == nil {
		return nil, fmt.Errorf("%w: verification needs a ledger", domain.ErrInvalidInput)
	}
	limit := opts.Concurrency
	if limit < 1 {
		limit = DefaultConcurrency
	}

	reports := make([]Report, len(hashes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, h := range hashes {
		g.Go(func() error {
			r, err := a.auditOne(gctx, h, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", h.Hex(), err)
			}
			reports[i] = *r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgAuditComplete, LogFieldCount, len(reports))
	return reports, nil
}

func (a *Auditor) auditOne(ctx context.Context, txHash common.Hash, opts Options) (*Report, error) {
	results, err := a.drawer.Draw(ctx, opts.Policy, txHash, opts.Count)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextDraw, err)
	}

	report := &Report{
		TxHash:    txHash.Hex(),
		Seed:      draw.Seed(txHash),
		HashValue: draw.HashValue(txHash),
		TieBit:    draw.TieBit(txHash),
		Policy:    opts.Policy,
		Results:   results,
	}
	if !opts.Verify {
		return report, nil
	}

	res, attempts, err := a.verify(ctx, txHash, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextVerify, err)
	}
	report.Settlement = res
	report.Attempts = attempts
	return report, nil
}

// verify settles txHash without recording a claim, retrying while the ledger is unavailable.
// After the retries are spent the last unavailable result is returned as is.
func (a *Auditor) verify(ctx context.Context, txHash common.Hash, opts Options) (*settlement.Result, int, error) {
	req := settlement.Request{
		Wallet:    opts.Wallet,
		TxHash:    txHash,
		DrawCount: opts.Count,
		Policy:    opts.Policy,
	}

	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = a.retry.InitialInterval
	eb.MaxInterval = a.retry.MaxInterval
	eb.MaxElapsedTime = 0
	policy := backoff.WithContext(backoff.WithMaxRetries(eb, a.retry.MaxRetries), ctx)

	var (
		last     *settlement.Result
		hardErr  error
		attempts int
	)
	op := func() error {
		attempts++
		res, err := a.settler.VerifyAndSettle(ctx, req)
		if err != nil {
			hardErr = err
			return backoff.Permanent(err)
		}
		last = res
		if !res.Verified && res.Reason.Retryable() {
			return fmt.Errorf("%w: attempt %d", domain.ErrLedgerUnavailable, attempts)
		}
		return nil
	}
	notify := func(err error, wait time.Duration) {
		logger.FromContext(ctx).Warn(LogMsgLedgerRetry,
			LogFieldTxHash, txHash.Hex(),
			LogFieldAttempt, attempts,
			LogFieldWait, wait)
	}

	_ = backoff.RetryNotify(op, policy, notify)
	if hardErr != nil {
		return nil, attempts, hardErr
	}
	if err := ctx.Err(); err != nil {
		return nil, attempts, err
	}
	return last, attempts, nil
}
