package burn

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"github.com/osse101/MineRewards_Go/internal/domain"
	"github.com/osse101/MineRewards_Go/internal/ledger"
	"github.com/osse101/MineRewards_Go/internal/logger"
	"github.com/osse101/MineRewards_Go/internal/metrics"
)

// Verifier checks that a claimed transaction is a valid token burn by the claimant.
type Verifier interface {
	Verify(ctx context.Context, txHash common.Hash, claimant common.Address, expectedAmount *decimal.Decimal) (domain.BurnProof, error)
}

// Config names the two contracts a burn may be sent to.
type Config struct {
	SettlementContract common.Address
	TokenContract      common.Address
	// DiscountSelector is the settlement contract's burn entry point.
	DiscountSelector ledger.Selector
}

// VerificationError is returned for every rejected burn. It wraps the reason's sentinel error.
// Errors that map to no reason are returned bare, without this wrapper.
type VerificationError struct {
	Reason domain.ReasonCode
	Err    error
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("burn verification failed (%s): %v", e.Reason, e.Err)
}

func (e *VerificationError) Unwrap() error {
	return e.Err
}

type verifier struct {
	client ledger.Client
	cfg    Config
}

// NewVerifier creates a burn verifier reading from client.
func NewVerifier(client ledger.Client, cfg Config) Verifier {
	return &verifier{client: client, cfg: cfg}
}

func (v *verifier) Verify(ctx context.Context, txHash common.Hash, claimant common.Address, expectedAmount *decimal.Decimal) (domain.BurnProof, error) {
	log := logger.FromContext(ctx).With(LogFieldTxHash, txHash.Hex(), LogFieldClaimant, claimant.Hex())
	log.Debug(LogMsgVerificationStarted)

	amount, err := v.verify(ctx, txHash, claimant, expectedAmount)
	if err != nil {
		reason := domain.ReasonFor(err)
		if reason == domain.ReasonNone {
			// Not a verdict on the burn; the caller decides how to surface it.
			metrics.BurnVerificationsTotal.WithLabelValues(metrics.ReasonUnclassified).Inc()
			log.Error(LogMsgVerificationErrored, LogFieldError, err)
			return domain.BurnProof{IsValid: false}, fmt.Errorf("%s: %w", ErrContextUnclassified, err)
		}
		metrics.BurnVerificationsTotal.WithLabelValues(string(reason)).Inc()
		log.Info(LogMsgVerificationFailed, LogFieldReason, reason, LogFieldError, err)
		return domain.BurnProof{IsValid: false, FailureReason: reason}, &VerificationError{Reason: reason, Err: err}
	}

	metrics.BurnVerificationsTotal.WithLabelValues(metrics.ReasonValid).Inc()
	log.Info(LogMsgVerificationPassed, LogFieldAmount, amount.String())
	return domain.BurnProof{IsValid: true, BurnedAmount: &amount}, nil
}

func (v *verifier) verify(ctx context.Context, txHash common.Hash, claimant common.Address, expected *decimal.Decimal) (decimal.Decimal, error) {
	receipt, err := v.client.TransactionReceipt(ctx, txHash)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", ErrContextFetchReceipt, err)
	}
	if receipt == nil {
		return decimal.Zero, fmt.Errorf("%s: %w", ErrContextFetchReceipt, domain.ErrNotFound)
	}
	if !receipt.Succeeded() {
		return decimal.Zero, fmt.Errorf("%w: status %d", domain.ErrTxFailed, receipt.Status)
	}

	tx, err := v.client.TransactionByHash(ctx, txHash)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", ErrContextFetchTransaction, err)
	}
	if tx == nil {
		return decimal.Zero, fmt.Errorf("%s: %w", ErrContextFetchTransaction, domain.ErrNotFound)
	}

	if err := v.checkCall(tx, expected); err != nil {
		return decimal.Zero, err
	}

	return findBurn(receipt.Logs, claimant, expected)
}

// checkCall validates the destination and selector, and the call argument for direct burns.
func (v *verifier) checkCall(tx *ledger.Transaction, expected *decimal.Decimal) error {
	if tx.To == nil {
		return fmt.Errorf("%w: contract creation", domain.ErrWrongDestination)
	}
	sel, args, err := ledger.SplitCall(tx.Input)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrWrongFunction, ErrContextDecodeCall, err)
	}

	switch *tx.To {
	case v.cfg.SettlementContract:
		if sel != v.cfg.DiscountSelector {
			return fmt.Errorf("%w: selector %s, want %s", domain.ErrWrongFunction, sel, v.cfg.DiscountSelector)
		}
		return nil
	case v.cfg.TokenContract:
		if sel != ledger.DirectBurnSelector {
			return fmt.Errorf("%w: selector %s, want %s", domain.ErrWrongFunction, sel, ledger.DirectBurnSelector)
		}
		raw, err := ledger.DecodeUint256Arg(args)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", domain.ErrWrongFunction, ErrContextDecodeCall, err)
		}
		return compareAmount(ledger.ToDecimal(raw), expected, "call argument")
	default:
		return fmt.Errorf("%w: %s", domain.ErrWrongDestination, tx.To.Hex())
	}
}

// findBurn locates the claimant's transfer to the burn address.
// Transfer-topic logs that fail fixed-layout decoding are not counted as burns.
func findBurn(logs []ledger.Log, claimant common.Address, expected *decimal.Decimal) (decimal.Decimal, error) {
	sawTransfer := false
	for _, l := range logs {
		if !ledger.IsTransfer(l) {
			continue
		}
		sawTransfer = true

		tr, err := ledger.DecodeTransfer(l)
		if err != nil {
			continue
		}
		if tr.From != claimant || tr.To != ledger.BurnAddress {
			continue
		}

		amount := ledger.ToDecimal(tr.Amount)
		if err := compareAmount(amount, expected, "transfer amount"); err != nil {
			return decimal.Zero, err
		}
		return amount, nil
	}

	if !sawTransfer {
		return decimal.Zero, domain.ErrNoTransferEvent
	}
	return decimal.Zero, fmt.Errorf("%w: %s", domain.ErrNoBurnFromClaimant, claimant.Hex())
}

func compareAmount(got decimal.Decimal, expected *decimal.Decimal, what string) error {
	if expected == nil || got.Equal(*expected) {
		return nil
	}
	return fmt.Errorf("%w: %s %s, expected %s", domain.ErrAmountMismatch, what, got, expected)
}
