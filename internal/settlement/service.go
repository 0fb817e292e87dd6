package settlement

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"github.com/osse101/MineRewards_Go/internal/burn"
	"github.com/osse101/MineRewards_Go/internal/domain"
	"github.com/osse101/MineRewards_Go/internal/logger"
	"github.com/osse101/MineRewards_Go/internal/metrics"
)

// Request asks for rewards against one burn transaction.
type Request struct {
	Wallet         common.Address
	TxHash         common.Hash
	ExpectedAmount *decimal.Decimal
	DrawCount      int
	// Policy overrides the service default when non-empty.
	Policy domain.DrawPolicy
}

// Result is the outcome of a settlement. A rejected burn is a normal result, not an error:
// Verified is false, Reason names the failed check and Results is empty.
type Result struct {
	Verified     bool                `json:"verified"`
	Reason       domain.ReasonCode   `json:"reason,omitempty"`
	Message      string              `json:"message,omitempty"`
	Policy       domain.DrawPolicy   `json:"policy"`
	BurnedAmount *decimal.Decimal    `json:"burned_amount,omitempty"`
	Results      []domain.DrawResult `json:"results"`
}

// Drawer produces count rewards for txHash under policy.
type Drawer interface {
	Draw(ctx context.Context, policy domain.DrawPolicy, txHash common.Hash, count int) ([]domain.DrawResult, error)
}

// Service verifies a burn and, only if it holds, draws the rewards it pays for.
type Service interface {
	VerifyAndSettle(ctx context.Context, req Request) (*Result, error)
	DefaultPolicy() domain.DrawPolicy
}

type service struct {
	verifier      burn.Verifier
	drawer        Drawer
	defaultPolicy domain.DrawPolicy
}

// NewService creates a settlement service. defaultPolicy applies to requests without one.
func NewService(verifier burn.Verifier, drawer Drawer, defaultPolicy domain.DrawPolicy) Service {
	return &service{
		verifier:      verifier,
		drawer:        drawer,
		defaultPolicy: defaultPolicy,
	}
}

func (s *service) DefaultPolicy() domain.DrawPolicy {
	return s.defaultPolicy
}

func (s *service) VerifyAndSettle(ctx context.Context, req Request) (*Result, error) {
	policy := req.Policy
	if policy == "" {
		policy = s.defaultPolicy
	}
	if policy != domain.PolicyWeighted && policy != domain.PolicyDiverse {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPolicy, policy)
	}
	if req.DrawCount < 1 {
		return nil, fmt.Errorf("%w: got %d", domain.ErrInvalidDrawCount, req.DrawCount)
	}

	log := logger.FromContext(ctx).With(
		LogFieldWallet, req.Wallet.Hex(),
		LogFieldTxHash, req.TxHash.Hex(),
		LogFieldPolicy, policy,
		LogFieldDrawCount, req.DrawCount,
	)

	proof, err := s.verifier.Verify(ctx, req.TxHash, req.Wallet, req.ExpectedAmount)
	if err != nil {
		var verr *burn.VerificationError
		if !errors.As(err, &verr) {
			metrics.SettlementsTotal.WithLabelValues(string(policy), metrics.OutcomeError).Inc()
			return nil, fmt.Errorf("%s: %w", ErrContextVerifyBurn, err)
		}
		metrics.SettlementsTotal.WithLabelValues(string(policy), metrics.OutcomeRejected).Inc()
		log.Info(LogMsgSettlementRejected, LogFieldReason, verr.Reason)
		return &Result{
			Verified: false,
			Reason:   verr.Reason,
			Message:  UserMessageVerificationFailed,
			Policy:   policy,
			Results:  []domain.DrawResult{},
		}, nil
	}
	if !proof.IsValid {
		// A verifier must pair every invalid proof with an error.
		metrics.SettlementsTotal.WithLabelValues(string(policy), metrics.OutcomeError).Inc()
		return nil, fmt.Errorf("%s: %w: invalid proof without error", ErrContextVerifyBurn, domain.ErrConfigurationDefect)
	}

	results, err := s.drawer.Draw(ctx, policy, req.TxHash, req.DrawCount)
	if err != nil {
		metrics.SettlementsTotal.WithLabelValues(string(policy), metrics.OutcomeError).Inc()
		log.Error(ErrContextDraw, LogFieldError, err)
		return nil, fmt.Errorf("%s: %w", ErrContextDraw, err)
	}

	for _, r := range results {
		metrics.DrawsTotal.WithLabelValues(r.Entry.Rarity.String()).Inc()
	}
	metrics.SettlementsTotal.WithLabelValues(string(policy), metrics.OutcomeSuccess).Inc()
	log.Info(LogMsgSettlementComplete, LogFieldEntries, entryIDs(results))

	return &Result{
		Verified:     true,
		Policy:       policy,
		BurnedAmount: proof.BurnedAmount,
		Results:      results,
	}, nil
}

func entryIDs(results []domain.DrawResult) []string {
	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.Entry.ID
	}
	return ids
}
