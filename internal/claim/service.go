package claim

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/MineRewards_Go/internal/concurrency"
	"github.com/osse101/MineRewards_Go/internal/domain"
	"github.com/osse101/MineRewards_Go/internal/logger"
	"github.com/osse101/MineRewards_Go/internal/metrics"
	"github.com/osse101/MineRewards_Go/internal/settlement"
)

// EntryLookup resolves stored entry IDs back to catalog entries.
type EntryLookup interface {
	Get(id string) (*domain.CatalogEntry, bool)
}

// Outcome is a settlement result plus whether it was served from an existing claim.
type Outcome struct {
	*settlement.Result
	Replayed bool `json:"replayed"`
}

// Service makes each burn transaction redeemable once.
type Service interface {
	Settle(ctx context.Context, req settlement.Request) (*Outcome, error)
	Get(ctx context.Context, txHash string) (*domain.Claim, error)
	Ping(ctx context.Context) error
}

// Config tunes the claim cache.
type Config struct {
	CacheSize int
	CacheTTL  time.Duration
}

type service struct {
	repo    Repository
	settler settlement.Service
	catalog EntryLookup
	cache   *claimCache
	locks   *concurrency.LockManager
	now     func() time.Time
}

// NewService wraps settler so that a transaction hash settles at most once.
func NewService(repo Repository, settler settlement.Service, catalog EntryLookup, cfg Config) Service {
	return &service{
		repo:    repo,
		settler: settler,
		catalog: catalog,
		cache:   newClaimCache(cfg.CacheSize, cfg.CacheTTL),
		locks:   concurrency.NewLockManager(),
		now:     time.Now,
	}
}

// Settle returns the stored result when req.TxHash was already settled by the same wallet,
// domain.ErrAlreadyClaimed when another wallet settled it, and otherwise settles and records it.
// A resubmission must ask for the stored draw count and policy, else domain.ErrClaimMismatch;
// an expected amount that differs from the stored burn is rejected with AMOUNT_MISMATCH.
// Concurrent calls for one hash are serialized in-process; across processes the
// repository's unique key decides.
func (s *service) Settle(ctx context.Context, req settlement.Request) (*Outcome, error) {
	log := logger.FromContext(ctx)
	key := req.TxHash.Hex()
	wallet := req.Wallet.Hex()

	unlock := s.locks.Lock(key)
	defer unlock()

	existing, err := s.Get(ctx, key)
	switch {
	case err == nil:
		return s.replay(ctx, existing, req)
	case !errors.Is(err, domain.ErrClaimNotFound):
		return nil, err
	}

	res, err := s.settler.VerifyAndSettle(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextSettle, err)
	}
	if !res.Verified {
		return &Outcome{Result: res}, nil
	}

	c := newClaim(key, wallet, res, s.now())
	stored, created, err := s.repo.Reserve(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextReserve, err)
	}
	if !created {
		log.Warn(LogMsgLostReserveRace, LogFieldTxHash, key)
		return s.replay(ctx, stored, req)
	}

	s.cache.Set(stored)
	log.Info(LogMsgClaimRecorded, LogFieldTxHash, key, LogFieldWallet, wallet, LogFieldClaimID, stored.ID)
	return &Outcome{Result: res}, nil
}

// Get returns the claim for txHash, consulting the cache first.
func (s *service) Get(ctx context.Context, txHash string) (*domain.Claim, error) {
	if c, ok := s.cache.Get(txHash); ok {
		return c, nil
	}
	c, err := s.repo.Get(ctx, txHash)
	if err != nil {
		if errors.Is(err, domain.ErrClaimNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", ErrContextLookup, err)
	}
	s.cache.Set(c)
	return c, nil
}

func (s *service) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

func (s *service) replay(ctx context.Context, c *domain.Claim, req settlement.Request) (*Outcome, error) {
	log := logger.FromContext(ctx)
	wallet := req.Wallet.Hex()
	if c.Wallet != wallet {
		log.Warn(LogMsgClaimConflict, LogFieldTxHash, c.TxHash, LogFieldWallet, wallet, LogFieldOwner, c.Wallet)
		return nil, fmt.Errorf("%w: %s", domain.ErrAlreadyClaimed, c.TxHash)
	}

	if req.DrawCount != c.DrawCount {
		log.Warn(LogMsgReplayMismatch, LogFieldTxHash, c.TxHash, LogFieldField, "draw_count")
		return nil, fmt.Errorf("%w: %s settled with %d draws, got %d",
			domain.ErrClaimMismatch, c.TxHash, c.DrawCount, req.DrawCount)
	}
	if req.Policy != "" && req.Policy != c.Policy {
		log.Warn(LogMsgReplayMismatch, LogFieldTxHash, c.TxHash, LogFieldField, "policy")
		return nil, fmt.Errorf("%w: %s settled with policy %q, got %q",
			domain.ErrClaimMismatch, c.TxHash, c.Policy, req.Policy)
	}
	if req.ExpectedAmount != nil && !req.ExpectedAmount.Equal(c.BurnedAmount) {
		log.Info(LogMsgReplayMismatch, LogFieldTxHash, c.TxHash, LogFieldField, "expected_amount")
		return &Outcome{
			Result: &settlement.Result{
				Verified: false,
				Reason:   domain.ReasonAmountMismatch,
				Message:  settlement.UserMessageVerificationFailed,
				Policy:   c.Policy,
				Results:  []domain.DrawResult{},
			},
			Replayed: true,
		}, nil
	}

	if len(c.EntryIDs) != len(c.HashValues) {
		return nil, fmt.Errorf("%s %s: %w: %d entries, %d hash values",
			ErrContextReplay, c.TxHash, domain.ErrMalformedData, len(c.EntryIDs), len(c.HashValues))
	}
	results := make([]domain.DrawResult, len(c.EntryIDs))
	for i, id := range c.EntryIDs {
		entry, ok := s.catalog.Get(id)
		if !ok {
			return nil, fmt.Errorf("%s %s: %w: entry %q no longer in catalog",
				ErrContextReplay, c.TxHash, domain.ErrConfigurationDefect, id)
		}
		results[i] = domain.DrawResult{Entry: entry, SourceHashValue: c.HashValues[i], DrawIndex: i + 1}
	}

	metrics.ClaimsReplayedTotal.Inc()
	log.Info(LogMsgClaimReplayed, LogFieldTxHash, c.TxHash, LogFieldClaimID, c.ID)

	amount := c.BurnedAmount
	return &Outcome{
		Result: &settlement.Result{
			Verified:     true,
			Policy:       c.Policy,
			BurnedAmount: &amount,
			Results:      results,
		},
		Replayed: true,
	}, nil
}

func newClaim(txHash, wallet string, res *settlement.Result, now time.Time) *domain.Claim {
	c := &domain.Claim{
		ID:         uuid.NewString(),
		TxHash:     txHash,
		Wallet:     wallet,
		Policy:     res.Policy,
		DrawCount:  len(res.Results),
		EntryIDs:   make([]string, len(res.Results)),
		HashValues: make([]int, len(res.Results)),
		CreatedAt:  now.UTC(),
	}
	if res.BurnedAmount != nil {
		c.BurnedAmount = *res.BurnedAmount
	}
	for i, r := range res.Results {
		c.EntryIDs[i] = r.Entry.ID
		c.HashValues[i] = r.SourceHashValue
	}
	return c
}
