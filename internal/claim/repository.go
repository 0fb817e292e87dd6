package claim

import (
	"context"

	"github.com/osse101/MineRewards_Go/internal/domain"
)

// Repository stores settled claims, one per transaction hash.
type Repository interface {
	// Reserve inserts c unless a claim for c.TxHash exists. It returns the stored
	// claim and whether this call created it.
	Reserve(ctx context.Context, c *domain.Claim) (*domain.Claim, bool, error)
	// Get returns domain.ErrClaimNotFound when no claim exists for txHash.
	Get(ctx context.Context, txHash string) (*domain.Claim, error)
	Ping(ctx context.Context) error
}
