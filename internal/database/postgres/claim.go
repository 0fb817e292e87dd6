package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/osse101/MineRewards_Go/internal/domain"
)

// ClaimRepository implements claim.Repository
type ClaimRepository struct {
	db *pgxpool.Pool
}

// NewClaimRepository creates a new claim repository
func NewClaimRepository(db *pgxpool.Pool) *ClaimRepository {
	return &ClaimRepository{db: db}
}

// Reserve inserts c unless its tx hash is already claimed. It returns the stored claim
// and whether this call created it.
func (r *ClaimRepository) Reserve(ctx context.Context, c *domain.Claim) (*domain.Claim, bool, error) {
	query := `
		INSERT INTO claims (id, tx_hash, wallet, policy, draw_count, burned_amount, entry_ids, hash_values, created_at)
		VALUES ($1, $2, $3, $4, $5, $6::numeric, $7, $8, $9)
		ON CONFLICT (tx_hash) DO NOTHING
		RETURNING id
	`
	var id string
	err := r.db.QueryRow(ctx, query,
		c.ID,
		c.TxHash,
		c.Wallet,
		string(c.Policy),
		c.DrawCount,
		c.BurnedAmount.String(),
		c.EntryIDs,
		c.HashValues,
		c.CreatedAt,
	).Scan(&id)
	switch {
	case err == nil:
		stored := *c
		return &stored, true, nil
	case errors.Is(err, pgx.ErrNoRows):
		existing, err := r.Get(ctx, c.TxHash)
		if err != nil {
			return nil, false, err
		}
		return existing, false, nil
	default:
		return nil, false, fmt.Errorf("%s: %w", ErrMsgFailedToInsertClaim, err)
	}
}

// Get returns the claim for txHash or domain.ErrClaimNotFound
func (r *ClaimRepository) Get(ctx context.Context, txHash string) (*domain.Claim, error) {
	query := `
		SELECT id, tx_hash, wallet, policy, draw_count, burned_amount::text, entry_ids, hash_values, created_at
		FROM claims
		WHERE tx_hash = $1
	`
	var (
		c      domain.Claim
		policy string
		amount string
	)
	err := r.db.QueryRow(ctx, query, txHash).Scan(
		&c.ID,
		&c.TxHash,
		&c.Wallet,
		&policy,
		&c.DrawCount,
		&amount,
		&c.EntryIDs,
		&c.HashValues,
		&c.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrClaimNotFound, txHash)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetClaim, err)
	}

	c.Policy = domain.DrawPolicy(policy)
	c.BurnedAmount, err = decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", ErrMsgFailedToGetClaim, domain.ErrMalformedData, err)
	}
	return &c, nil
}

// Ping checks the database connection
func (r *ClaimRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
