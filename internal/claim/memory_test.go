package claim

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MineRewards_Go/internal/domain"
)

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	c := &domain.Claim{ID: "1", TxHash: "0xaa", Wallet: "0x11", EntryIDs: []string{"a"}, HashValues: []int{1}}

	stored, created, err := repo.Reserve(ctx, c)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "1", stored.ID)

	again, created, err := repo.Reserve(ctx, &domain.Claim{ID: "2", TxHash: "0xaa", Wallet: "0x22"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "1", again.ID, "first claim wins")

	t.Run("stored claims are isolated from callers", func(t *testing.T) {
		c.EntryIDs[0] = "mutated"
		got, err := repo.Get(ctx, "0xaa")
		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, got.EntryIDs)
	})

	t.Run("unknown hash", func(t *testing.T) {
		_, err := repo.Get(ctx, "0xbb")
		assert.ErrorIs(t, err, domain.ErrClaimNotFound)
	})

	assert.NoError(t, repo.Ping(ctx))
}

func TestClaimCache(t *testing.T) {
	t.Run("defaults apply for zero config", func(t *testing.T) {
		c := newClaimCache(0, 0)
		c.Set(&domain.Claim{TxHash: "0xaa"})
		got, ok := c.Get("0xaa")
		require.True(t, ok)
		assert.Equal(t, "0xaa", got.TxHash)
	})

	t.Run("evicts beyond size", func(t *testing.T) {
		c := newClaimCache(2, time.Minute)
		c.Set(&domain.Claim{TxHash: "a"})
		c.Set(&domain.Claim{TxHash: "b"})
		c.Set(&domain.Claim{TxHash: "c"})
		assert.Equal(t, 2, c.Len())
		_, ok := c.Get("a")
		assert.False(t, ok)
	})

	t.Run("expires after ttl", func(t *testing.T) {
		c := newClaimCache(2, 20*time.Millisecond)
		c.Set(&domain.Claim{TxHash: "a"})
		assert.Eventually(t, func() bool {
			_, ok := c.Get("a")
			return !ok
		}, time.Second, 10*time.Millisecond)
	})
}
