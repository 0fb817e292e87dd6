package claim

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/MineRewards_Go/internal/domain"
)

// claimCache holds recently settled claims keyed by tx hash.
// Claims never change once stored, so entries only leave by size or age.
type claimCache struct {
	lru *expirable.LRU[string, *domain.Claim]
}

func newClaimCache(size int, ttl time.Duration) *claimCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &claimCache{lru: expirable.NewLRU[string, *domain.Claim](size, nil, ttl)}
}

func (c *claimCache) Get(txHash string) (*domain.Claim, bool) {
	return c.lru.Get(txHash)
}

func (c *claimCache) Set(claim *domain.Claim) {
	c.lru.Add(claim.TxHash, claim)
}

func (c *claimCache) Len() int {
	return c.lru.Len()
}
