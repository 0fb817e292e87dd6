package claim

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/MineRewards_Go/internal/domain"
)

// MemoryRepository keeps claims in process memory. Claims are lost on restart.
type MemoryRepository struct {
	mu     sync.RWMutex
	claims map[string]domain.Claim
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{claims: make(map[string]domain.Claim)}
}

func (m *MemoryRepository) Reserve(_ context.Context, c *domain.Claim) (*domain.Claim, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.claims[c.TxHash]; ok {
		return cloneClaim(existing), false, nil
	}
	m.claims[c.TxHash] = *cloneClaim(*c)
	return cloneClaim(*c), true, nil
}

func (m *MemoryRepository) Get(_ context.Context, txHash string) (*domain.Claim, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.claims[txHash]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrClaimNotFound, txHash)
	}
	return cloneClaim(c), nil
}

func (m *MemoryRepository) Ping(context.Context) error {
	return nil
}

func cloneClaim(c domain.Claim) *domain.Claim {
	c.EntryIDs = append([]string(nil), c.EntryIDs...)
	c.HashValues = append([]int(nil), c.HashValues...)
	return &c
}
