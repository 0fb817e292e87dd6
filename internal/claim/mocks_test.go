package claim

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/MineRewards_Go/internal/domain"
	"github.com/osse101/MineRewards_Go/internal/settlement"
)

// MockSettler
type MockSettler struct {
	mock.Mock
}

func (m *MockSettler) VerifyAndSettle(ctx context.Context, req settlement.Request) (*settlement.Result, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settlement.Result), args.Error(1)
}

func (m *MockSettler) DefaultPolicy() domain.DrawPolicy {
	return domain.PolicyWeighted
}

// MockRepository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Reserve(ctx context.Context, c *domain.Claim) (*domain.Claim, bool, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.Claim), args.Bool(1), args.Error(2)
}

func (m *MockRepository) Get(ctx context.Context, txHash string) (*domain.Claim, error) {
	args := m.Called(ctx, txHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Claim), args.Error(1)
}

func (m *MockRepository) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type staticCatalog map[string]*domain.CatalogEntry

func (c staticCatalog) Get(id string) (*domain.CatalogEntry, bool) {
	e, ok := c[id]
	return e, ok
}
