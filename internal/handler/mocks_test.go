package handler

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/MineRewards_Go/internal/claim"
	"github.com/osse101/MineRewards_Go/internal/domain"
	"github.com/osse101/MineRewards_Go/internal/settlement"
)

// MockClaimService mocks claim.Service
type MockClaimService struct {
	mock.Mock
}

func (m *MockClaimService) Settle(ctx context.Context, req settlement.Request) (*claim.Outcome, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*claim.Outcome), args.Error(1)
}

func (m *MockClaimService) Get(ctx context.Context, txHash string) (*domain.Claim, error) {
	args := m.Called(ctx, txHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Claim), args.Error(1)
}

func (m *MockClaimService) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockDrawer mocks settlement.Drawer
type MockDrawer struct {
	mock.Mock
}

func (m *MockDrawer) Draw(ctx context.Context, policy domain.DrawPolicy, txHash common.Hash, count int) ([]domain.DrawResult, error) {
	args := m.Called(ctx, policy, txHash, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DrawResult), args.Error(1)
}

// MockPinger mocks the claim store ping
type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type fixedRoller int

func (f fixedRoller) RollPower() int { return int(f) }
