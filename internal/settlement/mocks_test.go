package settlement

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/MineRewards_Go/internal/domain"
)

// MockVerifier
type MockVerifier struct {
	mock.Mock
}

func (m *MockVerifier) Verify(ctx context.Context, txHash common.Hash, claimant common.Address, expectedAmount *decimal.Decimal) (domain.BurnProof, error) {
	args := m.Called(ctx, txHash, claimant, expectedAmount)
	return args.Get(0).(domain.BurnProof), args.Error(1)
}

// MockDrawer
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
