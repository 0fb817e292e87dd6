package draw

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/osse101/MineRewards_Go/internal/catalog"
	"github.com/osse101/MineRewards_Go/internal/domain"
)

// Engine runs a multi-draw under one policy.
type Engine struct {
	single *SingleSelector
	batch  *BatchSelector
}

func NewEngine(c *catalog.Catalog) *Engine {
	return &Engine{
		single: NewSingleSelector(c),
		batch:  NewBatchSelector(c),
	}
}

// Single exposes the underlying single-draw selector.
func (e *Engine) Single() *SingleSelector {
	return e.single
}

// Draw returns exactly count results for txHash.
//
// PolicyWeighted draws each result independently by band from DeriveHash(txHash, i).
// PolicyDiverse takes the batch permutation, even for a single draw.
func (e *Engine) Draw(ctx context.Context, policy domain.DrawPolicy, txHash common.Hash, count int) ([]domain.DrawResult, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: got %d", domain.ErrInvalidDrawCount, count)
	}

	switch policy {
	case domain.PolicyDiverse:
		return e.batch.SelectBatch(txHash, count)
	case domain.PolicyWeighted:
		results := make([]domain.DrawResult, count)
		for i := range results {
			r := e.single.Select(ctx, DeriveHash(txHash, i+1))
			r.DrawIndex = i + 1
			results[i] = r
		}
		return results, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPolicy, policy)
	}
}
