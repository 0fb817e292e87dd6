package draw

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/osse101/MineRewards_Go/internal/catalog"
	"github.com/osse101/MineRewards_Go/internal/domain"
)

// lcg is the seeded generator behind batch permutations. Its output
// sequence is part of the published draw algorithm.
type lcg struct {
	state uint64
}

func newLCG(seed uint32) *lcg {
	return &lcg{state: uint64(seed)}
}

// next returns a value in [0,1).
func (g *lcg) next() float64 {
	g.state = (g.state*lcgMultiplier + lcgIncrement) % lcgModulus
	return float64(g.state) / lcgModulus
}

// BatchSelector draws count entries from a seeded permutation of the catalog.
// The first min(count, K) results are distinct; after that the permutation repeats.
type BatchSelector struct {
	catalog *catalog.Catalog
}

func NewBatchSelector(c *catalog.Catalog) *BatchSelector {
	return &BatchSelector{catalog: c}
}

// SelectBatch returns count results for txHash.
func (b *BatchSelector) SelectBatch(txHash common.Hash, count int) ([]domain.DrawResult, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: got %d", domain.ErrInvalidDrawCount, count)
	}

	order := b.Permutation(txHash)
	hv := HashValue(txHash)
	results := make([]domain.DrawResult, count)
	for i := range results {
		results[i] = domain.DrawResult{
			Entry:           b.catalog.At(order[i%len(order)]),
			SourceHashValue: hv,
			DrawIndex:       i + 1,
		}
	}
	return results, nil
}

// Permutation returns the shuffled catalog indexes for txHash.
func (b *BatchSelector) Permutation(txHash common.Hash) []int {
	k := b.catalog.Size()
	order := make([]int, k)
	for i := range order {
		order[i] = i
	}

	rng := newLCG(Seed(txHash))
	for i := k - 1; i > 0; i-- {
		j := int(rng.next() * float64(i+1))
		order[i], order[j] = order[j], order[i]
	}
	return order
}
