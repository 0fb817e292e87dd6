package catalog

import (
	"fmt"
	"math"
	"sync"

	"github.com/osse101/MineRewards_Go/internal/domain"
)

// Distribution is the two-level power distribution: a tier is picked by weight,
// then a value uniformly inside the tier's range. The flattened cumulative table
// is built once, on first use, and is read-only afterwards.
type Distribution struct {
	tiers []domain.RarityTierConfig

	once  sync.Once
	table []domain.RarityDistributionEntry
}

// NewDistribution validates tiers. Weights must sum to 100 and every range must be non-empty.
func NewDistribution(tiers []domain.RarityTierConfig) (*Distribution, error) {
	if len(tiers) == 0 {
		return nil, fmt.Errorf("%w: %s: no tiers", domain.ErrConfigurationDefect, ErrContextInvalidTier)
	}
	total := 0.0
	for _, t := range tiers {
		if t.Weight <= 0 || math.IsNaN(t.Weight) || math.IsInf(t.Weight, 0) {
			return nil, fmt.Errorf("%w: %s %q: weight %v", domain.ErrConfigurationDefect, ErrContextInvalidTier, t.Name, t.Weight)
		}
		if t.Max < t.Min {
			return nil, fmt.Errorf("%w: %s %q: range [%d,%d]", domain.ErrConfigurationDefect, ErrContextInvalidTier, t.Name, t.Min, t.Max)
		}
		total += t.Weight
	}
	if math.Abs(total-WeightTotal) > WeightTolerance {
		return nil, fmt.Errorf("%w: %s: got %v", domain.ErrConfigurationDefect, ErrContextWeightTotal, total)
	}

	out := make([]domain.RarityTierConfig, len(tiers))
	copy(out, tiers)
	return &Distribution{tiers: out}, nil
}

// Tiers returns a copy of the configured tiers.
func (d *Distribution) Tiers() []domain.RarityTierConfig {
	out := make([]domain.RarityTierConfig, len(d.tiers))
	copy(out, d.tiers)
	return out
}

// Table returns the cumulative table, building it on first call.
// The returned slice is shared and must not be modified.
func (d *Distribution) Table() []domain.RarityDistributionEntry {
	d.once.Do(func() {
		d.table = buildTable(d.tiers)
	})
	return d.table
}

func buildTable(tiers []domain.RarityTierConfig) []domain.RarityDistributionEntry {
	size := 0
	for _, t := range tiers {
		size += t.Max - t.Min + 1
	}
	table := make([]domain.RarityDistributionEntry, 0, size)

	running := 0.0
	for _, t := range tiers {
		per := t.Weight / float64(t.Max-t.Min+1)
		for v := t.Min; v <= t.Max; v++ {
			running += per
			table = append(table, domain.RarityDistributionEntry{Value: v, CumulativeProbability: running})
		}
	}

	for i := range table {
		table[i].CumulativeProbability /= running
	}
	table[len(table)-1].CumulativeProbability = 1.0
	return table
}
