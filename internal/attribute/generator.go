package attribute

import (
	"math/rand/v2"
	"sort"

	"github.com/osse101/MineRewards_Go/internal/catalog"
	"github.com/osse101/MineRewards_Go/internal/metrics"
)

// Source yields uniform values in [0,1).
type Source func() float64

// Generator rolls the power attribute stamped onto freshly minted items.
type Generator struct {
	dist *catalog.Distribution
	rnd  Source
}

// NewGenerator creates a generator over dist. A nil source uses the process-wide
// random generator, which is safe for concurrent use.
func NewGenerator(dist *catalog.Distribution, rnd Source) *Generator {
	if rnd == nil {
		rnd = rand.Float64
	}
	return &Generator{dist: dist, rnd: rnd}
}

// RollPower draws one power value.
func (g *Generator) RollPower() int {
	metrics.PowerRollsTotal.Inc()
	return g.Lookup(g.rnd())
}

// Lookup returns the first value whose cumulative probability reaches r.
// If rounding leaves r above every entry, the last value is returned.
func (g *Generator) Lookup(r float64) int {
	table := g.dist.Table()
	i := sort.Search(len(table), func(i int) bool {
		return table[i].CumulativeProbability >= r
	})
	if i == len(table) {
		i = len(table) - 1
	}
	return table[i].Value
}
