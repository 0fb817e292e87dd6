package catalog

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/MineRewards_Go/internal/domain"
)

// Catalog is the immutable reward pool. Entries keep their configured order,
// which is the order batch permutations start from.
type Catalog struct {
	entries  []domain.CatalogEntry
	byID     map[string]int
	coverage [domain.OutcomeRange][]int
	lowest   int
}

// New validates entries and builds a catalog from them.
// Display names are title-cased. A tiling violation wraps domain.ErrConfigurationDefect.
func New(entries []domain.CatalogEntry) (*Catalog, error) {
	c := &Catalog{
		entries: make([]domain.CatalogEntry, len(entries)),
		byID:    make(map[string]int, len(entries)),
	}
	copy(c.entries, entries)

	title := cases.Title(language.English)
	for i := range c.entries {
		e := &c.entries[i]
		if e.ID == "" {
			return nil, fmt.Errorf("%w: %s at index %d: missing id", domain.ErrConfigurationDefect, ErrContextInvalidEntry, i)
		}
		if _, dup := c.byID[e.ID]; dup {
			return nil, fmt.Errorf("%w: %s: %q", domain.ErrConfigurationDefect, ErrContextDuplicateEntry, e.ID)
		}
		if _, err := domain.ParseVariant(string(e.Variant)); err != nil {
			return nil, fmt.Errorf("%w: %s %q: %w", domain.ErrConfigurationDefect, ErrContextInvalidEntry, e.ID, err)
		}
		e.DisplayName = title.String(strings.TrimSpace(e.DisplayName))
		c.byID[e.ID] = i
	}

	if err := ValidateTiling(c.entries); err != nil {
		return nil, err
	}

	for v := domain.OutcomeMin; v <= domain.OutcomeMax; v++ {
		c.coverage[v-domain.OutcomeMin] = coveringIndexes(c.entries, v)
	}
	for i := range c.entries {
		if c.entries[i].Rarity < c.entries[c.lowest].Rarity {
			c.lowest = i
		}
	}
	return c, nil
}

// Size is the number of entries (K).
func (c *Catalog) Size() int {
	return len(c.entries)
}

// At returns the i-th entry in configured order.
func (c *Catalog) At(i int) *domain.CatalogEntry {
	return &c.entries[i]
}

// Entries returns a copy of all entries in configured order.
func (c *Catalog) Entries() []domain.CatalogEntry {
	out := make([]domain.CatalogEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Get looks an entry up by ID.
func (c *Catalog) Get(id string) (*domain.CatalogEntry, bool) {
	i, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	return &c.entries[i], true
}

// Covering returns the entries whose band contains v, in configured order.
// A validated catalog yields one entry, or two for a tie.
func (c *Catalog) Covering(v int) []*domain.CatalogEntry {
	if v < domain.OutcomeMin || v > domain.OutcomeMax {
		return nil
	}
	idx := c.coverage[v-domain.OutcomeMin]
	out := make([]*domain.CatalogEntry, len(idx))
	for i, j := range idx {
		out[i] = &c.entries[j]
	}
	return out
}

// Lowest returns the first entry of the lowest rarity tier.
func (c *Catalog) Lowest() *domain.CatalogEntry {
	return &c.entries[c.lowest]
}
