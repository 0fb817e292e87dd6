package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MineRewards_Go/internal/domain"
)

func entry(id string, rarity domain.RarityTier, variant domain.Variant, low, high int) domain.CatalogEntry {
	return domain.CatalogEntry{
		ID:          id,
		Rarity:      rarity,
		Variant:     variant,
		DisplayName: id,
		Band:        domain.Band{Low: low, High: high},
	}
}

func defaultEntries() []domain.CatalogEntry {
	return []domain.CatalogEntry{
		entry("common-vintage", domain.RarityCommon, domain.VariantVintage, 0, 41),
		entry("common-modern", domain.RarityCommon, domain.VariantModern, 42, 65),
		entry("rare-vintage", domain.RarityRare, domain.VariantVintage, 66, 77),
		entry("rare-modern", domain.RarityRare, domain.VariantModern, 78, 86),
		entry("epic-vintage", domain.RarityEpic, domain.VariantVintage, 87, 92),
		entry("epic-modern", domain.RarityEpic, domain.VariantModern, 93, 98),
		entry("legendary-vintage", domain.RarityLegendary, domain.VariantVintage, 99, 99),
		entry("legendary-modern", domain.RarityLegendary, domain.VariantModern, 99, 99),
	}
}

func TestNew(t *testing.T) {
	t.Run("builds the default pool", func(t *testing.T) {
		c, err := New(defaultEntries())
		require.NoError(t, err)
		assert.Equal(t, 8, c.Size())
		assert.Equal(t, "common-vintage", c.At(0).ID)
		assert.Equal(t, "common-vintage", c.Lowest().ID)

		e, ok := c.Get("epic-modern")
		require.True(t, ok)
		assert.Equal(t, domain.Band{Low: 93, High: 98}, e.Band)

		_, ok = c.Get("missing")
		assert.False(t, ok)
	})

	t.Run("title-cases display names", func(t *testing.T) {
		entries := defaultEntries()
		entries[0].DisplayName = "  rusty pickaxe rig "
		c, err := New(entries)
		require.NoError(t, err)
		assert.Equal(t, "Rusty Pickaxe Rig", c.At(0).DisplayName)
		assert.Equal(t, "  rusty pickaxe rig ", entries[0].DisplayName, "input must not be mutated")
	})

	t.Run("lowest picks the first entry of the lowest tier", func(t *testing.T) {
		entries := defaultEntries()
		entries[0], entries[2] = entries[2], entries[0]
		c, err := New(entries)
		require.NoError(t, err)
		assert.Equal(t, "common-modern", c.Lowest().ID)
	})

	t.Run("rejects duplicate ids", func(t *testing.T) {
		entries := defaultEntries()
		entries[1].ID = entries[0].ID
		_, err := New(entries)
		assert.ErrorIs(t, err, domain.ErrConfigurationDefect)
	})

	t.Run("rejects unknown variants", func(t *testing.T) {
		entries := defaultEntries()
		entries[3].Variant = "futuristic"
		_, err := New(entries)
		assert.ErrorIs(t, err, domain.ErrConfigurationDefect)
	})
}

func TestCovering(t *testing.T) {
	c, err := New(defaultEntries())
	require.NoError(t, err)

	t.Run("every outcome is covered once except the tie", func(t *testing.T) {
		for v := domain.OutcomeMin; v <= domain.OutcomeMax; v++ {
			covering := c.Covering(v)
			if v == 99 {
				require.Len(t, covering, 2)
				assert.Equal(t, "legendary-vintage", covering[0].ID)
				assert.Equal(t, "legendary-modern", covering[1].ID)
				continue
			}
			require.Len(t, covering, 1, "value %d", v)
			assert.True(t, covering[0].Band.Contains(v))
		}
	})

	t.Run("out of range yields nothing", func(t *testing.T) {
		assert.Empty(t, c.Covering(-1))
		assert.Empty(t, c.Covering(100))
	})
}

func TestValidateTiling(t *testing.T) {
	tests := []struct {
		name   string
		mutate func([]domain.CatalogEntry) []domain.CatalogEntry
		errMsg string
	}{
		{
			name: "gap",
			mutate: func(e []domain.CatalogEntry) []domain.CatalogEntry {
				e[1].Band.Low = 43
				return e
			},
			errMsg: ErrContextTilingGap,
		},
		{
			name: "partial overlap",
			mutate: func(e []domain.CatalogEntry) []domain.CatalogEntry {
				e[1].Band.Low = 41
				return e
			},
			errMsg: ErrContextTilingOverlap,
		},
		{
			name: "three-way tie",
			mutate: func(e []domain.CatalogEntry) []domain.CatalogEntry {
				return append(e, entry("legendary-extra", domain.RarityLegendary, domain.VariantModern, 99, 99))
			},
			errMsg: ErrContextTilingOverlap,
		},
		{
			name: "band out of range",
			mutate: func(e []domain.CatalogEntry) []domain.CatalogEntry {
				e[7].Band = domain.Band{Low: 99, High: 100}
				return e
			},
			errMsg: ErrContextInvalidEntry,
		},
		{
			name: "inverted band",
			mutate: func(e []domain.CatalogEntry) []domain.CatalogEntry {
				e[0].Band = domain.Band{Low: 41, High: 0}
				return e
			},
			errMsg: ErrContextInvalidEntry,
		},
		{
			name:   "empty",
			mutate: func([]domain.CatalogEntry) []domain.CatalogEntry { return nil },
			errMsg: ErrContextEmptyCatalog,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTiling(tt.mutate(defaultEntries()))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrConfigurationDefect)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}

	t.Run("ten equal bands", func(t *testing.T) {
		var entries []domain.CatalogEntry
		for i := 0; i < 10; i++ {
			entries = append(entries, entry(string(rune('a'+i)), domain.RarityCommon, domain.VariantVintage, i*10, i*10+9))
		}
		assert.NoError(t, ValidateTiling(entries))
	})
}
