package catalog

import (
	"fmt"

	"github.com/osse101/MineRewards_Go/internal/domain"
)

// ValidateTiling checks that the bands of entries cover every outcome exactly once.
// The only permitted overlap is a tie: exactly two entries with identical bands.
// Every violation wraps domain.ErrConfigurationDefect.
func ValidateTiling(entries []domain.CatalogEntry) error {
	if len(entries) == 0 {
		return fmt.Errorf("%w: %s", domain.ErrConfigurationDefect, ErrContextEmptyCatalog)
	}
	for _, e := range entries {
		if !e.Band.Valid() {
			return fmt.Errorf("%w: %s %q: band %s outside [%d,%d]",
				domain.ErrConfigurationDefect, ErrContextInvalidEntry, e.ID, e.Band, domain.OutcomeMin, domain.OutcomeMax)
		}
	}

	for v := domain.OutcomeMin; v <= domain.OutcomeMax; v++ {
		covering := coveringIndexes(entries, v)
		switch len(covering) {
		case 1:
		case 0:
			return fmt.Errorf("%w: %s: %d", domain.ErrConfigurationDefect, ErrContextTilingGap, v)
		case 2:
			a, b := entries[covering[0]], entries[covering[1]]
			if a.Band != b.Band {
				return fmt.Errorf("%w: %s: %d in %q %s and %q %s",
					domain.ErrConfigurationDefect, ErrContextTilingOverlap, v, a.ID, a.Band, b.ID, b.Band)
			}
		default:
			return fmt.Errorf("%w: %s: %d covered %d times",
				domain.ErrConfigurationDefect, ErrContextTilingOverlap, v, len(covering))
		}
	}
	return nil
}

func coveringIndexes(entries []domain.CatalogEntry, v int) []int {
	var out []int
	for i := range entries {
		if entries[i].Band.Contains(v) {
			out = append(out, i)
		}
	}
	return out
}
