package draw

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/osse101/MineRewards_Go/internal/catalog"
	"github.com/osse101/MineRewards_Go/internal/domain"
	"github.com/osse101/MineRewards_Go/internal/logger"
	"github.com/osse101/MineRewards_Go/internal/metrics"
)

// SingleSelector maps one transaction hash onto one catalog entry by probability band.
type SingleSelector struct {
	catalog *catalog.Catalog
}

func NewSingleSelector(c *catalog.Catalog) *SingleSelector {
	return &SingleSelector{catalog: c}
}

// Select draws the entry for txHash. It is a pure function of txHash and the catalog.
func (s *SingleSelector) Select(ctx context.Context, txHash common.Hash) domain.DrawResult {
	hv := HashValue(txHash)
	return domain.DrawResult{
		Entry:           s.Resolve(ctx, hv, TieBit(txHash)),
		SourceHashValue: hv,
		DrawIndex:       1,
	}
}

// Resolve finds the entry covering hashValue. When two entries tie on the value,
// an even tieBit picks the first listed and an odd one the second.
// If nothing covers the value the lowest-rarity entry is returned and the defect is logged.
func (s *SingleSelector) Resolve(ctx context.Context, hashValue, tieBit int) *domain.CatalogEntry {
	covering := s.catalog.Covering(hashValue)
	switch len(covering) {
	case 0:
		fallback := s.catalog.Lowest()
		metrics.CatalogFallbacksTotal.Inc()
		logger.FromContext(ctx).Error(LogMsgNoBandMatched,
			LogFieldHashValue, hashValue,
			LogFieldFallback, fallback.ID)
		return fallback
	case 1:
		return covering[0]
	default:
		return covering[tieBit&1]
	}
}
