package bootstrap

import (
	"context"
	"fmt"

	"github.com/osse101/MineRewards_Go/internal/catalog"
	"github.com/osse101/MineRewards_Go/internal/ledger"
	"github.com/osse101/MineRewards_Go/internal/logger"
	"github.com/osse101/MineRewards_Go/internal/validation"
)

// Rewards is the validated reward configuration the service draws from.
type Rewards struct {
	Catalog      *catalog.Catalog
	Distribution *catalog.Distribution
}

// LoadRewards checks the ledger constants, then loads and validates the catalog and
// power distribution. Any error here is a configuration defect and must stop startup.
func LoadRewards(ctx context.Context, catalogPath, distributionPath string) (*Rewards, error) {
	log := logger.FromContext(ctx)

	if err := ledger.SelfCheck(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLedgerSelfCheck, err)
	}

	log.Info(LogMsgLoadingRewards, "catalog", catalogPath, "distribution", distributionPath)
	loader := catalog.NewLoader(validation.NewSchemaValidator())

	c, err := loader.LoadCatalog(ctx, catalogPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}

	d, err := loader.LoadDistribution(ctx, distributionPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadDist, err)
	}

	log.Info(LogMsgRewardsLoaded, "entries", c.Size(), "tiers", len(d.Tiers()), "power_values", len(d.Table()))
	return &Rewards{Catalog: c, Distribution: d}, nil
}
