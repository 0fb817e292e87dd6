package config

import "time"

const (
	// Configuration file paths
	ConfigPathCatalog      = "configs/catalog.json"
	ConfigPathDistribution = "configs/distribution.yaml"
)

// Claim store backends
const (
	ClaimStorePostgres = "postgres"
	ClaimStoreMemory   = "memory"
)

// Defaults
const (
	DefaultPort                  = 8080
	DefaultLedgerTimeout         = 10 * time.Second
	DefaultLedgerRPS             = 10.0
	DefaultDrawCount             = 1
	DefaultBatchPolicy           = "weighted"
	DefaultDiscountBurnSignature = "burnForDiscount(uint256)"
	DefaultDBMaxConns            = 20
	DefaultDBMaxConnIdleTime     = 5 * time.Minute
	DefaultDBMaxConnLifetime     = 30 * time.Minute
	DefaultClaimCacheSize        = 1024
	DefaultClaimCacheTTL         = 10 * time.Minute
	DefaultMaxRequestBodyBytes   = 64 * 1024
)
