package catalog

// Default schema locations, relative to the project root.
const (
	SchemaPathCatalog      = "configs/schemas/catalog.schema.json"
	SchemaPathDistribution = "configs/schemas/distribution.schema.json"
)

// WeightTotal is the sum every distribution's tier weights must reach.
const WeightTotal = 100.0

// WeightTolerance absorbs float rounding when summing configured weights.
const WeightTolerance = 1e-6

// Log Messages
const (
	LogMsgCatalogLoaded      = "Reward catalog loaded"
	LogMsgDistributionLoaded = "Power distribution loaded"
)

// Log Fields
const (
	LogFieldPath    = "path"
	LogFieldEntries = "entries"
	LogFieldTiers   = "tiers"
)

// Error contexts
const (
	ErrContextReadFile       = "failed to read file"
	ErrContextSchema         = "schema validation failed"
	ErrContextDecode         = "failed to decode"
	ErrContextInvalidEntry   = "invalid catalog entry"
	ErrContextInvalidTier    = "invalid distribution tier"
	ErrContextTilingGap      = "outcome not covered by any band"
	ErrContextTilingOverlap  = "outcome covered by overlapping bands"
	ErrContextWeightTotal    = "tier weights do not sum to 100"
	ErrContextEmptyCatalog   = "catalog has no entries"
	ErrContextDuplicateEntry = "duplicate entry id"
)
