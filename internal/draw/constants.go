package draw

// Log Messages
const (
	LogMsgNoBandMatched = "No catalog band matched hash value, falling back to lowest rarity"
)

// Log Fields
const (
	LogFieldHashValue = "hash_value"
	LogFieldFallback  = "fallback_entry"
)

// Linear congruential generator constants for the batch permutation.
// Changing any of them changes every published batch outcome.
const (
	lcgMultiplier = 9301
	lcgIncrement  = 49297
	lcgModulus    = 233280
)
