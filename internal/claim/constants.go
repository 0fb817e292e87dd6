package claim

import "time"

// Cache defaults
const (
	DefaultCacheSize = 1024
	DefaultCacheTTL  = 10 * time.Minute
)

// Log Messages
const (
	LogMsgClaimRecorded   = "Claim recorded"
	LogMsgClaimReplayed   = "Returning existing claim"
	LogMsgClaimConflict   = "Transaction already claimed by another wallet"
	LogMsgLostReserveRace = "Claim reserved concurrently, using stored claim"
	LogMsgReplayMismatch  = "Resubmitted claim does not match stored claim"
)

// Log Fields
const (
	LogFieldTxHash  = "tx_hash"
	LogFieldWallet  = "wallet"
	LogFieldClaimID = "claim_id"
	LogFieldOwner   = "owner"
	LogFieldField   = "field"
)

// Error contexts
const (
	ErrContextLookup  = "failed to look up claim"
	ErrContextReserve = "failed to reserve claim"
	ErrContextSettle  = "failed to settle"
	ErrContextReplay  = "failed to rebuild stored claim"
)
