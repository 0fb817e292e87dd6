package audit

import "time"

// Retry defaults for ledger outages during --verify
const (
	DefaultMaxRetries      = 5
	DefaultInitialInterval = 500 * time.Millisecond
	DefaultMaxInterval     = 10 * time.Second
	DefaultConcurrency     = 4
)

// Error contexts
const (
	ErrContextDraw   = "draw"
	ErrContextVerify = "verify"
)

// Log messages
const (
	LogMsgLedgerRetry   = "Ledger unavailable, retrying verification"
	LogMsgAuditComplete = "Audit complete"
)

// Log fields
const (
	LogFieldTxHash  = "tx_hash"
	LogFieldAttempt = "attempt"
	LogFieldWait    = "wait"
	LogFieldCount   = "count"
)
