package handler

import "time"

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgRequestTooLarge       = "Request body too large"

	// Query and path parameter error messages
	ErrMsgInvalidQueryParam = "Invalid %s query parameter"
	ErrMsgInvalidTxHash     = "Invalid transaction hash"

	// Settlement error messages
	ErrMsgAmountMustBePositive = "expected_amount must be positive"
	ErrMsgDrawCountTooLarge    = "draw_count exceeds maximum"
)

// Health check responses
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	MsgClaimStoreFailed     = "claim store unreachable"
)

// Log messages
const (
	LogMsgDecodeFailed       = "Failed to decode request"
	LogMsgRequestDecoded     = "Request decoded"
	LogMsgSettlementFailed   = "Settlement failed"
	LogMsgSettlementRejected = "Settlement rejected"
	LogMsgReplayFailed       = "Draw replay failed"
	LogMsgClaimLookupFailed  = "Claim lookup failed"
	LogMsgReadinessFailed    = "Readiness check failed"
	LogMsgEncodeFailed       = "Failed to encode JSON response"
	LogMsgWriteFailed        = "Failed to write response buffer"
)

// Log fields
const (
	LogFieldAction = "action"
	LogFieldError  = "error"
	LogFieldReason = "reason"
	LogFieldTxHash = "tx_hash"
)

// Limits
const (
	// MaxDrawCount bounds one settlement or replay request
	MaxDrawCount = 100
	// ReadinessTimeout bounds the claim store ping
	ReadinessTimeout = 2 * time.Second
)
