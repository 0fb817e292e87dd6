package settlement

// UserMessageVerificationFailed is shown to players whose burn could not be verified.
// The reason code is returned alongside it for support triage.
const UserMessageVerificationFailed = "could not validate your payment"

// Log Messages
const (
	LogMsgSettlementRejected = "Settlement rejected"
	LogMsgSettlementComplete = "Settlement complete"
)

// Log Fields
const (
	LogFieldWallet    = "wallet"
	LogFieldTxHash    = "tx_hash"
	LogFieldPolicy    = "policy"
	LogFieldDrawCount = "draw_count"
	LogFieldReason    = "reason"
	LogFieldEntries   = "entries"
	LogFieldError     = "error"
)

// Error contexts
const (
	ErrContextVerifyBurn = "failed to verify burn"
	ErrContextDraw       = "failed to draw rewards"
)
