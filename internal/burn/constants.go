package burn

// Log Messages
const (
	LogMsgVerificationStarted = "Verifying burn transaction"
	LogMsgVerificationFailed  = "Burn verification failed"
	LogMsgVerificationPassed  = "Burn verified"
	LogMsgVerificationErrored = "Burn verification errored"
)

// Log Fields
const (
	LogFieldTxHash      = "tx_hash"
	LogFieldClaimant    = "claimant"
	LogFieldReason      = "reason"
	LogFieldDestination = "destination"
	LogFieldAmount      = "amount"
	LogFieldError       = "error"
)

// Error contexts
const (
	ErrContextFetchReceipt     = "failed to fetch receipt"
	ErrContextFetchTransaction = "failed to fetch transaction"
	ErrContextDecodeCall       = "failed to decode call data"
	ErrContextUnclassified     = "burn verification error"
)
