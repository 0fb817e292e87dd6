package postgres

// Error Messages - Claim Operations
const (
	ErrMsgFailedToInsertClaim = "failed to insert claim"
	ErrMsgFailedToGetClaim    = "failed to get claim"
)
