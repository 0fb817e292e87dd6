package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Ledger errors
	ErrMsgLedgerUnavailable = "ledger unavailable"
	ErrMsgNotFound          = "transaction not found"
	ErrMsgTxFailed          = "transaction failed on-chain"

	// Burn shape errors
	ErrMsgWrongDestination   = "transaction targets an unknown contract"
	ErrMsgWrongFunction      = "transaction calls an unexpected function"
	ErrMsgAmountMismatch     = "burned amount does not match expected amount"
	ErrMsgNoTransferEvent    = "no transfer event in receipt"
	ErrMsgNoBurnFromClaimant = "no burn transfer from claimant"

	// Catalog errors
	ErrMsgConfigurationDefect = "configuration defect"

	// Settlement errors
	ErrMsgInvalidDrawCount = "draw count must be at least 1"
	ErrMsgInvalidPolicy    = "unknown draw policy"
	ErrMsgAlreadyClaimed   = "transaction already claimed"
	ErrMsgClaimNotFound    = "claim not found"
	ErrMsgClaimMismatch    = "request does not match the recorded claim"
	ErrMsgMalformedData    = "malformed ledger data"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Transient: the caller may retry with backoff
	ErrLedgerUnavailable = errors.New(ErrMsgLedgerUnavailable)

	// Terminal ledger outcomes
	ErrNotFound = errors.New(ErrMsgNotFound)
	ErrTxFailed = errors.New(ErrMsgTxFailed)

	// Terminal burn-shape failures
	ErrWrongDestination   = errors.New(ErrMsgWrongDestination)
	ErrWrongFunction      = errors.New(ErrMsgWrongFunction)
	ErrAmountMismatch     = errors.New(ErrMsgAmountMismatch)
	ErrNoTransferEvent    = errors.New(ErrMsgNoTransferEvent)
	ErrNoBurnFromClaimant = errors.New(ErrMsgNoBurnFromClaimant)

	// Fatal at catalog load
	ErrConfigurationDefect = errors.New(ErrMsgConfigurationDefect)

	// Settlement errors
	ErrInvalidDrawCount = errors.New(ErrMsgInvalidDrawCount)
	ErrInvalidPolicy    = errors.New(ErrMsgInvalidPolicy)
	ErrAlreadyClaimed   = errors.New(ErrMsgAlreadyClaimed)
	ErrClaimNotFound    = errors.New(ErrMsgClaimNotFound)
	// Same wallet resubmitted a claimed hash with different draw terms
	ErrClaimMismatch    = errors.New(ErrMsgClaimMismatch)

	// Fixed-layout decoding failures
	ErrMalformedData = errors.New(ErrMsgMalformedData)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)

// ReasonCode is the machine-readable failure reason returned to callers for support triage.
type ReasonCode string

const (
	ReasonNone                ReasonCode = ""
	ReasonLedgerUnavailable   ReasonCode = "LEDGER_UNAVAILABLE"
	ReasonNotFound            ReasonCode = "NOT_FOUND"
	ReasonTransactionFailed   ReasonCode = "TRANSACTION_FAILED"
	ReasonWrongDestination    ReasonCode = "WRONG_DESTINATION"
	ReasonWrongFunction       ReasonCode = "WRONG_FUNCTION"
	ReasonAmountMismatch      ReasonCode = "AMOUNT_MISMATCH"
	ReasonNoTransferEvent     ReasonCode = "NO_TRANSFER_EVENT"
	ReasonNoBurnFromClaimant  ReasonCode = "NO_BURN_FROM_CLAIMANT"
	ReasonConfigurationDefect ReasonCode = "CONFIGURATION_DEFECT"
)

var reasonErrors = []struct {
	err    error
	reason ReasonCode
}{
	{ErrLedgerUnavailable, ReasonLedgerUnavailable},
	{ErrNotFound, ReasonNotFound},
	{ErrTxFailed, ReasonTransactionFailed},
	{ErrWrongDestination, ReasonWrongDestination},
	{ErrWrongFunction, ReasonWrongFunction},
	{ErrAmountMismatch, ReasonAmountMismatch},
	{ErrNoTransferEvent, ReasonNoTransferEvent},
	{ErrNoBurnFromClaimant, ReasonNoBurnFromClaimant},
	{ErrConfigurationDefect, ReasonConfigurationDefect},
}

// ReasonFor maps an error onto its reason code. Unknown errors map to ReasonNone.
func ReasonFor(err error) ReasonCode {
	if err == nil {
		return ReasonNone
	}
	for _, re := range reasonErrors {
		if errors.Is(err, re.err) {
			return re.reason
		}
	}
	return ReasonNone
}

// Retryable reports whether the caller may retry the failed operation.
func (r ReasonCode) Retryable() bool {
	return r == ReasonLedgerUnavailable
}
