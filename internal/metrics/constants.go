package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
	MetricNameAuthFailuresTotal    = "http_auth_failures_total"
	MetricNameRateLimitedTotal     = "http_rate_limited_total"
)

// Ledger metric names
const (
	MetricNameLedgerRequestDuration = "ledger_request_duration_seconds"
)

// Business metric names
const (
	MetricNameSettlementsTotal       = "settlements_total"
	MetricNameBurnVerificationsTotal = "burn_verifications_total"
	MetricNameDrawsTotal             = "draws_total"
	MetricNamePowerRollsTotal        = "power_rolls_total"
	MetricNameClaimsReplayedTotal    = "claims_replayed_total"
	MetricNameCatalogFallbacksTotal  = "catalog_fallbacks_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextAuthFailuresTotal    = "Total number of requests rejected for a missing or wrong API key"
	HelpTextRateLimitedTotal     = "Total number of requests rejected by the per-IP request budget"
)

// Ledger metric help text
const (
	HelpTextLedgerRequestDuration = "Ledger RPC latency in seconds"
)

// Business metric help text
const (
	HelpTextSettlementsTotal       = "Total number of settlement requests by policy and outcome"
	HelpTextBurnVerificationsTotal = "Total number of burn verifications by reason code"
	HelpTextDrawsTotal             = "Total number of rewards drawn by rarity"
	HelpTextPowerRollsTotal        = "Total number of power attribute rolls"
	HelpTextClaimsReplayedTotal    = "Total number of settlement requests served from an existing claim"
	HelpTextCatalogFallbacksTotal  = "Total number of draws that fell back because no band matched"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelOutcome = "outcome"
	LabelPolicy  = "policy"
	LabelReason  = "reason"
	LabelRarity  = "rarity"
)

// Label values
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
	OutcomeNotFound = "not_found"

	ReasonValid        = "VALID"
	ReasonUnclassified = "UNCLASSIFIED"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// LedgerLatencyBuckets covers remote RPC calls from 10ms up to the 30s hard ceiling.
var LedgerLatencyBuckets = []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30}
