package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	AuthFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAuthFailuresTotal,
			Help: HelpTextAuthFailuresTotal,
		},
	)

	RateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRateLimitedTotal,
			Help: HelpTextRateLimitedTotal,
		},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Ledger Metrics
var (
	LedgerRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameLedgerRequestDuration,
			Help:    HelpTextLedgerRequestDuration,
			Buckets: LedgerLatencyBuckets,
		},
		[]string{LabelMethod, LabelOutcome},
	)
)

// Business Metrics
var (
	SettlementsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSettlementsTotal,
			Help: HelpTextSettlementsTotal,
		},
		[]string{LabelPolicy, LabelOutcome},
	)

	BurnVerificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBurnVerificationsTotal,
			Help: HelpTextBurnVerificationsTotal,
		},
		[]string{LabelReason},
	)

	DrawsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDrawsTotal,
			Help: HelpTextDrawsTotal,
		},
		[]string{LabelRarity},
	)

	PowerRollsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePowerRollsTotal,
			Help: HelpTextPowerRollsTotal,
		},
	)

	ClaimsReplayedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameClaimsReplayedTotal,
			Help: HelpTextClaimsReplayedTotal,
		},
	)

	CatalogFallbacksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCatalogFallbacksTotal,
			Help: HelpTextCatalogFallbacksTotal,
		},
	)
)
