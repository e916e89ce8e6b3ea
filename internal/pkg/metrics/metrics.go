package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	CouponVerdicts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_coupon_verdicts_total",
			Help: "Coupon checks by variant and result",
		},
		[]string{"variant", "result"},
	)

	Submissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_submissions_total",
			Help: "Application submissions by variant and outcome",
		},
		[]string{"variant", "outcome"},
	)

	PaymentOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_payment_outcomes_total",
			Help: "Checkout widget outcomes and verification results",
		},
		[]string{"variant", "outcome"},
	)

	HTTPRequests = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "checkout_http_request_seconds",
			Help:    "Inbound request latency by route template",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	UpstreamLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "checkout_marketplace_request_seconds",
			Help:    "Time taken by marketplace API calls",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "status"},
	)
)

// Register adds the collectors to reg. Call once per registry.
func Register(reg prometheus.Registerer) {
	reg.MustRegister(CouponVerdicts, Submissions, PaymentOutcomes, HTTPRequests, UpstreamLatency)
}
