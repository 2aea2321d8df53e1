package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// CheckoutMetrics records validation outcomes, sibling-API latency, and
// pricing-tier cache activity.
type CheckoutMetrics struct {
	validations    *prometheus.CounterVec
	platformCalls  *prometheus.HistogramVec
	cacheRefreshes *prometheus.CounterVec
}

// NewCheckoutMetrics registers the checkout metrics on the provided registerer.
func NewCheckoutMetrics(reg prometheus.Registerer) *CheckoutMetrics {
	if reg == nil {
		return &CheckoutMetrics{}
	}
	validations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_validations_total",
		Help: "Checkout validation verdicts by surface and outcome.",
	}, []string{"surface", "outcome"})
	platformCalls := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "platform_call_duration_seconds",
		Help:    "Duration of sibling platform API calls in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})
	cacheRefreshes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pricing_tier_cache_refreshes_total",
		Help: "Pricing tier snapshot refreshes by trigger.",
	}, []string{"trigger"})
	reg.MustRegister(validations, platformCalls, cacheRefreshes)
	return &CheckoutMetrics{
		validations:    validations,
		platformCalls:  platformCalls,
		cacheRefreshes: cacheRefreshes,
	}
}

// ObserveValidation records one validation verdict for a surface
// (address, cart, referral, checkout).
func (c *CheckoutMetrics) ObserveValidation(surface string, valid bool) {
	if c == nil || c.validations == nil {
		return
	}
	outcome := "invalid"
	if valid {
		outcome = "valid"
	}
	c.validations.WithLabelValues(normalizeLabel(surface), outcome).Inc()
}

// ObservePlatformCall records the duration of one sibling API call.
func (c *CheckoutMetrics) ObservePlatformCall(endpoint string, duration time.Duration) {
	if c == nil || c.platformCalls == nil {
		return
	}
	c.platformCalls.WithLabelValues(normalizeLabel(endpoint)).Observe(duration.Seconds())
}

// IncCacheRefresh counts a tier snapshot refresh ("expired" or "manual").
func (c *CheckoutMetrics) IncCacheRefresh(trigger string) {
	if c == nil || c.cacheRefreshes == nil {
		return
	}
	c.cacheRefreshes.WithLabelValues(normalizeLabel(trigger)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
