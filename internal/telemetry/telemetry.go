// Package telemetry exposes Prometheus metrics for the resolve and
// streaming pipeline.
package telemetry

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all pipeline Prometheus metrics.
type Metrics struct {
	// ResolveTotal counts resolution requests by terminal outcome.
	ResolveTotal *prometheus.CounterVec
	// CacheLookups counts resolution cache lookups by result (hit, miss).
	CacheLookups *prometheus.CounterVec
	// RateLimited counts resolution requests rejected by the rate limiter.
	RateLimited prometheus.Counter
	// ResolveDuration measures the upstream resolve path on cache misses.
	ResolveDuration prometheus.Histogram
	// ProxiedBytes counts media bytes streamed to clients by disposition.
	ProxiedBytes *prometheus.CounterVec
}

// Provider wraps the metrics and the /metrics HTTP handler.
type Provider struct {
	Metrics *Metrics
}

var (
	initOnce sync.Once
	shared   *Provider
)

// NewProvider returns the process-wide telemetry provider. Metrics are
// registered on the default registry exactly once.
func NewProvider() *Provider {
	initOnce.Do(func() {
		shared = &Provider{Metrics: initMetrics()}
	})
	return shared
}

// Handler returns the Prometheus HTTP handler for the /metrics endpoint.
func (p *Provider) Handler() http.Handler {
	return promhttp.Handler()
}

func initMetrics() *Metrics {
	return &Metrics{
		ResolveTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "instafetch_resolve_total",
			Help: "Total resolution requests by outcome (success, invalid_link, rate_limited, private, mismatch, not_found, upstream_error, internal_error)",
		}, []string{"outcome"}),

		CacheLookups: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "instafetch_cache_lookups_total",
			Help: "Resolution cache lookups by result",
		}, []string{"result"}),

		RateLimited: promauto.NewCounter(prometheus.CounterOpts{
			Name: "instafetch_rate_limited_total",
			Help: "Resolution requests rejected by the per-client rate limiter",
		}),

		ResolveDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "instafetch_resolve_duration_seconds",
			Help:    "Duration of the upstream resolve path on cache misses",
			Buckets: []float64{0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 20.0},
		}),

		ProxiedBytes: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "instafetch_proxied_bytes_total",
			Help: "Media bytes streamed to clients by disposition (inline, attachment)",
		}, []string{"disposition"}),
	}
}

// ObserveCache records a cache lookup result.
func (m *Metrics) ObserveCache(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheLookups.WithLabelValues(result).Inc()
}

// ObserveOutcome records a terminal pipeline outcome.
func (m *Metrics) ObserveOutcome(outcome string) {
	if m == nil {
		return
	}
	m.ResolveTotal.WithLabelValues(outcome).Inc()
}

// ObserveRateLimited records a rate limiter rejection.
func (m *Metrics) ObserveRateLimited() {
	if m == nil {
		return
	}
	m.RateLimited.Inc()
}

// ObserveResolveDuration records the duration of one upstream resolve.
func (m *Metrics) ObserveResolveDuration(seconds float64) {
	if m == nil {
		return
	}
	m.ResolveDuration.Observe(seconds)
}

// ObserveProxiedBytes records streamed media bytes.
func (m *Metrics) ObserveProxiedBytes(disposition string, n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.ProxiedBytes.WithLabelValues(disposition).Add(float64(n))
}
