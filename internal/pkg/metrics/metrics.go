package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the prometheus collectors for the balance pipeline. A nil
// *Metrics is valid everywhere and records nothing, so tests and tools can
// skip registration.
type Metrics struct {
	fetchDuration      *prometheus.HistogramVec
	endpointFailures   *prometheus.CounterVec
	networkUnavailable *prometheus.CounterVec
	cacheHits          prometheus.Counter
	cacheMisses        prometheus.Counter
}

// New creates the pipeline metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		fetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "balance_fetch_duration_seconds",
			Help:    "Wall-clock duration of one network's balance fetch, including the endpoint fallback walk.",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
		}, []string{"network"}),
		endpointFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "balance_endpoint_failures_total",
			Help: "Endpoint attempts that failed and advanced the fallback walk, by reason.",
		}, []string{"network", "reason"}),
		networkUnavailable: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "balance_network_unavailable_total",
			Help: "Aggregation runs in which a network exhausted its endpoint list.",
		}, []string{"network"}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "balance_snapshot_cache_hits_total",
			Help: "Requests served from the cached snapshot.",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "balance_snapshot_cache_misses_total",
			Help: "Requests that triggered (or joined) a snapshot refresh.",
		}),
	}
	reg.MustRegister(m.fetchDuration, m.endpointFailures, m.networkUnavailable, m.cacheHits, m.cacheMisses)
	return m
}

// ObserveFetchDuration records one network fetch duration.
func (m *Metrics) ObserveFetchDuration(network string, d time.Duration) {
	if m == nil {
		return
	}
	m.fetchDuration.WithLabelValues(network).Observe(d.Seconds())
}

// IncEndpointFailure counts one failed endpoint attempt.
func (m *Metrics) IncEndpointFailure(network, reason string) {
	if m == nil {
		return
	}
	m.endpointFailures.WithLabelValues(network, reason).Inc()
}

// IncNetworkUnavailable counts one fully exhausted network.
func (m *Metrics) IncNetworkUnavailable(network string) {
	if m == nil {
		return
	}
	m.networkUnavailable.WithLabelValues(network).Inc()
}

// IncCacheHit counts a request served from the cached snapshot.
func (m *Metrics) IncCacheHit() {
	if m == nil {
		return
	}
	m.cacheHits.Inc()
}

// IncCacheMiss counts a request that needed a refresh.
func (m *Metrics) IncCacheMiss() {
	if m == nil {
		return
	}
	m.cacheMisses.Inc()
}
