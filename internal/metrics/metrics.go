package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the service.
	Registry = prometheus.NewRegistry()

	// HTTPRequests counts requests by method, route pattern and status.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	// HTTPDuration records request durations in seconds.
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)

	// ProviderRequests counts outbound routing API calls by endpoint and outcome.
	ProviderRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "provider_requests_total", Help: "Outbound routing provider requests."},
		[]string{"endpoint", "outcome"},
	)

	// CacheLookups counts cache keys served or missed, by cache name.
	CacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "cache_lookups_total", Help: "Cache key lookups by result."},
		[]string{"cache", "result"},
	)

	// WalkStops observes how many stops each planned itinerary selects.
	WalkStops = prometheus.NewHistogram(
		prometheus.HistogramOpts{Name: "itinerary_walk_stops", Help: "Stops selected per itinerary.", Buckets: []float64{0, 1, 2, 4, 8, 16, 32, 64}},
	)
)

var regOnce sync.Once

// Register adds the service collectors to Registry. Safe to call repeatedly.
func Register() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(ProviderRequests)
		Registry.MustRegister(CacheLookups)
		Registry.MustRegister(WalkStops)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

// ObserveCache records hits and misses for one batched lookup.
func ObserveCache(cache string, hits, requested int) {
	CacheLookups.WithLabelValues(cache, "hit").Add(float64(hits))
	if misses := requested - hits; misses > 0 {
		CacheLookups.WithLabelValues(cache, "miss").Add(float64(misses))
	}
}
