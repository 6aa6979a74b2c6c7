package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the API
	Registry = prometheus.NewRegistry()
	// HTTPRequests counts requests by method, path, and status
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	// HTTPDuration records request durations in seconds
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)

	// OptimizeRuns counts route optimizations by algorithm and outcome
	OptimizeRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "optimize_runs_total", Help: "Route optimizations by algorithm and outcome."},
		[]string{"algorithm", "outcome"},
	)
	// OptimizeDuration tracks optimization latencies in seconds per algorithm
	OptimizeDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "optimize_duration_seconds", Help: "Route optimization duration in seconds.", Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5}},
		[]string{"algorithm"},
	)
	// CacheLookups counts route cache hits and misses
	CacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "route_cache_lookups_total", Help: "Route cache lookups by result."},
		[]string{"result"},
	)
)

// RegisterDefault registers collectors to the default registry.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(OptimizeRuns)
		Registry.MustRegister(OptimizeDuration)
		Registry.MustRegister(CacheLookups)
		// Go/process collectors on our registry
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

var regOnce sync.Once
