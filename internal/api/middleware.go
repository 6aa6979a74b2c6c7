package api

import (
	"bufio"
	"fmt"
	"log"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
	"routenav/internal/metrics"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// Hijack passes through so websocket upgrades keep working under the
// instrumented writer.
func (sr *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hj, ok := sr.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("response writer does not support hijacking")
	}
	return hj.Hijack()
}

// metricPath collapses delivery IDs so metric cardinality stays bounded.
func metricPath(path string) string {
	rest := strings.TrimPrefix(path, "/api/deliveries/")
	if rest == path || rest == "" {
		return path
	}
	parts := strings.Split(rest, "/")
	if len(parts) > 1 {
		return "/api/deliveries/{id}/" + parts[1]
	}
	return "/api/deliveries/{id}"
}

// WithObservability logs each request and records Prometheus counters and
// latency histograms.
func WithObservability(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sr := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sr, r)
		dur := time.Since(start)
		path := metricPath(r.URL.Path)
		status := strconv.Itoa(sr.status)
		metrics.HTTPRequests.WithLabelValues(r.Method, path, status).Inc()
		metrics.HTTPDuration.WithLabelValues(r.Method, path, status).Observe(dur.Seconds())
		log.Printf("%s %s %s %d %v", r.RemoteAddr, r.Method, r.URL.Path, sr.status, dur)
	})
}

// WithRateLimit applies a global token-bucket limit; excess requests get a
// 429 problem response.
func WithRateLimit(perSec float64, burst int, next http.Handler) http.Handler {
	if perSec <= 0 {
		return next
	}
	limiter := rate.NewLimiter(rate.Limit(perSec), burst)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			writeProblem(w, http.StatusTooManyRequests, "Rate limit exceeded", "slow down", r.URL.Path)
			return
		}
		next.ServeHTTP(w, r)
	})
}
