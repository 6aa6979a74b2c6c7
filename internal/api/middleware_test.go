package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMetricPath(t *testing.T) {
	cases := []struct{ in, want string }{
		{"/api/locations", "/api/locations"},
		{"/api/deliveries", "/api/deliveries"},
		{"/api/deliveries/abc-123", "/api/deliveries/{id}"},
		{"/api/deliveries/abc-123/submit", "/api/deliveries/{id}/submit"},
		{"/api/deliveries/abc-123/events", "/api/deliveries/{id}/events"},
		{"/healthz", "/healthz"},
	}
	for _, c := range cases {
		if got := metricPath(c.in); got != c.want {
			t.Errorf("metricPath(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestWithRateLimitRejectsBurstOverflow(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	h := WithRateLimit(1, 2, ok)

	codes := []int{}
	for i := 0; i < 4; i++ {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/locations", nil))
		codes = append(codes, rr.Code)
	}
	// Burst of 2 passes, the rest are limited.
	if codes[0] != 200 || codes[1] != 200 {
		t.Fatalf("burst requests rejected: %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests && codes[3] != http.StatusTooManyRequests {
		t.Fatalf("limiter never engaged: %v", codes)
	}
}

func TestWithRateLimitDisabled(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	h := WithRateLimit(0, 0, ok)
	for i := 0; i < 10; i++ {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		if rr.Code != 200 {
			t.Fatalf("request %d: got %d", i, rr.Code)
		}
	}
}

func TestWithObservabilityRecordsStatus(t *testing.T) {
	h := WithObservability(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/locations", nil))
	if rr.Code != http.StatusTeapot {
		t.Fatalf("status not passed through: %d", rr.Code)
	}
}
