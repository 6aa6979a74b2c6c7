package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"routenav/internal/api"
	"routenav/internal/config"
	"routenav/internal/metrics"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	srvDeps, err := api.NewServer(cfg)
	if err != nil {
		log.Fatalf("failed to init server: %v", err)
	}
	metrics.RegisterDefault()

	mux := http.NewServeMux()

	// Routing
	mux.HandleFunc("/api/locations", srvDeps.LocationsHandler)
	mux.HandleFunc("/api/optimize-route", srvDeps.OptimizeRouteHandler)
	mux.HandleFunc("/api/predict-traffic", srvDeps.PredictTrafficHandler)
	mux.HandleFunc("/api/estimate-delivery", srvDeps.EstimateDeliveryHandler)

	// Deliveries
	mux.HandleFunc("/api/deliveries", srvDeps.DeliveriesHandler)
	mux.HandleFunc("/api/deliveries/", srvDeps.DeliveryByIDHandler) // includes /submit, /events
	mux.HandleFunc("/api/analytics", srvDeps.AnalyticsHandler)

	// Admin
	mux.HandleFunc("/api/optimizer/stats", srvDeps.OptimizerStatsHandler)

	// Health & metrics
	mux.HandleFunc("/healthz", srvDeps.HealthHandler)
	mux.HandleFunc("/readyz", srvDeps.ReadyHandler)
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	handler := api.WithObservability(api.WithRateLimit(cfg.RateLimitPerSec, cfg.RateLimitBurst, mux))

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("API listening on %s", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
