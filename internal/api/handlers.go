package api

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"routenav/internal/buildinfo"
	"routenav/internal/cache"
	"routenav/internal/metrics"
	"routenav/internal/model"
	"routenav/internal/opt"
	"routenav/internal/predict"
	"routenav/internal/store"
)

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round1(v float64) float64 { return math.Round(v*10) / 10 }

// LocationsHandler handles GET /api/locations
func (s *Server) LocationsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	locs := s.Builder.Locations()
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "locations": locs, "count": len(locs)})
}

// OptimizeRouteHandler handles POST /api/optimize-route. Non-empty stops
// select the multi-stop tour path; otherwise end must name a single
// destination.
func (s *Server) OptimizeRouteHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req model.OptimizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid JSON", err.Error(), r.URL.Path)
		return
	}
	if err := s.validateOptimizeRequest(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid optimize request", err.Error(), r.URL.Path)
		return
	}
	hour, day := snapshotTime(req.Hour, req.Day)
	weather := req.Weather
	if weather == "" {
		weather = "clear"
	}
	algorithm := req.Algorithm
	if algorithm == "" {
		algorithm = string(opt.AlgorithmGenetic)
	}

	key := cache.Key(req.Start, req.End, req.Stops, algorithm, hour, day, weather)
	if cached, ok := s.Cache.Get(r.Context(), key); ok {
		metrics.CacheLookups.WithLabelValues("hit").Inc()
		writeJSON(w, http.StatusOK, cached)
		return
	}
	metrics.CacheLookups.WithLabelValues("miss").Inc()

	dyn := s.Builder.Dynamic(hour, day, weather)
	o := opt.New(dyn, s.Builder.Coords())

	var (
		route    []string
		distance float64
		numStops int
		err      error
	)
	started := time.Now()
	if len(req.Stops) > 0 {
		numStops = len(req.Stops)
		var res opt.MultiStopResult
		res, err = o.OptimizeMultiStop(req.Start, req.Stops, opt.Algorithm(algorithm), s.geneticParams())
		route, distance = res.Route, res.Distance
	} else {
		numStops = 1
		if algorithm == string(opt.AlgorithmAStar) {
			route, distance, err = o.ShortestPathAStar(req.Start, req.End)
		} else {
			route, distance, err = o.ShortestPath(req.Start, req.End)
		}
	}
	elapsed := time.Since(started)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Optimization failed", err.Error(), r.URL.Path)
		return
	}

	opt.RecordRun(opt.Algorithm(algorithm), numStops, distance, elapsed)
	metrics.OptimizeDuration.WithLabelValues(algorithm).Observe(elapsed.Seconds())
	if math.IsInf(distance, 1) {
		metrics.OptimizeRuns.WithLabelValues(algorithm, "unreachable").Inc()
		writeProblem(w, http.StatusUnprocessableEntity, "No route found", "destination unreachable under current traffic graph", r.URL.Path)
		return
	}
	metrics.OptimizeRuns.WithLabelValues(algorithm, "ok").Inc()

	minutes := s.Estimator.Estimate(distance, numStops, hour, day, "medium", weather)
	coords := s.Builder.Coords()
	routeCoords := make([]model.GeoPoint, 0, len(route))
	for _, name := range route {
		routeCoords = append(routeCoords, coords[name])
	}

	resp := model.OptimizeResponse{
		Success:          true,
		Route:            route,
		RouteCoords:      routeCoords,
		Distance:         round2(distance),
		EstimatedMinutes: round1(minutes),
		Algorithm:        algorithm,
		NumStops:         numStops,
		Traffic:          model.TrafficConditions{Hour: hour, Day: day, Weather: weather},
	}
	s.Cache.Set(r.Context(), key, resp)
	writeJSON(w, http.StatusOK, resp)
}

// PredictTrafficHandler handles POST /api/predict-traffic
func (s *Server) PredictTrafficHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req model.TrafficRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid JSON", err.Error(), r.URL.Path)
		return
	}
	if req.Location == "" {
		writeProblem(w, http.StatusBadRequest, "Missing location", "location is required", r.URL.Path)
		return
	}
	if err := validateSnapshot(req.Hour, req.Day); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid traffic request", err.Error(), r.URL.Path)
		return
	}
	hour, day := snapshotTime(req.Hour, req.Day)
	weather := req.Weather
	if weather == "" {
		weather = "clear"
	}
	mult, err := s.Traffic.Predict(req.Location, hour, day, weather)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Prediction failed", err.Error(), r.URL.Path)
		return
	}
	writeJSON(w, http.StatusOK, model.TrafficResponse{
		Success:    true,
		Location:   req.Location,
		Multiplier: round2(mult),
		Level:      predict.Level(mult),
		Conditions: model.TrafficConditions{Hour: hour, Day: day, Weather: weather},
	})
}

// EstimateDeliveryHandler handles POST /api/estimate-delivery
func (s *Server) EstimateDeliveryHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req model.EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid JSON", err.Error(), r.URL.Path)
		return
	}
	if req.DistanceKm == nil {
		writeProblem(w, http.StatusBadRequest, "Missing distance", "distance_km is required", r.URL.Path)
		return
	}
	if *req.DistanceKm < 0 {
		writeProblem(w, http.StatusBadRequest, "Invalid distance", "distance_km must be >= 0", r.URL.Path)
		return
	}
	if err := validateSnapshot(req.Hour, req.Day); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid estimate request", err.Error(), r.URL.Path)
		return
	}
	numStops := req.NumStops
	if numStops <= 0 {
		numStops = 1
	}
	hour, day := snapshotTime(req.Hour, req.Day)
	pkg := req.PackageSize
	if pkg == "" {
		pkg = "medium"
	}
	weather := req.Weather
	if weather == "" {
		weather = "clear"
	}
	minutes := s.Estimator.Estimate(*req.DistanceKm, numStops, hour, day, pkg, weather)
	writeJSON(w, http.StatusOK, model.EstimateResponse{
		Success:        true,
		EstimatedMins:  round1(minutes),
		EstimatedHours: round2(minutes / 60),
		Parameters: map[string]any{
			"distance_km":  *req.DistanceKm,
			"num_stops":    numStops,
			"package_size": pkg,
			"weather":      weather,
		},
	})
}

// DeliveriesHandler handles GET/POST /api/deliveries
func (s *Server) DeliveriesHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		items, err := s.Store.ListDeliveries(r.Context(), r.URL.Query().Get("status"))
		if err != nil {
			writeProblem(w, http.StatusInternalServerError, "List deliveries failed", err.Error(), r.URL.Path)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"deliveries": items, "count": len(items)})
	case http.MethodPost:
		var in model.DeliveryIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeProblem(w, http.StatusBadRequest, "Invalid JSON", err.Error(), r.URL.Path)
			return
		}
		if err := validateDeliveryIn(&in); err != nil {
			writeProblem(w, http.StatusBadRequest, "Invalid delivery", err.Error(), r.URL.Path)
			return
		}
		d, err := s.Store.CreateDelivery(r.Context(), in)
		if err != nil {
			writeProblem(w, http.StatusInternalServerError, "Create delivery failed", err.Error(), r.URL.Path)
			return
		}
		s.Broker.Publish(d.ID, Event{Type: "delivery.created", Data: map[string]any{"id": d.ID, "status": d.Status}})
		writeJSON(w, http.StatusCreated, map[string]any{"success": true, "delivery": d})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// DeliveryByIDHandler handles /api/deliveries/{id}, {id}/submit, {id}/events
func (s *Server) DeliveryByIDHandler(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/deliveries/")
	if rest == r.URL.Path || rest == "" {
		writeProblem(w, http.StatusNotFound, "Not Found", "missing id", r.URL.Path)
		return
	}
	parts := strings.Split(rest, "/")
	id := parts[0]

	if len(parts) > 1 && parts[1] == "events" {
		s.eventsStream(w, r, id)
		return
	}
	if len(parts) > 1 && parts[1] == "submit" {
		s.submitDelivery(w, r, id)
		return
	}
	if len(parts) > 1 {
		writeProblem(w, http.StatusNotFound, "Not Found", "", r.URL.Path)
		return
	}

	switch r.Method {
	case http.MethodGet:
		d, err := s.Store.GetDelivery(r.Context(), id)
		if err == store.ErrNotFound {
			writeProblem(w, http.StatusNotFound, "Delivery not found", "", r.URL.Path)
			return
		}
		if err != nil {
			writeProblem(w, http.StatusInternalServerError, "Get delivery failed", err.Error(), r.URL.Path)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"delivery": d})
	case http.MethodPut:
		var patch model.DeliveryPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			writeProblem(w, http.StatusBadRequest, "Invalid JSON", err.Error(), r.URL.Path)
			return
		}
		if patch.Status != "" && !validStatus(patch.Status) {
			writeProblem(w, http.StatusBadRequest, "Invalid status", "status must be pending, in_progress, or completed", r.URL.Path)
			return
		}
		d, err := s.Store.UpdateDelivery(r.Context(), id, patch)
		if err == store.ErrNotFound {
			writeProblem(w, http.StatusNotFound, "Delivery not found", "", r.URL.Path)
			return
		}
		if err != nil {
			writeProblem(w, http.StatusInternalServerError, "Update delivery failed", err.Error(), r.URL.Path)
			return
		}
		s.Broker.Publish(id, Event{Type: "delivery.updated", Data: map[string]any{"id": id, "status": d.Status}})
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "delivery": d})
	case http.MethodDelete:
		err := s.Store.DeleteDelivery(r.Context(), id)
		if err == store.ErrNotFound {
			writeProblem(w, http.StatusNotFound, "Delivery not found", "", r.URL.Path)
			return
		}
		if err != nil {
			writeProblem(w, http.StatusInternalServerError, "Delete delivery failed", err.Error(), r.URL.Path)
			return
		}
		s.Broker.Publish(id, Event{Type: "delivery.deleted", Data: map[string]any{"id": id}})
		writeJSON(w, http.StatusOK, map[string]bool{"success": true})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) submitDelivery(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req model.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid JSON", err.Error(), r.URL.Path)
		return
	}
	if req.RecipientName == "" {
		writeProblem(w, http.StatusBadRequest, "Missing recipient", "recipient_name is required", r.URL.Path)
		return
	}
	d, err := s.Store.SubmitDelivery(r.Context(), id, req)
	if err == store.ErrNotFound {
		writeProblem(w, http.StatusNotFound, "Delivery not found", "", r.URL.Path)
		return
	}
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Submit delivery failed", err.Error(), r.URL.Path)
		return
	}
	s.Broker.Publish(id, Event{Type: "delivery.completed", Data: map[string]any{"id": id, "recipient": d.Recipient, "delivered_at": d.DeliveredAt}})
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "delivery": d})
}

// AnalyticsHandler handles GET /api/analytics
func (s *Server) AnalyticsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	a, err := s.Store.Analytics(r.Context())
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Analytics failed", err.Error(), r.URL.Path)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// OptimizerStatsHandler handles GET /api/optimizer/stats
func (s *Server) OptimizerStatsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"algorithms": opt.StatsSnapshot()})
}

func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "build": buildinfo.Info()})
}

func (s *Server) ReadyHandler(w http.ResponseWriter, r *http.Request) {
	// The graph is built at startup; readiness only requires it to be present.
	if s.Builder == nil || len(s.Builder.Locations()) == 0 {
		writeProblem(w, http.StatusServiceUnavailable, "Not Ready", "graph not loaded", r.URL.Path)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready", "locations": strconv.Itoa(len(s.Builder.Locations()))})
}
