package api

import (
	"fmt"
	"time"

	"routenav/internal/cache"
	"routenav/internal/config"
	"routenav/internal/graph"
	"routenav/internal/opt"
	"routenav/internal/predict"
	"routenav/internal/store"
)

type Server struct {
	Cfg       config.Config
	Store     store.Store
	Builder   *graph.Builder
	Traffic   *predict.TrafficPredictor
	Estimator *predict.DeliveryEstimator
	Broker    EventBroker
	Cache     *cache.RouteCache
}

// NewServer loads the reference data and wires dependencies. Redis is
// optional: when cfg.RedisURL is unset events stay in-process and responses
// are not cached.
func NewServer(cfg config.Config) (*Server, error) {
	locations, err := graph.LoadLocations(cfg.LocationsFile)
	if err != nil {
		return nil, fmt.Errorf("load locations: %w", err)
	}
	profile, err := graph.LoadProfile(cfg.TrafficFile)
	if err != nil {
		return nil, fmt.Errorf("load traffic profile: %w", err)
	}
	builder, err := graph.NewBuilder(locations, profile)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}

	var broker EventBroker
	if cfg.RedisURL != "" {
		if rb, err := NewRedisBroker(cfg.RedisURL); err == nil {
			broker = rb
		} else {
			broker = NewBroker()
		}
	} else {
		broker = NewBroker()
	}

	var rc *cache.RouteCache
	if cfg.RedisURL != "" {
		rc, _ = cache.NewRouteCache(cfg.RedisURL, time.Duration(cfg.CacheTTLSeconds)*time.Second)
	}

	return &Server{
		Cfg:       cfg,
		Store:     store.NewMemory(),
		Builder:   builder,
		Traffic:   predict.NewTrafficPredictor(builder),
		Estimator: predict.NewDeliveryEstimator(),
		Broker:    broker,
		Cache:     rc,
	}, nil
}

func (s *Server) geneticParams() opt.GeneticParams {
	gp := opt.DefaultGeneticParams()
	if s.Cfg.GeneticGenerations > 0 {
		gp.Generations = s.Cfg.GeneticGenerations
	}
	if s.Cfg.GeneticPopulation > 0 {
		gp.PopulationSize = s.Cfg.GeneticPopulation
	}
	return gp
}

// snapshotTime fills hour/day defaults from the wall clock. Days count
// Monday as 0 to match the traffic profile.
func snapshotTime(hour, day *int) (int, int) {
	now := time.Now()
	h := now.Hour()
	d := (int(now.Weekday()) + 6) % 7
	if hour != nil {
		h = *hour
	}
	if day != nil {
		d = *day
	}
	return h, d
}
