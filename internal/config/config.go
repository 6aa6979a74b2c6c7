// Package config loads server configuration from an optional YAML file with
// environment variable overrides. Environment always wins so container
// deployments can override a baked-in config file.
package config

import (
	"fmt"
	"os"
	"strconv"

	yaml "gopkg.in/yaml.v3"
)

type Config struct {
	Addr          string `yaml:"addr"`
	LocationsFile string `yaml:"locations_file"`
	TrafficFile   string `yaml:"traffic_file"`

	RedisURL        string `yaml:"redis_url"`
	CacheTTLSeconds int    `yaml:"cache_ttl_seconds"`

	RateLimitPerSec float64 `yaml:"rate_limit_per_sec"`
	RateLimitBurst  int     `yaml:"rate_limit_burst"`

	GeneticGenerations int `yaml:"genetic_generations"`
	GeneticPopulation  int `yaml:"genetic_population"`
}

func Default() Config {
	return Config{
		Addr:            ":8080",
		LocationsFile:   "data/locations.json",
		TrafficFile:     "data/historical_traffic.json",
		CacheTTLSeconds: 300,
		RateLimitPerSec: 50,
		RateLimitBurst:  100,
	}
}

// Load reads path when non-empty, then applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if port := os.Getenv("PORT"); port != "" {
		cfg.Addr = ":" + port
	}
	if v := os.Getenv("ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("LOCATIONS_FILE"); v != "" {
		cfg.LocationsFile = v
	}
	if v := os.Getenv("TRAFFIC_FILE"); v != "" {
		cfg.TrafficFile = v
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		cfg.RedisURL = v
	}
	if v := os.Getenv("CACHE_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.CacheTTLSeconds = n
		}
	}
	if v := os.Getenv("GA_GENERATIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.GeneticGenerations = n
		}
	}
	if v := os.Getenv("GA_POPULATION"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.GeneticPopulation = n
		}
	}
}
