package opt

import (
	"math"
	"sync"
	"time"
)

// AlgorithmStats aggregates optimization runs per algorithm for the admin
// stats endpoint.
type AlgorithmStats struct {
	Runs         int     `json:"runs"`
	LastStops    int     `json:"lastStops"`
	LastDistance float64 `json:"lastDistance"`
	LastMs       int64   `json:"lastMs"`
	TotalMs      int64   `json:"totalMs"`
}

var (
	statsMu sync.Mutex
	stats   = map[Algorithm]AlgorithmStats{}
)

// RecordRun notes one completed optimization. Unreachable results (infinite
// distance) are recorded as -1 so snapshots stay JSON-encodable.
func RecordRun(algo Algorithm, stops int, distance float64, dur time.Duration) {
	if math.IsInf(distance, 0) || math.IsNaN(distance) {
		distance = -1
	}
	statsMu.Lock()
	s := stats[algo]
	s.Runs++
	s.LastStops = stops
	s.LastDistance = distance
	s.LastMs = dur.Milliseconds()
	s.TotalMs += dur.Milliseconds()
	stats[algo] = s
	statsMu.Unlock()
}

// StatsSnapshot returns a copy of the per-algorithm run stats.
func StatsSnapshot() map[Algorithm]AlgorithmStats {
	statsMu.Lock()
	defer statsMu.Unlock()
	out := make(map[Algorithm]AlgorithmStats, len(stats))
	for k, v := range stats {
		out[k] = v
	}
	return out
}
