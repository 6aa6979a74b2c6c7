// Package predict holds the rule-based estimators layered on top of the
// traffic profile: a traffic multiplier predictor and a delivery time
// estimator. Both run after routing and never influence route selection.
package predict

import (
	"fmt"

	"routenav/internal/graph"
)

// Multiplier bounds. Predictions outside this range are clamped.
const (
	minMultiplier = 0.5
	maxMultiplier = 3.0
)

// TrafficPredictor derives a bounded traffic multiplier for a location at a
// given time from the builder's traffic profile.
type TrafficPredictor struct {
	builder *graph.Builder
}

func NewTrafficPredictor(b *graph.Builder) *TrafficPredictor {
	return &TrafficPredictor{builder: b}
}

// Predict returns the clamped multiplier for a known location.
func (p *TrafficPredictor) Predict(location string, hour, day int, weather string) (float64, error) {
	if _, ok := p.builder.Location(location); !ok {
		return 0, fmt.Errorf("unknown location: %s", location)
	}
	m := p.builder.Multiplier(location, hour, day, weather)
	if m < minMultiplier {
		m = minMultiplier
	}
	if m > maxMultiplier {
		m = maxMultiplier
	}
	return m, nil
}

// Level buckets a multiplier into a coarse congestion label.
func Level(multiplier float64) string {
	switch {
	case multiplier < 0.8:
		return "light"
	case multiplier < 1.2:
		return "moderate"
	case multiplier < 1.6:
		return "heavy"
	default:
		return "very_heavy"
	}
}
