// Package opt implements the route search algorithms: Dijkstra and A* for
// single destinations, nearest neighbor and a genetic algorithm for
// multi-stop tours. All algorithms are pure functions over an immutable
// graph snapshot supplied at construction.
package opt

import (
	"fmt"
	"math"

	"routenav/internal/graph"
	"routenav/internal/model"
)

// Optimizer runs searches over one traffic-adjusted graph snapshot. It holds
// no mutable state, so a single value may serve concurrent calls, but the
// usual pattern is one Optimizer per request over a fresh dynamic graph.
type Optimizer struct {
	graph  graph.Graph
	coords map[string]model.GeoPoint
}

// New wraps a graph snapshot. coords feeds the A* heuristic and may be nil,
// degrading the heuristic to zero (plain Dijkstra ordering).
func New(g graph.Graph, coords map[string]model.GeoPoint) *Optimizer {
	return &Optimizer{graph: g, coords: coords}
}

// ensureKnown rejects location names absent from the graph before any search
// runs. Unknown names are caller contract violations, not "unreachable".
func (o *Optimizer) ensureKnown(names ...string) error {
	for _, n := range names {
		if !o.graph.Has(n) {
			return fmt.Errorf("unknown location: %s", n)
		}
	}
	return nil
}

// RouteCost sums edge weights along consecutive route pairs. A missing edge
// makes the whole route cost +Inf.
func (o *Optimizer) RouteCost(route []string) float64 {
	total := 0.0
	for i := 0; i+1 < len(route); i++ {
		w, ok := o.graph.Weight(route[i], route[i+1])
		if !ok {
			return math.Inf(1)
		}
		total += w
	}
	return total
}
