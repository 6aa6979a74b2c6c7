package opt

import (
	"math"
	"testing"

	"routenav/internal/graph"
	"routenav/internal/model"
)

// scenarioGraph is the traffic-adjusted three-location graph used across the
// search tests: B carries a 2.0 multiplier on its outgoing edges.
func scenarioGraph() graph.Graph {
	return graph.Graph{
		"A": {"B": 10, "C": 15},
		"B": {"A": 20, "C": 20},
		"C": {"A": 15, "B": 10},
	}
}

// geoGraph builds a complete graph whose edge weights equal the straight-line
// coordinate distance scaled by the source's multiplier, mirroring how the
// dynamic graph scales haversine distances.
func geoGraph(coords map[string]model.GeoPoint, mults map[string]float64) graph.Graph {
	g := graph.Graph{}
	for from, pf := range coords {
		mult, ok := mults[from]
		if !ok {
			mult = 1.0
		}
		edges := map[string]float64{}
		for to, pt := range coords {
			if from == to {
				continue
			}
			dLat := pt.Lat - pf.Lat
			dLng := pt.Lng - pf.Lng
			edges[to] = math.Sqrt(dLat*dLat+dLng*dLng) * 111.0 * mult
		}
		g[from] = edges
	}
	return g
}

func testCoords() map[string]model.GeoPoint {
	return map[string]model.GeoPoint{
		"A": {Lat: 17.00, Lng: 78.00},
		"B": {Lat: 17.05, Lng: 78.10},
		"C": {Lat: 17.10, Lng: 78.00},
		"D": {Lat: 17.02, Lng: 78.20},
		"E": {Lat: 16.95, Lng: 78.12},
	}
}

func TestRouteCost(t *testing.T) {
	o := New(scenarioGraph(), nil)
	if got := o.RouteCost([]string{"A", "B", "C"}); got != 30 {
		t.Fatalf("RouteCost = %v, want 30", got)
	}
	if got := o.RouteCost([]string{"A"}); got != 0 {
		t.Fatalf("single-node route cost = %v, want 0", got)
	}
	if got := o.RouteCost(nil); got != 0 {
		t.Fatalf("empty route cost = %v, want 0", got)
	}
}

func TestRouteCostMissingEdgeIsInfinite(t *testing.T) {
	g := graph.Graph{"A": {"B": 1}, "B": {}, "C": {}}
	o := New(g, nil)
	if got := o.RouteCost([]string{"A", "B", "C"}); !math.IsInf(got, 1) {
		t.Fatalf("expected +Inf for missing edge, got %v", got)
	}
}
