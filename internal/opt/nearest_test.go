package opt

import (
	"reflect"
	"testing"

	"routenav/internal/graph"
)

func TestNearestNeighborEmptyStops(t *testing.T) {
	o := New(scenarioGraph(), nil)
	route, cost, err := o.NearestNeighborTour("A", nil)
	if err != nil {
		t.Fatalf("NearestNeighborTour: %v", err)
	}
	if !reflect.DeepEqual(route, []string{"A"}) || cost != 0 {
		t.Fatalf("got %v @ %v, want [A] @ 0", route, cost)
	}
}

func TestNearestNeighborGreedyOrder(t *testing.T) {
	g := graph.Graph{
		"W": {"X": 5, "Y": 2, "Z": 9},
		"X": {"W": 5, "Y": 4, "Z": 1},
		"Y": {"W": 2, "X": 4, "Z": 7},
		"Z": {"W": 9, "X": 1, "Y": 7},
	}
	o := New(g, nil)
	route, cost, err := o.NearestNeighborTour("W", []string{"X", "Y", "Z"})
	if err != nil {
		t.Fatalf("NearestNeighborTour: %v", err)
	}
	// Greedy: W->Y (2), Y->X (4), X->Z (1), close Z->W (9).
	want := []string{"W", "Y", "X", "Z", "W"}
	if !reflect.DeepEqual(route, want) {
		t.Fatalf("route = %v, want %v", route, want)
	}
	if cost != 16 {
		t.Fatalf("cost = %v, want 16", cost)
	}
}

func TestNearestNeighborPartialRouteWhenStopUnreachable(t *testing.T) {
	// Z has no incoming edges: the tour stops early and stays open, keeping
	// the accumulated cost. A policy choice, not an error.
	g := graph.Graph{
		"W": {"X": 5, "Y": 2},
		"X": {"W": 5, "Y": 4},
		"Y": {"W": 2, "X": 4},
		"Z": {"W": 1},
	}
	o := New(g, nil)
	route, cost, err := o.NearestNeighborTour("W", []string{"X", "Y", "Z"})
	if err != nil {
		t.Fatalf("NearestNeighborTour: %v", err)
	}
	// W->Y (2), Y->X (4), then Z unreachable; close X->W (5).
	want := []string{"W", "Y", "X", "W"}
	if !reflect.DeepEqual(route, want) {
		t.Fatalf("route = %v, want %v", route, want)
	}
	if cost != 11 {
		t.Fatalf("cost = %v, want 11", cost)
	}
}

func TestNearestNeighborOpenRouteWhenNoClosingEdge(t *testing.T) {
	g := graph.Graph{
		"W": {"X": 3},
		"X": {"Y": 2},
		"Y": {"X": 2},
	}
	o := New(g, nil)
	route, cost, err := o.NearestNeighborTour("W", []string{"X", "Y"})
	if err != nil {
		t.Fatalf("NearestNeighborTour: %v", err)
	}
	// Y has no edge back to W, so the route stays open and cost unchanged.
	want := []string{"W", "X", "Y"}
	if !reflect.DeepEqual(route, want) {
		t.Fatalf("route = %v, want %v", route, want)
	}
	if cost != 5 {
		t.Fatalf("cost = %v, want 5", cost)
	}
}

func TestNearestNeighborUnknownStopFailsFast(t *testing.T) {
	o := New(scenarioGraph(), nil)
	if _, _, err := o.NearestNeighborTour("A", []string{"B", "Nowhere"}); err == nil {
		t.Fatalf("expected error for unknown stop")
	}
}
