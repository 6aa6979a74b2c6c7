package opt

import (
	"reflect"
	"testing"
)

func TestParseAlgorithm(t *testing.T) {
	for _, name := range []string{"dijkstra", "a_star", "genetic", "nearest_neighbor"} {
		algo, ok := ParseAlgorithm(name)
		if !ok || string(algo) != name {
			t.Fatalf("ParseAlgorithm(%q) = %q, %v", name, algo, ok)
		}
	}
	if _, ok := ParseAlgorithm("simulated_annealing"); ok {
		t.Fatalf("ParseAlgorithm accepted unknown name")
	}
}

func TestOptimizeMultiStopDispatch(t *testing.T) {
	o := New(scenarioGraph(), nil)
	gp := DefaultGeneticParams()
	gp.Seed = 1

	res, err := o.OptimizeMultiStop("A", []string{"B"}, AlgorithmNearestNeighbor, gp)
	if err != nil {
		t.Fatalf("nearest neighbor: %v", err)
	}
	if !reflect.DeepEqual(res.Route, []string{"A", "B", "A"}) || res.Distance != 30 {
		t.Fatalf("nearest neighbor result = %+v", res)
	}
	if res.Algorithm != AlgorithmNearestNeighbor || res.NumStops != 1 {
		t.Fatalf("result metadata = %+v", res)
	}

	res, err = o.OptimizeMultiStop("A", []string{"B"}, AlgorithmGenetic, gp)
	if err != nil {
		t.Fatalf("genetic: %v", err)
	}
	if !reflect.DeepEqual(res.Route, []string{"A", "B", "A"}) || res.Distance != 30 {
		t.Fatalf("genetic result = %+v", res)
	}
	if res.Algorithm != AlgorithmGenetic {
		t.Fatalf("result echoes %q, want genetic", res.Algorithm)
	}
}

func TestOptimizeMultiStopUnrecognizedFallsBackToNearestNeighbor(t *testing.T) {
	o := New(scenarioGraph(), nil)
	res, err := o.OptimizeMultiStop("A", []string{"B", "C"}, Algorithm("quantum"), DefaultGeneticParams())
	if err != nil {
		t.Fatalf("OptimizeMultiStop: %v", err)
	}
	// Nearest neighbor greedy: A->B (10), B->C (20), close C->A (15).
	want := []string{"A", "B", "C", "A"}
	if !reflect.DeepEqual(res.Route, want) || res.Distance != 45 {
		t.Fatalf("fallback result = %+v, want route %v @ 45", res, want)
	}
	// The requested name is echoed back even when the fallback ran.
	if res.Algorithm != Algorithm("quantum") {
		t.Fatalf("Algorithm = %q, want quantum", res.Algorithm)
	}
}

func TestOptimizeMultiStopEmptyStops(t *testing.T) {
	o := New(scenarioGraph(), nil)
	for _, algo := range []Algorithm{AlgorithmGenetic, AlgorithmNearestNeighbor, Algorithm("bogus")} {
		res, err := o.OptimizeMultiStop("A", nil, algo, DefaultGeneticParams())
		if err != nil {
			t.Fatalf("%s: %v", algo, err)
		}
		if !reflect.DeepEqual(res.Route, []string{"A"}) || res.Distance != 0 || res.NumStops != 0 {
			t.Fatalf("%s: result = %+v, want trivial route", algo, res)
		}
	}
}

func TestOptimizeMultiStopUnknownStop(t *testing.T) {
	o := New(scenarioGraph(), nil)
	if _, err := o.OptimizeMultiStop("A", []string{"Nowhere"}, AlgorithmGenetic, DefaultGeneticParams()); err == nil {
		t.Fatalf("expected error for unknown stop")
	}
}
