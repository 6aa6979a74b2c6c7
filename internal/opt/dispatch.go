package opt

// Algorithm identifies a route search strategy.
type Algorithm string

const (
	AlgorithmDijkstra        Algorithm = "dijkstra"
	AlgorithmAStar           Algorithm = "a_star"
	AlgorithmGenetic         Algorithm = "genetic"
	AlgorithmNearestNeighbor Algorithm = "nearest_neighbor"
)

// ParseAlgorithm maps a request string onto a known Algorithm.
func ParseAlgorithm(name string) (Algorithm, bool) {
	switch Algorithm(name) {
	case AlgorithmDijkstra, AlgorithmAStar, AlgorithmGenetic, AlgorithmNearestNeighbor:
		return Algorithm(name), true
	}
	return "", false
}

// MultiStopResult is the outcome of a multi-stop optimization.
type MultiStopResult struct {
	Route     []string
	Distance  float64
	Algorithm Algorithm
	NumStops  int
}

// OptimizeMultiStop dispatches a multi-stop request to the genetic algorithm
// or nearest neighbor. Unrecognized algorithm names fall back to nearest
// neighbor, a deliberate compatibility branch that callers rely on. Empty
// stops yield the trivial single-node route at cost 0 for every algorithm.
func (o *Optimizer) OptimizeMultiStop(start string, stops []string, algo Algorithm, gp GeneticParams) (MultiStopResult, error) {
	var (
		route []string
		dist  float64
		err   error
	)
	switch algo {
	case AlgorithmGenetic:
		route, dist, err = o.GeneticTour(start, stops, gp)
	case AlgorithmNearestNeighbor:
		route, dist, err = o.NearestNeighborTour(start, stops)
	default:
		route, dist, err = o.NearestNeighborTour(start, stops)
	}
	if err != nil {
		return MultiStopResult{}, err
	}
	return MultiStopResult{Route: route, Distance: dist, Algorithm: algo, NumStops: len(stops)}, nil
}
