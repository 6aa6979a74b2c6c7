package opt

import "math"

// NearestNeighborTour builds a tour greedily: from the current location,
// always move to the closest unvisited stop. If no remaining stop is
// reachable the partial route built so far is returned with its accumulated
// cost — a successful result by policy, not an error. After visiting every
// stop the tour closes back to start only when that edge exists.
func (o *Optimizer) NearestNeighborTour(start string, stops []string) ([]string, float64, error) {
	if err := o.ensureKnown(start); err != nil {
		return nil, math.Inf(1), err
	}
	if err := o.ensureKnown(stops...); err != nil {
		return nil, math.Inf(1), err
	}
	if len(stops) == 0 {
		return []string{start}, 0, nil
	}

	route := []string{start}
	remaining := make(map[string]bool, len(stops))
	for _, s := range stops {
		remaining[s] = true
	}
	current := start
	total := 0.0

	for len(remaining) > 0 {
		nearest := ""
		best := math.Inf(1)
		for s := range remaining {
			w, ok := o.graph.Weight(current, s)
			if !ok {
				continue
			}
			if w < best || (w == best && s < nearest) {
				best = w
				nearest = s
			}
		}
		if math.IsInf(best, 1) {
			break // no reachable stop left; keep the partial route
		}
		route = append(route, nearest)
		delete(remaining, nearest)
		total += best
		current = nearest
	}

	if current != start {
		if w, ok := o.graph.Weight(current, start); ok {
			route = append(route, start)
			total += w
		}
	}
	return route, total, nil
}
