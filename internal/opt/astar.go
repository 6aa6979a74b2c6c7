package opt

import (
	"container/heap"
	"math"
)

// kmPerDegree approximates great-circle kilometers per degree of raw
// coordinate delta. Cheap proxy for the heuristic, not a full haversine.
const kmPerDegree = 111.0

// heuristic estimates remaining cost from a to b as the Euclidean distance
// between raw coordinates scaled to kilometers. This is a lower bound only
// for unweighted distances: traffic multipliers below 1.0 can shrink edge
// costs under the estimate, so strict admissibility is not guaranteed under
// discounted traffic.
func (o *Optimizer) heuristic(a, b string) float64 {
	pa, okA := o.coords[a]
	pb, okB := o.coords[b]
	if !okA || !okB {
		return 0
	}
	dLat := pb.Lat - pa.Lat
	dLng := pb.Lng - pa.Lng
	return math.Sqrt(dLat*dLat+dLng*dLng) * kmPerDegree
}

// ShortestPathAStar finds a low-cost path from start to end guided by the
// coordinate heuristic. Same contract as ShortestPath: empty route and +Inf
// cost when unreachable, error only for unknown locations. Optimality holds
// whenever all traffic multipliers in the snapshot are >= 1.0.
func (o *Optimizer) ShortestPathAStar(start, end string) ([]string, float64, error) {
	if err := o.ensureKnown(start, end); err != nil {
		return nil, math.Inf(1), err
	}

	gScore := map[string]float64{start: 0}
	cameFrom := map[string]string{}
	open := &minQueue{{node: start, prio: o.heuristic(start, end)}}
	heap.Init(open)

	for open.Len() > 0 {
		it := heap.Pop(open).(pqItem)
		cur := it.node
		if cur == end {
			return reconstruct(cameFrom, start, end), gScore[end], nil
		}
		for nb, w := range o.graph[cur] {
			tentative := gScore[cur] + w
			if old, ok := gScore[nb]; !ok || tentative < old {
				cameFrom[nb] = cur
				gScore[nb] = tentative
				heap.Push(open, pqItem{node: nb, prio: tentative + o.heuristic(nb, end)})
			}
		}
	}
	return []string{}, math.Inf(1), nil
}
