package opt

import (
	"container/heap"
	"math"
)

// pqItem is a priority-queue entry. Stale entries are skipped on pop via the
// visited set rather than decreased in place.
type pqItem struct {
	node string
	prio float64
}

type minQueue []pqItem

func (q minQueue) Len() int { return len(q) }
func (q minQueue) Less(i, j int) bool {
	if q[i].prio != q[j].prio {
		return q[i].prio < q[j].prio
	}
	return q[i].node < q[j].node // deterministic tie-break
}
func (q minQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *minQueue) Push(x any)   { *q = append(*q, x.(pqItem)) }
func (q *minQueue) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]
	return it
}

// ShortestPath finds the minimum-cost path from start to end with Dijkstra's
// algorithm. Edge weights must be non-negative. If end is unreachable the
// route is empty and the cost is +Inf; that is a result, not an error. An
// error is returned only when start or end is not a graph node.
func (o *Optimizer) ShortestPath(start, end string) ([]string, float64, error) {
	if err := o.ensureKnown(start, end); err != nil {
		return nil, math.Inf(1), err
	}

	dist := map[string]float64{start: 0}
	prev := map[string]string{}
	visited := map[string]bool{}
	pq := &minQueue{{node: start, prio: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		it := heap.Pop(pq).(pqItem)
		if visited[it.node] {
			continue
		}
		visited[it.node] = true
		if it.node == end {
			break
		}
		for nb, w := range o.graph[it.node] {
			nd := it.prio + w
			if cur, ok := dist[nb]; !ok || nd < cur {
				dist[nb] = nd
				prev[nb] = it.node
				heap.Push(pq, pqItem{node: nb, prio: nd})
			}
		}
	}

	if !visited[end] {
		return []string{}, math.Inf(1), nil
	}
	return reconstruct(prev, start, end), dist[end], nil
}

func reconstruct(prev map[string]string, start, end string) []string {
	path := []string{end}
	for cur := end; cur != start; {
		cur = prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
