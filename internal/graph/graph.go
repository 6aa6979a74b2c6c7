// Package graph owns the static location set and historical traffic profile
// and derives distance graphs from them: a static great-circle graph built
// once at load, and per-request dynamic graphs with traffic-adjusted weights.
package graph

import "sort"

// Graph maps source -> destination -> edge weight in kilometers. A complete
// digraph over distinct location pairs. Treated as immutable by all callers.
type Graph map[string]map[string]float64

// Has reports whether name is a node of the graph.
func (g Graph) Has(name string) bool {
	_, ok := g[name]
	return ok
}

// Weight returns the edge weight from -> to.
func (g Graph) Weight(from, to string) (float64, bool) {
	w, ok := g[from][to]
	return w, ok
}

// Nodes returns all node names in sorted order.
func (g Graph) Nodes() []string {
	out := make([]string, 0, len(g))
	for name := range g {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
