// File: methods_clone.go
// Role: Deep duplication of a graph.
// Determinism:
//   - The clone's edge store reproduces the source order position for
//     position; fresh edge instances are allocated, never shared.

package core

// Clone returns a deep copy of the graph: an independent node set and
// independent edge instances. Mutating the clone never affects the source,
// and g.Equal(g.Clone()) always holds.
// Complexity: O(V + E).
func (g *Graph[N, E]) Clone() *Graph[N, E] {
	clone := &Graph[N, E]{
		nodes: make(map[N]struct{}, len(g.nodes)),
		edges: make([]Edge[N, E], 0, len(g.edges)),
	}
	for v := range g.nodes {
		clone.nodes[v] = struct{}{}
	}
	for _, e := range g.edges {
		from, to := e.Endpoints()
		if w, ok := e.Weight(); ok {
			clone.edges = append(clone.edges, &weightedEdge[N, E]{src: from, dst: to, weight: w})
		} else {
			clone.edges = append(clone.edges, &unweightedEdge[N, E]{src: from, dst: to})
		}
	}

	return clone
}
