// File: methods_queries.go
// Role: Read-only queries: membership, connectivity, sorted enumeration
//       surfaces, exact-match positioning, and structural equality.
// Determinism:
//   - Nodes() and Connections() return strictly ascending sequences.
//   - Edges() returns store order: unweighted first, then weight ascending.

package core

import "slices"

// IsNode reports whether v is a member of the node set.
// Complexity: O(1).
func (g *Graph[N, E]) IsNode(v N) bool {
	_, ok := g.nodes[v]

	return ok
}

// Empty reports whether the graph has no nodes.
// Complexity: O(1).
func (g *Graph[N, E]) Empty() bool {
	return len(g.nodes) == 0
}

// NodeCount returns the number of nodes. Complexity: O(1).
func (g *Graph[N, E]) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of stored edges. Complexity: O(1).
func (g *Graph[N, E]) EdgeCount() int { return len(g.edges) }

// IsConnected reports whether some edge connects exactly src→dst, with any
// weight or none.
//
// Returns ErrIsConnectedNodeMissing if src or dst is not a node.
// Complexity: O(E).
func (g *Graph[N, E]) IsConnected(src, dst N) (bool, error) {
	if !g.IsNode(src) || !g.IsNode(dst) {
		return false, ErrIsConnectedNodeMissing
	}
	for _, e := range g.edges {
		from, to := e.Endpoints()
		if from == src && to == dst {
			return true, nil
		}
	}

	return false, nil
}

// Nodes returns all node values, strictly ascending.
// Complexity: O(V log V).
func (g *Graph[N, E]) Nodes() []N {
	out := make([]N, 0, len(g.nodes))
	for v := range g.nodes {
		out = append(out, v)
	}
	slices.Sort(out)

	return out
}

// Edges returns every edge connecting exactly src→dst, ascending by weight
// with the unweighted edge first. An empty result is not an error.
//
// The returned handles alias container storage; they are invalidated by any
// subsequent mutating call.
// Returns ErrEdgesNodeMissing if src or dst is not a node.
// Complexity: O(E).
func (g *Graph[N, E]) Edges(src, dst N) ([]Edge[N, E], error) {
	if !g.IsNode(src) || !g.IsNode(dst) {
		return nil, ErrEdgesNodeMissing
	}
	var out []Edge[N, E]
	// The store is (src, dst, weight) ascending, so matches arrive already
	// in the required weight order.
	for _, e := range g.edges {
		from, to := e.Endpoints()
		if from == src && to == dst {
			out = append(out, e)
		}
	}

	return out, nil
}

// Find returns the position of the first edge whose (src, dst, weight)
// matches exactly, or the end sentinel if none. The weight argument is
// optional as in InsertEdge. Never fails, even for absent nodes.
// Complexity: O(E).
func (g *Graph[N, E]) Find(src, dst N, weight ...E) Iterator[N, E] {
	w, weighted := optionalWeight(weight)

	return Iterator[N, E]{g: g, idx: g.indexOf(src, dst, w, weighted)}
}

// Connections returns the distinct destinations reachable from src by one
// direct edge, strictly ascending. A self-loop contributes src itself.
//
// Returns ErrConnectionsNodeMissing if src is not a node.
// Complexity: O(E).
func (g *Graph[N, E]) Connections(src N) ([]N, error) {
	if !g.IsNode(src) {
		return nil, ErrConnectionsNodeMissing
	}
	var out []N
	// Outgoing edges of src form a contiguous ascending-by-dst run, so
	// deduplication only needs to compare against the last value appended.
	for _, e := range g.edges {
		from, to := e.Endpoints()
		if from != src {
			continue
		}
		if len(out) == 0 || out[len(out)-1] != to {
			out = append(out, to)
		}
	}

	return out, nil
}

// Equal reports structural equality: the node sets match as sets and every
// (src, dst, weight) triple stored in one graph is stored in the other.
// With no duplicate triples on either side (invariant I2), matching sizes
// plus one-sided containment give set equality.
// Complexity: O(V + E²).
func (g *Graph[N, E]) Equal(other *Graph[N, E]) bool {
	if len(g.nodes) != len(other.nodes) || len(g.edges) != len(other.edges) {
		return false
	}
	for v := range other.nodes {
		if !g.IsNode(v) {
			return false
		}
	}
	for _, e := range other.edges {
		from, to := e.Endpoints()
		w, weighted := e.Weight()
		if g.indexOf(from, to, w, weighted) == len(g.edges) {
			return false
		}
	}

	return true
}
