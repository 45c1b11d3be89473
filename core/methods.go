// File: methods.go
// Role: Mutating operations: node/edge insertion, renaming (plain and
//       merging), erasure by value, position or range, and Clear.
// Determinism:
//   - Every mutator leaves the edge store in (src, dst, weight) ascending
//     order (invariant I3).
// Errors:
//   - Precondition checks run before any mutation; on failure the graph is
//     returned to the caller untouched.

package core

import "cmp"

// InsertNode adds the node value v.
// Returns true if v was inserted, false if it was already present (no-op).
// Never fails.
// Complexity: O(1) amortized.
func (g *Graph[N, E]) InsertNode(v N) bool {
	if _, ok := g.nodes[v]; ok {
		return false
	}
	g.nodes[v] = struct{}{}

	return true
}

// InsertEdge adds a directed edge src→dst. With no weight argument the edge
// is unweighted; with one it is weighted (extra values are ignored).
//
// Returns ErrInsertEdgeNodeMissing if either endpoint is not a node.
// Returns false if an edge with the exact (src, dst, weight) already exists.
// Otherwise inserts the appropriate variant, restores store order, and
// returns true.
// Complexity: O(E log E) dominated by re-normalization.
func (g *Graph[N, E]) InsertEdge(src, dst N, weight ...E) (bool, error) {
	if !g.IsNode(src) || !g.IsNode(dst) {
		return false, ErrInsertEdgeNodeMissing
	}
	w, weighted := optionalWeight(weight)
	if g.indexOf(src, dst, w, weighted) != len(g.edges) {
		return false, nil // duplicate triple
	}

	var e Edge[N, E]
	if weighted {
		e = &weightedEdge[N, E]{src: src, dst: dst, weight: w}
	} else {
		e = &unweightedEdge[N, E]{src: src, dst: dst}
	}
	g.edges = append(g.edges, e)
	g.sortEdges()

	return true, nil
}

// ReplaceNode renames node old to new, rewriting every incident edge
// endpoint (both ends of a self-loop). No deduplication is performed; use
// MergeReplaceNode when renames may collapse edges.
//
// Returns ErrReplaceNodeMissing if old is not a node.
// Returns false if new is already a node (ambiguous collision — rejected,
// graph unchanged).
// Complexity: O(E log E).
func (g *Graph[N, E]) ReplaceNode(oldVal, newVal N) (bool, error) {
	if !g.IsNode(oldVal) {
		return false, ErrReplaceNodeMissing
	}
	if g.IsNode(newVal) {
		return false, nil
	}

	delete(g.nodes, oldVal)
	g.nodes[newVal] = struct{}{}
	for _, e := range g.edges {
		from, to := e.Endpoints()
		if from == oldVal {
			e.rename(endpointSrc, newVal)
		}
		if to == oldVal {
			e.rename(endpointDst, newVal)
		}
	}
	g.sortEdges()

	return true, nil
}

// MergeReplaceNode redirects every edge incident to old onto new. After each
// rename, if the resulting (src, dst, weight) duplicates an edge appearing
// earlier in the current store order, the just-renamed edge is dropped —
// duplicates are silently absorbed. old remains a node afterwards; erase it
// separately if desired.
//
// Returns ErrMergeReplaceNodeMissing unless both old and new are nodes.
// Complexity: O(E²) worst case (first-match scan per incident edge).
func (g *Graph[N, E]) MergeReplaceNode(oldVal, newVal N) error {
	if !g.IsNode(oldVal) || !g.IsNode(newVal) {
		return ErrMergeReplaceNodeMissing
	}

	for i := 0; i < len(g.edges); {
		e := g.edges[i]
		from, to := e.Endpoints()
		if from == oldVal {
			e.rename(endpointSrc, newVal)
		}
		if to == oldVal {
			e.rename(endpointDst, newVal)
		}
		from, to = e.Endpoints()
		w, weighted := e.Weight()
		// Keep the first occurrence of the triple in current order; a
		// later duplicate (this edge, post-rename) is absorbed.
		if g.indexOf(from, to, w, weighted) != i {
			g.edges = append(g.edges[:i], g.edges[i+1:]...)
		} else {
			i++
		}
	}
	g.sortEdges()

	return nil
}

// EraseNode removes node v together with every edge having v as either
// endpoint. Returns false if v is not a node. Never fails.
// Complexity: O(E).
func (g *Graph[N, E]) EraseNode(v N) bool {
	if !g.IsNode(v) {
		return false
	}

	kept := g.edges[:0]
	for _, e := range g.edges {
		from, to := e.Endpoints()
		if from != v && to != v {
			kept = append(kept, e)
		}
	}
	// Filtering preserves relative order, so I3 holds without a re-sort.
	clearTail(g.edges, len(kept))
	g.edges = kept
	delete(g.nodes, v)

	return true
}

// EraseEdge removes the edge matching (src, dst, weight) exactly; the
// weight argument is optional as in InsertEdge.
//
// Returns ErrEraseEdgeNodeMissing if src or dst is not a node.
// Returns false if no matching edge exists.
// Complexity: O(E).
func (g *Graph[N, E]) EraseEdge(src, dst N, weight ...E) (bool, error) {
	if !g.IsNode(src) || !g.IsNode(dst) {
		return false, ErrEraseEdgeNodeMissing
	}
	w, weighted := optionalWeight(weight)
	i := g.indexOf(src, dst, w, weighted)
	if i == len(g.edges) {
		return false, nil
	}
	g.removeAt(i)

	return true, nil
}

// EraseEdgeAt removes the edge at the given position and returns the
// position immediately following it in the now-current order.
//
// Caller contract: pos must be dereferenceable (pos.Valid() == true) and
// must belong to this graph; behavior is undefined otherwise. Never fails.
// Complexity: O(E).
func (g *Graph[N, E]) EraseEdgeAt(pos Iterator[N, E]) Iterator[N, E] {
	g.removeAt(pos.idx)

	return Iterator[N, E]{g: g, idx: pos.idx}
}

// EraseEdgeRange removes the half-open range [first, last) of positions and
// returns the position following the removed range.
//
// Caller contract: first and last must delimit a valid range over this
// graph's current order. Never fails.
// Complexity: O(E).
func (g *Graph[N, E]) EraseEdgeRange(first, last Iterator[N, E]) Iterator[N, E] {
	n := copy(g.edges[first.idx:], g.edges[last.idx:])
	clearTail(g.edges, first.idx+n)
	g.edges = g.edges[:first.idx+n]

	return Iterator[N, E]{g: g, idx: first.idx}
}

// Clear empties both the node and edge stores.
// Complexity: O(1) plus garbage collection.
func (g *Graph[N, E]) Clear() {
	g.nodes = make(map[N]struct{})
	g.edges = nil
}

// removeAt deletes the edge at index i, preserving store order.
func (g *Graph[N, E]) removeAt(i int) {
	n := copy(g.edges[i:], g.edges[i+1:])
	clearTail(g.edges, i+n)
	g.edges = g.edges[:i+n]
}

// clearTail nils out handles past keep so erased edges become collectable.
func clearTail[N cmp.Ordered, E cmp.Ordered](edges []Edge[N, E], keep int) {
	for i := keep; i < len(edges); i++ {
		edges[i] = nil
	}
}
