// File: iterator.go
// Role: Bidirectional read-only position over the edge store's maintained
//       order, materializing (From, To, Weight) tuples on dereference.
// Determinism:
//   - Walk order is exactly invariant I3: (src, dst, weight) ascending,
//     unweighted before weighted at the same pair.

package core

import "cmp"

// EdgeTuple is the value an Iterator yields: one directed connection with
// its optional weight (Weight holds the zero value when Weighted is false).
type EdgeTuple[N cmp.Ordered, E cmp.Ordered] struct {
	From     N
	To       N
	Weight   E
	Weighted bool
}

// Iterator is a read-only position over a graph's edge store. It is a small
// comparable value: positions over the same graph compare with ==, and the
// end sentinel of a graph equals itself.
//
// Caller contract: any mutating operation on the graph (insert, erase,
// replace, merge, clear) invalidates all outstanding iterators. This is not
// runtime-checked.
type Iterator[N cmp.Ordered, E cmp.Ordered] struct {
	g   *Graph[N, E]
	idx int
}

// Begin returns the position of the first edge in store order, equal to
// End() when the graph has no edges.
func (g *Graph[N, E]) Begin() Iterator[N, E] {
	return Iterator[N, E]{g: g, idx: 0}
}

// End returns the past-the-end sentinel position. It is not dereferenceable.
func (g *Graph[N, E]) End() Iterator[N, E] {
	return Iterator[N, E]{g: g, idx: len(g.edges)}
}

// Next returns the position one step forward.
// Caller contract: the receiver is not the end sentinel.
func (it Iterator[N, E]) Next() Iterator[N, E] {
	return Iterator[N, E]{g: it.g, idx: it.idx + 1}
}

// Prev returns the position one step backward.
// Caller contract: the receiver is not the begin position.
func (it Iterator[N, E]) Prev() Iterator[N, E] {
	return Iterator[N, E]{g: it.g, idx: it.idx - 1}
}

// Valid reports whether the position is dereferenceable (in particular,
// false for the end sentinel).
func (it Iterator[N, E]) Valid() bool {
	return it.g != nil && it.idx >= 0 && it.idx < len(it.g.edges)
}

// Value materializes the (From, To, Weight) tuple at the position.
// Caller contract: the position is dereferenceable (Valid() == true).
func (it Iterator[N, E]) Value() EdgeTuple[N, E] {
	e := it.g.edges[it.idx]
	from, to := e.Endpoints()
	w, ok := e.Weight()

	return EdgeTuple[N, E]{From: from, To: to, Weight: w, Weighted: ok}
}
