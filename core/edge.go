// File: edge.go
// Role: Edge capability surface and its two concrete variants
//       (weighted / unweighted), plus the ordering predicate on optional weights.
// Determinism:
//   - Render() output depends only on the edge's endpoints and weight.
//   - An absent weight sorts strictly before any present weight.

package core

import (
	"cmp"
	"fmt"
)

// Edge is the read-only capability surface of one directed connection.
//
// An Edge is either weighted or unweighted; callers treat it as an opaque
// handle and branch on the concrete shape only via IsWeighted. Handles
// returned by Graph queries alias container storage and are invalidated by
// any subsequent mutating call on the owning Graph.
//
// The interface carries one unexported method, so the variant set is closed:
// only this package can implement Edge, and only the owning Graph can rewire
// an edge's endpoints.
type Edge[N cmp.Ordered, E cmp.Ordered] interface {
	// Render formats the edge for the textual dump:
	// "src -> dst | W | weight" when weighted, "src -> dst | U" otherwise.
	Render() string

	// IsWeighted reports whether the edge carries a weight.
	IsWeighted() bool

	// Weight returns the stored weight and true for a weighted edge,
	// or the zero value and false for an unweighted one.
	Weight() (E, bool)

	// Endpoints returns the source and destination node values.
	Endpoints() (from, to N)

	// rename mutates one endpoint in place. Package-private: only the
	// owning Graph invokes it (ReplaceNode, MergeReplaceNode), and the
	// edge's weighted/unweighted identity is unaffected.
	rename(end endpoint, v N)
}

// endpoint selects which end of an edge rename mutates.
type endpoint int

const (
	endpointSrc endpoint = iota
	endpointDst
)

// weightedEdge is the Edge variant carrying a weight.
type weightedEdge[N cmp.Ordered, E cmp.Ordered] struct {
	src    N
	dst    N
	weight E
}

func (e *weightedEdge[N, E]) Render() string {
	return fmt.Sprintf("%v -> %v | W | %v", e.src, e.dst, e.weight)
}

func (e *weightedEdge[N, E]) IsWeighted() bool { return true }

func (e *weightedEdge[N, E]) Weight() (E, bool) { return e.weight, true }

func (e *weightedEdge[N, E]) Endpoints() (N, N) { return e.src, e.dst }

func (e *weightedEdge[N, E]) rename(end endpoint, v N) {
	if end == endpointDst {
		e.dst = v
	} else {
		e.src = v
	}
}

// unweightedEdge is the Edge variant without a weight.
type unweightedEdge[N cmp.Ordered, E cmp.Ordered] struct {
	src N
	dst N
}

func (e *unweightedEdge[N, E]) Render() string {
	return fmt.Sprintf("%v -> %v | U", e.src, e.dst)
}

func (e *unweightedEdge[N, E]) IsWeighted() bool { return false }

func (e *unweightedEdge[N, E]) Weight() (E, bool) {
	var zero E
	return zero, false
}

func (e *unweightedEdge[N, E]) Endpoints() (N, N) { return e.src, e.dst }

func (e *unweightedEdge[N, E]) rename(end endpoint, v N) {
	if end == endpointDst {
		e.dst = v
	} else {
		e.src = v
	}
}

// weightLess orders optional weights: absent before any present value,
// present values by <.
func weightLess[E cmp.Ordered](aw E, aok bool, bw E, bok bool) bool {
	if !aok {
		return bok
	}
	if !bok {
		return false
	}

	return aw < bw
}

// weightEqual reports equality of optional weights (both absent, or both
// present and equal).
func weightEqual[E cmp.Ordered](aw E, aok bool, bw E, bok bool) bool {
	if aok != bok {
		return false
	}

	return !aok || aw == bw
}

// edgeLess is the store's total order: src asc, then dst asc, then weight asc
// with unweighted first. Invariant I2 (no duplicate triples) guarantees
// strict ordering between distinct stored edges.
func edgeLess[N cmp.Ordered, E cmp.Ordered](a, b Edge[N, E]) bool {
	aFrom, aTo := a.Endpoints()
	bFrom, bTo := b.Endpoints()
	if aFrom != bFrom {
		return aFrom < bFrom
	}
	if aTo != bTo {
		return aTo < bTo
	}
	aw, aok := a.Weight()
	bw, bok := b.Weight()

	return weightLess(aw, aok, bw, bok)
}
