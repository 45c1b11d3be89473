// File: types.go
// Role: Graph type, sentinel errors, constructors and internal store helpers.
// Determinism:
//   - The edge store is re-normalized to (src, dst, weight) ascending order
//     after every mutation that can disturb it.
// Concurrency:
//   - No internal locking; external synchronization is a caller responsibility
//     (see package doc).

package core

import (
	"cmp"
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for precondition-checked graph operations.
//
// Every sentinel below wraps ErrPrecondition, so callers may branch either on
// the kind (errors.Is(err, core.ErrPrecondition)) or on the exact operation.
var (
	// ErrPrecondition is the base kind: a node-existence precondition was not met.
	// It is raised before any mutation, so the graph is unchanged on failure.
	ErrPrecondition = errors.New("core: node existence precondition violated")

	// ErrInsertEdgeNodeMissing indicates InsertEdge was called when either
	// src or dst node does not exist.
	ErrInsertEdgeNodeMissing = fmt.Errorf("%w: cannot InsertEdge when either src or dst node does not exist", ErrPrecondition)

	// ErrReplaceNodeMissing indicates ReplaceNode was called on a node that
	// does not exist.
	ErrReplaceNodeMissing = fmt.Errorf("%w: cannot ReplaceNode on a node that does not exist", ErrPrecondition)

	// ErrMergeReplaceNodeMissing indicates MergeReplaceNode was called when
	// old or new node does not exist in the graph.
	ErrMergeReplaceNodeMissing = fmt.Errorf("%w: cannot MergeReplaceNode on old or new data if they don't exist in the graph", ErrPrecondition)

	// ErrEraseEdgeNodeMissing indicates EraseEdge was called when src or dst
	// node does not exist in the graph.
	ErrEraseEdgeNodeMissing = fmt.Errorf("%w: cannot EraseEdge on src or dst if they don't exist in the graph", ErrPrecondition)

	// ErrIsConnectedNodeMissing indicates IsConnected was called when src or
	// dst node does not exist in the graph.
	ErrIsConnectedNodeMissing = fmt.Errorf("%w: cannot IsConnected if src or dst node don't exist in the graph", ErrPrecondition)

	// ErrEdgesNodeMissing indicates Edges was called when src or dst node
	// does not exist in the graph.
	ErrEdgesNodeMissing = fmt.Errorf("%w: cannot Edges if src or dst node don't exist in the graph", ErrPrecondition)

	// ErrConnectionsNodeMissing indicates Connections was called when the src
	// node does not exist in the graph.
	ErrConnectionsNodeMissing = fmt.Errorf("%w: cannot Connections if src doesn't exist in the graph", ErrPrecondition)
)

// Graph is an in-memory directed graph with optionally weighted edges.
//
// N is the node value type, E the weight type; both must be ordered.
// Storage invariants (maintained by every operation):
//
//	I1: every edge's endpoints are members of the node set.
//	I2: no two stored edges share the same (src, dst, weight) triple.
//	I3: the edge store is ascending by (src, dst, weight), an absent weight
//	    sorting before any present weight at the same (src, dst).
//
// The zero value is not usable; construct with New or NewFrom.
type Graph[N cmp.Ordered, E cmp.Ordered] struct {
	nodes map[N]struct{}
	edges []Edge[N, E]
}

// New creates an empty Graph.
// Complexity: O(1).
func New[N cmp.Ordered, E cmp.Ordered]() *Graph[N, E] {
	return &Graph[N, E]{nodes: make(map[N]struct{})}
}

// NewFrom creates a Graph pre-populated with the given node values.
// Duplicate values collapse to one node.
// Complexity: O(len(nodes)).
func NewFrom[N cmp.Ordered, E cmp.Ordered](nodes ...N) *Graph[N, E] {
	g := New[N, E]()
	for _, v := range nodes {
		g.nodes[v] = struct{}{}
	}

	return g
}

// sortEdges re-establishes invariant I3 over the whole store.
// I2 guarantees no two stored edges compare equal, so the order is total.
func (g *Graph[N, E]) sortEdges() {
	sort.Slice(g.edges, func(i, j int) bool { return edgeLess(g.edges[i], g.edges[j]) })
}

// indexOf returns the position of the first edge matching (src, dst, weight)
// exactly, or len(g.edges) if none. weighted=false matches only the
// unweighted edge on that pair.
func (g *Graph[N, E]) indexOf(src, dst N, w E, weighted bool) int {
	for i, e := range g.edges {
		from, to := e.Endpoints()
		if from != src || to != dst {
			continue
		}
		ew, eok := e.Weight()
		if weightEqual(ew, eok, w, weighted) {
			return i
		}
	}

	return len(g.edges)
}

// optionalWeight decodes a variadic weight argument: no value means the
// unweighted form; when values are given, only the first is honored.
func optionalWeight[E cmp.Ordered](weight []E) (E, bool) {
	if len(weight) == 0 {
		var zero E
		return zero, false
	}

	return weight[0], true
}
