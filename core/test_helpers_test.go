// Package core_test contains shared fixtures and helpers for core.Graph tests.
//
// Purpose:
//   - Provide small, deterministic fixtures mirroring the documented byte and
//     ordering contracts.
//   - Keep magic values out of test bodies.

package core_test

import (
	"cmp"
	"testing"

	"github.com/katalvlaran/digraph/core"
	"github.com/stretchr/testify/require"
)

// Common node values used across core tests.
const (
	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeD = "D"
	NodeS = "S"
	NodeT = "T"
	NodeX = "X"
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight1 = 1
	Weight2 = 2
	Weight3 = 3
	Weight5 = 5
	Weight6 = 6
)

// weightedTuple is a compact fixture row: a directed edge with an optional
// weight (weighted == false means the unweighted variant).
type weightedTuple[N cmp.Ordered, E cmp.Ordered] struct {
	from     N
	to       N
	weight   E
	weighted bool
}

// buildGraph constructs a graph from fixture rows, inserting endpoints as
// needed. Fails the test on any unexpected error or duplicate.
func buildGraph[N cmp.Ordered, E cmp.Ordered](t *testing.T, rows []weightedTuple[N, E]) *core.Graph[N, E] {
	t.Helper()
	g := core.New[N, E]()
	for _, r := range rows {
		g.InsertNode(r.from)
		g.InsertNode(r.to)
		var ok bool
		var err error
		if r.weighted {
			ok, err = g.InsertEdge(r.from, r.to, r.weight)
		} else {
			ok, err = g.InsertEdge(r.from, r.to)
		}
		require.NoError(t, err)
		require.True(t, ok, "fixture edge %v -> %v inserted twice", r.from, r.to)
	}

	return g
}

// mustInsertEdge inserts an edge that is expected to succeed.
func mustInsertEdge[N cmp.Ordered, E cmp.Ordered](t *testing.T, g *core.Graph[N, E], src, dst N, weight ...E) {
	t.Helper()
	ok, err := g.InsertEdge(src, dst, weight...)
	require.NoError(t, err)
	require.True(t, ok, "InsertEdge(%v, %v, %v)", src, dst, weight)
}
