package core_test

import (
	"testing"

	"github.com/katalvlaran/digraph/core"
	"github.com/stretchr/testify/require"
)

// iteratorFixture is the ten-edge ordering fixture: insertion order is
// scrambled on purpose; the walk below must observe (src, dst, weight)
// ascending regardless.
func iteratorFixture(t *testing.T) *core.Graph[int, int] {
	t.Helper()

	return buildGraph(t, []weightedTuple[int, int]{
		{21, 14, 23, true},
		{1, 12, 3, true},
		{1, 21, 12, true},
		{7, 21, 13, true},
		{14, 14, 0, true},
		{19, 21, 2, true},
		{21, 31, 14, true},
		{1, 7, 4, true},
		{19, 1, 3, true},
		{12, 19, 16, true},
	})
}

// TestIterator_Walk verifies the full forward walk yields the maintained
// store order.
func TestIterator_Walk(t *testing.T) {
	g := iteratorFixture(t)

	want := []core.EdgeTuple[int, int]{
		{From: 1, To: 7, Weight: 4, Weighted: true},
		{From: 1, To: 12, Weight: 3, Weighted: true},
		{From: 1, To: 21, Weight: 12, Weighted: true},
		{From: 7, To: 21, Weight: 13, Weighted: true},
		{From: 12, To: 19, Weight: 16, Weighted: true},
		{From: 14, To: 14, Weight: 0, Weighted: true},
		{From: 19, To: 1, Weight: 3, Weighted: true},
		{From: 19, To: 21, Weight: 2, Weighted: true},
		{From: 21, To: 14, Weight: 23, Weighted: true},
		{From: 21, To: 31, Weight: 14, Weighted: true},
	}
	var got []core.EdgeTuple[int, int]
	for it := g.Begin(); it != g.End(); it = it.Next() {
		got = append(got, it.Value())
	}
	require.Equal(t, want, got)
}

// TestIterator_Bidirectional steps forward off Begin and backward off End,
// mirroring the container's bidirectional contract.
func TestIterator_Bidirectional(t *testing.T) {
	g := iteratorFixture(t)

	second := g.Begin().Next()
	require.Equal(t, core.EdgeTuple[int, int]{From: 1, To: 12, Weight: 3, Weighted: true}, second.Value())

	last := g.End().Prev()
	require.Equal(t, core.EdgeTuple[int, int]{From: 21, To: 31, Weight: 14, Weighted: true}, last.Value())
}

// TestIterator_EmptyGraph: Begin equals End when there are no edges, and the
// end sentinel is never dereferenceable.
func TestIterator_EmptyGraph(t *testing.T) {
	g := core.New[string, int]()
	require.Equal(t, g.Begin(), g.End())
	require.False(t, g.End().Valid())
}

// TestGraph_EraseEdgeAt removes a found position and verifies the returned
// position dereferences to the following element.
func TestGraph_EraseEdgeAt(t *testing.T) {
	g := core.NewFrom[string, int](NodeA, NodeB, NodeC, NodeD)
	mustInsertEdge(t, g, NodeA, NodeB, Weight1)
	mustInsertEdge(t, g, NodeA, NodeC, Weight2)
	mustInsertEdge(t, g, NodeA, NodeD, Weight3)
	mustInsertEdge(t, g, NodeB, NodeD, Weight6)
	mustInsertEdge(t, g, NodeB, NodeB, Weight1)

	it := g.Find(NodeA, NodeC, Weight2)
	require.True(t, it.Valid())
	next := g.EraseEdgeAt(it)

	ac, err := g.Edges(NodeA, NodeC)
	require.NoError(t, err)
	require.Empty(t, ac)
	require.True(t, next.Valid())
	tuple := next.Value()
	require.Equal(t, NodeA, tuple.From)
	require.Equal(t, NodeD, tuple.To)
}

// TestGraph_EraseEdgeRange removes a half-open span and verifies the
// returned position dereferences to the element previously at the span end.
func TestGraph_EraseEdgeRange(t *testing.T) {
	g := core.NewFrom[string, int](NodeA, NodeB, NodeC, NodeD)
	mustInsertEdge(t, g, NodeA, NodeB, Weight1)
	mustInsertEdge(t, g, NodeA, NodeD, Weight3)
	mustInsertEdge(t, g, NodeB, NodeB, Weight1)
	mustInsertEdge(t, g, NodeB, NodeD, Weight6)

	// Store order: A→B|1, A→D|3, B→B|1, B→D|6. Erase [A→D|3, B→D|6).
	first := g.Find(NodeA, NodeD, Weight3)
	last := g.Find(NodeB, NodeD, Weight6)
	res := g.EraseEdgeRange(first, last)

	ad, err := g.Edges(NodeA, NodeD)
	require.NoError(t, err)
	require.Empty(t, ad)
	bb, err := g.Edges(NodeB, NodeB)
	require.NoError(t, err)
	require.Empty(t, bb)

	require.True(t, res.Valid())
	tuple := res.Value()
	require.Equal(t, NodeB, tuple.From)
	require.Equal(t, NodeD, tuple.To)
	require.Equal(t, 2, g.EdgeCount())
}

// TestGraph_EraseEdgeRange_Empty: erasing [it, it) removes nothing.
func TestGraph_EraseEdgeRange_Empty(t *testing.T) {
	g := core.NewFrom[string, int](NodeA, NodeB)
	mustInsertEdge(t, g, NodeA, NodeB, Weight1)

	it := g.Find(NodeA, NodeB, Weight1)
	res := g.EraseEdgeRange(it, it)
	require.Equal(t, 1, g.EdgeCount())
	require.Equal(t, it, res)
}
