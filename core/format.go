// File: format.go
// Role: Human-readable dump of the whole graph.
// Determinism:
//   - Byte layout is a compatibility contract: leading newline, nodes
//     ascending, per node a "( ... )" block of Render() lines indented two
//     spaces, destinations ascending and unweighted before weighted.

package core

import (
	"fmt"
	"strings"
)

// String renders the graph as nodes grouped with their outgoing edges, both
// in sorted order. Nodes without outgoing edges still produce an empty
// block:
//
//	\n
//	1 (
//	  1 -> 5 | W | -1
//	)
//	64 (
//	)
//
// Complexity: O(V·E).
func (g *Graph[N, E]) String() string {
	var b strings.Builder
	b.WriteByte('\n')
	for _, n := range g.Nodes() {
		fmt.Fprintf(&b, "%v (\n", n)
		// Outgoing edges of n sit in store order, which is already
		// destination ascending with unweighted first per destination.
		for _, e := range g.edges {
			if from, _ := e.Endpoints(); from != n {
				continue
			}
			b.WriteString("  ")
			b.WriteString(e.Render())
			b.WriteByte('\n')
		}
		b.WriteString(")\n")
	}

	return b.String()
}
