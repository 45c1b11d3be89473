// Package core provides the Graph container: a generic, in-memory directed
// graph whose edges may optionally carry a weight.
//
// Data model:
//
//   - A node is any value of an ordered, comparable type N (cmp.Ordered).
//     Nodes are unique; Nodes() enumerates them strictly ascending.
//   - An edge is a directed connection src→dst, either weighted or unweighted.
//     Two edges are duplicates iff their (src, dst, weight) triples are equal;
//     an unweighted A→B and a weighted A→B|5 are distinct and may coexist.
//   - The edge store is always kept ascending by (src, dst, weight), where an
//     absent weight sorts before any present weight at the same (src, dst).
//     Begin/End, Find, Edges, the formatter and positional erase all observe
//     this one order.
//
// Error model:
//
//	Operations whose arguments name nodes are precondition-checked: a missing
//	node yields a sentinel wrapping ErrPrecondition, raised before any
//	mutation (the graph is unchanged on failure). Operations whose outcome
//	depends only on whether a matching edge exists report absence as a plain
//	false/empty result instead.
//
// Concurrency:
//
//	Graph performs no internal locking. It is safe for any number of
//	concurrent readers, but mutation requires external synchronization —
//	this is a documented caller responsibility, not an internal guarantee.
//	Edge handles and iterators returned by queries alias internal storage;
//	they are read-only views and are invalidated by any subsequent mutating
//	call on the graph.
//
// Errors:
//
//	ErrPrecondition             - base kind for all precondition violations.
//	ErrInsertEdgeNodeMissing    - InsertEdge referenced a missing endpoint.
//	ErrReplaceNodeMissing       - ReplaceNode's old node does not exist.
//	ErrMergeReplaceNodeMissing  - MergeReplaceNode's old or new node missing.
//	ErrEraseEdgeNodeMissing     - EraseEdge referenced a missing endpoint.
//	ErrIsConnectedNodeMissing   - IsConnected referenced a missing endpoint.
//	ErrEdgesNodeMissing         - Edges referenced a missing endpoint.
//	ErrConnectionsNodeMissing   - Connections' src node does not exist.
package core
