// Package digraph is a small, deterministic, in-memory container for
// directed graphs whose edges may optionally carry a weight.
//
// 🚀 What is digraph?
//
//	A generic, zero-dependency container that brings together:
//		• Node & edge lifecycle: insert, erase, rename (with and without merging)
//		• Optional weights: weighted and unweighted edges coexist on the same pair
//		• Total ordering: every enumeration surface is sorted and reproducible
//		• Bidirectional iteration over the edge store, plus positional erase
//		• A textual dump whose exact byte layout is a compatibility contract
//
// ✨ Why choose digraph?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – sorted outputs, stable goldens, no map-order surprises
//   - Pure Go – no cgo, no hidden deps
//   - Generic – any ordered node value type, any ordered weight type
//
// Everything lives in a single subpackage:
//
//	core/ — the Graph container, Edge variants, iterator and formatter
//
// Quick ASCII example:
//
//	    A──▶B
//	    │   │
//	    ▼   ▼
//	    C──▶D
//
//	four nodes, four directed edges; each edge may or may not carry a weight.
//
// Dive into core's package documentation for the full operation catalogue,
// ordering invariants and the formatter's byte contract.
//
//	go get github.com/katalvlaran/digraph/core
package digraph
