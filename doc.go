// Package unionfind is a small playground for disjoint-set (union-find)
// structures over a fixed universe of integer elements {0..N-1}.
//
// 🚀 What is inside?
//
//	Four interchangeable strategies behind one contract:
//		• Quick-find: O(1) Find, O(N) Union over a flat label array
//		• Quick-union: lazy parent forest, O(height) Find and Union
//		• Weighted quick-union: union by size, height ≤ ⌊log2 N⌋
//		• Weighted quick-union + path compression: near-O(1) amortized
//
// ✨ Why?
//
//   - Same API for every strategy, selected at construction time
//   - Sentinel errors for every misuse (negative size, bad index)
//   - Optional R/W locking, logrus tracing and Prometheus counters
//
// Layout:
//
//	dsu/    : the engine: strategies, inspection helpers, wrappers
//	cmd/uf/ : command-line client reading pair streams or YAML scenarios
//
// Quick example:
//
//	ds, _ := dsu.New(dsu.WeightedQuickUnionPathCompression, 10)
//	_ = ds.Union(3, 4)
//	ok, _ := ds.Connected(4, 3) // true
//
//	go get github.com/katalvlaran/unionfind/dsu
package unionfind
