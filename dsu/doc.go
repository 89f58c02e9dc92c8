// Package dsu implements a fixed-size disjoint-set (union-find) engine over
// the integer universe {0..N-1}, in four interchangeable strategies.
//
// What:
//
//   - QuickFindSet  : flat label array. Find O(1), Union O(N) (relabel scan).
//   - QuickUnionSet : parent forest, no balancing. Find/Union O(height),
//     trees may degrade to chains under adversarial input.
//   - WeightedSet   : union by size: the smaller tree is grafted under the
//     larger root, so height never exceeds ⌊log2 N⌋.
//   - CompressedSet : WeightedSet plus path halving inside Find; amortized
//     cost per operation is near constant (inverse Ackermann).
//
// All four satisfy DisjointSet; New selects one by Strategy. The label array
// of quick-find and the parent forest of the tree strategies are distinct
// representations and never share layout.
//
// Why:
//
//   - Connectivity queries: "are p and q linked?" under incremental merges.
//   - Building block for Kruskal, percolation, equivalence classes.
//   - Teaching: the four strategies show how one policy change (union by
//     size) and one local rewrite (path halving) change the cost model.
//
// Complexity (N elements, M operations):
//
//	Strategy                 Construct  Find        Union
//	quick-find               O(N)       O(1)        O(N)
//	quick-union              O(N)       O(N)        O(N)
//	weighted-quick-union     O(N)       O(log N)    O(log N)
//	weighted + compression   O(N)       ~O(α(N))    ~O(α(N))
//
// Concurrency:
//
//	Plain sets are not goroutine-safe. Wrap with NewSynchronized (or pass
//	WithLocking to New). CompressedSet rewrites parent links during Find,
//	so FindMutates reports true and the wrapper takes the write lock for
//	Find and Connected as well as Union.
//
// Errors:
//
//   - ErrInvalidArgument   : negative size at construction.
//   - ErrIndexOutOfRange   : index outside 0..Len()-1.
//   - ErrPreconditionFailed: quick-find Union on an index with no label.
//   - ErrUnknownStrategy   : unknown Strategy value or name.
//
// Failed calls never perform partial mutation; the set stays usable.
//
// Observability:
//
//	WithLogger (logrus) and WithMetrics (Prometheus) wrap the set in an
//	Instrumented decorator. The strategies themselves never log.
package dsu
