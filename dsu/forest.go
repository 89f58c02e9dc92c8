package dsu

// forest is the parent-link representation shared by the tree strategies.
//
// parent[i] is the immediate parent of i; a root satisfies parent[r] == r.
// Following parent links from any index reaches a root within len(parent)
// steps. The quick-find label array never uses this type.
type forest struct {
	parent []int
	count  int // number of roots
}

func newForest(n int) forest {
	return forest{parent: identity(n), count: n}
}

// Len returns the universe size.
func (f *forest) Len() int { return len(f.parent) }

// Count returns the number of trees (disjoint sets).
func (f *forest) Count() int { return f.count }

// root walks parent links up to the root without rewriting anything.
// The caller has validated i.
func (f *forest) root(i int) int {
	for f.parent[i] != i {
		i = f.parent[i]
	}
	return i
}

// Depth returns the number of parent hops from i to its root; 0 for a root.
// It never compresses, so it is safe to call between Finds to observe
// how path compression flattens a tree.
func (f *forest) Depth(i int) (int, error) {
	if err := checkIndex(i, len(f.parent)); err != nil {
		return 0, err
	}
	d := 0
	for f.parent[i] != i {
		i = f.parent[i]
		d++
	}
	return d, nil
}

// Parents returns a copy of the parent array.
func (f *forest) Parents() []int {
	out := make([]int, len(f.parent))
	copy(out, f.parent)
	return out
}

// weightedForest adds per-root tree sizes to forest.
//
// size[r] is meaningful only while r is a root and equals the number of
// indices whose root is r.
type weightedForest struct {
	forest
	size []int
}

func newWeightedForest(n int) weightedForest {
	return weightedForest{forest: newForest(n), size: ones(n)}
}

// link grafts the smaller of two distinct roots under the larger one and
// folds its size into the survivor. On a tie rq goes under rp.
func (w *weightedForest) link(rp, rq int) {
	if w.size[rp] < w.size[rq] {
		rp, rq = rq, rp
	}
	w.parent[rq] = rp
	w.size[rp] += w.size[rq]
	w.count--
}
