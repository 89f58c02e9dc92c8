package dsu_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/unionfind/dsu"
	"github.com/stretchr/testify/require"
)

// Common sizes used across dsu tests.
const (
	Size0  = 0
	Size6  = 6
	Size10 = 10
	Size16 = 16

	SizeRandom  = 257
	OpsRandom   = 2000
	SeedRandom  = 42
	SizeHeight  = 1024
	SizeLattice = 12
)

// depther is implemented by the tree strategies.
type depther interface {
	Depth(i int) (int, error)
}

// mustNew builds a set of strategy s and size n or fails the test.
func mustNew(t testing.TB, s dsu.Strategy, n int) dsu.DisjointSet {
	t.Helper()
	ds, err := dsu.New(s, n)
	require.NoError(t, err, "New(%s, %d)", s, n)
	return ds
}

// mustUnion applies every pair in order.
func mustUnion(t testing.TB, ds dsu.DisjointSet, pairs ...[2]int) {
	t.Helper()
	for _, pq := range pairs {
		require.NoError(t, ds.Union(pq[0], pq[1]), "Union(%d, %d)", pq[0], pq[1])
	}
}

// mustConnected returns Connected(p, q) or fails the test.
func mustConnected(t testing.TB, ds dsu.DisjointSet, p, q int) bool {
	t.Helper()
	ok, err := ds.Connected(p, q)
	require.NoError(t, err, "Connected(%d, %d)", p, q)
	return ok
}

// maxDepth returns the tallest root path in a tree-based set.
func maxDepth(t testing.TB, d depther, n int) int {
	t.Helper()
	best := 0
	for i := 0; i < n; i++ {
		h, err := d.Depth(i)
		require.NoError(t, err)
		if h > best {
			best = h
		}
	}
	return best
}

// floorLog2 returns ⌊log2 n⌋ for n ≥ 1.
func floorLog2(n int) int {
	h := 0
	for n > 1 {
		n >>= 1
		h++
	}
	return h
}

// randomPairs returns count deterministic index pairs in [0, n).
func randomPairs(seed int64, n, count int) [][2]int {
	rng := rand.New(rand.NewSource(seed))
	out := make([][2]int, count)
	for i := range out {
		out[i] = [2]int{rng.Intn(n), rng.Intn(n)}
	}
	return out
}

// naive is an independent reference partition: comp[i] is a component id
// and merging rewrites ids with a full scan.
type naive struct {
	comp  []int
	count int
}

func newNaive(n int) *naive {
	c := make([]int, n)
	for i := range c {
		c[i] = i
	}
	return &naive{comp: c, count: n}
}

func (r *naive) union(p, q int) {
	from, to := r.comp[p], r.comp[q]
	if from == to {
		return
	}
	for i := range r.comp {
		if r.comp[i] == from {
			r.comp[i] = to
		}
	}
	r.count--
}

func (r *naive) connected(p, q int) bool { return r.comp[p] == r.comp[q] }
