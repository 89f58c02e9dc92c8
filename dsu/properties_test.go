package dsu_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/unionfind/dsu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Construction covers the constructor contract for every strategy.
func TestNew_Construction(t *testing.T) {
	for _, s := range dsu.Strategies() {
		t.Run(s.String(), func(t *testing.T) {
			_, err := dsu.New(s, -1)
			assert.ErrorIs(t, err, dsu.ErrInvalidArgument)

			empty := mustNew(t, s, Size0)
			assert.Equal(t, 0, empty.Len())
			assert.Equal(t, 0, empty.Count())
			_, err = empty.Find(0)
			assert.ErrorIs(t, err, dsu.ErrIndexOutOfRange)

			ds := mustNew(t, s, Size10)
			assert.Equal(t, s, ds.Strategy())
			assert.Equal(t, Size10, ds.Len())
			assert.Equal(t, Size10, ds.Count())
			for i := 0; i < Size10; i++ {
				r, err := ds.Find(i)
				require.NoError(t, err)
				assert.Equal(t, i, r, "every index starts as its own singleton")
			}
		})
	}

	_, err := dsu.New(dsu.Strategy(99), Size10)
	assert.ErrorIs(t, err, dsu.ErrUnknownStrategy)
}

// TestStrategy_ParseRoundTrip checks names map back to their values.
func TestStrategy_ParseRoundTrip(t *testing.T) {
	for _, s := range dsu.Strategies() {
		got, err := dsu.ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	got, err := dsu.ParseStrategy("  Weighted-Quick-Union ")
	require.NoError(t, err)
	assert.Equal(t, dsu.WeightedQuickUnion, got)

	_, err = dsu.ParseStrategy("bogus")
	assert.ErrorIs(t, err, dsu.ErrUnknownStrategy)
	assert.Equal(t, "unknown", dsu.Strategy(-1).String())
}

// TestProperties_AgainstReference drives every strategy with the same
// random union stream and compares against an independent reference:
// connectivity, set count and the merge-by-one rule.
func TestProperties_AgainstReference(t *testing.T) {
	pairs := randomPairs(SeedRandom, SizeRandom, OpsRandom)
	probes := randomPairs(SeedRandom+1, SizeRandom, 200)

	for _, s := range dsu.Strategies() {
		t.Run(s.String(), func(t *testing.T) {
			ds := mustNew(t, s, SizeRandom)
			ref := newNaive(SizeRandom)

			for step, pq := range pairs {
				p, q := pq[0], pq[1]
				wasConnected := ref.connected(p, q)
				before := ds.Count()

				require.NoError(t, ds.Union(p, q))
				ref.union(p, q)

				if wasConnected {
					assert.Equal(t, before, ds.Count(), "step %d: union of connected pair is a no-op", step)
				} else {
					assert.Equal(t, before-1, ds.Count(), "step %d: merge drops count by one", step)
				}
				require.Equal(t, ref.count, ds.Count())

				if step%100 == 0 {
					for _, xy := range probes {
						assert.Equal(t, ref.connected(xy[0], xy[1]), mustConnected(t, ds, xy[0], xy[1]),
							"step %d: connected(%d, %d)", step, xy[0], xy[1])
					}
				}
			}

			sets, err := dsu.Sets(ds)
			require.NoError(t, err)
			assert.Len(t, sets, ref.count)
			total := 0
			for _, set := range sets {
				total += len(set)
			}
			assert.Equal(t, SizeRandom, total, "partition is total and disjoint")
		})
	}
}

// TestProperties_Equivalence checks reflexivity, symmetry and transitivity
// over every pair and triple of a small universe.
func TestProperties_Equivalence(t *testing.T) {
	for _, s := range dsu.Strategies() {
		t.Run(s.String(), func(t *testing.T) {
			ds := mustNew(t, s, SizeLattice)
			mustUnion(t, ds, [2]int{0, 5}, [2]int{5, 7}, [2]int{2, 3}, [2]int{9, 11}, [2]int{11, 2})

			n := SizeLattice
			conn := make([][]bool, n)
			for p := 0; p < n; p++ {
				conn[p] = make([]bool, n)
				for q := 0; q < n; q++ {
					conn[p][q] = mustConnected(t, ds, p, q)
				}
			}
			for p := 0; p < n; p++ {
				assert.True(t, conn[p][p], "reflexive at %d", p)
				for q := 0; q < n; q++ {
					assert.Equal(t, conn[p][q], conn[q][p], "symmetric at (%d, %d)", p, q)
					for r := 0; r < n; r++ {
						if conn[p][q] && conn[q][r] {
							assert.True(t, conn[p][r], "transitive at (%d, %d, %d)", p, q, r)
						}
					}
				}
			}
			assert.True(t, conn[0][7])
			assert.True(t, conn[3][9])
			assert.False(t, conn[0][2])
		})
	}
}

// TestProperties_Idempotence checks Union(p, q) twice equals once.
func TestProperties_Idempotence(t *testing.T) {
	rng := rand.New(rand.NewSource(SeedRandom))
	for _, s := range dsu.Strategies() {
		t.Run(s.String(), func(t *testing.T) {
			once := mustNew(t, s, Size16)
			twice := mustNew(t, s, Size16)
			for i := 0; i < 20; i++ {
				p, q := rng.Intn(Size16), rng.Intn(Size16)
				require.NoError(t, once.Union(p, q))
				require.NoError(t, twice.Union(p, q))
				require.NoError(t, twice.Union(p, q))

				a, err := dsu.Sets(once)
				require.NoError(t, err)
				b, err := dsu.Sets(twice)
				require.NoError(t, err)
				assert.Equal(t, a, b)
			}
		})
	}
}

// TestProperties_ErrorsLeaveSetUsable checks a failed call performs no
// partial mutation on any strategy.
func TestProperties_ErrorsLeaveSetUsable(t *testing.T) {
	for _, s := range dsu.Strategies() {
		t.Run(s.String(), func(t *testing.T) {
			ds := mustNew(t, s, Size6)
			mustUnion(t, ds, [2]int{0, 1}, [2]int{2, 3})
			before, err := dsu.Sets(ds)
			require.NoError(t, err)

			assert.Error(t, ds.Union(1, Size6))
			assert.Error(t, ds.Union(-1, 2))
			_, err = ds.Connected(Size6, 0)
			assert.ErrorIs(t, err, dsu.ErrIndexOutOfRange)

			after, err := dsu.Sets(ds)
			require.NoError(t, err)
			assert.Equal(t, before, after)
			assert.Equal(t, Size6-2, ds.Count())

			require.NoError(t, ds.Union(1, 2))
			assert.True(t, mustConnected(t, ds, 0, 3))
		})
	}
}

// TestSets_Ordering checks Sets, SortedSets and Format.
func TestSets_Ordering(t *testing.T) {
	ds := mustNew(t, dsu.QuickUnion, Size6)
	mustUnion(t, ds, [2]int{4, 1}, [2]int{5, 3}, [2]int{3, 1})

	sets, err := dsu.Sets(ds)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0}, {1, 3, 4, 5}, {2}}, sets)

	sorted, err := dsu.SortedSets(ds)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 3, 4, 5}, {0}, {2}}, sorted)

	assert.Equal(t, "quick-union{[0] [1 3 4 5] [2]}", dsu.Format(ds))
	assert.Equal(t, "quick-find{[0] [1] [2]}", mustNew(t, dsu.QuickFind, 3).(interface{ String() string }).String())
}
