package dsu

import (
	"fmt"
	"sort"
	"strings"
)

// Sets materializes the partition of ds: one slice per set, each sorted
// ascending, sets ordered by their smallest element.
//
// On a CompressedSet this compresses every path as a side effect.
//
// Complexity: O(N·find + N log N).
func Sets(ds DisjointSet) ([][]int, error) {
	byRoot := make(map[int][]int, ds.Count())
	roots := make([]int, 0, ds.Count())
	for i := 0; i < ds.Len(); i++ {
		r, err := ds.Find(i)
		if err != nil {
			return nil, err
		}
		if _, ok := byRoot[r]; !ok {
			roots = append(roots, r)
		}
		// i ascends, so each member slice is already sorted.
		byRoot[r] = append(byRoot[r], i)
	}
	out := make([][]int, 0, len(roots))
	for _, r := range roots {
		out = append(out, byRoot[r])
	}
	return out, nil
}

// SortedSets returns the partition ordered by size, largest first; sets of
// equal size are ordered by their smallest element.
func SortedSets(ds DisjointSet) ([][]int, error) {
	out, err := Sets(ds)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i]) > len(out[j])
	})
	return out, nil
}

// Format renders ds as "<strategy>{[a b] [c] ...}" with sets ordered by
// smallest element.
func Format(ds DisjointSet) string {
	sets, err := Sets(ds)
	if err != nil {
		return fmt.Sprintf("%s{%v}", ds.Strategy(), err)
	}
	var sb strings.Builder
	sb.WriteString(ds.Strategy().String())
	sb.WriteByte('{')
	for i, set := range sets {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, set)
	}
	sb.WriteByte('}')
	return sb.String()
}
