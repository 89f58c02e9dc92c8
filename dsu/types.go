package dsu

import (
	"strings"

	"github.com/pkg/errors"
)

// DisjointSet is the contract shared by every strategy.
//
// A DisjointSet partitions {0..Len()-1} into disjoint sets. Every index
// belongs to exactly one set at all times; the set count only decreases,
// and only through Union.
type DisjointSet interface {
	// Strategy identifies the underlying implementation.
	Strategy() Strategy

	// Len returns the fixed universe size N set at construction.
	Len() int

	// Count returns the number of disjoint sets currently in the partition.
	Count() int

	// Find returns the representative of the set containing i.
	// Two indices share a set iff Find returns the same representative.
	Find(i int) (int, error)

	// Connected reports whether p and q belong to the same set.
	Connected(p, q int) (bool, error)

	// Union merges the sets containing p and q. Merging a set with itself
	// is a no-op.
	Union(p, q int) error

	// FindMutates reports whether Find rewrites internal state (path
	// compression). Lock wrappers must treat Find as a writer when true.
	FindMutates() bool
}

// Strategy selects a DisjointSet implementation at construction time.
type Strategy int

const (
	// QuickFind keeps a flat label array: O(1) Find, O(N) Union.
	QuickFind Strategy = iota
	// QuickUnion keeps an unbalanced parent forest.
	QuickUnion
	// WeightedQuickUnion grafts the smaller tree under the larger root.
	WeightedQuickUnion
	// WeightedQuickUnionPathCompression adds path halving to WeightedQuickUnion.
	WeightedQuickUnionPathCompression
)

var strategyNames = [...]string{
	QuickFind:                         "quick-find",
	QuickUnion:                        "quick-union",
	WeightedQuickUnion:                "weighted-quick-union",
	WeightedQuickUnionPathCompression: "weighted-quick-union-path-compression",
}

// Strategies lists every supported strategy in declaration order.
func Strategies() []Strategy {
	return []Strategy{QuickFind, QuickUnion, WeightedQuickUnion, WeightedQuickUnionPathCompression}
}

// String returns the kebab-case name of s.
func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return "unknown"
	}
	return strategyNames[s]
}

// ParseStrategy maps a name produced by Strategy.String back to its value.
// Matching is case-insensitive; "wqupc" style abbreviations are not accepted.
func ParseStrategy(name string) (Strategy, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range strategyNames {
		if s == n {
			return Strategy(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownStrategy, "parse %q", name)
}

// checkIndex validates i against a universe of size n.
func checkIndex(i, n int) error {
	if i < 0 || i >= n {
		return errors.Wrapf(ErrIndexOutOfRange, "index %d not in [0,%d)", i, n)
	}
	return nil
}

// checkSize validates a construction size.
func checkSize(n int) error {
	if n < 0 {
		return errors.Wrapf(ErrInvalidArgument, "size %d is negative", n)
	}
	return nil
}

// identity returns [0, 1, ..., n-1].
func identity(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}

// ones returns a slice of n ones (initial tree sizes).
func ones(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = 1
	}
	return s
}
