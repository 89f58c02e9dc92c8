package dsu

import "github.com/pkg/errors"

// QuickFindSet stores, for every index, the label of the set containing it.
//
// ids[i] is a label, not a tree link: two indices share a set iff they
// carry the same label. Find is a single array read; Union rewrites every
// entry carrying p's label, an O(N) scan accepted in exchange for O(1) queries.
type QuickFindSet struct {
	ids   []int // index → set label
	count int   // number of distinct labels
}

// NewQuickFind creates a QuickFindSet of n singletons (ids[i] = i).
// Returns ErrInvalidArgument when n < 0.
//
// Complexity: O(n) time and memory.
func NewQuickFind(n int) (*QuickFindSet, error) {
	if err := checkSize(n); err != nil {
		return nil, err
	}
	return &QuickFindSet{ids: identity(n), count: n}, nil
}

// Strategy returns QuickFind.
func (s *QuickFindSet) Strategy() Strategy { return QuickFind }

// Len returns the universe size.
func (s *QuickFindSet) Len() int { return len(s.ids) }

// Count returns the number of disjoint sets.
func (s *QuickFindSet) Count() int { return s.count }

// FindMutates is always false: Find only reads the label array.
func (s *QuickFindSet) FindMutates() bool { return false }

// Find returns the label of i's set. O(1).
func (s *QuickFindSet) Find(i int) (int, error) {
	if err := checkIndex(i, len(s.ids)); err != nil {
		return 0, err
	}
	return s.ids[i], nil
}

// Connected reports whether p and q carry the same label.
func (s *QuickFindSet) Connected(p, q int) (bool, error) {
	pid, err := s.Find(p)
	if err != nil {
		return false, err
	}
	qid, err := s.Find(q)
	if err != nil {
		return false, err
	}
	return pid == qid, nil
}

// Union relabels every index carrying p's label with q's label.
//
// Both labels are resolved before anything is written: if either index has
// no label (it lies outside the label array) Union fails with
// ErrPreconditionFailed and the array is unchanged.
//
// Complexity: O(N).
func (s *QuickFindSet) Union(p, q int) error {
	pid, ok := s.label(p)
	if !ok {
		return errors.Wrapf(ErrPreconditionFailed, "union(%d, %d): label of %d is undefined", p, q, p)
	}
	qid, ok := s.label(q)
	if !ok {
		return errors.Wrapf(ErrPreconditionFailed, "union(%d, %d): label of %d is undefined", p, q, q)
	}
	if pid == qid {
		return nil
	}
	for i, id := range s.ids {
		if id == pid {
			s.ids[i] = qid
		}
	}
	s.count--
	return nil
}

// Parents returns a copy of the label array.
func (s *QuickFindSet) Parents() []int {
	out := make([]int, len(s.ids))
	copy(out, s.ids)
	return out
}

// String renders the partition, e.g. "quick-find{[0] [1 2]}".
func (s *QuickFindSet) String() string { return Format(s) }

// label returns ids[i] and whether i has a label at all.
func (s *QuickFindSet) label(i int) (int, bool) {
	if i < 0 || i >= len(s.ids) {
		return 0, false
	}
	return s.ids[i], true
}
