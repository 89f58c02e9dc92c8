package dsu

// WeightedSet is quick-union with union by size.
//
// Union compares the sizes of the two roots (never of the raw arguments)
// and grafts the smaller tree under the larger root. A tree only gets
// taller when it at least doubles in size, so no tree is ever taller than
// ⌊log2 N⌋.
type WeightedSet struct {
	weightedForest
}

// NewWeighted creates a WeightedSet of n singletons with size 1 each.
// Returns ErrInvalidArgument when n < 0.
func NewWeighted(n int) (*WeightedSet, error) {
	if err := checkSize(n); err != nil {
		return nil, err
	}
	return &WeightedSet{weightedForest: newWeightedForest(n)}, nil
}

// Strategy returns WeightedQuickUnion.
func (s *WeightedSet) Strategy() Strategy { return WeightedQuickUnion }

// FindMutates is always false.
func (s *WeightedSet) FindMutates() bool { return false }

// Find returns the root of i's tree. O(log N).
func (s *WeightedSet) Find(i int) (int, error) {
	if err := checkIndex(i, len(s.parent)); err != nil {
		return 0, err
	}
	return s.root(i), nil
}

// Connected reports whether p and q share a root.
func (s *WeightedSet) Connected(p, q int) (bool, error) {
	rp, err := s.Find(p)
	if err != nil {
		return false, err
	}
	rq, err := s.Find(q)
	if err != nil {
		return false, err
	}
	return rp == rq, nil
}

// Union merges the trees of p and q by size. No-op when already connected.
func (s *WeightedSet) Union(p, q int) error {
	rp, err := s.Find(p)
	if err != nil {
		return err
	}
	rq, err := s.Find(q)
	if err != nil {
		return err
	}
	if rp != rq {
		s.link(rp, rq)
	}
	return nil
}

// SizeOf returns the number of elements in i's set.
func (s *WeightedSet) SizeOf(i int) (int, error) {
	r, err := s.Find(i)
	if err != nil {
		return 0, err
	}
	return s.size[r], nil
}

// String renders the partition.
func (s *WeightedSet) String() string { return Format(s) }
