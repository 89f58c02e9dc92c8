package dsu

// CompressedSet is weighted quick-union with path halving.
//
// The merge policy is the same as WeightedSet. The difference lives in
// Find: while walking to the root every visited node is re-pointed at its
// grandparent, roughly halving the path on each call. Any sequence of M
// operations on N elements costs O(M·α(N)).
//
// Find therefore writes. FindMutates reports true, and Synchronized takes
// the exclusive lock for Find and Connected.
type CompressedSet struct {
	weightedForest
}

// NewCompressed creates a CompressedSet of n singletons.
// Returns ErrInvalidArgument when n < 0.
func NewCompressed(n int) (*CompressedSet, error) {
	if err := checkSize(n); err != nil {
		return nil, err
	}
	return &CompressedSet{weightedForest: newWeightedForest(n)}, nil
}

// Strategy returns WeightedQuickUnionPathCompression.
func (s *CompressedSet) Strategy() Strategy { return WeightedQuickUnionPathCompression }

// FindMutates is always true.
func (s *CompressedSet) FindMutates() bool { return true }

// Find returns the root of i's tree, halving the path on the way.
func (s *CompressedSet) Find(i int) (int, error) {
	if err := checkIndex(i, len(s.parent)); err != nil {
		return 0, err
	}
	for s.parent[i] != i {
		s.parent[i] = s.parent[s.parent[i]]
		i = s.parent[i]
	}
	return i, nil
}

// Connected reports whether p and q share a root.
func (s *CompressedSet) Connected(p, q int) (bool, error) {
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

// Union merges the trees of p and q by size, compressing both paths.
func (s *CompressedSet) Union(p, q int) error {
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
func (s *CompressedSet) SizeOf(i int) (int, error) {
	r, err := s.Find(i)
	if err != nil {
		return 0, err
	}
	return s.size[r], nil
}

// String renders the partition.
func (s *CompressedSet) String() string { return Format(s) }
