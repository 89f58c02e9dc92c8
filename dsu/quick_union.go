package dsu

// QuickUnionSet is the lazy parent-forest strategy.
//
// Find chases parent links to the root; Union points rootP at rootQ.
// There is no balancing, so a run like Union(0,1), Union(1,2), ... builds a
// chain and Find degrades to O(N). WeightedSet fixes exactly that.
type QuickUnionSet struct {
	forest
}

// NewQuickUnion creates a QuickUnionSet of n singletons.
// Returns ErrInvalidArgument when n < 0.
func NewQuickUnion(n int) (*QuickUnionSet, error) {
	if err := checkSize(n); err != nil {
		return nil, err
	}
	return &QuickUnionSet{forest: newForest(n)}, nil
}

// Strategy returns QuickUnion.
func (s *QuickUnionSet) Strategy() Strategy { return QuickUnion }

// FindMutates is always false.
func (s *QuickUnionSet) FindMutates() bool { return false }

// Find returns the root of i's tree. O(height).
func (s *QuickUnionSet) Find(i int) (int, error) {
	if err := checkIndex(i, len(s.parent)); err != nil {
		return 0, err
	}
	return s.root(i), nil
}

// Connected reports whether p and q share a root.
func (s *QuickUnionSet) Connected(p, q int) (bool, error) {
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

// Union sets parent[rootP] = rootQ. No-op when the roots are equal.
func (s *QuickUnionSet) Union(p, q int) error {
	rp, err := s.Find(p)
	if err != nil {
		return err
	}
	rq, err := s.Find(q)
	if err != nil {
		return err
	}
	if rp == rq {
		return nil
	}
	s.parent[rp] = rq
	s.count--
	return nil
}

// String renders the partition.
func (s *QuickUnionSet) String() string { return Format(s) }
