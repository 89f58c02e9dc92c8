package dsu

import "sync"

// Synchronized guards a DisjointSet with a single sync.RWMutex.
//
// The lock covers the whole structure, never individual indices: Union
// resolves two roots and then writes up to three slots, and those reads
// must see one consistent forest. Union always takes the write lock. Find
// and Connected take the read lock unless the inner set reports
// FindMutates, in which case they are writers too.
type Synchronized struct {
	mu      sync.RWMutex
	inner   DisjointSet
	writeRd bool // Find must hold the write lock
}

// NewSynchronized wraps ds. ds must not be used directly afterwards.
func NewSynchronized(ds DisjointSet) *Synchronized {
	return &Synchronized{inner: ds, writeRd: ds.FindMutates()}
}

// Strategy returns the inner strategy.
func (s *Synchronized) Strategy() Strategy { return s.inner.Strategy() }

// FindMutates mirrors the inner set.
func (s *Synchronized) FindMutates() bool { return s.writeRd }

// Len returns the universe size. It is immutable, so no lock is taken.
func (s *Synchronized) Len() int { return s.inner.Len() }

// Count returns the number of sets under the read lock.
func (s *Synchronized) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.inner.Count()
}

// Find resolves i's representative under the read or write lock.
func (s *Synchronized) Find(i int) (int, error) {
	unlock := s.lockRead()
	defer unlock()

	return s.inner.Find(i)
}

// Connected holds one lock across both Finds so the answer reflects a
// single snapshot.
func (s *Synchronized) Connected(p, q int) (bool, error) {
	unlock := s.lockRead()
	defer unlock()

	return s.inner.Connected(p, q)
}

// Union merges under the write lock.
func (s *Synchronized) Union(p, q int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.inner.Union(p, q)
}

// Do runs fn with exclusive access to the inner set, for compound
// operations (Sets, Format, batch unions) that need one snapshot.
func (s *Synchronized) Do(fn func(ds DisjointSet) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s.inner)
}

// String renders the partition under the write lock.
func (s *Synchronized) String() string {
	var out string
	_ = s.Do(func(ds DisjointSet) error {
		out = Format(ds)
		return nil
	})
	return out
}

// lockRead takes the lock Find needs and returns its release function.
func (s *Synchronized) lockRead() func() {
	if s.writeRd {
		s.mu.Lock()
		return s.mu.Unlock
	}
	s.mu.RLock()
	return s.mu.RUnlock
}
