package coin

import "sync"

// Store holds the most recently grouped catalogue. The snapshot is replaced
// wholesale on every load; there is no partial update. Single writer,
// last-call-wins.
type Store struct {
	mu      sync.Mutex
	grouped Grouped
}

// Replace swaps the held snapshot for g.
func (s *Store) Replace(g Grouped) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grouped = g
}

// Snapshot returns the current grouped catalogue. Callers must treat the
// returned map as read-only.
func (s *Store) Snapshot() Grouped {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grouped
}
