package memory

// LockCount reports how many per-order locks the store keeps.
func (s *Store) LockCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.locks)
}
