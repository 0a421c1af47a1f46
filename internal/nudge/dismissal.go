package nudge

import "sync"

// MemoryDismissalStore keeps dismissed nudge ids per session in memory.
// Entries live as long as the session key does; there is no persistence,
// matching the session-scoped lifetime of client-side dismissal state.
type MemoryDismissalStore struct {
	mu        sync.RWMutex
	dismissed map[string]bool
}

var _ DismissalStore = (*MemoryDismissalStore)(nil)

func NewMemoryDismissalStore() *MemoryDismissalStore {
	return &MemoryDismissalStore{dismissed: make(map[string]bool)}
}

func (s *MemoryDismissalStore) IsDismissed(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dismissed[id]
}

func (s *MemoryDismissalStore) Dismiss(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dismissed[id] = true
}
