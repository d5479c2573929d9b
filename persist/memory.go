package persist

import (
	"context"
	"sync"
)

// MemoryStore keeps the snapshot in process memory. Used by tests and
// for ephemeral runs; nothing survives the process.
type MemoryStore struct {
	mu    sync.Mutex
	snap  Snapshot
	saved bool
}

// compile-time assertion
var _ Store = (*MemoryStore)(nil)

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(ctx context.Context) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.saved {
		return DefaultSnapshot(), nil
	}
	return withDefaults(s.snap), nil
}

func (s *MemoryStore) Save(ctx context.Context, snap Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap
	s.saved = true
	return nil
}

func (s *MemoryStore) Close() error { return nil }
