package testutil

import (
	"context"
	"fmt"
	"sync"

	ierr "github.com/studioledger/studioledger/internal/errors"
)

// InMemorySequenceStore implements sequence.Repository with the same
// guarantees as the real one: per-key serialization and a value persisted
// (here, stored) before it is returned.
type InMemorySequenceStore struct {
	mu       sync.Mutex
	counters map[string]int64

	// ContendFirst makes the next N calls fail with a lock contention
	// error before the store starts issuing values again.
	contendRemaining int
}

func NewInMemorySequenceStore() *InMemorySequenceStore {
	return &InMemorySequenceStore{
		counters: make(map[string]int64),
	}
}

func key(prefix string, year int) string {
	return fmt.Sprintf("%s:%d", prefix, year)
}

// ContendFirst makes the next n calls to Next fail as if the counter row
// were locked by a concurrent allocation.
func (s *InMemorySequenceStore) ContendFirst(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contendRemaining = n
}

func (s *InMemorySequenceStore) Next(ctx context.Context, prefix string, year int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.contendRemaining > 0 {
		s.contendRemaining--
		return 0, ierr.NewError("counter row is locked").
			Mark(ierr.ErrLockContention)
	}

	k := key(prefix, year)
	s.counters[k]++
	return s.counters[k], nil
}

func (s *InMemorySequenceStore) Current(ctx context.Context, prefix string, year int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counters[key(prefix, year)], nil
}

func (s *InMemorySequenceStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters = make(map[string]int64)
	s.contendRemaining = 0
}
