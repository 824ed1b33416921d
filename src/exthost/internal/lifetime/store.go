// Package lifetime tracks per-handle state on the owning side and batches
// collection notices on the referencing side. Collection notices are
// best-effort: release must be idempotent and must not assume notices are
// guaranteed or timely, so session teardown bulk-releases whatever remains.
package lifetime

import (
	"sync"

	tally "github.com/uber-go/tally"
	"github.com/nimbus-ide/exthost/src/exthost/internal/errors"
	"github.com/nimbus-ide/exthost/src/exthost/internal/handles"
)

// Store holds owner-side state keyed by handle. Once a handle is released it
// is permanently invalid; any later access fails with a stale-handle error
// rather than reusing freed state.
type Store[T any] struct {
	category handles.Category

	mu       sync.Mutex
	entries  map[handles.Handle]T
	released map[handles.Handle]struct{}
	stats    tally.Scope
}

// NewStore returns an empty Store for the given handle category.
func NewStore[T any](category handles.Category, stats tally.Scope) *Store[T] {
	return &Store[T]{
		category: category,
		entries:  make(map[handles.Handle]T),
		released: make(map[handles.Handle]struct{}),
		stats:    stats.SubScope("lifetime").Tagged(map[string]string{"category": string(category)}),
	}
}

// Put records state for a newly issued handle. Putting under a released
// handle fails, since the peer may still reference the old meaning.
func (s *Store[T]) Put(h handles.Handle, v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.released[h]; ok {
		return &errors.StaleHandleError{Handle: int64(h), Category: string(s.category)}
	}
	s.entries[h] = v
	s.stats.Gauge("live").Update(float64(len(s.entries)))
	return nil
}

// Get returns the state for a handle, or a stale-handle error if the handle
// was released, collected, or never issued to this store.
func (s *Store[T]) Get(h handles.Handle) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.entries[h]
	if !ok {
		var zero T
		return zero, &errors.StaleHandleError{Handle: int64(h), Category: string(s.category)}
	}
	return v, nil
}

// Release drops the state for a handle and returns it. Releasing an unknown
// or already-released handle is a no-op, so replayed or duplicated collection
// notices are harmless.
func (s *Store[T]) Release(h handles.Handle) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.entries[h]
	if ok {
		delete(s.entries, h)
		s.stats.Counter("released").Inc(1)
	}
	s.released[h] = struct{}{}
	s.stats.Gauge("live").Update(float64(len(s.entries)))
	return v, ok
}

// ReleaseAll drops all remaining state. Used at session teardown as the
// fallback for collection notices that were never delivered.
func (s *Store[T]) ReleaseAll() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.entries)
	for h := range s.entries {
		s.released[h] = struct{}{}
		delete(s.entries, h)
	}
	s.stats.Counter("released").Inc(int64(n))
	s.stats.Gauge("live").Update(0)
	return n
}

// Len returns the number of live entries.
func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}
