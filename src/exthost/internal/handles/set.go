package handles

import (
	"sort"
	"sync"
)

// Set groups the identities of one result set (e.g. a completion list) under
// a shared parent handle. Items use nested counters scoped to the set, so the
// entire set can be referenced and released through the parent handle alone.
type Set[T any] struct {
	parent Handle

	mu    sync.Mutex
	next  Handle
	items map[Handle]T
}

// NewSet returns an empty result set identified by the given parent handle.
func NewSet[T any](parent Handle) *Set[T] {
	return &Set[T]{
		parent: parent,
		items:  make(map[Handle]T),
	}
}

// Parent returns the handle shared by the whole set.
func (s *Set[T]) Parent() Handle {
	return s.parent
}

// Add stamps the value with the next nested identity and records it.
func (s *Set[T]) Add(v T) Identified[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.next
	s.next++
	s.items[id] = v
	return Identified[T]{Value: v, ID: id}
}

// Get returns the value stamped with the given nested identity.
func (s *Set[T]) Get(id Handle) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.items[id]
	return v, ok
}

// Len returns the number of items in the set.
func (s *Set[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.items)
}

// Items returns the set contents ordered by nested identity.
func (s *Set[T]) Items() []Identified[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Identified[T], 0, len(s.items))
	for id, v := range s.items {
		out = append(out, Identified[T]{Value: v, ID: id})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
