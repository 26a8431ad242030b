// internal/entity/store.go
package entity

import "spacemax-td/internal/types"

// Store is a component table that remembers insertion order. Systems iterate
// it in that order, which keeps targeting and reaping deterministic.
type Store[T any] struct {
	items map[types.EntityID]*T
	order []types.EntityID
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{items: make(map[types.EntityID]*T)}
}

// Add inserts or replaces the component of id. Replacing keeps the original slot.
func (s *Store[T]) Add(id types.EntityID, v *T) {
	if _, exists := s.items[id]; !exists {
		s.order = append(s.order, id)
	}
	s.items[id] = v
}

func (s *Store[T]) Get(id types.EntityID) (*T, bool) {
	v, ok := s.items[id]
	return v, ok
}

func (s *Store[T]) Has(id types.EntityID) bool {
	_, ok := s.items[id]
	return ok
}

// Remove deletes id and reports whether it was present.
func (s *Store[T]) Remove(id types.EntityID) bool {
	if _, exists := s.items[id]; !exists {
		return false
	}
	delete(s.items, id)
	for i, other := range s.order {
		if other == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

func (s *Store[T]) Len() int {
	return len(s.order)
}

// IDs returns the live IDs in insertion order.
func (s *Store[T]) IDs() []types.EntityID {
	out := make([]types.EntityID, len(s.order))
	copy(out, s.order)
	return out
}

// Each calls fn for every entry in insertion order. fn may remove entries,
// including ones not yet visited; removed entries are skipped.
func (s *Store[T]) Each(fn func(id types.EntityID, v *T)) {
	for _, id := range s.IDs() {
		if v, ok := s.items[id]; ok {
			fn(id, v)
		}
	}
}

// First returns the first entry, in insertion order, for which match is true.
func (s *Store[T]) First(match func(id types.EntityID, v *T) bool) (types.EntityID, *T, bool) {
	for _, id := range s.order {
		if v := s.items[id]; match(id, v) {
			return id, v, true
		}
	}
	return types.NoEntity, nil, false
}

func (s *Store[T]) Clear() {
	s.items = make(map[types.EntityID]*T)
	s.order = s.order[:0]
}
