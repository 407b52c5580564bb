package identity

import (
	"container/list"

	"github.com/wnf2018888/eureka/event"
)

// Set is an insertion-order-preserving set of entities, duplicate-free by
// identity. Re-adding an existing identity replaces the stored payload in
// place without moving its position. It is not safe for concurrent use.
type Set[T any] struct {
	index *Map[T, *list.Element]
	order *list.List
}

// NewSet creates an empty set whose membership is decided by cmp.
func NewSet[T any](cmp event.Comparator[T]) *Set[T] {
	return &Set[T]{
		index: NewMap[T, *list.Element](cmp),
		order: list.New(),
	}
}

// Add inserts v, or updates the stored payload when an entity with the same
// identity is already present. The position of an existing entity is
// preserved.
func (s *Set[T]) Add(v T) {
	if el, ok := s.index.Get(v); ok {
		el.Value = v
		return
	}
	s.index.Set(v, s.order.PushBack(v))
}

// Remove deletes the entity with v's identity and reports whether it was
// present.
func (s *Set[T]) Remove(v T) bool {
	el, ok := s.index.Get(v)
	if !ok {
		return false
	}
	s.order.Remove(el)
	s.index.Delete(v)
	return true
}

// Contains reports whether an entity with v's identity is present.
func (s *Set[T]) Contains(v T) bool {
	_, ok := s.index.Get(v)
	return ok
}

// Len returns the number of entities.
func (s *Set[T]) Len() int {
	return s.order.Len()
}

// Items returns the entities in insertion order. The returned slice is a
// copy owned by the caller.
func (s *Set[T]) Items() []T {
	items := make([]T, 0, s.order.Len())
	for el := s.order.Front(); el != nil; el = el.Next() {
		items = append(items, el.Value.(T))
	}
	return items
}

// Ascending returns the entities in comparator order. The returned slice is
// a copy owned by the caller.
func (s *Set[T]) Ascending() []T {
	items := make([]T, 0, s.index.Len())
	s.index.Ascend(func(_ T, el *list.Element) bool {
		items = append(items, el.Value.(T))
		return true
	})
	return items
}
