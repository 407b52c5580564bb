package identity

import (
	"github.com/google/btree"

	"github.com/wnf2018888/eureka/event"
)

type entry[T, V any] struct {
	key   T
	value V
}

// Map is an ordered map whose keys are compared with an identity comparator
// rather than Go equality. It is not safe for concurrent use.
type Map[T, V any] struct {
	tree *btree.BTreeG[entry[T, V]]
}

// NewMap creates an empty map ordered by cmp.
func NewMap[T, V any](cmp event.Comparator[T]) *Map[T, V] {
	return &Map[T, V]{
		tree: btree.NewG(2, func(a, b entry[T, V]) bool {
			return cmp(a.key, b.key) < 0
		}),
	}
}

// Get returns the value stored under key.
func (m *Map[T, V]) Get(key T) (V, bool) {
	e, ok := m.tree.Get(entry[T, V]{key: key})
	if !ok {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores value under key, replacing any previous value.
func (m *Map[T, V]) Set(key T, value V) {
	m.tree.ReplaceOrInsert(entry[T, V]{key: key, value: value})
}

// Delete removes key from the map and reports whether it was present.
func (m *Map[T, V]) Delete(key T) bool {
	_, ok := m.tree.Delete(entry[T, V]{key: key})
	return ok
}

// Len returns the number of entries.
func (m *Map[T, V]) Len() int {
	return m.tree.Len()
}

// Ascend visits every entry in comparator order until fn returns false.
func (m *Map[T, V]) Ascend(fn func(key T, value V) bool) {
	m.tree.Ascend(func(e entry[T, V]) bool {
		return fn(e.key, e.value)
	})
}
