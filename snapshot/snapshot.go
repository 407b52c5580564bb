package snapshot

import (
	"iter"

	"github.com/wnf2018888/eureka/event"
	"github.com/wnf2018888/eureka/identity"
)

// Accumulator folds successive batches of change events into a running set
// of currently known live entities. It exclusively owns its running set;
// each subscription gets its own Accumulator. It is not safe for concurrent
// use.
type Accumulator[T any] struct {
	set *identity.Set[T]
}

// NewAccumulator creates an empty accumulator whose entity identity is
// decided by cmp.
func NewAccumulator[T any](cmp event.Comparator[T]) *Accumulator[T] {
	return &Accumulator[T]{set: identity.NewSet(cmp)}
}

// Apply replays batch against the running set and returns a copy of the
// result in insertion order. Add and Modify insert or update the entity,
// keeping its original position; Delete removes it. Identical input batches
// yield repeated identical snapshots; deduplicating consecutive equal
// outputs is the caller's responsibility.
func (a *Accumulator[T]) Apply(batch []event.Event[T]) []T {
	for _, ev := range batch {
		if !ev.IsData() {
			continue
		}
		switch ev.Kind() {
		case event.Add, event.Modify:
			a.set.Add(ev.Data())
		case event.Delete:
			a.set.Remove(ev.Data())
		}
	}
	return a.set.Items()
}

// Len returns the number of entities currently known live.
func (a *Accumulator[T]) Len() int {
	return a.set.Len()
}

// Snapshots returns a lazy transform of a batch sequence into the snapshot
// after each batch. Each range over the result uses a fresh Accumulator, so
// the sequence is restartable per subscription.
func Snapshots[T any](seq iter.Seq[[]event.Event[T]], cmp event.Comparator[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		acc := NewAccumulator(cmp)
		for batch := range seq {
			if !yield(acc.Apply(batch)) {
				return
			}
		}
	}
}
