package collapse

import (
	"iter"

	"github.com/wnf2018888/eureka/event"
)

// Batches collapses each batch of seq independently, yielding batches in the
// same order.
func Batches[T any](seq iter.Seq[[]event.Event[T]], cmp event.Comparator[T]) iter.Seq[[]event.Event[T]] {
	return func(yield func([]event.Event[T]) bool) {
		for batch := range seq {
			if !yield(Batch(batch, cmp)) {
				return
			}
		}
	}
}

// BatchLists collapses each list of batches of seq into a single batch,
// yielding one batch per list.
func BatchLists[T any](seq iter.Seq[[][]event.Event[T]], cmp event.Comparator[T]) iter.Seq[[]event.Event[T]] {
	return func(yield func([]event.Event[T]) bool) {
		for batches := range seq {
			if !yield(Lists(batches, cmp)) {
				return
			}
		}
	}
}
