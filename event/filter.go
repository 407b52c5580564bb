package event

import "iter"

// FilterData yields only the data events of seq, dropping stream-state
// sentinels.
func FilterData[T any](seq iter.Seq[Event[T]]) iter.Seq[Event[T]] {
	return func(yield func(Event[T]) bool) {
		for ev := range seq {
			if ev.IsData() && !yield(ev) {
				return
			}
		}
	}
}

// FilterState yields only the stream-state sentinels of seq, dropping data
// events.
func FilterState[T any](seq iter.Seq[Event[T]]) iter.Seq[Event[T]] {
	return func(yield func(Event[T]) bool) {
		for ev := range seq {
			if !ev.IsData() && !yield(ev) {
				return
			}
		}
	}
}
