package collapse

import (
	"github.com/wnf2018888/eureka/event"
	"github.com/wnf2018888/eureka/identity"
)

// Batch reduces an ordered batch of change events to the minimal batch with
// the same net effect: at most one surviving event per identity, survivors
// ordered by each identity's most recent event. Stream-state sentinels carry
// no payload and are dropped. The input is not modified.
//
// The surviving kind for each identity follows the later event, with one
// exception: an entity that was added and later modified collapses to a
// single Add, keeping "this identity is newly visible".
func Batch[T any](batch []event.Event[T], cmp event.Comparator[T]) []event.Event[T] {
	markers := identity.NewMap[T, int](cmp)
	result := into(batch, markers, make([]event.Event[T], 0, len(batch)))
	reverse(result)
	return result
}

// Lists collapses a sequence of batches, oldest first, into one batch. It is
// equivalent to collapsing the concatenation of all batches but shares a
// single marker map across the whole sequence instead of materializing the
// concatenation.
func Lists[T any](batches [][]event.Event[T], cmp event.Comparator[T]) []event.Event[T] {
	markers := identity.NewMap[T, int](cmp)
	var result []event.Event[T]
	for i := len(batches) - 1; i >= 0; i-- {
		result = into(batches[i], markers, result)
	}
	reverse(result)
	return result
}

// into walks batch from last to first, keeping the first event seen per
// identity. The result is built in reverse chronological order; callers
// reverse it once the whole sequence has been processed.
func into[T any](batch []event.Event[T], markers *identity.Map[T, int], result []event.Event[T]) []event.Event[T] {
	for i := len(batch) - 1; i >= 0; i-- {
		next := batch[i]
		if !next.IsData() {
			continue
		}
		data := next.Data()
		if idx, ok := markers.Get(data); ok {
			// The kept event is chronologically later. Only an earlier
			// Add overriding a kept Modify mutates the slot.
			if next.Kind() == event.Add && result[idx].Kind() == event.Modify {
				result[idx] = next
			}
			continue
		}
		markers.Set(data, len(result))
		result = append(result, next)
	}
	return result
}

// AndExtract collapses batch and returns the payloads of the surviving Add
// and Modify events, sorted in comparator order.
func AndExtract[T any](batch []event.Event[T], cmp event.Comparator[T]) []T {
	set := identity.NewSet(cmp)
	for _, ev := range Batch(batch, cmp) {
		if ev.Kind() == event.Add || ev.Kind() == event.Modify {
			set.Add(ev.Data())
		}
	}
	return set.Ascending()
}

func reverse[T any](events []event.Event[T]) {
	for i, j := 0, len(events)-1; i < j; i, j = i+1, j-1 {
		events[i], events[j] = events[j], events[i]
	}
}
