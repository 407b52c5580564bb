package delineate

import (
	"iter"

	"github.com/wnf2018888/eureka/event"
)

// Delineator splits a flat event stream into discrete batches using the
// BufferStart and BufferEnd sentinels. Each subscription owns its own
// Delineator; the zero value is ready to use.
//
// Data events arriving outside a buffered region pass through immediately as
// single-element batches. Within a region they accumulate until the closing
// BufferEnd. A BufferEnd with nothing accumulated (an empty region, or a
// second consecutive BufferEnd) is swallowed, so downstream only ever sees
// non-empty batches. A BufferStart while already buffering is an idempotent
// re-entry: buffering continues and nothing is flushed.
type Delineator[T any] struct {
	inBuffer bool
	pending  []event.Event[T]
}

// Process feeds one event through the delineator. When the event completes a
// batch, the batch is returned with ok true; otherwise ok is false.
func (d *Delineator[T]) Process(ev event.Event[T]) (batch []event.Event[T], ok bool) {
	if !ev.IsData() {
		switch ev.BufferState() {
		case event.BufferStart:
			d.inBuffer = true
		case event.BufferEnd:
			d.inBuffer = false
			batch, d.pending = d.pending, nil
			return batch, len(batch) > 0
		}
		return nil, false
	}

	if d.inBuffer {
		d.pending = append(d.pending, ev)
		return nil, false
	}
	return []event.Event[T]{ev}, true
}

// Batches returns a lazy transform of seq into non-empty batches. Each range
// over the result uses a fresh Delineator, so the sequence is restartable
// per subscription.
func Batches[T any](seq iter.Seq[event.Event[T]]) iter.Seq[[]event.Event[T]] {
	return func(yield func([]event.Event[T]) bool) {
		var d Delineator[T]
		for ev := range seq {
			if batch, ok := d.Process(ev); ok {
				if !yield(batch) {
					return
				}
			}
		}
	}
}
