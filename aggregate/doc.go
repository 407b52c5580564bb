// Package aggregate provides time-windowed aggregation of collapsed change
// batches for rate control.
//
// A Windower buffers every batch pushed within a rolling interval. On each
// interval boundary the buffered batches are collapsed into a single batch
// of most recent updates per entity and emitted downstream. Windows with no
// input emit nothing. The window timer is driven by an injectable
// github.com/juju/clock time source, defaulting to the wall clock; timer
// fires and pushes are mutually exclusive.
//
// An Eager aggregator applies the emit-then-aggregate priming pattern: the
// first batch is collapsed and emitted immediately with no windowing delay,
// and only subsequent batches are windowed. This suits subscriptions whose
// first batch carries the full current state.
//
// Basic usage:
//
//	w, err := aggregate.NewWindower(cmp, time.Second, func(batch []event.Event[Instance]) error {
//	    return applyToCache(batch)
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer w.Close()
//
//	for batch := range batches {
//	    if err := w.Push(batch); err != nil {
//	        break
//	    }
//	}
//
// Close flushes the in-flight window as a final emission; Kill terminates
// without flushing and suppresses all further emissions.
package aggregate
