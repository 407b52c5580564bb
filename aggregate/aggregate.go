package aggregate

import (
	"errors"
	"sync"
	"time"

	"github.com/juju/clock"
	"gopkg.in/tomb.v2"

	"github.com/wnf2018888/eureka/collapse"
	"github.com/wnf2018888/eureka/event"
)

var (
	ErrNoComparator    = errors.New("aggregate: identity comparator is required")
	ErrInvalidInterval = errors.New("aggregate: interval must be positive")
	ErrNoEmit          = errors.New("aggregate: emit callback is required")
	ErrClosed          = errors.New("aggregate: aggregator is closed")
)

// Emit delivers one aggregated batch downstream. Emissions are serialized;
// an Emit call never overlaps another emission or a Push on the same
// aggregator. A non-nil error terminates the aggregator: the error becomes
// its terminal error and nothing further is emitted.
type Emit[T any] func(batch []event.Event[T]) error

// Windower buffers batches arriving within a rolling interval and, on each
// interval boundary, collapses them into a single batch and emits it.
// Intervals with no buffered batches emit nothing. The interval is driven by
// the injected time source, not by data arrival.
type Windower[T any] struct {
	cmp      event.Comparator[T]
	interval time.Duration
	emit     Emit[T]
	clock    clock.Clock

	mu      sync.Mutex
	pending [][]event.Event[T]
	closed  bool

	tomb tomb.Tomb
}

// NewWindower creates a windowing aggregator and starts its timer. The
// returned aggregator must be released with Close or Kill.
func NewWindower[T any](cmp event.Comparator[T], interval time.Duration, emit Emit[T], opts ...Option) (*Windower[T], error) {
	if cmp == nil {
		return nil, ErrNoComparator
	}
	if interval <= 0 {
		return nil, ErrInvalidInterval
	}
	if emit == nil {
		return nil, ErrNoEmit
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w := &Windower[T]{
		cmp:      cmp,
		interval: interval,
		emit:     emit,
		clock:    o.clock,
	}
	w.tomb.Go(w.loop)
	return w, nil
}

// Push appends batch to the current window. Empty batches are dropped.
func (w *Windower[T]) Push(batch []event.Event[T]) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrClosed
	}
	if len(batch) == 0 {
		return nil
	}
	w.pending = append(w.pending, batch)
	return nil
}

// Close flushes the current window as a final emission, stops the timer and
// waits for the aggregator to terminate. It returns the terminal error, if
// any. After a Kill nothing further is emitted.
func (w *Windower[T]) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return w.tomb.Wait()
	}
	w.closed = true
	w.mu.Unlock()

	w.tomb.Kill(nil)
	if err := w.tomb.Wait(); err != nil {
		return err
	}
	return w.flush()
}

// Kill terminates the aggregator with reason, discarding any buffered
// batches. No emissions happen after Kill returns.
func (w *Windower[T]) Kill(reason error) {
	w.mu.Lock()
	w.closed = true
	w.pending = nil
	w.mu.Unlock()
	w.tomb.Kill(reason)
}

// Wait blocks until the aggregator has terminated and returns its terminal
// error.
func (w *Windower[T]) Wait() error {
	return w.tomb.Wait()
}

func (w *Windower[T]) loop() error {
	for {
		select {
		case <-w.clock.After(w.interval):
			if err := w.flush(); err != nil {
				return err
			}
		case <-w.tomb.Dying():
			return tomb.ErrDying
		}
	}
}

// flush collapses and emits the pending window. The lock is held across the
// emission so that timer-driven emission and Push are mutually exclusive.
func (w *Windower[T]) flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.pending) == 0 {
		return nil
	}
	batch := collapse.Lists(w.pending, w.cmp)
	w.pending = nil
	if len(batch) == 0 {
		return nil
	}
	if err := w.emit(batch); err != nil {
		w.closed = true
		return err
	}
	return nil
}
