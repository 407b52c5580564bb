package aggregate

import (
	"sync"
	"time"

	"github.com/wnf2018888/eureka/collapse"
	"github.com/wnf2018888/eureka/event"
)

// Eager wraps the windowing aggregator so the very first batch is collapsed
// and emitted immediately, bypassing the window. Subsequent batches are
// routed into an inner Windower constructed on receipt of that first batch,
// and follow the windowing rule thereafter.
//
// The transition from awaiting the first batch to windowing is one-way and
// happens exactly once per aggregator lifetime. A registry-style consumer
// gets the full current state with zero latency on subscribe, while live
// updates are coalesced per interval.
type Eager[T any] struct {
	cmp      event.Comparator[T]
	interval time.Duration
	emit     Emit[T]
	opts     []Option

	mu      sync.Mutex
	inner   *Windower[T]
	closed  bool
	killErr error
}

// NewEager creates an eager-priming aggregator. The inner window timer only
// starts once the first batch has been emitted.
func NewEager[T any](cmp event.Comparator[T], interval time.Duration, emit Emit[T], opts ...Option) (*Eager[T], error) {
	if cmp == nil {
		return nil, ErrNoComparator
	}
	if interval <= 0 {
		return nil, ErrInvalidInterval
	}
	if emit == nil {
		return nil, ErrNoEmit
	}
	return &Eager[T]{
		cmp:      cmp,
		interval: interval,
		emit:     emit,
		opts:     opts,
	}, nil
}

// Push routes batch through the aggregator. The first non-empty batch is
// collapsed and emitted synchronously before Push returns; later batches
// join the current window.
func (e *Eager[T]) Push(batch []event.Event[T]) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrClosed
	}
	if len(batch) == 0 {
		return nil
	}
	if e.inner != nil {
		return e.inner.Push(batch)
	}

	if err := e.emit(collapse.Batch(batch, e.cmp)); err != nil {
		e.closed = true
		e.killErr = err
		return err
	}
	inner, err := NewWindower(e.cmp, e.interval, e.emit, e.opts...)
	if err != nil {
		return err
	}
	e.inner = inner
	return nil
}

// Close flushes the current window, if any, and terminates the aggregator.
func (e *Eager[T]) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.closed = true
	if e.inner != nil {
		return e.inner.Close()
	}
	return e.killErr
}

// Kill terminates the aggregator with reason, discarding any buffered
// batches.
func (e *Eager[T]) Kill(reason error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.closed = true
	if e.inner != nil {
		e.inner.Kill(reason)
		return
	}
	if e.killErr == nil {
		e.killErr = reason
	}
}

// Wait returns the terminal error after Close or Kill.
func (e *Eager[T]) Wait() error {
	e.mu.Lock()
	inner, killErr := e.inner, e.killErr
	e.mu.Unlock()

	if inner != nil {
		return inner.Wait()
	}
	return killErr
}
