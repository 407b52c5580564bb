// Package eureka transforms a raw change-notification stream into a
// consistent, minimal and timing-controlled representation suitable for
// building a materialized view, such as a service registry's client-side
// cache.
//
// Raw events are delineated into batches, each batch is collapsed to its net
// effect per entity, and the collapsed batches are either delivered
// directly, folded into running snapshots, or coalesced over fixed time
// windows with an eagerly emitted first batch. The stages are available
// individually in the delineate, collapse, snapshot and aggregate packages;
// the Pipeline type in this package wires them behind a single push entry
// point.
package eureka

import (
	"context"
	"errors"
	"sync"

	"github.com/wnf2018888/eureka/aggregate"
	"github.com/wnf2018888/eureka/collapse"
	"github.com/wnf2018888/eureka/delineate"
	"github.com/wnf2018888/eureka/event"
	"github.com/wnf2018888/eureka/snapshot"
)

var (
	ErrNoComparator = errors.New("eureka: identity comparator is required")
	ErrNoHandler    = errors.New("eureka: handler is required")
	ErrClosed       = errors.New("eureka: pipeline is closed")
)

// aggregator is the windowing surface shared by aggregate.Windower and
// aggregate.Eager.
type aggregator[T any] interface {
	Push(batch []event.Event[T]) error
	Close() error
	Kill(reason error)
	Wait() error
}

// Pipeline converts a push stream of change events into collapsed batches
// delivered to a Handler. Events are delineated into batches by the buffer
// sentinels and each batch is collapsed before delivery. When an interval is
// configured, collapsed batches are additionally coalesced per window, with
// the first batch emitted immediately unless eager priming is disabled.
//
// A Pipeline owns all per-subscription state and is terminal once an error
// has been observed: create a new Pipeline to resume. Handle may be called
// from one goroutine at a time; windowed emissions run on the aggregator's
// timer goroutine and are serialized against Handle.
type Pipeline[T any] struct {
	cmp     event.Comparator[T]
	handler Handler[T]
	agg     aggregator[T]

	mu     sync.Mutex
	delin  delineate.Delineator[T]
	closed bool
	err    error
}

// New creates a pipeline delivering collapsed batches to handler.
func New[T any](cmp event.Comparator[T], handler Handler[T], opts ...Option) (*Pipeline[T], error) {
	if cmp == nil {
		return nil, ErrNoComparator
	}
	if handler == nil {
		return nil, ErrNoHandler
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p := &Pipeline[T]{
		cmp:     cmp,
		handler: handler,
	}

	if o.interval > 0 {
		emit := func(batch []event.Event[T]) error {
			return handler.Handle(context.Background(), batch)
		}
		var (
			agg aggregator[T]
			err error
		)
		if o.eager {
			agg, err = aggregate.NewEager(cmp, o.interval, emit, aggregate.WithClock(o.clk))
		} else {
			agg, err = aggregate.NewWindower(cmp, o.interval, emit, aggregate.WithClock(o.clk))
		}
		if err != nil {
			return nil, err
		}
		p.agg = agg
	}

	return p, nil
}

// Handle pushes a single event into the pipeline. When the event completes a
// batch, the batch is collapsed and delivered, either synchronously or into
// the current window. A returned error is terminal.
func (p *Pipeline[T]) Handle(ctx context.Context, ev event.Event[T]) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		if p.err != nil {
			return p.err
		}
		return ErrClosed
	}

	batch, ok := p.delin.Process(ev)
	if !ok {
		return nil
	}
	collapsed := collapse.Batch(batch, p.cmp)

	if p.agg != nil {
		if err := p.agg.Push(collapsed); err != nil {
			if errors.Is(err, aggregate.ErrClosed) {
				if terr := p.agg.Wait(); terr != nil {
					err = terr
				}
			}
			p.closed = true
			p.err = err
			return err
		}
		return nil
	}

	if err := p.handler.Handle(ctx, collapsed); err != nil {
		p.closed = true
		p.err = err
		return err
	}
	return nil
}

// Close signals completion of the upstream source. Any in-flight window is
// flushed as a final emission before the pipeline terminates. Close returns
// the pipeline's terminal error, if any.
func (p *Pipeline[T]) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return p.err
	}
	p.closed = true
	if p.agg != nil {
		p.err = p.agg.Close()
	}
	return p.err
}

// Kill terminates the pipeline with reason, discarding buffered state. No
// emissions happen after Kill returns.
func (p *Pipeline[T]) Kill(reason error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	if p.err == nil {
		p.err = reason
	}
	if p.agg != nil {
		p.agg.Kill(reason)
	}
}

// Wait returns the pipeline's terminal error. With windowing enabled it
// blocks until the aggregator has terminated.
func (p *Pipeline[T]) Wait() error {
	p.mu.Lock()
	agg, err := p.agg, p.err
	p.mu.Unlock()

	if agg != nil {
		if werr := agg.Wait(); werr != nil {
			return werr
		}
	}
	return err
}

// SnapshotPipeline converts a push stream of change events into running
// snapshots of currently known live entities, emitting one snapshot per
// delineated batch. It is the materialized-view counterpart of Pipeline and
// performs no windowing.
type SnapshotPipeline[T any] struct {
	cmp     event.Comparator[T]
	handler SnapshotHandler[T]

	mu     sync.Mutex
	delin  delineate.Delineator[T]
	acc    *snapshot.Accumulator[T]
	closed bool
	err    error
}

// NewSnapshotPipeline creates a pipeline delivering snapshots to handler.
func NewSnapshotPipeline[T any](cmp event.Comparator[T], handler SnapshotHandler[T]) (*SnapshotPipeline[T], error) {
	if cmp == nil {
		return nil, ErrNoComparator
	}
	if handler == nil {
		return nil, ErrNoHandler
	}
	return &SnapshotPipeline[T]{
		cmp:     cmp,
		handler: handler,
		acc:     snapshot.NewAccumulator(cmp),
	}, nil
}

// Handle pushes a single event into the pipeline. When the event completes a
// batch, the batch is collapsed, applied to the running set, and the
// resulting snapshot delivered. A returned error is terminal.
func (p *SnapshotPipeline[T]) Handle(ctx context.Context, ev event.Event[T]) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		if p.err != nil {
			return p.err
		}
		return ErrClosed
	}

	batch, ok := p.delin.Process(ev)
	if !ok {
		return nil
	}
	snap := p.acc.Apply(collapse.Batch(batch, p.cmp))

	if err := p.handler.Handle(ctx, snap); err != nil {
		p.closed = true
		p.err = err
		return err
	}
	return nil
}

// Close signals completion of the upstream source and returns the terminal
// error, if any.
func (p *SnapshotPipeline[T]) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	return p.err
}
