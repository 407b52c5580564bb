package eureka

import (
	"context"

	"github.com/wnf2018888/eureka/event"
)

// Handler defines the interface for consuming collapsed batches.
type Handler[T any] interface {
	// Handle processes a single collapsed batch. A non-nil error
	// terminates the pipeline.
	Handle(ctx context.Context, batch []event.Event[T]) error
}

// HandlerFunc is a function type that implements Handler.
type HandlerFunc[T any] func(ctx context.Context, batch []event.Event[T]) error

// Handle calls the function.
func (f HandlerFunc[T]) Handle(ctx context.Context, batch []event.Event[T]) error {
	return f(ctx, batch)
}

// SnapshotHandler defines the interface for consuming materialized
// snapshots.
type SnapshotHandler[T any] interface {
	// Handle processes a snapshot of currently known live entities, in
	// insertion order. A non-nil error terminates the pipeline.
	Handle(ctx context.Context, snapshot []T) error
}

// SnapshotHandlerFunc is a function type that implements SnapshotHandler.
type SnapshotHandlerFunc[T any] func(ctx context.Context, snapshot []T) error

// Handle calls the function.
func (f SnapshotHandlerFunc[T]) Handle(ctx context.Context, snapshot []T) error {
	return f(ctx, snapshot)
}
