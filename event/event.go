package event

// Kind describes the effect a data event has on the entity it carries.
type Kind int

const (
	Add Kind = iota + 1
	Modify
	Delete
)

func (k Kind) String() string {
	switch k {
	case Add:
		return "Add"
	case Modify:
		return "Modify"
	case Delete:
		return "Delete"
	default:
		return "Unknown"
	}
}

// BufferState marks a boundary of a buffered region in the stream.
type BufferState int

const (
	BufferStart BufferState = iota + 1
	BufferEnd
)

func (s BufferState) String() string {
	switch s {
	case BufferStart:
		return "BufferStart"
	case BufferEnd:
		return "BufferEnd"
	default:
		return "Unknown"
	}
}

// Comparator is a total order over the identity of T. It returns a negative
// number when a orders before b, zero when a and b refer to the same entity,
// and a positive number otherwise. Identity is decided by the caller (for
// example an entity's unique id) and is independent of structural equality.
type Comparator[T any] func(a, b T) int

// Event is a single change notification. It is either a data event carrying a
// payload and a Kind, or a stream-state sentinel carrying a BufferState.
// The zero value is not a valid event.
type Event[T any] struct {
	kind  Kind
	state BufferState
	data  T
}

// NewAdd returns a data event recording that data became visible.
func NewAdd[T any](data T) Event[T] {
	return Event[T]{kind: Add, data: data}
}

// NewModify returns a data event recording that data changed.
func NewModify[T any](data T) Event[T] {
	return Event[T]{kind: Modify, data: data}
}

// NewDelete returns a data event recording that data was removed.
func NewDelete[T any](data T) Event[T] {
	return Event[T]{kind: Delete, data: data}
}

// NewBufferStart returns the sentinel opening a buffered region.
func NewBufferStart[T any]() Event[T] {
	return Event[T]{state: BufferStart}
}

// NewBufferEnd returns the sentinel closing a buffered region.
func NewBufferEnd[T any]() Event[T] {
	return Event[T]{state: BufferEnd}
}

// IsData reports whether the event is a data event rather than a
// stream-state sentinel.
func (e Event[T]) IsData() bool {
	return e.state == 0
}

// Kind returns the event kind. It is meaningful only for data events.
func (e Event[T]) Kind() Kind {
	return e.kind
}

// Data returns the payload. It is the zero value for sentinels.
func (e Event[T]) Data() T {
	return e.data
}

// BufferState returns the buffer boundary carried by a sentinel. It is zero
// for data events.
func (e Event[T]) BufferState() BufferState {
	return e.state
}

// From lifts plain values into a batch of Add events. A nil or empty input
// yields nil.
func From[T any](values ...T) []Event[T] {
	if len(values) == 0 {
		return nil
	}
	events := make([]Event[T], 0, len(values))
	for _, v := range values {
		events = append(events, NewAdd(v))
	}
	return events
}
