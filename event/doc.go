// Package event defines the change notification model shared by every stage
// of the pipeline.
//
// An Event is either a data event describing the addition, modification or
// deletion of an entity, or a stream-state sentinel delineating a buffered
// region of the stream. The two are distinguished in constant time with
// IsData.
//
// Entities are compared by identity, not by structural equality. Every
// collapsing or accumulating operation takes a Comparator supplied by the
// caller which defines a total order over the identity key of the payload
// type:
//
//	cmp := func(a, b Instance) int {
//	    return strings.Compare(a.ID, b.ID)
//	}
//
// Two events are about the same entity precisely when the comparator reports
// zero for their payloads.
package event
