// Package collapse reduces batches of change events to the minimal batch
// representing their net effect per entity.
//
// Replaying a collapsed batch against any materialized view yields the same
// final state as replaying the original. For a pair of events about the same
// entity, the kept kind is:
//
//	earlier → later   kept
//	Add     → Delete  Delete
//	Add     → Modify  Add
//	Modify  → Add     Add
//	Modify  → Delete  Delete
//	Delete  → Add     Add
//	Delete  → Modify  Modify
//
// Repeats of the same kind keep the later event. The only pair that does not
// simply keep the later kind is Add → Modify: an entity added and then
// modified within one batch is still newly visible, so it collapses to Add.
//
// For example:
//
//	in := []event.Event[string]{
//	    event.NewAdd("A"),
//	    event.NewAdd("B"),
//	    event.NewModify("A"),
//	    event.NewDelete("B"),
//	}
//	collapse.Batch(in, cmp) // [Add(A), Delete(B)]
//
// Lists collapses a list of batches accumulated over a window without first
// concatenating them, which keeps windowed aggregation linear in the total
// number of events.
package collapse
