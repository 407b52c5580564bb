// Package identity implements ordered generic containers keyed by an
// identity comparator rather than Go equality.
//
// Payload types carried through the pipeline are compared by a caller-chosen
// identity key, so neither built-in maps nor comparable constraints apply.
// Both containers are backed by a B-tree ordered by the comparator:
//
//   - Map is an ordered key/value map with O(log n) lookups.
//   - Set is a duplicate-free set that additionally preserves insertion
//     order, so a materialized snapshot lists entities in the order they
//     first became visible.
//
// Basic usage:
//
//	cmp := func(a, b string) int { return strings.Compare(a, b) }
//
//	set := identity.NewSet(cmp)
//	set.Add("b")
//	set.Add("a")
//	set.Add("b") // no-op for ordering, payload updated in place
//
//	set.Items()     // ["b", "a"] - insertion order
//	set.Ascending() // ["a", "b"] - comparator order
//
// Neither container is safe for concurrent use; every pipeline subscription
// owns its own instances.
package identity
