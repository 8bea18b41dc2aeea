// Package store keeps the dictionary of a word ladder together with the
// per-word scratch status used by a breadth-first search.
//
// What
//
//   - Membership: a word is in the dictionary iff it has an entry. Absence is
//     reported as Kind Unknown and is never stored.
//   - Search state: every entry is Unmarked, the single Target (root of the
//     current search), or NextTo(w), a back-pointer one step closer to the root.
//   - Adjacency: AdjacentWords computes the one-letter neighbours of a word on
//     demand. Edges are never materialized.
//
// Invariants
//
//   - At most one entry holds Target.
//   - MarkTarget and Link only accept Unmarked entries, so each entry is linked
//     at most once between two UnmarkAll calls and the back-pointers form a tree
//     rooted at the Target entry.
//   - Violations are returned as ErrInvariantViolation; nothing panics.
//
// Determinism
//
//	AdjacentWords returns neighbours in ascending Word order, which for words of
//	the same length is lexicographic order. A search driven by it always builds
//	the same tree for the same dictionary.
//
// Pattern index
//
//	By default AdjacentWords scans the whole dictionary (O(N) per call).
//	WithPatternIndex buckets every word under each of its wildcard patterns
//	("c_t", "_at", "ca_"), turning a lookup into at most MaxLen bucket reads.
//	Results are identical either way.
//
// Concurrency
//
//	A Store is not safe for concurrent use. Serialize access to it, or give each
//	goroutine its own copy via Clone.
package store
