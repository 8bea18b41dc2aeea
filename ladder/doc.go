// Package ladder finds the shortest word ladder between two dictionary words:
// a sequence of same-length words in which each consecutive pair differs by
// exactly one character.
//
// What
//
//   - Graph wraps a store.Store and answers Ladder(origin, target) queries.
//   - The word graph is implicit. Edges are computed on demand by
//     store.AdjacentWords and never materialized.
//   - Search runs a breadth-first search rooted at the target, writing a
//     NextTo back-pointer into every word it discovers. Path then follows those
//     back-pointers from the origin, so the ladder comes out origin-first with no
//     reversal.
//
// Why BFS from the target
//
//	Words are discovered in non-decreasing distance from the root, and each is
//	linked to the first word that discovers it. Once the origin is dequeued its
//	back-pointer chain is a shortest path to the target.
//
// Determinism
//
//	Neighbours are enumerated in ascending word order, so for a given dictionary
//	the same query always returns the same ladder, even when several shortest
//	ladders exist.
//
// Errors
//
//   - ErrStoreNil            if New is given a nil store.
//   - ErrWordNotFound        if origin or target is not in the dictionary.
//   - ErrNoPath              if both words exist but are not connected.
//   - ErrOptionViolation     for invalid options (e.g. negative MaxDepth).
//   - store.ErrInvariantViolation if the back-pointer tree is inconsistent.
//   - ctx.Err() when the context given via WithContext is cancelled.
//   - Wrapped errors returned by an OnVisit hook.
//
// Special cases
//
//	Ladder(w, w) returns [w] without searching, as long as w is in the dictionary.
//
// Concurrency
//
//	Queries on one Graph are serialized by a mutex because every search reuses
//	the store as scratch space. For parallel queries give each goroutine its own
//	Graph built over store.Clone().
//
// Complexity (N = dictionary size, k = MaxLen)
//
//   - Without index: O(N²·k) time per query, from one full scan per dequeued word.
//   - With store.WithPatternIndex: O(N·k + E log d) time, E edges, d max degree.
//   - Memory: O(N) for the queue and the statuses.
package ladder
