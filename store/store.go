package store

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/wordladder/word"
)

// Store maps dictionary words to their search status.
type Store struct {
	capacity int
	statuses map[word.Word]Status
	// index is nil unless WithPatternIndex was given.
	index map[pattern][]word.Word
}

// New returns an empty Store configured by opts.
// Complexity: O(capacity)
func New(opts ...Option) *Store {
	s := &Store{}
	for _, opt := range opts {
		opt(s)
	}
	s.statuses = make(map[word.Word]Status, s.capacity)

	return s
}

// Indexed reports whether s maintains a wildcard-pattern index.
func (s *Store) Indexed() bool {
	return s.index != nil
}

// Len returns the number of words in s.
func (s *Store) Len() int {
	return len(s.statuses)
}

// AddWord inserts w as Unmarked, overwriting any previous status.
// Adding the same word twice leaves a single entry.
func (s *Store) AddWord(w word.Word) {
	_, exists := s.statuses[w]
	s.statuses[w] = StatusUnmarked
	if exists || s.index == nil {
		return
	}
	n := w.Len()
	for pos := 0; pos < n; pos++ {
		p := patternOf(w, pos, n)
		s.index[p] = append(s.index[p], w)
	}
}

// Contains reports whether w is in the dictionary.
func (s *Store) Contains(w word.Word) bool {
	_, ok := s.statuses[w]
	return ok
}

// Get returns the status of w, or StatusUnknown if w is absent.
func (s *Store) Get(w word.Word) Status {
	st, ok := s.statuses[w]
	if !ok {
		return StatusUnknown
	}

	return st
}

// MarkTarget makes w the root of a search. w must currently be Unmarked.
func (s *Store) MarkTarget(w word.Word) error {
	if err := s.requireUnmarked("mark target", w); err != nil {
		return err
	}
	s.statuses[w] = StatusTarget

	return nil
}

// Link records neighbor as the back-pointer of w. w must currently be Unmarked.
func (s *Store) Link(w, neighbor word.Word) error {
	if err := s.requireUnmarked("link", w); err != nil {
		return err
	}
	s.statuses[w] = LinkedTo(neighbor)

	return nil
}

func (s *Store) requireUnmarked(op string, w word.Word) error {
	st, ok := s.statuses[w]
	if !ok {
		return fmt.Errorf("%w: %s %q: %w", ErrInvariantViolation, op, w, ErrUnknownWord)
	}
	if st.Kind != Unmarked {
		return fmt.Errorf("%w: %s %q: status is %s", ErrInvariantViolation, op, w, st)
	}

	return nil
}

// UnmarkAll resets every entry to Unmarked, erasing the previous search tree.
// Complexity: O(N)
func (s *Store) UnmarkAll() {
	for w := range s.statuses {
		s.statuses[w] = StatusUnmarked
	}
}

// AdjacentWords returns the dictionary words adjacent to w in ascending order.
// w itself need not be in the dictionary.
//
// Complexity: O(N) without an index, O(MaxLen + k log k) with one, where k is
// the number of neighbours.
func (s *Store) AdjacentWords(w word.Word) []word.Word {
	var out []word.Word
	if s.index != nil {
		n := w.Len()
		for pos := 0; pos < n; pos++ {
			for _, c := range s.index[patternOf(w, pos, n)] {
				if c != w {
					out = append(out, c)
				}
			}
		}
	} else {
		for c := range s.statuses {
			if word.IsAdjacent(c, w) {
				out = append(out, c)
			}
		}
	}
	sortWords(out)

	return out
}

// UnvisitedAdjacentWords returns AdjacentWords(w) restricted to Unmarked entries.
func (s *Store) UnvisitedAdjacentWords(w word.Word) []word.Word {
	adj := s.AdjacentWords(w)
	out := adj[:0]
	for _, c := range adj {
		if s.statuses[c].Kind == Unmarked {
			out = append(out, c)
		}
	}

	return out
}

// Words returns every dictionary word in ascending order.
func (s *Store) Words() []word.Word {
	out := make([]word.Word, 0, len(s.statuses))
	for w := range s.statuses {
		out = append(out, w)
	}
	sortWords(out)

	return out
}

// Clone returns an independent copy of s with every entry Unmarked.
// Hand a clone to each goroutine that needs to run searches concurrently.
func (s *Store) Clone() *Store {
	c := &Store{
		capacity: len(s.statuses),
		statuses: make(map[word.Word]Status, len(s.statuses)),
	}
	for w := range s.statuses {
		c.statuses[w] = StatusUnmarked
	}
	if s.index != nil {
		c.index = make(map[pattern][]word.Word, len(s.index))
		for p, bucket := range s.index {
			c.index[p] = append([]word.Word(nil), bucket...)
		}
	}

	return c
}

func sortWords(ws []word.Word) {
	sort.Slice(ws, func(i, j int) bool { return ws[i] < ws[j] })
}
