package store

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wordladder/word"
)

// Sentinel errors for store mutations.
var (
	// ErrInvariantViolation is returned when a mutation would break the
	// single-root, link-once discipline of the search tree.
	ErrInvariantViolation = errors.New("store: invariant violation")

	// ErrUnknownWord indicates the word has no entry in the store.
	ErrUnknownWord = errors.New("store: unknown word")
)

// Kind enumerates the states a word can be in.
type Kind uint8

const (
	// Unknown: the word is not in the dictionary.
	Unknown Kind = iota
	// Unmarked: in the dictionary, not visited by the current search.
	Unmarked
	// Target: root of the current search.
	Target
	// NextTo: visited; Status.Next is one step closer to the root.
	NextTo
)

// String returns the name of k.
func (k Kind) String() string {
	switch k {
	case Unknown:
		return "Unknown"
	case Unmarked:
		return "Unmarked"
	case Target:
		return "Target"
	case NextTo:
		return "NextTo"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Status is the state of a single word. Next is only meaningful when Kind is NextTo.
type Status struct {
	Kind Kind
	Next word.Word
}

// Convenience values for the payload-free kinds.
var (
	StatusUnknown  = Status{Kind: Unknown}
	StatusUnmarked = Status{Kind: Unmarked}
	StatusTarget   = Status{Kind: Target}
)

// LinkedTo returns the NextTo status pointing at w.
func LinkedTo(w word.Word) Status {
	return Status{Kind: NextTo, Next: w}
}

// String renders s as e.g. "Unmarked" or "NextTo(cat)".
func (s Status) String() string {
	if s.Kind == NextTo {
		return fmt.Sprintf("NextTo(%s)", s.Next)
	}

	return s.Kind.String()
}

// Option configures a Store at construction time.
type Option func(*Store)

// WithPatternIndex maintains a wildcard-pattern index so AdjacentWords reads a
// few buckets instead of scanning the whole dictionary.
func WithPatternIndex() Option {
	return func(s *Store) { s.index = make(map[pattern][]word.Word) }
}

// WithCapacity preallocates room for n words. Non-positive values are ignored.
func WithCapacity(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.capacity = n
		}
	}
}

// pattern is a word with the character at byte position pos (counted from the
// last character) blanked out. n keeps patterns of different lengths apart.
type pattern struct {
	masked word.Word
	pos    uint8
	n      uint8
}

// patternOf blanks the character at position pos of w, where w has n characters.
func patternOf(w word.Word, pos, n int) pattern {
	return pattern{
		masked: w &^ (word.Word(0xFF) << (8 * uint(pos))),
		pos:    uint8(pos),
		n:      uint8(n),
	}
}
