package ladder

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/wordladder/log"
	"github.com/katalvlaran/wordladder/word"
)

// Sentinel errors for ladder queries.
var (
	// ErrStoreNil is returned when a nil store is passed to New.
	ErrStoreNil = errors.New("ladder: store is nil")

	// ErrWordNotFound is returned when the origin or target is not in the dictionary.
	ErrWordNotFound = errors.New("ladder: word not in dictionary")

	// ErrNoPath is returned when no ladder connects origin and target.
	ErrNoPath = errors.New("ladder: no path")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("ladder: invalid option supplied")
)

// Option configures a Graph via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the parameters and callbacks of a Graph's searches.
type Options struct {
	// Ctx allows cancellation and deadlines. Checked once per dequeued word.
	Ctx context.Context

	// MaxDepth, if > 0, stops the search from discovering words farther than
	// MaxDepth steps from the target. Ladders longer than MaxDepth+1 words are
	// then reported as ErrNoPath. 0 means no limit.
	MaxDepth int

	// OnVisit is called for every dequeued word with its distance from the
	// target. Returning an error aborts the search.
	OnVisit func(w word.Word, depth int) error

	// Logger receives debug records about every search.
	Logger log.Logger

	err error
}

// DefaultOptions returns Options with a background context, no depth limit,
// a no-op visit hook and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: 0,
		OnVisit:  func(word.Word, int) error { return nil },
		Logger:   log.NewNopLogger(),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits how far from the target the search explores.
//
//	d > 0:  limit to d steps
//	d == 0: no limit
//	d < 0:  ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnVisit registers a callback run on every dequeued word.
func WithOnVisit(fn func(w word.Word, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithLogger sets the logger used for search diagnostics.
func WithLogger(l log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// SearchResult summarizes one breadth-first search.
type SearchResult struct {
	// Found reports whether the origin was reached.
	Found bool
	// Depth is the distance in steps from origin to target; -1 if not found.
	Depth int
	// Visited counts the words dequeued by the search.
	Visited int
}
