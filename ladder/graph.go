package ladder

import (
	"sync"

	"github.com/katalvlaran/wordladder/store"
	"github.com/katalvlaran/wordladder/word"
)

// Graph answers ladder queries over the dictionary held by a store.Store.
// The store is used as search scratch space; mu serializes every access to it.
type Graph struct {
	mu    sync.Mutex
	store *store.Store
	opts  Options
}

// New wraps s in a Graph configured by opts.
// Returns ErrStoreNil for a nil store and ErrOptionViolation for bad options.
func New(s *store.Store, opts ...Option) (*Graph, error) {
	if s == nil {
		return nil, ErrStoreNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Graph{store: s, opts: o}, nil
}

// FromWords builds a Graph over a fresh store holding words.
// Duplicates are collapsed.
func FromWords(words []word.Word, opts ...Option) (*Graph, error) {
	s := store.New(store.WithCapacity(len(words)))
	for _, w := range words {
		s.AddWord(w)
	}

	return New(s, opts...)
}

// AddWord adds w to the dictionary.
func (g *Graph) AddWord(w word.Word) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.store.AddWord(w)
}

// Len returns the number of dictionary words.
func (g *Graph) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.store.Len()
}

// Status returns the current status of w as left by the last search.
func (g *Graph) Status(w word.Word) store.Status {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.store.Get(w)
}
