package ladder

import (
	"context"
	"fmt"

	"github.com/katalvlaran/wordladder/store"
	"github.com/katalvlaran/wordladder/word"
)

// queueItem pairs a word with its distance from the target.
type queueItem struct {
	w     word.Word
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	store  *store.Store
	opts   Options
	ctx    context.Context
	origin word.Word
	queue  []queueItem
	res    *SearchResult
}

// Search resets every status, marks target as the root and runs a
// breadth-first search until origin is dequeued or the frontier is exhausted.
// The resulting back-pointer tree stays in the store for Path to read.
//
// Returns ErrWordNotFound if target is not in the dictionary. A missing origin
// is not an error: the search simply explores everything reachable from target.
func (g *Graph) Search(target, origin word.Word) (*SearchResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.search(target, origin)
}

func (g *Graph) search(target, origin word.Word) (*SearchResult, error) {
	if !g.store.Contains(target) {
		return nil, fmt.Errorf("%w: target %q", ErrWordNotFound, target)
	}

	g.store.UnmarkAll()
	if err := g.store.MarkTarget(target); err != nil {
		return nil, err
	}

	w := &walker{
		store:  g.store,
		opts:   g.opts,
		ctx:    g.opts.Ctx,
		origin: origin,
		queue:  make([]queueItem, 0, 64),
		res:    &SearchResult{Depth: -1},
	}
	w.queue = append(w.queue, queueItem{w: target})
	err := w.loop()
	g.opts.Logger.Debugw("search finished",
		"target", target.String(),
		"origin", origin.String(),
		"found", w.res.Found,
		"depth", w.res.Depth,
		"visited", w.res.Visited,
	)

	return w.res, err
}

// loop processes the queue until origin is dequeued, the queue empties,
// a hook fails, or the context is cancelled.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Visited++
		if err := w.opts.OnVisit(item.w, item.depth); err != nil {
			return fmt.Errorf("ladder: OnVisit error at %q: %w", item.w, err)
		}
		if item.w == w.origin {
			w.res.Found = true
			w.res.Depth = item.depth

			return nil
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors links every unvisited neighbour of item back to it and
// enqueues it, unless that would exceed MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range w.store.UnvisitedAdjacentWords(item.w) {
		if err := w.store.Link(nbr, item.w); err != nil {
			return err
		}
		w.queue = append(w.queue, queueItem{w: nbr, depth: next})
	}

	return nil
}
