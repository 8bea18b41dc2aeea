package ladder

import (
	"fmt"

	"github.com/katalvlaran/wordladder/store"
	"github.com/katalvlaran/wordladder/word"
)

// Path follows the back-pointers from w to the target of the last search.
//
//   - Target:    [w]
//   - NextTo(n): [w, ...Path(n)]
//   - Unmarked or Unknown: empty, meaning w was not reached.
//
// The walk is bounded by the dictionary size. A longer chain, or one ending
// in an unmarked word, means the tree is corrupt and is reported as
// store.ErrInvariantViolation.
func (g *Graph) Path(w word.Word) ([]word.Word, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.path(w)
}

func (g *Graph) path(w word.Word) ([]word.Word, error) {
	st := g.store.Get(w)
	if st.Kind == store.Unmarked || st.Kind == store.Unknown {
		return []word.Word{}, nil
	}

	limit := g.store.Len()
	out := make([]word.Word, 0, 8)
	for cur := w; len(out) < limit; {
		out = append(out, cur)
		switch st.Kind {
		case store.Target:
			return out, nil
		case store.NextTo:
			cur = st.Next
			st = g.store.Get(cur)
		default:
			return nil, fmt.Errorf("%w: chain from %q reaches %q with status %s",
				store.ErrInvariantViolation, w, cur, st)
		}
	}

	return nil, fmt.Errorf("%w: chain from %q is longer than the dictionary (%d words)",
		store.ErrInvariantViolation, w, limit)
}
