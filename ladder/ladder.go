package ladder

import (
	"fmt"

	"github.com/katalvlaran/wordladder/word"
)

// Ladder returns a shortest ladder from origin to target, both inclusive.
//
// The result is empty together with ErrWordNotFound when either word is not in
// the dictionary, and with ErrNoPath when they are not connected (or only
// connected beyond MaxDepth). Ladder(w, w) returns [w] for a dictionary word.
func (g *Graph) Ladder(origin, target word.Word) ([]word.Word, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, w := range [...]word.Word{origin, target} {
		if !g.store.Contains(w) {
			return []word.Word{}, fmt.Errorf("%w: %q", ErrWordNotFound, w)
		}
	}
	if origin == target {
		return []word.Word{origin}, nil
	}

	res, err := g.search(target, origin)
	if err != nil {
		return []word.Word{}, err
	}
	if !res.Found {
		return []word.Word{}, fmt.Errorf("%w: from %q to %q", ErrNoPath, origin, target)
	}

	return g.path(origin)
}
