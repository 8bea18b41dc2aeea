// Package wordladder finds the shortest word ladder between two words: a
// sequence of dictionary words of equal length where each step changes exactly
// one letter.
//
//	cat → cot → cog → dog
//
// The word graph is never built. Words are packed into 64-bit keys, adjacency
// is decided by comparing two keys byte by byte, and a breadth-first search
// rooted at the target records back-pointers in the dictionary itself.
//
// Under the hood, everything is organized under a few subpackages:
//
//	word/       - Word codec (string ⇄ uint64) and the one-letter adjacency predicate
//	store/      - dictionary membership + per-word search status, optional pattern index
//	ladder/     - breadth-first search, path reconstruction, Ladder queries
//	dictionary/ - loading word lists from files or readers
//	log/        - zap-backed structured logging
//	cmd/wordladder - command line: wordladder <dictionary> <origin> <target>
//
// Quick example:
//
//	g, _ := ladder.FromWords([]word.Word{
//		word.MustParse("cat"), word.MustParse("cot"),
//		word.MustParse("cog"), word.MustParse("dog"),
//	})
//	l, err := g.Ladder(word.MustParse("cat"), word.MustParse("dog"))
//	// l == [cat cot cog dog], err == nil
//
//	go install github.com/katalvlaran/wordladder/cmd/wordladder@latest
package wordladder
