package store_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/wordladder/store"
	"github.com/katalvlaran/wordladder/word"
)

// buildFourLetter fills a store with every word over a 10-letter alphabet
// of length 4 whose letters are drawn from "abcdefghij" (10^4 words).
func buildFourLetter(opts ...store.Option) *store.Store {
	const alphabet = "abcdefghij"
	s := store.New(opts...)
	for _, a := range alphabet {
		for _, b := range alphabet {
			for _, c := range alphabet {
				for _, d := range alphabet {
					s.AddWord(word.Encode(fmt.Sprintf("%c%c%c%c", a, b, c, d)))
				}
			}
		}
	}

	return s
}

// BenchmarkAdjacentWords compares the full scan with the pattern index.
func BenchmarkAdjacentWords(b *testing.B) {
	probe := word.MustParse("eeee")
	for name, opts := range map[string][]store.Option{
		"Scan":    nil,
		"Indexed": {store.WithPatternIndex()},
	} {
		s := buildFourLetter(opts...)
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = s.AdjacentWords(probe)
			}
		})
	}
}
