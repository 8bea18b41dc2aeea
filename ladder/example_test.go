package ladder_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wordladder/ladder"
	"github.com/katalvlaran/wordladder/store"
	"github.com/katalvlaran/wordladder/word"
)

// ExampleGraph_Ladder walks from "cat" to "dog" through a six-word dictionary.
func ExampleGraph_Ladder() {
	s := store.New()
	for _, w := range []string{"cat", "bat", "bag", "cog", "cot", "dog"} {
		s.AddWord(word.MustParse(w))
	}
	g, err := ladder.New(s)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	l, err := g.Ladder(word.MustParse("cat"), word.MustParse("dog"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(word.Strings(l))
	// Output:
	// [cat cot cog dog]
}

// ExampleGraph_Ladder_errors shows how to tell a typo from unconnected words.
func ExampleGraph_Ladder_errors() {
	g, _ := ladder.FromWords([]word.Word{
		word.MustParse("cat"), word.MustParse("cot"), word.MustParse("qux"),
	}, ladder.WithMaxDepth(10))

	for _, q := range [][2]string{{"cat", "cot"}, {"cat", "qux"}, {"cat", "dog"}} {
		l, err := g.Ladder(word.MustParse(q[0]), word.MustParse(q[1]))
		switch {
		case errors.Is(err, ladder.ErrWordNotFound):
			fmt.Println(q, "-> unknown word")
		case errors.Is(err, ladder.ErrNoPath):
			fmt.Println(q, "-> no ladder")
		default:
			fmt.Println(q, "->", word.Strings(l))
		}
	}
	// Output:
	// [cat cot] -> [cat cot]
	// [cat qux] -> no ladder
	// [cat dog] -> unknown word
}
