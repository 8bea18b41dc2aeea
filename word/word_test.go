package word_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/wordladder/word"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEncode_RoundTrip checks that decoding an encoded string gives it back.
func TestEncode_RoundTrip(t *testing.T) {
	for _, s := range []string{"", "a", "dog", "cat", "ladders", "abcdefgh", "A-b_9 ~"} {
		w := word.Encode(s)
		assert.Equal(t, s, w.String(), "round trip of %q", s)
		assert.Equal(t, len(s), w.Len(), "length of %q", s)
	}
}

// TestEncode_RandomRoundTrip runs the round trip over random printable strings of length 0..8.
func TestEncode_RandomRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		b := make([]byte, r.Intn(word.MaxLen+1))
		for j := range b {
			b[j] = byte(1 + r.Intn(126)) // any ASCII byte but NUL
		}
		s := string(b)
		require.Equal(t, s, word.Encode(s).String())
	}
}

// TestEncode_Empty maps the empty string to the zero Word.
func TestEncode_Empty(t *testing.T) {
	assert.Equal(t, word.Word(0), word.Encode(""))
	assert.Equal(t, "", word.Word(0).String())
	assert.Equal(t, 0, word.Word(0).Len())
}

// TestEncode_Layout pins the most-significant-byte-first packing.
func TestEncode_Layout(t *testing.T) {
	assert.Equal(t, word.Word(0x636174), word.Encode("cat"))
}

// TestEncode_Overflow documents the silent truncation of over-long input.
func TestEncode_Overflow(t *testing.T) {
	assert.Equal(t, "bcdefghi", word.Encode("abcdefghi").String())
}

// TestEncode_Equality verifies equal strings give equal words and vice versa.
func TestEncode_Equality(t *testing.T) {
	assert.Equal(t, word.Encode("dog"), word.Encode("dog"))
	assert.NotEqual(t, word.Encode("dog"), word.Encode("cat"))
	assert.NotEqual(t, word.Encode("do"), word.Encode("dog"))
}

// TestEncode_OrderMatchesLexicographic checks the ordering property for same-length words.
func TestEncode_OrderMatchesLexicographic(t *testing.T) {
	assert.Less(t, word.Encode("bat"), word.Encode("cat"))
	assert.Less(t, word.Encode("cog"), word.Encode("cot"))
	assert.Less(t, word.Encode("aaaa"), word.Encode("aaab"))
}

// TestParse_Errors verifies rejection of inputs that cannot round-trip.
func TestParse_Errors(t *testing.T) {
	_, err := word.Parse("abcdefghi")
	assert.ErrorIs(t, err, word.ErrTooLong)

	_, err = word.Parse("a\x00b")
	assert.ErrorIs(t, err, word.ErrNullByte)

	w, err := word.Parse("abcdefgh")
	require.NoError(t, err)
	assert.Equal(t, "abcdefgh", w.String())

	assert.Panics(t, func() { word.MustParse("much-too-long") })
}

// TestStrings decodes a slice preserving order.
func TestStrings(t *testing.T) {
	ws := []word.Word{word.MustParse("cat"), word.MustParse("cot")}
	assert.Equal(t, []string{"cat", "cot"}, word.Strings(ws))
	assert.Equal(t, []string{}, word.Strings(nil))
}
