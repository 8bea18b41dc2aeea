package word

import (
	"fmt"
	"math/bits"
	"strings"
)

// Encode folds the bytes of s, left to right, into a Word.
// Strings longer than MaxLen lose their leading bytes; use Parse to reject them.
func Encode(s string) Word {
	var acc Word
	for i := 0; i < len(s); i++ {
		acc = acc<<8 + Word(s[i])
	}

	return acc
}

// Parse encodes s, returning ErrTooLong or ErrNullByte when s cannot be
// represented faithfully.
func Parse(s string) (Word, error) {
	if len(s) > MaxLen {
		return 0, fmt.Errorf("%w: %q has %d bytes", ErrTooLong, s, len(s))
	}
	if strings.IndexByte(s, 0) >= 0 {
		return 0, fmt.Errorf("%w: %q", ErrNullByte, s)
	}

	return Encode(s), nil
}

// MustParse is like Parse but panics on error.
// It simplifies initialization of literals and test fixtures.
func MustParse(s string) Word {
	w, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return w
}

// String decodes w back into the string it was encoded from.
func (w Word) String() string {
	var buf [MaxLen]byte
	i := MaxLen
	for n := uint64(w); n > 0; n >>= 8 {
		i--
		buf[i] = byte(n & 0xFF)
	}

	return string(buf[i:])
}

// Len reports the number of characters in w.
func (w Word) Len() int {
	return (bits.Len64(uint64(w)) + 7) / 8
}

// Strings decodes every Word in ws, preserving order.
// A nil or empty input yields an empty, non-nil slice.
func Strings(ws []Word) []string {
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = w.String()
	}

	return out
}
