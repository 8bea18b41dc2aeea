package word

import "errors"

// MaxLen is the largest number of bytes a Word can hold.
const MaxLen = 8

// Sentinel errors for word parsing.
var (
	// ErrTooLong is returned when a string has more than MaxLen bytes.
	ErrTooLong = errors.New("word: longer than 8 bytes")

	// ErrNullByte is returned when a string contains a NUL byte, which would not round-trip.
	ErrNullByte = errors.New("word: contains a NUL byte")
)

// Word is a string of at most MaxLen bytes packed into an integer,
// one byte per character, most-significant byte first.
// The zero Word is the empty string.
type Word uint64
