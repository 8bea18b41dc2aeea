// Package word packs short ASCII strings into fixed-width, comparable keys
// and decides the one-letter adjacency relation between them.
//
// What
//
//   - A Word is a uint64 holding up to MaxLen bytes, most-significant byte first.
//   - Two Words are equal iff their source strings are equal, so a Word can be
//     used directly as a map key or compared with ==.
//   - Numeric order of Words of the same length equals lexicographic order of
//     their strings.
//
// Adjacency
//
//	IsAdjacent(a, b) is true iff a and b have the same length and differ in
//	exactly one character position. It is symmetric and irreflexive, and it
//	never allocates: the comparison walks both keys byte by byte from the
//	last character towards the first.
//
// Limits
//
//   - Encode silently drops the leading bytes of strings longer than MaxLen.
//     Use Parse to reject them with ErrTooLong instead.
//   - A NUL byte cannot round-trip, since a Word's length is recovered by
//     counting its significant bytes. Parse rejects it with ErrNullByte.
//   - Only single-byte alphabets are meaningful; multi-byte UTF-8 sequences are
//     treated as several independent characters.
//
// Usage
//
//	cat := word.MustParse("cat")
//	cot := word.MustParse("cot")
//	word.IsAdjacent(cat, cot) // true
//	cat.String()              // "cat"
package word
