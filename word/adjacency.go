package word

// IsAdjacent reports whether a and b have the same length and differ in
// exactly one character position.
//
// Both keys are consumed from their last character towards the first. At the
// first mismatching character the remaining leading characters must be
// identical. If either key runs out before a mismatch is seen, the words are
// either equal or of different lengths, and the result is false.
//
// Complexity: O(MaxLen), no allocations.
func IsAdjacent(a, b Word) bool {
	for a > 0 && b > 0 {
		ca, cb := a&0xFF, b&0xFF
		a >>= 8
		b >>= 8
		if ca != cb {
			return a == b
		}
	}

	return false
}

// IsAdjacent is the method form of IsAdjacent(w, o).
func (w Word) IsAdjacent(o Word) bool {
	return IsAdjacent(w, o)
}
