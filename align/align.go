package align

// Align is the single entry point used by the CLI, the HTTP service and
// tests. It runs Banded when banded is true and Full otherwise, on the first
// alignLength symbols of each sequence.
//
// Example:
//
//	res, err := align.Align(seq1, seq2, true, 1000)
//	if err != nil {
//	  // ErrEmptySequence or ErrBadAlignLength
//	}
//	if !res.Possible() {
//	  // banded guard: lengths differ by more than MaxLengthDifference
//	}
func Align(seq1, seq2 string, banded bool, alignLength int) (Result, error) {
	if banded {
		return Banded(seq1, seq2, alignLength)
	}
	return Full(seq1, seq2, alignLength)
}

// validate checks the preconditions shared by both engines.
func validate(seq1, seq2 string, alignLength int) error {
	if len(seq1) == 0 || len(seq2) == 0 {
		return ErrEmptySequence
	}
	if alignLength <= 0 {
		return ErrBadAlignLength
	}
	return nil
}

// clip returns the first limit symbols of s.
func clip(s string, limit int) string {
	if len(s) > limit {
		return s[:limit]
	}
	return s
}
