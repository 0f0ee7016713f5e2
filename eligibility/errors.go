package eligibility

import "errors"

// ErrUnsupportedWordBits indicates a bitmask was requested with a word size
// other than 32 or 64 bits.
var ErrUnsupportedWordBits = errors.New("eligibility: word bits must be 32 or 64")
