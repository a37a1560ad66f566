package game

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Rejection reasons. Both are recoverable: the session does not advance.
var (
	ErrWrongLength     = errors.New("wrong length")
	ErrNotInDictionary = errors.New("not in word list")
)

// Validate checks a guess before it consumes an attempt.
//
// Rules, in order:
//   - the guess must be exactly length letters long (any mode);
//   - in Strict mode the guess must be in dict.
func Validate(guess string, dict Dictionary, mode Mode, length int) error {
	if n := utf8.RuneCountInString(guess); n != length {
		return fmt.Errorf("%w: %q has %d letters, want %d", ErrWrongLength, guess, n, length)
	}
	if mode == Strict && (dict == nil || !dict.Contains(guess)) {
		return fmt.Errorf("%w: %q", ErrNotInDictionary, guess)
	}
	return nil
}
