// internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - Mark/Feedback: per-letter result of a guess (exact/present/absent).
//   - Mode: difficulty (strict dictionary checks or relaxed).
//   - State: session lifecycle (awaiting guess → won/lost).
//   - Rules: board dimensions and hint timing.
//   - WordSource/Rand: collaborators injected into a Session.

package game

import "fmt"

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "exact":   letter is correct and in the correct position.
//   - "present": letter exists in the secret at another, unconsumed position.
//   - "absent":  letter matches no remaining secret letter.
type Mark string

const (
	MarkExact   Mark = "exact"
	MarkPresent Mark = "present"
	MarkAbsent  Mark = "absent"
)

// Feedback is the ordered list of marks for one guess, one per position.
type Feedback []Mark

// Solved reports whether every position is an exact match.
func (f Feedback) Solved() bool {
	if len(f) == 0 {
		return false
	}
	for _, m := range f {
		if m != MarkExact {
			return false
		}
	}
	return true
}

// Mode selects how strictly guesses are validated.
type Mode int

const (
	// Strict requires every guess to be a dictionary word.
	Strict Mode = iota
	// Relaxed accepts any guess of the right length.
	Relaxed
)

func (m Mode) String() string {
	switch m {
	case Strict:
		return "strict"
	case Relaxed:
		return "relaxed"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode maps a name to a Mode. "hard" and "easy" are accepted as aliases.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "strict", "hard", "h":
		return Strict, nil
	case "relaxed", "easy", "e":
		return Relaxed, nil
	}
	return Strict, fmt.Errorf("unknown mode %q", s)
}

// State is the coarse lifecycle of a session.
type State int

const (
	AwaitingGuess State = iota
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case AwaitingGuess:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Terminal reports whether no further guesses are accepted.
func (s State) Terminal() bool { return s == Won || s == Lost }

// Rules holds the fixed dimensions of a session.
type Rules struct {
	WordLength    int // letters per word (L)
	MaxAttempts   int // validated guesses allowed
	HintThreshold int // attempt count that triggers the hint; 0 disables it
}

// DefaultRules returns the classic 6x5 board with a hint after the third guess.
func DefaultRules() Rules {
	return Rules{WordLength: 5, MaxAttempts: 6, HintThreshold: 3}
}

func (r Rules) validate() error {
	if r.WordLength < 1 {
		return fmt.Errorf("game: word length must be positive, got %d", r.WordLength)
	}
	if r.MaxAttempts < 1 {
		return fmt.Errorf("game: max attempts must be positive, got %d", r.MaxAttempts)
	}
	if r.HintThreshold < 0 {
		return fmt.Errorf("game: hint threshold must not be negative, got %d", r.HintThreshold)
	}
	return nil
}

// Rand is the subset of *math/rand/v2.Rand used by the engine.
type Rand interface {
	IntN(n int) int
}

// Dictionary answers membership queries for guess validation.
type Dictionary interface {
	Contains(word string) bool
}

// WordSource supplies the secret word and the dictionary for a session.
type WordSource interface {
	Dictionary
	// RandomWord returns a word drawn uniformly from the source using r.
	RandomWord(r Rand) string
	// Len is the number of words in the source.
	Len() int
}

// Turn is what a single accepted guess produces.
type Turn struct {
	Guess    string
	Feedback Feedback
	State    State
	Attempt  int    // attempts used after this guess
	Hint     rune   // non-zero when a hint letter was issued on this turn
	Secret   string // revealed only when State == Lost
}
