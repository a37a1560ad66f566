// internal/game/engine.go
//
// Core game engine for a single session.
// Responsibilities:
//   - Pick the secret word once, from an injected word source and random source.
//   - Validate and apply guesses (length, dictionary in strict mode).
//   - Score guesses with the two-pass algorithm (score.go).
//   - Track state transitions: playing → won/lost, plus the one-shot hint.
//
// Notes:
//   - A Session is not safe for concurrent use; play is turn based.
//   - Rejected guesses never consume an attempt.
package game

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrGameOver        = errors.New("game finished")
	ErrEmptyDictionary = errors.New("word source is empty")
)

// Session holds the state of one play-through, from secret selection to won/lost.
type Session struct {
	id         string
	secret     string
	src        WordSource
	mode       Mode
	rules      Rules
	rng        Rand
	attempts   int
	state      State
	hintIssued bool
}

// NewSession chooses a secret from src and returns a session awaiting its first guess.
func NewSession(src WordSource, mode Mode, rules Rules, rng Rand) (*Session, error) {
	if err := rules.validate(); err != nil {
		return nil, err
	}
	if src == nil || src.Len() == 0 {
		return nil, ErrEmptyDictionary
	}
	if rng == nil {
		return nil, errors.New("game: nil random source")
	}
	secret := src.RandomWord(rng)
	if n := utf8.RuneCountInString(secret); n != rules.WordLength {
		return nil, fmt.Errorf("game: secret has %d letters, rules want %d", n, rules.WordLength)
	}

	s := &Session{
		id:     uuid.NewString(),
		secret: secret,
		src:    src,
		mode:   mode,
		rules:  rules,
		rng:    rng,
		state:  AwaitingGuess,
	}
	log.Debug().Str("session", s.id).Str("mode", mode.String()).
		Int("maxAttempts", rules.MaxAttempts).Msg("session started")
	return s, nil
}

// Submit validates and scores a guess, mutating the session state.
//
// A rejected guess returns ErrWrongLength or ErrNotInDictionary (wrapped) and
// leaves the session untouched. Once the session is won or lost every call
// returns ErrGameOver.
//
// Order of checks after scoring: win, then loss, then hint. Winning or losing
// on the threshold attempt therefore suppresses the hint.
func (s *Session) Submit(guess string) (Turn, error) {
	if s.state.Terminal() {
		return Turn{State: s.state, Attempt: s.attempts}, ErrGameOver
	}
	if err := Validate(guess, s.src, s.mode, s.rules.WordLength); err != nil {
		log.Debug().Str("session", s.id).Err(err).Msg("guess rejected")
		return Turn{State: s.state, Attempt: s.attempts}, err
	}

	fb := Score(s.secret, guess)
	s.attempts++
	turn := Turn{Guess: guess, Feedback: fb, Attempt: s.attempts}

	switch {
	case guess == s.secret:
		s.state = Won
	case s.attempts >= s.rules.MaxAttempts:
		s.state = Lost
		turn.Secret = s.secret
	case s.rules.HintThreshold > 0 && s.attempts == s.rules.HintThreshold && !s.hintIssued:
		turn.Hint = s.pickHint(guess)
		s.hintIssued = true
	}
	turn.State = s.state

	ev := log.Debug().Str("session", s.id).Int("attempt", s.attempts).Str("state", s.state.String())
	if turn.Hint != 0 {
		ev = ev.Str("hint", string(turn.Hint))
	}
	ev.Msg("guess scored")
	return turn, nil
}

// pickHint returns a random distinct secret letter missing from guess, or 0
// when the guess already covers every secret letter.
func (s *Session) pickHint(guess string) rune {
	var candidates []rune
	seen := make(map[rune]bool)
	for _, r := range s.secret {
		if seen[r] || strings.ContainsRune(guess, r) {
			continue
		}
		seen[r] = true
		candidates = append(candidates, r)
	}
	if len(candidates) == 0 {
		return 0
	}
	return candidates[s.rng.IntN(len(candidates))]
}

// ID is a random identifier used to correlate log lines.
func (s *Session) ID() string { return s.id }

// State reports the current lifecycle state.
func (s *Session) State() State { return s.state }

// Attempts is the number of validated guesses made so far.
func (s *Session) Attempts() int { return s.attempts }

// Remaining is the number of validated guesses still allowed.
func (s *Session) Remaining() int { return s.rules.MaxAttempts - s.attempts }

// Mode reports the difficulty the session was created with.
func (s *Session) Mode() Mode { return s.mode }

// Rules reports the session dimensions.
func (s *Session) Rules() Rules { return s.rules }

// HintIssued reports whether the hint round has already happened.
func (s *Session) HintIssued() bool { return s.hintIssued }

// Secret returns the secret word once the session is over, "" while playing.
func (s *Session) Secret() string {
	if !s.state.Terminal() {
		return ""
	}
	return s.secret
}
