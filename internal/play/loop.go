// internal/play/loop.go
//
// Console loop around game.Session.
// Responsibilities:
//   - Ask for the difficulty unless one was preset.
//   - Read guesses line by line, normalize them, and feed the session.
//   - Render feedback, hints, rejections and the final result.
//   - Offer a replay; each replay starts a fresh session (new secret).
//
// EOF on input ends the loop without error.

package play

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/cli/internal/game"
	"github.com/robalobadob/wordle/apps/cli/internal/render"
)

// Options wires the loop's collaborators.
type Options struct {
	In       io.Reader
	Renderer *render.Renderer
	Source   game.WordSource
	Rules    game.Rules
	Rand     game.Rand
	Mode     *game.Mode // nil: prompt each session
}

// Run plays sessions until the player declines a replay or input ends.
func Run(ctx context.Context, opts Options) error {
	if opts.In == nil || opts.Renderer == nil || opts.Source == nil || opts.Rand == nil {
		return errors.New("play: incomplete options")
	}
	p := &player{
		in:   bufio.NewScanner(opts.In),
		r:    opts.Renderer,
		opts: opts,
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		done, err := p.session(ctx)
		if err != nil {
			return err
		}
		if done {
			return nil
		}

		p.r.PromptReplay()
		answer, ok := p.readLine()
		if !ok || strings.ToLower(answer) != "y" {
			p.r.Goodbye()
			return nil
		}
	}
}

type player struct {
	in   *bufio.Scanner
	r    *render.Renderer
	opts Options
}

// readLine returns the next trimmed line; ok is false on EOF or read error.
func (p *player) readLine() (string, bool) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			log.Warn().Err(err).Msg("read input")
		}
		return "", false
	}
	return strings.TrimSpace(p.in.Text()), true
}

func (p *player) chooseMode() (game.Mode, bool) {
	if p.opts.Mode != nil {
		return *p.opts.Mode, true
	}
	p.r.PromptMode()
	choice, ok := p.readLine()
	if !ok {
		return game.Strict, false
	}
	if strings.ToLower(choice) == "e" {
		return game.Relaxed, true
	}
	return game.Strict, true
}

// session plays one session. done reports that input ended mid-session.
func (p *player) session(ctx context.Context) (done bool, err error) {
	mode, ok := p.chooseMode()
	if !ok {
		return true, nil
	}
	s, err := game.NewSession(p.opts.Source, mode, p.opts.Rules, p.opts.Rand)
	if err != nil {
		return false, err
	}
	rules := s.Rules()

	for !s.State().Terminal() {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		p.r.PromptGuess(s.Attempts()+1, rules.MaxAttempts, rules.WordLength)
		line, ok := p.readLine()
		if !ok {
			log.Debug().Str("session", s.ID()).Msg("input closed mid-session")
			return true, nil
		}

		turn, err := s.Submit(strings.ToLower(line))
		if err != nil {
			if errors.Is(err, game.ErrWrongLength) || errors.Is(err, game.ErrNotInDictionary) {
				p.r.Rejected(err, rules.WordLength)
				continue
			}
			return false, err
		}

		p.r.Feedback(turn.Guess, turn.Feedback)
		switch turn.State {
		case game.Won:
			p.r.Won(s.Secret())
		case game.Lost:
			p.r.Lost(turn.Secret)
		default:
			if turn.Hint != 0 {
				p.r.Hint(turn.Hint)
			}
		}
	}
	log.Debug().Str("session", s.ID()).Str("result", s.State().String()).
		Int("attempts", s.Attempts()).Msg("session finished")
	return false, nil
}
