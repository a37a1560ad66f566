// internal/render/render.go
//
// Terminal rendering for the console loop.
// Responsibilities:
//   - Color each guessed letter by its mark using an injected Theme.
//   - Print session messages: win, loss (secret revealed), hint, rejections.
//   - Print the prompts used by the console loop.
//
// Notes:
//   - PlainTheme carries no escape codes and adds a legend row (+ ? -) so the
//     feedback stays readable when output is not a terminal.
//   - ForTerminal picks a theme from a ColorMode and wraps the file with
//     go-colorable so ANSI codes work on Windows consoles.

package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/robalobadob/wordle/apps/cli/internal/game"
)

// Theme maps marks and message kinds to escape sequences.
type Theme struct {
	Exact   string
	Present string
	Absent  string
	Win     string
	Loss    string
	Hint    string
	Reset   string
	Legend  bool // print a symbol row under each guess
}

// DefaultTheme is green/yellow/gray tiles with red for a loss.
func DefaultTheme() Theme {
	return Theme{
		Exact:   "\033[92m",
		Present: "\033[93m",
		Absent:  "\033[90m",
		Win:     "\033[92m",
		Loss:    "\033[91m",
		Hint:    "\033[93m",
		Reset:   "\033[0m",
	}
}

// PlainTheme has no colors and a legend row instead.
func PlainTheme() Theme { return Theme{Legend: true} }

// ColorMode decides between DefaultTheme and PlainTheme.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode validates a configured color mode; "" means auto.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(s)); m {
	case "", ColorAuto:
		return ColorAuto, nil
	case ColorAlways, ColorNever:
		return m, nil
	}
	return ColorAuto, fmt.Errorf("unknown color mode %q", s)
}

// Renderer writes human-readable output for one player.
type Renderer struct {
	w     io.Writer
	theme Theme
}

// New returns a Renderer writing to w with theme.
func New(w io.Writer, theme Theme) *Renderer {
	return &Renderer{w: w, theme: theme}
}

// ForTerminal builds a Renderer for f, coloring according to mode.
func ForTerminal(f *os.File, mode ColorMode) *Renderer {
	color := mode == ColorAlways
	if mode == ColorAuto {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	if !color {
		return New(f, PlainTheme())
	}
	return New(colorable.NewColorable(f), DefaultTheme())
}

func (r *Renderer) color(m game.Mark) string {
	switch m {
	case game.MarkExact:
		return r.theme.Exact
	case game.MarkPresent:
		return r.theme.Present
	}
	return r.theme.Absent
}

func legend(m game.Mark) rune {
	switch m {
	case game.MarkExact:
		return '+'
	case game.MarkPresent:
		return '?'
	}
	return '-'
}

// Feedback prints guess with each letter colored by its mark.
func (r *Renderer) Feedback(guess string, fb game.Feedback) {
	var b strings.Builder
	letters := []rune(guess)
	for i, m := range fb {
		if i >= len(letters) {
			break
		}
		b.WriteString(r.color(m))
		b.WriteRune(letters[i])
		b.WriteString(r.theme.Reset)
	}
	b.WriteByte('\n')
	if r.theme.Legend {
		for _, m := range fb {
			b.WriteRune(legend(m))
		}
		b.WriteByte('\n')
	}
	io.WriteString(r.w, b.String())
}

// Won prints the congratulation message.
func (r *Renderer) Won(secret string) {
	fmt.Fprintf(r.w, "%sCongratulations! You've guessed the word '%s' correctly!%s\n",
		r.theme.Win, secret, r.theme.Reset)
}

// Lost reveals the secret.
func (r *Renderer) Lost(secret string) {
	fmt.Fprintf(r.w, "%sSorry, you've used all attempts. The secret word was '%s%s%s%s'.%s\n",
		r.theme.Loss, r.theme.Reset, r.theme.Win, secret, r.theme.Loss, r.theme.Reset)
}

// Hint announces a letter contained in the secret.
func (r *Renderer) Hint(letter rune) {
	fmt.Fprintf(r.w, "%sHint: The secret word contains the letter '%c'.%s\n",
		r.theme.Hint, letter, r.theme.Reset)
}

// Rejected explains why a guess did not count.
func (r *Renderer) Rejected(err error, length int) {
	switch {
	case errors.Is(err, game.ErrWrongLength):
		fmt.Fprintf(r.w, "Guess must be %d letters long.\n", length)
	case errors.Is(err, game.ErrNotInDictionary):
		fmt.Fprintln(r.w, "Word not in dictionary.")
	default:
		fmt.Fprintf(r.w, "Guess rejected: %v\n", err)
	}
}

// PromptMode asks for the difficulty.
func (r *Renderer) PromptMode() {
	fmt.Fprint(r.w, "\nChoose difficulty: (E)asy / (H)ard\n>")
}

// PromptGuess asks for the next guess.
func (r *Renderer) PromptGuess(attempt, max, length int) {
	fmt.Fprintf(r.w, "\nAttempt %d/%d. Enter your %d-letter guess: ", attempt, max, length)
}

// PromptReplay asks whether to start another session.
func (r *Renderer) PromptReplay() {
	fmt.Fprint(r.w, "\nDo you want to play again? (Y/N): ")
}

// Goodbye closes the program.
func (r *Renderer) Goodbye() {
	fmt.Fprintln(r.w, "Thank you for playing! Goodbye!")
}
