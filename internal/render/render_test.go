package render

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/robalobadob/wordle/apps/cli/internal/game"
)

func TestFeedbackPlainLegend(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := New(&buf, PlainTheme())
	r.Feedback("aecdb", game.Score("abcde", "aecdb"))

	if got, want := buf.String(), "aecdb\n+?++?\n"; got != want {
		t.Fatalf("Feedback() = %q, want %q", got, want)
	}
}

func TestFeedbackColors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	th := DefaultTheme()
	r := New(&buf, th)
	r.Feedback("tb", game.Feedback{game.MarkExact, game.MarkAbsent})

	want := th.Exact + "t" + th.Reset + th.Absent + "b" + th.Reset + "\n"
	if got := buf.String(); got != want {
		t.Fatalf("Feedback() = %q, want %q", got, want)
	}
}

func TestLostClosesColor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	th := DefaultTheme()
	New(&buf, th).Lost("crane")

	out := strings.TrimSuffix(buf.String(), "\n")
	if !strings.Contains(out, "'"+th.Reset+th.Win+"crane") {
		t.Fatalf("secret not highlighted: %q", out)
	}
	if !strings.HasSuffix(out, th.Reset) {
		t.Fatalf("loss message leaves color open: %q", out)
	}
}

func TestRejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("%w: x", game.ErrWrongLength), "Guess must be 5 letters long.\n"},
		{fmt.Errorf("%w: x", game.ErrNotInDictionary), "Word not in dictionary.\n"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		New(&buf, PlainTheme()).Rejected(tt.err, 5)
		if buf.String() != tt.want {
			t.Fatalf("Rejected(%v) = %q, want %q", tt.err, buf.String(), tt.want)
		}
	}
}

func TestHintAndWon(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := New(&buf, PlainTheme())
	r.Hint('r')
	r.Won("crane")
	want := "Hint: The secret word contains the letter 'r'.\n" +
		"Congratulations! You've guessed the word 'crane' correctly!\n"
	if buf.String() != want {
		t.Fatalf("output = %q", buf.String())
	}
}

func TestParseColorMode(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]ColorMode{"": ColorAuto, "auto": ColorAuto, "ALWAYS": ColorAlways, "never": ColorNever} {
		got, err := ParseColorMode(in)
		if err != nil || got != want {
			t.Fatalf("ParseColorMode(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseColorMode("rainbow"); err == nil {
		t.Fatal("expected error")
	}
}
