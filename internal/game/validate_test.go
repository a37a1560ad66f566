package game

import (
	"errors"
	"testing"
)

type setDict map[string]bool

func (d setDict) Contains(w string) bool { return d[w] }

func TestValidate(t *testing.T) {
	t.Parallel()

	dict := setDict{"crane": true, "slate": true}
	tests := []struct {
		name  string
		guess string
		mode  Mode
		want  error
	}{
		{"strict dictionary word", "crane", Strict, nil},
		{"strict unknown word", "zzzzz", Strict, ErrNotInDictionary},
		{"relaxed unknown word", "zzzzz", Relaxed, nil},
		{"too short strict", "cran", Strict, ErrWrongLength},
		{"too short relaxed", "cran", Relaxed, ErrWrongLength},
		{"too long relaxed", "cranes", Relaxed, ErrWrongLength},
		{"empty", "", Relaxed, ErrWrongLength},
		{"length checked before dictionary", "cranes", Strict, ErrWrongLength},
		{"multibyte counted as letters", "héllo", Relaxed, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := Validate(tt.guess, dict, tt.mode, 5)
			if tt.want == nil {
				if err != nil {
					t.Fatalf("Validate(%q) error = %v, want nil", tt.guess, err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("Validate(%q) error = %v, want %v", tt.guess, err, tt.want)
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]Mode{"strict": Strict, "hard": Strict, "h": Strict, "relaxed": Relaxed, "easy": Relaxed, "e": Relaxed} {
		got, err := ParseMode(in)
		if err != nil || got != want {
			t.Fatalf("ParseMode(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseMode("nightmare"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}
