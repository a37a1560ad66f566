// internal/words/words.go
//
// Provides the dictionary (word source) for the game engine.
//
// Responsibilities:
//   - Parse and clean word lists (one word per line, case-insensitive).
//   - Hold an immutable, deduplicated, single-length Set for lookups.
//   - Supply RandomWord for secret selection with an injected random source.
//   - Write cleaned lists back to disk (sorted).
//
// Sources (see Open):
//   1. SQLite database (words.db) when configured, see sqlite.go.
//   2. A plain word file (words.file).
//   3. The embedded default list (default_words.txt).
//
// Constraints:
//   • Words must be exactly the configured length and alphabetic (a–z).
//   • Lists are normalized to lowercase and trimmed.
//   • Blank lines and lines starting with '#' are skipped.

package words

import (
	"bufio"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/cli/internal/game"
)

//go:embed default_words.txt
var embeddedWords string

var (
	ErrNotFound = errors.New("words: word list not found")
	ErrEmpty    = errors.New("words: no usable words")
)

// Set is an immutable dictionary of unique words sharing one length.
type Set struct {
	length int
	list   []string            // sorted
	index  map[string]struct{} // lookup
}

var _ game.WordSource = (*Set)(nil)

// NewSet cleans the given words and keeps those of the given length.
func NewSet(length int, words []string) *Set {
	s := &Set{length: length, index: make(map[string]struct{}, len(words))}
	for _, w := range words {
		w = normalize(w)
		if !valid(w, length) {
			continue
		}
		if _, dup := s.index[w]; dup {
			continue
		}
		s.index[w] = struct{}{}
		s.list = append(s.list, w)
	}
	sort.Strings(s.list)
	return s
}

// Parse reads one word per line from r.
// Returns ErrEmpty if nothing usable survives cleaning.
func Parse(r io.Reader, length int) (*Set, error) {
	var raw []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		raw = append(raw, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	s := NewSet(length, raw)
	if s.Len() == 0 {
		return nil, fmt.Errorf("%w of length %d", ErrEmpty, length)
	}
	return s, nil
}

// LoadFile parses the word file at path.
func LoadFile(path string, length int) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}
	defer f.Close()
	s, err := Parse(f, length)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return s, nil
}

// Embedded returns the built-in list filtered to length.
func Embedded(length int) (*Set, error) {
	return Parse(strings.NewReader(embeddedWords), length)
}

// SaveFile writes the set sorted, one word per line, replacing path.
func SaveFile(path string, s *Set) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	for _, word := range s.list {
		if _, err := w.WriteString(word + "\n"); err != nil {
			_ = f.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Source selects where Open reads the dictionary from.
type Source struct {
	DB     string // SQLite path; wins over File
	File   string // plain word file
	Length int
}

// Open loads the dictionary from the first configured source.
func Open(ctx context.Context, src Source) (*Set, error) {
	var (
		s   *Set
		err error
		via string
	)
	switch {
	case src.DB != "":
		via = "sqlite:" + src.DB
		db, oerr := OpenDB(src.DB)
		if oerr != nil {
			return nil, oerr
		}
		defer db.Close()
		s, err = LoadDB(ctx, db, src.Length)
	case src.File != "":
		via = src.File
		s, err = LoadFile(src.File, src.Length)
	default:
		via = "embedded"
		s, err = Embedded(src.Length)
	}
	if err != nil {
		return nil, err
	}
	log.Info().Str("source", via).Int("words", s.Len()).Int("length", src.Length).Msg("dictionary loaded")
	return s, nil
}

// Contains reports whether w is in the set.
func (s *Set) Contains(w string) bool {
	_, ok := s.index[w]
	return ok
}

// RandomWord returns a word chosen uniformly with r, or "" for an empty set.
func (s *Set) RandomWord(r game.Rand) string {
	if len(s.list) == 0 {
		return ""
	}
	return s.list[r.IntN(len(s.list))]
}

// Len is the number of words in the set.
func (s *Set) Len() int { return len(s.list) }

// Length is the letter count shared by every word.
func (s *Set) Length() int { return s.length }

// Words returns a copy of the sorted word list.
func (s *Set) Words() []string {
	return append([]string(nil), s.list...)
}

func normalize(w string) string { return strings.ToLower(strings.TrimSpace(w)) }

// valid reports whether w is length lowercase ASCII letters.
func valid(w string, length int) bool {
	if len(w) != length {
		return false
	}
	for _, r := range w {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
