package words

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"testing"
)

func TestStoreAndLoadDB(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "words.db")
	db, err := OpenDB(path)
	if err != nil {
		t.Fatalf("OpenDB() error = %v", err)
	}
	defer db.Close()

	five := NewSet(5, []string{"crane", "slate"})
	n, err := StoreDB(ctx, db, five)
	if err != nil {
		t.Fatalf("StoreDB() error = %v", err)
	}
	if n != 2 {
		t.Fatalf("StoreDB() added %d, want 2", n)
	}

	// Re-import is idempotent; mixed lengths live side by side.
	n, err = StoreDB(ctx, db, NewSet(5, []string{"crane", "trace"}))
	if err != nil || n != 1 {
		t.Fatalf("second StoreDB() = %d, %v; want 1, nil", n, err)
	}
	if _, err := StoreDB(ctx, db, NewSet(4, []string{"word"})); err != nil {
		t.Fatal(err)
	}

	got, err := LoadDB(ctx, db, 5)
	if err != nil {
		t.Fatalf("LoadDB() error = %v", err)
	}
	if want := []string{"crane", "slate", "trace"}; !slices.Equal(got.Words(), want) {
		t.Fatalf("LoadDB() = %v, want %v", got.Words(), want)
	}

	if _, err := LoadDB(ctx, db, 7); !errors.Is(err, ErrEmpty) {
		t.Fatalf("LoadDB(7) error = %v, want ErrEmpty", err)
	}
}

func TestOpenFromDB(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "words.db")
	db, err := OpenDB(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := StoreDB(ctx, db, NewSet(5, []string{"quill"})); err != nil {
		t.Fatal(err)
	}
	db.Close()

	s, err := Open(ctx, Source{DB: path, File: "ignored.txt", Length: 5})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if !s.Contains("quill") || s.Len() != 1 {
		t.Fatalf("Open() = %v", s.Words())
	}
}
