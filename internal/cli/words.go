package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/cli/internal/words"
)

func newCleanCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clean [file]",
		Short: "Normalize a word list in place (lowercase, dedupe, fixed length, sorted)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfg.Words.File
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				return errors.New("no word file given (argument, --words or words.file)")
			}
			s, err := words.LoadFile(path, a.cfg.Game.WordLength)
			if err != nil {
				return err
			}
			if err := words.SaveFile(path, s); err != nil {
				return fmt.Errorf("save %s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleaned word dictionary saved to %s (%d words)\n", path, s.Len())
			return nil
		},
	}
}

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import",
		Short: "Copy the word list (or the built-in one) into the SQLite dictionary",
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.Words.DB == "" {
				return errors.New("no database given (--db or words.db)")
			}
			src, err := words.Open(cmd.Context(), words.Source{File: a.cfg.Words.File, Length: a.cfg.Game.WordLength})
			if err != nil {
				return err
			}
			db, err := words.OpenDB(a.cfg.Words.DB)
			if err != nil {
				return err
			}
			defer db.Close()

			added, err := words.StoreDB(cmd.Context(), db, src)
			if err != nil {
				return fmt.Errorf("import into %s: %w", a.cfg.Words.DB, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d new words into %s (%d read)\n", added, a.cfg.Words.DB, src.Len())
			return nil
		},
	}
}
