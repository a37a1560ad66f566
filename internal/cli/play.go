package cli

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/cli/internal/daily"
	"github.com/robalobadob/wordle/apps/cli/internal/play"
	"github.com/robalobadob/wordle/apps/cli/internal/render"
	"github.com/robalobadob/wordle/apps/cli/internal/words"
)

func addPlayFlags(cmd *cobra.Command, a *app) {
	f := cmd.Flags()
	f.String("mode", "", "difficulty: strict (hard) or relaxed (easy); prompts when empty")
	f.String("color", "", "color output: auto, always, never")
	f.Int("attempts", 0, "maximum number of guesses")
	f.Uint64Var(&a.seed, "seed", 0, "seed the random source for a reproducible game")
	f.BoolVar(&a.daily, "daily", false, "same secret for everyone today")
	_ = a.v.BindPFlag("game.mode", f.Lookup("mode"))
	_ = a.v.BindPFlag("ui.color", f.Lookup("color"))
	_ = a.v.BindPFlag("game.max_attempts", f.Lookup("attempts"))
}

func (a *app) runPlay(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	src, err := words.Open(ctx, words.Source{
		DB:     a.cfg.Words.DB,
		File:   a.cfg.Words.File,
		Length: a.cfg.Game.WordLength,
	})
	if err != nil {
		return fmt.Errorf("load words: %w", err)
	}

	colorMode, _ := render.ParseColorMode(a.cfg.UI.Color)
	return play.Run(ctx, play.Options{
		In:       cmd.InOrStdin(),
		Renderer: newRenderer(cmd.OutOrStdout(), colorMode),
		Source:   src,
		Rules:    a.cfg.Rules(),
		Rand:     a.newRand(time.Now(), cmd.Flags().Changed("seed")),
		Mode:     a.cfg.PresetMode(),
	})
}

// newRand picks the random source: explicit seed, daily seed, or entropy.
func (a *app) newRand(now time.Time, seeded bool) *rand.Rand {
	switch {
	case seeded:
		log.Debug().Uint64("seed", a.seed).Msg("seeded random source")
		return rand.New(rand.NewPCG(a.seed, a.seed))
	case a.daily:
		log.Debug().Str("date", daily.DateKey(now)).Msg("daily random source")
		return daily.Rand(now, a.cfg.Daily.Salt)
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// newRenderer uses terminal detection for real files and the mode alone otherwise.
func newRenderer(w io.Writer, mode render.ColorMode) *render.Renderer {
	if f, ok := w.(*os.File); ok {
		return render.ForTerminal(f, mode)
	}
	if mode == render.ColorAlways {
		return render.New(w, render.DefaultTheme())
	}
	return render.New(w, render.PlainTheme())
}
