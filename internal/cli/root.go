package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/robalobadob/wordle/apps/cli/internal/config"
)

// Version is stamped at build time with -ldflags "-X .../internal/cli.Version=...".
var Version = "dev"

// app carries state shared by every command of one invocation.
type app struct {
	v          *viper.Viper
	cfg        *config.Config
	configPath string

	// play flags
	seed  uint64
	daily bool
}

func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	cmd := &cobra.Command{
		Use:           "wordle",
		Short:         "Guess the hidden word in a limited number of attempts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
		RunE: a.runPlay,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/wordle/config.yaml)")
	pf.String("log-level", "", "log level (debug, info, warn, error)")
	pf.String("words", "", "word list file, one word per line")
	pf.String("db", "", "SQLite dictionary database")
	pf.Int("length", 0, "letters per word")
	_ = a.v.BindPFlag("log.level", pf.Lookup("log-level"))
	_ = a.v.BindPFlag("words.file", pf.Lookup("words"))
	_ = a.v.BindPFlag("words.db", pf.Lookup("db"))
	_ = a.v.BindPFlag("game.word_length", pf.Lookup("length"))

	addPlayFlags(cmd, a)

	cmd.AddCommand(newCleanCmd(a))
	cmd.AddCommand(newImportCmd(a))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// load reads configuration once flags are parsed and applies the log level.
func (a *app) load() error {
	cfg, err := config.Load(a.v, a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	if lvl, err := zerolog.ParseLevel(cfg.Log.Level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	} else {
		log.Warn().Str("level", cfg.Log.Level).Msg("unknown log level, keeping default")
	}
	return nil
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		log.Error().Err(err).Msg("wordle exited")
		os.Exit(1)
	}
}
