package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"github.com/robalobadob/wordle/apps/cli/internal/game"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load(viper.New(), "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := cfg.Rules(); got != game.DefaultRules() {
		t.Fatalf("Rules() = %+v, want %+v", got, game.DefaultRules())
	}
	if cfg.PresetMode() != nil {
		t.Fatal("no mode should be preset by default")
	}
	if cfg.UI.Color != "auto" || cfg.Log.Level != "warn" {
		t.Fatalf("ui/log defaults = %q/%q", cfg.UI.Color, cfg.Log.Level)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "game:\n  max_attempts: 8\n  mode: easy\nwords:\n  file: /tmp/words.txt\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("WORDLE_GAME_HINT_THRESHOLD", "4")

	cfg, err := Load(viper.New(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Game.MaxAttempts != 8 || cfg.Game.HintThreshold != 4 || cfg.Words.File != "/tmp/words.txt" {
		t.Fatalf("cfg = %+v", cfg)
	}
	if m := cfg.PresetMode(); m == nil || *m != game.Relaxed {
		t.Fatalf("PresetMode() = %v, want relaxed", m)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	base := func() Config {
		return Config{
			Game: GameConfig{WordLength: 5, MaxAttempts: 6, HintThreshold: 3},
			UI:   UIConfig{Color: "auto"},
		}
	}
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero length", func(c *Config) { c.Game.WordLength = 0 }},
		{"zero attempts", func(c *Config) { c.Game.MaxAttempts = 0 }},
		{"negative threshold", func(c *Config) { c.Game.HintThreshold = -1 }},
		{"unknown mode", func(c *Config) { c.Game.Mode = "nightmare" }},
		{"unknown color", func(c *Config) { c.UI.Color = "rainbow" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := base()
			tt.mutate(&c)
			if err := c.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}

	ok := base()
	if err := ok.Validate(); err != nil {
		t.Fatalf("base config invalid: %v", err)
	}
}
