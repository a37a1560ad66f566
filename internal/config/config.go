package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/robalobadob/wordle/apps/cli/internal/game"
	"github.com/robalobadob/wordle/apps/cli/internal/render"
)

type Config struct {
	Game  GameConfig  `mapstructure:"game"`
	Words WordsConfig `mapstructure:"words"`
	Daily DailyConfig `mapstructure:"daily"`
	UI    UIConfig    `mapstructure:"ui"`
	Log   LogConfig   `mapstructure:"log"`
}

type GameConfig struct {
	WordLength    int    `mapstructure:"word_length"`
	MaxAttempts   int    `mapstructure:"max_attempts"`
	HintThreshold int    `mapstructure:"hint_threshold"`
	Mode          string `mapstructure:"mode"`
}

type WordsConfig struct {
	File string `mapstructure:"file"`
	DB   string `mapstructure:"db"`
}

type DailyConfig struct {
	Salt string `mapstructure:"salt"`
}

type UIConfig struct {
	Color string `mapstructure:"color"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// EnvPrefix namespaces environment overrides, e.g. WORDLE_GAME_MAX_ATTEMPTS.
const EnvPrefix = "WORDLE"

// SetDefaults registers every key so env overrides work without a config file.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("game.word_length", 5)
	v.SetDefault("game.max_attempts", 6)
	v.SetDefault("game.hint_threshold", 3)
	v.SetDefault("game.mode", "")
	v.SetDefault("words.file", "")
	v.SetDefault("words.db", "")
	v.SetDefault("daily.salt", "local_dev_salt")
	v.SetDefault("ui.color", string(render.ColorAuto))
	v.SetDefault("log.level", "warn")
}

// Load reads configuration into v. An explicit path must exist; otherwise the
// default location ($XDG_CONFIG_HOME/wordle/config.yaml) is optional.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "wordle"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the game cannot run with.
func (c *Config) Validate() error {
	if c.Game.WordLength < 1 {
		return fmt.Errorf("game.word_length must be positive")
	}
	if c.Game.MaxAttempts < 1 {
		return fmt.Errorf("game.max_attempts must be positive")
	}
	if c.Game.HintThreshold < 0 {
		return fmt.Errorf("game.hint_threshold must not be negative")
	}
	if c.Game.Mode != "" {
		if _, err := game.ParseMode(strings.ToLower(c.Game.Mode)); err != nil {
			return fmt.Errorf("game.mode: %w", err)
		}
	}
	if _, err := render.ParseColorMode(c.UI.Color); err != nil {
		return fmt.Errorf("ui.color: %w", err)
	}
	return nil
}

// Rules converts the game section for the engine.
func (c *Config) Rules() game.Rules {
	return game.Rules{
		WordLength:    c.Game.WordLength,
		MaxAttempts:   c.Game.MaxAttempts,
		HintThreshold: c.Game.HintThreshold,
	}
}

// PresetMode returns the configured mode, or nil when the player should be asked.
func (c *Config) PresetMode() *game.Mode {
	if c.Game.Mode == "" {
		return nil
	}
	m, err := game.ParseMode(strings.ToLower(c.Game.Mode))
	if err != nil {
		return nil
	}
	return &m
}
