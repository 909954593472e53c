package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

// Config is the root configuration for the engine tooling.
type Config struct {
	Logging   LoggingConfig   `mapstructure:"logging"`
	Game      GameConfig      `mapstructure:"game"`
	Simulator SimulatorConfig `mapstructure:"simulator"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json or console
}

// GameConfig holds the match parameters. End-condition thresholds and pile
// sizes are catalog-dependent configuration, not engine constants.
type GameConfig struct {
	Players        []string       `mapstructure:"players"`
	Seed           int64          `mapstructure:"seed"`
	MaxTurns       int            `mapstructure:"max_turns"`
	EmptyPileLimit int            `mapstructure:"empty_pile_limit"`
	ProvincePile   string         `mapstructure:"province_pile"`
	HandSize       int            `mapstructure:"hand_size"`
	Piles          map[string]int `mapstructure:"piles"`
}

// SimulatorConfig controls the batch simulator.
type SimulatorConfig struct {
	Matches int `mapstructure:"matches"`
}

// Load reads configuration from the given file (optional), environment
// variables prefixed DOMINION_, and built-in defaults, in that order of
// precedence.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("game.players", []string{"Alice", "Bob"})
	v.SetDefault("game.seed", 1)
	v.SetDefault("game.max_turns", 500)
	v.SetDefault("game.empty_pile_limit", 3)
	v.SetDefault("game.hand_size", 5)
	v.SetDefault("simulator.matches", 1)

	v.SetEnvPrefix("DOMINION")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			// A missing default config file is fine; an unreadable or
			// malformed one is not.
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Logging.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("invalid logging format %q", c.Logging.Format)
	}
	if len(c.Game.Players) < 2 {
		return fmt.Errorf("at least 2 players required, got %d", len(c.Game.Players))
	}
	if c.Simulator.Matches < 1 {
		return fmt.Errorf("simulator.matches must be positive, got %d", c.Simulator.Matches)
	}
	return nil
}
