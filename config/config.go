package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/BurntSushi/toml"
)

const (
	FormatTree = "tree"
	FormatCool = "cool"
	FormatYAML = "yaml"
)

// Config holds the coolparse driver configuration
type Config struct {
	Parser ParserConfig `toml:"parser"`
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`
}

// ParserConfig holds parser settings
type ParserConfig struct {
	MaxErrors int `toml:"max_errors"`
}

// OutputConfig controls how parsed programs are printed
type OutputConfig struct {
	Format string `toml:"format"`
	Color  bool   `toml:"color"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML file.  An empty path or a missing
// file yields the default configuration.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	path = os.ExpandEnv(path)

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults sets default values for missing configuration.  An omitted
// (zero) max_errors takes the default limit.
func (c *Config) applyDefaults() {
	if c.Parser.MaxErrors == 0 {
		c.Parser.MaxErrors = 50
	}
	if c.Output.Format == "" {
		c.Output.Format = FormatTree
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate checks the configuration for unsupported values
func (c *Config) Validate() error {
	if c.Parser.MaxErrors <= 0 {
		return fmt.Errorf("parser.max_errors must be positive: %d", c.Parser.MaxErrors)
	}

	switch c.Output.Format {
	case FormatTree, FormatCool, FormatYAML:
	default:
		return fmt.Errorf("unsupported output.format: %q", c.Output.Format)
	}

	if _, err := c.SlogLevel(); err != nil {
		return err
	}

	return nil
}

// SlogLevel converts log.level into a slog level
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log.level: %w", err)
	}
	return level, nil
}
