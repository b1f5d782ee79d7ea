// Package config loads deckmark's TOML configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// Config is the user-tunable behaviour of the deckmark CLI.
type Config struct {
	// Dialect is the default markup dialect: "html" or "markdown".
	Dialect string `toml:"dialect"`

	Header Header `toml:"header"`
}

// Header controls the header sizing pass.
type Header struct {
	// BaseSize is the body font size headers scale from, in points.
	BaseSize float64 `toml:"base_size"`

	// LevelStep is the per-level size increment, in points.
	LevelStep float64 `toml:"level_step"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Dialect: "markdown",
		Header: Header{
			BaseSize:  18,
			LevelStep: 4,
		},
	}
}

// Path returns the default config file location under the XDG config home.
func Path() string {
	p, err := xdg.ConfigFile("deckmark/config.toml")
	if err != nil {
		return "config.toml"
	}
	return p
}

// Load reads the config at path, layered over the defaults.  A missing file
// is not an error: the defaults are returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Dialect != "html" && cfg.Dialect != "markdown" {
		return cfg, fmt.Errorf("config %s: unknown dialect %q", path, cfg.Dialect)
	}
	return cfg, nil
}
