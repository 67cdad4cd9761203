// Package config loads supergrep's optional TOML configuration file.
// Flags override config values; config values override built-in defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config is the on-disk configuration.
type Config struct {
	// Workers is the search pool size. 0 selects the default (one worker
	// per CPU minus one).
	Workers int `toml:"workers"`

	// PDFToText overrides the pdftotext binary name or path.
	PDFToText string `toml:"pdftotext"`

	// Color force-enables or disables coloured output. Unset follows the
	// terminal.
	Color *bool `toml:"color"`
}

// DefaultPath returns ~/.supergrep/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".supergrep", "config.toml"), nil
}

// Load reads the config file at path. A missing file is not an error; it
// yields the zero config.
func Load(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
