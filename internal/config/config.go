// Package config loads exporter settings from an optional TOML file, with
// built-in defaults suitable for a stock local Anki install.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/CermP/anki-companion/internal/infra/ankiconnect"
)

// Config holds the settings the exporter reads at startup. Flags override
// whatever the file provides.
type Config struct {
	// AnkiURL is the AnkiConnect endpoint.
	AnkiURL string `toml:"anki_url"`
	// TimeoutSeconds bounds each AnkiConnect request; zero waits forever.
	TimeoutSeconds int `toml:"timeout_seconds"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		AnkiURL:        ankiconnect.DefaultURL,
		TimeoutSeconds: 30,
	}
}

// DefaultPath is where Load looks when no explicit path is given.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "anki-companion", "config.toml")
}

// Load reads the TOML file at path, falling back to DefaultPath when path is
// empty. A missing file is not an error: defaults apply. A present but
// unreadable or invalid file is an error, so a typo never silently reverts
// the endpoint.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}

	if cfg.AnkiURL == "" {
		cfg.AnkiURL = ankiconnect.DefaultURL
	}
	if cfg.TimeoutSeconds < 0 {
		cfg.TimeoutSeconds = 0
	}
	return cfg, nil
}

// Timeout converts the configured request timeout into a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
