package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/teamcutter/brewer/internal/engine"
)

type Config struct {
	BrewPath       string `toml:"brew_path"`
	BrewPrefix     string `toml:"brew_prefix"`
	StatePath      string `toml:"state_path"`
	ExecutablesURL string `toml:"executables_url"`
	AnalyticsURL   string `toml:"analytics_url"`
	Cache          Cache  `toml:"cache"`
}

type Cache struct {
	// AutoUpdate is either "never" or a duration string such as
	// "24h". Empty means the default TTL.
	AutoUpdate string `toml:"auto_update"`
}

// Policy maps the auto_update setting onto an engine cache policy.
func (c Cache) Policy() (engine.CachePolicy, error) {
	value := strings.TrimSpace(c.AutoUpdate)

	switch value {
	case "":
		return engine.ExpireAfter(engine.DefaultTTL), nil
	case "never":
		return engine.NeverExpire(), nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return engine.CachePolicy{}, fmt.Errorf("invalid cache.auto_update %q: %w", value, err)
	}
	if d <= 0 {
		return engine.CachePolicy{}, fmt.Errorf("invalid cache.auto_update %q: must be positive", value)
	}

	return engine.ExpireAfter(d), nil
}

func Default() *Config {
	home, _ := os.UserHomeDir()

	return &Config{
		StatePath: filepath.Join(home, ".cache", "brewer", "state.db"),
	}
}

// Load reads ~/.config/brewer/config.toml when present; a missing
// file just yields the defaults.
func Load() (*Config, error) {
	cfg := Default()

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, nil
	}

	path := filepath.Join(home, ".config", "brewer", "config.toml")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	return cfg, nil
}
