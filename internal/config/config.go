package config

import (
	"fmt"
	"time"
)

// Config holds runtime settings for the NoteWave CLI.
//
// Fields:
//   - DBPath: SQLite file backing the key-value store (":memory:" for a
//     throwaway store).
//   - LogLevel, LogFormat: passed to logging.New.
//   - BusyTimeout: how long SQLite waits on a locked database.
//   - RecentLimit: number of notes shown by the "recent" views.
type Config struct {
	DBPath      string
	LogLevel    string
	LogFormat   string
	BusyTimeout time.Duration
	RecentLimit int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DBPath = "~/.local/share/notewave/notewave.db"
	c.LogLevel = "warn"
	c.LogFormat = "text"
	c.BusyTimeout = 5 * time.Second
	c.RecentLimit = 5
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the config file at path (if path is not empty). Flags are applied
// separately with ApplyFlags once the command line has been parsed.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if path != "" {
		if err := parseFile(cfg, path); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports settings that cannot work at all.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("db path must not be empty")
	}
	if c.BusyTimeout < 0 {
		return fmt.Errorf("busy timeout must not be negative, got %s", c.BusyTimeout)
	}
	if c.RecentLimit <= 0 {
		return fmt.Errorf("recent limit must be positive, got %d", c.RecentLimit)
	}
	return nil
}
