package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/notewave/internal/timex"
	"gopkg.in/yaml.v3"
)

// fileConfig is a DTO used exclusively for file decoding. Pointer fields let
// a partial file override only the keys it mentions.
type fileConfig struct {
	DBPath      *string         `json:"db_path" yaml:"db_path"`
	LogLevel    *string         `json:"log_level" yaml:"log_level"`
	LogFormat   *string         `json:"log_format" yaml:"log_format"`
	BusyTimeout *timex.Duration `json:"busy_timeout" yaml:"busy_timeout"`
	RecentLimit *int            `json:"recent_limit" yaml:"recent_limit"`
}

// parseFile overlays cfg with values read from path.
func parseFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}

	if fc.DBPath != nil {
		cfg.DBPath = *fc.DBPath
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.LogFormat != nil {
		cfg.LogFormat = *fc.LogFormat
	}
	if fc.BusyTimeout != nil {
		cfg.BusyTimeout = fc.BusyTimeout.Duration
	}
	if fc.RecentLimit != nil {
		cfg.RecentLimit = *fc.RecentLimit
	}
	return nil
}
