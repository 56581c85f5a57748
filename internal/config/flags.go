package config

import (
	"github.com/spf13/pflag"
)

// Flag names shared by RegisterFlags and ApplyFlags.
const (
	FlagConfig      = "config"
	FlagDBPath      = "db"
	FlagLogLevel    = "log-level"
	FlagLogFormat   = "log-format"
	FlagBusyTimeout = "busy-timeout"
	FlagRecent      = "recent"
)

// RegisterFlags declares the configuration flags on fs. Defaults shown in
// help come from (*Config).LoadDefaults.
func RegisterFlags(fs *pflag.FlagSet) {
	var d Config
	d.LoadDefaults()

	fs.StringP(FlagConfig, "c", "", "path to a JSON or YAML config file")
	fs.StringP(FlagDBPath, "d", d.DBPath, "path to the SQLite database")
	fs.String(FlagLogLevel, d.LogLevel, "log level (debug, info, warn, error)")
	fs.String(FlagLogFormat, d.LogFormat, "log format (text, json)")
	fs.Duration(FlagBusyTimeout, d.BusyTimeout, "how long to wait on a locked database")
	fs.Int(FlagRecent, d.RecentLimit, "number of notes in recent views")
}

// ApplyFlags copies every flag the user set explicitly onto cfg. Flags left
// at their defaults do not override values loaded from a file.
func ApplyFlags(cfg *Config, fs *pflag.FlagSet) error {
	var err error

	if fs.Changed(FlagDBPath) {
		if cfg.DBPath, err = fs.GetString(FlagDBPath); err != nil {
			return err
		}
	}
	if fs.Changed(FlagLogLevel) {
		if cfg.LogLevel, err = fs.GetString(FlagLogLevel); err != nil {
			return err
		}
	}
	if fs.Changed(FlagLogFormat) {
		if cfg.LogFormat, err = fs.GetString(FlagLogFormat); err != nil {
			return err
		}
	}
	if fs.Changed(FlagBusyTimeout) {
		if cfg.BusyTimeout, err = fs.GetDuration(FlagBusyTimeout); err != nil {
			return err
		}
	}
	if fs.Changed(FlagRecent) {
		if cfg.RecentLimit, err = fs.GetInt(FlagRecent); err != nil {
			return err
		}
	}

	return cfg.Validate()
}
