// Package config loads runtime configuration for the NoteWave CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with --config/-c. Files ending in .yaml or
//     .yml are decoded as YAML, anything else as JSON.
//  3. Command-line flags (see RegisterFlags and ApplyFlags), which override
//     earlier values when explicitly set.
//
// # File schema
//
// Durations use timex.Duration, so they can be strings like "5s" or integer
// nanoseconds. Every key is optional:
//
//	{
//	  "db_path": "~/.local/share/notewave/notewave.db",
//	  "log_level": "info",
//	  "log_format": "text",
//	  "busy_timeout": "5s",
//	  "recent_limit": 5
//	}
//
// Note: This package does not read environment variables; use the file or
// flags to configure values.
package config
