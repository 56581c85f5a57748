package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected func(*Config)
		wantErr  bool
	}{
		{
			name:     "no flags keep loaded values",
			args:     []string{},
			expected: func(c *Config) {},
		},
		{
			name: "explicit flags override",
			args: []string{"-d", "/data/n.db", "--log-level", "debug", "--busy-timeout", "2s", "--recent", "9"},
			expected: func(c *Config) {
				c.DBPath = "/data/n.db"
				c.LogLevel = "debug"
				c.BusyTimeout = 2 * time.Second
				c.RecentLimit = 9
			},
		},
		{
			name:    "invalid recent limit",
			args:    []string{"--recent", "0"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			RegisterFlags(fs)
			require.NoError(t, fs.Parse(tt.args))

			cfg := &Config{}
			cfg.LoadDefaults()
			cfg.LogFormat = "json" // pretend this came from a file

			err := ApplyFlags(cfg, fs)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			want := &Config{}
			want.LoadDefaults()
			want.LogFormat = "json"
			tt.expected(want)
			assert.Empty(t, cmp.Diff(want, cfg))
		})
	}
}
