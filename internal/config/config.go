// Package config holds the settings of one shut invocation. Values come from
// the environment first and are then overridden by command-line flags.
package config

import (
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// LogEnv selects the log verbosity.
	LogEnv = "SHUT_LOG"
	// LegacyLogEnv is read when LogEnv is unset.
	LegacyLogEnv = "RUST_LOG"
	NoColorEnv   = "NO_COLOR"
)

const (
	DefaultProbeTimeout = 500 * time.Millisecond
	// DefaultWidth bounds command lines in log lines, in terminal cells.
	DefaultWidth = 120
)

type Config struct {
	LogLevel     zerolog.Level
	ProbeTimeout time.Duration
	// AllMatches merges the owners of every socket bound to the port instead
	// of only the first one found.
	AllMatches bool
	DryRun     bool
	Color      bool
	Width      int

	// Warnings collects problems found while building the config. They are
	// logged once a logger exists.
	Warnings []string
}

func Default() Config {
	return Config{
		LogLevel:     zerolog.InfoLevel,
		ProbeTimeout: DefaultProbeTimeout,
		Color:        true,
		Width:        DefaultWidth,
	}
}

// FromEnv builds a Config from the defaults and the environment, as seen
// through lookup (os.LookupEnv in production).
func FromEnv(lookup func(string) (string, bool)) Config {
	cfg := Default()

	level, ok := lookup(LogEnv)
	if !ok {
		level, ok = lookup(LegacyLogEnv)
	}
	if ok && strings.TrimSpace(level) != "" {
		cfg.SetLogLevel(level)
	}

	if _, ok := lookup(NoColorEnv); ok {
		cfg.Color = false
	}
	return cfg
}

// SetLogLevel parses a level name such as "debug". Unknown names leave the
// level unchanged and record a warning.
func (c *Config) SetLogLevel(name string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil || lvl == zerolog.NoLevel {
		c.Warnings = append(c.Warnings, "unknown log level "+strings.TrimSpace(name)+", using "+c.LogLevel.String())
		return
	}
	c.LogLevel = lvl
}
