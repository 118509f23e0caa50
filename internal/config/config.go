// Package config resolves tincture settings from defaults, environment
// variables and command-line flags, in that order of precedence.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/tincture/pkg/entropy"
	"github.com/jmylchreest/tincture/pkg/harmony"
	"github.com/jmylchreest/tincture/pkg/variation"
)

// Environment variables read by Load.
const (
	EnvSeed     = "TINCTURE_SEED"
	EnvScheme   = "TINCTURE_SCHEME"
	EnvTheme    = "TINCTURE_THEME"
	EnvFormat   = "TINCTURE_FORMAT"
	EnvLogLevel = "TINCTURE_LOG_LEVEL"
	EnvNoColour = "NO_COLOR"
)

// Flag names registered by RegisterFlags.
const (
	FlagSeed     = "seed"
	FlagScheme   = "scheme"
	FlagTheme    = "theme"
	FlagFormat   = "format"
	FlagLogLevel = "log-level"
	FlagVerbose  = "verbose"
	FlagQuiet    = "quiet"
	FlagNoColour = "no-color"
)

// Format selects how command output is rendered.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatText, "":
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return FormatText, fmt.Errorf("invalid format: %s (valid: text, json)", s)
	}
}

// Config holds resolved settings.
type Config struct {
	Seed     entropy.Config
	Scheme   harmony.Scheme
	Theme    variation.ThemePreference
	Format   Format
	LogLevel hclog.Level
	// Colour enables ANSI swatches when the output is a terminal.
	Colour bool
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Seed:     entropy.Config{Mode: entropy.ModeRandom},
		Scheme:   harmony.Random,
		Theme:    variation.ThemeRandom,
		Format:   FormatText,
		LogLevel: hclog.Warn,
		Colour:   true,
	}
}

// RegisterFlags adds the configuration flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(FlagSeed, "", "seed: random, content, or an unsigned integer")
	fs.String(FlagScheme, "", "harmony scheme (monochromatic, analogous, complementary, triadic, tetradic, split-complementary, random)")
	fs.StringP(FlagTheme, "t", "", "background theme (light, dark, random)")
	fs.StringP(FlagFormat, "f", "", "output format (text, json)")
	fs.String(FlagLogLevel, "", "log level (trace, debug, info, warn, error, off)")
	fs.BoolP(FlagVerbose, "v", false, "enable verbose output")
	fs.BoolP(FlagQuiet, "q", false, "suppress non-error output")
	fs.Bool(FlagNoColour, false, "disable ANSI colour swatches")
}

// LookupFunc reads an environment variable.
type LookupFunc func(key string) (string, bool)

// Load resolves the configuration: defaults, then environment variables
// from lookup, then flags in fs that were set explicitly. A nil lookup
// reads the process environment; a nil fs skips flags.
func Load(fs *pflag.FlagSet, lookup LookupFunc) (Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	cfg := Default()
	if err := cfg.applyEnv(lookup); err != nil {
		return cfg, err
	}
	if fs != nil {
		if err := cfg.applyFlags(fs); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup LookupFunc) error {
	if v, ok := lookup(EnvSeed); ok && v != "" {
		if err := c.setSeed(v); err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
	}
	if v, ok := lookup(EnvScheme); ok && v != "" {
		if err := c.setScheme(v); err != nil {
			return fmt.Errorf("%s: %w", EnvScheme, err)
		}
	}
	if v, ok := lookup(EnvTheme); ok && v != "" {
		if err := c.setTheme(v); err != nil {
			return fmt.Errorf("%s: %w", EnvTheme, err)
		}
	}
	if v, ok := lookup(EnvFormat); ok && v != "" {
		if err := c.setFormat(v); err != nil {
			return fmt.Errorf("%s: %w", EnvFormat, err)
		}
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		if err := c.setLogLevel(v); err != nil {
			return fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
	}
	// https://no-color.org: any non-empty value disables colour.
	if v, ok := lookup(EnvNoColour); ok && v != "" {
		c.Colour = false
	}
	return nil
}

// applyFlags overrides only flags the user set.
func (c *Config) applyFlags(fs *pflag.FlagSet) error {
	setters := []struct {
		name string
		set  func(string) error
	}{
		{FlagSeed, c.setSeed},
		{FlagScheme, c.setScheme},
		{FlagTheme, c.setTheme},
		{FlagFormat, c.setFormat},
		{FlagLogLevel, c.setLogLevel},
	}
	for _, s := range setters {
		if fs.Lookup(s.name) == nil || !fs.Changed(s.name) {
			continue
		}
		v, err := fs.GetString(s.name)
		if err != nil {
			return err
		}
		if err := s.set(v); err != nil {
			return fmt.Errorf("--%s: %w", s.name, err)
		}
	}

	if changed(fs, FlagNoColour) {
		if off, _ := fs.GetBool(FlagNoColour); off {
			c.Colour = false
		}
	}
	// --quiet wins over --verbose.
	if changed(fs, FlagVerbose) {
		if on, _ := fs.GetBool(FlagVerbose); on {
			c.LogLevel = hclog.Debug
		}
	}
	if changed(fs, FlagQuiet) {
		if on, _ := fs.GetBool(FlagQuiet); on {
			c.LogLevel = hclog.Off
		}
	}
	return nil
}

func changed(fs *pflag.FlagSet, name string) bool {
	return fs.Lookup(name) != nil && fs.Changed(name)
}

func (c *Config) setSeed(v string) error {
	mode, modeErr := entropy.ParseMode(v)
	if modeErr == nil && mode != entropy.ModeManual {
		c.Seed = entropy.Config{Mode: mode}
		return nil
	}
	n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid seed: %s (valid: random, content, or an unsigned integer)", v)
	}
	c.Seed = entropy.Config{Mode: entropy.ModeManual, Value: &n}
	return nil
}

func (c *Config) setScheme(v string) error {
	s, err := harmony.ParseScheme(v)
	if err != nil {
		return err
	}
	c.Scheme = s
	return nil
}

func (c *Config) setTheme(v string) error {
	t, err := variation.ParseThemePreference(v)
	if err != nil {
		return err
	}
	c.Theme = t
	return nil
}

func (c *Config) setFormat(v string) error {
	f, err := ParseFormat(v)
	if err != nil {
		return err
	}
	c.Format = f
	return nil
}

func (c *Config) setLogLevel(v string) error {
	level := hclog.LevelFromString(v)
	if level == hclog.NoLevel {
		return fmt.Errorf("invalid log level: %s (valid: trace, debug, info, warn, error, off)", v)
	}
	c.LogLevel = level
	return nil
}

// Source returns a random source for the configured seed mode. content
// feeds the content seed mode.
func (c Config) Source(content ...string) (entropy.Source, uint64, error) {
	seed, err := entropy.Calculate(c.Seed, content...)
	if err != nil {
		return nil, 0, err
	}
	return entropy.NewSeeded(seed), seed, nil
}
