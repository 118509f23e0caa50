package config

import (
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/tincture/pkg/entropy"
	"github.com/jmylchreest/tincture/pkg/harmony"
	"github.com/jmylchreest/tincture/pkg/variation"
)

func env(vars map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func flags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestDefault(t *testing.T) {
	cfg, err := Load(flags(t), env(nil))
	require.NoError(t, err)
	assert.Equal(t, entropy.ModeRandom, cfg.Seed.Mode)
	assert.Equal(t, harmony.Random, cfg.Scheme)
	assert.Equal(t, variation.ThemeRandom, cfg.Theme)
	assert.Equal(t, FormatText, cfg.Format)
	assert.Equal(t, hclog.Warn, cfg.LogLevel)
	assert.True(t, cfg.Colour, "colour should default to on")
}

func TestEnvironment(t *testing.T) {
	cfg, err := Load(flags(t), env(map[string]string{
		EnvSeed:     "42",
		EnvScheme:   "triadic",
		EnvTheme:    "dark",
		EnvFormat:   "json",
		EnvLogLevel: "debug",
		EnvNoColour: "1",
	}))
	require.NoError(t, err)
	assert.Equal(t, entropy.ModeManual, cfg.Seed.Mode)
	require.NotNil(t, cfg.Seed.Value)
	assert.Equal(t, uint64(42), *cfg.Seed.Value)
	assert.Equal(t, harmony.Triadic, cfg.Scheme)
	assert.Equal(t, variation.ThemeDark, cfg.Theme)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.Equal(t, hclog.Debug, cfg.LogLevel)
	assert.False(t, cfg.Colour, "NO_COLOR should disable colour")
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	vars := env(map[string]string{
		EnvScheme: "triadic",
		EnvTheme:  "dark",
		EnvSeed:   "content",
	})

	// Only flags that were set take effect.
	cfg, err := Load(flags(t, "--scheme", "tetradic"), vars)
	require.NoError(t, err)
	assert.Equal(t, harmony.Tetradic, cfg.Scheme)
	assert.Equal(t, variation.ThemeDark, cfg.Theme)
	assert.Equal(t, entropy.ModeContent, cfg.Seed.Mode)
}

func TestVerboseAndQuiet(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want hclog.Level
	}{
		{name: "verbose", args: []string{"-v"}, want: hclog.Debug},
		{name: "quiet", args: []string{"-q"}, want: hclog.Off},
		{name: "quiet wins", args: []string{"-v", "-q"}, want: hclog.Off},
		{name: "log level", args: []string{"--log-level", "trace"}, want: hclog.Trace},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(flags(t, tt.args...), env(nil))
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.LogLevel)
		})
	}
}

func TestInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		vars    map[string]string
		args    []string
		wantErr string
	}{
		{name: "env scheme", vars: map[string]string{EnvScheme: "pastel"}, wantErr: EnvScheme},
		{name: "env seed", vars: map[string]string{EnvSeed: "-3"}, wantErr: "invalid seed"},
		{name: "flag theme", args: []string{"--theme", "sepia"}, wantErr: "--theme"},
		{name: "flag format", args: []string{"-f", "yaml"}, wantErr: "invalid format"},
		{name: "flag log level", args: []string{"--log-level", "loud"}, wantErr: "invalid log level"},
		{name: "manual without value", args: []string{"--seed", "manual"}, wantErr: "invalid seed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(flags(t, tt.args...), env(tt.vars))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSource(t *testing.T) {
	cfg, err := Load(flags(t, "--seed", "7"), env(nil))
	require.NoError(t, err)

	a, seed, err := cfg.Source()
	require.NoError(t, err)
	assert.Equal(t, uint64(7), seed)
	b, _, _ := cfg.Source()
	assert.Equal(t, a.Float64(), b.Float64(), "manual seed should give identical sources")

	cfg.Seed = entropy.Config{Mode: entropy.ModeContent}
	_, s1, err := cfg.Source("#3b82f6", "#ffffff")
	require.NoError(t, err)
	_, s2, _ := cfg.Source("#3B82F6", "#FFFFFF")
	assert.Equal(t, s1, s2, "content seed should ignore hex case")
}
