// Package variation generates new colour systems from an existing one,
// preserving pinned roles and filling the rest from a colour-wheel harmony.
package variation

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/tincture/pkg/colour"
	"github.com/jmylchreest/tincture/pkg/harmony"
)

// ThemePreference selects the background family.
type ThemePreference int

const (
	// ThemeRandom picks light or dark, biased toward light.
	ThemeRandom ThemePreference = iota
	// ThemeLight produces a near-white tinted background.
	ThemeLight
	// ThemeDark produces a near-black tinted background.
	ThemeDark
)

// String returns the string representation of a ThemePreference.
func (t ThemePreference) String() string {
	switch t {
	case ThemeLight:
		return "light"
	case ThemeDark:
		return "dark"
	case ThemeRandom:
		return "random"
	default:
		return "unknown"
	}
}

// ParseThemePreference converts a string to a ThemePreference.
func ParseThemePreference(s string) (ThemePreference, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return ThemeLight, nil
	case "dark":
		return ThemeDark, nil
	case "random", "auto", "":
		return ThemeRandom, nil
	default:
		return ThemeRandom, fmt.Errorf("invalid theme type: %s (valid: light, dark, random)", s)
	}
}

// MarshalText encodes the preference name.
func (t ThemePreference) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a preference name.
func (t *ThemePreference) UnmarshalText(text []byte) error {
	parsed, err := ParseThemePreference(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Options controls a single Generate call.
type Options struct {
	// Pinning lists roles that must be copied verbatim from the current system.
	Pinning colour.PinningState `json:"pinning"`
	// Scheme is the harmony to use, or harmony.Random.
	Scheme harmony.Scheme `json:"scheme"`
	// Theme selects the background family.
	Theme ThemePreference `json:"theme"`
	// BaseHue, when set and no brand role is pinned, replaces the random base hue.
	BaseHue *float64 `json:"base_hue,omitempty"`
}

// DefaultOptions returns random scheme, random theme and no pins.
func DefaultOptions() Options {
	return Options{Scheme: harmony.Random, Theme: ThemeRandom}
}
