// Package harmony generates colour-wheel harmonies and decides which
// harmonies remain achievable once some brand colours are pinned.
package harmony

import (
	"fmt"
	"strings"
)

// Scheme is a named geometric pattern of hues on the colour wheel.
type Scheme int

const (
	Monochromatic Scheme = iota
	Analogous
	Complementary
	Triadic
	Tetradic
	SplitComplementary
	// Random is a meta choice resolved to a concrete scheme before generation.
	Random
)

// AllSchemes returns the six concrete schemes in display order.
func AllSchemes() []Scheme {
	return []Scheme{Monochromatic, Analogous, Complementary, Triadic, Tetradic, SplitComplementary}
}

// String returns the string representation of a Scheme.
func (s Scheme) String() string {
	switch s {
	case Monochromatic:
		return "monochromatic"
	case Analogous:
		return "analogous"
	case Complementary:
		return "complementary"
	case Triadic:
		return "triadic"
	case Tetradic:
		return "tetradic"
	case SplitComplementary:
		return "split-complementary"
	case Random:
		return "random"
	default:
		return "unknown"
	}
}

// Description returns a one-line explanation for display.
func (s Scheme) Description() string {
	switch s {
	case Monochromatic:
		return "one hue, varied saturation and lightness"
	case Analogous:
		return "neighbouring hues within 60°"
	case Complementary:
		return "a hue and its opposite, with tints"
	case Triadic:
		return "three hues evenly spaced 120° apart"
	case Tetradic:
		return "four hues spaced 90° apart"
	case SplitComplementary:
		return "a hue plus the two neighbours of its complement"
	case Random:
		return "any scheme compatible with the pinned colours"
	default:
		return ""
	}
}

// Offsets returns the distinct hue offsets, in degrees, the scheme places around the base hue.
func (s Scheme) Offsets() []float64 {
	switch s {
	case Monochromatic:
		return []float64{0}
	case Analogous:
		return []float64{0, 30, -30, 60}
	case Complementary:
		return []float64{0, 180}
	case Triadic:
		return []float64{0, 120, 240}
	case Tetradic:
		return []float64{0, 90, 180, 270}
	case SplitComplementary:
		return []float64{0, 150, 210}
	default:
		return nil
	}
}

// IsConcrete reports whether s is one of the six generatable schemes.
func (s Scheme) IsConcrete() bool {
	return s >= Monochromatic && s <= SplitComplementary
}

// ParseScheme converts a string to a Scheme. "split" and "split_complementary"
// are accepted as aliases.
func ParseScheme(s string) (Scheme, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.ReplaceAll(name, "_", "-")
	if name == "split" {
		name = SplitComplementary.String()
	}
	for _, sc := range append(AllSchemes(), Random) {
		if sc.String() == name {
			return sc, nil
		}
	}
	return 0, fmt.Errorf("invalid scheme: %s (valid: monochromatic, analogous, complementary, triadic, tetradic, split-complementary, random)", s)
}

// MarshalText encodes the scheme name.
func (s Scheme) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a scheme name.
func (s *Scheme) UnmarshalText(text []byte) error {
	parsed, err := ParseScheme(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
