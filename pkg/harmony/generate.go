package harmony

import (
	"fmt"

	"github.com/jmylchreest/tincture/pkg/colour"
	"github.com/jmylchreest/tincture/pkg/entropy"
)

// Base saturation and lightness bands for generated harmonies.
const (
	MinBaseSaturation = 0.65
	MaxBaseSaturation = 0.90
	MinBaseLightness  = 0.45
	MaxBaseLightness  = 0.65

	saturationJitter = 0.05
	lightnessJitter  = 0.03
	minSaturation    = 0.05
	minLightness     = 0.10
	maxLightness     = 0.92
)

// voice is one colour of a harmony tuple, relative to the base colour.
type voice struct {
	offset     float64 // hue offset in degrees
	satScale   float64 // multiplier on base saturation
	lightDelta float64 // added to base lightness
}

// voices returns the tuple layout for a concrete scheme. The first voice is
// always the base colour.
func voices(s Scheme) []voice {
	switch s {
	case Monochromatic:
		return []voice{
			{0, 1.0, 0},
			{0, 0.8, 0.15},
			{0, 0.5, -0.15},
			{0, 0.9, 0.25},
			{0, 0.6, -0.25},
		}
	case Analogous:
		return []voice{
			{0, 1.0, 0},
			{30, 0.9, 0.05},
			{-30, 0.85, -0.05},
			{60, 0.8, 0.10},
		}
	case Complementary:
		return []voice{
			{0, 1.0, 0},
			{180, 1.0, 0},
			{0, 0.5, 0.25},
			{180, 0.5, 0.25},
			{0, 0.8, -0.15},
		}
	case Triadic:
		return []voice{
			{0, 1.0, 0},
			{120, 0.9, 0.05},
			{240, 0.85, -0.05},
			{0, 0.5, 0.20},
		}
	case Tetradic:
		return []voice{
			{0, 1.0, 0},
			{90, 0.9, 0.05},
			{180, 0.85, -0.05},
			{270, 0.8, 0.10},
		}
	case SplitComplementary:
		return []voice{
			{0, 1.0, 0},
			{150, 0.9, 0.05},
			{210, 0.85, -0.05},
			{0, 0.5, 0.20},
		}
	default:
		return nil
	}
}

// Generate returns the harmony tuple for baseHue under scheme. Index 0 is the
// base colour; the tuple always holds at least three colours.
//
// Base saturation is drawn from [0.65, 0.90) and base lightness from
// [0.45, 0.65); every colour is then jittered slightly so palettes do not look
// flat. A non-concrete scheme (including Random) falls back to Analogous and
// is reported to diag.
func Generate(baseHue float64, scheme Scheme, src entropy.Source, diag colour.Diagnostics) []colour.Color {
	if !scheme.IsConcrete() {
		colour.OrNop(diag).Fallback("harmony", scheme.String(), "scheme must be concrete; using analogous")
		scheme = Analogous
	}
	baseHue = colour.NormaliseHue(baseHue)

	baseSat := entropy.Range(src, MinBaseSaturation, MaxBaseSaturation)
	baseLight := entropy.Range(src, MinBaseLightness, MaxBaseLightness)

	vs := voices(scheme)
	out := make([]colour.Color, 0, len(vs))
	for _, v := range vs {
		s := baseSat*v.satScale + entropy.Range(src, -saturationJitter, saturationJitter)
		l := baseLight + v.lightDelta + entropy.Range(src, -lightnessJitter, lightnessJitter)
		out = append(out, colour.FromHSL(
			baseHue+v.offset,
			colour.Clamp(s, minSaturation, 1),
			colour.Clamp(l, minLightness, maxLightness),
		))
	}
	return out
}

// GenerateHex is Generate returning hex strings.
func GenerateHex(baseHue float64, scheme Scheme, src entropy.Source, diag colour.Diagnostics) []string {
	colours := Generate(baseHue, scheme, src, diag)
	out := make([]string, len(colours))
	for i, c := range colours {
		out[i] = c.Hex()
	}
	return out
}

// Describe returns a human-readable summary of a tuple, e.g. for verbose logs.
func Describe(scheme Scheme, baseHue float64, colours []colour.Color) string {
	return fmt.Sprintf("%s from %.0f° (%d colours)", scheme, colour.NormaliseHue(baseHue), len(colours))
}
