// Package accessibility scores a colour system for WCAG contrast and
// colour-vision deficiency and suggests improvements.
package accessibility

import (
	"fmt"
	"math"
	"strings"

	"github.com/jmylchreest/tincture/pkg/colour"
)

// VisionDeficiency is a simulated type of dichromatic colour vision.
type VisionDeficiency int

const (
	Protanopia   VisionDeficiency = iota // red-blind
	Deuteranopia                         // green-blind
	Tritanopia                           // blue-blind
)

// AllDeficiencies returns every simulated deficiency in report order.
func AllDeficiencies() []VisionDeficiency {
	return []VisionDeficiency{Protanopia, Deuteranopia, Tritanopia}
}

// String returns the string representation of a VisionDeficiency.
func (v VisionDeficiency) String() string {
	switch v {
	case Protanopia:
		return "protanopia"
	case Deuteranopia:
		return "deuteranopia"
	case Tritanopia:
		return "tritanopia"
	default:
		return "unknown"
	}
}

// ParseVisionDeficiency converts a string to a VisionDeficiency.
func ParseVisionDeficiency(s string) (VisionDeficiency, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "protanopia", "protan":
		return Protanopia, nil
	case "deuteranopia", "deutan":
		return Deuteranopia, nil
	case "tritanopia", "tritan":
		return Tritanopia, nil
	default:
		return Protanopia, fmt.Errorf("invalid vision deficiency: %s (valid: protanopia, deuteranopia, tritanopia)", s)
	}
}

// MarshalText encodes the deficiency name.
func (v VisionDeficiency) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText decodes a deficiency name.
func (v *VisionDeficiency) UnmarshalText(text []byte) error {
	parsed, err := ParseVisionDeficiency(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

type matrix [3][3]float64

// Rows map (r, g, b) to the simulated channel. Each row sums to 1 so greys
// are unaffected.
var (
	protanopiaMatrix = matrix{
		{0.567, 0.433, 0},
		{0.558, 0.442, 0},
		{0, 0.242, 0.758},
	}
	deuteranopiaMatrix = matrix{
		{0.625, 0.375, 0},
		{0.7, 0.3, 0},
		{0, 0.3, 0.7},
	}
	tritanopiaMatrix = matrix{
		{0.95, 0.05, 0},
		{0, 0.433, 0.567},
		{0, 0.475, 0.525},
	}
)

func (v VisionDeficiency) matrix() matrix {
	switch v {
	case Deuteranopia:
		return deuteranopiaMatrix
	case Tritanopia:
		return tritanopiaMatrix
	default:
		return protanopiaMatrix
	}
}

// Simulate returns how c appears to someone with deficiency v. The matrix is
// applied directly to the 0-255 sRGB channels without linearisation.
func Simulate(c colour.Color, v VisionDeficiency) colour.Color {
	m := v.matrix()
	in := [3]float64{float64(c.R), float64(c.G), float64(c.B)}
	var out [3]uint8
	for i, row := range m {
		sum := row[0]*in[0] + row[1]*in[1] + row[2]*in[2]
		out[i] = uint8(math.Round(colour.Clamp(sum, 0, 255)))
	}
	return colour.RGB(out[0], out[1], out[2])
}

// SimulateSystem applies Simulate to every role and palette entry.
func SimulateSystem(s colour.ColourSystem, v VisionDeficiency) colour.ColourSystem {
	out := colour.ColourSystem{
		Primary:    Simulate(s.Primary, v),
		Secondary:  Simulate(s.Secondary, v),
		Accent:     Simulate(s.Accent, v),
		Background: Simulate(s.Background, v),
		Text:       Simulate(s.Text, v),
	}
	if len(s.Palette) > 0 {
		out.Palette = make(map[string]colour.Color, len(s.Palette))
		for k, c := range s.Palette {
			out.Palette[k] = Simulate(c, v)
		}
	}
	return out
}
