package colour

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// DistanceMode selects the colour difference metric used by Distance.
type DistanceMode int

const (
	// DistanceCIE76 is Euclidean distance in CIE L*a*b* (ΔE76, 0-100+ scale).
	DistanceCIE76 DistanceMode = iota
	// DistanceCIE94 is the CIE94 ΔE formula.
	DistanceCIE94
	// DistanceCIEDE2000 is the CIEDE2000 ΔE formula.
	DistanceCIEDE2000
	// DistanceRGB is Euclidean distance over 0-255 sRGB channels.
	DistanceRGB
)

// String returns the string representation of a DistanceMode.
func (m DistanceMode) String() string {
	switch m {
	case DistanceCIE76:
		return "cie76"
	case DistanceCIE94:
		return "cie94"
	case DistanceCIEDE2000:
		return "ciede2000"
	case DistanceRGB:
		return "rgb"
	default:
		return "unknown"
	}
}

// Space performs the perceptual operations the engine needs. It lets the
// conversion backend be swapped without touching callers.
type Space interface {
	// Lab returns CIE L*a*b* (D65) with L on a 0-100 scale.
	Lab(c Color) (l, a, b float64)
	// Mix blends a toward b; ratio 0 yields a, ratio 1 yields b.
	Mix(a, b Color, ratio float64) Color
	// Distance returns the colour difference of a and b under mode.
	Distance(a, b Color, mode DistanceMode) float64
}

// DefaultSpace is the go-colorful backed Space used by the package-level helpers.
var DefaultSpace Space = LabSpace{}

// LabSpace implements Space using go-colorful's CIE Lab conversions.
type LabSpace struct{}

// Lab implements Space.
func (LabSpace) Lab(c Color) (l, a, b float64) {
	l, a, b = toColorful(c).Lab()
	return l * 100, a * 100, b * 100
}

// Mix implements Space. Blending happens in Lab so the midpoint is
// perceptually halfway, not an sRGB average.
func (LabSpace) Mix(a, b Color, ratio float64) Color {
	ratio = Clamp(ratio, 0, 1)
	return fromColorful(toColorful(a).BlendLab(toColorful(b), ratio))
}

// Distance implements Space.
func (LabSpace) Distance(a, b Color, mode DistanceMode) float64 {
	ca, cb := toColorful(a), toColorful(b)
	switch mode {
	case DistanceCIE94:
		return ca.DistanceCIE94(cb) * 100
	case DistanceCIEDE2000:
		return ca.DistanceCIEDE2000(cb) * 100
	case DistanceRGB:
		dr := float64(a.R) - float64(b.R)
		dg := float64(a.G) - float64(b.G)
		db := float64(a.B) - float64(b.B)
		return math.Sqrt(dr*dr + dg*dg + db*db)
	default:
		return ca.DistanceCIE76(cb) * 100
	}
}

// Mix blends a toward b in CIE Lab using DefaultSpace.
func Mix(a, b Color, ratio float64) Color {
	return DefaultSpace.Mix(a, b, ratio)
}

// Distance returns the colour difference of a and b using DefaultSpace.
func Distance(a, b Color, mode DistanceMode) float64 {
	return DefaultSpace.Distance(a, b, mode)
}

// DeltaE is the CIE76 colour difference, the metric used for
// distinguishability checks.
func DeltaE(a, b Color) float64 {
	return DefaultSpace.Distance(a, b, DistanceCIE76)
}

// MixHex blends two colour strings. An unparseable first argument yields
// #000000; an unparseable second argument returns the first unchanged.
func MixHex(a, b string, ratio float64, diag Diagnostics) string {
	ca, err := Parse(a)
	if err != nil {
		OrNop(diag).Fallback("mix", a, err.Error())
		return Black.Hex()
	}
	cb, err := Parse(b)
	if err != nil {
		OrNop(diag).Fallback("mix", b, fmt.Sprintf("%v; returning first colour", err))
		return ca.Hex()
	}
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		OrNop(diag).Fallback("mix", fmt.Sprint(ratio), "non-finite ratio; using 0.5")
		ratio = 0.5
	}
	return Mix(ca, cb, ratio).Hex()
}

// DistanceHex is the string form of Distance. Unparseable input yields 0.
func DistanceHex(a, b string, mode DistanceMode, diag Diagnostics) float64 {
	ca, errA := Parse(a)
	cb, errB := Parse(b)
	if errA != nil || errB != nil {
		OrNop(diag).Fallback("distance", a+","+b, "unparseable colour; distance is 0")
		return 0
	}
	return Distance(ca, cb, mode)
}

func toColorful(c Color) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255.0, G: float64(c.G) / 255.0, B: float64(c.B) / 255.0}
}

func fromColorful(c colorful.Color) Color {
	if !c.IsValid() {
		c = c.Clamped()
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}
}
