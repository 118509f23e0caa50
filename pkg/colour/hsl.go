package colour

import (
	"math"
)

// HSL is a colour in cylindrical form.
// H is in degrees [0, 360), S and L are in [0, 1].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// HSL converts the colour to hue (0-360), saturation (0-1), lightness (0-1).
func (c Color) HSL() HSL {
	r := float64(c.R) / 255.0
	g := float64(c.G) / 255.0
	b := float64(c.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	l := (maxVal + minVal) / 2.0
	if delta == 0 {
		// Achromatic.
		return HSL{H: 0, S: 0, L: l}
	}

	var s float64
	if l < 0.5 {
		s = delta / (maxVal + minVal)
	} else {
		s = delta / (2.0 - maxVal - minVal)
	}

	var h float64
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}

	return HSL{H: NormaliseHue(h * 60), S: s, L: l}
}

// Hue returns the HSL hue in [0, 360).
func (c Color) Hue() float64 {
	return c.HSL().H
}

// Saturation returns the HSL saturation in [0, 1].
func (c Color) Saturation() float64 {
	return c.HSL().S
}

// Lightness returns the HSL lightness in [0, 1].
func (c Color) Lightness() float64 {
	return c.HSL().L
}

// Color converts the HSL value back to RGB.
func (h HSL) Color() Color {
	return FromHSL(h.H, h.S, h.L)
}

// FromHSL converts HSL to a Color. Non-finite inputs are replaced with
// hue 0, saturation 0 and lightness 0.5; saturation and lightness are clamped.
func FromHSL(h, s, l float64) Color {
	h = NormaliseHue(finiteOr(h, 0))
	s = clamp01(finiteOr(s, 0))
	l = clamp01(finiteOr(l, 0.5))

	if s == 0 {
		v := toByte(l)
		return Color{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return Color{
		R: toByte(hueToRGB(p, q, h+120)),
		G: toByte(hueToRGB(p, q, h)),
		B: toByte(hueToRGB(p, q, h-120)),
	}
}

// hueToRGB is a helper for HSL to RGB conversion.
func hueToRGB(p, q, t float64) float64 {
	t = NormaliseHue(t)

	if t < 60 {
		return p + (q-p)*t/60
	}
	if t < 180 {
		return q
	}
	if t < 240 {
		return p + (q-p)*(240-t)/60
	}
	return p
}

// NormaliseHue maps any angle into [0, 360). Non-finite input yields 0.
func NormaliseHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

// HueDistance calculates the angular distance between two hues on the colour wheel.
// Returns a value between 0 and 180 degrees (shortest path around the wheel).
func HueDistance(h1, h2 float64) float64 {
	diff := math.Abs(NormaliseHue(h1) - NormaliseHue(h2))
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}

// Lighten returns the colour with lightness increased by delta (clamped).
func (c Color) Lighten(delta float64) Color {
	hsl := c.HSL()
	return FromHSL(hsl.H, hsl.S, hsl.L+delta)
}

// Darken returns the colour with lightness decreased by delta (clamped).
func (c Color) Darken(delta float64) Color {
	return c.Lighten(-delta)
}

// AdjustSaturation scales saturation by factor.
// factor < 1.0 mutes the colour, factor > 1.0 makes it more vibrant.
func (c Color) AdjustSaturation(factor float64) Color {
	hsl := c.HSL()
	return FromHSL(hsl.H, hsl.S*factor, hsl.L)
}

// Rotate shifts the hue by degrees.
func (c Color) Rotate(degrees float64) Color {
	hsl := c.HSL()
	return FromHSL(hsl.H+degrees, hsl.S, hsl.L)
}

func toByte(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255)) // #nosec G115 -- clamped to [0, 255]
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Clamp limits v to [lo, hi], mapping NaN to lo.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}

func finiteOr(v, def float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return v
}
