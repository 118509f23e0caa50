package colour

import (
	"math"
)

// WCAG 2.x contrast thresholds.
const (
	AANormal  = 4.5 // AA, normal text
	AALarge   = 3.0 // AA, large text (and non-text UI components)
	AAANormal = 7.0 // AAA, normal text
	AAALarge  = 4.5 // AAA, large text
)

// Contrast adjustment tuning.
const (
	contrastStep        = 0.10
	maxContrastAttempts = 30
)

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func (c Color) Luminance() float64 {
	rf := gammaCorrect(float64(c.R) / 255.0)
	rg := gammaCorrect(float64(c.G) / 255.0)
	rb := gammaCorrect(float64(c.B) / 255.0)

	return 0.2126*rf + 0.7152*rg + 0.0722*rb
}

// gammaCorrect linearises an sRGB channel.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// IsLight reports whether the colour's relative luminance exceeds 0.5.
func (c Color) IsLight() bool {
	return c.Luminance() > 0.5
}

// ContrastRatio calculates the contrast ratio between two colours according to WCAG 2.0.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs white).
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(fg, bg Color) float64 {
	l1 := fg.Luminance()
	l2 := bg.Luminance()

	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// CalculateContrast is the string form of ContrastRatio. If either colour is
// unparseable the ratio is 1 (no contrast) and diag is notified.
func CalculateContrast(fg, bg string, diag Diagnostics) float64 {
	cf, errF := Parse(fg)
	cb, errB := Parse(bg)
	if errF != nil || errB != nil {
		OrNop(diag).Fallback("contrast", fg+","+bg, "unparseable colour; ratio is 1")
		return 1
	}
	return ContrastRatio(cf, cb)
}

// CheckAACompliance reports whether fg on bg meets WCAG AA.
func CheckAACompliance(fg, bg Color, largeText bool) bool {
	threshold := AANormal
	if largeText {
		threshold = AALarge
	}
	return ContrastRatio(fg, bg) >= threshold
}

// CheckAAACompliance reports whether fg on bg meets WCAG AAA.
func CheckAAACompliance(fg, bg Color, largeText bool) bool {
	threshold := AAANormal
	if largeText {
		threshold = AAALarge
	}
	return ContrastRatio(fg, bg) >= threshold
}

// Level is the highest WCAG conformance a contrast ratio achieves for normal text.
type Level int

const (
	// LevelFail does not meet any threshold.
	LevelFail Level = iota
	// LevelAALarge meets AA for large text only.
	LevelAALarge
	// LevelAA meets AA for normal text.
	LevelAA
	// LevelAAA meets AAA for normal text.
	LevelAAA
)

// String returns the string representation of a Level.
func (l Level) String() string {
	switch l {
	case LevelAAA:
		return "AAA"
	case LevelAA:
		return "AA"
	case LevelAALarge:
		return "AA-large"
	default:
		return "fail"
	}
}

// ComplianceLevel classifies a contrast ratio.
func ComplianceLevel(ratio float64) Level {
	switch {
	case ratio >= AAANormal:
		return LevelAAA
	case ratio >= AANormal:
		return LevelAA
	case ratio >= AALarge:
		return LevelAALarge
	default:
		return LevelFail
	}
}

// OptimalTextColor returns black or white, whichever contrasts more with bg.
func OptimalTextColor(bg Color) Color {
	if ContrastRatio(Black, bg) >= ContrastRatio(White, bg) {
		return Black
	}
	return White
}

// AdjustForContrast steps fg's lightness until it reaches target contrast against bg.
//
// Light backgrounds (luminance > 0.5) darken fg; dark backgrounds lighten it.
// Each step moves HSL lightness by 10%, for at most 30 steps, stopping early once
// lightness saturates. If the target is still not met, the better of black and
// white against bg is returned.
func AdjustForContrast(fg, bg Color, target float64) Color {
	if math.IsNaN(target) || target <= 1 {
		return fg
	}
	if ContrastRatio(fg, bg) >= target {
		return fg
	}

	darken := bg.Luminance() > 0.5
	hsl := fg.HSL()
	current := fg

	for attempt := 0; attempt < maxContrastAttempts; attempt++ {
		if darken {
			hsl.L = math.Max(0, hsl.L-contrastStep)
		} else {
			hsl.L = math.Min(1, hsl.L+contrastStep)
		}
		current = hsl.Color()

		if ContrastRatio(current, bg) >= target {
			return current
		}

		// Lightness saturated; further steps cannot help.
		if hsl.L <= 0 || hsl.L >= 1 {
			break
		}
	}

	return OptimalTextColor(bg)
}
