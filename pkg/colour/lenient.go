package colour

// The functions in this file accept colour strings from callers that have
// not parsed them. They never fail: unparseable input degrades to #000000
// and the substitution is reported to diag.

// ToHex canonicalises s to "#rrggbb".
func ToHex(s string, diag Diagnostics) string {
	return ParseOr(s, Black, diag).Hex()
}

// ToHSL converts s to HSL.
func ToHSL(s string, diag Diagnostics) HSL {
	return ParseOr(s, Black, diag).HSL()
}

// HueOf returns the hue of s in [0, 360).
func HueOf(s string, diag Diagnostics) float64 {
	return ParseOr(s, Black, diag).Hue()
}

// LuminanceOf returns the WCAG relative luminance of s.
func LuminanceOf(s string, diag Diagnostics) float64 {
	return ParseOr(s, Black, diag).Luminance()
}
