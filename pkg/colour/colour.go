// Package colour provides the colour value type, colour space conversions,
// perceptual mixing and distance, and WCAG contrast calculations.
//
// A Color is always valid once constructed. Strings are parsed at the
// boundary with Parse; callers that must never fail use ParseOr, which
// substitutes a safe default and reports the substitution through a
// Diagnostics sink.
package colour

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrInvalidColour is returned (wrapped) when a string cannot be parsed as a colour.
var ErrInvalidColour = errors.New("invalid colour")

// Color is an opaque sRGB colour with 8 bits per channel.
// The zero value is black (#000000), which is also the documented fallback
// for single-colour operations.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Common colours.
var (
	Black    = Color{R: 0, G: 0, B: 0}
	White    = Color{R: 255, G: 255, B: 255}
	SafeGrey = Color{R: 128, G: 128, B: 128}
)

// RGB creates a colour from 8-bit channel values.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// RGBA implements color.Color. Colours are always fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Hex returns the canonical lowercase hex form (e.g. "#1a2b3c").
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String returns the hex form so colours print naturally in logs and tables.
func (c Color) String() string {
	return c.Hex()
}

// RGBString returns the colour in the format "rgb(r, g, b)".
func (c Color) RGBString() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// MarshalText encodes the colour as its hex string.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText decodes any form accepted by Parse.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Parse converts a string to a Color. Accepted forms:
//   - "#rgb", "#rrggbb", "#rrggbbaa" (alpha is discarded), with or without '#'
//   - "rgb(r, g, b)" with 0-255 channels
//   - CSS colour names such as "steelblue"
func Parse(s string) (Color, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return Color{}, fmt.Errorf("%w: empty string", ErrInvalidColour)
	}
	lower := strings.ToLower(raw)

	if strings.HasPrefix(lower, "rgb(") && strings.HasSuffix(lower, ")") {
		return parseRGBFunc(lower)
	}

	if named, ok := colornames.Map[lower]; ok {
		return Color{R: named.R, G: named.G, B: named.B}, nil
	}

	return parseHex(lower)
}

// MustParse is like Parse but panics on error. Intended for constants and tests.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseOr parses s, returning fallback and reporting to diag when s is not a colour.
func ParseOr(s string, fallback Color, diag Diagnostics) Color {
	c, err := Parse(s)
	if err != nil {
		OrNop(diag).Fallback("parse", s, fmt.Sprintf("%v; using %s", err, fallback.Hex()))
		return fallback
	}
	return c
}

// IsValidHex reports whether s parses as a colour.
func IsValidHex(s string) bool {
	_, err := Parse(s)
	return err == nil
}

func parseHex(s string) (Color, error) {
	h := strings.TrimPrefix(s, "#")
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	case 6:
	case 8:
		h = h[:6]
	default:
		return Color{}, fmt.Errorf("%w: %q has unsupported length", ErrInvalidColour, s)
	}

	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q is not hexadecimal", ErrInvalidColour, s)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil // #nosec G115 -- masked to 8 bits
}

func parseRGBFunc(s string) (Color, error) {
	body := strings.TrimSuffix(strings.TrimPrefix(s, "rgb("), ")")
	parts := strings.Split(body, ",")
	if len(parts) != 3 {
		return Color{}, fmt.Errorf("%w: %q needs three channels", ErrInvalidColour, s)
	}

	var ch [3]uint8
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 || v > 255 {
			return Color{}, fmt.Errorf("%w: channel %q out of range 0-255", ErrInvalidColour, strings.TrimSpace(p))
		}
		ch[i] = uint8(v) // #nosec G115 -- range checked above
	}
	return Color{R: ch[0], G: ch[1], B: ch[2]}, nil
}
