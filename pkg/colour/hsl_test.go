package colour

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHSLConversion(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		wantH float64
		wantS float64
		wantL float64
	}{
		{name: "red", color: Color{R: 255}, wantH: 0, wantS: 1, wantL: 0.5},
		{name: "green", color: Color{G: 255}, wantH: 120, wantS: 1, wantL: 0.5},
		{name: "blue", color: Color{B: 255}, wantH: 240, wantS: 1, wantL: 0.5},
		{name: "magenta", color: Color{R: 255, B: 255}, wantH: 300, wantS: 1, wantL: 0.5},
		{name: "grey", color: SafeGrey, wantH: 0, wantS: 0, wantL: 0.502},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.color.HSL()
			assert.InDelta(t, tt.wantH, got.H, 0.5)
			assert.InDelta(t, tt.wantS, got.S, 0.01)
			assert.InDelta(t, tt.wantL, got.L, 0.01)
			assert.Equal(t, tt.color, got.Color(), "round trip")
		})
	}
}

func TestFromHSLSanitisesInput(t *testing.T) {
	assert.Equal(t, FromHSL(0, 0, 0.5), FromHSL(math.NaN(), math.NaN(), math.NaN()))
	assert.Equal(t, Color{G: 255}, FromHSL(720+120, 1, 0.5))
	assert.Equal(t, White, FromHSL(0, 5, 2), "lightness is clamped")
}

func TestNormaliseHue(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{359.5, 359.5},
		{360, 0},
		{-30, 330},
		{725, 5},
		{math.Inf(1), 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, NormaliseHue(tt.in), 1e-9, "NormaliseHue(%v)", tt.in)
	}
}

func TestHueDistance(t *testing.T) {
	tests := []struct {
		h1, h2, want float64
	}{
		{0, 180, 180},
		{350, 10, 20},
		{10, 350, 20},
		{90, 0, 90},
		{0, 270, 90},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, HueDistance(tt.h1, tt.h2), 1e-9, "HueDistance(%v, %v)", tt.h1, tt.h2)
	}
}

func TestLightenDarken(t *testing.T) {
	base := MustParse("#3b82f6")
	assert.Greater(t, base.Lighten(0.1).Lightness(), base.Lightness())
	assert.Less(t, base.Darken(0.1).Lightness(), base.Lightness())
	assert.LessOrEqual(t, HueDistance(base.Rotate(180).Hue(), base.Hue()+180), 2.0)
	assert.Zero(t, base.AdjustSaturation(0).Saturation(), "AdjustSaturation(0) should be grey")
}

func TestMix(t *testing.T) {
	assert.Equal(t, Black, Mix(Black, White, 0))
	assert.Equal(t, White, Mix(Black, White, 1))
	assert.Equal(t, White, Mix(Black, White, 2), "ratio is clamped")

	mid := Mix(Black, White, 0.5)
	// Lab midpoint is perceptually mid grey, lighter than the sRGB average.
	assert.GreaterOrEqual(t, mid.R, uint8(110))
	assert.LessOrEqual(t, mid.R, uint8(125))
	assert.LessOrEqual(t, absDiff(mid.R, mid.G), 1)
	assert.LessOrEqual(t, absDiff(mid.G, mid.B), 1)

	near := Mix(White, Black, 0.05)
	assert.Less(t, DeltaE(near, White), DeltaE(near, Black), "5%% mix should stay close to the first colour")
}

func TestMixHexFallbacks(t *testing.T) {
	diag := &RecordingDiagnostics{}
	assert.Equal(t, "#000000", MixHex("not-a-colour", "#fff", 0.5, diag))
	assert.Equal(t, "#ff0000", MixHex("#ff0000", "#zz", 0.5, diag), "invalid second argument passes the first through")
	assert.Equal(t, 2, diag.Len())

	// "bad" is bare hex for #bbaadd, so it mixes without a fallback.
	assert.NotEqual(t, "#000000", MixHex("bad", "#fff", 0.5, diag))
	assert.Equal(t, 2, diag.Len())
}

func TestDistance(t *testing.T) {
	red, green := Color{R: 255}, Color{G: 255}

	for _, mode := range []DistanceMode{DistanceCIE76, DistanceCIE94, DistanceCIEDE2000, DistanceRGB} {
		t.Run(mode.String(), func(t *testing.T) {
			assert.InDelta(t, 0, Distance(red, red, mode), 1e-9)
			ab, ba := Distance(red, green, mode), Distance(green, red, mode)
			assert.Greater(t, ab, 0.0)
			// CIE94 weights by the first colour's chroma and is asymmetric.
			if mode != DistanceCIE94 {
				assert.InDelta(t, ab, ba, 1e-6)
			}
		})
	}

	assert.InDelta(t, 100, Distance(Black, White, DistanceCIE76), 0.5)
	assert.InDelta(t, 441.67, Distance(Black, White, DistanceRGB), 0.01)
	assert.Zero(t, DistanceHex("#000", "nope", DistanceCIE76, nil))
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
