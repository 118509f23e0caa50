package harmony

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/tincture/pkg/colour"
)

// systemWithHues builds a system whose brand colours sit at the given hues.
func systemWithHues(hues ...float64) (colour.ColourSystem, colour.PinningState) {
	sys := colour.DefaultSystem()
	var pin colour.PinningState
	roles := colour.HarmonyRoles()
	for i, h := range hues {
		sys = sys.With(roles[i], colour.FromHSL(h, 0.8, 0.5))
		pin = pin.Pin(roles[i])
	}
	return sys, pin
}

func compatible(t *testing.T, scheme Scheme, hues ...float64) bool {
	t.Helper()
	sys, pin := systemWithHues(hues...)
	ok, reason := IsCompatible(scheme, AnalyzeRelationships(sys, pin))
	assert.NotEmpty(t, reason)
	return ok
}

func TestNoPinsAllowsEverything(t *testing.T) {
	a := AnalyzeRelationships(colour.DefaultSystem(), colour.PinningState{})
	assert.Empty(t, a.Pinned)
	assert.Equal(t, AllSchemes(), CompatibleSchemes(a))

	sys, pin := systemWithHues(42)
	assert.Equal(t, AllSchemes(), CompatibleSchemes(AnalyzeRelationships(sys, pin)))
}

func TestBackgroundAndTextPinsAreIgnored(t *testing.T) {
	pin := colour.PinningState{Background: true, Text: true, Primary: true}
	a := AnalyzeRelationships(colour.DefaultSystem(), pin)
	require.Len(t, a.Pinned, 1)
	assert.Equal(t, colour.RolePrimary, a.Pinned[0].Role)
}

func TestNinetyDegreesApart(t *testing.T) {
	assert.False(t, compatible(t, Monochromatic, 0, 90))
	assert.False(t, compatible(t, Analogous, 0, 90))
	assert.False(t, compatible(t, Complementary, 0, 90))
	assert.True(t, compatible(t, Tetradic, 0, 90))
}

func TestComplementaryPairs(t *testing.T) {
	assert.True(t, compatible(t, Complementary, 30, 210))
	assert.True(t, compatible(t, Complementary, 350, 165), "within tolerance")
	assert.False(t, compatible(t, Complementary, 0, 150))
	// The third hue has no opposite partner.
	assert.False(t, compatible(t, Complementary, 0, 180, 90))
}

func TestMonochromaticWraparound(t *testing.T) {
	assert.True(t, compatible(t, Monochromatic, 350, 10))
	assert.True(t, compatible(t, Analogous, 340, 30))
	assert.False(t, compatible(t, Monochromatic, 340, 30))
}

func TestTriadic(t *testing.T) {
	assert.True(t, compatible(t, Triadic, 0, 120))
	assert.True(t, compatible(t, Triadic, 10, 250), "240° apart")
	assert.True(t, compatible(t, Triadic, 0, 120, 240))
	assert.False(t, compatible(t, Triadic, 0, 60))
	// Only one of three pairs sits on the triad.
	assert.False(t, compatible(t, Triadic, 0, 120, 200))
}

func TestTetradic(t *testing.T) {
	assert.True(t, compatible(t, Tetradic, 0, 90, 180))
	assert.True(t, compatible(t, Tetradic, 10, 280), "270° apart")
	assert.False(t, compatible(t, Tetradic, 0, 90, 45))
}

func TestSplitComplementary(t *testing.T) {
	assert.True(t, compatible(t, SplitComplementary, 0, 150))
	assert.True(t, compatible(t, SplitComplementary, 0, 210))
	assert.True(t, compatible(t, SplitComplementary, 150, 210))
	assert.False(t, compatible(t, SplitComplementary, 0, 100))
}

func TestRandomCompatibility(t *testing.T) {
	assert.True(t, compatible(t, Random, 0, 180))

	// Pairwise 25°, 95° and 120°: too wide for one hue family, no opposites,
	// one triad pair, one 90° pair and no split spacing.
	sys, pin := systemWithHues(0, 25, 120)
	a := AnalyzeRelationships(sys, pin)
	assert.Empty(t, CompatibleSchemes(a))
	ok, _ := IsCompatible(Random, a)
	assert.False(t, ok)
}

func TestAnalysisRelationships(t *testing.T) {
	sys, pin := systemWithHues(0, 180, 120)
	a := AnalyzeRelationships(sys, pin)

	require.Len(t, a.Relationships, 3)
	assert.Equal(t, colour.RolePrimary, a.Relationships[0].From)
	assert.Equal(t, colour.RoleSecondary, a.Relationships[0].To)
	assert.Equal(t, RelationComplementary, a.Relationships[0].Relation)
	assert.Equal(t, RelationTriadic, a.Relationships[1].Relation)

	require.Len(t, a.Compatibility, len(AllSchemes()))
	assert.False(t, a.Compatibility[Complementary].Compatible)
}

func TestHueRange(t *testing.T) {
	tests := []struct {
		name string
		hues []float64
		want float64
	}{
		{name: "empty", hues: nil, want: 0},
		{name: "single", hues: []float64{200}, want: 0},
		{name: "direct", hues: []float64{10, 50}, want: 40},
		{name: "wraparound", hues: []float64{350, 10}, want: 20},
		{name: "three wrap", hues: []float64{340, 20, 5}, want: 40},
		{name: "spread", hues: []float64{0, 120, 240}, want: 240},
		// Every pair here is within 160° along its shortest arc, but the
		// smallest arc holding all three is 200°: the largest gap is 160°.
		{name: "uneven spread", hues: []float64{0, 150, 310}, want: 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, HueRange(tt.hues), 1e-9)
		})
	}
}

// A wide set must not read as analogous just because one pair is close.
func TestUnevenSpreadIsNotAnalogous(t *testing.T) {
	sys, pin := systemWithHues(0, 150, 310)
	a := AnalyzeRelationships(sys, pin)

	assert.Greater(t, HueRange(a.Hues()), AnalogousMaxRange)
	ok, reason := IsCompatible(Analogous, a)
	assert.False(t, ok)
	assert.Contains(t, reason, "wider than")
}
