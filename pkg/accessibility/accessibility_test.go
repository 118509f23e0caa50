package accessibility

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/tincture/pkg/colour"
)

func brandSystem() colour.ColourSystem {
	return colour.ColourSystem{
		Primary:    colour.MustParse("#3B82F6"),
		Secondary:  colour.MustParse("#10B981"),
		Accent:     colour.MustParse("#F59E0B"),
		Background: colour.MustParse("#FFFFFF"),
		Text:       colour.MustParse("#111827"),
	}
}

func uniform(c colour.Color) colour.ColourSystem {
	return colour.ColourSystem{Primary: c, Secondary: c, Accent: c, Background: c, Text: c}
}

func TestParseVisionDeficiency(t *testing.T) {
	for _, v := range AllDeficiencies() {
		got, err := ParseVisionDeficiency(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
	got, err := ParseVisionDeficiency("Deutan")
	require.NoError(t, err)
	assert.Equal(t, Deuteranopia, got)

	_, err = ParseVisionDeficiency("achromatopsia")
	assert.ErrorContains(t, err, "invalid vision deficiency")
}

func TestSimulateKeepsNeutrals(t *testing.T) {
	for _, v := range AllDeficiencies() {
		for _, c := range []colour.Color{colour.Black, colour.White, colour.RGB(128, 128, 128)} {
			assert.Equal(t, c, Simulate(c, v), "%s %s", v, c)
		}
	}
}

func TestSimulateMatrices(t *testing.T) {
	red := colour.RGB(255, 0, 0)
	assert.Equal(t, colour.RGB(145, 142, 0), Simulate(red, Protanopia))
	assert.Equal(t, colour.RGB(125, 140, 0), Simulate(colour.RGB(200, 0, 0), Deuteranopia))
	assert.Equal(t, colour.RGB(242, 0, 0), Simulate(red, Tritanopia))

	blue := colour.RGB(0, 0, 255)
	assert.Equal(t, colour.RGB(0, 0, 193), Simulate(blue, Protanopia))
	assert.Equal(t, colour.RGB(0, 145, 134), Simulate(blue, Tritanopia))
}

func TestSeverityFor(t *testing.T) {
	tests := []struct {
		issues int
		want   Severity
	}{
		{0, SeverityNone},
		{1, SeverityMinor},
		{2, SeverityMajor},
		{3, SeverityMajor},
		{4, SeveritySevere},
		{10, SeveritySevere},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SeverityFor(tt.issues), "%d issues", tt.issues)
	}

	prev := SeverityFor(0)
	for n := 1; n < 20; n++ {
		cur := SeverityFor(n)
		assert.GreaterOrEqual(t, cur, prev, "severity must not drop at %d issues", n)
		assert.LessOrEqual(t, cur.Score(), prev.Score())
		prev = cur
	}
}

func TestCheckWCAGBuckets(t *testing.T) {
	pairs := []ColourPair{
		{Name: "strong", Kind: KindNormalText, Ratio: 8},
		{Name: "aa-only", Kind: KindNormalText, Ratio: 5},
		{Name: "large-only", Kind: KindNormalText, Ratio: 3.5},
		{Name: "weak", Kind: KindNormalText, Ratio: 2},
		{Name: "ui", Kind: KindUIElement, Ratio: 3.2},
	}
	r := CheckWCAG(pairs)

	names := func(ps []ColourPair) []string {
		var out []string
		for _, p := range ps {
			out = append(out, p.Name)
		}
		return out
	}
	assert.Equal(t, []string{"strong", "aa-only", "ui"}, names(r.AA.Passes))
	assert.Equal(t, []string{"large-only"}, names(r.AA.Warnings))
	assert.Equal(t, []string{"weak"}, names(r.AA.Failures))

	assert.Equal(t, []string{"strong"}, names(r.AAA.Passes))
	assert.Equal(t, []string{"aa-only", "ui"}, names(r.AAA.Warnings))
	assert.Equal(t, []string{"large-only", "weak"}, names(r.AAA.Failures))

	assert.InDelta(t, 60, r.AA.PassRate(), 1e-9)
}

func TestAnalyzeBrandPalette(t *testing.T) {
	r := Analyze(brandSystem())

	pair, passed, found := r.WCAG.AA.Find(PairTextOnBackground)
	require.True(t, found)
	assert.True(t, passed, "text/background should pass AA")
	assert.Greater(t, pair.Ratio, 15.0)
	assert.Equal(t, 5, r.WCAG.AA.Total())
	assert.Equal(t, 5, r.WCAG.AAA.Total())

	require.Len(t, r.ColourBlindness, 3)
	for i, v := range AllDeficiencies() {
		assert.Equal(t, v, r.ColourBlindness[i].Deficiency)
	}

	assert.GreaterOrEqual(t, r.Score.Total, 0.0)
	assert.LessOrEqual(t, r.Score.Total, 100.0)
	assert.Equal(t, RatingFor(r.Score.Total), r.Rating)

	for _, s := range r.Suggestions {
		assert.NotEqual(t, PriorityCritical, s.Priority, "unexpected critical: %s", s.Message)
	}
}

func TestAnalyzeUniformPalette(t *testing.T) {
	r := Analyze(uniform(colour.RGB(200, 220, 180)))

	for _, cb := range r.ColourBlindness {
		assert.False(t, cb.Distinguishable)
		assert.Len(t, cb.Issues, 10)
		assert.Equal(t, SeveritySevere, cb.Severity)
	}
	assert.InDelta(t, 20, r.Score.ColourBlindness, 1e-9)
	assert.InDelta(t, 0, r.Score.Usability, 1e-9)
	assert.InDelta(t, 0, r.Score.Contrast, 1e-9)
	assert.Equal(t, RatingPoor, r.Rating)

	require.NotEmpty(t, r.Suggestions)
	assert.Equal(t, PriorityCritical, r.Suggestions[0].Priority)
	for i := 1; i < len(r.Suggestions); i++ {
		assert.LessOrEqual(t, r.Suggestions[i-1].Priority, r.Suggestions[i].Priority)
	}
}

func TestUsabilityFullMarks(t *testing.T) {
	s := colour.ColourSystem{
		Primary:    colour.MustParse("#000080"),
		Secondary:  colour.MustParse("#7a0000"),
		Accent:     colour.MustParse("#4a3000"),
		Background: colour.White,
		Text:       colour.Black,
	}
	sc := score(s, CheckWCAG(Pairs(s)), nil)
	assert.InDelta(t, 100, sc.ColourBlindness, 1e-9)
	assert.InDelta(t, 100, sc.Usability, 1e-9)
}

func TestRatingFor(t *testing.T) {
	assert.Equal(t, RatingExcellent, RatingFor(90))
	assert.Equal(t, RatingGood, RatingFor(89.9))
	assert.Equal(t, RatingGood, RatingFor(75))
	assert.Equal(t, RatingFair, RatingFor(60))
	assert.Equal(t, RatingPoor, RatingFor(59.99))
}

func TestReportJSON(t *testing.T) {
	data, err := json.Marshal(Analyze(brandSystem()))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "wcag")
	assert.Contains(t, decoded, "score")

	cb := decoded["colour_blindness"].([]any)
	assert.Equal(t, "protanopia", cb[0].(map[string]any)["deficiency"])
}
