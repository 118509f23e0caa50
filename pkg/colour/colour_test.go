package colour

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Color
	}{
		{name: "six digit", input: "#3B82F6", want: Color{R: 0x3b, G: 0x82, B: 0xf6}},
		{name: "no hash", input: "10b981", want: Color{R: 0x10, G: 0xb9, B: 0x81}},
		{name: "three digit", input: "#fff", want: White},
		{name: "eight digit drops alpha", input: "#11182780", want: Color{R: 0x11, G: 0x18, B: 0x27}},
		{name: "rgb function", input: "rgb(255, 0, 128)", want: Color{R: 255, G: 0, B: 128}},
		{name: "named", input: "SteelBlue", want: Color{R: 70, G: 130, B: 180}},
		{name: "whitespace", input: "  #000000 ", want: Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Words spelled only with a-f are bare three or six digit hex, not junk.
func TestParseHexLetterWords(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "bad", want: "#bbaadd"},
		{input: "fed", want: "#ffeedd"},
		{input: "ace", want: "#aaccee"},
		{input: "facade", want: "#facade"},
	}

	diag := &RecordingDiagnostics{}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Hex())
			assert.Equal(t, tt.want, ToHex(tt.input, diag))
		})
	}
	assert.Zero(t, diag.Len(), "hex words must not trigger a fallback")
}

func TestParseInvalid(t *testing.T) {
	inputs := []string{"", "#12", "#zz", "#gggggg", "rgb(1,2)", "rgb(300,0,0)", "notacolour", "not-a-colour", "#12345"}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidColour)
		})
	}
}

func TestParseOrReportsFallback(t *testing.T) {
	diag := &RecordingDiagnostics{}

	assert.Equal(t, SafeGrey, ParseOr("bogus", SafeGrey, diag))
	require.Equal(t, 1, diag.Len())
	ev := diag.Events()[0]
	assert.Equal(t, "parse", ev.Op)
	assert.Equal(t, "bogus", ev.Input)

	assert.Equal(t, White, ParseOr("#ffffff", SafeGrey, diag))
	assert.Equal(t, 1, diag.Len(), "valid input should not record a fallback")
}

func TestLenientHelpers(t *testing.T) {
	diag := &RecordingDiagnostics{}

	assert.Equal(t, "#aabbcc", ToHex("#ABC", diag))
	assert.Equal(t, "#000000", ToHex("nope", diag))
	assert.Zero(t, LuminanceOf("nope", diag))
	assert.InDelta(t, 120, HueOf("#00ff00", diag), 0.01)
	assert.Equal(t, 2, diag.Len())
}

func TestColorJSON(t *testing.T) {
	sys := DefaultSystem()

	data, err := json.Marshal(sys)
	require.NoError(t, err)

	var decoded ColourSystem
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, sys.Primary, decoded.Primary)
	assert.Equal(t, sys.Text, decoded.Text)

	var bad ColourSystem
	assert.Error(t, json.Unmarshal([]byte(`{"primary":"zzz"}`), &bad))
}

func TestRGBAImplementsColor(t *testing.T) {
	r, g, b, a := Color{R: 0xff, G: 0x80, B: 0x00}.RGBA()
	assert.Equal(t, []uint32{0xffff, 0x8080, 0, 0xffff}, []uint32{r, g, b, a})
}

func TestParseSystem(t *testing.T) {
	diag := &RecordingDiagnostics{}
	raw := RawSystem{
		Primary:    "#ff0000",
		Secondary:  "",
		Accent:     "not-a-colour",
		Background: "#fff",
		Text:       "#000",
		Palette:    map[string]string{"border": "#cccccc", "broken": "??"},
	}

	sys := ParseSystem(raw, diag)
	def := DefaultSystem()

	assert.Equal(t, MustParse("#ff0000"), sys.Primary)
	assert.Equal(t, def.Secondary, sys.Secondary)
	assert.Equal(t, def.Accent, sys.Accent)
	assert.NotContains(t, sys.Palette, "broken")
	assert.Equal(t, MustParse("#cccccc"), sys.Palette["border"])
	assert.Equal(t, 3, diag.Len())
}

func TestPinningState(t *testing.T) {
	p, err := ParsePinning([]string{"primary", " Accent ", ""})
	require.NoError(t, err)
	assert.True(t, p.IsPinned(RolePrimary))
	assert.True(t, p.IsPinned(RoleAccent))
	assert.False(t, p.IsPinned(RoleText))
	assert.Equal(t, 2, p.Count())

	_, err = ParsePinning([]string{"sidebar"})
	assert.Error(t, err)
}

func TestSystemWithDoesNotMutate(t *testing.T) {
	sys := DefaultSystem()
	next := sys.With(RolePrimary, White).With("muted", Black)

	assert.NotEqual(t, White, sys.Primary, "With mutated the receiver")
	assert.NotContains(t, sys.Palette, "muted", "With shared the palette map")
	assert.Equal(t, Black, next.Palette["muted"])
}
