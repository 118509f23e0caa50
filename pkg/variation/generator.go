package variation

import (
	"fmt"
	"maps"
	"math"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/tincture/pkg/colour"
	"github.com/jmylchreest/tincture/pkg/entropy"
	"github.com/jmylchreest/tincture/pkg/harmony"
)

// Background bands by theme, as HSL fractions.
const (
	lightBgMinLightness  = 0.85
	lightBgMaxLightness  = 0.98
	lightBgMinSaturation = 0.02
	lightBgMaxSaturation = 0.15

	darkBgMinLightness  = 0.02
	darkBgMaxLightness  = 0.18
	darkBgMinSaturation = 0.02
	darkBgMaxSaturation = 0.20

	// Background hue drifts this far either side of the primary hue.
	backgroundHueJitter = 10.0

	// DefaultLightBias is the probability that ThemeRandom resolves to light.
	DefaultLightBias = 0.7
)

// Palette mix ratios from background toward text.
const (
	surfaceMix   = 0.03
	mutedMix     = 0.05
	borderMix    = 0.15
	mutedTextMix = 0.35
)

// Result is a generated system plus the choices that produced it.
type Result struct {
	System colour.ColourSystem `json:"system"`
	// Scheme is the concrete scheme used, after resolving harmony.Random.
	Scheme harmony.Scheme `json:"scheme"`
	// Theme is light or dark; for a pinned background it reflects that colour.
	Theme ThemePreference `json:"theme"`
	// BaseHue is the hue the harmony was built from.
	BaseHue float64 `json:"base_hue"`
	// BaseRole is the pinned role that supplied BaseHue, or empty.
	BaseRole colour.Role `json:"base_role,omitempty"`
	// Harmony is the full tuple generated for the scheme.
	Harmony []colour.Color `json:"harmony"`
	// SchemeFallback is set when random resolution found no compatible scheme.
	SchemeFallback bool `json:"scheme_fallback,omitempty"`
}

// Builder provides a fluent interface for constructing a Generator.
type Builder struct {
	diag      colour.Diagnostics
	logger    hclog.Logger
	space     colour.Space
	lightBias float64
}

// NewBuilder creates a Generator builder with default settings.
func NewBuilder() *Builder {
	return &Builder{lightBias: DefaultLightBias}
}

// WithDiagnostics sets the fallback sink. Defaults to the logger's sink.
func (b *Builder) WithDiagnostics(d colour.Diagnostics) *Builder {
	b.diag = d
	return b
}

// WithLogger sets the logger used for trace output and, unless
// WithDiagnostics is used, for fallback notes.
func (b *Builder) WithLogger(l hclog.Logger) *Builder {
	b.logger = l
	return b
}

// WithSpace swaps the colour math backend used for palette mixing.
func (b *Builder) WithSpace(s colour.Space) *Builder {
	b.space = s
	return b
}

// WithLightBias sets the probability that ThemeRandom resolves to light.
func (b *Builder) WithLightBias(p float64) *Builder {
	b.lightBias = p
	return b
}

// Build constructs the Generator.
func (b *Builder) Build() *Generator {
	g := &Generator{
		logger:    b.logger,
		diag:      b.diag,
		space:     b.space,
		lightBias: colour.Clamp(b.lightBias, 0, 1),
	}
	if math.IsNaN(b.lightBias) {
		g.lightBias = DefaultLightBias
	}
	if g.logger == nil {
		g.logger = hclog.NewNullLogger()
	}
	if g.diag == nil {
		g.diag = colour.NewLoggerDiagnostics(g.logger)
	}
	if g.space == nil {
		g.space = colour.DefaultSpace
	}
	return g
}

// Generator produces colour variations. It holds no mutable state and is
// safe for concurrent use; randomness comes from the Source passed per call.
type Generator struct {
	diag      colour.Diagnostics
	logger    hclog.Logger
	space     colour.Space
	lightBias float64
}

var defaultGenerator = NewBuilder().Build()

// Generate creates a variation of current using the default Generator.
func Generate(current *colour.ColourSystem, opts Options, src entropy.Source) colour.ColourSystem {
	return defaultGenerator.Generate(current, opts, src)
}

// Generate creates a variation of current. See GenerateDetailed.
func (g *Generator) Generate(current *colour.ColourSystem, opts Options, src entropy.Source) colour.ColourSystem {
	return g.GenerateDetailed(current, opts, src).System
}

// GenerateDetailed creates a variation of current and reports the choices made.
//
// Pinned roles are copied verbatim. A nil current starts from DefaultSystem.
// A nil src uses a crypto-seeded source. The returned system is always complete.
func (g *Generator) GenerateDetailed(current *colour.ColourSystem, opts Options, src entropy.Source) Result {
	if src == nil {
		src = entropy.NewRandom()
	}

	base := colour.DefaultSystem()
	if current != nil {
		base = current.Clone()
	} else if opts.Pinning.Count() > 0 {
		g.diag.Fallback("generate", "nil system", "pinned roles refer to the default palette")
	}
	pin := opts.Pinning

	res := Result{}

	// 1. Base hue.
	res.BaseHue, res.BaseRole = g.BaseHue(base, pin, opts.BaseHue, src)

	// 2. Effective scheme.
	scheme, err := g.ResolveScheme(opts.Scheme, harmony.AnalyzeRelationships(base, pin), src)
	if err != nil {
		res.SchemeFallback = true
	}
	res.Scheme = scheme

	// 3. Harmony tuple.
	res.Harmony = harmony.Generate(res.BaseHue, scheme, src, g.diag)
	g.logger.Trace("harmony generated", "summary", harmony.Describe(scheme, res.BaseHue, res.Harmony))

	// 4. Brand roles.
	out := base.Clone()
	slot := 0
	if res.BaseRole != "" {
		// The pinned colour is slot 0 of the tuple.
		slot = 1
	}
	for _, r := range colour.HarmonyRoles() {
		if pin.IsPinned(r) {
			continue
		}
		out = out.With(r, res.Harmony[slot%len(res.Harmony)])
		slot++
	}

	// 5. Background.
	if pin.Background {
		res.Theme = themeOf(out.Background)
	} else {
		res.Theme = g.resolveTheme(opts.Theme, src)
		out.Background = g.background(out.Primary, res.Theme, src)
	}

	// 6. Text.
	if !pin.Text {
		text := colour.OptimalTextColor(out.Background)
		out.Text = colour.AdjustForContrast(text, out.Background, colour.AANormal)
	}

	// 7. Derived palette.
	out.Palette = g.derivePalette(out, base.Palette)

	g.logger.Debug("variation generated",
		"scheme", res.Scheme, "theme", res.Theme, "base_hue", fmt.Sprintf("%.1f", res.BaseHue),
		"base_role", res.BaseRole, "pinned", pin.Count())

	res.System = out
	return res
}

// BaseHue returns the hue a variation is built from and the pinned role that
// supplied it. Priority is primary, secondary, accent; then the requested hue;
// then a uniform draw from [0, 360).
func (g *Generator) BaseHue(system colour.ColourSystem, pin colour.PinningState, requested *float64, src entropy.Source) (float64, colour.Role) {
	for _, r := range colour.HarmonyRoles() {
		if pin.IsPinned(r) {
			c, _ := system.Get(r)
			return c.Hue(), r
		}
	}
	if requested != nil {
		if math.IsNaN(*requested) || math.IsInf(*requested, 0) {
			g.diag.Fallback("base-hue", fmt.Sprint(*requested), "non-finite hue; drawing at random")
		} else {
			return colour.NormaliseHue(*requested), ""
		}
	}
	return entropy.Range(src, 0, 360), ""
}

// ResolveScheme turns the requested scheme into a concrete one. Random draws
// uniformly from the schemes compatible with analysis. When none are
// compatible it returns Analogous together with harmony.ErrNoCompatibleScheme;
// the Analogous result is still usable.
func (g *Generator) ResolveScheme(requested harmony.Scheme, analysis harmony.Analysis, src entropy.Source) (harmony.Scheme, error) {
	if requested.IsConcrete() {
		return requested, nil
	}
	if requested != harmony.Random {
		g.diag.Fallback("scheme", requested.String(), "unknown scheme; using analogous")
		return harmony.Analogous, nil
	}

	compatible := harmony.CompatibleSchemes(analysis)
	if len(compatible) == 0 {
		g.diag.Fallback("scheme", requested.String(), harmony.ErrNoCompatibleScheme.Error()+"; using analogous")
		return harmony.Analogous, harmony.ErrNoCompatibleScheme
	}
	return entropy.Pick(src, compatible), nil
}

func (g *Generator) resolveTheme(pref ThemePreference, src entropy.Source) ThemePreference {
	switch pref {
	case ThemeLight, ThemeDark:
		return pref
	case ThemeRandom:
		if entropy.Chance(src, g.lightBias) {
			return ThemeLight
		}
		return ThemeDark
	default:
		g.diag.Fallback("theme", pref.String(), "unknown theme; using light")
		return ThemeLight
	}
}

// background derives a tinted near-white or near-black from the primary hue.
func (g *Generator) background(primary colour.Color, theme ThemePreference, src entropy.Source) colour.Color {
	hue := primary.Hue() + entropy.Range(src, -backgroundHueJitter, backgroundHueJitter)

	if theme == ThemeDark {
		s := entropy.Range(src, darkBgMinSaturation, darkBgMaxSaturation)
		l := entropy.Range(src, darkBgMinLightness, darkBgMaxLightness)
		return colour.FromHSL(hue, s, l)
	}
	s := entropy.Range(src, lightBgMinSaturation, lightBgMaxSaturation)
	l := entropy.Range(src, lightBgMinLightness, lightBgMaxLightness)
	return colour.FromHSL(hue, s, l)
}

// derivePalette mixes background toward text for the neutral roles and picks
// readable foregrounds for the brand fills. Entries of previous that are not
// derived here are carried forward.
func (g *Generator) derivePalette(sys colour.ColourSystem, previous map[string]colour.Color) map[string]colour.Color {
	out := make(map[string]colour.Color, len(previous)+6)
	maps.Copy(out, previous)

	out[colour.PaletteSurface] = g.space.Mix(sys.Background, sys.Text, surfaceMix)
	out[colour.PaletteMuted] = g.space.Mix(sys.Background, sys.Text, mutedMix)
	out[colour.PaletteBorder] = g.space.Mix(sys.Background, sys.Text, borderMix)

	mutedText := g.space.Mix(sys.Text, sys.Background, mutedTextMix)
	out[colour.PaletteMutedText] = colour.AdjustForContrast(mutedText, sys.Background, colour.AALarge)

	out[colour.PalettePrimaryForeground] = colour.OptimalTextColor(sys.Primary)
	out[colour.PaletteAccentForeground] = colour.OptimalTextColor(sys.Accent)
	return out
}

func themeOf(bg colour.Color) ThemePreference {
	if colour.OptimalTextColor(bg) == colour.Black {
		return ThemeLight
	}
	return ThemeDark
}
