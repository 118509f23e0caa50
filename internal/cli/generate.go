package cli

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tincture/pkg/colour"
	"github.com/jmylchreest/tincture/pkg/harmony"
	"github.com/jmylchreest/tincture/pkg/variation"
)

type generateOptions struct {
	palette *paletteFlags
	pins    []string
	baseHue float64
	count   int
}

// generateOutput is the JSON shape of the generate command.
type generateOutput struct {
	Seed       uint64             `json:"seed"`
	Pinned     []colour.Role      `json:"pinned"`
	Variations []variation.Result `json:"variations"`
}

func newGenerateCmd(a *app) *cobra.Command {
	opts := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a colour system variation",
		Long: `Generate a new colour system from the current one.

Pinned roles are kept exactly. The remaining brand roles are filled from a
harmony built on the first pinned brand colour (primary, then secondary, then
accent), or on a random hue when none is pinned. Background and text are
derived unless pinned, and text always meets WCAG AA against the background.

Examples:
  # Fully random system
  tincture generate

  # Keep the brand primary, triadic harmony, dark background
  tincture generate --primary "#3b82f6" --pin primary --scheme triadic --theme dark

  # Reproducible output
  tincture generate --seed 42 --count 3

  # Same palette in, same variation out
  tincture generate -i brand.json --pin primary,text --seed content -f json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, a, opts)
		},
	}

	opts.palette = newPaletteFlags(cmd)
	cmd.Flags().StringSliceVarP(&opts.pins, "pin", "p", nil, "roles to keep unchanged (comma-separated)")
	cmd.Flags().Float64Var(&opts.baseHue, "base-hue", 0, "base hue in degrees when no brand role is pinned")
	cmd.Flags().IntVarP(&opts.count, "count", "n", 1, "number of variations to generate")
	return cmd
}

func runGenerate(cmd *cobra.Command, a *app, opts *generateOptions) error {
	if opts.count < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", opts.count)
	}

	current, err := opts.palette.load(cmd, a.diag)
	if err != nil {
		return err
	}
	pin, err := colour.ParsePinning(opts.pins)
	if err != nil {
		return fmt.Errorf("--pin: %w", err)
	}

	src, seed, err := a.cfg.Source(current.Hexes()...)
	if err != nil {
		return fmt.Errorf("failed to initialise seed: %w", err)
	}
	a.logger.Debug("seed selected", "mode", a.cfg.Seed.Mode, "seed", seed)

	vopts := variation.Options{
		Pinning: pin,
		Scheme:  a.cfg.Scheme,
		Theme:   a.cfg.Theme,
	}
	if cmd.Flags().Changed("base-hue") {
		vopts.BaseHue = &opts.baseHue
	}

	if vopts.Scheme == harmony.Random {
		if len(harmony.CompatibleSchemes(harmony.AnalyzeRelationships(current, pin))) == 0 {
			a.logger.Warn("no harmony scheme fits the pinned colours; falling back to analogous",
				"pinned", pin.PinnedRoles())
		}
	}

	gen := variation.NewBuilder().
		WithLogger(a.logger.Named("variation")).
		WithDiagnostics(a.diag).
		Build()

	out := generateOutput{Seed: seed, Pinned: pin.PinnedRoles()}
	for range opts.count {
		out.Variations = append(out.Variations, gen.GenerateDetailed(&current, vopts, src))
	}

	if a.json() {
		return writeJSON(cmd.OutOrStdout(), out)
	}
	return printVariations(cmd.OutOrStdout(), a.swatches(cmd.OutOrStdout()), pin, out)
}

func printVariations(w io.Writer, sw swatches, pin colour.PinningState, out generateOutput) error {
	for i, res := range out.Variations {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "Variation %d: %s scheme, %s theme, base hue %.0f°", i+1, res.Scheme, res.Theme, res.BaseHue)
		if res.BaseRole != "" {
			fmt.Fprintf(w, " (from %s)", res.BaseRole)
		}
		fmt.Fprintln(w)
		if res.SchemeFallback {
			fmt.Fprintln(w, "Warning: no scheme fits the pinned colours; used analogous")
		}
		fmt.Fprintln(w)

		table := NewTable(sw.headers("Role", "Colour", "Contrast", "Pinned")...)
		sys := res.System
		for _, r := range colour.Roles() {
			c, _ := sys.Get(r)
			contrast := ""
			if r != colour.RoleBackground {
				contrast = fmt.Sprintf("%.2f:1", colour.ContrastRatio(c, sys.Background))
			}
			pinned := ""
			if pin.IsPinned(r) {
				pinned = "yes"
			}
			table.AddRow(sw.row(c, string(r), c.Hex(), contrast, pinned)...)
		}
		for _, k := range paletteKeys(sys.Palette) {
			c := sys.Palette[k]
			table.AddRow(sw.row(c, k, c.Hex(), fmt.Sprintf("%.2f:1", colour.ContrastRatio(c, sys.Background)), "")...)
		}
		if _, err := table.WriteTo(w); err != nil {
			return err
		}

		if preview := sw.Sample(sys.Text, sys.Background, "The quick brown fox"); preview != "" {
			fmt.Fprintf(w, "\n%s\n", preview)
		}
	}
	fmt.Fprintf(w, "\nSeed: %d\n", out.Seed)
	return nil
}

// paletteKeys orders derived entries as the generator writes them, then
// any others alphabetically.
func paletteKeys(p map[string]colour.Color) []string {
	known := []string{
		colour.PaletteSurface, colour.PaletteMuted, colour.PaletteBorder,
		colour.PaletteMutedText, colour.PalettePrimaryForeground, colour.PaletteAccentForeground,
	}
	var keys []string
	for _, k := range known {
		if _, ok := p[k]; ok {
			keys = append(keys, k)
		}
	}
	var rest []string
	for k := range p {
		if !slices.Contains(known, k) {
			rest = append(rest, k)
		}
	}
	slices.Sort(rest)
	return append(keys, rest...)
}
