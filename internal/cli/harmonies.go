package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tincture/pkg/colour"
	"github.com/jmylchreest/tincture/pkg/harmony"
)

// harmoniesOutput is the JSON shape of the harmonies command.
type harmoniesOutput struct {
	harmony.Analysis
	CompatibleSchemes []harmony.Scheme `json:"compatible_schemes"`
	RandomAvailable   bool             `json:"random_available"`
}

func newHarmoniesCmd(a *app) *cobra.Command {
	var palette *paletteFlags
	var pins []string

	cmd := &cobra.Command{
		Use:   "harmonies",
		Short: "Show which harmony schemes fit the pinned colours",
		Long: `Analyse the hue relationships between pinned brand colours and report which
harmony schemes can still be generated around them.

Only primary, secondary and accent take part; pinned background and text do
not constrain the harmony.

Examples:
  tincture harmonies --primary "#3b82f6" --secondary "#f6af3b" --pin primary,secondary`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sys, err := palette.load(cmd, a.diag)
			if err != nil {
				return err
			}
			pin, err := colour.ParsePinning(pins)
			if err != nil {
				return fmt.Errorf("--pin: %w", err)
			}

			analysis := harmony.AnalyzeRelationships(sys, pin)
			out := harmoniesOutput{
				Analysis:          analysis,
				CompatibleSchemes: harmony.CompatibleSchemes(analysis),
			}
			out.RandomAvailable = len(out.CompatibleSchemes) > 0

			if a.json() {
				return writeJSON(cmd.OutOrStdout(), out)
			}
			printHarmonies(cmd.OutOrStdout(), a.swatches(cmd.OutOrStdout()), out)
			return nil
		},
	}

	palette = newPaletteFlags(cmd)
	cmd.Flags().StringSliceVarP(&pins, "pin", "p", nil, "pinned roles (comma-separated)")
	return cmd
}

func printHarmonies(w io.Writer, sw swatches, out harmoniesOutput) {
	if len(out.Pinned) == 0 {
		fmt.Fprintln(w, "No brand colours pinned; every scheme is available.")
	} else {
		fmt.Fprintln(w, "Pinned:")
		for _, p := range out.Pinned {
			fmt.Fprintf(w, "  %-10s %s  hue %.0f°\n", p.Role, sw.Label(p.Colour, p.Colour.Hex(), 9), p.Hue)
		}
		fmt.Fprintf(w, "  hue range %.0f°\n", harmony.HueRange(out.Hues()))
	}

	if len(out.Relationships) > 0 {
		fmt.Fprintln(w)
		rel := NewTable("From", "To", "Angle", "Relation")
		for _, r := range out.Relationships {
			rel.AddRow(string(r.From), string(r.To), fmt.Sprintf("%.0f°", r.Angle), string(r.Relation))
		}
		rel.WriteTo(w)
	}

	fmt.Fprintln(w)
	table := NewTable("Scheme", "Compatible", "Reason")
	table.SetColumnMaxWidth(2, 60)
	for _, s := range harmony.AllSchemes() {
		c := out.Compatibility[s]
		table.AddRow(s.String(), yesNo(c.Compatible), c.Reason)
	}
	ok, reason := harmony.IsCompatible(harmony.Random, out.Analysis)
	table.AddRow(harmony.Random.String(), yesNo(ok), reason)
	table.WriteTo(w)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
