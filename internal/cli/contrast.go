package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tincture/pkg/colour"
)

// contrastOutput is the JSON shape of the contrast command.
type contrastOutput struct {
	Foreground colour.Color  `json:"foreground"`
	Background colour.Color  `json:"background"`
	Ratio      float64       `json:"ratio"`
	Level      string        `json:"level"`
	AANormal   bool          `json:"aa_normal"`
	AALarge    bool          `json:"aa_large"`
	AAANormal  bool          `json:"aaa_normal"`
	AAALarge   bool          `json:"aaa_large"`
	Suggested  *colour.Color `json:"suggested,omitempty"`
}

func newContrastCmd(a *app) *cobra.Command {
	var target float64

	cmd := &cobra.Command{
		Use:   "contrast <foreground> <background>",
		Short: "Check the WCAG contrast ratio of two colours",
		Long: `Print the WCAG 2 contrast ratio between two colours and whether it meets AA
and AAA for normal and large text. Colours may be hex (#rgb, #rrggbb),
rgb(r, g, b) or CSS names.

With --target, a foreground adjusted to reach that ratio is suggested when the
pair falls short.

Examples:
  tincture contrast "#767676" white
  tincture contrast "#3b82f6" "#ffffff" --target 4.5`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fg, err := colour.Parse(args[0])
			if err != nil {
				return fmt.Errorf("foreground: %w", err)
			}
			bg, err := colour.Parse(args[1])
			if err != nil {
				return fmt.Errorf("background: %w", err)
			}

			ratio := colour.ContrastRatio(fg, bg)
			out := contrastOutput{
				Foreground: fg,
				Background: bg,
				Ratio:      ratio,
				Level:      colour.ComplianceLevel(ratio).String(),
				AANormal:   colour.CheckAACompliance(fg, bg, false),
				AALarge:    colour.CheckAACompliance(fg, bg, true),
				AAANormal:  colour.CheckAAACompliance(fg, bg, false),
				AAALarge:   colour.CheckAAACompliance(fg, bg, true),
			}
			if target > 0 && ratio < target {
				s := colour.AdjustForContrast(fg, bg, target)
				out.Suggested = &s
			}

			if a.json() {
				return writeJSON(cmd.OutOrStdout(), out)
			}

			w := cmd.OutOrStdout()
			sw := a.swatches(w)
			fmt.Fprintf(w, "%s on %s: %.2f:1 (%s)\n", fg.Hex(), bg.Hex(), ratio, out.Level)
			if sample := sw.Sample(fg, bg, "The quick brown fox"); sample != "" {
				fmt.Fprintln(w, sample)
			}
			table := NewTable("Level", "Normal text", "Large text")
			table.AddRow("AA", passFail(out.AANormal), passFail(out.AALarge))
			table.AddRow("AAA", passFail(out.AAANormal), passFail(out.AAALarge))
			table.WriteTo(w)
			if out.Suggested != nil {
				fmt.Fprintf(w, "\nSuggested foreground for %.1f:1: %s (%.2f:1)\n",
					target, out.Suggested.Hex(), colour.ContrastRatio(*out.Suggested, bg))
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&target, "target", 0, "suggest a foreground that reaches this ratio")
	return cmd
}

func passFail(ok bool) string {
	if ok {
		return "pass"
	}
	return "fail"
}
