package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tincture/pkg/accessibility"
	"github.com/jmylchreest/tincture/pkg/colour"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	var palette *paletteFlags
	var failUnder float64

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Score a colour system for accessibility",
		Long: `Check a colour system against WCAG AA and AAA, simulate protanopia,
deuteranopia and tritanopia, and report a 0-100 score with suggestions.

Examples:
  tincture analyze --primary "#3b82f6" --background "#ffffff" --text "#111827"
  tincture analyze -i brand.json -f json
  tincture analyze -i brand.json --fail-under 75`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sys, err := palette.load(cmd, a.diag)
			if err != nil {
				return err
			}

			report := accessibility.Analyze(sys)
			a.logger.Debug("accessibility analysed",
				"score", fmt.Sprintf("%.1f", report.Score.Total), "rating", report.Rating,
				"suggestions", len(report.Suggestions))

			if a.json() {
				if err := writeJSON(cmd.OutOrStdout(), report); err != nil {
					return err
				}
			} else {
				printReport(cmd.OutOrStdout(), a.swatches(cmd.OutOrStdout()), sys, report)
			}

			if failUnder > 0 && report.Score.Total < failUnder {
				return fmt.Errorf("accessibility score %.1f is below %.1f", report.Score.Total, failUnder)
			}
			return nil
		},
	}

	palette = newPaletteFlags(cmd)
	cmd.Flags().Float64Var(&failUnder, "fail-under", 0, "exit non-zero when the total score is below this value")
	return cmd
}

func printReport(w io.Writer, sw swatches, sys colour.ColourSystem, r accessibility.Report) {
	fmt.Fprintf(w, "Accessibility score: %.1f (%s)\n", r.Score.Total, r.Rating)
	fmt.Fprintf(w, "  contrast %.1f, colour blindness %.1f, usability %.1f\n\n",
		r.Score.Contrast, r.Score.ColourBlindness, r.Score.Usability)

	table := NewTable("Pair", "Kind", "Ratio", "AA", "AAA")
	for _, p := range accessibility.Pairs(sys) {
		name := p.Name
		if sample := sw.Sample(p.Foreground, p.Background, "Aa"); sample != "" {
			name = sample + " " + name
		}
		table.AddRow(name, string(p.Kind), fmt.Sprintf("%.2f:1", p.Ratio),
			verdict(r.WCAG.AA, p.Name), verdict(r.WCAG.AAA, p.Name))
	}
	table.WriteTo(w)
	fmt.Fprintf(w, "\nAA pass rate %.0f%%, AAA pass rate %.0f%%\n\n", r.WCAG.AA.PassRate(), r.WCAG.AAA.PassRate())

	cb := NewTable("Deficiency", "Severity", "Issues")
	cb.SetColumnMaxWidth(2, 60)
	for _, res := range r.ColourBlindness {
		cb.AddRow(res.Deficiency.String(), res.Severity.String(), res.Summary())
	}
	cb.WriteTo(w)

	if len(r.Suggestions) == 0 {
		fmt.Fprintln(w, "\nNo suggestions.")
		return
	}
	fmt.Fprintln(w, "\nSuggestions:")
	for _, s := range r.Suggestions {
		fmt.Fprintf(w, "  [%s] %s\n", strings.ToUpper(s.Priority.String()), s.Message)
	}
}

func verdict(b accessibility.Bucket, name string) string {
	for _, group := range []struct {
		pairs []accessibility.ColourPair
		label string
	}{
		{b.Passes, "pass"},
		{b.Warnings, "warn"},
		{b.Failures, "fail"},
	} {
		for _, p := range group.pairs {
			if p.Name == name {
				return group.label
			}
		}
	}
	return "-"
}
