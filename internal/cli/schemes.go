package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tincture/pkg/colour"
	"github.com/jmylchreest/tincture/pkg/entropy"
	"github.com/jmylchreest/tincture/pkg/harmony"
)

type schemeInfo struct {
	Name        harmony.Scheme `json:"name"`
	Description string         `json:"description"`
	Offsets     []float64      `json:"offsets"`
	Example     []colour.Color `json:"example"`
}

func newSchemesCmd(a *app) *cobra.Command {
	var hue float64

	cmd := &cobra.Command{
		Use:   "schemes",
		Short: "List harmony schemes",
		Long: `List the harmony schemes with their hue offsets and an example palette built
on --hue. The examples use a fixed midpoint draw so they are stable.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var infos []schemeInfo
			for _, s := range harmony.AllSchemes() {
				infos = append(infos, schemeInfo{
					Name:        s,
					Description: s.Description(),
					Offsets:     s.Offsets(),
					Example:     harmony.Generate(hue, s, entropy.NewSequence(0.5), a.diag),
				})
			}

			if a.json() {
				return writeJSON(cmd.OutOrStdout(), infos)
			}

			w := cmd.OutOrStdout()
			sw := a.swatches(w)
			table := NewTable("Scheme", "Offsets", "Example", "Description")
			table.SetColumnMaxWidth(3, 50)
			for _, info := range infos {
				offsets := make([]string, len(info.Offsets))
				for i, o := range info.Offsets {
					offsets[i] = fmt.Sprintf("%+.0f", o)
				}
				example := make([]string, len(info.Example))
				for i, c := range info.Example {
					example[i] = c.Hex()
					if sw.enabled {
						example[i] = sw.Block(c, 3)
					}
				}
				table.AddRow(info.Name.String(), strings.Join(offsets, " "), strings.Join(example, sepFor(sw)), info.Description)
			}
			table.WriteTo(w)
			return nil
		},
	}

	cmd.Flags().Float64Var(&hue, "hue", 210, "base hue for the example palettes")
	return cmd
}

// sepFor joins blocks tightly and hex codes with a space.
func sepFor(sw swatches) string {
	if sw.enabled {
		return ""
	}
	return " "
}
