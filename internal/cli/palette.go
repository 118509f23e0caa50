package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/tincture/pkg/colour"
)

// paletteFlags reads a colour system from --input and per-role flags.
type paletteFlags struct {
	input string
	roles map[colour.Role]*string
}

func newPaletteFlags(cmd *cobra.Command) *paletteFlags {
	p := &paletteFlags{roles: make(map[colour.Role]*string)}
	cmd.Flags().StringVarP(&p.input, "input", "i", "", "palette file, YAML or JSON (roles as colour strings)")

	def := colour.DefaultSystem()
	for _, r := range colour.Roles() {
		c, _ := def.Get(r)
		p.roles[r] = cmd.Flags().String(string(r), "", fmt.Sprintf("%s colour (default %s)", r, c.Hex()))
	}
	return p
}

// load builds the system: defaults, then the input file, then role flags.
// Role flags must parse; bad file entries fall back to defaults through diag.
func (p *paletteFlags) load(cmd *cobra.Command, diag colour.Diagnostics) (colour.ColourSystem, error) {
	raw := colour.DefaultSystem().Raw()

	if p.input != "" {
		fromFile, err := loadRawPalette(p.input)
		if err != nil {
			return colour.ColourSystem{}, err
		}
		mergeRaw(&raw, fromFile)
	}

	sys := colour.ParseSystem(raw, diag)
	for _, r := range colour.Roles() {
		if !cmd.Flags().Changed(string(r)) {
			continue
		}
		c, err := colour.Parse(*p.roles[r])
		if err != nil {
			return colour.ColourSystem{}, fmt.Errorf("--%s: %w", r, err)
		}
		sys = sys.With(r, c)
	}
	return sys, nil
}

// loadRawPalette reads a palette file as YAML or JSON, chosen by extension.
func loadRawPalette(path string) (colour.RawSystem, error) {
	data, err := os.ReadFile(path) // #nosec G304 - User-specified palette file, intended to be read
	if err != nil {
		return colour.RawSystem{}, fmt.Errorf("failed to read palette: %w", err)
	}

	var raw colour.RawSystem
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return raw, fmt.Errorf("failed to parse YAML palette: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return raw, fmt.Errorf("failed to parse JSON palette: %w", err)
		}
	default:
		// Try YAML first, then JSON.
		if err := yaml.Unmarshal(data, &raw); err != nil {
			if jsonErr := json.Unmarshal(data, &raw); jsonErr != nil {
				return raw, fmt.Errorf("failed to parse palette as YAML or JSON: %w", err)
			}
		}
	}
	return raw, nil
}

// mergeRaw copies the non-empty fields of src over dst.
func mergeRaw(dst *colour.RawSystem, src colour.RawSystem) {
	for _, f := range []struct {
		dst *string
		src string
	}{
		{&dst.Primary, src.Primary},
		{&dst.Secondary, src.Secondary},
		{&dst.Accent, src.Accent},
		{&dst.Background, src.Background},
		{&dst.Text, src.Text},
	} {
		if f.src != "" {
			*f.dst = f.src
		}
	}
	if len(src.Palette) > 0 {
		if dst.Palette == nil {
			dst.Palette = make(map[string]string, len(src.Palette))
		}
		for k, v := range src.Palette {
			dst.Palette[k] = v
		}
	}
}
