package cli

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"

	"github.com/jmylchreest/tincture/pkg/colour"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

var ansiPattern = regexp.MustCompile("\033\\[[0-9;]*m")

// swatches renders colour blocks, or nothing when disabled.
type swatches struct {
	enabled bool
}

// newSwatches enables ANSI output only when allowed and w is a terminal.
func newSwatches(w io.Writer, allowed bool) swatches {
	return swatches{enabled: allowed && isTerminal(w)}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Block returns a solid colour block width cells wide.
func (s swatches) Block(c colour.Color, width int) string {
	if !s.enabled {
		return ""
	}
	if width <= 0 {
		width = defaultWidth
	}
	return background(c) + strings.Repeat(" ", width) + ansiReset
}

// headers inserts a swatch column after the first two when enabled.
func (s swatches) headers(names ...string) []string {
	if !s.enabled || len(names) < 2 {
		return names
	}
	return append([]string{names[0], names[1], ""}, names[2:]...)
}

// row matches headers, placing a block of c in the swatch column.
func (s swatches) row(c colour.Color, cells ...string) []string {
	if !s.enabled || len(cells) < 2 {
		return cells
	}
	return append([]string{cells[0], cells[1], s.Block(c, 6)}, cells[2:]...)
}

// Label returns text centred on a block of c, in black or white for contrast.
func (s swatches) Label(c colour.Color, text string, width int) string {
	if !s.enabled {
		return text
	}
	if width <= 0 {
		width = defaultWidth
	}

	displayText := text
	if len(text) > width {
		displayText = text[:width]
	} else if len(text) < width {
		padding := (width - len(text)) / 2
		displayText = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
	}
	return background(c) + foreground(colour.OptimalTextColor(c)) + displayText + ansiReset
}

// Sample shows fg text on bg, as a contrast preview.
func (s swatches) Sample(fg, bg colour.Color, text string) string {
	if !s.enabled {
		return ""
	}
	return background(bg) + foreground(fg) + " " + text + " " + ansiReset
}

func background(c colour.Color) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
}

func foreground(c colour.Color) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, c.R, c.G, c.B, ansiSuffix)
}

// visibleLen is the printed width of s in runes, escape sequences removed.
func visibleLen(s string) int {
	return utf8.RuneCountInString(ansiPattern.ReplaceAllString(s, ""))
}
