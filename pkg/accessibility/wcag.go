package accessibility

import (
	"fmt"

	"github.com/jmylchreest/tincture/pkg/colour"
)

// PairKind decides which WCAG thresholds apply to a colour pair.
type PairKind string

const (
	KindNormalText PairKind = "normal-text"
	KindLargeText  PairKind = "large-text"
	KindUIElement  PairKind = "ui-element"
)

// Thresholds returns the minimum AA and AAA contrast ratios for the kind.
// UI elements follow the non-text contrast minimum of 3:1 at AA.
func (k PairKind) Thresholds() (aa, aaa float64) {
	switch k {
	case KindLargeText, KindUIElement:
		return colour.AALarge, colour.AAALarge
	default:
		return colour.AANormal, colour.AAANormal
	}
}

// ColourPair is one foreground/background combination checked for contrast.
type ColourPair struct {
	Name       string       `json:"name"`
	Foreground colour.Color `json:"foreground"`
	Background colour.Color `json:"background"`
	Kind       PairKind     `json:"kind"`
	Ratio      float64      `json:"ratio"`
}

// Bucket holds the pairs checked at one conformance level.
type Bucket struct {
	Passes   []ColourPair `json:"passes"`
	Warnings []ColourPair `json:"warnings"`
	Failures []ColourPair `json:"failures"`
}

// Total returns the number of pairs in the bucket.
func (b Bucket) Total() int {
	return len(b.Passes) + len(b.Warnings) + len(b.Failures)
}

// PassRate returns the percentage of pairs that pass, 0-100.
func (b Bucket) PassRate() float64 {
	total := b.Total()
	if total == 0 {
		return 100
	}
	return float64(len(b.Passes)) / float64(total) * 100
}

// Find returns the pair named name and whether it passed.
func (b Bucket) Find(name string) (ColourPair, bool, bool) {
	for _, p := range b.Passes {
		if p.Name == name {
			return p, true, true
		}
	}
	for _, group := range [][]ColourPair{b.Warnings, b.Failures} {
		for _, p := range group {
			if p.Name == name {
				return p, false, true
			}
		}
	}
	return ColourPair{}, false, false
}

// WCAGReport buckets every pair at AA and at AAA.
type WCAGReport struct {
	AA  Bucket `json:"aa"`
	AAA Bucket `json:"aaa"`
}

// Pair names.
const (
	PairTextOnBackground      = "text/background"
	PairPrimaryOnBackground   = "primary/background"
	PairSecondaryOnBackground = "secondary/background"
	PairAccentOnBackground    = "accent/background"
	PairButtonText            = "button-text/primary"
)

// Pairs returns the fixed set of pairs checked for a system. White on
// primary stands in for button labels.
func Pairs(s colour.ColourSystem) []ColourPair {
	pairs := []ColourPair{
		{Name: PairTextOnBackground, Foreground: s.Text, Background: s.Background, Kind: KindNormalText},
		{Name: PairPrimaryOnBackground, Foreground: s.Primary, Background: s.Background, Kind: KindUIElement},
		{Name: PairSecondaryOnBackground, Foreground: s.Secondary, Background: s.Background, Kind: KindUIElement},
		{Name: PairAccentOnBackground, Foreground: s.Accent, Background: s.Background, Kind: KindUIElement},
		{Name: PairButtonText, Foreground: colour.White, Background: s.Primary, Kind: KindLargeText},
	}
	for i := range pairs {
		pairs[i].Ratio = colour.ContrastRatio(pairs[i].Foreground, pairs[i].Background)
	}
	return pairs
}

// CheckWCAG buckets pairs at both levels.
//
// At AA a normal-text pair that only reaches the large-text minimum is a
// warning. At AAA a pair that passes AA but not AAA is a warning.
func CheckWCAG(pairs []ColourPair) WCAGReport {
	var r WCAGReport
	for _, p := range pairs {
		aa, aaa := p.Kind.Thresholds()

		switch {
		case p.Ratio >= aa:
			r.AA.Passes = append(r.AA.Passes, p)
		case p.Kind == KindNormalText && p.Ratio >= colour.AALarge:
			r.AA.Warnings = append(r.AA.Warnings, p)
		default:
			r.AA.Failures = append(r.AA.Failures, p)
		}

		switch {
		case p.Ratio >= aaa:
			r.AAA.Passes = append(r.AAA.Passes, p)
		case p.Ratio >= aa:
			r.AAA.Warnings = append(r.AAA.Warnings, p)
		default:
			r.AAA.Failures = append(r.AAA.Failures, p)
		}
	}
	return r
}

// String formats the pair for reports.
func (p ColourPair) String() string {
	return fmt.Sprintf("%s %s on %s %.2f:1 (%s)", p.Name, p.Foreground.Hex(), p.Background.Hex(), p.Ratio, p.Kind)
}
