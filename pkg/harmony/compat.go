package harmony

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/jmylchreest/tincture/pkg/colour"
)

// Tolerance is the angular slack, in degrees, allowed when matching pinned
// hues to a scheme's pattern.
const Tolerance = 20.0

// Hue range limits for the single-hue-family schemes.
const (
	MonochromaticMaxRange = 30.0
	AnalogousMaxRange     = 60.0
)

// ErrNoCompatibleScheme signals that random scheme resolution found nothing
// compatible with the pinned colours. Callers should prevent this by disabling
// the random option whenever CompatibleSchemes is empty.
var ErrNoCompatibleScheme = errors.New("no harmony scheme is compatible with the pinned colours")

// PinnedColour is a pinned brand colour and its hue.
type PinnedColour struct {
	Role   colour.Role  `json:"role"`
	Colour colour.Color `json:"colour"`
	Hue    float64      `json:"hue"`
}

// Relation names the geometric relationship between two hues.
type Relation string

const (
	RelationIdentical          Relation = "identical"
	RelationAnalogous          Relation = "analogous"
	RelationSplitAdjacent      Relation = "split-adjacent"
	RelationTetradic           Relation = "tetradic"
	RelationTriadic            Relation = "triadic"
	RelationSplitComplementary Relation = "split-complementary"
	RelationComplementary      Relation = "complementary"
	RelationUnrelated          Relation = "unrelated"
)

// Relationship describes the angle between two pinned colours.
type Relationship struct {
	From     colour.Role `json:"from"`
	To       colour.Role `json:"to"`
	Angle    float64     `json:"angle"` // shortest angular distance, 0-180
	Relation Relation    `json:"relation"`
}

// Compatibility is the verdict for one scheme.
type Compatibility struct {
	Compatible bool   `json:"compatible"`
	Reason     string `json:"reason"`
}

// Analysis is the geometry of the pinned brand colours and the verdict per scheme.
type Analysis struct {
	Pinned        []PinnedColour           `json:"pinned"`
	Relationships []Relationship           `json:"relationships"`
	Compatibility map[Scheme]Compatibility `json:"compatibility"`
}

// AnalyzeRelationships inspects the pinned brand roles (primary, secondary,
// accent) of system. Pinned background and text take no part in hue geometry.
func AnalyzeRelationships(system colour.ColourSystem, pinning colour.PinningState) Analysis {
	var a Analysis
	for _, r := range colour.HarmonyRoles() {
		if !pinning.IsPinned(r) {
			continue
		}
		c, _ := system.Get(r)
		a.Pinned = append(a.Pinned, PinnedColour{Role: r, Colour: c, Hue: c.Hue()})
	}

	for i := 0; i < len(a.Pinned); i++ {
		for j := i + 1; j < len(a.Pinned); j++ {
			angle := colour.HueDistance(a.Pinned[i].Hue, a.Pinned[j].Hue)
			a.Relationships = append(a.Relationships, Relationship{
				From:     a.Pinned[i].Role,
				To:       a.Pinned[j].Role,
				Angle:    angle,
				Relation: classify(angle),
			})
		}
	}

	a.Compatibility = make(map[Scheme]Compatibility, len(AllSchemes()))
	for _, s := range AllSchemes() {
		ok, reason := IsCompatible(s, a)
		a.Compatibility[s] = Compatibility{Compatible: ok, Reason: reason}
	}
	return a
}

// Hues returns the hues of the pinned colours.
func (a Analysis) Hues() []float64 {
	out := make([]float64, len(a.Pinned))
	for i, p := range a.Pinned {
		out[i] = p.Hue
	}
	return out
}

// CompatibleSchemes returns the concrete schemes compatible with the analysis,
// in AllSchemes order.
func CompatibleSchemes(a Analysis) []Scheme {
	var out []Scheme
	for _, s := range AllSchemes() {
		if ok, _ := IsCompatible(s, a); ok {
			out = append(out, s)
		}
	}
	return out
}

// IsCompatible reports whether the pinned hues in a can belong to scheme,
// with a human-readable reason. Zero or one pinned colour constrains nothing.
func IsCompatible(scheme Scheme, a Analysis) (bool, string) {
	if scheme == Random {
		if len(CompatibleSchemes(a)) == 0 {
			return false, "no concrete scheme fits the pinned colours"
		}
		return true, "resolves to a compatible scheme"
	}
	if !scheme.IsConcrete() {
		return false, "unknown scheme"
	}

	hues := a.Hues()
	if len(hues) < 2 {
		return true, "fewer than two pinned colours; the base hue is unconstrained"
	}
	distances := pairwiseDistances(hues)

	switch scheme {
	case Monochromatic:
		r := HueRange(hues)
		if r <= MonochromaticMaxRange {
			return true, fmt.Sprintf("pinned hues span %.0f°, within %.0f°", r, MonochromaticMaxRange)
		}
		return false, fmt.Sprintf("pinned hues span %.0f°, wider than %.0f°", r, MonochromaticMaxRange)

	case Analogous:
		r := HueRange(hues)
		if r <= AnalogousMaxRange {
			return true, fmt.Sprintf("pinned hues span %.0f°, within %.0f°", r, AnalogousMaxRange)
		}
		return false, fmt.Sprintf("pinned hues span %.0f°, wider than %.0f°", r, AnalogousMaxRange)

	case Complementary:
		for i, h := range hues {
			if !hasPartnerNear(hues, i, 180) {
				return false, fmt.Sprintf("hue %.0f° has no pinned colour opposite it", h)
			}
		}
		return true, "every pinned hue has an opposite partner"

	case Triadic:
		// 240° apart is the same as 120° the short way round.
		matches := countNear(distances, 120)
		need := min(2, len(distances))
		if matches >= need {
			return true, fmt.Sprintf("%d pinned pair(s) sit 120° apart", matches)
		}
		return false, fmt.Sprintf("only %d of %d pinned pair(s) sit 120° apart", matches, need)

	case Tetradic:
		if len(hues) > 4 {
			return true, "more than four pinned colours; tetradic is not constrained"
		}
		matches := countNear(distances, 90, 180)
		need := min(3, len(distances))
		if matches >= need {
			return true, fmt.Sprintf("%d pinned pair(s) sit on the 90° grid", matches)
		}
		return false, fmt.Sprintf("only %d of %d pinned pair(s) sit on the 90° grid", matches, need)

	case SplitComplementary:
		// 210° apart is 150° the short way round.
		if matches := countNear(distances, 60, 150); matches >= 1 {
			return true, "a pinned pair matches the split-complementary spacing"
		}
		return false, "no pinned pair is 60° or 150° apart"
	}

	return false, "unknown scheme"
}

// HueRange returns the narrowest arc, in degrees, that contains every hue.
// The range of {350°, 10°} is 20°, not 340°.
func HueRange(hues []float64) float64 {
	if len(hues) < 2 {
		return 0
	}
	sorted := make([]float64, len(hues))
	for i, h := range hues {
		sorted[i] = colour.NormaliseHue(h)
	}
	slices.Sort(sorted)

	// The narrowest covering arc is the circle minus its largest empty gap.
	largestGap := 360 - sorted[len(sorted)-1] + sorted[0]
	for i := 1; i < len(sorted); i++ {
		largestGap = math.Max(largestGap, sorted[i]-sorted[i-1])
	}
	return 360 - largestGap
}

func pairwiseDistances(hues []float64) []float64 {
	var out []float64
	for i := 0; i < len(hues); i++ {
		for j := i + 1; j < len(hues); j++ {
			out = append(out, colour.HueDistance(hues[i], hues[j]))
		}
	}
	return out
}

func near(angle, target float64) bool {
	return math.Abs(angle-target) <= Tolerance
}

func countNear(distances []float64, targets ...float64) int {
	n := 0
	for _, d := range distances {
		for _, t := range targets {
			if near(d, t) {
				n++
				break
			}
		}
	}
	return n
}

func hasPartnerNear(hues []float64, i int, target float64) bool {
	for j, h := range hues {
		if j != i && near(colour.HueDistance(hues[i], h), target) {
			return true
		}
	}
	return false
}

func classify(angle float64) Relation {
	switch {
	case angle <= 5:
		return RelationIdentical
	case angle <= 45:
		return RelationAnalogous
	case near(angle, 60):
		return RelationSplitAdjacent
	case near(angle, 90):
		return RelationTetradic
	case near(angle, 120):
		return RelationTriadic
	case near(angle, 150):
		return RelationSplitComplementary
	case near(angle, 180):
		return RelationComplementary
	default:
		return RelationUnrelated
	}
}
