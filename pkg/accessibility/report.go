package accessibility

import (
	"fmt"
	"slices"

	"github.com/jmylchreest/tincture/pkg/colour"
)

// Score weights and limits.
const (
	contrastWeight        = 0.5
	colourBlindnessWeight = 0.3
	usabilityWeight       = 0.2

	aaRateWeight  = 0.7
	aaaRateWeight = 0.3

	// DistinctDeltaE is the ΔE brand colours should keep between each other.
	DistinctDeltaE = 20.0
)

// Rating is the overall verdict band for a total score.
type Rating string

const (
	RatingExcellent Rating = "excellent"
	RatingGood      Rating = "good"
	RatingFair      Rating = "fair"
	RatingPoor      Rating = "poor"
)

// RatingFor maps a 0-100 score to a band.
func RatingFor(total float64) Rating {
	switch {
	case total >= 90:
		return RatingExcellent
	case total >= 75:
		return RatingGood
	case total >= 60:
		return RatingFair
	default:
		return RatingPoor
	}
}

// Score is the composite 0-100 score and its parts.
type Score struct {
	Total           float64 `json:"total"`
	Contrast        float64 `json:"contrast"`
	ColourBlindness float64 `json:"colour_blindness"`
	Usability       float64 `json:"usability"`
}

// Report is the full accessibility analysis of a colour system.
type Report struct {
	WCAG            WCAGReport         `json:"wcag"`
	ColourBlindness []DeficiencyResult `json:"colour_blindness"`
	Score           Score              `json:"score"`
	Rating          Rating             `json:"rating"`
	Suggestions     []Suggestion       `json:"suggestions"`
}

// Analyze checks contrast and colour-vision deficiency for s, scores the
// result and lists suggestions ordered by priority.
func Analyze(s colour.ColourSystem) Report {
	r := Report{
		WCAG:            CheckWCAG(Pairs(s)),
		ColourBlindness: CheckColourBlindness(s),
	}
	r.Score = score(s, r.WCAG, r.ColourBlindness)
	r.Rating = RatingFor(r.Score.Total)
	r.Suggestions = Suggest(s, r.ColourBlindness)
	return r
}

func score(s colour.ColourSystem, w WCAGReport, cb []DeficiencyResult) Score {
	var sc Score
	sc.Contrast = w.AA.PassRate()*aaRateWeight + w.AAA.PassRate()*aaaRateWeight

	if len(cb) > 0 {
		var sum float64
		for _, r := range cb {
			sum += r.Severity.Score()
		}
		sc.ColourBlindness = sum / float64(len(cb))
	} else {
		sc.ColourBlindness = 100
	}

	sc.Usability = usability(s)
	sc.Total = sc.Contrast*contrastWeight + sc.ColourBlindness*colourBlindnessWeight + sc.Usability*usabilityWeight
	return sc
}

// usability is half brand distinctiveness and half base contrast checks.
func usability(s colour.ColourSystem) float64 {
	brand := brandPairs(s)
	distinct := 0
	for _, p := range brand {
		if p.deltaE >= DistinctDeltaE {
			distinct++
		}
	}
	distinctiveness := float64(distinct) / float64(len(brand))

	checks := 0.0
	if colour.ContrastRatio(s.Text, s.Background) >= colour.AANormal {
		checks += 0.5
	}
	if colour.ContrastRatio(s.Primary, s.Background) >= colour.AALarge {
		checks += 0.5
	}
	return distinctiveness*50 + checks*50
}

type brandPair struct {
	a, b   colour.Role
	deltaE float64
}

func brandPairs(s colour.ColourSystem) []brandPair {
	roles := colour.HarmonyRoles()
	var out []brandPair
	for i := 0; i < len(roles); i++ {
		a, _ := s.Get(roles[i])
		for j := i + 1; j < len(roles); j++ {
			b, _ := s.Get(roles[j])
			out = append(out, brandPair{a: roles[i], b: roles[j], deltaE: colour.DeltaE(a, b)})
		}
	}
	return out
}

// Priority orders suggestions, most urgent first.
type Priority int

const (
	PriorityCritical Priority = iota
	PriorityHigh
	PriorityMedium
	PriorityLow
)

// String returns the string representation of a Priority.
func (p Priority) String() string {
	switch p {
	case PriorityCritical:
		return "critical"
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	case PriorityLow:
		return "low"
	default:
		return "unknown"
	}
}

// MarshalText encodes the priority name.
func (p Priority) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText decodes a priority name.
func (p *Priority) UnmarshalText(text []byte) error {
	for _, v := range []Priority{PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow} {
		if v.String() == string(text) {
			*p = v
			return nil
		}
	}
	return fmt.Errorf("invalid priority: %s (valid: critical, high, medium, low)", text)
}

// Suggestion is one recommended change.
type Suggestion struct {
	Priority Priority      `json:"priority"`
	Category string        `json:"category"`
	Message  string        `json:"message"`
	Roles    []colour.Role `json:"roles,omitempty"`
}

// Suggestion categories.
const (
	CategoryContrast        = "contrast"
	CategoryColourBlindness = "colour-blindness"
	CategoryDistinctiveness = "distinctiveness"
)

// Suggest re-checks s and returns one suggestion per violated rule, sorted
// critical to low. Suggestions of equal priority keep rule order.
func Suggest(s colour.ColourSystem, cb []DeficiencyResult) []Suggestion {
	var out []Suggestion

	textRatio := colour.ContrastRatio(s.Text, s.Background)
	switch {
	case textRatio < colour.AANormal:
		out = append(out, Suggestion{
			Priority: PriorityCritical,
			Category: CategoryContrast,
			Message: fmt.Sprintf("text contrast is %.2f:1; raise it to at least %.1f:1 for WCAG AA",
				textRatio, colour.AANormal),
			Roles: []colour.Role{colour.RoleText, colour.RoleBackground},
		})
	case textRatio < colour.AAANormal:
		out = append(out, Suggestion{
			Priority: PriorityLow,
			Category: CategoryContrast,
			Message:  fmt.Sprintf("text contrast is %.2f:1; %.1f:1 would meet WCAG AAA", textRatio, colour.AAANormal),
			Roles:    []colour.Role{colour.RoleText, colour.RoleBackground},
		})
	}

	if ratio := colour.ContrastRatio(s.Primary, s.Background); ratio < colour.AALarge {
		out = append(out, Suggestion{
			Priority: PriorityHigh,
			Category: CategoryContrast,
			Message: fmt.Sprintf("primary contrast against the background is %.2f:1; interactive elements need %.1f:1",
				ratio, colour.AALarge),
			Roles: []colour.Role{colour.RolePrimary, colour.RoleBackground},
		})
	}

	for _, r := range cb {
		var p Priority
		switch r.Severity {
		case SeveritySevere:
			p = PriorityHigh
		case SeverityMajor:
			p = PriorityMedium
		case SeverityMinor:
			p = PriorityLow
		default:
			continue
		}
		out = append(out, Suggestion{
			Priority: p,
			Category: CategoryColourBlindness,
			Message:  fmt.Sprintf("%s: %s; add lightness contrast or non-colour cues", r.Deficiency, r.Summary()),
			Roles:    issueRoles(r.Issues),
		})
	}

	for _, bp := range brandPairs(s) {
		if bp.deltaE < DistinctDeltaE {
			out = append(out, Suggestion{
				Priority: PriorityMedium,
				Category: CategoryDistinctiveness,
				Message:  fmt.Sprintf("%s and %s are too similar (ΔE %.1f); separate them in hue or lightness", bp.a, bp.b, bp.deltaE),
				Roles:    []colour.Role{bp.a, bp.b},
			})
		}
	}

	slices.SortStableFunc(out, func(a, b Suggestion) int {
		return int(a.Priority) - int(b.Priority)
	})
	return out
}

func issueRoles(issues []Issue) []colour.Role {
	var roles []colour.Role
	for _, is := range issues {
		for _, r := range []colour.Role{is.A, is.B} {
			if !slices.Contains(roles, r) {
				roles = append(roles, r)
			}
		}
	}
	return roles
}
