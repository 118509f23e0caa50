package accessibility

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/tincture/pkg/colour"
)

// IndistinguishableDeltaE is the ΔE below which two simulated colours are
// treated as looking the same.
const IndistinguishableDeltaE = 10.0

// Severity grades how many role pairs collapse under a deficiency.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityMinor
	SeverityMajor
	SeveritySevere
)

// SeverityFor maps an issue count to a severity: 0 none, 1 minor, 2-3 major,
// 4 or more severe.
func SeverityFor(issues int) Severity {
	switch {
	case issues <= 0:
		return SeverityNone
	case issues == 1:
		return SeverityMinor
	case issues <= 3:
		return SeverityMajor
	default:
		return SeveritySevere
	}
}

// String returns the string representation of a Severity.
func (s Severity) String() string {
	switch s {
	case SeverityNone:
		return "none"
	case SeverityMinor:
		return "minor"
	case SeverityMajor:
		return "major"
	case SeveritySevere:
		return "severe"
	default:
		return "unknown"
	}
}

// MarshalText encodes the severity name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a severity name.
func (s *Severity) UnmarshalText(text []byte) error {
	for _, v := range []Severity{SeverityNone, SeverityMinor, SeverityMajor, SeveritySevere} {
		if v.String() == string(text) {
			*s = v
			return nil
		}
	}
	return fmt.Errorf("invalid severity: %s (valid: none, minor, major, severe)", text)
}

// Score maps the severity onto 0-100.
func (s Severity) Score() float64 {
	switch s {
	case SeverityNone:
		return 100
	case SeverityMinor:
		return 80
	case SeverityMajor:
		return 50
	default:
		return 20
	}
}

// Issue is one pair of roles that become indistinguishable.
type Issue struct {
	A      colour.Role `json:"a"`
	B      colour.Role `json:"b"`
	DeltaE float64     `json:"delta_e"`
}

// String formats the issue for reports.
func (i Issue) String() string {
	return fmt.Sprintf("%s and %s become indistinguishable (ΔE %.1f)", i.A, i.B, i.DeltaE)
}

// DeficiencyResult is the outcome of simulating one deficiency.
type DeficiencyResult struct {
	Deficiency      VisionDeficiency    `json:"deficiency"`
	Distinguishable bool                `json:"distinguishable"`
	Issues          []Issue             `json:"issues"`
	Severity        Severity            `json:"severity"`
	Simulated       colour.ColourSystem `json:"simulated"`
}

// Summary lists the issues on one line, or "no issues".
func (r DeficiencyResult) Summary() string {
	if len(r.Issues) == 0 {
		return "no issues"
	}
	parts := make([]string, len(r.Issues))
	for i, is := range r.Issues {
		parts[i] = is.String()
	}
	return strings.Join(parts, "; ")
}

// CheckDeficiency simulates v over every role of s and flags each role pair
// whose simulated ΔE falls below IndistinguishableDeltaE.
func CheckDeficiency(s colour.ColourSystem, v VisionDeficiency) DeficiencyResult {
	sim := SimulateSystem(s, v)
	roles := colour.Roles()

	res := DeficiencyResult{Deficiency: v, Simulated: sim}
	for i := 0; i < len(roles); i++ {
		a, _ := sim.Get(roles[i])
		for j := i + 1; j < len(roles); j++ {
			b, _ := sim.Get(roles[j])
			if d := colour.DeltaE(a, b); d < IndistinguishableDeltaE {
				res.Issues = append(res.Issues, Issue{A: roles[i], B: roles[j], DeltaE: d})
			}
		}
	}
	res.Severity = SeverityFor(len(res.Issues))
	res.Distinguishable = len(res.Issues) == 0
	return res
}

// CheckColourBlindness runs CheckDeficiency for every deficiency.
func CheckColourBlindness(s colour.ColourSystem) []DeficiencyResult {
	out := make([]DeficiencyResult, 0, len(AllDeficiencies()))
	for _, v := range AllDeficiencies() {
		out = append(out, CheckDeficiency(s, v))
	}
	return out
}
