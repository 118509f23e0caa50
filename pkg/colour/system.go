package colour

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Role names a slot in a ColourSystem.
type Role string

const (
	RolePrimary    Role = "primary"
	RoleSecondary  Role = "secondary"
	RoleAccent     Role = "accent"
	RoleBackground Role = "background"
	RoleText       Role = "text"
)

// Derived palette keys written by the variation generator.
const (
	PaletteSurface           = "surface"
	PaletteMuted             = "muted"
	PaletteBorder            = "border"
	PaletteMutedText         = "mutedText"
	PalettePrimaryForeground = "primaryForeground"
	PaletteAccentForeground  = "accentForeground"
)

// Roles returns the five core roles in canonical order.
func Roles() []Role {
	return []Role{RolePrimary, RoleSecondary, RoleAccent, RoleBackground, RoleText}
}

// HarmonyRoles returns the brand roles that take part in hue harmonies,
// in base-hue priority order.
func HarmonyRoles() []Role {
	return []Role{RolePrimary, RoleSecondary, RoleAccent}
}

// ParseRole converts a string to a Role.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(Roles(), r) {
		return r, nil
	}
	return "", fmt.Errorf("invalid role: %s (valid: primary, secondary, accent, background, text)", s)
}

// ColourSystem is a complete brand palette: five core roles plus an open map
// of derived roles.
type ColourSystem struct {
	Primary    Color            `json:"primary"`
	Secondary  Color            `json:"secondary"`
	Accent     Color            `json:"accent"`
	Background Color            `json:"background"`
	Text       Color            `json:"text"`
	Palette    map[string]Color `json:"palette,omitempty"`
}

// DefaultSystem is the fixed palette used when no usable input exists.
func DefaultSystem() ColourSystem {
	return ColourSystem{
		Primary:    Color{R: 0x3b, G: 0x82, B: 0xf6},
		Secondary:  Color{R: 0x10, G: 0xb9, B: 0x81},
		Accent:     Color{R: 0xf5, G: 0x9e, B: 0x0b},
		Background: White,
		Text:       Color{R: 0x11, G: 0x18, B: 0x27},
		Palette:    map[string]Color{},
	}
}

// Get returns the colour for a core role.
func (s ColourSystem) Get(r Role) (Color, bool) {
	switch r {
	case RolePrimary:
		return s.Primary, true
	case RoleSecondary:
		return s.Secondary, true
	case RoleAccent:
		return s.Accent, true
	case RoleBackground:
		return s.Background, true
	case RoleText:
		return s.Text, true
	default:
		return Color{}, false
	}
}

// With returns a copy of s with role r set to c. Unknown roles are written
// to the palette map.
func (s ColourSystem) With(r Role, c Color) ColourSystem {
	out := s.Clone()
	switch r {
	case RolePrimary:
		out.Primary = c
	case RoleSecondary:
		out.Secondary = c
	case RoleAccent:
		out.Accent = c
	case RoleBackground:
		out.Background = c
	case RoleText:
		out.Text = c
	default:
		out.Palette[string(r)] = c
	}
	return out
}

// Clone returns a deep copy.
func (s ColourSystem) Clone() ColourSystem {
	out := s
	out.Palette = make(map[string]Color, len(s.Palette))
	maps.Copy(out.Palette, s.Palette)
	return out
}

// Hexes returns the hex value of each core role in canonical order.
func (s ColourSystem) Hexes() []string {
	out := make([]string, 0, len(Roles()))
	for _, r := range Roles() {
		c, _ := s.Get(r)
		out = append(out, c.Hex())
	}
	return out
}

// RawSystem is a ColourSystem as received from an untyped caller.
type RawSystem struct {
	Primary    string            `yaml:"primary" json:"primary"`
	Secondary  string            `yaml:"secondary" json:"secondary"`
	Accent     string            `yaml:"accent" json:"accent"`
	Background string            `yaml:"background" json:"background"`
	Text       string            `yaml:"text" json:"text"`
	Palette    map[string]string `yaml:"palette,omitempty" json:"palette,omitempty"`
}

// ParseSystem validates every role of raw. Unparseable or missing core roles
// take the matching DefaultSystem value; unparseable palette entries are dropped.
// Each substitution is reported to diag.
func ParseSystem(raw RawSystem, diag Diagnostics) ColourSystem {
	def := DefaultSystem()
	out := ColourSystem{
		Primary:    ParseOr(raw.Primary, def.Primary, diag),
		Secondary:  ParseOr(raw.Secondary, def.Secondary, diag),
		Accent:     ParseOr(raw.Accent, def.Accent, diag),
		Background: ParseOr(raw.Background, def.Background, diag),
		Text:       ParseOr(raw.Text, def.Text, diag),
		Palette:    make(map[string]Color, len(raw.Palette)),
	}
	for _, k := range slices.Sorted(maps.Keys(raw.Palette)) {
		c, err := Parse(raw.Palette[k])
		if err != nil {
			OrNop(diag).Fallback("palette", raw.Palette[k], fmt.Sprintf("dropping %q: %v", k, err))
			continue
		}
		out.Palette[k] = c
	}
	return out
}

// Raw converts s back to its string form.
func (s ColourSystem) Raw() RawSystem {
	raw := RawSystem{
		Primary:    s.Primary.Hex(),
		Secondary:  s.Secondary.Hex(),
		Accent:     s.Accent.Hex(),
		Background: s.Background.Hex(),
		Text:       s.Text.Hex(),
		Palette:    make(map[string]string, len(s.Palette)),
	}
	for k, c := range s.Palette {
		raw.Palette[k] = c.Hex()
	}
	return raw
}

// PinningState records which core roles are locked by the user.
type PinningState struct {
	Primary    bool `json:"primary"`
	Secondary  bool `json:"secondary"`
	Accent     bool `json:"accent"`
	Background bool `json:"background"`
	Text       bool `json:"text"`
}

// IsPinned reports whether role r is pinned.
func (p PinningState) IsPinned(r Role) bool {
	switch r {
	case RolePrimary:
		return p.Primary
	case RoleSecondary:
		return p.Secondary
	case RoleAccent:
		return p.Accent
	case RoleBackground:
		return p.Background
	case RoleText:
		return p.Text
	default:
		return false
	}
}

// Pin returns a copy of p with role r pinned.
func (p PinningState) Pin(r Role) PinningState {
	switch r {
	case RolePrimary:
		p.Primary = true
	case RoleSecondary:
		p.Secondary = true
	case RoleAccent:
		p.Accent = true
	case RoleBackground:
		p.Background = true
	case RoleText:
		p.Text = true
	}
	return p
}

// PinnedRoles returns pinned roles in canonical order.
func (p PinningState) PinnedRoles() []Role {
	var out []Role
	for _, r := range Roles() {
		if p.IsPinned(r) {
			out = append(out, r)
		}
	}
	return out
}

// Count returns the number of pinned roles.
func (p PinningState) Count() int {
	return len(p.PinnedRoles())
}

// ParsePinning builds a PinningState from role names such as "primary,accent".
func ParsePinning(names []string) (PinningState, error) {
	var p PinningState
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			continue
		}
		r, err := ParseRole(n)
		if err != nil {
			return PinningState{}, err
		}
		p = p.Pin(r)
	}
	return p, nil
}
