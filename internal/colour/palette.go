package colour

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrUnknownRole is returned for a role name outside AllRoles.
	ErrUnknownRole = errors.New("unknown palette role")

	// ErrMissingRole is returned when a palette lacks a required role.
	ErrMissingRole = errors.New("missing palette role")
)

// Role names a slot in the base palette.
type Role string

const (
	RoleTransparent     Role = "transparent"
	RoleBackground      Role = "bg"
	RoleForeground      Role = "fg"
	RoleHighlight       Role = "highlight"
	RoleLine            Role = "line"
	RoleLineTransparent Role = "lineTransparent"
	RoleSelection       Role = "selection"

	// Named colours
	RoleRed            Role = "red"
	RoleRedTransparent Role = "redTransparent"
	RolePink           Role = "pink"
	RoleOrange         Role = "orange"
	RoleYellow         Role = "yellow"
	RoleGreen          Role = "green"
	RoleGreenDark      Role = "greenDark"
	RoleCyanDark       Role = "cyanDark"
	RoleCyan           Role = "cyan"
	RoleCyanLight      Role = "cyanLight"
	RoleCyanHighlight  Role = "cyanHighlight"
	RoleGray           Role = "gray"
	RoleGrayMid        Role = "grayMid"
	RoleGrayDark       Role = "grayDark"
	RoleGrayDarker     Role = "grayDarker"
	RoleBlack          Role = "black"
)

// AllRoles is the closed role set in canonical order.
var AllRoles = []Role{
	RoleTransparent,
	RoleBackground,
	RoleForeground,
	RoleHighlight,
	RoleLine,
	RoleLineTransparent,
	RoleSelection,
	RoleRed,
	RoleRedTransparent,
	RolePink,
	RoleOrange,
	RoleYellow,
	RoleGreen,
	RoleGreenDark,
	RoleCyanDark,
	RoleCyan,
	RoleCyanLight,
	RoleCyanHighlight,
	RoleGray,
	RoleGrayMid,
	RoleGrayDark,
	RoleGrayDarker,
	RoleBlack,
}

var roleIndex = func() map[Role]int {
	m := make(map[Role]int, len(AllRoles))
	for i, r := range AllRoles {
		m[r] = i
	}
	return m
}()

// IsKnown reports whether r belongs to AllRoles.
func (r Role) IsKnown() bool {
	_, ok := roleIndex[r]
	return ok
}

// LookupRole resolves a role name case-insensitively.
func LookupRole(name string) (Role, error) {
	for _, r := range AllRoles {
		if strings.EqualFold(string(r), name) {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRole, name)
}

// Palette maps roles to hex colours.
type Palette map[Role]string

// DefaultPalette returns the hand-authored base palette.
func DefaultPalette() Palette {
	return Palette{
		RoleTransparent:     "#000000",
		RoleBackground:      "#000400",
		RoleForeground:      "#f8f8f8",
		RoleHighlight:       "#002300",
		RoleLine:            "#303F3Faf",
		RoleLineTransparent: "#303D3D77",
		RoleSelection:       "#303D3Dbf",
		RoleRed:             "#F83379",
		RoleRedTransparent:  "#F8337977",
		RolePink:            "#FF7DCF",
		RoleOrange:          "#EEA2A2",
		RoleYellow:          "#D3B857",
		RoleGreen:           "#00D700",
		RoleGreenDark:       "#008D48",
		RoleCyanDark:        "#1C7D6C",
		RoleCyan:            "#00B5B5",
		RoleCyanLight:       "#8FECEC",
		RoleCyanHighlight:   "#A2FFFF",
		RoleGray:            "#94C1C1",
		RoleGrayMid:         "#5b8686",
		RoleGrayDark:        "#546262",
		RoleGrayDarker:      "#303D3D",
		RoleBlack:           "#121B1B",
	}
}

// Roles returns the palette's roles in canonical order. Roles outside
// AllRoles follow, sorted by name.
func (p Palette) Roles() []Role {
	roles := make([]Role, 0, len(p))
	for r := range p {
		roles = append(roles, r)
	}
	sort.Slice(roles, func(i, j int) bool {
		ii, iok := roleIndex[roles[i]]
		ji, jok := roleIndex[roles[j]]
		switch {
		case iok && jok:
			return ii < ji
		case iok != jok:
			return iok
		default:
			return roles[i] < roles[j]
		}
	})
	return roles
}

// Get returns the hex colour for a role.
func (p Palette) Get(r Role) (string, bool) {
	hex, ok := p[r]
	return hex, ok
}

// Clone returns a shallow copy.
func (p Palette) Clone() Palette {
	out := make(Palette, len(p))
	for r, hex := range p {
		out[r] = hex
	}
	return out
}

// Validate checks that the palette holds exactly the known roles and that
// every colour parses.
func (p Palette) Validate() error {
	for _, r := range p.Roles() {
		if !r.IsKnown() {
			return fmt.Errorf("%w: %q", ErrUnknownRole, r)
		}
		if _, err := ParseRGBA(p[r]); err != nil {
			return fmt.Errorf("role %s: %w", r, err)
		}
	}
	for _, r := range AllRoles {
		if _, ok := p[r]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingRole, r)
		}
	}
	return nil
}

// Process applies t to every colour of base and returns the derived palette.
// The output has exactly the roles of base. Any unparsable colour fails the
// whole palette.
func Process(base Palette, t Transform) (Palette, error) {
	if t == nil {
		t = Identity
	}

	out := make(Palette, len(base))
	for _, r := range base.Roles() {
		c, err := ParseHex(base[r])
		if err != nil {
			return nil, fmt.Errorf("role %s: %w", r, err)
		}
		out[r] = FormatHex(t(c))
	}
	return out, nil
}
