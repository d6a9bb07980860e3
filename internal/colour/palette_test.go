package colour

import (
	"errors"
	"strings"
	"testing"
)

func TestDefaultPaletteIsValid(t *testing.T) {
	p := DefaultPalette()

	if len(p) != len(AllRoles) {
		t.Errorf("DefaultPalette has %d roles, want %d", len(p), len(AllRoles))
	}
	if err := p.Validate(); err != nil {
		t.Errorf("DefaultPalette().Validate() = %v", err)
	}
}

func TestPaletteValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(Palette)
		wantErr error
	}{
		{
			name:    "missing role",
			mutate:  func(p Palette) { delete(p, RoleGreen) },
			wantErr: ErrMissingRole,
		},
		{
			name:    "unknown role",
			mutate:  func(p Palette) { p["purple"] = "#800080" },
			wantErr: ErrUnknownRole,
		},
		{
			name:    "bad colour",
			mutate:  func(p Palette) { p[RoleRed] = "#nothex" },
			wantErr: ErrMalformedColour,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultPalette()
			tt.mutate(p)
			if err := p.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPaletteRolesOrder(t *testing.T) {
	p := DefaultPalette()
	p["zeta"] = "#000000"
	p["alpha"] = "#000000"

	roles := p.Roles()
	for i, r := range AllRoles {
		if roles[i] != r {
			t.Fatalf("Roles()[%d] = %s, want %s", i, roles[i], r)
		}
	}
	if got := roles[len(AllRoles):]; len(got) != 2 || got[0] != "alpha" || got[1] != "zeta" {
		t.Errorf("unknown roles = %v, want [alpha zeta]", got)
	}
}

func TestLookupRole(t *testing.T) {
	for _, name := range []string{"greenDark", "greendark", "GREENDARK"} {
		r, err := LookupRole(name)
		if err != nil {
			t.Errorf("LookupRole(%q) error: %v", name, err)
			continue
		}
		if r != RoleGreenDark {
			t.Errorf("LookupRole(%q) = %s, want %s", name, r, RoleGreenDark)
		}
	}

	if _, err := LookupRole("ultraviolet"); !errors.Is(err, ErrUnknownRole) {
		t.Errorf("LookupRole(ultraviolet) error = %v, want ErrUnknownRole", err)
	}
}

func TestPaletteClone(t *testing.T) {
	p := DefaultPalette()
	c := p.Clone()
	c[RoleRed] = "#000000"

	if p[RoleRed] == c[RoleRed] {
		t.Error("Clone shares storage with the original")
	}
}

func TestProcessPreservesRoles(t *testing.T) {
	base := DefaultPalette()
	base["extra"] = "#123456"

	transforms := map[string]Transform{
		"identity": Identity,
		"nil":      nil,
		"black": func(c OKLCH) OKLCH {
			c.L = 0
			return c
		},
	}

	for name, tr := range transforms {
		t.Run(name, func(t *testing.T) {
			out, err := Process(base, tr)
			if err != nil {
				t.Fatalf("Process error: %v", err)
			}
			if len(out) != len(base) {
				t.Fatalf("Process returned %d roles, want %d", len(out), len(base))
			}
			for r := range base {
				if _, ok := out[r]; !ok {
					t.Errorf("role %s missing from derived palette", r)
				}
			}
		})
	}
}

func TestProcessIdentityNormalises(t *testing.T) {
	out, err := Process(DefaultPalette(), Identity)
	if err != nil {
		t.Fatalf("Process error: %v", err)
	}

	if got := out[RoleGreen]; got != "#00d700ff" {
		t.Errorf("green = %s, want #00d700ff", got)
	}
	if got := out[RoleLine]; got != "#303f3faf" {
		t.Errorf("line = %s, want #303f3faf", got)
	}
}

func TestProcessMalformedIsFatal(t *testing.T) {
	base := DefaultPalette()
	base[RoleCyan] = "#00B5B"

	out, err := Process(base, Identity)
	if err == nil {
		t.Fatal("expected error for malformed colour")
	}
	if !errors.Is(err, ErrMalformedColour) {
		t.Errorf("error = %v, want ErrMalformedColour", err)
	}
	if !strings.Contains(err.Error(), string(RoleCyan)) {
		t.Errorf("error %q does not name the role", err)
	}
	if out != nil {
		t.Errorf("expected no partial output, got %d roles", len(out))
	}
}

func TestProcessDoesNotMutateBase(t *testing.T) {
	base := DefaultPalette()
	want := base.Clone()

	if _, err := Process(base, func(c OKLCH) OKLCH { c.L = 1; return c }); err != nil {
		t.Fatalf("Process error: %v", err)
	}
	for r, hex := range want {
		if base[r] != hex {
			t.Errorf("base[%s] changed from %s to %s", r, hex, base[r])
		}
	}
}

func TestPaletteString(t *testing.T) {
	p := Palette{RoleBackground: "#000400ff", RoleForeground: "#f8f8f8ff"}

	plain := PaletteString(p, false)
	if strings.Contains(plain, "\033[") {
		t.Error("plain output contains ANSI escapes")
	}
	if strings.Index(plain, "bg") > strings.Index(plain, "fg") {
		t.Error("roles not listed in canonical order")
	}

	withSwatch := PaletteString(p, true)
	if !strings.Contains(withSwatch, "\033[48;2;248;248;248m") {
		t.Errorf("swatch output missing truecolour escape: %q", withSwatch)
	}
}
