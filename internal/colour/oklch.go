// Package colour provides the perceptual colour engine used to derive theme
// variants: hex parsing into OKLCH, transform primitives and palette processing.
package colour

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrMalformedColour is returned when a string is not a 6 or 8 digit hex colour.
var ErrMalformedColour = errors.New("malformed colour")

// OKLCH is a colour in the OKLCH perceptual space with a straight alpha channel.
//
// H is only meaningful when HueDefined is true. Hue is in degrees and is not
// normalised, so transforms may push it outside [0, 360).
type OKLCH struct {
	L          float64 `json:"l"`
	C          float64 `json:"c"`
	H          float64 `json:"h"`
	HueDefined bool    `json:"hueDefined"`
	Alpha      float64 `json:"alpha"`
}

// EnsureHue defaults an undefined hue to 0 and marks it defined.
// Recipes that rotate or scale hue call this first so greys are not skipped.
func (c *OKLCH) EnsureHue() {
	if !c.HueDefined {
		c.H = 0
		c.HueDefined = true
	}
}

// String returns a CSS-like representation, e.g. "oklch(0.7 0.2 142 / 1)".
func (c OKLCH) String() string {
	h := "none"
	if c.HueDefined {
		h = strconv.FormatFloat(c.H, 'f', 2, 64)
	}
	return fmt.Sprintf("oklch(%.4f %.4f %s / %.3f)", c.L, c.C, h, c.Alpha)
}

// RGBA is an 8-bit per channel colour.
type RGBA struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// Hex returns the colour as a lowercase "#rrggbbaa" string.
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ParseRGBA parses "#RRGGBB" or "#RRGGBBAA" (the "#" is optional).
// A missing alpha channel is fully opaque.
func ParseRGBA(hex string) (RGBA, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(hex), "#")

	if len(raw) != 6 && len(raw) != 8 {
		return RGBA{}, fmt.Errorf("%w: %q: expected 6 or 8 hex digits, got %d", ErrMalformedColour, hex, len(raw))
	}

	var channels [4]uint8
	channels[3] = 0xff
	for i := 0; i < len(raw)/2; i++ {
		v, err := strconv.ParseUint(raw[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGBA{}, fmt.Errorf("%w: %q: invalid digits %q", ErrMalformedColour, hex, raw[i*2:i*2+2])
		}
		channels[i] = uint8(v)
	}

	return RGBA{R: channels[0], G: channels[1], B: channels[2], A: channels[3]}, nil
}

// ParseHex parses a hex colour into OKLCH via sRGB -> linear sRGB -> OKLab.
// OKLab is reached directly from linear sRGB, not through XYZ, so every
// 8-bit colour survives a round trip.
func ParseHex(hex string) (OKLCH, error) {
	rgba, err := ParseRGBA(hex)
	if err != nil {
		return OKLCH{}, err
	}
	return FromRGBA(rgba), nil
}

// MustParseHex is like ParseHex but panics on error.
// Only for static tables and tests.
func MustParseHex(hex string) OKLCH {
	c, err := ParseHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// FromRGBA converts an 8-bit colour to OKLCH. Greys (R == G == B) get zero
// chroma and an undefined hue.
func FromRGBA(rgba RGBA) OKLCH {
	col := colorful.Color{
		R: float64(rgba.R) / 255.0,
		G: float64(rgba.G) / 255.0,
		B: float64(rgba.B) / 255.0,
	}
	alpha := float64(rgba.A) / 255.0

	if rgba.R == rgba.G && rgba.G == rgba.B {
		// OKLab maps a grey of linear luminance Y to L = cbrt(Y), a = b = 0.
		y, _, _ := col.LinearRgb()
		return OKLCH{L: math.Cbrt(y), Alpha: alpha}
	}

	l, c, h := colorful.OkLabToOkLch(linearToOkLab(col.LinearRgb()))
	return OKLCH{L: l, C: c, H: h, HueDefined: true, Alpha: alpha}
}

// ToRGBA converts back to 8-bit sRGB, clamping anything out of gamut.
// An undefined hue converts as 0. NaN components encode as 0.
func (c OKLCH) ToRGBA() RGBA {
	h := c.H
	if !c.HueDefined {
		h = 0
	}

	var col colorful.Color
	if c.C == 0 {
		// Zero chroma is grey whatever the hue; keep the channels identical.
		y := c.L * c.L * c.L
		col = colorful.LinearRgb(y, y, y)
	} else {
		col = colorful.LinearRgb(okLabToLinear(colorful.OkLchToOkLab(c.L, c.C, h)))
	}
	return RGBA{
		R: to8Bit(col.R),
		G: to8Bit(col.G),
		B: to8Bit(col.B),
		A: to8Bit(c.Alpha),
	}
}

// FormatHex encodes the colour as "#rrggbbaa". The alpha channel is always
// written, even when opaque.
func FormatHex(c OKLCH) string {
	return c.ToRGBA().Hex()
}

// to8Bit clamps v to [0, 1] and scales it to a byte.
func to8Bit(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xff
	}
	return uint8(math.Round(v * 255))
}
