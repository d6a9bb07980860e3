package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// ColourPreview returns a truecolour block of width spaces.
// Alpha is ignored; terminals have nothing to blend against.
func ColourPreview(c RGBA, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	bgColour := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	return bgColour + strings.Repeat(" ", width) + ansiReset
}

// FormatPaletteRow formats one palette line: optional swatch, role, hex.
func FormatPaletteRow(role Role, hex string, swatch bool, width int) string {
	if !swatch {
		return fmt.Sprintf("  %-20s %s", role, hex)
	}

	rgba, err := ParseRGBA(hex)
	if err != nil {
		return fmt.Sprintf("  %s  %-20s %s", strings.Repeat("?", max(width, 1)), role, hex)
	}
	return fmt.Sprintf("  %s  %-20s %s", ColourPreview(rgba, width), role, hex)
}

// PaletteString lists every role of p in canonical order, one per line.
func PaletteString(p Palette, swatch bool) string {
	var b strings.Builder
	for _, r := range p.Roles() {
		b.WriteString(FormatPaletteRow(r, p[r], swatch, defaultWidth))
		b.WriteString("\n")
	}
	return b.String()
}
