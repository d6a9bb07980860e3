package variant

import "github.com/jmylchreest/evoke/internal/colour"

// Shared by base and ice.
const (
	chromaBoost     = 1.25
	flattenMax      = 0.6
	flattenStrength = 0.2
)

const (
	popThreshold     = 0.05
	popLightnessLift = 0.05
)

// Base boosts chroma and flattens lightness without moving hue. Greys pass
// through untouched.
func Base(c colour.OKLCH) colour.OKLCH {
	if !c.HueDefined {
		return c
	}
	c.C *= chromaBoost
	c.L = colour.FlattenLightness(c.L, 0, flattenMax, flattenStrength)
	return c
}

// Ice is Base rotated 80 degrees, applied to greys as well.
func Ice(c colour.OKLCH) colour.OKLCH {
	c.EnsureHue()
	c.H += 80
	c.C *= chromaBoost
	c.L = colour.FlattenLightness(c.L, 0, flattenMax, flattenStrength)
	return c
}

// Mono drops chroma, lifts the upper half of the lightness range and bands it
// into thirds. Near-black collapses to black.
func Mono(c colour.OKLCH) colour.OKLCH {
	c.EnsureHue()
	c.C = 0
	if c.L > 0.5 {
		c.L *= c.L
		c.L += 0.15
	}
	c.L = colour.Quantize(c.L, 3)
	return colour.FloorLightness(c, colour.BlackThreshold)
}

// Lavender scales hue by 1.5 and snaps it down to a multiple of 1/6 degree.
func Lavender(c colour.OKLCH) colour.OKLCH {
	c.EnsureHue()
	c.H *= 1.5
	c.H = colour.Quantize(c.H, 6)
	return c
}

// Blacklight squares the hue and shifts it back by 220 degrees, crushes
// near-black and boosts chroma by half.
func Blacklight(c colour.OKLCH) colour.OKLCH {
	c.EnsureHue()
	c.H *= c.H
	c.H -= 220
	c = colour.FloorLightness(c, colour.BlackThreshold)
	c.C *= 1.5
	return c
}

// Pop doubles chroma above the threshold and zeroes it below. Colours that
// stay chromatic get lightness quantised into sixths plus a small lift.
func Pop(c colour.OKLCH) colour.OKLCH {
	c.EnsureHue()

	if c.C > popThreshold {
		c.C *= 2
	}
	if c.C < popThreshold {
		c.C = 0
	}
	if c.C > popThreshold {
		c.L = colour.Quantize(c.L, 6) + popLightnessLift
	}

	return colour.FloorLightness(c, colour.BlackThreshold)
}
