package colour

import "math"

// BlackThreshold is the lightness under which FloorLightness snaps to black.
const BlackThreshold = 0.1

// Transform reshapes a single colour. Implementations must be pure: the
// result may only depend on the argument.
type Transform func(OKLCH) OKLCH

// Identity returns the colour unchanged.
func Identity(c OKLCH) OKLCH { return c }

// FlattenLightness remaps l through a power curve anchored at lMin and lMax:
//
//	lMin + (lMax-lMin) * ((l-lMin)/(lMax-lMin))^(1-strength)
//
// strength near 1 pulls lightness towards uniform, near 0 keeps spacing linear.
// Values of l below lMin give a negative base and therefore NaN for fractional
// exponents; callers that care must clamp first.
func FlattenLightness(l, lMin, lMax, strength float64) float64 {
	return lMin + (lMax-lMin)*math.Pow((l-lMin)/(lMax-lMin), 1-strength)
}

// Quantize snaps value down to a multiple of 1/steps.
func Quantize(value float64, steps int) float64 {
	step := 1 / float64(steps)
	return math.Floor(value/step) * step
}

// FloorLightness forces lightness below threshold to exactly 0.
func FloorLightness(c OKLCH, threshold float64) OKLCH {
	if c.L < threshold {
		c.L = 0
	}
	return c
}
