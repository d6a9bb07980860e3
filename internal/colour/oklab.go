package colour

import "math"

// mat3 is a row-major 3x3 matrix.
type mat3 [3][3]float64

func (m mat3) apply(x, y, z float64) (float64, float64, float64) {
	return m[0][0]*x + m[0][1]*y + m[0][2]*z,
		m[1][0]*x + m[1][1]*y + m[1][2]*z,
		m[2][0]*x + m[2][1]*y + m[2][2]*z
}

// inverse returns the inverse by cofactor expansion. The matrices used here
// are well conditioned.
func (m mat3) inverse() mat3 {
	c00 := m[1][1]*m[2][2] - m[1][2]*m[2][1]
	c01 := m[1][2]*m[2][0] - m[1][0]*m[2][2]
	c02 := m[1][0]*m[2][1] - m[1][1]*m[2][0]
	det := m[0][0]*c00 + m[0][1]*c01 + m[0][2]*c02

	return mat3{
		{c00 / det, (m[0][2]*m[2][1] - m[0][1]*m[2][2]) / det, (m[0][1]*m[1][2] - m[0][2]*m[1][1]) / det},
		{c01 / det, (m[0][0]*m[2][2] - m[0][2]*m[2][0]) / det, (m[0][2]*m[1][0] - m[0][0]*m[1][2]) / det},
		{c02 / det, (m[0][1]*m[2][0] - m[0][0]*m[2][1]) / det, (m[0][0]*m[1][1] - m[0][1]*m[1][0]) / det},
	}
}

// Björn Ottosson's OKLab matrices, taking linear sRGB straight to LMS and
// LMS' to Lab. The inverses are derived rather than transcribed so the
// forward and backward paths cancel to float precision.
var (
	linearToLMS = mat3{
		{0.4122214708, 0.5363325363, 0.0514459929},
		{0.2119034982, 0.6806995451, 0.1073969566},
		{0.0883024619, 0.2817188376, 0.6299787005},
	}
	lmsToOkLab = mat3{
		{0.2104542553, 0.7936177850, -0.0040720468},
		{1.9779984951, -2.4285922050, 0.4505937099},
		{0.0259040371, 0.7827717662, -0.8086757660},
	}

	lmsToLinear = linearToLMS.inverse()
	okLabToLMS  = lmsToOkLab.inverse()
)

// linearToOkLab converts linear sRGB to OKLab.
func linearToOkLab(r, g, b float64) (l, a, bb float64) {
	lc, mc, sc := linearToLMS.apply(r, g, b)
	return lmsToOkLab.apply(math.Cbrt(lc), math.Cbrt(mc), math.Cbrt(sc))
}

// okLabToLinear converts OKLab to linear sRGB. The result is not clamped.
func okLabToLinear(l, a, b float64) (r, g, bb float64) {
	lc, mc, sc := okLabToLMS.apply(l, a, b)
	return lmsToLinear.apply(lc*lc*lc, mc*mc*mc, sc*sc*sc)
}
