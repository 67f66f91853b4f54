package hornprofile

import "math"

// expansionConstant returns the horn's characteristic expansion constant
// m = 4π·fc / c, with c the speed of sound in mm/s.
//
// Complexity: O(1).
func expansionConstant(fc float64) float64 {
	return 4 * math.Pi * fc / SpeedOfSound
}

// throatArea returns S0 = π·(d0/2)², the planar throat area in mm².
//
// Complexity: O(1).
func throatArea(d0 float64) float64 {
	r := d0 / 2
	return math.Pi * r * r
}

// targetArea evaluates the hyperbolic-exponential area law at arc length l:
//
//	S(l) = S0 · (cosh(m·l/2) + T·sinh(m·l/2))²
//
// T = 1 degenerates to the pure exponential e^(m·l); smaller T leans
// hyperbolic. The result is the planar-equivalent area the wall must
// enclose at arc length l.
//
// Complexity: O(1).
func targetArea(s0, m, t, l float64) float64 {
	term := m * l / 2
	g := math.Cosh(term) + t*math.Sinh(term)

	return s0 * g * g
}

// revolutionArea returns the curved-wavefront area associated with wall
// radius y at wall angle theta (radians from the axial direction):
//
//	2π·y² / (1 + cos θ)
//
// At theta = 0 this is the flat disc πy²; as theta approaches π the
// wavefront closes toward a full sphere and the area diverges.
//
// Complexity: O(1).
func revolutionArea(y, theta float64) float64 {
	return 2 * math.Pi * y * y / (1 + math.Cos(theta))
}
