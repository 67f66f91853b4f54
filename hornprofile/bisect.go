package hornprofile

// Bisect locates the zero crossing of f over [lo, hi] by plain interval
// halving and returns the midpoint of the final bracket.
//
// Contracts:
//   - f is treated as non-decreasing across its crossing: f(mid) < 0 raises
//     the lower bound, anything else lowers the upper bound. Local wiggles
//     away from the crossing are tolerated as long as the sign is reliable
//     near the root ("monotonic-enough").
//   - iterations fixes the work exactly; no convergence test is performed,
//     so the call always terminates. The bracket shrinks to
//     (hi−lo)/2^iterations.
//   - If f never changes sign, the result collapses toward the matching
//     interval end rather than erroring — callers bound the search interval
//     so that this degrades the output, never the termination.
//
// Complexity: O(iterations) evaluations of f, O(1) space.
func Bisect(f func(float64) float64, lo, hi float64, iterations int) float64 {
	var mid float64 // midpoint of the current bracket
	for i := 0; i < iterations; i++ {
		mid = (lo + hi) / 2
		if f(mid) < 0 {
			lo = mid // value below target: root lies above
		} else {
			hi = mid // value at/above target: root lies below
		}
	}

	return (lo + hi) / 2
}
