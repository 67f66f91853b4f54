package profilediff

import (
	"math"

	"github.com/katalvlaran/hornlab/hornprofile"
)

// Distance — warped shape distance between two horn profiles
//
// Description:
//
//	Distance aligns the wall-radius curves of two generated profiles by
//	dynamic time warping and returns the cumulative |Δradius| along the
//	optimal alignment. Two parameter sets that trace the same wall shape at
//	different step sizes or rollbacks score near zero; diverging mouth
//	geometry grows the score. A scalar aid for parameter exploration, not
//	an acoustic metric.
//
// Algorithm Outline:
//  1. Extract the geometric radius series a[i] = points[i].Y for both inputs.
//  2. Fill a (n+1)x(m+1) DP recurrence keeping only two rows:
//     D[i][j] = |a[i-1]−b[j-1]| + min(D[i-1][j]+p, D[i][j-1]+p, D[i-1][j-1])
//     with p = SlopePenalty, cells outside the Window band fixed at +∞.
//  3. Distance = D[n][m].
//
// Errors:
//   - ErrEmptyProfile — either input has no points.
//   - ErrBadWindow    — Window < -1.
//
// Contracts:
//   - opts == nil behaves as DefaultOptions().
//   - A Window too narrow for the length difference yields +Inf, not an
//     error: the band made the curves incomparable, which is an answer.
//
// Complexity: O(n·m) time, O(min-row) — two rows of m+1 — space.
func Distance(a, b []hornprofile.Point, opts *Options) (float64, error) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, ErrEmptyProfile
	}

	// Apply options or defaults.
	window := -1
	penalty := 0.0
	if opts != nil {
		window = opts.Window
		penalty = opts.SlopePenalty
	}
	if window < -1 {
		return 0, ErrBadWindow
	}

	ra := radiusSeries(a)
	rb := radiusSeries(b)
	inf := math.Inf(1)

	// Two-row DP; row 0 is the empty-prefix boundary.
	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	var (
		i, j int     // DP indices
		cost float64 // |Δradius| at (i, j)
		best float64 // cheapest predecessor
	)
	for i = 1; i <= n; i++ {
		curr[0] = inf
		for j = 1; j <= m; j++ {
			if window >= 0 && abs(i-j) > window {
				curr[j] = inf
				continue
			}
			cost = math.Abs(ra[i-1] - rb[j-1])
			best = min3(prev[j]+penalty, curr[j-1]+penalty, prev[j-1])
			curr[j] = cost + best
		}
		prev, curr = curr, prev
	}

	return prev[m], nil
}

// radiusSeries projects the geometric wall radius out of a profile.
func radiusSeries(points []hornprofile.Point) []float64 {
	out := make([]float64, len(points))
	for i := range points {
		out[i] = points[i].Y
	}

	return out
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}

		return c
	}
	if b < c {
		return b
	}

	return c
}
