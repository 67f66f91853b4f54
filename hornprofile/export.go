package hornprofile

import (
	"fmt"
	"strings"
)

// CSV headers of the two export formats. Byte-exact output contracts:
// downstream CAD import scripts match on them verbatim.
const (
	coordinateHeader = "X (cm),Y (cm),Z (cm)"
	logHeader        = "Index,Length (mm),Radius (mm),Angle (deg),Delta Angle (deg),Growth (%)"
)

// CoordinateText renders the profile as a CAD-ready coordinate CSV.
// One row per point, X and Y converted mm→cm to 4 decimal places, Z fixed
// at 0.0000 (the profile is a planar revolution curve).
//
// Complexity: O(len(points)).
func CoordinateText(points []Point) string {
	var b strings.Builder
	b.WriteString(coordinateHeader)
	b.WriteByte('\n')

	var p Point
	for _, p = range points {
		fmt.Fprintf(&b, "%.4f,%.4f,0.0000\n", p.X/10, p.Y/10)
	}

	return b.String()
}

// LogText renders the per-step diagnostic CSV. The Radius column reports
// the geometric wall radius Y, not the equivalent-planar Radius field.
// Growth is the angle increment relative to the angle accumulated before
// this step, as a percentage — a display heuristic, not a physical
// quantity; the divisor is clamped to 1 at the seed point where the prior
// angle is zero.
//
// Complexity: O(len(points)).
func LogText(points []Point) string {
	var b strings.Builder
	b.WriteString(logHeader)
	b.WriteByte('\n')

	var (
		p     Point
		prior float64 // angle accumulated before this step, degrees
	)
	for _, p = range points {
		prior = p.Angle - p.DeltaAngle
		if prior == 0 {
			prior = 1
		}
		fmt.Fprintf(&b, "%d,%.2f,%.2f,%.3f,%.4f,%.4f\n",
			p.Index, p.Length, p.Y, p.Angle, p.DeltaAngle, p.DeltaAngle/prior*100)
	}

	return b.String()
}
