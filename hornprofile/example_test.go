package hornprofile_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/hornlab/hornprofile"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleGenerate
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A 340 Hz exponential horn (T=1) with a 36 mm throat, asked to roll its
//	mouth back to 180°. Steps of 0.5 mm keep the per-step solve stable as
//	the wall curls.
//
// The walk starts at the throat (x=0, y=18 mm) and stops just below the
// requested rollback.
func ExampleGenerate() {
	params := hornprofile.Params{
		Fc:             340,
		T:              1.0,
		ThroatDiameter: 36,
		Rollback:       180,
	}

	points := hornprofile.Generate(params, 0.5)

	first := points[0]
	last := points[len(points)-1]
	fmt.Printf("points=%d\n", len(points))
	fmt.Printf("throat: x=%.1f y=%.1f\n", first.X, first.Y)
	fmt.Printf("final angle=%.1f\n", last.Angle)
	// Output:
	// points=1269
	// throat: x=0.0 y=18.0
	// final angle=179.9
}

// ExampleCoordinateText shows the CAD export: header plus one cm-scaled row
// per profile point.
func ExampleCoordinateText() {
	points := hornprofile.Generate(hornprofile.Params{
		Fc:             340,
		T:              1.0,
		ThroatDiameter: 36,
		Rollback:       180,
	}, 0.5)

	csv := hornprofile.CoordinateText(points)
	lines := strings.Split(csv, "\n")
	fmt.Println(lines[0])
	fmt.Println(lines[1])
	fmt.Println(lines[2])
	// Output:
	// X (cm),Y (cm),Z (cm)
	// 0.0000,1.8000,0.0000
	// 0.0498,1.8041,0.0000
}

// ExampleSolve reports how a full-spiral request ends: the physical solve
// decelerates past 90°, the synthetic spiral takes over and carries the
// wall to the requested 360°.
func ExampleSolve() {
	points, summary := hornprofile.Solve(hornprofile.Params{
		Fc:             340,
		T:              1.0,
		ThroatDiameter: 36,
		Rollback:       360,
	}, 0.5)

	fmt.Printf("spiral entered at index %d of %d\n", summary.SpiralStart, len(points)-1)
	fmt.Printf("stopped by rollback: %v\n", summary.Stop == hornprofile.StopRollback)
	// Output:
	// spiral entered at index 991 of 1452
	// stopped by rollback: true
}
