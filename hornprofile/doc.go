// Package hornprofile computes the 2-D wall profile of a LeCleac'h-family
// acoustic horn and formats it for CAD consumption.
//
// 🚀 What is a LeCleac'h profile?
//
//	A horn wall traced so that the curved-wavefront area at every arc
//	length matches a hyperbolic-exponential expansion law:
//	  • m    = 4π·fc / c       — expansion constant from the cutoff
//	  • S(l) = S0·(cosh(m·l/2) + T·sinh(m·l/2))²
//	The wall advances in fixed arc-length steps; at each step a bisection
//	solves for the wall angle whose revolution surface matches S(l).
//
// ✨ Key features:
//   - four physical inputs: cutoff fc, expansion factor T, throat d0,
//     rollback limit (degrees) — millimeters throughout
//   - per-step bisection solve, 50 fixed iterations, no convergence loops
//   - spiral extension: when the physical solve decelerates past 90° and
//     the requested rollback exceeds 100°, increments grow geometrically
//     (×1.005 per step) so any rollback up to a full spiral terminates
//   - hard guards: rollback−ε angle stop, radius-collapse stop, 20000-step cap
//   - byte-exact CSV exports: CAD coordinates (cm) and a diagnostic log
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/hornlab/hornprofile"
//
//	params := hornprofile.Params{
//	  Fc:             340,  // Hz
//	  T:              1.0,  // pure exponential blend
//	  ThroatDiameter: 36,   // mm
//	  Rollback:       180,  // degrees
//	}
//
//	points := hornprofile.Generate(params, 0.5) // 0.5 mm arc steps
//	csv := hornprofile.CoordinateText(points)
//	log := hornprofile.LogText(points)
//
// Degenerate input (fc ≤ 0 or d0 ≤ 0) returns an empty profile rather than
// an error: the boundary outcome is recognized, not faulted.
//
// Determinism:
//
//   - Pure functions over immutable inputs; repeated runs share no state.
//   - Worst-case work is bounded by the 20000-step cap.
//
// See examples in example_test.go and runnable scenarios under examples/.
package hornprofile
