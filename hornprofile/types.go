// Package hornprofile defines parameters, profile points, and solver
// constants for LeCleac'h horn profile generation.
package hornprofile

// Physical and solver constants. The spiral-regime thresholds are tuned
// values from the reference tool; downstream CAD workflows depend on the
// exact curve shape they produce, so they are fixed rather than configurable.
const (
	// SpeedOfSound is the propagation speed used by the area law, in mm/s.
	SpeedOfSound = 343200.0

	// DefaultStepSize is the arc-length increment (mm) applied when the
	// caller passes a non-positive step size.
	DefaultStepSize = 1.0

	// MaxSteps bounds a single generation run regardless of parameters.
	MaxSteps = 20000

	// AngleEpsilon (degrees) stops the walk just short of the requested
	// rollback, so a request of exactly 180° never stalls on the singular
	// boundary.
	AngleEpsilon = 0.005

	// SpiralGrowthRate is the compounding per-step growth of the synthetic
	// spiral increment (0.5% per step).
	SpiralGrowthRate = 1.005

	// bisectIterations is the fixed iteration count of the per-step angle
	// solve. Sub-degree convergence over [0, 2π) needs far fewer; 50 makes
	// the residual effectively invisible at double precision.
	bisectIterations = 50

	// spiralDetectAngle (degrees): cumulative wall angle past which the
	// solver watches for decelerating increments.
	spiralDetectAngle = 90.0

	// spiralGateRollback (degrees): the requested rollback must exceed this
	// before the spiral regime may engage.
	spiralGateRollback = 100.0
)

// Params are the four physical inputs of a horn profile. Values are read
// once per generation; the struct is never mutated by the solver.
//
// Fields:
//   - Fc             — cutoff frequency, Hz (> 0 for a non-degenerate horn).
//   - T              — expansion factor blending exponential and hyperbolic
//     area growth; typically 0.5–2.0.
//   - ThroatDiameter — horn throat diameter d0, mm (> 0).
//   - Rollback       — maximum cumulative wall angle, degrees. Values past
//     180° curl the mouth into a spiral.
type Params struct {
	Fc             float64
	T              float64
	ThroatDiameter float64
	Rollback       float64
}

// Point is one sample of the horn wall, traced from throat to mouth.
//
// X and Y are the planar wall coordinates in mm (the profile is a 2-D
// revolution curve). Radius is the equivalent-planar radius derived from the
// target acoustic area at this arc length — a flat disc of that radius has
// the required area — and differs from the geometric Y once the wall curls.
// Angle is the cumulative wall angle from the throat, DeltaAngle the
// increment over the previous point; both in degrees.
type Point struct {
	Index      int
	X          float64
	Y          float64
	Length     float64
	Radius     float64
	Angle      float64
	DeltaAngle float64
}

// Regime identifies which of the two solver states produced a step.
//
//   - PhysicalSolve      — per-step bisection against the area law.
//   - SpiralExtrapolate  — synthetic geometric growth of the angle increment,
//     engaged when the bisection decelerates past 90° cumulative angle and
//     the requested rollback exceeds 100°. A visual/manufacturing heuristic,
//     not an acoustic derivation; once entered it runs to termination.
type Regime int

const (
	// PhysicalSolve: bisection over the revolution-surface area each step.
	PhysicalSolve Regime = iota

	// SpiralExtrapolate: angle increments grow geometrically from the peak
	// increment captured at the transition.
	SpiralExtrapolate
)

// String names the regime for summaries and logs.
func (r Regime) String() string {
	switch r {
	case PhysicalSolve:
		return "physical"
	case SpiralExtrapolate:
		return "spiral"
	default:
		return "unknown"
	}
}

// StopReason records which termination rule ended a generation run.
type StopReason int

const (
	// StopDegenerate: m == 0 or d0 ≤ 0; the profile is empty. A recognized
	// boundary policy, not a fault.
	StopDegenerate StopReason = iota

	// StopRollback: the next wall angle reached Rollback − AngleEpsilon.
	StopRollback

	// StopRadiusCollapse: the spiral would have curled through the axis
	// (next radius ≤ 0).
	StopRadiusCollapse

	// StopStepCap: the MaxSteps runaway guard fired.
	StopStepCap
)

// String names the stop rule for summaries and logs.
func (s StopReason) String() string {
	switch s {
	case StopDegenerate:
		return "degenerate input"
	case StopRollback:
		return "rollback limit"
	case StopRadiusCollapse:
		return "radius collapse"
	case StopStepCap:
		return "step cap"
	default:
		return "unknown"
	}
}

// Summary reports how a generation run ended. SpiralStart is the index of
// the first point produced by the spiral regime, or -1 when the run never
// left PhysicalSolve.
type Summary struct {
	Regime      Regime
	SpiralStart int
	Stop        StopReason
}
