package hornprofile

import "math"

// degPerRad converts radians to degrees (and its inverse divides).
const degPerRad = 180 / math.Pi

// stepState is the solver position threaded through the step loop. Each
// accepted step derives a fresh value from the previous one; nothing is
// mutated in place, so a single step is testable in isolation and repeated
// runs share no state.
type stepState struct {
	index       int     // sequence position of the point this state produced
	length      float64 // cumulative arc length along the wall, mm
	x           float64 // axial position, mm
	y           float64 // geometric wall radius, mm
	angle       float64 // cumulative wall angle, radians
	delta       float64 // previous step's angle increment, radians
	regime      Regime  // PhysicalSolve until the spiral engages
	base        float64 // spiral base increment (peak physical increment), radians
	spiralSteps int     // steps taken since the regime transition
}

// stepConfig is the per-run constant input of a step: the area-law
// coefficients and the termination thresholds, all angle values in radians.
type stepConfig struct {
	stepSize float64 // arc-length increment, mm
	s0       float64 // planar throat area, mm²
	m        float64 // expansion constant, 1/mm
	t        float64 // expansion factor
	limit    float64 // rollback limit
	eps      float64 // boundary guard below limit
	detect   float64 // deceleration watch threshold
	gated    bool    // spiral regime allowed (rollback > 100°)
}

// Generate traces the horn wall for p in fixed arc-length steps of stepSize
// mm and returns the ordered profile. It is the plain-sequence entry point;
// use Solve when the run's Summary (regime, stop reason) is also needed.
//
// Contracts:
//   - stepSize ≤ 0 falls back to DefaultStepSize (1 mm). Smaller steps trade
//     compute time for solver stability near large rollback angles.
//   - Degenerate input (Fc ≤ 0 via m == 0, or ThroatDiameter ≤ 0) yields an
//     empty profile and no error: a recognized boundary outcome.
//   - The first point is always (x=0, y=d0/2, length=0, angle=0, delta=0);
//     the run ends at Rollback − AngleEpsilon, on radius collapse in the
//     spiral regime, or at the MaxSteps cap. The step that trips a stop rule
//     is not emitted.
//
// Complexity: O(steps) with at most MaxSteps steps, each a fixed-iteration
// bisection; memory O(steps) for the returned slice.
func Generate(p Params, stepSize float64) []Point {
	points, _ := Solve(p, stepSize)

	return points
}

// Solve is Generate plus a Summary describing how the run ended: the final
// regime, the index of the first spiral-produced point (-1 if none), and
// the stop rule that fired.
func Solve(p Params, stepSize float64) ([]Point, Summary) {
	// Stage 1 - degenerate-input guard (empty profile, not a fault).
	m := expansionConstant(p.Fc)
	if m == 0 || p.ThroatDiameter <= 0 {
		return nil, Summary{Regime: PhysicalSolve, SpiralStart: -1, Stop: StopDegenerate}
	}
	if stepSize <= 0 {
		stepSize = DefaultStepSize
	}

	// Stage 2 - seed the walk at the throat.
	cfg := stepConfig{
		stepSize: stepSize,
		s0:       throatArea(p.ThroatDiameter),
		m:        m,
		t:        p.T,
		limit:    p.Rollback / degPerRad,
		eps:      AngleEpsilon / degPerRad,
		detect:   spiralDetectAngle / degPerRad,
		gated:    p.Rollback > spiralGateRollback,
	}

	var (
		r0      = p.ThroatDiameter / 2
		st      = stepState{y: r0}
		points  = make([]Point, 1, 64)
		summary = Summary{SpiralStart: -1, Stop: StopStepCap}
	)
	points[0] = Point{Y: r0, Radius: r0}

	// Stage 3 - fixed arc-length walk; the step that trips a stop rule is
	// discarded, so the returned sequence holds only accepted points.
	var (
		n       int        // accepted-step counter (runaway guard)
		next    stepState  // successor state candidate
		pt      Point      // point emitted by the accepted step
		reason  StopReason // stop rule tripped by the candidate, if any
		stopped bool       // whether the candidate was rejected
	)
	for n = 1; n <= MaxSteps; n++ {
		next, pt, reason, stopped = advanceStep(st, cfg)
		if stopped {
			summary.Stop = reason
			break
		}
		st = next
		points = append(points, pt)
		if st.regime == SpiralExtrapolate && summary.SpiralStart < 0 {
			summary.SpiralStart = st.index
		}
	}

	summary.Regime = st.regime

	return points, summary
}

// advanceStep computes one arc-length step from st under cfg.
//
// It returns the successor state and its emitted point, or — when the step
// trips a termination rule — stopped=true with the rule in reason; the
// returned state and point are then meaningless and must be discarded.
//
// Regime handling:
//   - PhysicalSolve: bisection for the wall angle. When the increment
//     decelerates past cfg.detect cumulative angle and the spiral gate is
//     open, the state transitions to SpiralExtrapolate and this step's angle
//     is recomputed as previousAngle + peak increment, preserving momentum
//     across the handover.
//   - SpiralExtrapolate: increment = base × SpiralGrowthRate^n, n counted
//     from the transition step (the transition step itself is n = 0).
func advanceStep(st stepState, cfg stepConfig) (stepState, Point, StopReason, bool) {
	target := targetArea(cfg.s0, cfg.m, cfg.t, st.length+cfg.stepSize)

	// Stage 1 - wall angle for this step, per regime.
	var theta float64
	switch st.regime {
	case PhysicalSolve:
		theta = solveWallAngle(st.y, cfg.stepSize, target)
		if cfg.gated && st.angle > cfg.detect && theta-st.angle < st.delta {
			// Deceleration past the watch threshold: hand the peak
			// increment to the spiral and recompute this step with it,
			// discarding the decelerated bisection result.
			st.regime = SpiralExtrapolate
			st.base = st.delta
			st.spiralSteps = 0
			theta = st.angle + st.base
		}
	case SpiralExtrapolate:
		st.spiralSteps++
		theta = st.angle + st.base*math.Pow(SpiralGrowthRate, float64(st.spiralSteps))
	}

	// Stage 2 - termination rules.
	if theta >= cfg.limit-cfg.eps {
		return st, Point{}, StopRollback, true
	}
	yNext := st.y + cfg.stepSize*math.Sin(theta)
	if st.regime == SpiralExtrapolate && yNext <= 0 {
		return st, Point{}, StopRadiusCollapse, true
	}

	// Stage 3 - advance and emit.
	next := stepState{
		index:       st.index + 1,
		length:      st.length + cfg.stepSize,
		x:           st.x + cfg.stepSize*math.Cos(theta),
		y:           yNext,
		angle:       theta,
		delta:       theta - st.angle,
		regime:      st.regime,
		base:        st.base,
		spiralSteps: st.spiralSteps,
	}
	pt := Point{
		Index:      next.index,
		X:          next.x,
		Y:          next.y,
		Length:     next.length,
		Radius:     math.Sqrt(target / math.Pi),
		Angle:      next.angle * degPerRad,
		DeltaAngle: next.delta * degPerRad,
	}

	return next, pt, 0, false
}

// solveWallAngle finds the wall angle theta ∈ [0, 2π) at which advancing by
// stepSize from radius y makes the revolution-surface area match target:
//
//	2π·(y + stepSize·sin θ)² / (1 + cos θ) = target
//
// The area grows with theta through the explored range, so the bisection
// raises the lower bound while the geometry undershoots the target.
func solveWallAngle(y, stepSize, target float64) float64 {
	return Bisect(func(theta float64) float64 {
		yc := y + stepSize*math.Sin(theta)

		return revolutionArea(yc, theta) - target
	}, 0, 2*math.Pi, bisectIterations)
}
