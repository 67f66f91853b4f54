package hornprofile_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/hornlab/hornprofile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// referenceParams is the fc=340 Hz, T=1 (pure exponential), d0=36 mm horn
// used throughout these tests, with the rollback under test.
func referenceParams(rollback float64) hornprofile.Params {
	return hornprofile.Params{Fc: 340, T: 1.0, ThroatDiameter: 36, Rollback: rollback}
}

// TestGenerate_SeedPoint verifies the throat seed: x=0, y=d0/2, zero length,
// zero angles, and equivalent-planar radius equal to the throat radius.
func TestGenerate_SeedPoint(t *testing.T) {
	points := hornprofile.Generate(referenceParams(180), 0.5)
	require.NotEmpty(t, points, "reference horn must produce a profile")

	assert.Equal(t, hornprofile.Point{Index: 0, X: 0, Y: 18, Length: 0, Radius: 18, Angle: 0, DeltaAngle: 0},
		points[0], "seed point must sit at the throat")
}

// TestGenerate_DegenerateInputs verifies the boundary policy: fc ≤ 0 (m == 0)
// or d0 ≤ 0 yields an empty profile, not an error.
func TestGenerate_DegenerateInputs(t *testing.T) {
	cases := []struct {
		name string
		p    hornprofile.Params
	}{
		{"zero cutoff", hornprofile.Params{Fc: 0, T: 1, ThroatDiameter: 36, Rollback: 180}},
		{"zero throat", hornprofile.Params{Fc: 340, T: 1, ThroatDiameter: 0, Rollback: 180}},
		{"negative throat", hornprofile.Params{Fc: 340, T: 1, ThroatDiameter: -5, Rollback: 180}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			points, summary := hornprofile.Solve(tc.p, 1.0)
			assert.Empty(t, points, "degenerate input must yield an empty profile")
			assert.Equal(t, hornprofile.StopDegenerate, summary.Stop)
			assert.Equal(t, -1, summary.SpiralStart)
		})
	}
}

// TestGenerate_DefaultStepSize verifies that a non-positive step size falls
// back to the 1 mm default and produces the identical sequence.
func TestGenerate_DefaultStepSize(t *testing.T) {
	p := referenceParams(180)

	explicit := hornprofile.Generate(p, hornprofile.DefaultStepSize)
	fallback := hornprofile.Generate(p, 0)

	assert.Equal(t, explicit, fallback, "stepSize ≤ 0 must behave as DefaultStepSize")
}

// TestGenerate_ReferenceRun pins down the fc=340/T=1/d0=36/rollback=180
// profile at 0.5 mm steps: monotone angles, a first-step golden value, and
// termination just under the rollback limit.
func TestGenerate_ReferenceRun(t *testing.T) {
	points, summary := hornprofile.Solve(referenceParams(180), 0.5)
	require.Greater(t, len(points), 1000, "reference horn walks well past a thousand steps")
	require.Less(t, len(points), 1400, "reference horn terminates far below the step cap")

	// First accepted step, solved by bisection against the area law.
	p1 := points[1]
	assert.InDelta(t, 0.498320857808, p1.X, 1e-9)
	assert.InDelta(t, 18.040942919703, p1.Y, 1e-9)
	assert.InDelta(t, 0.5, p1.Length, 1e-12)
	assert.InDelta(t, 18.056108675695, p1.Radius, 1e-9)
	assert.InDelta(t, 4.696972100610, p1.Angle, 1e-9)
	assert.Equal(t, p1.Angle, p1.DeltaAngle, "first step's increment equals its angle")

	// Ordering invariants.
	for i := 1; i < len(points); i++ {
		assert.Equal(t, i, points[i].Index)
		assert.Greater(t, points[i].Angle, points[i-1].Angle, "angle must increase strictly at index %d", i)
		assert.Greater(t, points[i].Length, points[i-1].Length)
	}

	// Termination lands just below the limit.
	final := points[len(points)-1].Angle
	assert.Less(t, final, 180.0-hornprofile.AngleEpsilon)
	assert.Greater(t, final, 179.0, "the walk stops within one increment of the limit")
	assert.Equal(t, hornprofile.StopRollback, summary.Stop)
}

// TestSolve_AreaLawHeldInPhysicalRegime recomputes, for every point solved by
// bisection, the revolution-surface area from the emitted y and angle and
// checks it against the hyperbolic-exponential target at that arc length.
func TestSolve_AreaLawHeldInPhysicalRegime(t *testing.T) {
	const (
		c  = 343200.0
		d0 = 36.0
	)
	points, summary := hornprofile.Solve(referenceParams(180), 0.5)
	require.Greater(t, summary.SpiralStart, 1, "reference horn decelerates into the spiral regime")

	m := 4 * math.Pi * 340 / c
	s0 := math.Pi * (d0 / 2) * (d0 / 2)

	for _, p := range points[1:summary.SpiralStart] {
		term := m * p.Length / 2
		g := math.Cosh(term) + math.Sinh(term)
		target := s0 * g * g

		theta := p.Angle * math.Pi / 180
		geometry := 2 * math.Pi * p.Y * p.Y / (1 + math.Cos(theta))

		assert.InEpsilon(t, target, geometry, 1e-9,
			"revolution area must match the area law at index %d", p.Index)
	}
}

// TestSolve_SpiralIncrementsCompound checks the synthetic regime's contract:
// from the transition point, increment(n) = base × 1.005^n.
func TestSolve_SpiralIncrementsCompound(t *testing.T) {
	points, summary := hornprofile.Solve(referenceParams(360), 0.5)
	require.Greater(t, summary.SpiralStart, 0, "rollback=360 must enter the spiral regime")
	require.Equal(t, hornprofile.SpiralExtrapolate, summary.Regime)

	base := points[summary.SpiralStart].DeltaAngle
	for n, p := range points[summary.SpiralStart:] {
		expected := base * math.Pow(hornprofile.SpiralGrowthRate, float64(n))
		assert.InEpsilon(t, expected, p.DeltaAngle, 1e-9,
			"spiral increment must compound at step %d", n)
	}

	// The transition hands over the pre-deceleration peak increment.
	assert.InDelta(t, points[summary.SpiralStart-1].DeltaAngle, base, 1e-12,
		"transition step reuses the previous increment as the spiral base")

	final := points[len(points)-1].Angle
	assert.Less(t, final, 360.0-hornprofile.AngleEpsilon)
	assert.Greater(t, final, 355.0)
	assert.Equal(t, hornprofile.StopRollback, summary.Stop)
}

// TestSolve_SpiralGate verifies the 100° rollback gate: at 100° the solver
// never leaves PhysicalSolve, just past it the spiral may engage.
func TestSolve_SpiralGate(t *testing.T) {
	_, closed := hornprofile.Solve(referenceParams(100), 1.0)
	assert.Equal(t, -1, closed.SpiralStart, "rollback=100 keeps the gate closed")
	assert.Equal(t, hornprofile.PhysicalSolve, closed.Regime)
	assert.Equal(t, hornprofile.StopRollback, closed.Stop)

	_, open := hornprofile.Solve(referenceParams(101), 1.0)
	assert.Greater(t, open.SpiralStart, 0, "rollback=101 opens the gate once deceleration hits")
	assert.Equal(t, hornprofile.SpiralExtrapolate, open.Regime)
}

// TestSolve_PhysicalOnlyBelowDetection: a 90° rollback terminates before the
// deceleration watch can ever fire.
func TestSolve_PhysicalOnlyBelowDetection(t *testing.T) {
	points, summary := hornprofile.Solve(referenceParams(90), 0.5)
	require.NotEmpty(t, points)

	assert.Equal(t, -1, summary.SpiralStart)
	assert.Equal(t, hornprofile.StopRollback, summary.Stop)

	final := points[len(points)-1].Angle
	assert.Less(t, final, 90.0)
	assert.Greater(t, final, 89.0)
}

// TestSolve_StepCapGuard: a near-zero cutoff expands so slowly that the wall
// angle never approaches the limit; the 20000-step guard must end the run.
func TestSolve_StepCapGuard(t *testing.T) {
	p := hornprofile.Params{Fc: 0.001, T: 1, ThroatDiameter: 36, Rollback: 180}

	points, summary := hornprofile.Solve(p, 0.5)
	assert.Len(t, points, hornprofile.MaxSteps+1, "cap run emits the seed plus MaxSteps points")
	assert.Equal(t, hornprofile.StopStepCap, summary.Stop)
}

// TestGenerate_TerminatesAcrossParameterSweep: every combination in a coarse
// sweep terminates within the cap with a well-formed sequence.
func TestGenerate_TerminatesAcrossParameterSweep(t *testing.T) {
	for _, fc := range []float64{100, 340, 1000} {
		for _, tf := range []float64{0.5, 1.0, 2.0} {
			for _, rollback := range []float64{45, 180, 360, 720} {
				p := hornprofile.Params{Fc: fc, T: tf, ThroatDiameter: 25, Rollback: rollback}
				points := hornprofile.Generate(p, 1.0)

				require.NotEmpty(t, points, "fc=%v T=%v rollback=%v", fc, tf, rollback)
				require.LessOrEqual(t, len(points), hornprofile.MaxSteps+1)
				for i := 1; i < len(points); i++ {
					require.GreaterOrEqual(t, points[i].Angle, points[i-1].Angle,
						"fc=%v T=%v rollback=%v index %d", fc, tf, rollback, i)
				}
			}
		}
	}
}
