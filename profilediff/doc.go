// Package profilediff scores the shape difference between two horn wall
// profiles, as an aid for exploring parameter combinations.
//
// 🚀 Why compare profiles?
//
//	Tuning a horn means nudging cutoff, expansion factor, throat and
//	rollback and watching the wall curve move. A scalar distance between
//	two candidate curves tells at a glance whether a parameter nudge
//	materially changed the shape:
//	  • near zero — same wall, different sampling or rollback tail
//	  • growing   — the mouth geometry actually diverged
//
// ✨ Key features:
//   - dynamic-time-warping alignment of the wall-radius curves, so profiles
//     generated at different step sizes remain comparable
//   - optional Sakoe–Chiba band (Window) and slope penalty for strict pacing
//   - two-row DP: O(n·m) time, O(m) memory
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/hornlab/hornprofile"
//	  "github.com/katalvlaran/hornlab/profilediff"
//	)
//
//	a := hornprofile.Generate(paramsA, 0.5)
//	b := hornprofile.Generate(paramsB, 0.5)
//
//	opts := profilediff.DefaultOptions()
//	dist, err := profilediff.Distance(a, b, &opts)
//	if err != nil {
//	  // ErrEmptyProfile: one of the parameter sets was degenerate
//	}
//	fmt.Println("shape distance:", dist)
//
// The score is a display/exploration heuristic in mm·steps, not an acoustic
// quantity.
package profilediff
