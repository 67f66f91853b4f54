// Package profilediff defines options and sentinel errors for comparing
// horn profile curves.
package profilediff

import "errors"

// Sentinel errors for profile comparison.
var (
	// ErrEmptyProfile indicates one or both input profiles have no points.
	ErrEmptyProfile = errors.New("profilediff: input profiles must be non-empty")

	// ErrBadWindow indicates a Window below -1 (the unlimited marker).
	ErrBadWindow = errors.New("profilediff: Window must be -1 (unlimited) or >= 0")
)

// Options configures the warping comparison.
//
// Fields:
//   - Window       — maximum index offset |i−j| allowed between the two
//     curves (Sakoe–Chiba band). -1 (or DefaultOptions) disables the
//     constraint; 0 forces lockstep comparison.
//   - SlopePenalty — cost added to insertion/deletion steps, biasing the
//     alignment toward matched pacing. 0 allows free stretching.
type Options struct {
	Window       int
	SlopePenalty float64
}

// DefaultOptions returns an unconstrained comparison: no band, no penalty.
// Profiles generated with different step sizes or rollbacks still align.
func DefaultOptions() Options {
	return Options{Window: -1, SlopePenalty: 0}
}
