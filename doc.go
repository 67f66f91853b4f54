// Package hornlab computes LeCleac'h-family acoustic horn wall profiles —
// from four physical parameters to CAD-ready point sequences and exports.
//
// 🚀 What is hornlab?
//
//	A small, deterministic library (plus the horncalc CLI) that brings together:
//		• Profile solving: fixed arc-length stepping against the
//		  hyperbolic-exponential area law, one bisection per step
//		• Rollback handling: a two-regime state machine that keeps the wall
//		  curling smoothly past the point where the physical solve stalls
//		• Exports: byte-exact coordinate and diagnostic CSV formats
//		• Shape comparison: warped distance between two candidate profiles
//
// ✨ Why choose hornlab?
//
//   - Predictable – pure functions, fixed iteration counts, hard step caps
//   - Beginner-friendly – four numbers in, an ordered point sequence out
//   - Pure Go – no cgo, a small and boring dependency surface
//   - CAD-ready – millimeter geometry, cm-scaled coordinate export
//
// Under the hood, everything is organized under three packages:
//
//	hornprofile/ — parameters, the per-step solver, exports & geometry views
//	profilediff/ — shape distance between two generated profiles
//	cmd/horncalc — command-line front-end: coords, log, info, compare
//
// Dive into hornprofile/doc.go for the area law and the regime machine, and
// examples/ for runnable scenarios.
package hornlab
