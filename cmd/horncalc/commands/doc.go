// Package commands defines the horncalc CLI over the hornprofile solver.
//
// Commands
//
//   - coords   Export the profile as CAD coordinates (cm CSV)
//   - log      Export the per-step diagnostic log (mm/deg CSV)
//   - info     Summarize a profile: extent, final angle, regime, stop rule
//   - compare  Score the shape difference between two parameter sets
//
// # Implementation
//
// The root command carries the four horn parameters and the step size as
// persistent flags; every subcommand regenerates the profile from them, so
// runs are independent and reproducible from the command line alone.
package commands
