package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hornlab/hornprofile"
)

// coords: generate the profile and emit the CAD coordinate CSV.
func coordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "coords",
		Short: "Export the profile as CAD coordinates (cm CSV)",
		RunE: func(cmd *cobra.Command, args []string) error {
			points := hornprofile.Generate(params(), step)
			return writeOut(hornprofile.CoordinateText(points))
		},
	}
}

// log: generate the profile and emit the per-step diagnostic CSV.
func logCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "log",
		Short: "Export the per-step diagnostic log (mm/deg CSV)",
		RunE: func(cmd *cobra.Command, args []string) error {
			points := hornprofile.Generate(params(), step)
			return writeOut(hornprofile.LogText(points))
		},
	}
}
