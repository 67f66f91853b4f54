package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hornlab/hornprofile"
)

// info: generate the profile and print a human summary of its geometry.
func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Summarize a profile: extent, final angle, regime, stop rule",
		RunE: func(cmd *cobra.Command, args []string) error {
			points, summary := hornprofile.Solve(params(), step)
			if len(points) == 0 {
				fmt.Println("empty profile:", summary.Stop)
				return nil
			}

			last := points[len(points)-1]
			bounds := hornprofile.Bounds(points)

			fmt.Printf("points:        %d\n", len(points))
			fmt.Printf("wall length:   %.1f mm\n", last.Length)
			fmt.Printf("final angle:   %.3f deg\n", last.Angle)
			fmt.Printf("axial depth:   %.1f mm\n", bounds.Width())
			fmt.Printf("mouth radius:  %.1f mm (diameter %.1f mm)\n", bounds.Max.Y, 2*bounds.Max.Y)
			fmt.Printf("stopped by:    %s\n", summary.Stop)
			if summary.SpiralStart >= 0 {
				fmt.Printf("spiral regime: from point %d\n", summary.SpiralStart)
			} else {
				fmt.Println("spiral regime: never entered")
			}
			return nil
		},
	}
}
