package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hornlab/hornprofile"
	"github.com/katalvlaran/hornlab/profilediff"
)

var (
	fc2       float64
	expT2     float64
	throat2   float64
	rollback2 float64
)

// compare: score the wall-shape difference between the flag parameters and
// a second set given by the --fc2/--t2/--throat2/--rollback2 flags.
func compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Score the shape difference between two parameter sets",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := hornprofile.Generate(params(), step)
			b := hornprofile.Generate(hornprofile.Params{
				Fc:             fc2,
				T:              expT2,
				ThroatDiameter: throat2,
				Rollback:       rollback2,
			}, step)

			opts := profilediff.DefaultOptions()
			dist, err := profilediff.Distance(a, b, &opts)
			if err != nil {
				return err
			}
			fmt.Printf("shape distance: %.2f\n", dist)
			return nil
		},
	}

	cmd.Flags().Float64Var(&fc2, "fc2", 340, "second cutoff frequency, Hz")
	cmd.Flags().Float64Var(&expT2, "t2", 1.0, "second expansion factor T")
	cmd.Flags().Float64Var(&throat2, "throat2", 36, "second throat diameter, mm")
	cmd.Flags().Float64Var(&rollback2, "rollback2", 180, "second rollback limit, degrees")
	return cmd
}
