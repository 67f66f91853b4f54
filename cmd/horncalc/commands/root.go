package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hornlab/hornprofile"
)

var (
	fc       float64
	expT     float64
	throat   float64
	rollback float64
	step     float64
	outPath  string
)

func Execute() error {
	root := &cobra.Command{
		Use:   "horncalc",
		Short: "LeCleac'h horn profile calculator",
		Long: "horncalc computes the 2-D wall profile of a LeCleac'h-family acoustic horn\n" +
			"from cutoff frequency, expansion factor, throat diameter and rollback angle,\n" +
			"and exports it as CAD-ready CSV.",
	}

	root.PersistentFlags().Float64Var(&fc, "fc", 340, "cutoff frequency, Hz")
	root.PersistentFlags().Float64Var(&expT, "t", 1.0, "expansion factor T")
	root.PersistentFlags().Float64Var(&throat, "throat", 36, "throat diameter, mm")
	root.PersistentFlags().Float64Var(&rollback, "rollback", 180, "rollback limit, degrees")
	root.PersistentFlags().Float64Var(&step, "step", hornprofile.DefaultStepSize, "arc-length step, mm")
	root.PersistentFlags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	root.AddCommand(coordsCmd(), logCmd(), infoCmd(), compareCmd())
	return root.Execute()
}

// params assembles the horn parameters from the persistent flags.
func params() hornprofile.Params {
	return hornprofile.Params{
		Fc:             fc,
		T:              expT,
		ThroatDiameter: throat,
		Rollback:       rollback,
	}
}

// writeOut sends an export string to --out, or stdout when unset.
func writeOut(text string) error {
	if outPath == "" {
		fmt.Print(text)
		return nil
	}
	return os.WriteFile(outPath, []byte(text), 0o644)
}
