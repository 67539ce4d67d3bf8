package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lmoreno/pitagoras/internal/solver"
)

var (
	trigAngle float64
	trigSide  string
	trigValue float64
)

var trigCmd = &cobra.Command{
	Use:   "trig",
	Short: "Solve the remaining sides from one angle and one side",
	Long: `Computes the remaining two sides and the sine, cosine and tangent
ratios from one acute angle and one known side, with the full derivation.

The angle is in degrees, strictly between 0 and 90.
The side is a (opposite leg), b (adjacent leg) or c (hypotenuse).`,
	Example: `  pitagoras trig --angle 30 --side c --value 10
  pitagoras trig --angle 45 --side a --value 1`,
	RunE: runTrig,
}

func init() {
	trigCmd.Flags().Float64Var(&trigAngle, "angle", 0, "acute angle in degrees")
	trigCmd.Flags().StringVar(&trigSide, "side", "c", "known side: a, b or c")
	trigCmd.Flags().Float64Var(&trigValue, "value", 0, "length of the known side")
	_ = trigCmd.MarkFlagRequired("angle")
	_ = trigCmd.MarkFlagRequired("value")
	rootCmd.AddCommand(trigCmd)
}

func runTrig(cmd *cobra.Command, args []string) error {
	side, err := solver.ParseSide(trigSide)
	if err != nil {
		return err
	}

	res, err := solver.SolveTrig(trigAngle, side, trigValue)
	if err != nil {
		return err
	}
	if res == nil {
		fmt.Println("give a finite --angle and --value")
		return nil
	}

	fmt.Print(solver.FormatSteps(res.Steps))
	fmt.Printf("\na = %.4f   b = %.4f   c = %.4f\n", res.A, res.B, res.C)
	fmt.Printf("sin θ = %.4f   cos θ = %.4f   tan θ = %.4f\n", res.Sin, res.Cos, res.Tan)
	return nil
}
