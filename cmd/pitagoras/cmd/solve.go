package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lmoreno/pitagoras/internal/solver"
)

var (
	solveA float64
	solveB float64
	solveC float64
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve the missing side from the other two",
	Long: `Computes the missing side of a right triangle via the Pythagorean
theorem and prints the full derivation.

Give exactly two of --a, --b, --c; the third is computed.
a and b are the legs, c the hypotenuse.`,
	Example: `  pitagoras solve --a 3 --b 4
  pitagoras solve --a 3 --c 5`,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().Float64Var(&solveA, "a", 0, "leg a")
	solveCmd.Flags().Float64Var(&solveB, "b", 0, "leg b")
	solveCmd.Flags().Float64Var(&solveC, "c", 0, "hypotenuse c")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	// Only flags the user actually set count as present.
	var a, b, c *float64
	if cmd.Flags().Changed("a") {
		a = &solveA
	}
	if cmd.Flags().Changed("b") {
		b = &solveB
	}
	if cmd.Flags().Changed("c") {
		c = &solveC
	}

	res, err := solver.SolveSides(a, b, c)
	if err != nil {
		return err
	}
	if res == nil {
		fmt.Println("give exactly two of --a, --b, --c")
		return nil
	}

	fmt.Print(solver.FormatSteps(res.Steps))
	fmt.Printf("\n%s (%s) = %.4f\n", res.Solved.Symbol(), res.Solved, res.Value)
	return nil
}
