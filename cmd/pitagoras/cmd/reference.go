package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lmoreno/pitagoras/internal/reference"
)

var referenceWidth int

var referenceCmd = &cobra.Command{
	Use:   "reference",
	Short: "Print the geometry reference panel",
	RunE: func(cmd *cobra.Command, args []string) error {
		panel, err := reference.Load()
		if err != nil {
			return err
		}
		fmt.Print(panel.Render(referenceWidth))
		return nil
	},
}

func init() {
	referenceCmd.Flags().IntVar(&referenceWidth, "width", 72, "wrap width in columns")
	rootCmd.AddCommand(referenceCmd)
}
