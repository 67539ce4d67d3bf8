package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/lmoreno/pitagoras/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive trainer",
	Long: `Starts the terminal trainer.

Tabs:
  Pythagoras    - missing side from two known sides
  Trigonometry  - sides and ratios from one angle and one side
  Reference     - geometry facts
  History       - this session's calculations

Keys:
  Tab         - switch tabs
  Enter       - solve
  Up/Down     - move between fields
  Left/Right  - pick the known side (Trigonometry)
  Ctrl+T      - dark/light theme
  Ctrl+Y      - copy derivation to the clipboard
  Ctrl+L      - clear the current tab
  Ctrl+C      - quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, log, closeLog, err := loadConfig()
	if err != nil {
		return err
	}
	defer closeLog()

	log.Infof("starting TUI")
	p := tea.NewProgram(
		tui.NewModel(cfg, log),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "TUI error: %v\n", err)
		return err
	}
	return nil
}
