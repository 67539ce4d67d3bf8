package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lmoreno/pitagoras/internal/config"
	"github.com/lmoreno/pitagoras/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "pitagoras",
	Short: "pitagoras - right-triangle trainer",
	Long: `pitagoras solves right-triangle problems with a worked, step-by-step
derivation of every answer.

  solve      - missing side from the other two (Pythagorean theorem)
  trig       - remaining sides and sin/cos/tan from one angle and one side
  reference  - static panel of geometry facts
  tui        - interactive trainer with diagrams and history`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.pitagoras/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
}

// loadConfig reads the configuration and builds the logger the command
// should use. The close function is a no-op when logging is disabled.
func loadConfig() (config.Config, *logging.Logger, func(), error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return config.Config{}, nil, nil, err
	}

	level := logging.ParseLevel(cfg.General.LogLevel)
	if verbose {
		level = logging.LevelDebug
	}

	if cfg.General.LogFile == "" {
		return cfg, logging.Nop(), func() {}, nil
	}

	log, closeFn, err := logging.OpenFile(cfg.General.LogFile, level)
	if err != nil {
		// A broken log path should not keep the trainer from starting.
		return cfg, logging.Nop(), func() {}, nil
	}
	return cfg, log, func() { _ = closeFn() }, nil
}
