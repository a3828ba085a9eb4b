package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/planfit/planfit/internal/config"
)

var (
	// Global flags
	verbose  bool
	planPath string
	cfgPath  string

	// cfg is loaded before any subcommand runs.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "planfit",
	Short: "Floor-plan scale calibration and fixture placement",
	Long: `A tool for calibrating floor-plan images against known real-world
distances and automatically placing furniture and equipment fixtures
into the calibrated plan.

Examples:
  planfit calibrate add --start 100,100 --end 600,100 --length 2500 --image 2000x1600
  planfit place --area 0,0,5000,4000 --fixture Desk --fixture Chair
  planfit export pdf layout.pdf`,
	Version: "0.3.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		var loadedFrom string
		if cfgPath != "" {
			cfg, loadedFrom, err = config.LoadFromPath(cfgPath)
		} else {
			cfg, loadedFrom, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if verbose && loadedFrom != "" {
			fmt.Fprintf(os.Stderr, "Using config: %s\n", loadedFrom)
		}
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&planPath, "plan", "p", "plan.json", "plan file to operate on")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default: $PLANFIT_CONFIG, ./planfit.yaml, ~/.planfit/config.yaml)")
}
