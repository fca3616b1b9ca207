// tdsim runs tile defense stages without a window.
//
// Usage:
//
//	tdsim run <stage>        - Simulate a stage, optionally with a build plan
//	tdsim validate <stage>   - Check that a stage loads and every spawn can reach the goal
//	tdsim units              - List the unit catalog
//	tdsim history [stage]    - Show recorded runs
//
// A stage is either a built-in ID ("1", "2") or a path to a stage YAML file.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagLogLevel string
	flagDBPath   string
	flagCatalog  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tdsim",
	Short: "Headless tile defense simulator",
	Long: `tdsim steps tile defense matches frame by frame without rendering.

Examples:
  tdsim run 1 --plan plan.yaml --record
  tdsim validate stages/custom.yaml
  tdsim units
  tdsim history 1`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		log.SetDefault(log.NewWithOptions(os.Stderr, log.Options{
			Level:  level,
			Prefix: "tdsim",
		}))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tile-defense/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagCatalog, "catalog", "", "Unit catalog YAML (default: built-in)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(unitsCmd)
	rootCmd.AddCommand(historyCmd)
}
