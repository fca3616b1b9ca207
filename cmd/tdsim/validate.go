package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go-tile-defense/internal/defs"
)

var validateCmd = &cobra.Command{
	Use:   "validate <stage>",
	Short: "Check a stage definition",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stage, err := defs.ResolveStage(args[0])
		if err != nil {
			return err
		}
		if err := defs.ValidateRoutes(stage); err != nil {
			return fmt.Errorf("stage %s: %w", stage.ID, err)
		}
		m := stage.Map()
		goal := m.Goal()
		fmt.Fprintf(cmd.OutOrStdout(), "Stage %s OK: %dx%d, goal (%d,%d), %d waves, %d spawns\n",
			stage.ID, m.Width(), m.Height(), goal.X, goal.Y, len(stage.Waves), stage.SpawnCount())
		return nil
	},
}
