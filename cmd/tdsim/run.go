package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"go-tile-defense/internal/app"
	"go-tile-defense/internal/defs"
	"go-tile-defense/internal/storage"
)

var (
	flagPlan      string
	flagMaxFrames int
	flagRecord    bool
)

var runCmd = &cobra.Command{
	Use:   "run <stage>",
	Short: "Simulate a stage to the end",
	Long: `Run a stage headlessly until victory, defeat or --max-frames.

A plan file lists unit commands by frame:

  steps:
    - { frame: 0,   action: place,   unit: archer, x: 10, y: 4 }
    - { frame: 600, action: upgrade, x: 10, y: 4 }`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagPlan, "plan", "", "Build plan YAML")
	runCmd.Flags().IntVar(&flagMaxFrames, "max-frames", 60*60*30, "Stop after this many frames (0 = no limit)")
	runCmd.Flags().BoolVar(&flagRecord, "record", false, "Save the result to the history database")
}

func loadCatalog() (*defs.Catalog, error) {
	if flagCatalog == "" {
		return defs.DefaultCatalog()
	}
	return defs.LoadCatalog(flagCatalog)
}

func runRun(cmd *cobra.Command, args []string) error {
	stage, err := defs.ResolveStage(args[0])
	if err != nil {
		return err
	}
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}
	var plan *app.Plan
	if flagPlan != "" {
		if plan, err = app.LoadPlan(flagPlan); err != nil {
			return err
		}
	}

	g := app.NewGame(stage, catalog)
	res := app.Run(g, plan, flagMaxFrames)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Stage %s (%s)\n", stage.ID, stage.Name)
	fmt.Fprintf(out, "  Outcome:  %s\n", res.Phase)
	fmt.Fprintf(out, "  Frames:   %d (%.1fs)\n", res.Frames, float64(res.Frames)/60)
	fmt.Fprintf(out, "  Base HP:  %d/%d\n", res.BaseHP, stage.BaseHP)
	fmt.Fprintf(out, "  Funds:    %d (earned %d, spent %d)\n", res.Funds, res.Stats.FundsEarned, res.Stats.FundsSpent)
	fmt.Fprintf(out, "  Enemies:  %d spawned, %d defeated, %d leaked\n", res.Stats.Spawned, res.Stats.Kills, res.Stats.Leaks)
	fmt.Fprintf(out, "  Units:    %d placed, %d upgrades\n", res.Stats.UnitsPlaced, res.Stats.Upgrades)

	if !flagRecord {
		return nil
	}
	if !res.Phase.Terminal() {
		log.Warn("match did not finish, not recording", "frames", res.Frames)
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()
	id, err := store.SaveResult(res.Record(stage.ID))
	if err != nil {
		return err
	}
	log.Info("run recorded", "id", id)
	return nil
}
