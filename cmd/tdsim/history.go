package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"go-tile-defense/internal/storage"
)

var flagLimit int

var historyCmd = &cobra.Command{
	Use:   "history [stage]",
	Short: "Show recorded runs",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of runs to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	stageID := ""
	if len(args) == 1 {
		stageID = args[0]
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.RecentResults(stageID, flagLimit)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet. Use 'tdsim run <stage> --record'.")
		return nil
	}

	fmt.Fprintf(out, "  %-5s  %-8s  %-7s  %-6s  %-4s  %-5s  %-5s  %s\n", "Stage", "Outcome", "Frames", "BaseHP", "Kill", "Leak", "Funds", "Date")
	for _, r := range runs {
		fmt.Fprintf(out, "  %-5s  %-8s  %-7d  %-6d  %-4d  %-5d  %-5d  %s\n",
			r.StageID, r.Outcome, r.Frames, r.BaseHP, r.Kills, r.Leaks, r.Funds, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stageID != "" {
		best, err := store.BestResult(stageID)
		switch {
		case errors.Is(err, storage.ErrNoResults):
			fmt.Fprintln(out, "\nNo victories yet.")
		case err != nil:
			return err
		default:
			fmt.Fprintf(out, "\nBest: base HP %d in %d frames\n", best.BaseHP, best.Frames)
		}
	}
	return nil
}
