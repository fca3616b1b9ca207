package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List the unit catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "  %-8s  %-4s  %-16s  %-16s  %s\n", "ID", "Cost", "Attack", "Range", "Traits")
		for i := range catalog.Units {
			u := &catalog.Units[i]
			traits := ""
			if u.Splash {
				traits += "splash "
			}
			if u.FlyingBonus {
				traits += "anti-air "
			}
			if u.GrantsStatus() {
				traits += fmt.Sprintf("slow(%dx%.1f) ", u.Slow.Duration, u.Slow.Multiplier)
			}
			fmt.Fprintf(out, "  %-8s  %-4d  %-16v  %-16v  %s\n", u.ID, u.Cost, u.Attack, u.Range, traits)
		}
		return nil
	},
}
