// Package cmd - prices command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"greenwatt/core/market"
	"greenwatt/internal/config"
)

// pricesCmd shows the current market snapshot
var pricesCmd = &cobra.Command{
	Use:   "prices",
	Short: "Show current SMP/REC market prices",
	RunE: func(cmd *cobra.Command, args []string) error {
		snapshot, err := market.LoadSnapshot(config.Get().Market.FixturePath)
		if err != nil {
			return err
		}

		fmt.Printf("SMP:    %.1f KRW/kWh\n", snapshot.Current.SMP)
		fmt.Printf("REC:    %.0f KRW/MWh\n", snapshot.Current.REC)
		fmt.Printf("Carbon: %.0f KRW/t\n", snapshot.Current.Carbon)
		if snapshot.Current.UpdatedAt != "" {
			fmt.Printf("As of:  %s\n", snapshot.Current.UpdatedAt)
		}

		if len(snapshot.History) > 0 {
			fmt.Println("\nHistory:")
			for _, tick := range snapshot.History {
				fmt.Printf("  %s  SMP %.1f  REC %.0f\n", tick.Date, tick.SMP, tick.REC)
			}
		}
		return nil
	},
}
