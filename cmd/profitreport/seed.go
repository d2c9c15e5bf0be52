// ABOUTME: Seed command
// ABOUTME: Loads deterministic synthetic dates, locations, weather and sales

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harper/profitreport/internal/models"
	"github.com/harper/profitreport/internal/storage"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load synthetic data",
	Long: `Load synthetic dates, locations, weather and transactions.

Every seventh day is a holiday and roughly one day in ten has no weather,
so the report shows zero temperatures and holiday effects.

Examples:
  profitreport seed
  profitreport seed --locations 5 --days 90 --start 2024-06-01 --seed 42`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := storage.DefaultSeedOptions()
		opts.Locations, _ = cmd.Flags().GetInt("locations")
		opts.Days, _ = cmd.Flags().GetInt("days")
		opts.Seed, _ = cmd.Flags().GetInt64("seed")
		if startStr, _ := cmd.Flags().GetString("start"); startStr != "" {
			start, err := models.ParseDay(startStr)
			if err != nil {
				return err
			}
			opts.Start = start
		}

		summary, err := storage.Seed(db, opts)
		if err != nil {
			return fmt.Errorf("failed to seed: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, color.GreenString("✓ Seeded %s", db.Path()))
		fmt.Fprintf(out, "  %d dates, %d locations, %d weather, %d transactions\n",
			summary.Dates, summary.Locations, summary.Weather, summary.Transactions)
		return nil
	},
}

func init() {
	defaults := storage.DefaultSeedOptions()
	seedCmd.Flags().Int("locations", defaults.Locations, "number of locations")
	seedCmd.Flags().Int("days", defaults.Days, "number of consecutive days")
	seedCmd.Flags().String("start", defaults.Start.String(), "first day (YYYY-MM-DD)")
	seedCmd.Flags().Int64("seed", defaults.Seed, "random seed")

	rootCmd.AddCommand(seedCmd)
}
