// ABOUTME: Add commands for dates, locations, weather and transactions
// ABOUTME: Weather and transactions create missing parent rows on the fly

package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harper/profitreport/internal/models"
	"github.com/harper/profitreport/internal/storage"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:     "add",
	Aliases: []string{"a"},
	Short:   "Add dates, locations, weather or transactions",
}

var addDateCmd = &cobra.Command{
	Use:   "date <YYYY-MM-DD>",
	Short: "Add a calendar date",
	Long: `Add a calendar date. Day, day of week (Sunday = 0), month and year are derived.

Examples:
  profitreport add date 2024-12-25 --holiday`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := models.ParseDay(args[0])
		if err != nil {
			return err
		}
		holiday, _ := cmd.Flags().GetBool("holiday")

		d := models.NewDate(day, holiday)
		if err := db.CreateDate(d); err != nil {
			return fmt.Errorf("failed to create date: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("✓ Added date %s", day))
		return nil
	},
}

var addLocationCmd = &cobra.Command{
	Use:   "location <id>",
	Short: "Add a location",
	Long: `Add a location with optional elevation and population.

Examples:
  profitreport add location store-1 --elevation 180 --population 250000`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := models.ValidateLocationID(args[0]); err != nil {
			return err
		}
		elevation, _ := cmd.Flags().GetInt("elevation")
		population, _ := cmd.Flags().GetInt("population")

		if err := db.CreateLocation(models.NewLocation(args[0], elevation, population)); err != nil {
			return fmt.Errorf("failed to create location: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("✓ Added location %s", args[0]))
		return nil
	},
}

var addWeatherCmd = &cobra.Command{
	Use:   "weather <location> <YYYY-MM-DD>",
	Short: "Add a weather observation",
	Long: `Add one day of weather for a location. Missing dates and locations are created.

Examples:
  profitreport add weather store-1 2024-01-02 --temperature 4.5 --humidity 80 --cloudy`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		locationID, day, err := parseLocationDay(args[0], args[1])
		if err != nil {
			return err
		}

		w := &models.Weather{Date: day, LocationID: locationID}
		w.Temperature, _ = cmd.Flags().GetFloat64("temperature")
		w.Pressure, _ = cmd.Flags().GetFloat64("pressure")
		w.Humidity, _ = cmd.Flags().GetFloat64("humidity")
		w.Cloudy, _ = cmd.Flags().GetBool("cloudy")
		w.Precipitation, _ = cmd.Flags().GetBool("precipitation")
		if err := models.ValidateHumidity(w.Humidity); err != nil {
			return err
		}

		if err := ensureParents(locationID, day); err != nil {
			return err
		}
		if err := db.CreateWeather(w); err != nil {
			return fmt.Errorf("failed to create weather: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("✓ Added weather for %s on %s", locationID, day))
		fmt.Fprintf(cmd.OutOrStdout(), "  %.1f° %.1f hPa %.0f%%\n", w.Temperature, w.Pressure, w.Humidity)
		return nil
	},
}

var addTransactionCmd = &cobra.Command{
	Use:     "transaction <location> <YYYY-MM-DD> <profit>",
	Aliases: []string{"tx"},
	Short:   "Add a sales transaction",
	Long: `Add a transaction with its profit. Missing dates and locations are created.
A UUID transaction id is generated unless --id is given.
Put -- before the arguments when the profit is negative.

Examples:
  profitreport add transaction store-1 2024-01-02 125.50
  profitreport add tx --id refund-17 -- store-1 2024-01-02 -20`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		locationID, day, err := parseLocationDay(args[0], args[1])
		if err != nil {
			return err
		}
		profit, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("invalid profit: %w", err)
		}

		tx := models.NewTransaction(locationID, day, profit)
		if id, _ := cmd.Flags().GetString("id"); id != "" {
			tx.TransactionID = id
		}

		if err := ensureParents(locationID, day); err != nil {
			return err
		}
		if err := db.CreateTransaction(tx); err != nil {
			return fmt.Errorf("failed to create transaction: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("✓ Added transaction for %s on %s", locationID, day))
		fmt.Fprintf(cmd.OutOrStdout(), "  %s  %.2f\n", color.New(color.Faint).Sprint(tx.TransactionID), profit)
		return nil
	},
}

func parseLocationDay(locationID, dayStr string) (string, models.Day, error) {
	if err := models.ValidateLocationID(locationID); err != nil {
		return "", models.Day{}, err
	}
	day, err := models.ParseDay(dayStr)
	if err != nil {
		return "", models.Day{}, err
	}
	return locationID, day, nil
}

// ensureParents creates the date and location rows a fact row references.
func ensureParents(locationID string, day models.Day) error {
	if _, err := db.GetDate(day); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("failed to look up date: %w", err)
		}
		if err := db.CreateDate(models.NewDate(day, false)); err != nil {
			return fmt.Errorf("failed to create date: %w", err)
		}
	}
	if _, err := db.GetLocation(locationID); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("failed to look up location: %w", err)
		}
		if err := db.CreateLocation(models.NewLocation(locationID, 0, 0)); err != nil {
			return fmt.Errorf("failed to create location: %w", err)
		}
	}
	return nil
}

func init() {
	addDateCmd.Flags().Bool("holiday", false, "mark the date as a holiday")

	addLocationCmd.Flags().Int("elevation", 0, "elevation in meters")
	addLocationCmd.Flags().Int("population", 0, "population served")

	addWeatherCmd.Flags().Float64P("temperature", "t", 0, "temperature")
	addWeatherCmd.Flags().Float64("pressure", 0, "pressure in hPa")
	addWeatherCmd.Flags().Float64("humidity", 0, "relative humidity (0-100)")
	addWeatherCmd.Flags().Bool("cloudy", false, "cloudy day")
	addWeatherCmd.Flags().Bool("precipitation", false, "precipitation")

	addTransactionCmd.Flags().String("id", "", "transaction id (default: generated UUID)")

	addCmd.AddCommand(addDateCmd, addLocationCmd, addWeatherCmd, addTransactionCmd)
	rootCmd.AddCommand(addCmd)
}
