// ABOUTME: Remove commands for dates and locations
// ABOUTME: Dependent weather and transactions are deleted by ON DELETE CASCADE

package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/harper/profitreport/internal/models"
	"github.com/harper/profitreport/internal/storage"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "remove",
	Aliases: []string{"rm"},
	Short:   "Remove a date or location and everything that references it",
}

var removeDateCmd = &cobra.Command{
	Use:   "date <YYYY-MM-DD>",
	Short: "Remove a date with its weather and transactions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := models.ParseDay(args[0])
		if err != nil {
			return err
		}

		confirm, _ := cmd.Flags().GetBool("confirm")
		if !confirm && !askConfirm(cmd, fmt.Sprintf("Remove %s and all its weather and transactions?", day)) {
			fmt.Fprintln(cmd.OutOrStdout(), "Canceled.")
			return nil
		}

		if err := db.DeleteDate(day); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("date %s not found", day)
			}
			return fmt.Errorf("failed to remove date: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("✓ Removed %s", day))
		return nil
	},
}

var removeLocationCmd = &cobra.Command{
	Use:   "location <id>",
	Short: "Remove a location with its weather and transactions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		confirm, _ := cmd.Flags().GetBool("confirm")
		if !confirm && !askConfirm(cmd, fmt.Sprintf("Remove '%s' and all its weather and transactions?", id)) {
			fmt.Fprintln(cmd.OutOrStdout(), "Canceled.")
			return nil
		}

		if err := db.DeleteLocation(id); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("location '%s' not found", id)
			}
			return fmt.Errorf("failed to remove location: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("✓ Removed %s", id))
		return nil
	},
}

func init() {
	removeDateCmd.Flags().Bool("confirm", false, "skip confirmation prompt")
	removeLocationCmd.Flags().Bool("confirm", false, "skip confirmation prompt")

	removeCmd.AddCommand(removeDateCmd, removeLocationCmd)
	rootCmd.AddCommand(removeCmd)
}
