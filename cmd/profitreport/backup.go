// ABOUTME: Backup and import commands
// ABOUTME: Writes and restores the YAML backup of all four tables

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/harper/profitreport/internal/storage"
	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Create a YAML backup of all data",
	Long: `Create a YAML backup file containing every date, location, weather and
transaction row.

Examples:
  profitreport backup --output report-data.yaml
  profitreport backup -o ~/backups/profitreport-$(date +%Y%m%d).yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")

		data, err := storage.ExportToYAML(db)
		if err != nil {
			return fmt.Errorf("failed to create backup: %w", err)
		}

		if output == "" {
			output = fmt.Sprintf("profitreport-%s.yaml", time.Now().Format("20060102-150405"))
		}

		if err := os.WriteFile(output, data, 0644); err != nil { //nolint:gosec // 0644 is intentional for backup files
			return fmt.Errorf("failed to write backup: %w", err)
		}

		counts, _ := db.Counts()
		fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("Backup created: %s", output))
		if counts != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "  %d dates, %d locations, %d weather, %d transactions\n",
				counts.Dates, counts.Locations, counts.Weather, counts.Transactions)
		}
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import data from a YAML backup",
	Long: `Import rows from a YAML backup file created with 'profitreport backup'.

WARNING: This adds to existing data. Dates and locations that already exist
make the import fail; run 'profitreport drop' first for a clean restore.

Examples:
  profitreport import report-data.yaml --confirm`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		confirm, _ := cmd.Flags().GetBool("confirm")
		if !confirm && !askConfirm(cmd, fmt.Sprintf("Import data from '%s'?", filename)) {
			fmt.Fprintln(cmd.OutOrStdout(), "Canceled.")
			return nil
		}

		summary, err := storage.ImportFromYAML(db, data)
		if err != nil {
			return fmt.Errorf("failed to import: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("Import complete"))
		fmt.Fprintf(cmd.OutOrStdout(), "  %d dates, %d locations, %d weather, %d transactions imported\n",
			summary.Dates, summary.Locations, summary.Weather, summary.Transactions)
		return nil
	},
}

func init() {
	backupCmd.Flags().StringP("output", "o", "", "output file (default: profitreport-YYYYMMDD-HHMMSS.yaml)")
	importCmd.Flags().Bool("confirm", false, "skip confirmation prompt")

	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(importCmd)
}
