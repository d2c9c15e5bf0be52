// ABOUTME: Schema lifecycle commands
// ABOUTME: init creates tables, drop removes them, status shows row counts

package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harper/profitreport/internal/schema"
	"github.com/harper/profitreport/internal/ui"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the reporting tables if they don't exist",
	Long: `Create the date, location, weather and transactions tables.

Safe to run repeatedly: existing tables and rows are left untouched.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationSchema: schemaManual},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := db.CreateTables(); err != nil {
			return fmt.Errorf("failed to create tables: %w", err)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, color.GreenString("✓ Schema ready"))
		fmt.Fprintf(out, "  %s\n", db.Path())
		return nil
	},
}

var dropCmd = &cobra.Command{
	Use:   "drop",
	Short: "Drop all reporting tables and their rows",
	Long: `Drop the transactions, weather, location and date tables.

Tables that don't exist are skipped. Run 'profitreport init' to recreate them.

Examples:
  profitreport drop
  profitreport drop --confirm`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationSchema: schemaManual},
	RunE: func(cmd *cobra.Command, args []string) error {
		confirm, _ := cmd.Flags().GetBool("confirm")
		if !confirm && !askConfirm(cmd, "Drop all tables and data?") {
			fmt.Fprintln(cmd.OutOrStdout(), "Canceled.")
			return nil
		}

		if err := db.DropTables(); err != nil {
			return fmt.Errorf("failed to drop tables: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), color.YellowString("Dropped %s", strings.Join(schema.Tables, ", ")))
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:         "status",
	Short:       "Show the database path and row counts",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationSchema: schemaManual},
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Database: %s\n", db.Path())

		for _, name := range schema.Tables {
			exists, err := db.TableExists(name)
			if err != nil {
				return err
			}
			if !exists {
				fmt.Fprintln(out, color.YellowString("Table %q is missing. Run 'profitreport init'.", name))
				return nil
			}
		}

		counts, err := db.Counts()
		if err != nil {
			return fmt.Errorf("failed to count rows: %w", err)
		}
		fmt.Fprint(out, ui.FormatCounts(counts))
		return nil
	},
}

// askConfirm prompts on stdout and reads a y/N answer from stdin.
func askConfirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N] ", prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	response, _ := reader.ReadString('\n')
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}

func init() {
	dropCmd.Flags().Bool("confirm", false, "skip confirmation prompt")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(dropCmd)
	rootCmd.AddCommand(statusCmd)
}
