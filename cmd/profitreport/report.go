// ABOUTME: Report command
// ABOUTME: Runs the profit report and prints it as a table, JSON or YAML

package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/harper/profitreport/internal/report"
	"github.com/harper/profitreport/internal/ui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var reportCmd = &cobra.Command{
	Use:     "report",
	Aliases: []string{"r"},
	Short:   "Show daily profit per location",
	Long: `Show daily profit per location with the day's maximum temperature (0 when
no weather was recorded), an income statement label, the day-over-day percent
change and the 30-day rolling profit. At most 50 rows, ordered by location and date.
--location filters those 50 rows, so a location sorting after them shows nothing.

Variants:
  daily        temperature from any weather row (default)
  non-holiday  temperature only from weather on non-holiday dates

Examples:
  profitreport report
  profitreport report --location store-1
  profitreport report --variant non-holiday --format yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		variantStr, _ := cmd.Flags().GetString("variant")
		variant, err := report.ParseVariant(variantStr)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		if format != "table" && format != "json" && format != "yaml" {
			return fmt.Errorf("unsupported format: %s (use 'table', 'json', or 'yaml')", format)
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		rows, err := db.Report(ctx, variant)
		if err != nil {
			return fmt.Errorf("failed to run report: %w", err)
		}
		loc, _ := cmd.Flags().GetString("location")
		if loc != "" {
			rows = report.FilterLocation(rows, loc)
		}

		out := cmd.OutOrStdout()
		switch format {
		case "json":
			data, err := json.MarshalIndent(report.Records(rows), "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode json: %w", err)
			}
			fmt.Fprintln(out, string(data))
		case "yaml":
			data, err := yaml.Marshal(report.Records(rows))
			if err != nil {
				return fmt.Errorf("failed to encode yaml: %w", err)
			}
			fmt.Fprint(out, string(data))
		default:
			fmt.Fprint(out, ui.FormatReport(rows))
			if loc != "" {
				fmt.Fprintln(out, color.New(color.Faint).Sprintf("(filtered from the first %d rows)", report.RowLimit))
			}
			if summary, _ := cmd.Flags().GetBool("summary"); summary {
				fmt.Fprintln(out)
				fmt.Fprintln(out, ui.FormatSummary(report.Summarize(rows)))
			}
		}
		return nil
	},
}

func init() {
	reportCmd.Flags().String("variant", string(report.Daily), "report variant: daily or non-holiday")
	reportCmd.Flags().StringP("format", "f", "table", "output format: table, json, or yaml")
	reportCmd.Flags().StringP("location", "l", "", "only show rows for this location")
	reportCmd.Flags().BoolP("summary", "s", false, "print totals under the table")

	rootCmd.AddCommand(reportCmd)
}
