// ABOUTME: Terminal UI formatting utilities
// ABOUTME: Renders report rows, summaries and table counts for humans

package ui

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harper/profitreport/internal/report"
	"github.com/harper/profitreport/internal/storage"
)

// nullCell is shown for SQL NULL values.
const nullCell = "-"

// FormatStatement colors an income-statement label.
func FormatStatement(s report.Statement) string {
	switch s {
	case report.Positive:
		return color.GreenString(string(s))
	case report.Negative:
		return color.RedString(string(s))
	default:
		return color.New(color.Faint).Sprint(nullCell)
	}
}

// FormatPercent formats a day-over-day change with sign, or "-" when undefined.
func FormatPercent(v float64, ok bool) string {
	if !ok {
		return nullCell
	}
	return fmt.Sprintf("%+.2f%%", v)
}

// FormatReport renders rows as an aligned table headed by report.Columns.
func FormatReport(rows []report.Row) string {
	if len(rows) == 0 {
		return color.New(color.Faint).Sprint("(no transactions)") + "\n"
	}

	cells := make([][]string, len(rows))
	widths := make([]int, len(report.Columns))
	for i, col := range report.Columns {
		widths[i] = len(col)
	}

	for i, r := range rows {
		dod, ok := r.PercentChange()
		stmt := string(r.Statement())
		if stmt == "" {
			stmt = nullCell
		}
		location := nullCell
		if r.LocationID.Valid {
			location = r.LocationID.String
		}
		cells[i] = []string{
			location,
			r.Date.String(),
			fmt.Sprintf("%.2f", r.Temperature),
			formatAmount(r.Profit),
			stmt,
			FormatPercent(dod, ok),
			formatAmount(r.Roll30dProfit),
		}
		for j, c := range cells[i] {
			if len(c) > widths[j] {
				widths[j] = len(c)
			}
		}
	}

	var sb strings.Builder
	header := make([]string, len(report.Columns))
	for i, col := range report.Columns {
		header[i] = pad(col, widths[i], i >= 2)
	}
	sb.WriteString(color.New(color.Bold).Sprint(strings.Join(header, "  ")))
	sb.WriteString("\n")

	for i, r := range rows {
		line := make([]string, len(cells[i]))
		for j, c := range cells[i] {
			line[j] = pad(c, widths[j], j >= 2 && j != 4)
		}
		line[0] = color.CyanString(line[0])
		if s := r.Statement(); s != "" {
			line[4] = strings.Replace(line[4], string(s), FormatStatement(s), 1)
		} else {
			line[4] = color.New(color.Faint).Sprint(line[4])
		}
		sb.WriteString(strings.Join(line, "  "))
		sb.WriteString("\n")
	}
	return sb.String()
}

func formatAmount(v sql.NullFloat64) string {
	if !v.Valid {
		return nullCell
	}
	return fmt.Sprintf("%.2f", v.Float64)
}

// FormatSummary renders report totals on one line.
func FormatSummary(s report.Summary) string {
	return fmt.Sprintf("%d rows, %d locations, total profit %.2f (%s %d, %s %d, unlabeled %d)",
		s.Rows, len(s.Locations), s.TotalProfit,
		color.GreenString("positive"), s.Positive,
		color.RedString("negative"), s.Negative,
		s.Unlabeled)
}

// FormatCounts renders per-table row counts.
func FormatCounts(c *storage.Counts) string {
	if c == nil {
		return color.New(color.Faint).Sprint("(no counts)")
	}
	return fmt.Sprintf("  date:         %d\n  location:     %d\n  weather:      %d\n  transactions: %d\n",
		c.Dates, c.Locations, c.Weather, c.Transactions)
}

func pad(s string, width int, right bool) string {
	if right {
		return fmt.Sprintf("%*s", width, s)
	}
	return fmt.Sprintf("%-*s", width, s)
}
