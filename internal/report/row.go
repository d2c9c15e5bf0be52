// ABOUTME: Typed result rows for the profit report
// ABOUTME: Nullable columns scanned as sql null types, plus summary totals

package report

import (
	"database/sql"
	"sort"

	"github.com/harper/profitreport/internal/models"
)

// Statement is the income-statement label of a daily profit sum.
type Statement string

const (
	Positive Statement = "positive"
	Negative Statement = "negative"
)

// Row is one (location, date) line of the report. Tags match Columns.
type Row struct {
	LocationID    sql.NullString  `db:"location_id"`
	Date          models.Day      `db:"date"`
	Temperature   float64         `db:"temperature"`
	Profit        sql.NullFloat64 `db:"profit"`
	ProfitStmt    sql.NullString  `db:"profit_stmt"`
	DoDProfit     sql.NullFloat64 `db:"dod_profit"`
	Roll30dProfit sql.NullFloat64 `db:"roll_30d_profit"`
}

// Statement returns the label, or "" when the daily sum was exactly zero.
func (r Row) Statement() Statement {
	if !r.ProfitStmt.Valid {
		return ""
	}
	return Statement(r.ProfitStmt.String)
}

// PercentChange returns the day-over-day change and whether it is defined.
func (r Row) PercentChange() (float64, bool) {
	return r.DoDProfit.Float64, r.DoDProfit.Valid
}

// Values returns the row in Columns order with NULLs as nil.
func (r Row) Values() []any {
	return []any{
		nullString(r.LocationID),
		r.Date.String(),
		r.Temperature,
		nullFloat(r.Profit),
		nullString(r.ProfitStmt),
		nullFloat(r.DoDProfit),
		nullFloat(r.Roll30dProfit),
	}
}

func nullString(v sql.NullString) any {
	if !v.Valid {
		return nil
	}
	return v.String
}

func nullFloat(v sql.NullFloat64) any {
	if !v.Valid {
		return nil
	}
	return v.Float64
}

// Record is the serializable form of a Row, keyed by Columns.
type Record struct {
	LocationID    *string  `json:"location_id" yaml:"location_id"`
	Date          string   `json:"date" yaml:"date"`
	Temperature   float64  `json:"temperature" yaml:"temperature"`
	Profit        *float64 `json:"profit" yaml:"profit"`
	ProfitStmt    *string  `json:"profit_stmt" yaml:"profit_stmt"`
	DoDProfit     *float64 `json:"dod_profit" yaml:"dod_profit"`
	Roll30dProfit *float64 `json:"roll_30d_profit" yaml:"roll_30d_profit"`
}

// Records converts rows for JSON/YAML output.
func Records(rows []Row) []Record {
	out := make([]Record, len(rows))
	for i, r := range rows {
		out[i] = Record{
			LocationID:    stringPtr(r.LocationID),
			Date:          r.Date.String(),
			Temperature:   r.Temperature,
			Profit:        floatPtr(r.Profit),
			ProfitStmt:    stringPtr(r.ProfitStmt),
			DoDProfit:     floatPtr(r.DoDProfit),
			Roll30dProfit: floatPtr(r.Roll30dProfit),
		}
	}
	return out
}

func stringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}

// FilterLocation keeps only the rows for locationID.
func FilterLocation(rows []Row, locationID string) []Row {
	var out []Row
	for _, r := range rows {
		if r.LocationID.Valid && r.LocationID.String == locationID {
			out = append(out, r)
		}
	}
	return out
}

// Summary totals a report.
type Summary struct {
	Rows        int
	Locations   []string
	TotalProfit float64
	Positive    int
	Negative    int
	Unlabeled   int
}

// Summarize computes totals over rows.
func Summarize(rows []Row) Summary {
	s := Summary{Rows: len(rows)}
	seen := make(map[string]bool)
	for _, r := range rows {
		if r.LocationID.Valid && !seen[r.LocationID.String] {
			seen[r.LocationID.String] = true
			s.Locations = append(s.Locations, r.LocationID.String)
		}
		if r.Profit.Valid {
			s.TotalProfit += r.Profit.Float64
		}
		switch r.Statement() {
		case Positive:
			s.Positive++
		case Negative:
			s.Negative++
		default:
			s.Unlabeled++
		}
	}
	sort.Strings(s.Locations)
	return s
}
