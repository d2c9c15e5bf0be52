// ABOUTME: Analytical read query over transactions and weather
// ABOUTME: Daily profit per location with day-over-day change and 30-day rolling sum

package report

import (
	"fmt"
	"strings"
)

// RowLimit caps the number of rows the report returns.
const RowLimit = 50

// RollingWindow is the number of rows (days) summed by roll_30d_profit.
const RollingWindow = 30

// Columns labels the report's result columns, in order. The query aliases
// its output columns with exactly these names.
var Columns = []string{
	"location_id",
	"date",
	"temperature",
	"profit",
	"profit_stmt",
	"dod_profit",
	"roll_30d_profit",
}

// ReadQuery joins transactions with weather, sums profit per location and
// day, then computes the day-over-day percent change and the trailing 30-row
// rolling sum.
//
// The LAG window is ordered by (location_id, date) without a partition, so
// the first day of each location is compared with the last day of the
// previous location. The rolling sum is partitioned by location. A zero
// daily sum has no profit_stmt label (NULL).
const ReadQuery = `
SELECT
	daily.location_id AS location_id,
	daily."date" AS "date",
	daily.temperature AS temperature,
	daily.profit AS profit,
	daily.profit_stmt AS profit_stmt,
	ROUND(
		(
			(daily.profit - LAG(daily.profit) OVER (ORDER BY daily.location_id, daily."date"))
			/ LAG(daily.profit) OVER (ORDER BY daily.location_id, daily."date")
		) * 100,
		2
	) AS dod_profit,
	SUM(daily.profit) OVER (
		PARTITION BY daily.location_id
		ORDER BY daily."date"
		ROWS BETWEEN 29 PRECEDING AND CURRENT ROW
	) AS roll_30d_profit
FROM (
	SELECT
		transactions.location_id AS location_id,
		transactions."date" AS "date",
		IFNULL(MAX(weather.temperature), 0) AS temperature,
		SUM(transactions.profit) AS profit,
		CASE
			WHEN SUM(transactions.profit) > 0 THEN 'positive'
			WHEN SUM(transactions.profit) < 0 THEN 'negative'
		END AS profit_stmt
	FROM transactions
	LEFT JOIN weather
		ON transactions.location_id = weather.location_id
		AND transactions."date" = weather."date"
	GROUP BY transactions.location_id, transactions."date"
) AS daily
ORDER BY daily.location_id, daily."date"
LIMIT 50;
`

// NonHolidayQuery is ReadQuery with temperature taken only from weather on
// non-holiday dates at known locations. Transactions on holidays still count
// toward profit; their temperature falls back to 0.
const NonHolidayQuery = `
WITH working_weather AS (
	SELECT DISTINCT
		location.location_id AS location_id,
		"date"."date" AS "date",
		weather.temperature AS temperature
	FROM weather
	INNER JOIN location ON weather.location_id = location.location_id
	INNER JOIN "date" ON "date"."date" = weather."date"
	WHERE "date".holiday = 0
)
SELECT
	daily.location_id AS location_id,
	daily."date" AS "date",
	daily.temperature AS temperature,
	daily.profit AS profit,
	daily.profit_stmt AS profit_stmt,
	ROUND(
		(
			(daily.profit - LAG(daily.profit) OVER (ORDER BY daily.location_id, daily."date"))
			/ LAG(daily.profit) OVER (ORDER BY daily.location_id, daily."date")
		) * 100,
		2
	) AS dod_profit,
	SUM(daily.profit) OVER (
		PARTITION BY daily.location_id
		ORDER BY daily."date"
		ROWS BETWEEN 29 PRECEDING AND CURRENT ROW
	) AS roll_30d_profit
FROM (
	SELECT
		t.location_id AS location_id,
		t."date" AS "date",
		IFNULL(MAX(w.temperature), 0) AS temperature,
		SUM(t.profit) AS profit,
		CASE
			WHEN SUM(t.profit) > 0 THEN 'positive'
			WHEN SUM(t.profit) < 0 THEN 'negative'
		END AS profit_stmt
	FROM transactions t
	LEFT JOIN working_weather w
		ON t.location_id = w.location_id
		AND t."date" = w."date"
	GROUP BY t.location_id, t."date"
) AS daily
ORDER BY daily.location_id, daily."date"
LIMIT 50;
`

// Variant selects which report text to run.
type Variant string

const (
	Daily      Variant = "daily"
	NonHoliday Variant = "non-holiday"
)

// Variants lists the supported report variants.
var Variants = []Variant{Daily, NonHoliday}

// ParseVariant parses a variant name. An empty name selects Daily.
func ParseVariant(s string) (Variant, error) {
	switch Variant(strings.ToLower(strings.TrimSpace(s))) {
	case "", Daily:
		return Daily, nil
	case NonHoliday:
		return NonHoliday, nil
	default:
		return "", fmt.Errorf("unknown report variant: %q (use 'daily' or 'non-holiday')", s)
	}
}

// SQL returns the literal query text for v.
func (v Variant) SQL() string {
	if v == NonHoliday {
		return NonHolidayQuery
	}
	return ReadQuery
}
