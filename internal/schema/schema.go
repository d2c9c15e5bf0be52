// ABOUTME: Table definitions for the sales/weather reporting schema
// ABOUTME: Idempotent CREATE and DROP statements for date, location, weather, transactions

package schema

import (
	"database/sql"
	"fmt"
)

// Table names, parents first.
const (
	DateTable         = "date"
	LocationTable     = "location"
	WeatherTable      = "weather"
	TransactionsTable = "transactions"
)

// Tables lists every table in dependency order (referenced tables first).
var Tables = []string{DateTable, LocationTable, WeatherTable, TransactionsTable}

// CreateDateTable declares the calendar dimension.
const CreateDateTable = `
CREATE TABLE IF NOT EXISTS "date" (
	"date" DATE PRIMARY KEY,
	day INT,
	day_of_week INT,
	month INT,
	year INT,
	holiday BOOLEAN
);
`

// CreateLocationTable declares the location dimension.
const CreateLocationTable = `
CREATE TABLE IF NOT EXISTS location (
	location_id VARCHAR PRIMARY KEY,
	elevation INT,
	population INT
);
`

// CreateWeatherTable declares daily weather observations per location.
const CreateWeatherTable = `
CREATE TABLE IF NOT EXISTS weather (
	"date" DATE,
	location_id VARCHAR,
	temperature FLOAT,
	pressure FLOAT,
	humidity FLOAT,
	cloudy BOOLEAN,
	precipitation BOOLEAN,
	PRIMARY KEY ("date", location_id),
	FOREIGN KEY ("date") REFERENCES "date" ("date") ON DELETE CASCADE,
	FOREIGN KEY (location_id) REFERENCES location (location_id) ON DELETE CASCADE
);
`

// CreateTransactionsTable declares the sales fact table.
// transaction_id carries no uniqueness constraint.
const CreateTransactionsTable = `
CREATE TABLE IF NOT EXISTS transactions (
	transaction_id VARCHAR,
	location_id VARCHAR,
	"date" DATE,
	profit FLOAT,
	FOREIGN KEY ("date") REFERENCES "date" ("date") ON DELETE CASCADE,
	FOREIGN KEY (location_id) REFERENCES location (location_id) ON DELETE CASCADE
);
`

const (
	DropDateTable         = `DROP TABLE IF EXISTS "date";`
	DropLocationTable     = `DROP TABLE IF EXISTS location;`
	DropWeatherTable      = `DROP TABLE IF EXISTS weather;`
	DropTransactionsTable = `DROP TABLE IF EXISTS transactions;`
)

// CreateStatements returns the CREATE statements, referenced tables first.
func CreateStatements() []string {
	return []string{
		CreateDateTable,
		CreateLocationTable,
		CreateWeatherTable,
		CreateTransactionsTable,
	}
}

// DropStatements returns the DROP statements, referencing tables first.
func DropStatements() []string {
	return []string{
		DropTransactionsTable,
		DropWeatherTable,
		DropLocationTable,
		DropDateTable,
	}
}

// Execer is satisfied by *sql.DB, *sql.Tx and *sqlx.DB.
type Execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// ApplyCreate creates every table that does not exist yet.
func ApplyCreate(db Execer) error {
	for i, stmt := range CreateStatements() {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("create table %s: %w", Tables[i], err)
		}
	}
	return nil
}

// ApplyDrop drops every table that exists.
func ApplyDrop(db Execer) error {
	for i, stmt := range DropStatements() {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("drop table %s: %w", Tables[len(Tables)-1-i], err)
		}
	}
	return nil
}
