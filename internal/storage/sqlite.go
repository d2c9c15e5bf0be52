// ABOUTME: SQLite storage for the reporting schema
// ABOUTME: Pure Go SQLite driver behind sqlx, with cascading foreign keys enabled

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/harper/profitreport/internal/models"
	"github.com/harper/profitreport/internal/report"
	"github.com/harper/profitreport/internal/schema"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

func init() {
	// modernc registers as "sqlite", which sqlx does not know by name.
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// SQLiteDB implements Repository with a local SQLite database.
type SQLiteDB struct {
	db         *sqlx.DB
	path       string
	logger     *zap.Logger
	skipCreate bool
}

// Compile-time check that SQLiteDB implements Repository.
var _ Repository = (*SQLiteDB)(nil)

// Option configures a SQLiteDB.
type Option func(*SQLiteDB)

// WithLogger sets the logger used for schema and delete operations.
func WithLogger(logger *zap.Logger) Option {
	return func(s *SQLiteDB) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithoutCreate opens the database without creating missing tables.
func WithoutCreate() Option {
	return func(s *SQLiteDB) {
		s.skipCreate = true
	}
}

// NewSQLiteDB opens the database at path and creates any missing tables
// unless WithoutCreate is given.
// Creates the directory and database file if they don't exist.
func NewSQLiteDB(path string, opts ...Option) (*SQLiteDB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil { //nolint:gosec // 0750 is appropriate for user data directory
		return nil, fmt.Errorf("create directory: %w", err)
	}

	db, err := sqlx.Open("sqlite", path+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &SQLiteDB{db: db, path: path, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	if s.skipCreate {
		return s, nil
	}
	if err := s.CreateTables(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

// Path returns the database file path.
func (s *SQLiteDB) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *SQLiteDB) Close() error {
	return s.db.Close()
}

// CreateTables creates the four tables if they don't exist.
func (s *SQLiteDB) CreateTables() error {
	if err := schema.ApplyCreate(s.db); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	s.logger.Debug("schema created", zap.String("path", s.path), zap.Strings("tables", schema.Tables))
	return nil
}

// DropTables drops the four tables if they exist.
func (s *SQLiteDB) DropTables() error {
	if err := schema.ApplyDrop(s.db); err != nil {
		return fmt.Errorf("drop schema: %w", err)
	}
	s.logger.Debug("schema dropped", zap.String("path", s.path))
	return nil
}

// Reset clears all rows, keeping the tables.
func (s *SQLiteDB) Reset() error {
	_, err := s.db.Exec(`DELETE FROM transactions; DELETE FROM weather; DELETE FROM location; DELETE FROM "date";`)
	if err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	s.logger.Debug("all rows deleted", zap.String("path", s.path))
	return nil
}

// TableExists reports whether a table is present in the database.
func (s *SQLiteDB) TableExists(name string) (bool, error) {
	var n int
	err := s.db.Get(&n, "SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", name)
	if err != nil {
		return false, fmt.Errorf("query sqlite_master: %w", err)
	}
	return n > 0, nil
}

// Counts holds the number of rows per table.
type Counts struct {
	Dates        int `db:"dates" json:"dates" yaml:"dates"`
	Locations    int `db:"locations" json:"locations" yaml:"locations"`
	Weather      int `db:"weather" json:"weather" yaml:"weather"`
	Transactions int `db:"transactions" json:"transactions" yaml:"transactions"`
}

// Counts returns row counts for every table.
func (s *SQLiteDB) Counts() (*Counts, error) {
	var c Counts
	err := s.db.Get(&c, `SELECT
		(SELECT COUNT(*) FROM "date") AS dates,
		(SELECT COUNT(*) FROM location) AS locations,
		(SELECT COUNT(*) FROM weather) AS weather,
		(SELECT COUNT(*) FROM transactions) AS transactions`)
	if err != nil {
		return nil, fmt.Errorf("count rows: %w", err)
	}
	return &c, nil
}

// CreateDate inserts a calendar row.
func (s *SQLiteDB) CreateDate(d *models.Date) error {
	_, err := s.db.NamedExec(
		`INSERT INTO "date" ("date", day, day_of_week, month, year, holiday)
		 VALUES (:date, :day, :day_of_week, :month, :year, :holiday)`, d)
	if err != nil {
		return fmt.Errorf("insert date: %w", err)
	}
	return nil
}

// GetDate retrieves a calendar row by day.
func (s *SQLiteDB) GetDate(day models.Day) (*models.Date, error) {
	var d models.Date
	err := s.db.Get(&d,
		`SELECT "date", day, day_of_week, month, year, holiday FROM "date" WHERE "date" = ?`, day)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get date: %w", err)
	}
	return &d, nil
}

// ListDates returns all calendar rows, oldest first.
func (s *SQLiteDB) ListDates() ([]*models.Date, error) {
	var dates []*models.Date
	err := s.db.Select(&dates,
		`SELECT "date", day, day_of_week, month, year, holiday FROM "date" ORDER BY "date"`)
	if err != nil {
		return nil, fmt.Errorf("query dates: %w", err)
	}
	return dates, nil
}

// DeleteDate removes a calendar row (weather and transactions cascade).
func (s *SQLiteDB) DeleteDate(day models.Day) error {
	res, err := s.db.Exec(`DELETE FROM "date" WHERE "date" = ?`, day)
	if err != nil {
		return fmt.Errorf("delete date: %w", err)
	}
	if err := requireAffected(res); err != nil {
		return err
	}
	s.logger.Debug("date deleted", zap.Stringer("date", day))
	return nil
}

// CreateLocation inserts a location.
func (s *SQLiteDB) CreateLocation(loc *models.Location) error {
	_, err := s.db.NamedExec(
		`INSERT INTO location (location_id, elevation, population)
		 VALUES (:location_id, :elevation, :population)`, loc)
	if err != nil {
		return fmt.Errorf("insert location: %w", err)
	}
	return nil
}

// GetLocation retrieves a location by id.
func (s *SQLiteDB) GetLocation(id string) (*models.Location, error) {
	var loc models.Location
	err := s.db.Get(&loc,
		"SELECT location_id, elevation, population FROM location WHERE location_id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get location: %w", err)
	}
	return &loc, nil
}

// ListLocations returns all locations sorted by id.
func (s *SQLiteDB) ListLocations() ([]*models.Location, error) {
	var locs []*models.Location
	err := s.db.Select(&locs,
		"SELECT location_id, elevation, population FROM location ORDER BY location_id")
	if err != nil {
		return nil, fmt.Errorf("query locations: %w", err)
	}
	return locs, nil
}

// DeleteLocation removes a location (weather and transactions cascade).
func (s *SQLiteDB) DeleteLocation(id string) error {
	res, err := s.db.Exec("DELETE FROM location WHERE location_id = ?", id)
	if err != nil {
		return fmt.Errorf("delete location: %w", err)
	}
	if err := requireAffected(res); err != nil {
		return err
	}
	s.logger.Debug("location deleted", zap.String("location_id", id))
	return nil
}

// CreateWeather inserts a weather observation.
func (s *SQLiteDB) CreateWeather(w *models.Weather) error {
	_, err := s.db.NamedExec(
		`INSERT INTO weather ("date", location_id, temperature, pressure, humidity, cloudy, precipitation)
		 VALUES (:date, :location_id, :temperature, :pressure, :humidity, :cloudy, :precipitation)`, w)
	if err != nil {
		return fmt.Errorf("insert weather: %w", err)
	}
	return nil
}

// ListWeather returns all weather rows ordered by location and date.
func (s *SQLiteDB) ListWeather() ([]*models.Weather, error) {
	var rows []*models.Weather
	err := s.db.Select(&rows,
		`SELECT "date", location_id, temperature, pressure, humidity, cloudy, precipitation
		 FROM weather ORDER BY location_id, "date"`)
	if err != nil {
		return nil, fmt.Errorf("query weather: %w", err)
	}
	return rows, nil
}

// CreateTransaction inserts a transaction.
func (s *SQLiteDB) CreateTransaction(tx *models.Transaction) error {
	_, err := s.db.NamedExec(
		`INSERT INTO transactions (transaction_id, location_id, "date", profit)
		 VALUES (:transaction_id, :location_id, :date, :profit)`, tx)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// ListTransactions returns all transactions ordered by location and date.
func (s *SQLiteDB) ListTransactions() ([]*models.Transaction, error) {
	var rows []*models.Transaction
	err := s.db.Select(&rows,
		`SELECT transaction_id, location_id, "date", profit
		 FROM transactions ORDER BY location_id, "date", transaction_id`)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	return rows, nil
}

// Report runs the selected report query.
func (s *SQLiteDB) Report(ctx context.Context, variant report.Variant) ([]report.Row, error) {
	var rows []report.Row
	if err := s.db.SelectContext(ctx, &rows, variant.SQL()); err != nil {
		return nil, fmt.Errorf("run %s report: %w", variant, err)
	}
	s.logger.Debug("report executed", zap.String("variant", string(variant)), zap.Int("rows", len(rows)))
	return rows, nil
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
