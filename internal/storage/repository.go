// ABOUTME: Repository interfaces for the reporting schema
// ABOUTME: Enables testability of export, seeding and the MCP server

package storage

import (
	"context"

	"github.com/harper/profitreport/internal/models"
	"github.com/harper/profitreport/internal/report"
)

// DateRepository manages the calendar dimension.
type DateRepository interface {
	CreateDate(d *models.Date) error
	GetDate(day models.Day) (*models.Date, error)
	ListDates() ([]*models.Date, error)
	DeleteDate(day models.Day) error
}

// LocationRepository manages the location dimension.
type LocationRepository interface {
	CreateLocation(loc *models.Location) error
	GetLocation(id string) (*models.Location, error)
	ListLocations() ([]*models.Location, error)
	DeleteLocation(id string) error
}

// ObservationRepository manages weather and transaction rows.
type ObservationRepository interface {
	CreateWeather(w *models.Weather) error
	ListWeather() ([]*models.Weather, error)
	CreateTransaction(tx *models.Transaction) error
	ListTransactions() ([]*models.Transaction, error)
}

// ReportRepository runs the analytical report.
type ReportRepository interface {
	Report(ctx context.Context, variant report.Variant) ([]report.Row, error)
	Counts() (*Counts, error)
}

// Repository combines all repository operations with lifecycle management.
type Repository interface {
	DateRepository
	LocationRepository
	ObservationRepository
	ReportRepository
	CreateTables() error
	DropTables() error
	Reset() error
	Close() error
}
