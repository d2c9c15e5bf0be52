// ABOUTME: Export and import of reporting data
// ABOUTME: YAML backup format restored parents first so foreign keys hold

package storage

import (
	"fmt"
	"time"

	"github.com/harper/profitreport/internal/models"
	"gopkg.in/yaml.v3"
)

// BackupVersion is the current backup format version.
const BackupVersion = "1.0"

// BackupTool identifies backups written by this program.
const BackupTool = "profitreport"

// Backup represents the YAML backup format.
type Backup struct {
	Version      string                `yaml:"version"`
	ExportedAt   time.Time             `yaml:"exported_at"`
	Tool         string                `yaml:"tool"`
	Dates        []*models.Date        `yaml:"dates"`
	Locations    []*models.Location    `yaml:"locations"`
	Weather      []*models.Weather     `yaml:"weather"`
	Transactions []*models.Transaction `yaml:"transactions"`
}

// ImportSummary holds counts of imported rows.
type ImportSummary struct {
	Dates        int
	Locations    int
	Weather      int
	Transactions int
}

// ExportToYAML exports all rows to YAML format.
func ExportToYAML(repo Repository) ([]byte, error) {
	dates, err := repo.ListDates()
	if err != nil {
		return nil, fmt.Errorf("list dates: %w", err)
	}
	locations, err := repo.ListLocations()
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	weather, err := repo.ListWeather()
	if err != nil {
		return nil, fmt.Errorf("list weather: %w", err)
	}
	transactions, err := repo.ListTransactions()
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	backup := Backup{
		Version:      BackupVersion,
		ExportedAt:   time.Now().UTC(),
		Tool:         BackupTool,
		Dates:        dates,
		Locations:    locations,
		Weather:      weather,
		Transactions: transactions,
	}
	return yaml.Marshal(backup)
}

// ImportFromYAML restores rows from a YAML backup.
// Rows are added to existing data; duplicates of keyed rows fail.
func ImportFromYAML(repo Repository, data []byte) (*ImportSummary, error) {
	var backup Backup
	if err := yaml.Unmarshal(data, &backup); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	if backup.Version != BackupVersion {
		return nil, fmt.Errorf("unsupported backup version: %s (expected %s)", backup.Version, BackupVersion)
	}
	if backup.Tool != BackupTool {
		return nil, fmt.Errorf("wrong tool: %s (expected %s)", backup.Tool, BackupTool)
	}

	summary := &ImportSummary{}

	for _, d := range backup.Dates {
		if err := repo.CreateDate(d); err != nil {
			return summary, fmt.Errorf("create date %s: %w", d.Date, err)
		}
		summary.Dates++
	}
	for _, loc := range backup.Locations {
		if err := repo.CreateLocation(loc); err != nil {
			return summary, fmt.Errorf("create location %s: %w", loc.LocationID, err)
		}
		summary.Locations++
	}
	for _, w := range backup.Weather {
		if err := repo.CreateWeather(w); err != nil {
			return summary, fmt.Errorf("create weather %s/%s: %w", w.LocationID, w.Date, err)
		}
		summary.Weather++
	}
	for _, tx := range backup.Transactions {
		if err := repo.CreateTransaction(tx); err != nil {
			return summary, fmt.Errorf("create transaction %s: %w", tx.TransactionID, err)
		}
		summary.Transactions++
	}

	return summary, nil
}
