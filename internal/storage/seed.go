// ABOUTME: Synthetic data generator for the reporting schema
// ABOUTME: Stands in for the external ETL that loads dates, weather and sales

package storage

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/harper/profitreport/internal/models"
)

// SeedOptions controls synthetic data generation.
type SeedOptions struct {
	Locations int
	Days      int
	Start     models.Day
	// Seed makes generation deterministic.
	Seed int64
}

// DefaultSeedOptions returns a small data set spanning 60 days.
func DefaultSeedOptions() SeedOptions {
	return SeedOptions{
		Locations: 3,
		Days:      60,
		Start:     models.NewDay(2024, 1, 1),
		Seed:      1,
	}
}

// Seed inserts dates, locations, weather and transactions.
// About one day in ten has no weather row, and every seventh day is a holiday.
func Seed(repo Repository, opts SeedOptions) (*ImportSummary, error) {
	if opts.Locations <= 0 || opts.Days <= 0 {
		return nil, fmt.Errorf("locations and days must be positive")
	}
	if opts.Start.IsZero() {
		opts.Start = DefaultSeedOptions().Start
	}

	rng := rand.New(rand.NewSource(opts.Seed)) //nolint:gosec // synthetic data only
	summary := &ImportSummary{}

	for i := 0; i < opts.Days; i++ {
		day := opts.Start.AddDays(i)
		if err := repo.CreateDate(models.NewDate(day, i%7 == 6)); err != nil {
			return summary, fmt.Errorf("create date %s: %w", day, err)
		}
		summary.Dates++
	}

	for l := 0; l < opts.Locations; l++ {
		loc := models.NewLocation(
			fmt.Sprintf("loc-%03d", l+1),
			rng.Intn(2000),
			1000+rng.Intn(500000),
		)
		if err := repo.CreateLocation(loc); err != nil {
			return summary, fmt.Errorf("create location %s: %w", loc.LocationID, err)
		}
		summary.Locations++

		base := 5 + rng.Float64()*15
		for i := 0; i < opts.Days; i++ {
			day := opts.Start.AddDays(i)

			if rng.Intn(10) != 0 {
				w := &models.Weather{
					Date:          day,
					LocationID:    loc.LocationID,
					Temperature:   round2(base + 8*math.Sin(float64(i)/9) + rng.NormFloat64()),
					Pressure:      round2(1013 + rng.NormFloat64()*6),
					Humidity:      round2(30 + rng.Float64()*70),
					Cloudy:        rng.Intn(2) == 0,
					Precipitation: rng.Intn(4) == 0,
				}
				if err := repo.CreateWeather(w); err != nil {
					return summary, fmt.Errorf("create weather %s/%s: %w", loc.LocationID, day, err)
				}
				summary.Weather++
			}

			for n := 1 + rng.Intn(3); n > 0; n-- {
				profit := round2(rng.NormFloat64()*80 + 40)
				if err := repo.CreateTransaction(models.NewTransaction(loc.LocationID, day, profit)); err != nil {
					return summary, fmt.Errorf("create transaction: %w", err)
				}
				summary.Transactions++
			}
		}
	}

	return summary, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
