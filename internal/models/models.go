// ABOUTME: Row types for the date, location, weather and transactions tables
// ABOUTME: Provides constructors and validators for new entities

package models

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
)

// ValidateLocationID checks that a location id is usable as a key.
func ValidateLocationID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("location id cannot be empty or whitespace")
	}
	if len(id) > 255 {
		return fmt.Errorf("location id too long (max 255 characters)")
	}
	return nil
}

// ValidateDay checks that a day is set.
func ValidateDay(d Day) error {
	if d.IsZero() {
		return fmt.Errorf("date is required")
	}
	return nil
}

// ValidateHumidity checks relative humidity is a percentage.
func ValidateHumidity(h float64) error {
	if math.IsNaN(h) || h < 0 || h > 100 {
		return fmt.Errorf("humidity must be between 0 and 100")
	}
	return nil
}

// Date is a row of the calendar dimension.
type Date struct {
	Date      Day  `db:"date" json:"date" yaml:"date"`
	Day       int  `db:"day" json:"day" yaml:"day"`
	DayOfWeek int  `db:"day_of_week" json:"day_of_week" yaml:"day_of_week"`
	Month     int  `db:"month" json:"month" yaml:"month"`
	Year      int  `db:"year" json:"year" yaml:"year"`
	Holiday   bool `db:"holiday" json:"holiday" yaml:"holiday"`
}

// Location is a row of the location dimension.
type Location struct {
	LocationID string `db:"location_id" json:"location_id" yaml:"location_id"`
	Elevation  int    `db:"elevation" json:"elevation" yaml:"elevation"`
	Population int    `db:"population" json:"population" yaml:"population"`
}

// Weather is one day of observations at a location.
type Weather struct {
	Date          Day     `db:"date" json:"date" yaml:"date"`
	LocationID    string  `db:"location_id" json:"location_id" yaml:"location_id"`
	Temperature   float64 `db:"temperature" json:"temperature" yaml:"temperature"`
	Pressure      float64 `db:"pressure" json:"pressure" yaml:"pressure"`
	Humidity      float64 `db:"humidity" json:"humidity" yaml:"humidity"`
	Cloudy        bool    `db:"cloudy" json:"cloudy" yaml:"cloudy"`
	Precipitation bool    `db:"precipitation" json:"precipitation" yaml:"precipitation"`
}

// Transaction is a single sale recorded at a location on a day.
type Transaction struct {
	TransactionID string  `db:"transaction_id" json:"transaction_id" yaml:"transaction_id"`
	LocationID    string  `db:"location_id" json:"location_id" yaml:"location_id"`
	Date          Day     `db:"date" json:"date" yaml:"date"`
	Profit        float64 `db:"profit" json:"profit" yaml:"profit"`
}

// NewDate derives the calendar attributes of d.
// DayOfWeek counts from Sunday = 0, matching SQLite's strftime('%w').
func NewDate(d Day, holiday bool) *Date {
	t := d.Time()
	return &Date{
		Date:      d,
		Day:       t.Day(),
		DayOfWeek: int(t.Weekday()),
		Month:     int(t.Month()),
		Year:      t.Year(),
		Holiday:   holiday,
	}
}

// NewLocation creates a location.
func NewLocation(id string, elevation, population int) *Location {
	return &Location{
		LocationID: id,
		Elevation:  elevation,
		Population: population,
	}
}

// NewTransaction creates a transaction with a generated UUID.
func NewTransaction(locationID string, d Day, profit float64) *Transaction {
	return &Transaction{
		TransactionID: uuid.New().String(),
		LocationID:    locationID,
		Date:          d,
		Profit:        profit,
	}
}
