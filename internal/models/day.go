// ABOUTME: Calendar day value stored as YYYY-MM-DD text
// ABOUTME: Implements sql.Scanner, driver.Valuer and text marshaling

package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// DayLayout is the on-disk and wire format for a Day.
const DayLayout = "2006-01-02"

// Day is a calendar date without time of day, always in UTC.
type Day struct {
	t time.Time
}

// NewDay returns the Day for the given year, month and day of month.
func NewDay(year int, month time.Month, day int) Day {
	return Day{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DayOf truncates t to its calendar day in t's own location.
func DayOf(t time.Time) Day {
	return NewDay(t.Year(), t.Month(), t.Day())
}

// ParseDay parses a YYYY-MM-DD string.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DayLayout, strings.TrimSpace(s))
	if err != nil {
		return Day{}, fmt.Errorf("invalid day %q (use YYYY-MM-DD): %w", s, err)
	}
	return Day{t: t}, nil
}

// Time returns midnight UTC of the day.
func (d Day) Time() time.Time { return d.t }

// IsZero reports whether d is unset.
func (d Day) IsZero() bool { return d.t.IsZero() }

// AddDays returns d shifted by n days.
func (d Day) AddDays(n int) Day { return Day{t: d.t.AddDate(0, 0, n)} }

// Before reports whether d is strictly earlier than other.
func (d Day) Before(other Day) bool { return d.t.Before(other.t) }

func (d Day) String() string {
	if d.t.IsZero() {
		return ""
	}
	return d.t.Format(DayLayout)
}

// Value stores the day as text so SQLite compares and groups it lexically.
func (d Day) Value() (driver.Value, error) {
	if d.t.IsZero() {
		return nil, nil
	}
	return d.t.Format(DayLayout), nil
}

// Scan accepts the text form as well as the time.Time the driver produces
// for DATE columns.
func (d *Day) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Day{}
		return nil
	case time.Time:
		*d = DayOf(v.UTC())
		return nil
	case string:
		return d.scanText(v)
	case []byte:
		return d.scanText(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Day", src)
	}
}

func (d *Day) scanText(s string) error {
	if len(s) > len(DayLayout) {
		s = s[:len(DayLayout)]
	}
	parsed, err := ParseDay(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Day) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Day) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = Day{}
		return nil
	}
	parsed, err := ParseDay(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
