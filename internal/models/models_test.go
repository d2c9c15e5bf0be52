// ABOUTME: Tests for row models and the Day type
// ABOUTME: Covers constructors, validators, scanning and text marshaling

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

func TestNewDate(t *testing.T) {
	// 2024-03-15 was a Friday.
	d := NewDate(NewDay(2024, time.March, 15), true)

	if d.Day != 15 || d.Month != 3 || d.Year != 2024 {
		t.Errorf("got %d-%d-%d, want 2024-3-15", d.Year, d.Month, d.Day)
	}
	if d.DayOfWeek != 5 {
		t.Errorf("got day_of_week %d, want 5", d.DayOfWeek)
	}
	if !d.Holiday {
		t.Error("expected holiday to be set")
	}
}

func TestNewTransaction(t *testing.T) {
	tx := NewTransaction("A", NewDay(2024, time.January, 1), 12.5)

	if _, err := uuid.Parse(tx.TransactionID); err != nil {
		t.Errorf("transaction id is not a UUID: %v", err)
	}
	if tx.LocationID != "A" || tx.Profit != 12.5 {
		t.Errorf("unexpected transaction: %+v", tx)
	}

	other := NewTransaction("A", NewDay(2024, time.January, 1), 12.5)
	if other.TransactionID == tx.TransactionID {
		t.Error("expected distinct transaction ids")
	}
}

func TestValidateLocationID(t *testing.T) {
	tests := []struct {
		id      string
		wantErr bool
	}{
		{"A", false},
		{"store-42", false},
		{"", true},
		{"   ", true},
		{string(make([]byte, 256)), true},
	}
	for _, tt := range tests {
		err := ValidateLocationID(tt.id)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateLocationID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
		}
	}
}

func TestValidateDay(t *testing.T) {
	if err := ValidateDay(Day{}); err == nil {
		t.Error("expected error for zero day")
	}
	if err := ValidateDay(NewDay(2024, time.January, 1)); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateHumidity(t *testing.T) {
	for _, h := range []float64{0, 55.5, 100} {
		if err := ValidateHumidity(h); err != nil {
			t.Errorf("ValidateHumidity(%v) unexpected error: %v", h, err)
		}
	}
	for _, h := range []float64{-1, 100.1} {
		if err := ValidateHumidity(h); err == nil {
			t.Errorf("ValidateHumidity(%v) expected error", h)
		}
	}
}

func TestParseDay(t *testing.T) {
	d, err := ParseDay("2024-02-29")
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	if d.String() != "2024-02-29" {
		t.Errorf("got %s, want 2024-02-29", d)
	}

	if _, err := ParseDay("02/29/2024"); err == nil {
		t.Error("expected error for wrong layout")
	}
}

func TestDay_Scan(t *testing.T) {
	tests := []struct {
		name string
		src  any
		want string
	}{
		{"string", "2024-01-05", "2024-01-05"},
		{"bytes", []byte("2024-01-05"), "2024-01-05"},
		{"datetime string", "2024-01-05 00:00:00", "2024-01-05"},
		{"time", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), "2024-01-05"},
		{"nil", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Day
			if err := d.Scan(tt.src); err != nil {
				t.Fatalf("scan failed: %v", err)
			}
			if d.String() != tt.want {
				t.Errorf("got %q, want %q", d.String(), tt.want)
			}
		})
	}

	var d Day
	if err := d.Scan(42); err == nil {
		t.Error("expected error scanning int")
	}
}

func TestDay_Value(t *testing.T) {
	v, err := NewDay(2024, time.December, 31).Value()
	if err != nil {
		t.Fatalf("value failed: %v", err)
	}
	if v != "2024-12-31" {
		t.Errorf("got %v, want 2024-12-31", v)
	}

	v, _ = Day{}.Value()
	if v != nil {
		t.Errorf("got %v for zero day, want nil", v)
	}
}

func TestDay_AddDays(t *testing.T) {
	d := NewDay(2024, time.February, 28).AddDays(2)
	if d.String() != "2024-03-01" {
		t.Errorf("got %s, want 2024-03-01", d)
	}
	if !NewDay(2024, time.February, 28).Before(d) {
		t.Error("expected earlier day to be before")
	}
}

func TestDay_JSONAndYAML(t *testing.T) {
	w := Weather{Date: NewDay(2024, time.July, 4), LocationID: "A", Temperature: 30}

	data, err := json.Marshal(w)
	if err != nil {
		t.Fatalf("json marshal failed: %v", err)
	}
	var fromJSON Weather
	if err := json.Unmarshal(data, &fromJSON); err != nil {
		t.Fatalf("json unmarshal failed: %v", err)
	}
	if fromJSON.Date.String() != w.Date.String() {
		t.Errorf("json: got %s, want %s", fromJSON.Date, w.Date)
	}

	data, err = yaml.Marshal(w)
	if err != nil {
		t.Fatalf("yaml marshal failed: %v", err)
	}
	var fromYAML Weather
	if err := yaml.Unmarshal(data, &fromYAML); err != nil {
		t.Fatalf("yaml unmarshal failed: %v", err)
	}
	if fromYAML.Date.String() != w.Date.String() {
		t.Errorf("yaml: got %s, want %s", fromYAML.Date, w.Date)
	}
}
