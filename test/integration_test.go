// ABOUTME: Integration tests for full workflow
// ABOUTME: Builds the CLI and runs load, report, backup and cascade end-to-end

package test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

type reportRecord struct {
	LocationID    string   `json:"location_id"`
	Date          string   `json:"date"`
	Temperature   float64  `json:"temperature"`
	Profit        float64  `json:"profit"`
	ProfitStmt    *string  `json:"profit_stmt"`
	DoDProfit     *float64 `json:"dod_profit"`
	Roll30dProfit float64  `json:"roll_30d_profit"`
}

func TestFullWorkflow(t *testing.T) {
	projectRoot, err := filepath.Abs("..")
	if err != nil {
		t.Fatalf("Failed to get project root: %v", err)
	}

	binary := filepath.Join(t.TempDir(), "profitreport")
	buildCmd := exec.Command("go", "build", "-o", binary, "./cmd/profitreport")
	buildCmd.Dir = projectRoot
	buildOutput, err := buildCmd.CombinedOutput()
	if err != nil {
		t.Fatalf("Failed to build: %v\nOutput: %s", err, buildOutput)
	}

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")
	env := append(os.Environ(),
		"XDG_CONFIG_HOME="+filepath.Join(tmpDir, "config"),
		"XDG_DATA_HOME="+filepath.Join(tmpDir, "data"),
	)

	run := func(args ...string) (string, error) {
		fullArgs := append([]string{"--db", dbPath}, args...)
		cmd := exec.Command(binary, fullArgs...)
		cmd.Env = env
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	output, err := run("init")
	if err != nil {
		t.Fatalf("Failed to init: %v\n%s", err, output)
	}

	// Load two days for one store
	output, err = run("add", "weather", "-t", "3.5", "A", "2024-01-01")
	if err != nil {
		t.Fatalf("Failed to add weather: %v\n%s", err, output)
	}
	for _, args := range [][]string{
		{"add", "transaction", "A", "2024-01-01", "60"},
		{"add", "transaction", "A", "2024-01-01", "40"},
		{"add", "transaction", "A", "2024-01-02", "150"},
	} {
		if output, err := run(args...); err != nil {
			t.Fatalf("Failed to add transaction: %v\n%s", err, output)
		}
	}

	output, err = run("report", "--format", "json")
	if err != nil {
		t.Fatalf("Failed to report: %v\n%s", err, output)
	}
	var records []reportRecord
	if err := json.Unmarshal([]byte(output), &records); err != nil {
		t.Fatalf("Report is not JSON: %v\n%s", err, output)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 report rows, got %d", len(records))
	}
	if records[0].Profit != 100 || records[0].Temperature != 3.5 {
		t.Errorf("Unexpected first row: %+v", records[0])
	}
	if records[1].DoDProfit == nil || *records[1].DoDProfit != 50 {
		t.Errorf("Expected dod_profit 50, got %v", records[1].DoDProfit)
	}
	if records[1].Roll30dProfit != 250 {
		t.Errorf("Expected roll_30d_profit 250, got %v", records[1].Roll30dProfit)
	}

	// Backup before removing
	backupPath := filepath.Join(tmpDir, "backup.yaml")
	output, err = run("backup", "-o", backupPath)
	if err != nil {
		t.Fatalf("Failed to back up: %v\n%s", err, output)
	}

	// Removing the location cascades to its facts
	output, err = run("remove", "location", "A", "--confirm")
	if err != nil {
		t.Fatalf("Failed to remove: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Removed") {
		t.Error("Expected removal confirmation")
	}

	output, err = run("status")
	if err != nil {
		t.Fatalf("Failed to get status: %v\n%s", err, output)
	}
	if !strings.Contains(output, "transactions: 0") {
		t.Errorf("Expected no transactions after cascade:\n%s", output)
	}

	// Restore into a clean schema
	output, err = run("drop", "--confirm")
	if err != nil {
		t.Fatalf("Failed to drop: %v\n%s", err, output)
	}
	output, err = run("import", backupPath, "--confirm")
	if err != nil {
		t.Fatalf("Failed to import: %v\n%s", err, output)
	}
	output, err = run("status")
	if err != nil {
		t.Fatalf("Failed to get status: %v\n%s", err, output)
	}
	if !strings.Contains(output, "transactions: 3") {
		t.Errorf("Expected restored transactions:\n%s", output)
	}
}
