// ABOUTME: Tests for MCP server, tools, and resources
// ABOUTME: Verifies MCP handlers against a mock report repository

package mcp

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/harper/profitreport/internal/models"
	"github.com/harper/profitreport/internal/report"
	"github.com/harper/profitreport/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// mockRepo implements storage.ReportRepository for testing.
type mockRepo struct {
	rows      []report.Row
	counts    storage.Counts
	variants  []report.Variant
	reportErr error
	countsErr error
}

func (m *mockRepo) Report(_ context.Context, variant report.Variant) ([]report.Row, error) {
	m.variants = append(m.variants, variant)
	if m.reportErr != nil {
		return nil, m.reportErr
	}
	return m.rows, nil
}

func (m *mockRepo) Counts() (*storage.Counts, error) {
	if m.countsErr != nil {
		return nil, m.countsErr
	}
	c := m.counts
	return &c, nil
}

func str(s string) sql.NullString { return sql.NullString{String: s, Valid: true} }

func num(f float64) sql.NullFloat64 { return sql.NullFloat64{Float64: f, Valid: true} }

func newMockRepo() *mockRepo {
	d := models.NewDay(2024, time.January, 1)
	return &mockRepo{
		rows: []report.Row{
			{LocationID: str("A"), Date: d, Profit: num(100), ProfitStmt: str("positive"), Roll30dProfit: num(100)},
			{LocationID: str("A"), Date: d.AddDays(1), Profit: num(150), ProfitStmt: str("positive"),
				DoDProfit: num(50), Roll30dProfit: num(250)},
			{LocationID: str("B"), Date: d, Profit: num(-30), ProfitStmt: str("negative"),
				DoDProfit: num(-120), Roll30dProfit: num(-30)},
			{LocationID: str("B"), Date: d.AddDays(1)},
		},
		counts: storage.Counts{Dates: 2, Locations: 2, Weather: 1, Transactions: 3},
	}
}

func newTestServer(t *testing.T, repo *mockRepo) *Server {
	t.Helper()
	s, err := NewServer(repo)
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}
	return s
}

func TestNewServer_NilRepo(t *testing.T) {
	if _, err := NewServer(nil); err == nil {
		t.Error("expected error for nil repository")
	}
}

func TestHandleProfitReport(t *testing.T) {
	repo := newMockRepo()
	s := newTestServer(t, repo)

	result, output, err := s.handleProfitReport(context.Background(), nil, ProfitReportInput{})
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if output.Variant != "daily" {
		t.Errorf("got variant %q, want daily", output.Variant)
	}
	if output.Count != 4 || len(output.Rows) != 4 {
		t.Errorf("got %d rows, want 4", output.Count)
	}
	if output.TotalProfit != 220 {
		t.Errorf("got total %v, want 220", output.TotalProfit)
	}
	if output.Rows[3].Profit != nil {
		t.Error("expected null profit for a day with NULL transactions")
	}
	if output.Rows[0].DoDProfit != nil {
		t.Error("first row must have null dod_profit")
	}
	if len(output.Columns) != len(report.Columns) {
		t.Errorf("got %d columns", len(output.Columns))
	}

	text := result.Content[0].(*mcp.TextContent).Text
	var decoded ProfitReportOutput
	if err := json.Unmarshal([]byte(text), &decoded); err != nil {
		t.Fatalf("content is not JSON: %v", err)
	}
	if !strings.Contains(text, `"dod_profit": null`) {
		t.Error("expected null dod_profit in content")
	}
}

func TestHandleProfitReport_FilterAndVariant(t *testing.T) {
	repo := newMockRepo()
	s := newTestServer(t, repo)

	_, output, err := s.handleProfitReport(context.Background(), nil, ProfitReportInput{
		Variant:    "non-holiday",
		LocationID: "B",
	})
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if output.Count != 2 || *output.Rows[0].LocationID != "B" {
		t.Errorf("unexpected rows: %+v", output.Rows)
	}
	if repo.variants[0] != report.NonHoliday {
		t.Errorf("got variant %s, want non-holiday", repo.variants[0])
	}
}

func TestHandleProfitReport_InvalidVariant(t *testing.T) {
	s := newTestServer(t, newMockRepo())

	if _, _, err := s.handleProfitReport(context.Background(), nil, ProfitReportInput{Variant: "hourly"}); err == nil {
		t.Error("expected error for unknown variant")
	}
}

func TestHandleProfitReport_RepoError(t *testing.T) {
	repo := newMockRepo()
	repo.reportErr = errors.New("database is locked")
	s := newTestServer(t, repo)

	_, _, err := s.handleProfitReport(context.Background(), nil, ProfitReportInput{})
	if err == nil || !strings.Contains(err.Error(), "database is locked") {
		t.Errorf("got error %v, want wrapped engine error", err)
	}
}

func TestHandleTableCounts(t *testing.T) {
	s := newTestServer(t, newMockRepo())

	_, output, err := s.handleTableCounts(context.Background(), nil, TableCountsInput{})
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if output.Transactions != 3 || output.Locations != 2 {
		t.Errorf("unexpected counts: %+v", output)
	}
}

func TestHandleTableCounts_Error(t *testing.T) {
	repo := newMockRepo()
	repo.countsErr = errors.New("no such table: weather")
	s := newTestServer(t, repo)

	if _, _, err := s.handleTableCounts(context.Background(), nil, TableCountsInput{}); err == nil {
		t.Error("expected error")
	}
}

func TestHandleReportResource(t *testing.T) {
	s := newTestServer(t, newMockRepo())

	result, err := s.handleReportResource(context.Background(), nil)
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if len(result.Contents) != 1 {
		t.Fatalf("got %d contents, want 1", len(result.Contents))
	}

	var records []report.Record
	if err := json.Unmarshal([]byte(result.Contents[0].Text), &records); err != nil {
		t.Fatalf("resource is not JSON: %v", err)
	}
	if len(records) != 4 || records[1].Date != "2024-01-02" {
		t.Errorf("unexpected records: %+v", records)
	}
}
