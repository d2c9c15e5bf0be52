// ABOUTME: MCP tool definitions and handlers
// ABOUTME: Read-only report and table count tools for AI agents

package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harper/profitreport/internal/report"
	"github.com/harper/profitreport/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	s.registerProfitReportTool()
	s.registerTableCountsTool()
}

// ProfitReportInput defines input for the profit_report tool.
type ProfitReportInput struct {
	Variant    string `json:"variant,omitempty" jsonschema:"report variant: daily (default) or non-holiday"`
	LocationID string `json:"location_id,omitempty" jsonschema:"only return rows for this location, taken from the first 50 report rows"`
}

// ProfitReportOutput defines output for the profit_report tool.
type ProfitReportOutput struct {
	Variant     string          `json:"variant"`
	Columns     []string        `json:"columns"`
	Rows        []report.Record `json:"rows"`
	Count       int             `json:"count"`
	TotalProfit float64         `json:"total_profit"`
}

func (s *Server) registerProfitReportTool() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name: "profit_report",
		Description: "Daily profit per location with temperature, income statement label, " +
			"day-over-day percent change and 30-day rolling profit. At most 50 rows, ordered by location and date.",
	}, s.handleProfitReport)
}

func (s *Server) handleProfitReport(ctx context.Context, _ *mcp.CallToolRequest, input ProfitReportInput) (*mcp.CallToolResult, ProfitReportOutput, error) {
	variant, err := report.ParseVariant(input.Variant)
	if err != nil {
		return nil, ProfitReportOutput{}, err
	}

	rows, err := s.repo.Report(ctx, variant)
	if err != nil {
		return nil, ProfitReportOutput{}, fmt.Errorf("failed to run report: %w", err)
	}
	if input.LocationID != "" {
		rows = report.FilterLocation(rows, input.LocationID)
	}

	output := ProfitReportOutput{
		Variant:     string(variant),
		Columns:     report.Columns,
		Rows:        report.Records(rows),
		Count:       len(rows),
		TotalProfit: report.Summarize(rows).TotalProfit,
	}

	jsonBytes, _ := json.MarshalIndent(output, "", "  ") //nolint:errchkjson // output is always serializable
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(jsonBytes)}},
	}, output, nil
}

// TableCountsInput defines input for the table_counts tool.
type TableCountsInput struct{}

func (s *Server) registerTableCountsTool() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "table_counts",
		Description: "Row counts for the date, location, weather and transactions tables.",
	}, s.handleTableCounts)
}

func (s *Server) handleTableCounts(_ context.Context, _ *mcp.CallToolRequest, _ TableCountsInput) (*mcp.CallToolResult, storage.Counts, error) {
	counts, err := s.repo.Counts()
	if err != nil {
		return nil, storage.Counts{}, fmt.Errorf("failed to count rows: %w", err)
	}

	jsonBytes, _ := json.MarshalIndent(counts, "", "  ") //nolint:errchkjson // output is always serializable
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(jsonBytes)}},
	}, *counts, nil
}
