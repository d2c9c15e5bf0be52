// ABOUTME: MCP resource definitions
// ABOUTME: Provides the daily report as a read-only JSON view

package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harper/profitreport/internal/report"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// reportURI addresses the daily report resource.
const reportURI = "profitreport://report"

func (s *Server) registerResources() {
	s.mcp.AddResource(&mcp.Resource{
		Name:        reportURI,
		Description: "Daily profit report (first 50 rows by location and date)",
		URI:         reportURI,
		MIMEType:    "application/json",
	}, s.handleReportResource)
}

func (s *Server) handleReportResource(ctx context.Context, _ *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	rows, err := s.repo.Report(ctx, report.Daily)
	if err != nil {
		return nil, fmt.Errorf("failed to run report: %w", err)
	}

	jsonBytes, _ := json.MarshalIndent(report.Records(rows), "", "  ") //nolint:errchkjson // output is always serializable

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      reportURI,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		},
	}, nil
}
