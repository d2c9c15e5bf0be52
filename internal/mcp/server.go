// ABOUTME: MCP server initialization and configuration
// ABOUTME: Exposes the profit report to AI agents over stdio

package mcp

import (
	"context"
	"fmt"

	"github.com/harper/profitreport/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with a report repository.
type Server struct {
	mcp  *mcp.Server
	repo storage.ReportRepository
}

// NewServer creates MCP server with all capabilities.
func NewServer(repo storage.ReportRepository) (*Server, error) {
	if repo == nil {
		return nil, fmt.Errorf("repository is required")
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "profitreport",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcp:  mcpServer,
		repo: repo,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server in stdio mode.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}
