// ABOUTME: MCP server setup for the clinic stores.
// ABOUTME: Exposes read-only query tools over stdio.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hamzakhoso/clinic/internal/clinicdb"
	"github.com/hamzakhoso/clinic/internal/pharmacydb"
)

// Server wraps the MCP server with access to both stores.
type Server struct {
	mcpServer *mcp.Server
	clinic    *clinicdb.DB
	pharmacy  *pharmacydb.DB
}

// NewServer creates an MCP server over the clinic and pharmacy stores.
// Only read tools are registered; record mutation stays in the CLI.
func NewServer(clinic *clinicdb.DB, pharmacy *pharmacydb.DB) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "clinic",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		clinic:    clinic,
		pharmacy:  pharmacy,
	}

	s.registerTools()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
