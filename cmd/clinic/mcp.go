// ABOUTME: CLI command for the MCP server.
// ABOUTME: Serves read-only query tools over stdio.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hamzakhoso/clinic/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Model Context Protocol server",
	Long: `Start the MCP server on stdio. The server exposes read-only query
tools over both stores; record mutation stays in the CLI.

TOOLS:

  search_patients     Search patients by name or phone
  get_patient         Patient record with recent visits
  today_visits        Today's visit list
  earnings_summary    Today / month / lifetime fee totals
  popular_medicines   Most prescribed medicine names
  search_catalog      Pharmacy catalog search
  stock_level         Current quantity for a variant
  low_stock           Variants at or below their minimum`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(clinicStore, pharmacyStore)
		if err != nil {
			return fmt.Errorf("failed to create MCP server: %w", err)
		}
		return server.Serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
