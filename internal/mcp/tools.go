// ABOUTME: MCP tool implementations for clinic queries.
// ABOUTME: Patient search, visits, earnings, catalog, and stock lookups.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hamzakhoso/clinic/internal/models"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "search_patients",
		Description: "Search patients by name or phone substring",
	}, s.handleSearchPatients)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_patient",
		Description: "Get a patient record with recent visit history",
	}, s.handleGetPatient)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "today_visits",
		Description: "List today's visits with patient names",
	}, s.handleTodayVisits)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "earnings_summary",
		Description: "Get today's, this month's, and total earnings",
	}, s.handleEarningsSummary)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "popular_medicines",
		Description: "List the most prescribed medicine names by usage count",
	}, s.handlePopularMedicines)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "search_catalog",
		Description: "Search the pharmacy catalog by medicine name",
	}, s.handleSearchCatalog)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "stock_level",
		Description: "Get the current stock quantity for a variant",
	}, s.handleStockLevel)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "low_stock",
		Description: "List variants at or below their minimum stock level",
	}, s.handleLowStock)
}

// Tool input/output types

type searchPatientsInput struct {
	Query string `json:"query" jsonschema:"description=Name or phone substring,required"`
}

type getPatientInput struct {
	PatientID  int64 `json:"patient_id" jsonschema:"description=Numeric patient id,required"`
	VisitLimit int   `json:"visit_limit,omitempty" jsonschema:"description=Max visits to include (default 10)"`
}

type patientWithVisits struct {
	Patient *models.Patient `json:"patient"`
	Visits  []models.Visit  `json:"visits"`
}

type earningsOutput struct {
	Today     int `json:"today"`
	ThisMonth int `json:"this_month"`
	Total     int `json:"total"`
}

type searchCatalogInput struct {
	Query string `json:"query" jsonschema:"description=Medicine name substring,required"`
}

type stockLevelInput struct {
	VariantID int64 `json:"variant_id" jsonschema:"description=Numeric variant id,required"`
}

type stockLevelOutput struct {
	VariantID int64 `json:"variant_id"`
	Quantity  int   `json:"quantity_available"`
}

type emptyInput struct{}

// Tool handlers

func (s *Server) handleSearchPatients(ctx context.Context, req *mcp.CallToolRequest, input searchPatientsInput) (*mcp.CallToolResult, any, error) {
	patients, err := s.clinic.SearchPatients(input.Query)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to search patients: %w", err)
	}
	if len(patients) == 0 {
		return nil, map[string]any{"message": "No patients found."}, nil
	}
	return nil, patients, nil
}

func (s *Server) handleGetPatient(ctx context.Context, req *mcp.CallToolRequest, input getPatientInput) (*mcp.CallToolResult, any, error) {
	p, err := s.clinic.GetPatient(input.PatientID)
	if err != nil {
		return nil, nil, fmt.Errorf("patient not found: %d", input.PatientID)
	}

	limit := input.VisitLimit
	if limit <= 0 {
		limit = 10
	}
	visits, err := s.clinic.GetVisits(input.PatientID, limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load visits: %w", err)
	}

	return nil, patientWithVisits{Patient: p, Visits: visits}, nil
}

func (s *Server) handleTodayVisits(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	visits, err := s.clinic.TodayVisits()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list today's visits: %w", err)
	}
	if len(visits) == 0 {
		return nil, map[string]any{"message": "No visits today."}, nil
	}
	return nil, visits, nil
}

func (s *Server) handleEarningsSummary(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, earningsOutput, error) {
	today, err := s.clinic.TodayEarnings()
	if err != nil {
		return nil, earningsOutput{}, fmt.Errorf("failed to read earnings: %w", err)
	}
	now := time.Now()
	month, err := s.clinic.MonthEarnings(now.Year(), now.Month())
	if err != nil {
		return nil, earningsOutput{}, fmt.Errorf("failed to read earnings: %w", err)
	}
	total, err := s.clinic.TotalEarnings()
	if err != nil {
		return nil, earningsOutput{}, fmt.Errorf("failed to read earnings: %w", err)
	}
	return nil, earningsOutput{Today: today, ThisMonth: month, Total: total}, nil
}

func (s *Server) handlePopularMedicines(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	tally, err := s.clinic.ListMedicineTally()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list medicine tally: %w", err)
	}
	if len(tally) == 0 {
		return nil, map[string]any{"message": "No medicine usage recorded."}, nil
	}
	return nil, tally, nil
}

func (s *Server) handleSearchCatalog(ctx context.Context, req *mcp.CallToolRequest, input searchCatalogInput) (*mcp.CallToolResult, any, error) {
	medicines, err := s.pharmacy.SearchMedicines(input.Query)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to search catalog: %w", err)
	}
	if len(medicines) == 0 {
		return nil, map[string]any{"message": "No catalog entries found."}, nil
	}
	return nil, medicines, nil
}

func (s *Server) handleStockLevel(ctx context.Context, req *mcp.CallToolRequest, input stockLevelInput) (*mcp.CallToolResult, stockLevelOutput, error) {
	quantity, err := s.pharmacy.StockLevel(input.VariantID)
	if err != nil {
		return nil, stockLevelOutput{}, fmt.Errorf("failed to read stock level: %w", err)
	}
	return nil, stockLevelOutput{VariantID: input.VariantID, Quantity: quantity}, nil
}

func (s *Server) handleLowStock(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	items, err := s.pharmacy.LowStock()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list low stock: %w", err)
	}
	if len(items) == 0 {
		return nil, map[string]any{"message": "No low stock items."}, nil
	}
	return nil, items, nil
}
