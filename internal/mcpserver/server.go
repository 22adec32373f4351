// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes DokoNepal tools for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/dokonepal/doko/internal/service"
)

// Server wraps the MCP server with DokoNepal tools.
type Server struct {
	mcp *server.MCPServer
	svc *service.Service
}

// New creates a new MCP server with all DokoNepal tools registered.
func New(svc *service.Service) *Server {
	s := &Server{svc: svc}

	s.mcp = server.NewMCPServer(
		"DokoNepal",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("list_groceries",
		mcp.WithDescription("List grocery inventory items, optionally filtered by a search term or category."),
		mcp.WithString("query", mcp.Description("Search term matched against name, supplier and description")),
		mcp.WithString("category", mcp.Description("Exact category filter (e.g. Dairy, Fruits)")),
	), s.listGroceries)

	s.mcp.AddTool(mcp.NewTool("grocery_summary",
		mcp.WithDescription("Inventory statistics: totals, category distribution, trends and recommendations."),
	), s.grocerySummary)

	s.mcp.AddTool(mcp.NewTool("list_wireframes",
		mcp.WithDescription("List wireframe project records."),
	), s.listWireframes)

	s.mcp.AddTool(mcp.NewTool("search_activity",
		mcp.WithDescription("Search the activity feed index by message substring and/or kind."),
		mcp.WithString("query", mcp.Description("Substring matched against activity messages")),
		mcp.WithString("kind", mcp.Description("Activity kind filter (e.g. grocery_added, login)")),
	), s.searchActivity)

	s.mcp.AddTool(mcp.NewTool("timeline",
		mcp.WithDescription("Project timeline layout: phases, task bars and today marker."),
		mcp.WithString("today", mcp.Description("Reference date YYYY-MM-DD (defaults to the current date)")),
	), s.timeline)

	s.mcp.AddTool(mcp.NewTool("export_report",
		mcp.WithDescription("Generate the analytics report over all collections."),
	), s.exportReport)

	s.mcp.AddTool(mcp.NewTool("get_record_contract",
		mcp.WithDescription("Returns the canonical DokoNepal record format contract. "+
			"Call this before creating grocery or wireframe records to ensure correct structure."),
	), s.getRecordContract)

	// Resource: record format contract.
	s.mcp.AddResource(
		mcp.NewResource("doko://record-format", "Record Format Contract",
			mcp.WithResourceDescription("Canonical JSON record format for groceries and wireframes."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readRecordFormatResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) listGroceries(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := req.GetString("query", "")
	category := req.GetString("category", "")
	items := s.svc.Store.SearchGroceries(query, category)
	out, _ := json.MarshalIndent(items, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) grocerySummary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, _ := json.MarshalIndent(s.svc.Dashboard(), "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) listWireframes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, _ := json.MarshalIndent(s.svc.Store.Wireframes(), "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) searchActivity(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := req.GetString("query", "")
	kind := req.GetString("kind", "")
	entries, err := s.svc.Index.Search(query, kind, 20)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(entries, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) timeline(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	today := time.Now()
	if raw := req.GetString("today", ""); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid today: %s", raw)), nil
		}
		today = parsed
	}
	out, _ := json.MarshalIndent(s.svc.Schedule.Layout(today), "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) exportReport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, _ := json.MarshalIndent(s.svc.ExportReport(), "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) getRecordContract(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(RecordFormatContract), nil
}

func (s *Server) readRecordFormatResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "doko://record-format",
			MIMEType: "text/markdown",
			Text:     RecordFormatContract,
		},
	}, nil
}
