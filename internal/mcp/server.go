package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/saree-gallery/internal/catalog"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the saree catalog as tools.
type Server struct {
	catalog  *catalog.Catalog
	buildErr error
	mcp      *server.MCPServer
}

// NewServer creates a new MCP server over one catalog snapshot. When the
// build failed, buildErr is reported by every tool.
func NewServer(cat *catalog.Catalog, buildErr error) *Server {
	s := &Server{
		catalog:  cat,
		buildErr: buildErr,
	}

	s.mcp = server.NewMCPServer(
		"saree-gallery",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(searchSareesTool, s.handleSearchSarees)
	s.mcp.AddTool(getSareeTool, s.handleGetSaree)
	s.mcp.AddTool(catalogSummaryTool, s.handleCatalogSummary)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
